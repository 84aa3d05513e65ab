// Copyright 2025 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.


package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-solcjson/cmd/utils"
	"github.com/ethereum/go-solcjson/common/compiler"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
EVMVersion = "london"
Libraries = ["a.sol:A=0x1", "a.sol:B=0x2"]
Remappings = ["@oz/=lib/oz/"]

[Optimizer]
Enabled = false
Mode = "s"

[PolkaVM]
HeapSize = 2048
`

const hclConfig = `
evm_version = "london"
libraries   = ["a.sol:A=0x1", "a.sol:B=0x2"]
remappings  = ["@oz/=lib/oz/"]

optimizer {
  enabled = false
  mode    = "s"
}

polkavm {
  heap_size = 2048
}
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	for _, file := range []string{
		writeFile(t, dir, "solcjson.toml", tomlConfig),
		writeFile(t, dir, "solcjson.hcl", hclConfig),
	} {
		t.Run(filepath.Ext(file), func(t *testing.T) {
			cfg := utils.DefaultConfig()
			require.NoError(t, loadConfig(file, &cfg))

			require.Equal(t, "london", cfg.EVMVersion)
			require.Equal(t, []string{"a.sol:A=0x1", "a.sol:B=0x2"}, cfg.Libraries)
			require.Equal(t, []string{"@oz/=lib/oz/"}, cfg.Remappings)
			require.Equal(t, utils.DefaultOutputs, cfg.Outputs)
			require.False(t, *cfg.Optimizer.Enabled)
			require.Equal(t, "s", cfg.Optimizer.Mode)
			require.Nil(t, cfg.Metadata)
			require.Equal(t, uint32(2048), cfg.PolkaVM.HeapSize)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	var cfg utils.Config

	err := loadConfig(writeFile(t, dir, "bad.toml", "Bogus = 1\n"), &cfg)
	require.ErrorContains(t, err, "field 'Bogus' is not defined")

	err = loadConfig(writeFile(t, dir, "bad.hcl", "bogus = 1\n"), &cfg)
	require.ErrorContains(t, err, "failed to decode HCL file")

	err = loadConfig(writeFile(t, dir, "broken.hcl", "optimizer {\n"), &cfg)
	require.ErrorContains(t, err, "failed to parse HCL file")

	require.Error(t, loadConfig(filepath.Join(dir, "missing.toml"), &cfg))
}

func TestConfigPrecedence(t *testing.T) {
	file := writeFile(t, t.TempDir(), "solcjson.hcl", hclConfig)

	out, err := runSolcjson(t, "", "--config", file, "--libraries", "a.sol:A=0x9", "--evm-version", "cancun")
	require.NoError(t, err)

	var s compiler.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	require.Equal(t, compiler.Cancun, *s.EVMVersion)
	require.Equal(t, compiler.Libraries{"a.sol": {"A": "0x9", "B": "0x2"}}, s.Libraries)
	require.False(t, s.Optimizer.Enabled)
	require.Equal(t, compiler.OptimizationSize, *s.Optimizer.Mode)
	require.Equal(t, &compiler.MemoryConfig{HeapSize: 2048, StackSize: compiler.DefaultStackSize}, s.PolkaVM.MemoryConfig)
}

func TestDumpConfig(t *testing.T) {
	out, err := runSolcjson(t, "", "dumpconfig", "--evm-version", "cancun", "--metadata-hash", "ipfs")
	require.NoError(t, err)
	require.Contains(t, out, `EVMVersion = "cancun"`)

	// The dump loads back into the same configuration.
	file := writeFile(t, t.TempDir(), "dump.toml", out)
	var loaded utils.Config
	require.NoError(t, loadConfig(file, &loaded))

	want := utils.DefaultConfig()
	want.EVMVersion = "cancun"
	want.Metadata = &utils.MetadataConfig{BytecodeHash: "ipfs"}
	require.Equal(t, want, loaded)

	// Overridden bindings are collapsed in the dump.
	out, err = runSolcjson(t, "", "dumpconfig", "-l", "b.sol:B=0x1", "-l", "a.sol:A=0x1", "-l", "b.sol:B=0x2")
	require.NoError(t, err)
	loaded = utils.Config{}
	require.NoError(t, loadConfig(writeFile(t, t.TempDir(), "dump.toml", out), &loaded))
	require.Equal(t, []string{"a.sol:A=0x1", "b.sol:B=0x2"}, loaded.Libraries)

	_, err = runSolcjson(t, "", "dumpconfig", "--optimization", "9")
	require.ErrorContains(t, err, "invalid configuration")
}
