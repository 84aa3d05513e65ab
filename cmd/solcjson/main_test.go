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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-solcjson/common/compiler"
	"github.com/stretchr/testify/require"
)

// runSolcjson runs the app with the given stdin and arguments and returns
// what it printed.
func runSolcjson(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	app.Writer = out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{clientIdentifier, "--verbosity", "0"}, args...))
	return out.String(), err
}

func decodeObject(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &obj), out)
	return obj
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSettingsDefault(t *testing.T) {
	out, err := runSolcjson(t, "")
	require.NoError(t, err)

	var s compiler.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	require.True(t, s.Optimizer.Enabled, spew.Sdump(s))
	require.Equal(t, compiler.OptimizationAggressive, *s.Optimizer.Mode)
	require.True(t, s.OutputSelection.Contains("a.sol", "A", compiler.SelectionABI))
	require.Empty(t, s.Libraries)
	require.Nil(t, s.PolkaVM)

	obj := decodeObject(t, out)
	require.Equal(t, true, obj["viaIR"])
	require.NotContains(t, obj, "remappings")
	require.NotContains(t, obj, "metadata")
}

func TestSettingsFlags(t *testing.T) {
	out, err := runSolcjson(t, "",
		"--evm-version", "cancun",
		"--libraries", "contracts/Math.sol:Math=0x1234",
		"--libraries", "contracts/Math.sol:Trig=0x5678",
		"--remappings", "@oz/=lib/oz/",
		"--metadata-hash", "none",
		"--heap-size", "131072",
		"--pretty",
	)
	require.NoError(t, err)
	require.Contains(t, out, "\n  \"evmVersion\": \"cancun\"")

	var s compiler.Settings
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	require.Equal(t, compiler.Libraries{"contracts/Math.sol": {"Math": "0x1234", "Trig": "0x5678"}}, s.Libraries)
	require.Equal(t, []string{"@oz/=lib/oz/"}, s.SortedRemappings())
	require.Equal(t, compiler.MetadataHashNone, *s.Metadata.BytecodeHash)
	require.Equal(t, uint32(131072), s.PolkaVM.MemoryConfig.HeapSize)
	require.Equal(t, uint32(compiler.DefaultStackSize), s.PolkaVM.MemoryConfig.StackSize)
}

func TestSettingsSolc(t *testing.T) {
	out, err := runSolcjson(t, "", "--solc", "--debug-info", "-O", "z", "--fallback-Oz")
	require.NoError(t, err)

	obj := decodeObject(t, out)
	require.NotContains(t, obj, "polkavm")
	require.Equal(t, map[string]interface{}{"enabled": true}, obj["optimizer"])
}

func TestSolcSettingsKeepsOriginal(t *testing.T) {
	s := compiler.NewSettings(nil, nil, nil, nil,
		compiler.NewOptimizer(true, compiler.OptimizationMinSize, true), nil,
		compiler.NewPolkaVM(compiler.DefaultMemoryConfig(), true))

	solc := solcSettings(s)
	require.Nil(t, solc.PolkaVM)
	require.Nil(t, solc.Optimizer.Mode)
	require.Nil(t, solc.Optimizer.FallbackToOptimizingForSize)

	require.NotNil(t, s.PolkaVM)
	require.Equal(t, compiler.OptimizationMinSize, *s.Optimizer.Mode)
	require.True(t, *s.Optimizer.FallbackToOptimizingForSize)
}

func TestSettingsErrors(t *testing.T) {
	_, err := runSolcjson(t, "", "--libraries", "Math.sol:Math=")
	require.ErrorIs(t, err, compiler.ErrMissingAddress)

	_, err = runSolcjson(t, "", "--evm-version", "frontier")
	require.Error(t, err)

	_, err = runSolcjson(t, "", "bogus")
	require.EqualError(t, err, "invalid command: bogus")
}

func TestLibrariesCommand(t *testing.T) {
	out, err := runSolcjson(t, "", "libraries", "a.sol:A=0x1", "b.sol:B=0x2", "a.sol:A=0x3")
	require.NoError(t, err)
	require.JSONEq(t, `{"a.sol":{"A":"0x3"},"b.sol":{"B":"0x2"}}`, out)

	out, err = runSolcjson(t, "", "libraries", ":C=0x1")
	require.NoError(t, err)
	require.JSONEq(t, `{"":{"C":"0x1"}}`, out)

	_, err = runSolcjson(t, "", "libraries", "=0x1")
	require.ErrorIs(t, err, compiler.ErrMissingFileName)

	out, err = runSolcjson(t, "", "libraries")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, out)
}

func TestInputCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "contracts/A.sol", "contract A {}")
	b := writeFile(t, dir, "contracts/B.sol", "contract B {}")

	out, err := runSolcjson(t, "", "input", "--evm-version", "paris", a, b)
	require.NoError(t, err)

	var in compiler.Input
	require.NoError(t, json.Unmarshal([]byte(out), &in), out)
	require.Equal(t, compiler.LanguageSolidity, in.Language)
	require.Equal(t, map[string]compiler.Source{
		filepath.ToSlash(a): {Content: "contract A {}"},
		filepath.ToSlash(b): {Content: "contract B {}"},
	}, in.Sources)
	require.Equal(t, compiler.Paris, *in.Settings.EVMVersion)

	_, err = runSolcjson(t, "", "input")
	require.ErrorIs(t, err, errNoSources)

	_, err = runSolcjson(t, "", "input", filepath.Join(dir, "missing.sol"))
	require.Error(t, err)
}

func TestNormalizeCommand(t *testing.T) {
	settings := `{"viaIR":true,"optimizer":{"enabled":true,"mode":"3"},` +
		`"polkavm":{"debugInformation":true},"evmVersion":"cancun"}`

	out, err := runSolcjson(t, settings, "normalize")
	require.NoError(t, err)
	require.JSONEq(t, `{"evmVersion":"cancun","optimizer":{"enabled":true}}`, out)

	// Normalizing twice changes nothing.
	again, err := runSolcjson(t, out, "normalize")
	require.NoError(t, err)
	require.JSONEq(t, out, again)

	input := `{"language":"Solidity","sources":{"A.sol":{"content":"contract A {}"}},"settings":` + settings + `}`
	path := writeFile(t, t.TempDir(), "input.json", input)
	out, err = runSolcjson(t, "", "normalize", path)
	require.NoError(t, err)
	require.JSONEq(t, `{"language":"Solidity","sources":{"A.sol":{"content":"contract A {}"}},`+
		`"settings":{"evmVersion":"cancun","optimizer":{"enabled":true}}}`, out)

	_, err = runSolcjson(t, `{"evmVersion":"cancun"}`, "normalize")
	require.ErrorContains(t, err, "missing required field 'optimizer'")

	_, err = runSolcjson(t, `[]`, "normalize")
	require.ErrorContains(t, err, "invalid document")
}
