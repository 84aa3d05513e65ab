// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package compiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEVMVersionText(t *testing.T) {
	for v := Homestead; v <= LatestEVMVersion; v++ {
		text, err := v.MarshalText()
		require.NoError(t, err)

		parsed, err := ParseEVMVersion(string(text))
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
	assert.Equal(t, "tangerineWhistle", TangerineWhistle.String())
	assert.Equal(t, "EVMVersion(99)", EVMVersion(99).String())

	_, err := EVMVersion(-1).MarshalText()
	assert.Error(t, err)
	_, err = ParseEVMVersion("Cancun")
	assert.Error(t, err)
}

func TestParseOptimizationMode(t *testing.T) {
	tests := []struct {
		in   string
		want OptimizationMode
		fail bool
	}{
		{in: "0", want: OptimizationNone},
		{in: "3", want: OptimizationAggressive},
		{in: "z", want: OptimizationMinSize},
		{in: "Os", want: OptimizationSize},
		{in: "-O1", want: OptimizationLess},
		{in: "", fail: true},
		{in: "4", fail: true},
		{in: "O", fail: true},
		{in: "33", fail: true},
		{in: "-Oq", fail: true},
	}
	for _, tt := range tests {
		have, err := ParseOptimizationMode(tt.in)
		if tt.fail {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, have, "input %q", tt.in)
	}
}

func TestOptimizerNormalize(t *testing.T) {
	yes := true
	o := NewOptimizer(true, OptimizationSize, true)
	o.Details = &OptimizerDetails{Yul: &yes}

	var n Normalizer = &o
	n.Normalize()
	require.Equal(t, Optimizer{Enabled: true, Details: &OptimizerDetails{Yul: &yes}}, o)

	blob, err := json.Marshal(o)
	require.NoError(t, err)
	require.Equal(t, `{"enabled":true,"details":{"yul":true}}`, string(blob))
}

func TestMetadataHash(t *testing.T) {
	blob, err := json.Marshal(NewMetadata(MetadataHashNone, false))
	require.NoError(t, err)
	require.Equal(t, `{"useLiteralContent":false,"bytecodeHash":"none"}`, string(blob))

	var m Metadata
	require.NoError(t, json.Unmarshal([]byte(`{"bytecodeHash":"keccak256"}`), &m))
	require.Equal(t, MetadataHashKeccak256, *m.BytecodeHash)
	require.Nil(t, m.UseLiteralContent)
}

func TestSelection(t *testing.T) {
	s := NewSelection(SelectionABI, SelectionBytecode, SelectionABI)
	require.Equal(t, []SelectionFlag{SelectionABI, SelectionBytecode}, s[Wildcard][Wildcard])

	assert.True(t, s.Contains("a.sol", "A", SelectionABI))
	assert.True(t, s.Contains("a.sol", "A", "evm.bytecode.object"))
	assert.False(t, s.Contains("a.sol", "A", SelectionDeployedBytecode))
	assert.False(t, s.Contains("a.sol", "A", "evm"))

	s.Add("a.sol", "", SelectionAST)
	assert.True(t, s.Contains("a.sol", "", SelectionAST))
	assert.False(t, s.Contains("b.sol", "", SelectionAST))

	all := make(Selection)
	all.Add("b.sol", "B", Wildcard)
	assert.True(t, all.Contains("b.sol", "B", SelectionStorageLayout))
	assert.False(t, all.Contains("b.sol", "C", SelectionStorageLayout))

	blob, err := json.Marshal(NewSelection())
	require.NoError(t, err)
	require.Equal(t, `{"*":{"*":[]}}`, string(blob))
}

func TestInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Lib.sol")
	require.NoError(t, os.WriteFile(path, []byte("library Lib {}\n"), 0644))

	src, err := NewSourceFromFile(path)
	require.NoError(t, err)
	_, err = NewSourceFromFile(filepath.Join(dir, "missing.sol"))
	require.Error(t, err)

	in := NewInput(map[string]Source{"Lib.sol": src}, fullSettings())
	in.Normalize()
	require.Nil(t, in.Settings.PolkaVM)

	blob, err := json.Marshal(in)
	require.NoError(t, err)

	var out Input
	require.NoError(t, json.Unmarshal(blob, &out))
	require.Equal(t, LanguageSolidity, out.Language)
	require.Equal(t, "library Lib {}\n", out.Sources["Lib.sol"].Content)
	require.Nil(t, out.Settings.ViaIR)
	require.Equal(t, in.Settings.Libraries, out.Settings.Libraries)

	empty := NewInput(nil, &Settings{})
	blob, err = json.Marshal(empty)
	require.NoError(t, err)
	require.Equal(t, `{"language":"Solidity","sources":{},"settings":{"optimizer":{"enabled":false}}}`, string(blob))
}
