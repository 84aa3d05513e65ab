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
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestParseLibraries(t *testing.T) {
	tests := []struct {
		bindings []string
		want     Libraries
	}{
		{
			bindings: nil,
			want:     Libraries{},
		},
		{
			bindings: []string{"f:c=a"},
			want:     Libraries{"f": {"c": "a"}},
		},
		{
			bindings: []string{"contracts/Math.sol:SafeMath=0x5FbDB2315678afecb367f032d93F642f64180aa3"},
			want:     Libraries{"contracts/Math.sol": {"SafeMath": "0x5FbDB2315678afecb367f032d93F642f64180aa3"}},
		},
		{
			// Later bindings win.
			bindings: []string{"f:c=1", "f:c=2"},
			want:     Libraries{"f": {"c": "2"}},
		},
		{
			// Only the first colon splits.
			bindings: []string{"f:c:extra=a"},
			want:     Libraries{"f": {"c:extra": "a"}},
		},
		{
			// An empty file name is still a file name.
			bindings: []string{":c=addr"},
			want:     Libraries{"": {"c": "addr"}},
		},
		{
			// Only the first equal sign splits.
			bindings: []string{"f:c=a=b"},
			want:     Libraries{"f": {"c": "a=b"}},
		},
		{
			bindings: []string{"a.sol:X=1", "b.sol:Y=2", "a.sol:Z=3"},
			want:     Libraries{"a.sol": {"X": "1", "Z": "3"}, "b.sol": {"Y": "2"}},
		},
	}
	for i, tt := range tests {
		have, err := ParseLibraries(tt.bindings)
		require.NoError(t, err, "test %d", i)
		require.NotNil(t, have, "test %d", i)
		require.Equal(t, tt.want, have, "test %d: %s", i, spew.Sdump(have))
	}
}

func TestParseLibrariesErrors(t *testing.T) {
	tests := []struct {
		bindings []string
		err      error
		msg      string
	}{
		{[]string{"noequals"}, ErrMissingPath, "library #0: path is missing"},
		{[]string{"f:c=a", "f:d=b", "broken"}, ErrMissingPath, "library #2: path is missing"},
		{[]string{"nofilesep=addr"}, ErrMissingFileName, `library "nofilesep": file name is missing`},
		{[]string{"=addr"}, ErrMissingFileName, `library "": file name is missing`},
		{[]string{"f:=addr"}, ErrMissingContractName, `library "f:": contract name is missing`},
		{[]string{"f:c="}, ErrMissingAddress, `library "f:c": address is missing`},
		// The first malformed binding is reported.
		{[]string{"f:c=", "noequals"}, ErrMissingAddress, `library "f:c": address is missing`},
	}
	for i, tt := range tests {
		have, err := ParseLibraries(tt.bindings)
		require.ErrorIs(t, err, tt.err, "test %d", i)
		require.EqualError(t, err, tt.msg, "test %d", i)
		require.Nil(t, have, "test %d", i)
	}
}

func TestLibrariesBindings(t *testing.T) {
	bindings := []string{"b.sol:Y=2", "a.sol:Z=3", "a.sol:X=1"}
	libs, err := ParseLibraries(bindings)
	require.NoError(t, err)
	require.Equal(t, 3, libs.Len())
	require.Equal(t, []string{"a.sol:X=1", "a.sol:Z=3", "b.sol:Y=2"}, libs.Bindings())

	again, err := ParseLibraries(libs.Bindings())
	require.NoError(t, err)
	require.Equal(t, libs, again)

	require.Empty(t, Libraries{}.Bindings())

	// A colon in a decoded file name moves into the contract on reparse.
	decoded := Libraries{"a:b": {"C": "1"}}
	require.Equal(t, []string{"a:b:C=1"}, decoded.Bindings())
	reparsed, err := ParseLibraries(decoded.Bindings())
	require.NoError(t, err)
	require.Equal(t, Libraries{"a": {"b:C": "1"}}, reparsed)
}
