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
	"slices"
	"strings"
)

// Wildcard matches every file, contract or output in a Selection.
const Wildcard = "*"

// SelectionFlag names a requested compiler output, e.g. "abi" or
// "evm.bytecode". Nested outputs are separated with dots.
type SelectionFlag string

// Commonly requested outputs.
const (
	SelectionABI               SelectionFlag = "abi"
	SelectionMetadata          SelectionFlag = "metadata"
	SelectionDevdoc            SelectionFlag = "devdoc"
	SelectionUserdoc           SelectionFlag = "userdoc"
	SelectionStorageLayout     SelectionFlag = "storageLayout"
	SelectionAST               SelectionFlag = "ast"
	SelectionIROptimized       SelectionFlag = "irOptimized"
	SelectionMethodIdentifiers SelectionFlag = "evm.methodIdentifiers"
	SelectionBytecode          SelectionFlag = "evm.bytecode"
	SelectionDeployedBytecode  SelectionFlag = "evm.deployedBytecode"
)

// covers reports whether selecting f also selects other.
func (f SelectionFlag) covers(other SelectionFlag) bool {
	return f == Wildcard || f == other || strings.HasPrefix(string(other), string(f)+".")
}

// Selection is the "outputSelection" filter: file name, then contract name,
// then the list of requested outputs. Both names may be the Wildcard.
type Selection map[string]map[string][]SelectionFlag

// NewSelection requests the given outputs for every contract in every file.
func NewSelection(flags ...SelectionFlag) Selection {
	s := make(Selection)
	s.Add(Wildcard, Wildcard, flags...)
	return s
}

// Add requests flags for the given file and contract. The stored list stays
// sorted and free of duplicates.
func (s Selection) Add(file, contract string, flags ...SelectionFlag) {
	contracts, ok := s[file]
	if !ok {
		contracts = make(map[string][]SelectionFlag)
		s[file] = contracts
	}
	merged := append(slices.Clone(contracts[contract]), flags...)
	if merged == nil {
		merged = []SelectionFlag{}
	}
	slices.Sort(merged)
	contracts[contract] = slices.Compact(merged)
}

// Contains reports whether the output is requested for the contract, taking
// wildcards and output nesting into account.
func (s Selection) Contains(file, contract string, flag SelectionFlag) bool {
	for _, f := range []string{file, Wildcard} {
		contracts, ok := s[f]
		if !ok {
			continue
		}
		for _, c := range []string{contract, Wildcard} {
			for _, selected := range contracts[c] {
				if selected.covers(flag) {
					return true
				}
			}
		}
	}
	return false
}

func (s Selection) copy() Selection {
	if s == nil {
		return nil
	}
	cpy := make(Selection, len(s))
	for file, contracts := range s {
		inner := make(map[string][]SelectionFlag, len(contracts))
		for contract, flags := range contracts {
			inner[contract] = slices.Clone(flags)
		}
		cpy[file] = inner
	}
	return cpy
}
