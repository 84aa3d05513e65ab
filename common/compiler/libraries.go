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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-solcjson/log"
)

// Errors returned by ParseLibraries. They are wrapped with the offending
// binding index or path, use errors.Is to match them.
var (
	ErrMissingPath         = errors.New("path is missing")
	ErrMissingFileName     = errors.New("file name is missing")
	ErrMissingContractName = errors.New("contract name is missing")
	ErrMissingAddress      = errors.New("address is missing")
)

// Libraries holds the linker library addresses, keyed by source file name
// and then by contract name.
// Libraries 保存链接库地址：先按源文件名，再按合约名索引。
type Libraries map[string]map[string]string

// ParseLibraries parses library bindings of the form
//
//	<file>:<contract>=<address>
//
// as passed with repeated --libraries flags. The binding is split on its first
// '=' and the path on its first ':', so further colons end up in the contract
// name. A later binding for the same file and contract replaces an earlier
// one. Parsing stops at the first malformed binding.
func ParseLibraries(bindings []string) (Libraries, error) {
	libraries := make(Libraries)
	for index, binding := range bindings {
		path, address, ok := strings.Cut(binding, "=")
		if !ok {
			return nil, fmt.Errorf("library #%d: %w", index, ErrMissingPath)
		}
		file, contract, ok := strings.Cut(path, ":")
		if !ok {
			return nil, fmt.Errorf("library %q: %w", path, ErrMissingFileName)
		}
		if contract == "" {
			return nil, fmt.Errorf("library %q: %w", path, ErrMissingContractName)
		}
		if address == "" {
			return nil, fmt.Errorf("library %q: %w", path, ErrMissingAddress)
		}
		libraries.Add(file, contract, address)
	}
	return libraries, nil
}

// Add records the address of a library contract, replacing any address
// already set for it.
func (l Libraries) Add(file, contract, address string) {
	contracts, ok := l[file]
	if !ok {
		contracts = make(map[string]string)
		l[file] = contracts
	}
	if prev, ok := contracts[contract]; ok && prev != address {
		log.Debug("Overriding library address", "file", file, "contract", contract, "old", prev, "new", address)
	}
	contracts[contract] = address
}

// Len returns the number of linked library contracts.
func (l Libraries) Len() int {
	var n int
	for _, contracts := range l {
		n += len(contracts)
	}
	return n
}

// Bindings renders the libraries back into sorted <file>:<contract>=<address>
// strings. Parsing the result of a ParseLibraries mapping yields the same
// mapping again; file names containing ':' do not survive the trip.
func (l Libraries) Bindings() []string {
	bindings := make([]string, 0, l.Len())
	for file, contracts := range l {
		for contract, address := range contracts {
			bindings = append(bindings, file+":"+contract+"="+address)
		}
	}
	sort.Strings(bindings)
	return bindings
}

func (l Libraries) copy() Libraries {
	if l == nil {
		return nil
	}
	cpy := make(Libraries, len(l))
	for file, contracts := range l {
		inner := make(map[string]string, len(contracts))
		for contract, address := range contracts {
			inner[contract] = address
		}
		cpy[file] = inner
	}
	return cpy
}
