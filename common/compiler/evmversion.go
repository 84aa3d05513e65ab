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

import "fmt"

// EVMVersion is the target EVM version tag of a standard-JSON compilation,
// ordered by activation like params/forks.Fork.
// EVMVersion 是标准 JSON 编译的目标 EVM 版本，按激活顺序排列。
type EVMVersion int

const (
	Homestead EVMVersion = iota
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin
	London
	Paris
	Shanghai
	Cancun
	Prague
)

// LatestEVMVersion is the newest version known to this package.
const LatestEVMVersion = Prague

var evmVersionNames = []string{
	Homestead:        "homestead",
	TangerineWhistle: "tangerineWhistle",
	SpuriousDragon:   "spuriousDragon",
	Byzantium:        "byzantium",
	Constantinople:   "constantinople",
	Petersburg:       "petersburg",
	Istanbul:         "istanbul",
	Berlin:           "berlin",
	London:           "london",
	Paris:            "paris",
	Shanghai:         "shanghai",
	Cancun:           "cancun",
	Prague:           "prague",
}

// ParseEVMVersion returns the version with the given solc name.
func ParseEVMVersion(name string) (EVMVersion, error) {
	for v, n := range evmVersionNames {
		if n == name {
			return EVMVersion(v), nil
		}
	}
	return 0, fmt.Errorf("unknown EVM version %q", name)
}

func (v EVMVersion) String() string {
	if v < 0 || int(v) >= len(evmVersionNames) {
		return fmt.Sprintf("EVMVersion(%d)", int(v))
	}
	return evmVersionNames[v]
}

// MarshalText implements encoding.TextMarshaler.
func (v EVMVersion) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(evmVersionNames) {
		return nil, fmt.Errorf("invalid EVM version %d", int(v))
	}
	return []byte(evmVersionNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *EVMVersion) UnmarshalText(input []byte) error {
	parsed, err := ParseEVMVersion(string(input))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
