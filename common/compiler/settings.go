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
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-solcjson/log"
)

// Normalizer is implemented by settings sections that can rewrite themselves
// into the form accepted by upstream solc.
type Normalizer interface {
	Normalize()
}

var (
	_ Normalizer = (*Optimizer)(nil)
	_ Normalizer = (*Settings)(nil)
	_ Normalizer = (*Input)(nil)
)

// Settings is the "settings" object of a solc standard-JSON input.
//
// Nil fields are absent and left out of the JSON encoding. Libraries and
// OutputSelection distinguish a nil (absent) value from an empty one, which
// is encoded as {}.
// Settings 是 solc 标准 JSON 输入中的 "settings" 对象。nil 字段视为缺省，不会被序列化。
type Settings struct {
	EVMVersion      *EVMVersion
	Libraries       Libraries
	Remappings      mapset.Set[string]
	OutputSelection Selection

	// ViaIR requests compilation through the Yul IR. It is only ever set by
	// NewSettings and is never read back from JSON.
	ViaIR *bool

	Optimizer Optimizer
	Metadata  *Metadata
	PolkaVM   *PolkaVM
}

// NewSettings assembles settings for a compilation through the IR pipeline.
// The libraries and output selection are always present in the result, even
// when nil or empty; ViaIR is always true. The arguments are owned by the
// returned value.
func NewSettings(evmVersion *EVMVersion, libraries Libraries, remappings mapset.Set[string], outputSelection Selection,
	optimizer Optimizer, metadata *Metadata, polkavm *PolkaVM) *Settings {
	if libraries == nil {
		libraries = make(Libraries)
	}
	if outputSelection == nil {
		outputSelection = make(Selection)
	}
	viaIR := true
	return &Settings{
		EVMVersion:      evmVersion,
		Libraries:       libraries,
		Remappings:      remappings,
		OutputSelection: outputSelection,
		ViaIR:           &viaIR,
		Optimizer:       optimizer,
		Metadata:        metadata,
		PolkaVM:         polkavm,
	}
}

// NewRemappings creates a remapping set. Duplicates collapse; the JSON
// encoding is sorted.
func NewRemappings(remappings ...string) mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(remappings...)
}

// Normalize prepares the settings for upstream solc: the PolkaVM section is
// dropped and the optimizer sheds its backend-only knobs. The stripped values
// cannot be recovered, use Copy first to keep them.
func (s *Settings) Normalize() {
	if s.PolkaVM != nil {
		log.Debug("Dropping PolkaVM settings")
	}
	s.PolkaVM = nil
	s.Optimizer.Normalize()
}

// Copy returns a deep copy of the settings.
func (s *Settings) Copy() *Settings {
	cpy := &Settings{
		Libraries:       s.Libraries.copy(),
		OutputSelection: s.OutputSelection.copy(),
		ViaIR:           copyBool(s.ViaIR),
		Optimizer:       s.Optimizer.copy(),
		Metadata:        s.Metadata.copy(),
		PolkaVM:         s.PolkaVM.copy(),
	}
	if s.EVMVersion != nil {
		v := *s.EVMVersion
		cpy.EVMVersion = &v
	}
	if s.Remappings != nil {
		cpy.Remappings = NewRemappings(s.Remappings.ToSlice()...)
	}
	return cpy
}

// SortedRemappings returns the remappings in lexicographic order, or nil if
// the settings carry none.
func (s *Settings) SortedRemappings() []string {
	if s.Remappings == nil {
		return nil
	}
	remappings := s.Remappings.ToSlice()
	sort.Strings(remappings)
	return remappings
}

// TerminalString implements log.TerminalStringer, printing a short summary.
func (s *Settings) TerminalString() string {
	evm := "default"
	if s.EVMVersion != nil {
		evm = s.EVMVersion.String()
	}
	var remappings int
	if s.Remappings != nil {
		remappings = s.Remappings.Cardinality()
	}
	return fmt.Sprintf("evm=%s libs=%d remaps=%d viaIR=%t optimizer=%t polkavm=%t",
		evm, s.Libraries.Len(), remappings, s.ViaIR != nil && *s.ViaIR, s.Optimizer.Enabled, s.PolkaVM != nil)
}
