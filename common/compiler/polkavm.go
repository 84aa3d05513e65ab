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

// Default PolkaVM memory layout, in bytes.
const (
	DefaultHeapSize  = 64 * 1024
	DefaultStackSize = 32 * 1024
)

// MemoryConfig sizes the PolkaVM contract heap and stack.
type MemoryConfig struct {
	HeapSize  uint32 `json:"heapSize"`
	StackSize uint32 `json:"stackSize"`
}

// DefaultMemoryConfig returns the default heap and stack sizes.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{HeapSize: DefaultHeapSize, StackSize: DefaultStackSize}
}

// PolkaVM is the backend specific "polkavm" section. Upstream solc does not
// know it, so Settings.Normalize removes it.
type PolkaVM struct {
	MemoryConfig     *MemoryConfig `json:"memoryConfig,omitempty"`
	DebugInformation *bool         `json:"debugInformation,omitempty"`
}

// NewPolkaVM creates a backend section. A nil memory config selects the
// backend defaults.
func NewPolkaVM(memory *MemoryConfig, debugInformation bool) *PolkaVM {
	return &PolkaVM{MemoryConfig: memory, DebugInformation: &debugInformation}
}

func (p *PolkaVM) copy() *PolkaVM {
	if p == nil {
		return nil
	}
	cpy := &PolkaVM{DebugInformation: copyBool(p.DebugInformation)}
	if p.MemoryConfig != nil {
		mem := *p.MemoryConfig
		cpy.MemoryConfig = &mem
	}
	return cpy
}
