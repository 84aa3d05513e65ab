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

// MetadataHash selects the hash appended to the bytecode as a pointer to the
// contract metadata.
type MetadataHash string

const (
	MetadataHashNone      MetadataHash = "none"
	MetadataHashIPFS      MetadataHash = "ipfs"
	MetadataHashKeccak256 MetadataHash = "keccak256"
)

// ParseMetadataHash validates a metadata hash name.
func ParseMetadataHash(s string) (MetadataHash, error) {
	switch h := MetadataHash(s); h {
	case MetadataHashNone, MetadataHashIPFS, MetadataHashKeccak256:
		return h, nil
	}
	return "", fmt.Errorf("unknown metadata hash %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *MetadataHash) UnmarshalText(input []byte) error {
	parsed, err := ParseMetadataHash(string(input))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Metadata is the "metadata" section of the settings.
type Metadata struct {
	UseLiteralContent *bool         `json:"useLiteralContent,omitempty"`
	BytecodeHash      *MetadataHash `json:"bytecodeHash,omitempty"`
}

// NewMetadata creates a metadata section with both fields set.
func NewMetadata(hash MetadataHash, useLiteralContent bool) *Metadata {
	return &Metadata{
		UseLiteralContent: &useLiteralContent,
		BytecodeHash:      &hash,
	}
}

func (m *Metadata) copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := &Metadata{UseLiteralContent: copyBool(m.UseLiteralContent)}
	if m.BytecodeHash != nil {
		hash := *m.BytecodeHash
		cpy.BytecodeHash = &hash
	}
	return cpy
}
