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
	"errors"
)

var errMissingOptimizer = errors.New("missing required field 'optimizer' for Settings")

// MarshalJSON encodes the settings, leaving out absent fields. viaIR keeps
// its literal spelling.
func (s Settings) MarshalJSON() ([]byte, error) {
	type settings struct {
		EVMVersion      *EVMVersion `json:"evmVersion,omitempty"`
		Libraries       *Libraries  `json:"libraries,omitempty"`
		Remappings      *[]string   `json:"remappings,omitempty"`
		OutputSelection *Selection  `json:"outputSelection,omitempty"`
		ViaIR           *bool       `json:"viaIR,omitempty"`
		Optimizer       Optimizer   `json:"optimizer"`
		Metadata        *Metadata   `json:"metadata,omitempty"`
		PolkaVM         *PolkaVM    `json:"polkavm,omitempty"`
	}
	var enc settings
	enc.EVMVersion = s.EVMVersion
	if s.Libraries != nil {
		enc.Libraries = &s.Libraries
	}
	if remappings := s.SortedRemappings(); remappings != nil {
		enc.Remappings = &remappings
	}
	if s.OutputSelection != nil {
		enc.OutputSelection = &s.OutputSelection
	}
	enc.ViaIR = s.ViaIR
	enc.Optimizer = s.Optimizer
	enc.Metadata = s.Metadata
	enc.PolkaVM = s.PolkaVM
	return json.Marshal(&enc)
}

// UnmarshalJSON decodes the settings. Any viaIR value in the input is
// discarded, ViaIR is always nil afterwards.
func (s *Settings) UnmarshalJSON(input []byte) error {
	type settings struct {
		EVMVersion      *EVMVersion `json:"evmVersion"`
		Libraries       *Libraries  `json:"libraries"`
		Remappings      *[]string   `json:"remappings"`
		OutputSelection *Selection  `json:"outputSelection"`
		Optimizer       *Optimizer  `json:"optimizer"`
		Metadata        *Metadata   `json:"metadata"`
		PolkaVM         *PolkaVM    `json:"polkavm"`
	}
	var dec settings
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.Optimizer == nil {
		return errMissingOptimizer
	}
	*s = Settings{
		EVMVersion: dec.EVMVersion,
		Optimizer:  *dec.Optimizer,
		Metadata:   dec.Metadata,
		PolkaVM:    dec.PolkaVM,
	}
	if dec.Libraries != nil {
		s.Libraries = *dec.Libraries
	}
	if dec.Remappings != nil {
		s.Remappings = NewRemappings(*dec.Remappings...)
	}
	if dec.OutputSelection != nil {
		s.OutputSelection = *dec.OutputSelection
	}
	return nil
}
