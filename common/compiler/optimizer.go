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

	"github.com/ethereum/go-solcjson/log"
)

// OptimizationMode is the LLVM optimization level understood by the PolkaVM
// backend: one of '0', '1', '2', '3', 's' or 'z'. Upstream solc rejects it.
type OptimizationMode byte

// Optimization levels, mirroring the -O flags of the backend.
const (
	OptimizationNone       OptimizationMode = '0'
	OptimizationLess       OptimizationMode = '1'
	OptimizationDefault    OptimizationMode = '2'
	OptimizationAggressive OptimizationMode = '3'
	OptimizationSize       OptimizationMode = 's'
	OptimizationMinSize    OptimizationMode = 'z'
)

// ParseOptimizationMode accepts a single mode character, optionally prefixed
// with "O" or "-O" as on the command line.
func ParseOptimizationMode(s string) (OptimizationMode, error) {
	for _, prefix := range []string{"-O", "O"} {
		if len(s) == len(prefix)+1 && s[:len(prefix)] == prefix {
			s = s[len(prefix):]
			break
		}
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid optimization mode %q", s)
	}
	switch m := OptimizationMode(s[0]); m {
	case OptimizationNone, OptimizationLess, OptimizationDefault, OptimizationAggressive, OptimizationSize, OptimizationMinSize:
		return m, nil
	}
	return 0, fmt.Errorf("invalid optimization mode %q", s)
}

func (m OptimizationMode) String() string {
	return string(rune(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m OptimizationMode) MarshalText() ([]byte, error) {
	if _, err := ParseOptimizationMode(m.String()); err != nil {
		return nil, err
	}
	return []byte{byte(m)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *OptimizationMode) UnmarshalText(input []byte) error {
	parsed, err := ParseOptimizationMode(string(input))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// OptimizerDetails switches individual solc optimizer passes. Unset fields
// leave the compiler default in place.
type OptimizerDetails struct {
	Peephole          *bool `json:"peephole,omitempty"`
	Inliner           *bool `json:"inliner,omitempty"`
	JumpdestRemover   *bool `json:"jumpdestRemover,omitempty"`
	OrderLiterals     *bool `json:"orderLiterals,omitempty"`
	Deduplicate       *bool `json:"deduplicate,omitempty"`
	CSE               *bool `json:"cse,omitempty"`
	ConstantOptimizer *bool `json:"constantOptimizer,omitempty"`
	Yul               *bool `json:"yul,omitempty"`
}

// Optimizer is the "optimizer" section of the settings. It is the one
// section every settings document carries.
// Optimizer 是设置中的 "optimizer" 部分，每个设置文档都必须包含它。
type Optimizer struct {
	Enabled bool              `json:"enabled"`
	Mode    *OptimizationMode `json:"mode,omitempty"`
	Details *OptimizerDetails `json:"details,omitempty"`

	// FallbackToOptimizingForSize retries with -Oz when a contract exceeds
	// the size limit. Backend only.
	FallbackToOptimizingForSize *bool `json:"fallbackToOptimizingForSize,omitempty"`
}

// NewOptimizer creates an optimizer section with the backend knobs set.
func NewOptimizer(enabled bool, mode OptimizationMode, fallbackToSize bool) Optimizer {
	return Optimizer{
		Enabled:                     enabled,
		Mode:                        &mode,
		FallbackToOptimizingForSize: &fallbackToSize,
	}
}

// Normalize drops the backend-only knobs so the section can be handed to
// upstream solc.
func (o *Optimizer) Normalize() {
	if o.Mode != nil || o.FallbackToOptimizingForSize != nil {
		log.Trace("Stripping backend optimizer settings", "mode", o.Mode, "fallback", o.FallbackToOptimizingForSize)
	}
	o.Mode = nil
	o.FallbackToOptimizingForSize = nil
}

func (o *Optimizer) copy() Optimizer {
	cpy := Optimizer{Enabled: o.Enabled}
	if o.Mode != nil {
		mode := *o.Mode
		cpy.Mode = &mode
	}
	if o.Details != nil {
		details := o.Details.copy()
		cpy.Details = &details
	}
	cpy.FallbackToOptimizingForSize = copyBool(o.FallbackToOptimizingForSize)
	return cpy
}

func (d *OptimizerDetails) copy() OptimizerDetails {
	return OptimizerDetails{
		Peephole:          copyBool(d.Peephole),
		Inliner:           copyBool(d.Inliner),
		JumpdestRemover:   copyBool(d.JumpdestRemover),
		OrderLiterals:     copyBool(d.OrderLiterals),
		Deduplicate:       copyBool(d.Deduplicate),
		CSE:               copyBool(d.CSE),
		ConstantOptimizer: copyBool(d.ConstantOptimizer),
		Yul:               copyBool(d.Yul),
	}
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
