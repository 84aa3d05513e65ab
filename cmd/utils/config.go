// Copyright 2025 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"fmt"

	"github.com/ethereum/go-solcjson/common/compiler"
	"github.com/ethereum/go-solcjson/log"
)

// Config is the file-backed configuration of a settings document. Every
// field is optional, flags given on the command line take precedence.
type Config struct {
	EVMVersion string   `toml:",omitempty" hcl:"evm_version,optional"`
	Libraries  []string `toml:",omitempty" hcl:"libraries,optional"`
	Remappings []string `toml:",omitempty" hcl:"remappings,optional"`
	Outputs    []string `toml:",omitempty" hcl:"outputs,optional"`

	Optimizer *OptimizerConfig `toml:",omitempty" hcl:"optimizer,block"`
	Metadata  *MetadataConfig  `toml:",omitempty" hcl:"metadata,block"`
	PolkaVM   *PolkaVMConfig   `toml:",omitempty" hcl:"polkavm,block"`
}

// OptimizerConfig configures the optimizer section.
type OptimizerConfig struct {
	Enabled        *bool  `toml:",omitempty" hcl:"enabled,optional"`
	Mode           string `toml:",omitempty" hcl:"mode,optional"`
	FallbackToSize *bool  `toml:",omitempty" hcl:"fallback_to_size,optional"`
}

// MetadataConfig configures the metadata section.
type MetadataConfig struct {
	BytecodeHash      string `toml:",omitempty" hcl:"bytecode_hash,optional"`
	UseLiteralContent *bool  `toml:",omitempty" hcl:"use_literal_content,optional"`
}

// PolkaVMConfig configures the backend section. Zero sizes select the
// backend defaults.
type PolkaVMConfig struct {
	HeapSize         uint32 `toml:",omitempty" hcl:"heap_size,optional"`
	StackSize        uint32 `toml:",omitempty" hcl:"stack_size,optional"`
	DebugInformation *bool  `toml:",omitempty" hcl:"debug_information,optional"`
}

// DefaultOutputs is the output selection used when none is configured.
var DefaultOutputs = []string{
	string(compiler.SelectionABI),
	string(compiler.SelectionMetadata),
	string(compiler.SelectionMethodIdentifiers),
	string(compiler.SelectionBytecode),
	string(compiler.SelectionDeployedBytecode),
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	enabled := true
	return Config{
		Outputs: append([]string{}, DefaultOutputs...),
		Optimizer: &OptimizerConfig{
			Enabled: &enabled,
			Mode:    compiler.OptimizationAggressive.String(),
		},
	}
}

// MakeSettings converts the configuration into standard-JSON settings.
func MakeSettings(cfg *Config) (*compiler.Settings, error) {
	var evmVersion *compiler.EVMVersion
	if cfg.EVMVersion != "" {
		v, err := compiler.ParseEVMVersion(cfg.EVMVersion)
		if err != nil {
			return nil, err
		}
		evmVersion = &v
	}
	libraries, err := compiler.ParseLibraries(cfg.Libraries)
	if err != nil {
		return nil, err
	}
	var remappings = compiler.NewRemappings(cfg.Remappings...)
	if len(cfg.Remappings) == 0 {
		remappings = nil
	}
	selection := make(compiler.Selection)
	for _, output := range cfg.Outputs {
		flag := compiler.SelectionFlag(output)
		if selection.Contains(compiler.Wildcard, compiler.Wildcard, flag) {
			log.Warn("Skipping output already selected", "output", output)
			continue
		}
		selection.Add(compiler.Wildcard, compiler.Wildcard, flag)
	}
	optimizer, err := makeOptimizer(cfg.Optimizer)
	if err != nil {
		return nil, err
	}
	metadata, err := makeMetadata(cfg.Metadata)
	if err != nil {
		return nil, err
	}
	return compiler.NewSettings(evmVersion, libraries, remappings, selection, optimizer, metadata, makePolkaVM(cfg.PolkaVM)), nil
}

func makeOptimizer(cfg *OptimizerConfig) (compiler.Optimizer, error) {
	optimizer := compiler.Optimizer{Enabled: true}
	if cfg == nil {
		return optimizer, nil
	}
	if cfg.Enabled != nil {
		optimizer.Enabled = *cfg.Enabled
	}
	if cfg.Mode != "" {
		mode, err := compiler.ParseOptimizationMode(cfg.Mode)
		if err != nil {
			return compiler.Optimizer{}, err
		}
		optimizer.Mode = &mode
	}
	if cfg.FallbackToSize != nil {
		fallback := *cfg.FallbackToSize
		optimizer.FallbackToOptimizingForSize = &fallback
	}
	return optimizer, nil
}

func makeMetadata(cfg *MetadataConfig) (*compiler.Metadata, error) {
	if cfg == nil {
		return nil, nil
	}
	metadata := new(compiler.Metadata)
	if cfg.BytecodeHash != "" {
		hash, err := compiler.ParseMetadataHash(cfg.BytecodeHash)
		if err != nil {
			return nil, fmt.Errorf("invalid metadata config: %w", err)
		}
		metadata.BytecodeHash = &hash
	}
	if cfg.UseLiteralContent != nil {
		literal := *cfg.UseLiteralContent
		metadata.UseLiteralContent = &literal
	}
	return metadata, nil
}

func makePolkaVM(cfg *PolkaVMConfig) *compiler.PolkaVM {
	if cfg == nil {
		return nil
	}
	polkavm := new(compiler.PolkaVM)
	if cfg.HeapSize != 0 || cfg.StackSize != 0 {
		memory := compiler.DefaultMemoryConfig()
		if cfg.HeapSize != 0 {
			memory.HeapSize = cfg.HeapSize
		}
		if cfg.StackSize != 0 {
			memory.StackSize = cfg.StackSize
		}
		polkavm.MemoryConfig = memory
	}
	if cfg.DebugInformation != nil {
		debug := *cfg.DebugInformation
		polkavm.DebugInformation = &debug
	}
	return polkavm
}
