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


// Package utils contains internal helper functions for solcjson commands.
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-solcjson/common/compiler"
	"github.com/ethereum/go-solcjson/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// Compiler settings
	EVMVersionFlag = &cli.StringFlag{
		Name:     "evm-version",
		Usage:    "Target EVM version (homestead .. " + compiler.LatestEVMVersion.String() + ")",
		Category: flags.CompilerCategory,
	}
	LibrariesFlag = &cli.StringSliceFlag{
		Name:     "libraries",
		Aliases:  []string{"l"},
		Usage:    "Deployed library binding <path>:<contract>=<address>, may be repeated",
		Category: flags.CompilerCategory,
	}
	RemappingsFlag = &cli.StringSliceFlag{
		Name:     "remappings",
		Usage:    "Import remapping <prefix>=<path>, may be repeated",
		Category: flags.CompilerCategory,
	}
	BasePathFlag = &flags.DirectoryFlag{
		Name:     "base-path",
		Usage:    "Directory that source file names are made relative to",
		Category: flags.CompilerCategory,
	}

	// Optimizer settings
	OptimizerEnabledFlag = &cli.BoolFlag{
		Name:     "optimizer.enabled",
		Usage:    "Enable the optimizer",
		Value:    true,
		Category: flags.OptimizerCategory,
	}
	OptimizationFlag = &cli.StringFlag{
		Name:     "optimization",
		Aliases:  []string{"O"},
		Usage:    "Backend optimization mode (0|1|2|3|s|z)",
		Category: flags.OptimizerCategory,
	}
	FallbackOzFlag = &cli.BoolFlag{
		Name:     "fallback-Oz",
		Usage:    "Retry with optimizing for size if the bytecode is too large",
		Category: flags.OptimizerCategory,
	}

	// Metadata settings
	MetadataHashFlag = &cli.StringFlag{
		Name:     "metadata-hash",
		Usage:    "Metadata hash appended to the bytecode (none|ipfs|keccak256)",
		Category: flags.MetadataCategory,
	}
	MetadataLiteralFlag = &cli.BoolFlag{
		Name:     "metadata-literal",
		Usage:    "Store sources as literal content in the metadata",
		Category: flags.MetadataCategory,
	}

	// PolkaVM settings
	HeapSizeFlag = &cli.UintFlag{
		Name:     "heap-size",
		Usage:    "Contract heap size in bytes",
		Value:    compiler.DefaultHeapSize,
		Category: flags.PolkaVMCategory,
	}
	StackSizeFlag = &cli.UintFlag{
		Name:     "stack-size",
		Usage:    "Contract stack size in bytes",
		Value:    compiler.DefaultStackSize,
		Category: flags.PolkaVMCategory,
	}
	DebugInfoFlag = &cli.BoolFlag{
		Name:     "debug-info",
		Aliases:  []string{"g"},
		Usage:    "Generate debug information",
		Category: flags.PolkaVMCategory,
	}

	// Output settings
	OutputFlag = &cli.StringSliceFlag{
		Name:     "output",
		Usage:    "Requested output for every contract, may be repeated",
		Category: flags.OutputCategory,
	}
	SolcFlag = &cli.BoolFlag{
		Name:     "solc",
		Usage:    "Strip backend-only settings so upstream solc accepts the document",
		Category: flags.OutputCategory,
	}
	PrettyFlag = &cli.BoolFlag{
		Name:     "pretty",
		Usage:    "Indent the JSON output",
		Category: flags.OutputCategory,
	}
)

// SettingsFlags are the flags that shape a settings document.
var SettingsFlags = []cli.Flag{
	EVMVersionFlag,
	LibrariesFlag,
	RemappingsFlag,
	OptimizerEnabledFlag,
	OptimizationFlag,
	FallbackOzFlag,
	MetadataHashFlag,
	MetadataLiteralFlag,
	HeapSizeFlag,
	StackSizeFlag,
	DebugInfoFlag,
	OutputFlag,
}

// SetConfig applies the command line flags on top of cfg. Library bindings
// and remappings given as flags are appended, so a flag binding overrides a
// config file binding for the same contract.
func SetConfig(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(EVMVersionFlag.Name) {
		cfg.EVMVersion = ctx.String(EVMVersionFlag.Name)
	}
	if ctx.IsSet(LibrariesFlag.Name) {
		cfg.Libraries = append(cfg.Libraries, ctx.StringSlice(LibrariesFlag.Name)...)
	}
	if ctx.IsSet(RemappingsFlag.Name) {
		cfg.Remappings = append(cfg.Remappings, ctx.StringSlice(RemappingsFlag.Name)...)
	}
	if ctx.IsSet(OutputFlag.Name) {
		cfg.Outputs = ctx.StringSlice(OutputFlag.Name)
	}
	setOptimizer(ctx, cfg)
	setMetadata(ctx, cfg)
	setPolkaVM(ctx, cfg)
}

func setOptimizer(ctx *cli.Context, cfg *Config) {
	if !ctx.IsSet(OptimizerEnabledFlag.Name) && !ctx.IsSet(OptimizationFlag.Name) && !ctx.IsSet(FallbackOzFlag.Name) {
		return
	}
	if cfg.Optimizer == nil {
		cfg.Optimizer = new(OptimizerConfig)
	}
	if ctx.IsSet(OptimizerEnabledFlag.Name) {
		enabled := ctx.Bool(OptimizerEnabledFlag.Name)
		cfg.Optimizer.Enabled = &enabled
	}
	if ctx.IsSet(OptimizationFlag.Name) {
		cfg.Optimizer.Mode = ctx.String(OptimizationFlag.Name)
	}
	if ctx.IsSet(FallbackOzFlag.Name) {
		fallback := ctx.Bool(FallbackOzFlag.Name)
		cfg.Optimizer.FallbackToSize = &fallback
	}
}

func setMetadata(ctx *cli.Context, cfg *Config) {
	if !ctx.IsSet(MetadataHashFlag.Name) && !ctx.IsSet(MetadataLiteralFlag.Name) {
		return
	}
	if cfg.Metadata == nil {
		cfg.Metadata = new(MetadataConfig)
	}
	if ctx.IsSet(MetadataHashFlag.Name) {
		cfg.Metadata.BytecodeHash = ctx.String(MetadataHashFlag.Name)
	}
	if ctx.IsSet(MetadataLiteralFlag.Name) {
		literal := ctx.Bool(MetadataLiteralFlag.Name)
		cfg.Metadata.UseLiteralContent = &literal
	}
}

func setPolkaVM(ctx *cli.Context, cfg *Config) {
	if !ctx.IsSet(HeapSizeFlag.Name) && !ctx.IsSet(StackSizeFlag.Name) && !ctx.IsSet(DebugInfoFlag.Name) {
		return
	}
	if cfg.PolkaVM == nil {
		cfg.PolkaVM = new(PolkaVMConfig)
	}
	if ctx.IsSet(HeapSizeFlag.Name) {
		cfg.PolkaVM.HeapSize = uint32(ctx.Uint(HeapSizeFlag.Name))
	}
	if ctx.IsSet(StackSizeFlag.Name) {
		cfg.PolkaVM.StackSize = uint32(ctx.Uint(StackSizeFlag.Name))
	}
	if ctx.IsSet(DebugInfoFlag.Name) {
		debug := ctx.Bool(DebugInfoFlag.Name)
		cfg.PolkaVM.DebugInformation = &debug
	}
}

// ResolvePath resolves a relative source path against the --base-path
// directory. Absolute paths are only expanded.
func ResolvePath(ctx *cli.Context, path string) string {
	path = flags.ExpandPath(path)
	base := ctx.String(BasePathFlag.Name)
	if base == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Fatalf formats a message to standard error and exits the program.
// Standard output is left alone, it only ever carries JSON.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
