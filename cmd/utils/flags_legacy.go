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

	"github.com/ethereum/go-solcjson/internal/flags"
	"github.com/ethereum/go-solcjson/log"
	"github.com/urfave/cli/v2"
)

var ShowDeprecated = &cli.Command{
	Action:      showDeprecated,
	Name:        "show-deprecated-flags",
	Usage:       "Show flags that have been deprecated",
	ArgsUsage:   " ",
	Description: "Show flags that have been deprecated and will soon be removed",
}

var DeprecatedFlags = []cli.Flag{
	ViaIRFlag,
	ForceEVMLAFlag,
}

var (
	// Deprecated: the IR pipeline is always used.
	ViaIRFlag = &cli.BoolFlag{
		Name:     "via-ir",
		Usage:    "Compile through the Yul IR pipeline (deprecated, always enabled)",
		Category: flags.DeprecatedCategory,
	}
	// Deprecated: the legacy EVM assembly pipeline is gone.
	ForceEVMLAFlag = &cli.BoolFlag{
		Name:     "force-evmla",
		Usage:    "Use the legacy EVM assembly pipeline (deprecated, ignored)",
		Category: flags.DeprecatedCategory,
	}
)

// WarnDeprecated logs a warning for every deprecated flag that was given.
func WarnDeprecated(ctx *cli.Context) {
	for _, flag := range DeprecatedFlags {
		name := flag.Names()[0]
		if ctx.IsSet(name) {
			log.Warn("Ignoring deprecated flag", "flag", name)
		}
	}
}

// showDeprecated displays deprecated flags that will be soon removed from the codebase.
func showDeprecated(ctx *cli.Context) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, "--------------------------------------------------------------------")
	fmt.Fprintln(w, "The following flags are deprecated and will be removed in the future!")
	fmt.Fprintln(w, "--------------------------------------------------------------------")
	fmt.Fprintln(w)
	for _, flag := range DeprecatedFlags {
		fmt.Fprintln(w, flag.String())
	}
	fmt.Fprintln(w)
	return nil
}
