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


// solcjson builds solc standard-JSON settings and input documents.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-solcjson/cmd/utils"
	"github.com/ethereum/go-solcjson/common/compiler"
	"github.com/ethereum/go-solcjson/internal/debug"
	"github.com/ethereum/go-solcjson/internal/flags"
	"github.com/ethereum/go-solcjson/internal/version"
	"github.com/ethereum/go-solcjson/log"
	"github.com/urfave/cli/v2"
)

const (
	clientIdentifier = "solcjson" // Client identifier used in logs and help
)

var (
	settingsFlags = flags.Merge(utils.SettingsFlags, []cli.Flag{configFileFlag})

	outputFlags = []cli.Flag{
		utils.SolcFlag,
		utils.PrettyFlag,
	}
)

var app = flags.NewApp("the solc standard-JSON settings tool")

func init() {
	// Initialize the CLI app
	app.Name = clientIdentifier
	app.Action = settings
	app.Commands = []*cli.Command{
		// see commands.go
		inputCommand,
		normalizeCommand,
		librariesCommand,
		// see config.go
		dumpConfigCommand,
		utils.ShowDeprecated,
	}
	app.Flags = flags.Merge(
		settingsFlags,
		outputFlags,
		[]cli.Flag{utils.BasePathFlag},
		utils.DeprecatedFlags,
		debug.Flags,
	)
	app.Before = func(ctx *cli.Context) error {
		if err := debug.Setup(ctx); err != nil {
			return err
		}
		log.Debug("Starting", "version", version.Info(clientIdentifier))
		utils.WarnDeprecated(ctx)
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}

// settings is the main entry point into the system if no special subcommand
// is run. It builds a settings document from the config file and flags and
// prints it.
func settings(ctx *cli.Context) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %s", args[0])
	}
	s, err := makeSettings(ctx)
	if err != nil {
		return err
	}
	return writeJSON(ctx, s)
}

// makeSettings assembles the settings from defaults, config file and flags,
// normalizing them for upstream solc if requested.
func makeSettings(ctx *cli.Context) (*compiler.Settings, error) {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return nil, err
	}
	s, err := utils.MakeSettings(&cfg)
	if err != nil {
		return nil, err
	}
	if ctx.Bool(utils.SolcFlag.Name) {
		s = solcSettings(s)
	}
	log.Info("Built settings", "settings", s)
	return s, nil
}

// solcSettings returns a normalized copy of s, logging what upstream solc
// would not have accepted. The original is left untouched.
func solcSettings(s *compiler.Settings) *compiler.Settings {
	solc := s.Copy()
	solc.Normalize()
	if s.PolkaVM != nil || s.Optimizer.Mode != nil || s.Optimizer.FallbackToOptimizingForSize != nil {
		log.Info("Stripped backend settings for solc", "polkavm", s.PolkaVM != nil, "mode", s.Optimizer.Mode,
			"fallback", s.Optimizer.FallbackToOptimizingForSize)
	}
	return solc
}

// writeJSON prints v to the app writer, indented if --pretty is set.
func writeJSON(ctx *cli.Context, v interface{}) error {
	var (
		out []byte
		err error
	)
	if ctx.Bool(utils.PrettyFlag.Name) {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(append(out, '\n'))
	return err
}
