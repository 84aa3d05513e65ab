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


package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/ethereum/go-solcjson/cmd/utils"
	"github.com/ethereum/go-solcjson/internal/flags"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       flags.Merge([]cli.Flag{configFileFlag}, utils.SettingsFlags),
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}

	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML or HCL configuration file",
		Category: flags.MiscCategory,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// loadConfig decodes file into cfg. Files ending in .hcl are read as HCL,
// everything else as TOML.
func loadConfig(file string, cfg *utils.Config) error {
	if filepath.Ext(file) == ".hcl" {
		return loadHCLConfig(file, cfg)
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func loadHCLConfig(file string, cfg *utils.Config) error {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}
	if diags := gohcl.DecodeBody(f.Body, nil, cfg); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}
	return nil
}

// loadBaseConfig loads the configuration based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (utils.Config, error) {
	// Load defaults.
	cfg := utils.DefaultConfig()

	// Load config file.
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return utils.Config{}, err
		}
	}

	// Apply flags.
	utils.SetConfig(ctx, &cfg)
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	settings, err := utils.MakeSettings(&cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	// Dump the resolved bindings, sorted and without overridden duplicates.
	if settings.Libraries.Len() > 0 {
		cfg.Libraries = settings.Libraries.Bindings()
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	var dump io.Writer = ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
