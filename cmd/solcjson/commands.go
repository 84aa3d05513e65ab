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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ethereum/go-solcjson/cmd/utils"
	"github.com/ethereum/go-solcjson/common/compiler"
	"github.com/ethereum/go-solcjson/internal/flags"
	"github.com/ethereum/go-solcjson/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	inputCommand = &cli.Command{
		Action:    makeInput,
		Name:      "input",
		Usage:     "Print a standard-JSON input for the given source files",
		ArgsUsage: "<sourcefile> (<sourcefile 2> ... <sourcefile N>)",
		Flags:     flags.Merge(settingsFlags, outputFlags, []cli.Flag{utils.BasePathFlag}),
		Description: `
The input command reads every source file and wraps their contents, together
with the settings built from the config file and flags, into a standard-JSON
input document. Source unit names are the paths as given on the command line,
relative paths are read from --base-path when set.`,
	}
	normalizeCommand = &cli.Command{
		Action:    normalize,
		Name:      "normalize",
		Usage:     "Strip backend-only settings from a settings or input document",
		ArgsUsage: "<file (optional)>",
		Flags:     []cli.Flag{utils.PrettyFlag},
		Description: `
The normalize command reads a settings document, or a full standard-JSON input,
from the given file or from stdin and prints it in the form upstream solc
accepts.`,
	}
	librariesCommand = &cli.Command{
		Action:    parseLibraries,
		Name:      "libraries",
		Usage:     "Parse library bindings into the settings libraries map",
		ArgsUsage: "<path:contract=address> (<binding 2> ... <binding N>)",
		Flags:     []cli.Flag{utils.PrettyFlag},
	}
)

var errNoSources = errors.New("no source files given")

func makeInput(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoSources
	}
	settings, err := makeSettings(ctx)
	if err != nil {
		return err
	}
	var (
		args    = ctx.Args().Slice()
		read    = make([]compiler.Source, len(args))
		g       errgroup.Group
		sources = make(map[string]compiler.Source, len(args))
	)
	g.SetLimit(runtime.NumCPU())
	for i, arg := range args {
		g.Go(func() error {
			src, err := compiler.NewSourceFromFile(utils.ResolvePath(ctx, arg))
			if err != nil {
				return err
			}
			read[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, arg := range args {
		name := filepath.ToSlash(filepath.Clean(arg))
		if _, ok := sources[name]; ok {
			log.Warn("Duplicate source file", "name", name)
		}
		sources[name] = read[i]
	}
	log.Info("Built input", "sources", len(sources))
	return writeJSON(ctx, compiler.NewInput(sources, settings))
}

func normalize(ctx *cli.Context) error {
	var r io.Reader = ctx.App.Reader
	if ctx.NArg() > 0 {
		f, err := os.Open(ctx.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	doc.Normalize()
	return writeJSON(ctx, doc)
}

// decodeDocument decodes either a full input document, recognized by its
// language or sources key, or a bare settings document.
func decodeDocument(data []byte) (compiler.Normalizer, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	_, hasLanguage := keys["language"]
	_, hasSources := keys["sources"]
	if hasLanguage || hasSources {
		input := new(compiler.Input)
		if err := json.Unmarshal(data, input); err != nil {
			return nil, fmt.Errorf("invalid input document: %w", err)
		}
		return input, nil
	}
	settings := new(compiler.Settings)
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid settings document: %w", err)
	}
	return settings, nil
}

func parseLibraries(ctx *cli.Context) error {
	libraries, err := compiler.ParseLibraries(ctx.Args().Slice())
	if err != nil {
		return err
	}
	for _, binding := range libraries.Bindings() {
		log.Debug("Resolved library", "binding", binding)
	}
	log.Info("Parsed libraries", "files", len(libraries), "bindings", libraries.Len())
	return writeJSON(ctx, libraries)
}
