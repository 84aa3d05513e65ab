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

// Package compiler models the input of the solc --standard-json interface:
// the settings object, the linker library bindings and the input envelope.
//
// 包 compiler 描述 solc --standard-json 接口的输入：设置对象、链接库绑定和输入封装。
package compiler

import (
	"fmt"
	"os"
)

// LanguageSolidity is the only source language this package emits.
const LanguageSolidity = "Solidity"

// Source is a single source unit, passed to the compiler by content.
type Source struct {
	Content string `json:"content"`
}

// NewSourceFromFile reads a source unit from disk.
func NewSourceFromFile(path string) (Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return Source{Content: string(content)}, nil
}

// Input is a complete solc --standard-json input document.
type Input struct {
	Language string            `json:"language"`
	Sources  map[string]Source `json:"sources"`
	Settings Settings          `json:"settings"`
}

// NewInput wraps the sources, keyed by source unit name, and the settings.
func NewInput(sources map[string]Source, settings *Settings) *Input {
	if sources == nil {
		sources = make(map[string]Source)
	}
	return &Input{
		Language: LanguageSolidity,
		Sources:  sources,
		Settings: *settings,
	}
}

// Normalize normalizes the embedded settings.
func (in *Input) Normalize() {
	in.Settings.Normalize()
}
