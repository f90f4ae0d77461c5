// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/naoina/toml"

	"github.com/monkeylang/go-monkey/repl"
)

// monkeyConfig is the top-level TOML configuration shape:
//
//	[REPL]
//	Prompt = ">> "
//	HistoryFile = "/home/user/.monkey_history"
//	MaxHistory = 1000
type monkeyConfig struct {
	REPL repl.Config
}

func defaultConfig() monkeyConfig {
	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, ".monkey_history")
	}
	return monkeyConfig{
		REPL: repl.Config{
			Prompt:      repl.DefaultPrompt,
			HistoryFile: histPath,
			MaxHistory:  1000,
		},
	}
}

// tomlSettings ensures that TOML keys use the same names as Go struct fields
// and that unknown keys are flagged instead of silently dropped.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		if !unicode.IsUpper(rune(field[0])) {
			// A lowercase key is probably deliberate metadata, ignore it.
			return nil
		}
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

func loadConfig(file string, cfg *monkeyConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add the file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}
