// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package parser

import (
	"fmt"

	"github.com/monkeylang/go-monkey/lang/parser"
)

// Fuzz is the fuzzing entry point. Any input must either parse cleanly or
// produce an error with a nil program; a panic is a bug. For accepted inputs
// the canonical rendering must be a fixed point: it re-parses without error
// and renders to itself.
func Fuzz(data []byte) int {
	prog, err := parser.Parse("fuzz", string(data))
	if err != nil {
		if prog != nil {
			panic("parse returned both a program and an error")
		}
		return 0
	}

	rendered := prog.String()
	again, err := parser.Parse("fuzz", rendered)
	if err != nil {
		panic(fmt.Sprintf("rendering %q of accepted input does not re-parse: %v", rendered, err))
	}
	if got := again.String(); got != rendered {
		panic(fmt.Sprintf("rendering is not a fixed point: %q vs %q", rendered, got))
	}
	return 1
}
