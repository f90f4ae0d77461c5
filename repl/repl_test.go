// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestREPL() (*REPL, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	out := new(bytes.Buffer)
	errw := new(bytes.Buffer)
	return New(Config{}, out, errw), out, errw
}

func TestParseModeRendersProgram(t *testing.T) {
	r, out, errw := newTestREPL()
	if quit := r.HandleLine("let x = 1 + 2 * 3;"); quit {
		t.Fatal("HandleLine requested quit")
	}
	if got, want := out.String(), "let x = (1 + (2 * 3));\n"; got != want {
		t.Errorf("output: want %q, got %q", want, got)
	}
	if errw.Len() != 0 {
		t.Errorf("unexpected error output: %q", errw.String())
	}
}

func TestParseModeReportsErrors(t *testing.T) {
	r, out, errw := newTestREPL()
	r.HandleLine("let = 5;")
	if out.Len() != 0 {
		t.Errorf("unexpected output: %q", out.String())
	}
	if !strings.Contains(errw.String(), "expected IDENT") {
		t.Errorf("error output %q does not mention expected IDENT", errw.String())
	}
	// The next line parses fine; the failed line must leave no state behind.
	errw.Reset()
	r.HandleLine("5;")
	if errw.Len() != 0 {
		t.Errorf("unexpected error output after recovery: %q", errw.String())
	}
}

func TestTokenMode(t *testing.T) {
	r, out, _ := newTestREPL()
	r.HandleLine(":tokens")
	out.Reset()

	r.HandleLine("let x")
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 token lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "let") {
		t.Errorf("first token line %q does not mention let", lines[0])
	}
	if !strings.Contains(lines[1], "IDENT") {
		t.Errorf("second token line %q does not mention IDENT", lines[1])
	}

	// Switching back restores parsing.
	out.Reset()
	r.HandleLine(":parse")
	out.Reset()
	r.HandleLine("true;")
	if got := out.String(); got != "true\n" {
		t.Errorf("after :parse: want %q, got %q", "true\n", got)
	}
}

func TestCommands(t *testing.T) {
	r, out, errw := newTestREPL()
	if !r.HandleLine(":quit") {
		t.Error(":quit should end the session")
	}
	if !r.HandleLine(":exit") {
		t.Error(":exit should end the session")
	}
	if r.HandleLine("") {
		t.Error("blank line should not end the session")
	}
	r.HandleLine(":help")
	if !strings.Contains(out.String(), ":tokens") {
		t.Errorf("help output %q does not list :tokens", out.String())
	}
	r.HandleLine(":bogus")
	if !strings.Contains(errw.String(), "unknown command") {
		t.Errorf("error output %q does not flag unknown command", errw.String())
	}
}
