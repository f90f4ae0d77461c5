// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package repl implements the interactive line-oriented driver for the
// Monkey front end. Each line is handed to a fresh lexer or parser; the
// driver keeps no language state between lines.
package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/monkeylang/go-monkey/lang/lexer"
	"github.com/monkeylang/go-monkey/lang/parser"
)

const (
	// DefaultPrompt matches the original line driver.
	DefaultPrompt = ">> "

	banner = "Monkey front end. Type :help for commands, :quit to exit."

	helpText = `Commands:
  :tokens   switch to token mode (print the token stream of each line)
  :parse    switch to parse mode (print the canonical rendering)
  :help     show this help
  :quit     exit
`
)

// replMode selects what happens to each input line.
type replMode int

const (
	modeParse  replMode = iota // parse and print the rendering
	modeTokens                 // lex and print the token stream
)

// Config carries the tunable REPL settings, loaded from the CLI's TOML
// config when present.
type Config struct {
	Prompt      string // defaults to DefaultPrompt
	HistoryFile string // empty disables persistent history
	MaxHistory  int    // entries kept in the history file; 0 means unlimited
}

// REPL drives the read-dispatch-print loop. Output is split so that errors
// can be routed and coloured independently of normal output.
type REPL struct {
	cfg  Config
	out  io.Writer
	errw io.Writer
	mode replMode

	errColor *color.Color
}

// New returns a REPL writing results to out and errors to errw.
func New(cfg Config, out, errw io.Writer) *REPL {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return &REPL{
		cfg:      cfg,
		out:      out,
		errw:     errw,
		mode:     modeParse,
		errColor: color.New(color.FgRed),
	}
}

// Run starts the interactive loop on the process terminal and blocks until
// the user exits. Colour is enabled only when stderr is a TTY.
func Run(cfg Config) error {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	r := New(cfg, colorable.NewColorableStdout(), colorable.NewColorableStderr())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if r.cfg.HistoryFile != "" {
		if f, err := os.Open(r.cfg.HistoryFile); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(r.out, banner)
	for {
		line, err := ln.Prompt(r.cfg.Prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted: // Ctrl+C cancels the line, not the REPL
			continue
		default: // io.EOF and real terminal errors both end the session
			fmt.Fprintln(r.out)
			return r.saveHistory(ln)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if quit := r.HandleLine(line); quit {
			return r.saveHistory(ln)
		}
	}
}

// saveHistory persists the line history, trimmed to MaxHistory entries.
func (r *REPL) saveHistory(ln *liner.State) error {
	if r.cfg.HistoryFile == "" {
		return nil
	}
	var buf bytes.Buffer
	if _, err := ln.WriteHistory(&buf); err != nil {
		return err
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if r.cfg.MaxHistory > 0 && len(lines) > r.cfg.MaxHistory {
		lines = lines[len(lines)-r.cfg.MaxHistory:]
	}
	data := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(r.cfg.HistoryFile, []byte(data), 0600)
}

// HandleLine dispatches one input line and returns true when the session
// should end. It is the unit the REPL tests drive directly.
func (r *REPL) HandleLine(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false
	case trimmed == ":quit" || trimmed == ":exit":
		return true
	case trimmed == ":tokens":
		r.mode = modeTokens
		fmt.Fprintln(r.out, "token mode")
		return false
	case trimmed == ":parse":
		r.mode = modeParse
		fmt.Fprintln(r.out, "parse mode")
		return false
	case trimmed == ":help":
		fmt.Fprint(r.out, helpText)
		return false
	case strings.HasPrefix(trimmed, ":"):
		r.errorf("unknown command %s", trimmed)
		return false
	}

	switch r.mode {
	case modeTokens:
		r.printTokens(line)
	default:
		r.printParse(line)
	}
	return false
}

// printTokens lexes the line with a fresh lexer and prints one token per
// output line, in probec's emit-tokens format.
func (r *REPL) printTokens(line string) {
	l := lexer.New("repl", line)
	for tok := range l.Tokens() {
		fmt.Fprintf(r.out, "%s\t%s\t%q\n", tok.Pos, tok.Type, tok.Literal)
	}
}

// printParse parses the line and prints the canonical rendering, or the
// parse error.
func (r *REPL) printParse(line string) {
	prog, err := parser.Parse("repl", line)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	fmt.Fprintln(r.out, prog.String())
}

func (r *REPL) errorf(format string, args ...interface{}) {
	r.errColor.Fprintf(r.errw, format+"\n", args...)
}
