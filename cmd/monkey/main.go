// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Command monkey is the driver for the Monkey language front end.
//
// Usage:
//
//	monkey lex <source.mk>     dump the token stream as a table
//	monkey parse <source.mk>   parse and print the canonical rendering
//	monkey repl                start the interactive driver
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/monkeylang/go-monkey/lang/lexer"
	"github.com/monkeylang/go-monkey/lang/parser"
	"github.com/monkeylang/go-monkey/repl"
)

const version = "0.1.0"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "print the full node structure instead of the rendering",
	}

	lexCommand = cli.Command{
		Action:    lexFile,
		Name:      "lex",
		Usage:     "Tokenize a source file and print the token stream",
		ArgsUsage: "<file>",
	}
	parseCommand = cli.Command{
		Action:    parseFile,
		Name:      "parse",
		Usage:     "Parse a source file and print the canonical rendering",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{dumpFlag},
	}
	replCommand = cli.Command{
		Action: startREPL,
		Name:   "repl",
		Usage:  "Start the interactive read-parse-print loop",
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "monkey"
	app.Version = version
	app.Usage = "Monkey language front end"
	app.Flags = []cli.Flag{configFileFlag}
	app.Commands = []cli.Command{
		lexCommand,
		parseCommand,
		replCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sourceArg reads the single source-file argument of a command.
func sourceArg(ctx *cli.Context) (name string, src string, err error) {
	if ctx.NArg() != 1 {
		return "", "", fmt.Errorf("expected exactly one source file argument")
	}
	name = ctx.Args().First()
	data, err := os.ReadFile(name)
	if err != nil {
		return "", "", err
	}
	return name, string(data), nil
}

func lexFile(ctx *cli.Context) error {
	name, src, err := sourceArg(ctx)
	if err != nil {
		return err
	}
	return writeTokenTable(os.Stdout, name, src)
}

// writeTokenTable renders the full token stream of src, EOF included, as a
// position/type/literal table.
func writeTokenTable(w io.Writer, name, src string) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Position", "Type", "Literal"})
	for _, tok := range lexer.New(name, src).Tokenize() {
		table.Append([]string{tok.Pos.String(), tok.Type.String(), tok.Literal})
	}
	table.Render()
	return nil
}

func parseFile(ctx *cli.Context) error {
	name, src, err := sourceArg(ctx)
	if err != nil {
		return err
	}
	return writeParse(os.Stdout, name, src, ctx.Bool(dumpFlag.Name))
}

// writeParse parses src and prints either the canonical rendering or, with
// dump set, the full node structure.
func writeParse(w io.Writer, name, src string, dump bool) error {
	prog, err := parser.Parse(name, src)
	if err != nil {
		return err
	}
	if dump {
		spew.Fdump(w, prog)
		return nil
	}
	fmt.Fprintln(w, prog.String())
	return nil
}

func startREPL(ctx *cli.Context) error {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return err
		}
	}
	return repl.Run(cfg.REPL)
}
