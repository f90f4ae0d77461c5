// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	cases := map[string]Type{
		"fn":     FN,
		"let":    LET,
		"true":   TRUE,
		"false":  FALSE,
		"if":     IF,
		"else":   ELSE,
		"return": RETURN,
		"foobar": IDENT,
		"lets":   IDENT,
		"Let":    IDENT,
		"":       IDENT,
	}
	for ident, want := range cases {
		assert.Equal(t, want, LookupIdent(ident), "LookupIdent(%q)", ident)
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, LET.IsKeyword())
	assert.True(t, RETURN.IsKeyword())
	assert.False(t, IDENT.IsKeyword())
	assert.False(t, ILLEGAL.IsKeyword())

	assert.True(t, ASSIGN.IsOperator())
	assert.True(t, NEQ.IsOperator())
	assert.False(t, SEMICOLON.IsOperator())
	assert.False(t, FN.IsOperator())

	assert.True(t, IDENT.IsLiteral())
	assert.True(t, INT.IsLiteral())
	assert.False(t, TRUE.IsLiteral())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "==", EQ.String())
	assert.Equal(t, "ILLEGAL", ILLEGAL.String())
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "let", LET.String())
}

func TestPositionString(t *testing.T) {
	pos := Position{File: "main.mk", Line: 3, Column: 14, Offset: 42}
	assert.Equal(t, "main.mk:3:14", pos.String())
}

func TestTokenString(t *testing.T) {
	// Literal-bearing tokens display their text, fixed tokens their type form.
	assert.Equal(t, "x", Token{Type: IDENT, Literal: "x"}.String())
	assert.Equal(t, "42", Token{Type: INT, Literal: "42"}.String())
	assert.Equal(t, "==", Token{Type: EQ, Literal: "=="}.String())
}
