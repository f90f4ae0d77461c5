// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package lexer implements a single-pass, no-backtracking lexer for the
// Monkey language.
//
// The scanner works over raw bytes with exactly one byte of lookahead.
// Input is treated as ASCII: multi-byte sequences are not decoded, each
// byte is classified on its own. Bytes that fit no token class surface as
// ILLEGAL tokens rather than errors; rejecting them is the parser's job.
package lexer

import (
	"iter"

	"github.com/monkeylang/go-monkey/lang/token"
)

// Lexer holds the state for a single-pass tokenization run.
type Lexer struct {
	filename string
	input    []byte

	// pos is the index into input of the next byte to be loaded into ch.
	// After advance(), ch == input[pos-1] and pos points one past it.
	pos  int
	line int // 1-based current line number
	col  int // 1-based current column number

	ch byte // current character; 0 when past end
}

// New creates a new Lexer for the given filename and input string.
func New(filename, input string) *Lexer {
	l := &Lexer{
		filename: filename,
		input:    []byte(input),
		line:     1,
		col:      0,
	}
	l.advance() // prime l.ch with the first byte
	return l
}

// advance moves to the next byte in the input, updating line/column tracking.
// When the end of input is reached, ch is set to 0.
func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
	l.pos++
}

// currentPos returns a token.Position capturing the lexer's state right now.
// Call this before consuming the first character of a token.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		File:   l.filename,
		Line:   l.line,
		Column: l.col,
		Offset: l.pos - 1,
	}
}

// makeToken constructs a token with the given type, literal, and position.
func makeToken(typ token.Type, literal string, pos token.Position) token.Token {
	return token.Token{Type: typ, Literal: literal, Pos: pos}
}

// skipWhitespace consumes space, tab, carriage return, and newline characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.advance()
	}
}

// NextToken scans and returns the next token from the input.
// After EOF is reached, subsequent calls continue returning EOF tokens.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()
	ch := l.ch

	if ch == 0 {
		return makeToken(token.EOF, "", pos)
	}

	l.advance() // consume ch; from here on, l.ch is the character AFTER ch

	switch {
	// Identifiers and keywords: maximal run of letters and underscore.
	case isLetter(ch):
		lit := l.readIdentFromFirst(ch)
		return makeToken(token.LookupIdent(lit), lit, pos)

	// Integer literals: maximal digit run, raw text preserved.
	case isDigit(ch):
		lit := l.readNumberFromFirst(ch)
		return makeToken(token.INT, lit, pos)

	// '=' needs one byte of lookahead for '=='.
	case ch == '=':
		if l.ch == '=' {
			l.advance()
			return makeToken(token.EQ, "==", pos)
		}
		return makeToken(token.ASSIGN, "=", pos)

	// '!' needs one byte of lookahead for '!='.
	case ch == '!':
		if l.ch == '=' {
			l.advance()
			return makeToken(token.NEQ, "!=", pos)
		}
		return makeToken(token.BANG, "!", pos)

	case ch == '+':
		return makeToken(token.PLUS, "+", pos)
	case ch == '-':
		return makeToken(token.MINUS, "-", pos)
	case ch == '*':
		return makeToken(token.STAR, "*", pos)
	case ch == '/':
		return makeToken(token.SLASH, "/", pos)
	case ch == '<':
		return makeToken(token.LT, "<", pos)
	case ch == '>':
		return makeToken(token.GT, ">", pos)
	case ch == ',':
		return makeToken(token.COMMA, ",", pos)
	case ch == ';':
		return makeToken(token.SEMICOLON, ";", pos)
	case ch == '(':
		return makeToken(token.LPAREN, "(", pos)
	case ch == ')':
		return makeToken(token.RPAREN, ")", pos)
	case ch == '{':
		return makeToken(token.LBRACE, "{", pos)
	case ch == '}':
		return makeToken(token.RBRACE, "}", pos)
	}

	// Anything else is ILLEGAL.
	return makeToken(token.ILLEGAL, string([]byte{ch}), pos)
}

// Tokenize returns all tokens (including the final EOF) produced by repeated
// calls to NextToken.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

// Tokens returns a lazy, single-use view over the remaining tokens.
// The sequence ends before the EOF token; iterating again yields nothing
// useful — construct a new Lexer to restart.
func (l *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.NextToken()
			if tok.Type == token.EOF {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// readIdentFromFirst builds an identifier literal starting with the already-
// consumed byte `first`, then consuming subsequent letter/underscore bytes.
func (l *Lexer) readIdentFromFirst(first byte) string {
	buf := make([]byte, 1, 16)
	buf[0] = first
	for isLetter(l.ch) {
		buf = append(buf, l.ch)
		l.advance()
	}
	return string(buf)
}

// readNumberFromFirst accumulates the remaining decimal digits of an integer
// literal whose first digit has already been consumed. Numeric conversion is
// deferred to the parser; leading zeros survive in the literal.
func (l *Lexer) readNumberFromFirst(first byte) string {
	buf := make([]byte, 1, 24)
	buf[0] = first
	for isDigit(l.ch) {
		buf = append(buf, l.ch)
		l.advance()
	}
	return string(buf)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
