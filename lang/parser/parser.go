// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package parser implements a recursive-descent / Pratt parser for the Monkey
// language.
//
// Design overview:
//
//   - Statements are parsed with straightforward recursive descent.
//   - Expressions are parsed with a Pratt (top-down operator precedence) table.
//   - Parsing aborts at the first error: ParseProgram returns a nil program
//     together with a *ParseError carrying the source position. A partially
//     built tree is never handed to the caller.
//   - The parser keeps a one-token lookahead (cur/peek) over the lexer and
//     never materialises the full token stream.
package parser

import (
	"fmt"
	"strconv"

	"github.com/monkeylang/go-monkey/lang/ast"
	"github.com/monkeylang/go-monkey/lang/lexer"
	"github.com/monkeylang/go-monkey/lang/token"
)

// ---------------------------------------------------------------------------
// Precedence levels (Pratt)
// ---------------------------------------------------------------------------

type precedence int

const (
	precLowest      precedence = iota // base
	precEquals                        // == !=
	precLessGreater                   // < >
	precSum                           // + -
	precProduct                       // * /
	precPrefix                        // -x !x
	precCall                          // f(x)
)

// infixPrecedence maps a token type to its infix binding power.
var infixPrecedence = map[token.Type]precedence{
	token.EQ:     precEquals,
	token.NEQ:    precEquals,
	token.LT:     precLessGreater,
	token.GT:     precLessGreater,
	token.PLUS:   precSum,
	token.MINUS:  precSum,
	token.STAR:   precProduct,
	token.SLASH:  precProduct,
	token.LPAREN: precCall,
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// ParseError is the error type returned for every malformed input. It carries
// the position of the offending token so tooling can point at the source.
type ParseError struct {
	Pos token.Position
	Msg string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// ---------------------------------------------------------------------------
// Parser
// ---------------------------------------------------------------------------

// Parser holds the mutable state for a single parse run.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token // current token
	peek token.Token // lookahead token
}

// New initialises a Parser over an existing lexer. The parser takes over the
// lexer's remaining token stream.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	// Prime cur and peek.
	p.advance()
	p.advance()
	return p
}

// Parse is the one-shot convenience entry point over source text. The
// filename is used only for error positions.
func Parse(filename, source string) (*ast.Program, error) {
	return New(lexer.New(filename, source)).ParseProgram()
}

// ParseProgram consumes the token stream and returns the program AST. On the
// first malformed construct it stops and returns a nil program and the error.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		p.advance()
	}
	return prog, nil
}

// ---------------------------------------------------------------------------
// Token navigation helpers
// ---------------------------------------------------------------------------

// advance shifts the one-token lookahead window.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// expectPeek consumes the peek token if it matches typ, otherwise returns an
// error without advancing.
func (p *Parser) expectPeek(typ token.Type) error {
	if p.peek.Type == typ {
		p.advance()
		return nil
	}
	return p.errorf(p.peek.Pos, "expected %s, got %s (%q)", typ, p.peek.Type, p.peek.Literal)
}

// curIs returns true if the current token has the given type.
func (p *Parser) curIs(typ token.Type) bool { return p.cur.Type == typ }

// peekIs returns true if the lookahead token has the given type.
func (p *Parser) peekIs(typ token.Type) bool { return p.peek.Type == typ }

// curPrecedence returns the infix binding power of the current token.
func (p *Parser) curPrecedence() precedence {
	if prec, ok := infixPrecedence[p.cur.Type]; ok {
		return prec
	}
	return precLowest
}

// peekPrecedence returns the infix binding power of the lookahead token.
func (p *Parser) peekPrecedence() precedence {
	if prec, ok := infixPrecedence[p.peek.Type]; ok {
		return prec
	}
	return precLowest
}

// errorf builds a parse error at the given position.
func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// parseStatement dispatches on the current token. On return the current token
// is the last token of the statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses "let IDENT = expr ;". The trailing semicolon is
// mandatory.
func (p *Parser) parseLetStmt() (*ast.LetStmt, error) {
	tok := p.cur // 'let'

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	name := &ast.Ident{Token: p.cur, Value: p.cur.Literal}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.advance()

	val, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.LetStmt{Token: tok, Name: name, Value: val}, nil
}

// parseReturnStmt parses "return expr [;]". The semicolon is consumed when
// present but its absence is tolerated.
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	tok := p.cur // 'return'
	p.advance()

	val, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return &ast.ReturnStmt{Token: tok, Value: val}, nil
}

// parseExprStmt parses a bare expression in statement position, with an
// optional trailing semicolon.
func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	tok := p.cur

	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}
	return &ast.ExprStmt{Token: tok, Expression: expr}, nil
}

// parseBlock parses "{ { statement } }" with the current token on '{'.
// On return the current token is the closing '}'.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	tok := p.cur // '{'
	p.advance()

	block := &ast.BlockStmt{Token: tok}
	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			return nil, p.errorf(p.cur.Pos, "expected %s, got %s", token.RBRACE, token.EOF)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.advance()
	}
	return block, nil
}

// ---------------------------------------------------------------------------
// Expression parsing — Pratt / TDOP
// ---------------------------------------------------------------------------

// parseExpression is the Pratt entry point. It parses a prefix expression
// first, then repeatedly folds infix operators whose binding power is
// strictly greater than `prec`. On return the current token is the last
// token of the expression.
func (p *Parser) parseExpression(prec precedence) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.SEMICOLON) && prec < p.peekPrecedence() {
		p.advance()
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// parsePrefix dispatches to the handler for the current token when it appears
// at prefix (left-edge) position.
func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.cur.Type {
	case token.IDENT:
		return &ast.Ident{Token: p.cur, Value: p.cur.Literal}, nil
	case token.INT:
		return p.parseIntLiteral()
	case token.TRUE:
		return &ast.BoolLiteral{Token: p.cur, Value: true}, nil
	case token.FALSE:
		return &ast.BoolLiteral{Token: p.cur, Value: false}, nil
	case token.BANG, token.MINUS:
		return p.parsePrefixExpr()
	case token.LPAREN:
		return p.parseGroupedExpr()
	case token.IF:
		return p.parseIfExpr()
	case token.FN:
		return p.parseFnLiteral()
	default:
		return nil, p.errorf(p.cur.Pos, "unexpected token %s (%q) in expression", p.cur.Type, p.cur.Literal)
	}
}

// parseInfix handles operators that appear between two expressions, with the
// current token on the operator. left is the already-parsed operand.
func (p *Parser) parseInfix(left ast.Expression) (ast.Expression, error) {
	if p.curIs(token.LPAREN) {
		return p.parseCallExpr(left)
	}
	return p.parseBinaryExpr(left)
}

// parseBinaryExpr parses a left-associative binary infix expression.
func (p *Parser) parseBinaryExpr(left ast.Expression) (ast.Expression, error) {
	tok := p.cur
	op := p.cur.Literal
	prec := p.curPrecedence()
	p.advance()
	right, err := p.parseExpression(prec) // left-associative: same prec cuts off
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpr{Token: tok, Left: left, Operator: op, Right: right}, nil
}

// parsePrefixExpr parses "!expr" and "-expr".
func (p *Parser) parsePrefixExpr() (ast.Expression, error) {
	tok := p.cur
	op := p.cur.Literal
	p.advance()
	right, err := p.parseExpression(precPrefix)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpr{Token: tok, Operator: op, Right: right}, nil
}

// parseGroupedExpr parses "( expr )". The parentheses leave no trace in the
// tree; grouping survives only through rendering parenthesisation.
func (p *Parser) parseGroupedExpr() (ast.Expression, error) {
	p.advance() // consume '('
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIfExpr parses "if ( expr ) block [ else block ]". The condition
// parentheses and both braces are mandatory.
func (p *Parser) parseIfExpr() (ast.Expression, error) {
	tok := p.cur // 'if'

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	p.advance()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	consequence, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpr{Token: tok, Condition: cond, Consequence: consequence}
	if p.peekIs(token.ELSE) {
		p.advance()
		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}
		expr.Alternative, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// parseFnLiteral parses "fn ( [ param_list ] ) block".
func (p *Parser) parseFnLiteral() (ast.Expression, error) {
	tok := p.cur // 'fn'

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseFnParams()
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FnLiteral{Token: tok, Params: params, Body: body}, nil
}

// parseFnParams parses "IDENT { , IDENT }" until ')' with the current token
// on '('. On return the current token is the closing ')'.
func (p *Parser) parseFnParams() ([]*ast.Ident, error) {
	if p.peekIs(token.RPAREN) {
		p.advance()
		return nil, nil
	}

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	params := []*ast.Ident{{Token: p.cur, Value: p.cur.Literal}}

	for p.peekIs(token.COMMA) {
		p.advance()
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		params = append(params, &ast.Ident{Token: p.cur, Value: p.cur.Literal})
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseCallExpr parses "left ( [ arg_list ] )" with the current token on '('.
func (p *Parser) parseCallExpr(left ast.Expression) (ast.Expression, error) {
	tok := p.cur // '('
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Token: tok, Function: left, Arguments: args}, nil
}

// parseArgList parses "expr { , expr }" until ')'. On return the current
// token is the closing ')'.
func (p *Parser) parseArgList() ([]ast.Expression, error) {
	if p.peekIs(token.RPAREN) {
		p.advance()
		return nil, nil
	}

	p.advance()
	arg, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	args := []ast.Expression{arg}

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		arg, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// ---------------------------------------------------------------------------
// Literal parsers
// ---------------------------------------------------------------------------

// parseIntLiteral converts the raw digits of an INT token. Values outside
// int64 are a parse error, not a truncation.
func (p *Parser) parseIntLiteral() (ast.Expression, error) {
	tok := p.cur
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, p.errorf(tok.Pos, "malformed numeric literal %q: %v", tok.Literal, err)
	}
	return &ast.IntLiteral{Token: tok, Value: val}, nil
}
