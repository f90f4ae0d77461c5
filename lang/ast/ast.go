// Copyright 2026 The go-monkey Authors
// This file is part of go-monkey.
//
// go-monkey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package ast defines the Abstract Syntax Tree for the Monkey language.
//
// Design overview:
//
//   - All AST nodes implement the Node interface via TokenLiteral and String.
//   - Expressions and Statements each have a marker interface that embeds
//     Node to enable type-safe dispatch.
//   - The tree is position-annotated via token.Token so error messages can
//     reference source locations.
//   - String renderings are the structural-equality oracle used by the
//     parser tests: every rendering of the implemented grammar re-parses to
//     an equivalent tree.
package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/monkeylang/go-monkey/lang/token"
)

// ---------------------------------------------------------------------------
// Core interfaces
// ---------------------------------------------------------------------------

// Node is the base interface that every AST node must implement.
type Node interface {
	// TokenLiteral returns the literal value of the token that originated this
	// node. Used primarily for debugging and testing.
	TokenLiteral() string

	// String returns the canonical textual rendering of the node.
	String() string
}

// Expression is a marker interface for all expression nodes.
// Every Expression is also a Node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a marker interface for all statement nodes.
// Every Statement is also a Node.
type Statement interface {
	Node
	statementNode()
}

// ---------------------------------------------------------------------------
// Program — root of every parse tree
// ---------------------------------------------------------------------------

// Program is the top-level AST node. It holds all statements found in a
// source file or REPL line, in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String concatenates the statement renderings with no separators.
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// ---------------------------------------------------------------------------
// Expression nodes
// ---------------------------------------------------------------------------

// Ident is an identifier reference: x, add, foobar.
type Ident struct {
	Token token.Token // the IDENT token
	Value string
}

func (e *Ident) expressionNode()      {}
func (e *Ident) TokenLiteral() string { return e.Token.Literal }
func (e *Ident) String() string       { return e.Value }

// IntLiteral is an integer literal: 42, 0, 838383.
//
// Value holds the exact decimal value of the source literal; the parser
// rejects literals that do not fit int64 instead of truncating.
type IntLiteral struct {
	Token token.Token // the INT token
	Value int64
}

func (e *IntLiteral) expressionNode()      {}
func (e *IntLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntLiteral) String() string       { return strconv.FormatInt(e.Value, 10) }

// Literal is a raw-text expression leaf that renders its stored text
// verbatim. The parser's grammar never produces it; it exists for tooling
// and tests that need to plant arbitrary rendered text into a tree.
type Literal struct {
	Token token.Token
	Value string
}

func (e *Literal) expressionNode()      {}
func (e *Literal) TokenLiteral() string { return e.Token.Literal }
func (e *Literal) String() string       { return e.Value }

// BoolLiteral is a boolean literal: true or false.
type BoolLiteral struct {
	Token token.Token // TRUE or FALSE
	Value bool
}

func (e *BoolLiteral) expressionNode()      {}
func (e *BoolLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BoolLiteral) String() string       { return strconv.FormatBool(e.Value) }

// PrefixExpr is a unary expression: !x, -x.
type PrefixExpr struct {
	Token    token.Token // the operator token
	Operator string      // "!" or "-"
	Right    Expression
}

func (e *PrefixExpr) expressionNode()      {}
func (e *PrefixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpr) String() string       { return "(" + e.Operator + e.Right.String() + ")" }

// InfixExpr is a binary infix expression: x + y, x == y, x < y, etc.
type InfixExpr struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string // "+", "-", "*", "/", "==", "!=", "<", ">"
	Right    Expression
}

func (e *InfixExpr) expressionNode()      {}
func (e *InfixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// BlockStmt is a brace-delimited sequence of statements: { stmt stmt }.
// It is a statement node but appears only as if/fn bodies in the grammar.
type BlockStmt struct {
	Token      token.Token // '{'
	Statements []Statement
}

func (s *BlockStmt) statementNode()       {}
func (s *BlockStmt) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, st := range s.Statements {
		out.WriteString(st.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfExpr is an if/else expression: if (cond) { consequence } else { alternative }.
// Alternative is nil when there is no else branch.
type IfExpr struct {
	Token       token.Token // 'if'
	Condition   Expression
	Consequence *BlockStmt
	Alternative *BlockStmt
}

func (e *IfExpr) expressionNode()      {}
func (e *IfExpr) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpr) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(e.Condition.String())
	out.WriteString(") ")
	out.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(e.Alternative.String())
	}
	return out.String()
}

// FnLiteral is an anonymous function literal: fn(x, y) { body }.
type FnLiteral struct {
	Token  token.Token // 'fn'
	Params []*Ident
	Body   *BlockStmt
}

func (e *FnLiteral) expressionNode()      {}
func (e *FnLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FnLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("fn(")
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.String()
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(e.Body.String())
	return out.String()
}

// CallExpr is a call expression: f(x, y), fn(x) { x }(5).
type CallExpr struct {
	Token     token.Token // '('
	Function  Expression  // the callee — an Ident or FnLiteral
	Arguments []Expression
}

func (e *CallExpr) expressionNode()      {}
func (e *CallExpr) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(e.Function.String())
	out.WriteString("(")
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// ---------------------------------------------------------------------------
// Statement nodes
// ---------------------------------------------------------------------------

// LetStmt introduces a new binding: let name = expr;
type LetStmt struct {
	Token token.Token // 'let'
	Name  *Ident
	Value Expression
}

func (s *LetStmt) statementNode()       {}
func (s *LetStmt) TokenLiteral() string { return s.Token.Literal }
func (s *LetStmt) String() string {
	var out bytes.Buffer
	out.WriteString(s.TokenLiteral())
	out.WriteString(" ")
	out.WriteString(s.Name.String())
	out.WriteString(" = ")
	out.WriteString(s.Value.String())
	out.WriteString(";")
	return out.String()
}

// ReturnStmt exits the enclosing function with a value: return expr;
type ReturnStmt struct {
	Token token.Token // 'return'
	Value Expression
}

func (s *ReturnStmt) statementNode()       {}
func (s *ReturnStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStmt) String() string {
	return s.TokenLiteral() + " " + s.Value.String() + ";"
}

// ExprStmt wraps an expression used in a statement position.
// It renders as the bare expression with no added punctuation.
type ExprStmt struct {
	Token      token.Token // first token of the expression
	Expression Expression
}

func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ExprStmt) String() string       { return s.Expression.String() }
