// Package ast defines the Abstract Syntax Tree node types produced by
// the parser and consumed by the resolver and interpreter.
package ast

import "github.com/cwbudde/golox/internal/lexer"

// Node is the base interface for all AST nodes: every node can report
// its source position and a debug string.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Expr is any node that produces a value. Every expression node carries
// a process-wide unique id assigned at parse time (uid): the resolver
// keys its side table by this id rather than by node identity or
// structural equality, so two syntactically identical variable
// references at different points in the source resolve independently.
type Expr interface {
	Node
	exprNode()
	UID() int
}

// Stmt is a node that performs an action but produces no value.
type Stmt interface {
	Node
	stmtNode()
}

// nextUID is the monotonically increasing counter backing every
// expression's uid. Parses are assumed non-concurrent: this is the
// only global mutable state the implementation requires.
var nextUID int

// NewUID returns a fresh, process-wide unique expression id.
func NewUID() int {
	nextUID++
	return nextUID
}

// exprBase gives every expression node its uid and embeds it via
// composition rather than repeating the field and UID() method on each
// type.
type exprBase struct {
	uid int
}

func newExprBase() exprBase {
	return exprBase{uid: NewUID()}
}

func (b exprBase) UID() int { return b.uid }

// Program is the root node: the full sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}
