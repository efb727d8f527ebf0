package ast

import (
	"strings"

	"github.com/cwbudde/golox/internal/lexer"
)

// Block represents `{ statements... }`.
type Block struct {
	LeftBrace  lexer.Token
	Statements []Stmt
}

func (s *Block) stmtNode()          {}
func (s *Block) Pos() lexer.Position { return s.LeftBrace.Pos }
func (s *Block) String() string {
	parts := make([]string, len(s.Statements))
	for i, st := range s.Statements {
		parts[i] = st.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// ClassDecl represents `class Name < Super? { method... }`.
type ClassDecl struct {
	Name       lexer.Token
	Superclass *Variable // nil when the class has no superclass
	Methods    []*FunctionDecl
}

func (s *ClassDecl) stmtNode()          {}
func (s *ClassDecl) Pos() lexer.Position { return s.Name.Pos }
func (s *ClassDecl) String() string {
	return "(class " + s.Name.Lexeme + ")"
}

// ExprStmt wraps an expression evaluated for its side effects.
type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) stmtNode()          {}
func (s *ExprStmt) Pos() lexer.Position { return s.Expression.Pos() }
func (s *ExprStmt) String() string      { return s.Expression.String() + ";" }

// FunctionDecl represents `fun name(params) { body }`, and is reused
// verbatim for method declarations inside a ClassDecl.
type FunctionDecl struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionDecl) stmtNode()          {}
func (s *FunctionDecl) Pos() lexer.Position { return s.Name.Pos }
func (s *FunctionDecl) String() string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Lexeme
	}
	return "(fun " + s.Name.Lexeme + "(" + strings.Join(names, ", ") + "))"
}

// IfStmt represents `if (cond) then else else?`.
type IfStmt struct {
	Keyword    lexer.Token
	Condition  Expr
	Then       Stmt
	ElseBranch Stmt // nil when there is no else clause
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *IfStmt) String() string {
	return "(if " + s.Condition.String() + " " + s.Then.String() + ")"
}

// PrintStmt represents `print expr;`.
type PrintStmt struct {
	Keyword    lexer.Token
	Expression Expr
}

func (s *PrintStmt) stmtNode()          {}
func (s *PrintStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *PrintStmt) String() string      { return "(print " + s.Expression.String() + ")" }

// ReturnStmt represents `return expr?;`.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil when no value is returned
}

func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return "(return " + s.Value.String() + ")"
}

// VarDecl represents `var name = initializer?;`.
type VarDecl struct {
	Name        lexer.Token
	Initializer Expr // nil when absent
}

func (s *VarDecl) stmtNode()          {}
func (s *VarDecl) Pos() lexer.Position { return s.Name.Pos }
func (s *VarDecl) String() string {
	if s.Initializer == nil {
		return "(var " + s.Name.Lexeme + ")"
	}
	return "(var " + s.Name.Lexeme + " " + s.Initializer.String() + ")"
}

// WhileStmt represents `while (cond) body`. The parser also desugars
// `for` loops down to this node.
type WhileStmt struct {
	Keyword   lexer.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *WhileStmt) String() string {
	return "(while " + s.Condition.String() + " " + s.Body.String() + ")"
}

// BreakStmt represents `break;`.
type BreakStmt struct {
	Keyword lexer.Token
}

func (s *BreakStmt) stmtNode()          {}
func (s *BreakStmt) Pos() lexer.Position { return s.Keyword.Pos }
func (s *BreakStmt) String() string      { return "(break)" }
