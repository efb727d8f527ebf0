package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cwbudde/golox/internal/lexer"
)

// Assign represents `name = value`.
type Assign struct {
	exprBase
	Name  lexer.Token
	Value Expr
}

func (e *Assign) exprNode()        {}
func (e *Assign) Pos() lexer.Position { return e.Name.Pos }
func (e *Assign) String() string {
	return "(" + e.Name.Lexeme + " = " + e.Value.String() + ")"
}

// Binary represents `left operator right`.
type Binary struct {
	exprBase
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) exprNode()        {}
func (e *Binary) Pos() lexer.Position { return e.Operator.Pos }
func (e *Binary) String() string {
	return "(" + e.Operator.Lexeme + " " + e.Left.String() + " " + e.Right.String() + ")"
}

// Call represents `callee(arguments...)`.
type Call struct {
	exprBase
	Callee    Expr
	Paren     lexer.Token // closing ')' — carries the call's line for error reporting
	Arguments []Expr
}

func (e *Call) exprNode()        {}
func (e *Call) Pos() lexer.Position { return e.Paren.Pos }
func (e *Call) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return "(call " + e.Callee.String() + " " + strings.Join(args, " ") + ")"
}

// Get represents `object.name`, a property read.
type Get struct {
	exprBase
	Object Expr
	Name   lexer.Token
}

func (e *Get) exprNode()        {}
func (e *Get) Pos() lexer.Position { return e.Name.Pos }
func (e *Get) String() string {
	return "(get " + e.Object.String() + " " + e.Name.Lexeme + ")"
}

// Set represents `object.name = value`, a property write.
type Set struct {
	exprBase
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) exprNode()        {}
func (e *Set) Pos() lexer.Position { return e.Name.Pos }
func (e *Set) String() string {
	return "(set " + e.Object.String() + " " + e.Name.Lexeme + " " + e.Value.String() + ")"
}

// Grouping represents a parenthesized expression.
type Grouping struct {
	exprBase
	Expression Expr
}

func (e *Grouping) exprNode()        {}
func (e *Grouping) Pos() lexer.Position { return e.Expression.Pos() }
func (e *Grouping) String() string {
	return "(group " + e.Expression.String() + ")"
}

// Literal represents a number, string, bool, or nil literal. Value holds
// the Go representation: float64, string, bool, or nil.
type Literal struct {
	exprBase
	Value    interface{}
	Position lexer.Position
}

func (e *Literal) exprNode()        {}
func (e *Literal) Pos() lexer.Position { return e.Position }
func (e *Literal) String() string {
	if e.Value == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch v := e.Value.(type) {
	case string:
		buf.WriteString(v)
	default:
		buf.WriteString(stringify(v))
	}
	return buf.String()
}

// Logical represents `left or right` / `left and right`, which
// short-circuit rather than always evaluating both operands.
type Logical struct {
	exprBase
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) exprNode()        {}
func (e *Logical) Pos() lexer.Position { return e.Operator.Pos }
func (e *Logical) String() string {
	return "(" + e.Operator.Lexeme + " " + e.Left.String() + " " + e.Right.String() + ")"
}

// Super represents `super.method`.
type Super struct {
	exprBase
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) exprNode()        {}
func (e *Super) Pos() lexer.Position { return e.Keyword.Pos }
func (e *Super) String() string {
	return "(super " + e.Method.Lexeme + ")"
}

// This represents the `this` expression inside a method body.
type This struct {
	exprBase
	Keyword lexer.Token
}

func (e *This) exprNode()        {}
func (e *This) Pos() lexer.Position { return e.Keyword.Pos }
func (e *This) String() string      { return "this" }

// Ternary represents `cond ? then : else`, right-associative.
type Ternary struct {
	exprBase
	Condition lexer.Token // the '?' token, for position reporting
	Cond      Expr
	Then      Expr
	Else      Expr
}

func (e *Ternary) exprNode()        {}
func (e *Ternary) Pos() lexer.Position { return e.Condition.Pos }
func (e *Ternary) String() string {
	return "(? " + e.Cond.String() + " " + e.Then.String() + " " + e.Else.String() + ")"
}

// Unary represents `!right` or `-right`.
type Unary struct {
	exprBase
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) exprNode()        {}
func (e *Unary) Pos() lexer.Position { return e.Operator.Pos }
func (e *Unary) String() string {
	return "(" + e.Operator.Lexeme + " " + e.Right.String() + ")"
}

// Variable represents a bare identifier reference.
type Variable struct {
	exprBase
	Name lexer.Token
}

func (e *Variable) exprNode()        {}
func (e *Variable) Pos() lexer.Position { return e.Name.Pos }
func (e *Variable) String() string      { return e.Name.Lexeme }

// NewAssign, NewBinary, ... construct expression nodes with a fresh uid.
func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

func NewBinary(left Expr, operator lexer.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

func NewCall(callee Expr, paren lexer.Token, arguments []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: arguments}
}

func NewGet(object Expr, name lexer.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

func NewSet(object Expr, name lexer.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Expression: expression}
}

func NewLiteral(value interface{}, pos lexer.Position) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value, Position: pos}
}

func NewLogical(left Expr, operator lexer.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: operator, Right: right}
}

func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

func NewThis(keyword lexer.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

func NewTernary(question lexer.Token, cond, then, els Expr) *Ternary {
	return &Ternary{exprBase: newExprBase(), Condition: question, Cond: cond, Then: then, Else: els}
}

func NewUnary(operator lexer.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: operator, Right: right}
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

func stringify(v interface{}) string {
	return fmt.Sprint(v)
}
