package parser

import (
	"testing"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, errs := lexer.ScanTokens(src)
	require.Empty(t, errs)
	return toks
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	tokens := scan(t, "1 + 2 * 3;")
	program := New(tokens).Parse()
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 (* 2 3))", stmt.Expression.String())
}

func TestParse_TernaryRightAssociative(t *testing.T) {
	tokens := scan(t, "a ? b : c ? d : e;")
	program := New(tokens).Parse()
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExprStmt)
	tern, ok := stmt.Expression.(*ast.Ternary)
	require.True(t, ok)
	_, elseIsTernary := tern.Else.(*ast.Ternary)
	assert.True(t, elseIsTernary, "ternary must be right-associative")
}

func TestParse_AssignmentRewritesVariableTarget(t *testing.T) {
	tokens := scan(t, "x = 5;")
	program := New(tokens).Parse()
	stmt := program.Statements[0].(*ast.ExprStmt)
	_, ok := stmt.Expression.(*ast.Assign)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTargetReportsError(t *testing.T) {
	tokens := scan(t, "1 + 2 = 5;")
	p := New(tokens)
	p.Parse()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0].Message, "Invalid assignment target")
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	tokens := scan(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	program := New(tokens).Parse()
	require.Len(t, program.Statements, 1)

	block, ok := program.Statements[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)
	_, isVarDecl := block.Statements[0].(*ast.VarDecl)
	assert.True(t, isVarDecl)
	_, isWhile := block.Statements[1].(*ast.WhileStmt)
	assert.True(t, isWhile)
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	tokens := scan(t, `class Cake < Pastry { taste() { return "yum"; } }`)
	program := New(tokens).Parse()
	require.Len(t, program.Statements, 1)

	decl, ok := program.Statements[0].(*ast.ClassDecl)
	require.True(t, ok)
	require.NotNil(t, decl.Superclass)
	assert.Equal(t, "Pastry", decl.Superclass.Name.Lexeme)
	require.Len(t, decl.Methods, 1)
	assert.Equal(t, "taste", decl.Methods[0].Name.Lexeme)
}

func TestParse_CallArgumentLimit(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	tokens := scan(t, src)
	p := New(tokens)
	p.Parse()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0].Message, "Can't have more than 255 arguments")
}

func TestParse_MissingInitializerSynchronizes(t *testing.T) {
	tokens := scan(t, "var a = ; var b = 2;")
	p := New(tokens)
	program := p.Parse()
	require.NotEmpty(t, p.Errors())
	// synchronize() should have recovered enough to still see the second declaration.
	found := false
	for _, s := range program.Statements {
		if v, ok := s.(*ast.VarDecl); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and parse statements after the error")
}

func TestParse_GetAndSetExpressions(t *testing.T) {
	tokens := scan(t, "a.b.c = 1;")
	program := New(tokens).Parse()
	stmt := program.Statements[0].(*ast.ExprStmt)
	set, ok := stmt.Expression.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "c", set.Name.Lexeme)
	_, innerIsGet := set.Object.(*ast.Get)
	assert.True(t, innerIsGet)
}
