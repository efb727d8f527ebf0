package errors

import (
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func TestLexError_Format(t *testing.T) {
	e := &LexError{Line: 3, Message: "unterminated string"}
	assert.Equal(t, "[line 3] Error: unterminated string", e.Format(false))
}

func TestParseError_Format_AtToken(t *testing.T) {
	e := &ParseError{
		Token:   lexer.Token{Lexeme: "+", Pos: lexer.Position{Line: 5}},
		Message: "Expect expression.",
	}
	assert.Equal(t, "[line 5] Error at '+': Expect expression.", e.Format(false))
}

func TestParseError_Format_AtEnd(t *testing.T) {
	e := &ParseError{AtEnd: true, Token: lexer.Token{Pos: lexer.Position{Line: 7}}, Message: "Expect ';'."}
	assert.Equal(t, "[line 7] Error at end: Expect ';'.", e.Format(false))
}

func TestRuntimeError_Format(t *testing.T) {
	e := &RuntimeError{Line: 2, Message: "Operands must be numbers."}
	assert.Equal(t, "[line 2] Error: Operands must be numbers.", e.Format(false))
}
