package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	input string
	types []TokenType
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			input: `(){},.;:?`,
			types: []TokenType{LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, SEMICOLON, COLON, QUESTION, EOF},
		},
		{
			input: `! != = == < <= > >=`,
			types: []TokenType{BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF},
		},
		{
			input: `var x = 1 + 2; print x;`,
			types: []TokenType{VAR, IDENT, EQUAL, NUMBER, PLUS, NUMBER, SEMICOLON, PRINT, IDENT, SEMICOLON, EOF},
		},
	}

	for _, tt := range tests {
		tokens, errs := ScanTokens(tt.input)
		assert.Empty(t, errs, "input: %s", tt.input)
		assert.Equal(t, len(tt.types), len(tokens), "input: %s", tt.input)
		for i, typ := range tt.types {
			assert.Equal(t, typ, tokens[i].Type, "token %d of %q", i, tt.input)
		}
	}
}

func TestScanTokens_Literals(t *testing.T) {
	tokens, errs := ScanTokens(`"hello world" 3.14 42`)
	assert.Empty(t, errs)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, NUMBER, tokens[2].Type)
	assert.Equal(t, 42.0, tokens[2].Literal)
}

func TestScanTokens_Keywords(t *testing.T) {
	tokens, errs := ScanTokens(`and class else false fun for if nil or print return super this true var while break`)
	assert.Empty(t, errs)
	want := []TokenType{AND, CLASS, ELSE, FALSE, FUN, FOR, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, BREAK, EOF}
	assert.Equal(t, len(want), len(tokens))
	for i, typ := range want {
		assert.Equal(t, typ, tokens[i].Type)
	}
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, errs := ScanTokens("var x = 1; // set x\nprint x;")
	assert.Empty(t, errs)
	assert.Equal(t, PRINT, tokens[5].Type)
}

func TestScanTokens_NestedBlockComment(t *testing.T) {
	tokens, errs := ScanTokens("/* outer /* inner */ still-comment */ print 1;")
	assert.Empty(t, errs)
	assert.Equal(t, PRINT, tokens[0].Type)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, errs := ScanTokens("/* never closed")
	assert.Len(t, errs, 1)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := ScanTokens(`"never closed`)
	assert.Len(t, errs, 1)
}

func TestScanTokens_StringSpansLines(t *testing.T) {
	tokens, errs := ScanTokens("\"line one\nline two\"")
	assert.Empty(t, errs)
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	assert.Equal(t, 1, tokens[0].Pos.Line)
}

func TestScanTokens_UnrecognizedCharacterRecovers(t *testing.T) {
	tokens, errs := ScanTokens("var x = 1 # print x;")
	assert.Len(t, errs, 1)
	// Lexing continues after the bad character and still reaches EOF.
	assert.Equal(t, EOF, tokens[len(tokens)-1].Type)
}
