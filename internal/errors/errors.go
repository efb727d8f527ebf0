// Package errors formats the diagnostics produced by every stage of the
// Lox pipeline: lexing, parsing, resolving, and evaluation.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/fatih/color"
)

// LexError is a scanning failure: an unrecognized character, an
// unterminated string, or an unterminated block comment.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string { return e.Format(false) }

// Format renders "[line L] Error: <msg>" with an empty <loc>, since the
// scanner has no lexeme to point at.
func (e *LexError) Format(useColor bool) string {
	return formatDiagnostic(e.Line, "", e.Message, useColor)
}

// ParseError is a syntax failure: an unexpected token, a missing piece
// of punctuation, an invalid assignment target, or too many
// parameters/arguments.
type ParseError struct {
	Token   lexer.Token
	AtEnd   bool
	Message string
}

func (e *ParseError) Error() string { return e.Format(false) }

func (e *ParseError) Format(useColor bool) string {
	loc := " at end"
	if !e.AtEnd {
		loc = fmt.Sprintf(" at '%s'", e.Token.Lexeme)
	}
	return formatDiagnostic(e.Token.Pos.Line, loc, e.Message, useColor)
}

// ResolveError is a static semantic violation caught by the resolver:
// a duplicate declaration, self-reference in an initializer, a
// misplaced return/this/super, or a class extending itself.
type ResolveError struct {
	Token   lexer.Token
	Message string
}

func (e *ResolveError) Error() string { return e.Format(false) }

func (e *ResolveError) Format(useColor bool) string {
	loc := fmt.Sprintf(" at '%s'", e.Token.Lexeme)
	return formatDiagnostic(e.Token.Pos.Line, loc, e.Message, useColor)
}

// RuntimeError is a failure during evaluation: a type mismatch, an
// undefined variable or property, division by zero, calling a
// non-callable value, or an arity mismatch.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Format(false) }

func (e *RuntimeError) Format(useColor bool) string {
	return formatDiagnostic(e.Line, "", e.Message, useColor)
}

// SystemError signals an I/O or host failure unrelated to the Lox
// program itself (e.g. a native function's callback failing).
type SystemError struct {
	Message string
}

func (e *SystemError) Error() string { return "Error: " + e.Message }

func formatDiagnostic(line int, loc, msg string, useColor bool) string {
	prefix := fmt.Sprintf("[line %d] Error%s: ", line, loc)
	if !useColor {
		return prefix + msg
	}
	red := color.New(color.FgRed, color.Bold)
	return red.Sprint(prefix) + msg
}

// FormatAll renders a batch of diagnostics, one per line, each via its
// own Format(useColor) method.
func FormatAll[T interface{ Format(bool) string }](diags []T, useColor bool) string {
	var sb strings.Builder
	for i, d := range diags {
		sb.WriteString(d.Format(useColor))
		if i < len(diags)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
