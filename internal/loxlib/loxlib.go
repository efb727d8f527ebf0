// Package loxlib wires the lexer, parser, resolver, and interpreter
// into the few entry points a front end (the golox CLI, a REPL, or a
// test harness) actually needs: run a whole source file, or run one
// line against a persistent session.
package loxlib

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// Exit codes: 65 for any static (lex/parse/resolve) failure, 70 for a
// runtime failure, 0 otherwise.
const (
	ExitOK          = 0
	ExitStaticError = 65
	ExitRuntimeErr  = 70
)

// Options configures a Session's diagnostics and output.
type Options struct {
	// WarnUnused enables the resolver's opt-in unused-local warning.
	WarnUnused bool
	// UseColor enables ANSI coloring of diagnostics written to Stderr.
	UseColor bool
	Stdout   io.Writer
	Stderr   io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Session is a persistent Lox execution context: a REPL reuses one
// Session across lines so top-level `var` declarations and functions
// persist, while a single-file run uses a fresh Session for that one
// source.
type Session struct {
	opts   Options
	interp *interp.Interpreter
}

// NewSession creates a Session with its own global interpreter state.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		opts:   opts,
		interp: interp.New(nil),
	}
}

// Run lexes, parses, resolves, and interprets source, writing `print`
// output to opts.Stdout and any diagnostics to opts.Stderr. It returns
// the process exit code the caller should use.
func (s *Session) Run(source string) int {
	s.interp.SetOutput(s.opts.Stdout)

	tokens, lexErrs := lexer.ScanTokens(source)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(s.opts.Stderr, formatLexError(e, s.opts.UseColor))
		}
		return ExitStaticError
	}

	p := parser.New(tokens)
	program := p.Parse()
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		fmt.Fprint(s.opts.Stderr, errors.FormatAll(parseErrs, s.opts.UseColor))
		return ExitStaticError
	}

	r := resolver.New(s.opts.WarnUnused)
	locals, resolveErrs := r.Resolve(program)
	if len(resolveErrs) > 0 {
		fmt.Fprint(s.opts.Stderr, errors.FormatAll(resolveErrs, s.opts.UseColor))
		return ExitStaticError
	}
	for _, w := range r.Warnings() {
		fmt.Fprintln(s.opts.Stderr, w)
	}

	s.interp.Reset(locals)
	if runtimeErr := s.interp.Interpret(program); runtimeErr != nil {
		fmt.Fprintln(s.opts.Stderr, runtimeErr.Format(s.opts.UseColor))
		return ExitRuntimeErr
	}

	return ExitOK
}

// DumpAST lexes and parses source, printing the resulting syntax tree to
// w instead of executing it (golox run --dump-ast). Parse errors are
// reported the same way Run reports them.
func DumpAST(source string, w io.Writer, opts Options) int {
	opts = opts.withDefaults()

	tokens, lexErrs := lexer.ScanTokens(source)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(opts.Stderr, formatLexError(e, opts.UseColor))
		}
		return ExitStaticError
	}

	p := parser.New(tokens)
	program := p.Parse()
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		fmt.Fprint(opts.Stderr, errors.FormatAll(parseErrs, opts.UseColor))
		return ExitStaticError
	}

	fmt.Fprint(w, program.String())
	return ExitOK
}

func formatLexError(e *lexer.LexError, useColor bool) string {
	le := &errors.LexError{Line: e.Pos.Line, Message: e.Message}
	return le.Format(useColor)
}

// RunFile reads path and runs it as a one-shot program (golox run).
func RunFile(path string, opts Options) int {
	data, err := os.ReadFile(path)
	if err != nil {
		opts = opts.withDefaults()
		fmt.Fprintf(opts.Stderr, "golox: %v\n", err)
		return ExitStaticError
	}
	return NewSession(opts).Run(string(data))
}

// RunString runs source as a one-shot program and returns everything
// `print` wrote, alongside the exit code. Intended for tests and the
// `-e`/`-c` style inline evaluation some CLIs expose.
func RunString(source string, opts Options) (string, int) {
	var buf bytes.Buffer
	opts.Stdout = &buf
	code := NewSession(opts).Run(source)
	return buf.String(), code
}
