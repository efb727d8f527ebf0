// Package interp evaluates a resolved Lox AST directly, without a
// separate compilation step: every statement and expression is walked
// and executed as encountered.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
)

// Interpreter walks a resolved program, holding the global scope, the
// currently active scope, the resolver's scope-distance table, and the
// current call depth used to detect runaway recursion.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[int]int
	callDepth   int
	out         io.Writer
}

// New creates an Interpreter with the resolver's uid->distance table
// already wired in. Output defaults to os.Stdout; use SetOutput in
// tests to capture `print` output instead.
func New(locals map[int]int) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      locals,
		out:         os.Stdout,
	}
}

// SetOutput redirects everything `print` writes.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
}

// Reset adds the scope-distance table for the next program to be
// interpreted, without discarding the global environment or the
// distances of earlier programs. A REPL session calls this once per
// line: each line is resolved on its own, but functions and classes
// declared on earlier lines keep the distances of their bodies. Expression
// uids are process-wide unique, so the tables never collide.
func (i *Interpreter) Reset(locals map[int]int) {
	if i.locals == nil {
		i.locals = make(map[int]int, len(locals))
	}
	for uid, distance := range locals {
		i.locals[uid] = distance
	}
}

// Interpret runs every top-level statement in program, stopping at the
// first runtime error. A single RuntimeError is returned rather than
// accumulated, since (unlike parsing) one runtime failure halts
// execution entirely.
func (i *Interpreter) Interpret(program *ast.Program) *errors.RuntimeError {
	for _, stmt := range program.Statements {
		if err := i.execute(stmt); err != nil {
			return i.toRuntimeError(err)
		}
	}
	return nil
}

func (i *Interpreter) toRuntimeError(err error) *errors.RuntimeError {
	if rt, ok := err.(*errors.RuntimeError); ok {
		return rt
	}
	return &errors.RuntimeError{Message: err.Error()}
}

// executeBlock runs statements in env, restoring the previous
// environment on the way out regardless of how execution ends (normal
// completion, error, or a break/return signal).
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) lookUpVariable(name string, expr ast.Expr) (Value, error) {
	if distance, ok := i.locals[expr.UID()]; ok {
		if v, ok := i.environment.GetAt(distance, name); ok {
			return v, nil
		}
		return nil, i.runtimeErrorf(expr.Pos().Line, "undefined variable '%s'", name)
	}
	if v, ok := i.globals.Get(name); ok {
		return v, nil
	}
	return nil, i.runtimeErrorf(expr.Pos().Line, "undefined variable '%s'", name)
}

func (i *Interpreter) runtimeErrorf(line int, format string, args ...interface{}) *errors.RuntimeError {
	return &errors.RuntimeError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}
