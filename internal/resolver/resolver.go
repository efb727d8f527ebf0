// Package resolver performs a static pass between parsing and
// interpretation: it resolves every variable reference to the number of
// scopes between its use and its declaration, so the interpreter can
// look it up by a fixed hop count instead of a name search at runtime.
package resolver

import (
	"strconv"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// binding tracks a declared name's resolved state and whether it has
// ever been read, to support the opt-in unused-variable warning.
type binding struct {
	token lexer.Token
	ready bool
	used  bool
}

// Resolver walks a parsed program and builds the scope-distance table
// the interpreter's Environment.GetAt/AssignAt rely on.
type Resolver struct {
	scopes          []map[string]*binding
	locals          map[int]int
	errors          []*errors.ResolveError
	warnings        []string
	currentFunction functionType
	currentClass    classType
	warnUnused      bool
}

// New creates a Resolver. warnUnused enables the opt-in unused-local
// diagnostic (golox run --warn-unused); it never affects exit codes.
func New(warnUnused bool) *Resolver {
	return &Resolver{
		locals:     make(map[int]int),
		warnUnused: warnUnused,
	}
}

// Resolve walks the program and returns the uid->distance table along
// with any resolution errors. Callers must not interpret the program
// if the returned error slice is non-empty.
func (r *Resolver) Resolve(program *ast.Program) (map[int]int, []*errors.ResolveError) {
	r.resolveStatements(program.Statements)
	return r.locals, r.errors
}

// Warnings returns any opt-in unused-variable diagnostics; always empty
// unless the Resolver was constructed with warnUnused.
func (r *Resolver) Warnings() []string {
	return r.warnings
}

func (r *Resolver) reportError(tok lexer.Token, message string) {
	r.errors = append(r.errors, &errors.ResolveError{Token: tok, Message: message})
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*binding))
}

func (r *Resolver) endScope() {
	scope := r.scopes[len(r.scopes)-1]
	if r.warnUnused {
		for name, b := range scope {
			if !b.used {
				r.warnings = append(r.warnings, formatUnusedWarning(b.token, name))
			}
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.reportError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = &binding{token: name}
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme].ready = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name.Lexeme]; ok {
			if _, isAssign := expr.(*ast.Assign); !isAssign {
				b.used = true
			}
			r.locals[expr.UID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// Unresolved names are assumed global and looked up dynamically at
	// runtime.
}

// --- statements ---

func (r *Resolver) resolveStatements(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()
	case *ast.ClassDecl:
		r.resolveClassDecl(s)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expression)
	case *ast.FunctionDecl:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.reportError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.reportError(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.VarDecl:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.BreakStmt:
		// no bindings to resolve
	default:
		panic("resolver: unknown statement type")
	}
}

func (r *Resolver) resolveClassDecl(s *ast.ClassDecl) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reportError(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = &binding{token: s.Name, ready: true, used: true}
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = &binding{token: s.Name, ready: true, used: true}

	for _, method := range s.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionDecl, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// --- expressions ---

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// no bindings to resolve
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Super:
		if r.currentClass == classNone {
			r.reportError(e.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.reportError(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.This:
		if r.currentClass == classNone {
			r.reportError(e.Keyword, "Can't use 'this' outside of a class.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Ternary:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if b, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !b.ready {
				r.reportError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	default:
		panic("resolver: unknown expression type")
	}
}

func formatUnusedWarning(tok lexer.Token, name string) string {
	return "[line " + strconv.Itoa(tok.Pos.Line) + "] Warning: local variable '" + name + "' is never used."
}
