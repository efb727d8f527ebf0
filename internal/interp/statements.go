package interp

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
)

// execute runs a single statement, dispatching on its concrete type.
func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.environment))
	case *ast.ClassDecl:
		return i.executeClassDecl(s)
	case *ast.ExprStmt:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.FunctionDecl:
		fn := NewFunction(s, i.environment, false)
		i.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.IfStmt:
		return i.executeIfStmt(s)
	case *ast.PrintStmt:
		return i.executePrintStmt(s)
	case *ast.ReturnStmt:
		return i.executeReturnStmt(s)
	case *ast.VarDecl:
		return i.executeVarDecl(s)
	case *ast.WhileStmt:
		return i.executeWhileStmt(s)
	case *ast.BreakStmt:
		return &breakSignal{}
	default:
		return fmt.Errorf("interp: unknown statement type %T", stmt)
	}
}

func (i *Interpreter) executeClassDecl(s *ast.ClassDecl) error {
	var superclass *Class
	if s.Superclass != nil {
		value, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := value.(*Class)
		if !ok {
			return i.runtimeErrorf(s.Superclass.Pos().Line, "superclass must be a class")
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, nil)

	env := i.environment
	if superclass != nil {
		env = NewEnclosedEnvironment(i.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, methodDecl := range s.Methods {
		methods[methodDecl.Name.Lexeme] = NewFunction(methodDecl, env, methodDecl.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	if err := i.environment.Assign(s.Name.Lexeme, class); err != nil {
		return i.runtimeErrorf(s.Name.Pos.Line, "%s", err.Error())
	}
	return nil
}

func (i *Interpreter) executeIfStmt(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.ElseBranch != nil {
		return i.execute(s.ElseBranch)
	}
	return nil
}

func (i *Interpreter) executePrintStmt(s *ast.PrintStmt) error {
	value, err := i.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, Stringify(value))
	return nil
}

func (i *Interpreter) executeReturnStmt(s *ast.ReturnStmt) error {
	var value Value
	if s.Value != nil {
		v, err := i.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}

func (i *Interpreter) executeVarDecl(s *ast.VarDecl) error {
	var value Value
	if s.Initializer != nil {
		v, err := i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.environment.Define(s.Name.Lexeme, value)
	return nil
}

// executeWhileStmt runs the loop body until the condition is falsey or
// a break signal arrives; break is swallowed here so it never escapes
// its innermost loop, even when the body is a block rather than a bare
// statement.
func (i *Interpreter) executeWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			if _, ok := err.(*breakSignal); ok {
				return nil
			}
			return err
		}
	}
}
