package interp

import (
	"fmt"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
)

const maxCallDepth = 1024

// evaluate computes the value of an expression, dispatching on its
// concrete type.
func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Literal:
		return e.Value, nil
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Super:
		return i.evalSuper(e)
	case *ast.This:
		return i.lookUpVariable("this", e)
	case *ast.Ternary:
		return i.evalTernary(e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name.Lexeme, e)
	default:
		return nil, fmt.Errorf("interp: unknown expression type %T", expr)
	}
}

func (i *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[e.UID()]; ok {
		i.environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, i.runtimeErrorf(e.Name.Pos.Line, "%s", err.Error())
	}
	return value, nil
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, i.runtimeErrorf(e.Operator.Pos.Line, "division by zero")
		}
		return l / r, nil
	case lexer.STAR:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.PLUS:
		return i.evalPlus(e.Operator, left, right)
	case lexer.GREATER:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := i.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !IsEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	default:
		return nil, i.runtimeErrorf(e.Operator.Pos.Line, "unknown binary operator '%s'", e.Operator.Lexeme)
	}
}

// evalPlus implements `+`: numeric addition, string concatenation, and
// string+number concatenation in either operand order, converting the
// number to its canonical textual form first.
func (i *Interpreter) evalPlus(operator lexer.Token, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	_, lStr := left.(string)
	_, rStr := right.(string)
	_, lNum := left.(float64)
	_, rNum := right.(float64)
	if (lStr || lNum) && (rStr || rNum) {
		return Stringify(left) + Stringify(right), nil
	}
	return nil, i.runtimeErrorf(operator.Pos.Line, "operands must be two numbers or two strings")
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]Value, len(e.Arguments))
	for idx, argExpr := range e.Arguments {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments[idx] = arg
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, i.runtimeErrorf(e.Paren.Pos.Line, "can only call functions and classes")
	}
	if len(arguments) != callable.Arity() {
		return nil, i.runtimeErrorf(e.Paren.Pos.Line, "expected %d arguments but got %d", callable.Arity(), len(arguments))
	}

	if i.callDepth >= maxCallDepth {
		return nil, i.runtimeErrorf(e.Paren.Pos.Line, "stack overflow")
	}
	i.callDepth++
	defer func() { i.callDepth-- }()

	return callable.Call(i, arguments)
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, i.runtimeErrorf(e.Name.Pos.Line, "only instances have properties")
	}
	value, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return nil, i.runtimeErrorf(e.Name.Pos.Line, "%s", err.Error())
	}
	return value, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, i.runtimeErrorf(e.Name.Pos.Line, "only instances have fields")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else if !IsTruthy(left) {
		return left, nil
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := i.locals[e.UID()]
	superVal, _ := i.environment.GetAt(distance, "super")
	superclass := superVal.(*Class)

	thisVal, _ := i.environment.GetAt(distance-1, "this")
	instance := thisVal.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, i.runtimeErrorf(e.Method.Pos.Line, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) evalTernary(e *ast.Ternary) (Value, error) {
	cond, err := i.evaluate(e.Cond)
	if err != nil {
		return nil, err
	}
	if IsTruthy(cond) {
		return i.evaluate(e.Then)
	}
	return i.evaluate(e.Else)
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, err := i.checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case lexer.BANG:
		return !IsTruthy(right), nil
	default:
		return nil, i.runtimeErrorf(e.Operator.Pos.Line, "unknown unary operator '%s'", e.Operator.Lexeme)
	}
}
