package interp

import "github.com/cwbudde/golox/internal/ast"

// Function is a user-defined function or method: its declaration plus
// the environment it closed over at definition time. Re-binding that
// closure for each call is what gives Lox closures and per-instance
// method receivers their independent state.
type Function struct {
	declaration   *ast.FunctionDecl
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a function declaration with the environment active
// at the point it was declared.
func NewFunction(declaration *ast.FunctionDecl, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind returns a copy of the method bound to instance: a new closure,
// enclosing the method's original closure, with `this` defined. This is
// what lets `obj.method` be passed around and still resolve `this`
// correctly when later invoked.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(interp *Interpreter, arguments []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			this, _ := f.closure.GetAt(0, "this")
			return this, nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		this, _ := f.closure.GetAt(0, "this")
		return this, nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
