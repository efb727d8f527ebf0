package interp

import "time"

// NativeFunction wraps a Go function as a Lox-callable value, the way
// clock() is exposed to user code.
type NativeFunction struct {
	name  string
	fn    func(interp *Interpreter, arguments []Value) (Value, error)
	arity int
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, arguments []Value) (Value, error) {
	return n.fn(interp, arguments)
}

func (n *NativeFunction) String() string {
	return "<native fn " + n.name + ">"
}

// defineGlobals installs every native binding into the global scope.
func defineGlobals(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return float64(time.Now().UnixMilli()), nil
		},
	})
}
