package interp

// Callable is implemented by every value that can appear as the callee
// of a Call expression: user-defined functions and methods, classes
// (instantiation), and native functions like clock().
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []Value) (Value, error)
	String() string
}
