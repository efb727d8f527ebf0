package interp

import "fmt"

// Class is a runtime class object: its own method table plus an
// optional superclass to fall back to, forming the single-inheritance
// chain Lox supports.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass creates a class value from its resolved method table.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up a method by name, walking up the superclass
// chain if it is not declared directly on c.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity reports the parameter count of `init`, or 0 if the class has
// none — calling a class with the wrong argument count is an error the
// same way calling any other function with one is.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates c: allocates a fresh Instance and, if c (or an
// ancestor) declares `init`, runs it bound to that instance.
func (c *Class) Call(interp *Interpreter, arguments []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return "<class " + c.Name + ">"
}

// Instance is a runtime object: a class pointer plus a mutable field
// table. Methods are resolved through the class, but assigning to a
// field always creates or overwrites an entry directly on the instance
// — fields shadow methods of the same name.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance allocates a fresh instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

// Get reads a property: fields win over methods.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if method, ok := i.class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("undefined property '%s'", name)
}

// Set assigns a field on the instance, creating it if absent.
func (i *Instance) Set(name string, value Value) {
	i.fields[name] = value
}

func (i *Instance) String() string {
	return "<" + i.class.Name + " instance>"
}
