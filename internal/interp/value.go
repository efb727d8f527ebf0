package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is any runtime value a Lox program can produce: float64 for
// numbers, string for strings, bool for booleans, nil for the nil
// value, or one of the Callable/Class/Instance types below. Keeping
// primitives as their native Go types (rather than wrapping them in
// Number/String/Boolean structs) avoids an allocation on every literal
// and arithmetic op, at the cost of doing type switches at the few
// points that need Lox-specific behavior (Stringify, IsTruthy).
type Value interface{}

// IsTruthy implements Lox's truthiness rule: nil and false are falsey,
// everything else — including 0 and "" — is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`: nil equals only nil, numbers and
// strings and bools compare by value, everything else compares by Go
// identity. There is no implicit type coercion.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders a value the way `print` and string concatenation
// do. Numbers that happen to be integral print without a trailing
// ".0".
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatNumber(val)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(f float64) string {
	text := strconv.FormatFloat(f, 'f', -1, 64)
	return strings.TrimSuffix(text, ".0")
}

// TypeName returns a lowercase, user-facing type label used in runtime
// type-error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	case *NativeFunction:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return "value"
	}
}
