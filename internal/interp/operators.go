package interp

import "github.com/cwbudde/golox/internal/lexer"

// checkNumberOperand validates a unary numeric operand, reporting a
// runtime error at operator's line if it is not a number.
func (i *Interpreter) checkNumberOperand(operator lexer.Token, operand Value) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, i.runtimeErrorf(operator.Pos.Line, "operand must be a number")
}

// checkNumberOperands validates both operands of a binary numeric op.
func (i *Interpreter) checkNumberOperands(operator lexer.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if lok && rok {
		return l, r, nil
	}
	return 0, 0, i.runtimeErrorf(operator.Pos.Line, "operands must be numbers")
}
