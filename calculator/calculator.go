// Package calculator evaluates single binary arithmetic expressions on
// 32-bit floats.
package calculator

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

var (
	// ErrMissingOperand1 is returned when no first operand is given.
	ErrMissingOperand1 = errors.New("no operand1")
	// ErrMissingOperator is returned when no operator is given.
	ErrMissingOperator = errors.New("no operator")
	// ErrMissingOperand2 is returned when no second operand is given.
	ErrMissingOperand2 = errors.New("no operand2")
	// ErrUnknownOperator is returned for operators other than + - * x X /.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Expression is an evaluated `operand1 operator operand2` expression. The
// operands keep the text they were given in.
type Expression struct {
	Operand1 string
	Operator string
	Operand2 string
	Result   float32
}

// String renders the expression as "a op b = result".
func (e *Expression) String() string {
	return fmt.Sprintf("%s %s %s = %s", e.Operand1, e.Operator, e.Operand2, FormatResult(e.Result))
}

// Evaluate parses and evaluates an expression from its three arguments.
//
// Arguments:
//   - args: operand1, operator and operand2. Extra arguments are ignored.
//
// Returns:
//   - *Expression: The evaluated expression.
//   - error: A missing-argument error, a parse error, or ErrUnknownOperator.
func Evaluate(args []string) (*Expression, error) {
	switch {
	case len(args) < 1:
		return nil, ErrMissingOperand1
	case len(args) < 2:
		return nil, ErrMissingOperator
	case len(args) < 3:
		return nil, ErrMissingOperand2
	}

	a, err := ParseOperand(args[0])
	if err != nil {
		return nil, err
	}
	b, err := ParseOperand(args[2])
	if err != nil {
		return nil, err
	}

	result, err := Operate(args[1], a, b)
	if err != nil {
		return nil, err
	}

	return &Expression{
		Operand1: args[0],
		Operator: args[1],
		Operand2: args[2],
		Result:   result,
	}, nil
}

// ParseOperand parses s as a 32-bit float.
func ParseOperand(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid operand %q", s)
	}
	return float32(v), nil
}

// Operate applies op to a and b. Division by zero follows IEEE 754.
func Operate(op string, a, b float32) (float32, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*", "x", "X":
		return a * b, nil
	case "/":
		return a / b, nil
	default:
		return 0, errors.Wrapf(ErrUnknownOperator, "%q", op)
	}
}

// FormatResult formats v as the shortest decimal that round-trips to the
// same float32, without exponent notation. Non-finite values print as inf,
// -inf and NaN.
func FormatResult(v float32) string {
	switch {
	case math32.IsNaN(v):
		return "NaN"
	case math32.IsInf(v, 1):
		return "inf"
	case math32.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
