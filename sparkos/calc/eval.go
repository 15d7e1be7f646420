package calc

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMalformed reports a token window that cannot be reduced.
	ErrMalformed = errors.New("calc: malformed expression")
	// ErrOverflow reports display text longer than MaxDisplayLen.
	ErrOverflow = errors.New("calc: display overflow")
	// ErrUnknownInput reports an input symbol with no mapping.
	ErrUnknownInput = errors.New("calc: unknown input")
	// ErrBadPaste reports clipboard text without a numeric prefix.
	ErrBadPaste = errors.New("calc: clipboard text is not a number")
)

// Apply evaluates a op b with float64 semantics.
//
// Division by zero yields ±Inf or NaN. OpPercent is the floating-point
// remainder (sign of a); the postfix percent scaling lives in Evaluate.
func Apply(a float64, op Operator, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		return a / b, nil
	case OpPercent:
		return math.Mod(a, b), nil
	default:
		return 0, fmt.Errorf("%w: operator %q", ErrMalformed, op.String())
	}
}

// reduce evaluates a window of one operand or operand-operator-operand.
func reduce(seq []Token) (float64, error) {
	switch len(seq) {
	case 1:
		if !seq[0].IsNumber() {
			return 0, fmt.Errorf("%w: %s", ErrMalformed, windowString(seq))
		}
		return seq[0].Value, nil
	case 3:
		if !seq[0].IsNumber() || !seq[1].IsOperator() || !seq[2].IsNumber() {
			return 0, fmt.Errorf("%w: %s", ErrMalformed, windowString(seq))
		}
		return Apply(seq[0].Value, seq[1].Op, seq[2].Value)
	default:
		return 0, fmt.Errorf("%w: %d tokens", ErrMalformed, len(seq))
	}
}

func windowString(seq []Token) string {
	s := ""
	for i, t := range seq {
		if i > 0 {
			s += " "
		}
		s += t.String()
	}
	return s
}
