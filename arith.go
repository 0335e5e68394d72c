package spice

import "math"

// checked 64-bit signed arithmetic.
// go wraps silently on overflow and panics with a runtime error on x/0,
// neither of which we want.

func addInt64(a, b int64) (int64, error) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, nil
	}
	return 0, ErrOverflow
}

func subInt64(a, b int64) (int64, error) {
	c := a - b
	if (c < a) == (b > 0) {
		return c, nil
	}
	return 0, ErrOverflow
}

func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}
	return c, nil
}

// divInt64 truncates toward zero, like go's / operator.
func divInt64(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

func applyArith(op BinArithOp, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return addInt64(a, b)
	case OpSub:
		return subInt64(a, b)
	case OpMul:
		return mulInt64(a, b)
	case OpIntDiv:
		return divInt64(a, b)
	default:
		panic("unhandled arith op: " + op.String())
	}
}
