package spice

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDivideByZero is the cause of an *EvalError for x / 0.
	ErrDivideByZero = errors.New("integer division by zero")
	// ErrOverflow is the cause of an *EvalError for a result outside int64.
	ErrOverflow = errors.New("integer overflow")
)

// An EvalError aborts an evaluation.
// Eval panics with a *EvalError; TryEval returns it.
type EvalError struct {
	Op          BinArithOp
	Left, Right int64
	Err         error // ErrDivideByZero or ErrOverflow
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%v: %d %v %d", e.Err, e.Left, e.Op, e.Right)
}

func (e *EvalError) Cause() error  { return e.Err }
func (e *EvalError) Unwrap() error { return e.Err }

func fatalArith(op BinArithOp, a, b int64, err error) {
	panic(&EvalError{Op: op, Left: a, Right: b, Err: err})
}

// TryEval is like Eval but returns a division by zero or an integer
// overflow as an error instead of panicking.
// Other panics, such as those caused by a nil node, are not recovered.
func TryEval(e Expr) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			ee, ok := r.(*EvalError)
			if !ok {
				panic(r)
			}
			v, err = nil, errors.WithStack(ee)
		}
	}()
	return Eval(e), nil
}
