package spice

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedArith(t *testing.T) {
	for _, test := range []struct {
		op   BinArithOp
		a, b int64
		err  error
		r    int64
	}{
		{OpAdd, math.MaxInt64, 0, nil, math.MaxInt64},
		{OpAdd, math.MaxInt64, 1, ErrOverflow, 0},
		{OpAdd, math.MinInt64, -1, ErrOverflow, 0},
		{OpAdd, math.MaxInt64, math.MinInt64, nil, -1},
		{OpAdd, -5, -6, nil, -11},
		{OpSub, math.MinInt64, 0, nil, math.MinInt64},
		{OpSub, math.MinInt64, 1, ErrOverflow, 0},
		{OpSub, math.MaxInt64, -1, ErrOverflow, 0},
		{OpSub, 0, math.MinInt64, ErrOverflow, 0},
		{OpSub, -1, math.MinInt64, nil, math.MaxInt64},
		{OpSub, 5, -3, nil, 8},
		{OpMul, math.MaxInt64, 2, ErrOverflow, 0},
		{OpMul, math.MinInt64, -1, ErrOverflow, 0},
		{OpMul, -1, math.MinInt64, ErrOverflow, 0},
		{OpMul, math.MinInt64, 1, nil, math.MinInt64},
		{OpMul, math.MaxInt64, -1, nil, -math.MaxInt64},
		{OpMul, 1 << 31, 1 << 32, ErrOverflow, 0},
		{OpMul, 1 << 31, 1 << 31, nil, 1 << 62},
		{OpMul, 0, math.MinInt64, nil, 0},
		{OpIntDiv, math.MinInt64, -1, ErrOverflow, 0},
		{OpIntDiv, math.MinInt64, 1, nil, math.MinInt64},
		{OpIntDiv, 0, 0, ErrDivideByZero, 0},
		{OpIntDiv, math.MaxInt64, 0, ErrDivideByZero, 0},
		{OpIntDiv, -9, 2, nil, -4},
	} {
		r, err := applyArith(test.op, test.a, test.b)
		if test.err != nil {
			assert.Equal(t, test.err, err, "%d %v %d", test.a, test.op, test.b)
		} else {
			require.NoError(t, err, "%d %v %d", test.a, test.op, test.b)
			assert.Equal(t, test.r, r, "%d %v %d", test.a, test.op, test.b)
		}
	}
}

func TestTryEval(t *testing.T) {
	v, err := TryEval(&Arith{bin(OpAdd, 40, 2)})
	require.NoError(t, err)
	assert.Equal(t, IntValue(42), v)

	v, err = TryEval(&Bool{cmp(CmpGt, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, BoolValue(true), v)

	// the error surfaces from deep inside a comparison
	v, err = TryEval(&Bool{&Not{&ArithCmp{
		Op:    CmpLt,
		Left:  lit(0),
		Right: &BinArith{Op: OpSub, Left: lit(1), Right: bin(OpIntDiv, 5, 0)},
	}}})
	assert.Nil(t, v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivideByZero))
	assert.Equal(t, ErrDivideByZero, errors.Cause(err))
	assert.EqualError(t, err, "integer division by zero: 5 / 0")

	_, err = TryEval(&Arith{bin(OpAdd, math.MaxInt64, 1)})
	require.Error(t, err)
	var ee *EvalError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, OpAdd, ee.Op)
	assert.Equal(t, int64(math.MaxInt64), ee.Left)
	assert.Equal(t, int64(1), ee.Right)
	assert.Equal(t, ErrOverflow, ee.Err)
	assert.EqualError(t, err, "integer overflow: 9223372036854775807 + 1")
}

func TestTryEvalRepanics(t *testing.T) {
	assert.Panics(t, func() {
		TryEval(&Arith{&BinArith{Op: OpAdd, Left: lit(1)}})
	})
	assert.Panics(t, func() {
		TryEval(&Arith{&BinArith{Op: BinArithOp(42), Left: lit(1), Right: lit(2)}})
	})
}
