package spice

import "fmt"

// eval.go reduces a tree to a value by structural recursion.
// None of these functions return an error: a division by zero or an
// integer overflow panics with a *EvalError. See TryEval.

// Eval evaluates a top-level expression.
func Eval(e Expr) Value {
	switch e := e.(type) {
	case *Arith:
		return IntValue(EvalArith(e.X))
	case *Bool:
		return BoolValue(EvalBool(e.X))
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// EvalArith evaluates an arithmetic expression.
// The left operand is always evaluated before the right.
func EvalArith(e ArithExpr) int64 {
	switch e := e.(type) {
	case *IntLit:
		return e.Value
	case *BinArith:
		left := EvalArith(e.Left)
		right := EvalArith(e.Right)
		v, err := applyArith(e.Op, left, right)
		if err != nil {
			fatalArith(e.Op, left, right, err)
		}
		return v
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// EvalBool evaluates a boolean expression.
// Both operands of and/or are always evaluated; there is no short circuit.
func EvalBool(e BoolExpr) bool {
	switch e := e.(type) {
	case *BoolLit:
		return e.Value
	case *ArithCmp:
		left := EvalArith(e.Left)
		right := EvalArith(e.Right)
		switch e.Op {
		case CmpLt:
			return left < right
		case CmpLte:
			return left <= right
		case CmpGt:
			return left > right
		case CmpGte:
			return left >= right
		case CmpEq:
			return left == right
		case CmpNeq:
			return left != right
		default:
			panic("unhandled comparison: " + e.Op.String())
		}
	case *BinBool:
		left := EvalBool(e.Left)
		right := EvalBool(e.Right)
		switch e.Op {
		case LogicAnd:
			return left && right
		case LogicOr:
			return left || right
		case LogicEq:
			return left == right
		case LogicNeq:
			return left != right
		default:
			panic("unhandled logic op: " + e.Op.String())
		}
	case *Not:
		return !EvalBool(e.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
