package spice

import "fmt"

// Depth returns the number of nodes on the longest path from the root to
// a literal, counting the root. Evaluation recurses this deep.
func Depth(e Expr) int {
	switch e := e.(type) {
	case *Arith:
		return 1 + arithDepth(e.X)
	case *Bool:
		return 1 + boolDepth(e.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// NodeCount returns the number of nodes in e, including the root.
func NodeCount(e Expr) int {
	switch e := e.(type) {
	case *Arith:
		return 1 + arithCount(e.X)
	case *Bool:
		return 1 + boolCount(e.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func arithDepth(expr ArithExpr) int {
	switch e := expr.(type) {
	case *IntLit:
		return 1
	case *BinArith:
		return 1 + max(arithDepth(e.Left), arithDepth(e.Right))
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func boolDepth(expr BoolExpr) int {
	switch e := expr.(type) {
	case *BoolLit:
		return 1
	case *ArithCmp:
		return 1 + max(arithDepth(e.Left), arithDepth(e.Right))
	case *BinBool:
		return 1 + max(boolDepth(e.Left), boolDepth(e.Right))
	case *Not:
		return 1 + boolDepth(e.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func arithCount(expr ArithExpr) int {
	switch e := expr.(type) {
	case *IntLit:
		return 1
	case *BinArith:
		return 1 + arithCount(e.Left) + arithCount(e.Right)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func boolCount(expr BoolExpr) int {
	switch e := expr.(type) {
	case *BoolLit:
		return 1
	case *ArithCmp:
		return 1 + arithCount(e.Left) + arithCount(e.Right)
	case *BinBool:
		return 1 + boolCount(e.Left) + boolCount(e.Right)
	case *Not:
		return 1 + boolCount(e.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
