package spice

import (
	"fmt"
	"strconv"
	"strings"
)

// format.go renders a tree as infix text, for people to read.
// Nothing parses it back.

const (
	precOr = iota + 1
	precAnd
	precCmp // non-associative: == != < <= > >=
	precAdd
	precMul
	precNot
)

type formatter struct {
	buf strings.Builder
}

// Format returns e as infix text with as few parentheses as the
// precedence of its operators allows.
func Format(e Expr) string {
	var f formatter
	f.visitExpr(e)
	return f.buf.String()
}

func (e *Arith) String() string { return Format(e) }
func (e *Bool) String() string  { return Format(e) }

func (e *BinArith) String() string { return formatArith(e) }
func (e *IntLit) String() string   { return formatArith(e) }

func (e *ArithCmp) String() string { return formatBool(e) }
func (e *BinBool) String() string  { return formatBool(e) }
func (e *Not) String() string      { return formatBool(e) }
func (e *BoolLit) String() string  { return formatBool(e) }

func formatArith(e ArithExpr) string {
	var f formatter
	f.visitArith(e, 0)
	return f.buf.String()
}

func formatBool(e BoolExpr) string {
	var f formatter
	f.visitBool(e, 0)
	return f.buf.String()
}

func (f *formatter) visitExpr(expr Expr) {
	switch e := expr.(type) {
	case *Arith:
		f.visitArith(e.X, 0)
	case *Bool:
		f.visitBool(e.X, 0)
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

func (f *formatter) visitArith(expr ArithExpr, prec int) {
	switch e := expr.(type) {
	case *IntLit:
		f.write(strconv.FormatInt(e.Value, 10))
	case *BinArith:
		op := precAdd
		if e.Op == OpMul || e.Op == OpIntDiv {
			op = precMul
		}
		f.open(op, prec)
		f.visitArith(e.Left, op)
		f.write(" " + e.Op.String() + " ")
		f.visitArith(e.Right, op+1)
		f.close(op, prec)
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitArith: %T", e))
	}
}

func (f *formatter) visitBool(expr BoolExpr, prec int) {
	switch e := expr.(type) {
	case *BoolLit:
		f.write(strconv.FormatBool(e.Value))
	case *ArithCmp:
		f.open(precCmp, prec)
		f.visitArith(e.Left, precCmp+1)
		f.write(" " + e.Op.String() + " ")
		f.visitArith(e.Right, precCmp+1)
		f.close(precCmp, prec)
	case *BinBool:
		var op, left, right int
		switch e.Op {
		case LogicAnd:
			op, left, right = precAnd, precAnd, precAnd+1
		case LogicOr:
			op, left, right = precOr, precOr, precOr+1
		default:
			op, left, right = precCmp, precCmp+1, precCmp+1
		}
		f.open(op, prec)
		f.visitBool(e.Left, left)
		f.write(" " + e.Op.String() + " ")
		f.visitBool(e.Right, right)
		f.close(op, prec)
	case *Not:
		f.open(precNot, prec)
		f.write("not ")
		f.visitBool(e.X, precNot)
		f.close(precNot, prec)
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitBool: %T", e))
	}
}

func (f *formatter) open(op, prec int) {
	if op < prec {
		f.write("(")
	}
}

func (f *formatter) close(op, prec int) {
	if op < prec {
		f.write(")")
	}
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
