// Package spice evaluates a small language of integer arithmetic and
// boolean logic. Programs are trees built directly from the node types in
// this file; there is no parser.
package spice

import (
	"fmt"
	"strconv"
)

// Expr is a top-level expression: *Arith or *Bool.
type Expr interface {
	expr()
	String() string
}

// ArithExpr is an expression that reduces to an int64: *BinArith or *IntLit.
type ArithExpr interface {
	arithExpr()
	String() string
}

// BoolExpr is an expression that reduces to a bool:
// *ArithCmp, *BinBool, *Not or *BoolLit.
type BoolExpr interface {
	boolExpr()
	String() string
}

type Arith struct {
	X ArithExpr
}

type Bool struct {
	X BoolExpr
}

type BinArith struct {
	Op    BinArithOp
	Left  ArithExpr
	Right ArithExpr
}

type IntLit struct {
	Value int64
}

// ArithCmp compares two integers.
// It is the only place the arithmetic and boolean families meet.
type ArithCmp struct {
	Op    ArithCmpOp
	Left  ArithExpr
	Right ArithExpr
}

type BinBool struct {
	Op    BinLogicOp
	Left  BoolExpr
	Right BoolExpr
}

type Not struct {
	X BoolExpr
}

type BoolLit struct {
	Value bool
}

func (*Arith) expr() {}
func (*Bool) expr()  {}

func (*BinArith) arithExpr() {}
func (*IntLit) arithExpr()   {}

func (*ArithCmp) boolExpr() {}
func (*BinBool) boolExpr()  {}
func (*Not) boolExpr()      {}
func (*BoolLit) boolExpr()  {}

type BinArithOp int

const (
	OpAdd BinArithOp = iota
	OpSub
	OpMul
	OpIntDiv // truncates toward zero
)

type ArithCmpOp int

const (
	CmpLt ArithCmpOp = iota
	CmpLte
	CmpGt
	CmpGte
	CmpEq
	CmpNeq
)

type BinLogicOp int

const (
	LogicAnd BinLogicOp = iota
	LogicOr
	LogicEq
	LogicNeq
)

var binArithOpNames = [...]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpIntDiv: "/",
}

var arithCmpOpNames = [...]string{
	CmpLt:  "<",
	CmpLte: "<=",
	CmpGt:  ">",
	CmpGte: ">=",
	CmpEq:  "==",
	CmpNeq: "!=",
}

var binLogicOpNames = [...]string{
	LogicAnd: "and",
	LogicOr:  "or",
	LogicEq:  "==",
	LogicNeq: "!=",
}

func (op BinArithOp) valid() bool { return op >= 0 && int(op) < len(binArithOpNames) }
func (op ArithCmpOp) valid() bool { return op >= 0 && int(op) < len(arithCmpOpNames) }
func (op BinLogicOp) valid() bool { return op >= 0 && int(op) < len(binLogicOpNames) }

func (op BinArithOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("BinArithOp(%d)", int(op))
	}
	return binArithOpNames[op]
}

func (op ArithCmpOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("ArithCmpOp(%d)", int(op))
	}
	return arithCmpOpNames[op]
}

func (op BinLogicOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("BinLogicOp(%d)", int(op))
	}
	return binLogicOpNames[op]
}

// Value is the result of evaluating an Expr: IntValue or BoolValue.
// Values are comparable with ==.
type Value interface {
	value()
	String() string
}

type IntValue int64

type BoolValue bool

func (IntValue) value()  {}
func (BoolValue) value() {}

func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v BoolValue) String() string { return strconv.FormatBool(bool(v)) }
