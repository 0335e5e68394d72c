package spice

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// check.go looks for trees that go's type system can't rule out:
// nil nodes and op codes outside their enum.
// It does not evaluate anything, so it can't find overflows.

// Check reports every malformed node in e.
// Each error is prefixed with the path from the root to the node,
// e.g. "arith.left.right: nil ArithExpr".
func Check(e Expr) error {
	switch e := e.(type) {
	case nil:
		return errors.New("nil Expr")
	case *Arith:
		if e == nil {
			return errors.New("nil *Arith")
		}
		return checkArith("arith", e.X)
	case *Bool:
		if e == nil {
			return errors.New("nil *Bool")
		}
		return checkBool("bool", e.X)
	default:
		return errors.Errorf("unknown Expr %T", e)
	}
}

func checkArith(path string, expr ArithExpr) error {
	switch e := expr.(type) {
	case nil:
		return errors.Errorf("%s: nil ArithExpr", path)
	case *IntLit:
		if e == nil {
			return errors.Errorf("%s: nil *IntLit", path)
		}
		return nil
	case *BinArith:
		if e == nil {
			return errors.Errorf("%s: nil *BinArith", path)
		}
		var err error
		if !e.Op.valid() {
			err = errors.Errorf("%s: invalid op %v", path, e.Op)
		}
		return multierr.Combine(
			err,
			checkArith(path+".left", e.Left),
			checkArith(path+".right", e.Right),
		)
	default:
		return errors.Errorf("%s: unknown ArithExpr %T", path, e)
	}
}

func checkBool(path string, expr BoolExpr) error {
	switch e := expr.(type) {
	case nil:
		return errors.Errorf("%s: nil BoolExpr", path)
	case *BoolLit:
		if e == nil {
			return errors.Errorf("%s: nil *BoolLit", path)
		}
		return nil
	case *ArithCmp:
		if e == nil {
			return errors.Errorf("%s: nil *ArithCmp", path)
		}
		var err error
		if !e.Op.valid() {
			err = errors.Errorf("%s: invalid op %v", path, e.Op)
		}
		return multierr.Combine(
			err,
			checkArith(path+".left", e.Left),
			checkArith(path+".right", e.Right),
		)
	case *BinBool:
		if e == nil {
			return errors.Errorf("%s: nil *BinBool", path)
		}
		var err error
		if !e.Op.valid() {
			err = errors.Errorf("%s: invalid op %v", path, e.Op)
		}
		return multierr.Combine(
			err,
			checkBool(path+".left", e.Left),
			checkBool(path+".right", e.Right),
		)
	case *Not:
		if e == nil {
			return errors.Errorf("%s: nil *Not", path)
		}
		return checkBool(path+".not", e.X)
	default:
		return errors.Errorf("%s: unknown BoolExpr %T", path, e)
	}
}
