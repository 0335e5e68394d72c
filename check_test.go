package spice

import (
	"regexp"
	"testing"

	"go.uber.org/multierr"
)

var checkTests = []Expr{
	&Arith{lit(1)},
	&Arith{bin(OpIntDiv, 1, 0)}, // fatal when evaluated, but well formed
	&Bool{&BinBool{Op: LogicNeq, Left: &Not{blit(true)}, Right: cmp(CmpGte, 1, 2)}},
}

var checkErrorTests = []struct {
	expr   Expr
	errors []string
}{
	{nil, []string{"^nil Expr$"}},
	{(*Arith)(nil), []string{`^nil \*Arith$`}},
	{&Arith{}, []string{"^arith: nil ArithExpr$"}},
	{&Bool{}, []string{"^bool: nil BoolExpr$"}},
	{&Arith{(*IntLit)(nil)}, []string{`^arith: nil \*IntLit$`}},
	{&Arith{&BinArith{Op: OpAdd, Left: lit(1)}}, []string{"^arith.right: nil ArithExpr$"}},
	{&Arith{&BinArith{Op: BinArithOp(9), Left: lit(1), Right: lit(2)}}, []string{`^arith: invalid op BinArithOp\(9\)$`}},
	{
		&Arith{&BinArith{Op: BinArithOp(-1), Right: &BinArith{Op: OpMul, Left: lit(1)}}},
		[]string{
			`^arith: invalid op BinArithOp\(-1\)$`,
			"^arith.left: nil ArithExpr$",
			"^arith.right.right: nil ArithExpr$",
		},
	},
	{
		&Bool{&BinBool{Op: BinLogicOp(4), Left: &Not{}, Right: &ArithCmp{Op: ArithCmpOp(6), Left: lit(1)}}},
		[]string{
			`^bool: invalid op BinLogicOp\(4\)$`,
			"^bool.left.not: nil BoolExpr$",
			`^bool.right: invalid op ArithCmpOp\(6\)$`,
			"^bool.right.right: nil ArithExpr$",
		},
	},
}

func TestCheck(t *testing.T) {
	for _, e := range checkTests {
		if err := Check(e); err != nil {
			t.Errorf("Check(%v): unexpected error: %v", e, err)
		}
	}
	for _, tt := range checkErrorTests {
		err := Check(tt.expr)
		if err == nil {
			t.Errorf("Check(%#v): expected an error but found none", tt.expr)
			continue
		}
		errs := multierr.Errors(err)
		if len(errs) != len(tt.errors) {
			t.Errorf("Check(%#v): got %d errors, want %d: %v", tt.expr, len(errs), len(tt.errors), err)
			continue
		}
		for i, pattern := range tt.errors {
			matched, matchErr := regexp.MatchString(pattern, errs[i].Error())
			if matchErr != nil {
				t.Errorf("invalid pattern (%q): %v", pattern, matchErr)
			} else if !matched {
				t.Errorf("Check(%#v): unexpected error: %v", tt.expr, errs[i])
				t.Errorf("Check(%#v): expected error matching %q", tt.expr, pattern)
			}
		}
	}
}
