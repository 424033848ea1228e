package rules

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/symbol"
)

// DivideRules implements spec 4.6.3: the 0/a, a/a, double-reciprocal
// and nested-quotient folds. These rules match a Divide head directly;
// canonicalization keeps Divide as its own head rather than rewriting
// it to Times(a, Power(b, -1)) the way the teacher's
// builtins/Divide.go DivideAny fallback does.
func DivideRules() []pattern.Rule {
	return []pattern.Rule{
		pattern.NewRule("Divide:ZeroOverZero",
			pattern.Fn("Divide", pattern.L(intLit(0)), pattern.L(intLit(0))),
			constTemplate(expr.NewErrorExpr("Indeterminate", "0/0", nil))),

		pattern.NewRule("Divide:ZeroNumerator",
			pattern.Fn("Divide", pattern.L(intLit(0)), pattern.Bind("a", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if isZero(b["a"]) {
					return nil
				}
				return intLit(0)
			}),

		pattern.NewRule("Divide:ByZero",
			pattern.Fn("Divide", pattern.Bind("a", pattern.B()), pattern.L(intLit(0))),
			constTemplate(expr.NewErrorExpr("DivisionByZero", "division by zero", nil))),

		pattern.NewRule("Divide:SameOperand",
			pattern.Fn("Divide", pattern.Bind("a", pattern.B()), pattern.Bind("b", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if expr.IsSame(b["a"], b["b"]) && !isZero(b["a"]) {
					return intLit(1)
				}
				return nil
			}),

		pattern.NewRule("Divide:Reciprocal",
			pattern.Fn("Divide", pattern.L(intLit(1)),
				pattern.Fn("Divide", pattern.L(intLit(1)), pattern.Bind("a", pattern.B()))),
			func(b pattern.Bindings) expr.Expression { return b["a"] }),

		pattern.NewRule("Divide:MulByReciprocal",
			pattern.Fn("Divide", pattern.Bind("a", pattern.B()),
				pattern.Fn("Divide", pattern.L(intLit(1)), pattern.Bind("b", pattern.B()))),
			func(b pattern.Bindings) expr.Expression {
				return expr.NewFunction(timesSym, b["a"], b["b"])
			}),

		pattern.NewRule("Divide:NestedQuotient",
			pattern.Fn("Divide", pattern.Bind("a", pattern.B()),
				pattern.Fn("Divide", pattern.Bind("b", pattern.B()), pattern.Bind("c", pattern.B()))),
			func(b pattern.Bindings) expr.Expression {
				return expr.NewFunction(divSym, expr.NewFunction(timesSym, b["a"], b["c"]), b["b"])
			}),

		pattern.NewRule("Divide:SameBasePower",
			pattern.Fn("Divide",
				pattern.Fn("Power", pattern.Bind("x", pattern.B()), pattern.Bind("a", pattern.B())),
				pattern.Fn("Power", pattern.Bind("x2", pattern.B()), pattern.Bind("b", pattern.B()))),
			func(bi pattern.Bindings) expr.Expression {
				if !expr.IsSame(bi["x"], bi["x2"]) {
					return nil
				}
				an, aok := num(bi["a"])
				bn, bok := num(bi["b"])
				if !aok || !bok || (an.IsExact() && bn.IsExact()) {
					// this rule only fires when at least one exponent is an
					// inexact number; two exact exponents are left as they
					// are, and canonicalization does not fold them either.
					return nil
				}
				return expr.NewFunction(powerSym, bi["x"], expr.NewNumber(numeric.Sub(an.Val, bn.Val)))
			}),
	}
}

var divSym = symbol.New("Divide")
