package rules

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/pattern"
)

// PowerRules implements spec 4.6.1's x^0, x^1, 0^x (x a positive
// number), 1^x, sign/parity folding for a literal negated base, and
// the nested-power exponent product. Same-base division is handled by
// DivideRules (Divide:SameBasePower); no sqrt perfect-square rule is
// included. Grounded on the shape of the teacher's
// builtins/Abs.go-style per-pattern dispatch (one Go function per
// matched shape) adapted to this package's pattern.Rule instead of the
// `@ExprPattern`-annotated, context-taking builtin signature.
func PowerRules() []pattern.Rule {
	return []pattern.Rule{
		pattern.NewRule("Power:ZeroExponent",
			pattern.Fn("Power", pattern.Bind("x", pattern.B()), pattern.L(intLit(0))),
			func(b pattern.Bindings) expr.Expression {
				if isZero(b["x"]) {
					return expr.NewErrorExpr("Indeterminate", "0^0", nil)
				}
				return intLit(1)
			}),

		pattern.NewRule("Power:OneExponent",
			pattern.Fn("Power", pattern.Bind("x", pattern.B()), pattern.L(intLit(1))),
			func(b pattern.Bindings) expr.Expression { return b["x"] }),

		pattern.NewRule("Power:ZeroBasePositiveExponent",
			pattern.Fn("Power", pattern.L(intLit(0)), pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if isPositiveNumber(b["x"]) {
					return intLit(0)
				}
				return nil
			}),

		pattern.NewRule("Power:OneBase",
			pattern.Fn("Power", pattern.L(intLit(1)), pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression { return intLit(1) }),

		// (-x)^n -> x^n (n even), -(x^n) (n odd); applied only when the
		// base is a literal negation Times(-1, x) per spec 4.6.1.
		pattern.NewRule("Power:NegativeBaseParity",
			pattern.Fn("Power",
				pattern.Bind("neg", pattern.Fn("Times", pattern.L(intLit(-1)), pattern.Bind("x", pattern.B()))),
				pattern.Bind("n", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				n := b["n"]
				base := b["x"]
				if isEvenInteger(n) {
					return expr.NewFunction(powerSym, base, n)
				}
				if isOddInteger(n) {
					return negOf(expr.NewFunction(powerSym, base, n))
				}
				return nil
			}),

		// x^a / encoded as Power(x,a) * Power(x,-b) is handled by the
		// Divide family; same-base combination on direct Power(Power(x,a),b)
		// nesting, the exponent-product rule, restricted to the cases
		// spec 4.6.1 calls sign-safe: outer exponent an integer, or the
		// base a positive number.
		pattern.NewRule("Power:NestedExponentProduct",
			pattern.Fn("Power",
				pattern.Bind("inner", pattern.Fn("Power", pattern.Bind("x", pattern.B()), pattern.Bind("n", pattern.B()))),
				pattern.Bind("m", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				m := b["m"]
				if !isIntegerValue(m) && !isPositiveNumber(b["x"]) {
					return nil
				}
				nm, ok := num(b["n"])
				mm, ok2 := num(m)
				if !ok || !ok2 {
					return nil
				}
				return expr.NewFunction(powerSym, b["x"], expr.NewNumber(numeric.Mul(nm.Val, mm.Val)))
			}),
	}
}

func intLit(n int64) expr.Expression { return expr.NewNumber(numeric.NewInt(n)) }
