package rules

import (
	"math/big"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/pattern"
)

// FactorialRules implements spec 4.6.5's Binomial/Gamma/Factorial2
// identities. Grounded on the teacher's numeric-tier dispatch idiom
// (builtins/Divide.go's DivideIntegers) adapted to compute exact
// bignum factorials via math/big directly, since client9/cardinal has
// no Gamma/Binomial builtins of its own to adapt from.
func FactorialRules() []pattern.Rule {
	return []pattern.Rule{
		pattern.NewRule("Binomial:KZero",
			pattern.Fn("Binomial", pattern.Bind("n", pattern.B()), pattern.L(intLit(0))),
			func(b pattern.Bindings) expr.Expression { return intLit(1) }),

		pattern.NewRule("Binomial:KOne",
			pattern.Fn("Binomial", pattern.Bind("n", pattern.B()), pattern.L(intLit(1))),
			func(b pattern.Bindings) expr.Expression { return b["n"] }),

		pattern.NewRule("Binomial:KEqualsN",
			pattern.Fn("Binomial", pattern.Bind("n", pattern.B()), pattern.Bind("k", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if expr.IsSame(b["n"], b["k"]) {
					return intLit(1)
				}
				return nil
			}),

		pattern.NewRule("Binomial:KEqualsNMinusOne",
			pattern.Fn("Binomial", pattern.Bind("n", pattern.B()),
				pattern.Fn("Plus", pattern.Bind("n2", pattern.B()), pattern.L(intLit(-1)))),
			func(b pattern.Bindings) expr.Expression {
				if expr.IsSame(b["n"], b["n2"]) {
					return b["n"]
				}
				return nil
			}),

		pattern.NewRule("Gamma:One",
			pattern.Fn("Gamma", pattern.L(intLit(1))),
			func(b pattern.Bindings) expr.Expression { return intLit(1) }),

		pattern.NewRule("Gamma:PositiveInteger",
			pattern.Fn("Gamma", pattern.Bind("n", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				n, ok := num(b["n"])
				if !ok || !n.Val.IsInt() || n.Val.Sign() <= 0 {
					return nil
				}
				k := int64(n.Val.Float64())
				if k < 1 || k > 170 {
					return nil
				}
				return expr.NewNumber(numeric.Normalize(numeric.NewBigInt(factorialBig(k - 1))))
			}),

		pattern.NewRule("Factorial2:SmallCases",
			pattern.Fn("Factorial2", pattern.Bind("n", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				n, ok := num(b["n"])
				if !ok || !n.Val.IsInt() {
					return nil
				}
				v := n.Val.Float64()
				if v == 0 || v == 1 || v == -1 {
					return intLit(1)
				}
				return nil
			}),
	}
}

func factorialBig(n int64) *big.Int {
	result := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}
