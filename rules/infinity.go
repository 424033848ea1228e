package rules

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/symbol"
)

// Infinity is represented as the symbol PositiveInfinity (or its
// negation Times(-1, PositiveInfinity), canonicalized the same way
// any other negative quantity is); NaN is represented as the
// Indeterminate error node (spec 7 treats it as an inline contagious
// error rather than a silent sentinel value).
var (
	posInf = symbol.New("PositiveInfinity")
)

func isPosInf(e expr.Expression) bool {
	s, ok := e.(*expr.SymbolExpr)
	return ok && s.Name == posInf
}

func isNegInf(e expr.Expression) bool {
	fn, ok := e.(*expr.FunctionExpr)
	return ok && fn.Name.String() == "Times" && len(fn.Args) == 2 &&
		isNegOne(fn.Args[0]) && isPosInf(fn.Args[1])
}

func isNegOne(e expr.Expression) bool {
	n, ok := num(e)
	return ok && numeric.Eq(n.Val, numeric.NewInt(-1))
}

func indeterminate() expr.Expression {
	return expr.NewErrorExpr("Indeterminate", "indeterminate form", nil)
}

// InfinityRules implements spec 4.6.4's two-operand multiply/divide/
// power folding for the PositiveInfinity/NegativeInfinity sentinels.
func InfinityRules() []pattern.Rule {
	return []pattern.Rule{
		pattern.NewRule("Infinity:ZeroTimesInfinity",
			pattern.Fn("Times", pattern.Bind("a", pattern.B()), pattern.Bind("b", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				a, c := b["a"], b["b"]
				if (isZero(a) && (isPosInf(c) || isNegInf(c))) || (isZero(c) && (isPosInf(a) || isNegInf(a))) {
					return indeterminate()
				}
				if isPosInf(a) && isExactOrFloat(c) {
					if signOf(c) > 0 {
						return posInfExpr()
					}
					if signOf(c) < 0 {
						return negInfExpr()
					}
				}
				if isPosInf(c) && isExactOrFloat(a) {
					if signOf(a) > 0 {
						return posInfExpr()
					}
					if signOf(a) < 0 {
						return negInfExpr()
					}
				}
				return nil
			}),

		pattern.NewRule("Infinity:InfinityOverInfinity",
			pattern.Fn("Divide", pattern.Bind("a", pattern.B()), pattern.Bind("b", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				a, c := b["a"], b["b"]
				if (isPosInf(a) || isNegInf(a)) && (isPosInf(c) || isNegInf(c)) {
					return indeterminate()
				}
				if (isPosInf(a) || isNegInf(a)) && isExactOrFloat(c) {
					pos := isPosInf(a)
					if signOf(c) < 0 {
						pos = !pos
					}
					if pos {
						return posInfExpr()
					}
					return negInfExpr()
				}
				return nil
			}),

		pattern.NewRule("Infinity:OneToFinitePower",
			pattern.Fn("Power", pattern.L(intLit(1)), pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if isExactOrFloat(b["x"]) {
					return intLit(1)
				}
				return nil
			}),

		pattern.NewRule("Infinity:InfinityToZero",
			pattern.Fn("Power", pattern.Bind("a", pattern.B()), pattern.L(intLit(0))),
			func(b pattern.Bindings) expr.Expression {
				if isPosInf(b["a"]) || isNegInf(b["a"]) {
					return indeterminate()
				}
				return nil
			}),

		pattern.NewRule("Infinity:BaseToInfinity",
			pattern.Fn("Power", pattern.Bind("a", pattern.B()), pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				a, x := b["a"], b["x"]
				if !isExactOrFloat(a) {
					return nil
				}
				if isPosInf(x) {
					if signOf(a) > 0 && greaterThanOne(a) {
						return posInfExpr()
					}
					if signOf(a) > 0 {
						return intLit(0)
					}
				}
				if isNegInf(x) {
					if signOf(a) > 0 && greaterThanOne(a) {
						return intLit(0)
					}
					if signOf(a) > 0 {
						return posInfExpr()
					}
				}
				return nil
			}),

		pattern.NewRule("Infinity:PositiveInfinityToNegativePower",
			pattern.Fn("Power", pattern.Bind("a", pattern.B()), pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if isPosInf(b["a"]) && isExactOrFloat(b["x"]) && signOf(b["x"]) < 0 {
					return intLit(0)
				}
				return nil
			}),

		pattern.NewRule("Infinity:NegativeInfinityIntegerPower",
			pattern.Fn("Power", pattern.Bind("a", pattern.B()), pattern.Bind("n", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if !isNegInf(b["a"]) || !isIntegerValue(b["n"]) {
					return nil
				}
				if isEvenInteger(b["n"]) {
					return posInfExpr()
				}
				return negInfExpr()
			}),

		pattern.NewRule("Exp:PositiveInfinity",
			pattern.Fn("Exp", pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				if isPosInf(b["x"]) {
					return posInfExpr()
				}
				if isNegInf(b["x"]) {
					return intLit(0)
				}
				return nil
			}),
	}
}

func posInfExpr() expr.Expression { return expr.NewSymbolFrom(posInf) }
func negInfExpr() expr.Expression {
	return expr.NewFunction(timesSym, intLit(-1), posInfExpr())
}

func greaterThanOne(e expr.Expression) bool {
	n, ok := num(e)
	return ok && numeric.Less(numeric.NewInt(1), n.Val)
}
