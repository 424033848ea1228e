package rules

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/pattern"
)

// AbsRules implements spec 4.6.2: sign-known folding, the binary
// product/quotient split, and even/odd exponent folding. Grounded on
// builtins/Abs.go's per-shape dispatch (AbsInteger/AbsRational/
// AbsReal/AbsTimes), generalized from the teacher's per-numeric-tier
// functions to the unified numeric.Value tower.
func AbsRules() []pattern.Rule {
	return []pattern.Rule{
		pattern.NewRule("Abs:NonNegative",
			pattern.Fn("Abs", pattern.Bind("x", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				x := b["x"]
				if n, ok := num(x); ok {
					if n.Val.Sign() >= 0 {
						return x
					}
					return expr.NewNumber(n.Val.Neg())
				}
				return nil
			}),

		pattern.NewRule("Abs:NegatedArgument",
			pattern.Fn("Abs",
				pattern.Fn("Times", pattern.L(intLit(-1)), pattern.Bind("x", pattern.B()))),
			func(b pattern.Bindings) expr.Expression {
				return expr.NewFunction(absSym, b["x"])
			}),

		pattern.NewRule("Abs:Product",
			pattern.Fn("Abs",
				pattern.Fn("Times", pattern.Bind("x", pattern.B()), pattern.Bind("y", pattern.B()))),
			func(b pattern.Bindings) expr.Expression {
				x, y := b["x"], b["y"]
				if isPositiveNumber(x) {
					return expr.NewFunction(timesSym, x, expr.NewFunction(absSym, y))
				}
				if isPositiveNumber(y) {
					return expr.NewFunction(timesSym, y, expr.NewFunction(absSym, x))
				}
				return expr.NewFunction(timesSym, expr.NewFunction(absSym, x), expr.NewFunction(absSym, y))
			}),

		pattern.NewRule("Abs:Quotient",
			pattern.Fn("Abs",
				pattern.Fn("Divide", pattern.Bind("x", pattern.B()), pattern.Bind("y", pattern.B()))),
			func(b pattern.Bindings) expr.Expression {
				return expr.NewFunction(divSym, expr.NewFunction(absSym, b["x"]), expr.NewFunction(absSym, b["y"]))
			}),

		pattern.NewRule("Abs:EvenPower",
			pattern.Fn("Abs", pattern.Fn("Power", pattern.Bind("x", pattern.B()), pattern.Bind("n", pattern.B()))),
			func(b pattern.Bindings) expr.Expression {
				n := b["n"]
				if isEvenInteger(n) {
					return expr.NewFunction(powerSym, b["x"], n)
				}
				if isOddInteger(n) {
					return expr.NewFunction(powerSym, expr.NewFunction(absSym, b["x"]), n)
				}
				return nil
			}),

		// |f(x)| -> f(|x|) for odd functions; f(|x|) -> f(x) for even
		// functions (spec 4.6.2), restricted to the short odd/even lists.
		pattern.NewRule("Abs:OddFunction",
			pattern.Fn("Abs", pattern.Bind("inner", pattern.B())),
			func(b pattern.Bindings) expr.Expression {
				fn, ok := b["inner"].(*expr.FunctionExpr)
				if !ok || len(fn.Args) != 1 || !oddFunctions[fn.Name.String()] {
					return nil
				}
				return expr.NewFunction(fn.Name, expr.NewFunction(absSym, fn.Args[0]))
			}),
		pattern.NewRule("Abs:EvenFunctionArgument",
			pattern.Bind("inner", pattern.B()),
			func(b pattern.Bindings) expr.Expression {
				fn, ok := b["inner"].(*expr.FunctionExpr)
				if !ok || !evenFunctions[fn.Name.String()] || len(fn.Args) != 1 {
					return nil
				}
				arg, ok := fn.Args[0].(*expr.FunctionExpr)
				if !ok || arg.Name.String() != "Abs" || len(arg.Args) != 1 {
					return nil
				}
				return expr.NewFunction(fn.Name, arg.Args[0])
			}),
	}
}

var oddFunctions = map[string]bool{
	"Sin": true, "Tan": true, "Cot": true, "Csc": true,
	"Arcsin": true, "Arctan": true, "Arccot": true, "Arccsc": true,
	"Sinh": true, "Tanh": true, "Coth": true, "Csch": true,
	"Arsinh": true, "Artanh": true, "Arcoth": true, "Arcsch": true,
}

var evenFunctions = map[string]bool{
	"Cos": true, "Sec": true, "Cosh": true, "Sech": true,
}
