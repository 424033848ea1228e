// Package rules implements spec section 4.6's essential rule families:
// Power, Abs, Divide, Infinity, and Factorial/Gamma/Binomial. Each
// family is a plain function returning a []pattern.Rule, built with
// Go constructors (pattern.Fn/pattern.B/...) rather than the teacher's
// `@ExprPattern` comment-annotated, codegen-dispatched builtin
// functions (builtins/Abs.go, builtins/Divide.go): this module has no
// parser or code-generation step, so rules are registered directly
// instead of discovered by scanning annotated doc comments.
//
// Per spec 4.6's own constraint, no rule here calls back into the
// simplifier: each rule produces a single rewritten node and returns,
// leaving further descent to the orchestrator (package simplify).
package rules

import (
	"math"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/symbol"
)

func num(e expr.Expression) (*expr.NumberExpr, bool) {
	n, ok := e.(*expr.NumberExpr)
	return n, ok
}

func isZero(e expr.Expression) bool {
	n, ok := num(e)
	return ok && n.IsZero()
}

func isExactNumber(e expr.Expression) bool {
	n, ok := num(e)
	return ok && n.IsExact()
}

// isIntegerValue reports whether e is a Number with integer value (an
// integral Float such as 2.0 counts too).
func isIntegerValue(e expr.Expression) bool {
	n, ok := num(e)
	return ok && n.Val.IsInt()
}

func signOf(e expr.Expression) int {
	n, ok := num(e)
	if !ok {
		return 0
	}
	return n.Val.Sign()
}

func isPositiveNumber(e expr.Expression) bool { return isExactOrFloat(e) && signOf(e) > 0 }
func isNegativeNumber(e expr.Expression) bool { return isExactOrFloat(e) && signOf(e) < 0 }

func isExactOrFloat(e expr.Expression) bool {
	_, ok := num(e)
	return ok
}

// isEvenInteger reports whether e is a Number holding an even integer.
// Uses Float64 rather than a dedicated modulo op since numeric.Value
// has no Mod method; exponents this rule family deals with (perfect-
// square/root detection) are always small enough for exact float
// representation.
func isEvenInteger(e expr.Expression) bool {
	n, ok := num(e)
	if !ok || !n.Val.IsInt() {
		return false
	}
	return math.Mod(n.Val.Float64(), 2) == 0
}

func isOddInteger(e expr.Expression) bool {
	return isIntegerValue(e) && !isEvenInteger(e)
}

// negOf builds -e as a canonicalization-agnostic Number/Times node: if
// e is already a Number, fold the negation exactly; otherwise wrap in
// Times(-1, e), left for the orchestrator's own Flat/Orderless pass.
func negOf(e expr.Expression) expr.Expression {
	if n, ok := num(e); ok {
		return expr.NewNumber(n.Val.Neg())
	}
	return expr.NewFunction(timesSym, expr.NewNumber(numeric.NewInt(-1)), e)
}

var (
	timesSym = symbol.New("Times")
	plusSym  = symbol.New("Plus")
	powerSym = symbol.New("Power")
	absSym   = symbol.New("Abs")
)

// constTemplate is a convenience Template constructor for rules that
// always return the same fixed replacement regardless of bindings.
func constTemplate(e expr.Expression) pattern.Template {
	return func(pattern.Bindings) expr.Expression { return e }
}
