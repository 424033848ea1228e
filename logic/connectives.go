package logic

import "github.com/casengine/core/expr"

// reduceImplies rewrites Implies(a,b) to Or(Not(a), b), spec 4.6.6's
// definition; the rewritten head differs from "Implies" so the
// orchestrator's per-head dispatch naturally hands the result to the
// Or rule family next instead of re-firing this one.
func reduceImplies(a, b expr.Expression) expr.Expression {
	return expr.NewFunction(orSym, negate(a), b)
}

// reduceEquivalent rewrites Equivalent(a,b) to (a and b) or (not a and
// not b), spec 4.6.6's definition.
func reduceEquivalent(a, b expr.Expression) expr.Expression {
	return expr.NewFunction(orSym,
		expr.NewFunction(andSym, a, b),
		expr.NewFunction(andSym, negate(a), negate(b)))
}

// reduceNand/reduceNor rewrite to the negation of And/Or, spec 4.6.6's
// "Nand, Nor are defined as negations of And, Or".
func reduceNand(args []expr.Expression) expr.Expression {
	return expr.NewFunction(notSym, expr.NewFunction(andSym, args...))
}

func reduceNor(args []expr.Expression) expr.Expression {
	return expr.NewFunction(notSym, expr.NewFunction(orSym, args...))
}
