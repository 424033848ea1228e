package logic

import "github.com/casengine/core/expr"

// Evaluator reduces a boxed expression to a fixed point; quantifier
// evaluation calls back into the host simplifier after each
// substitution rather than reducing booleans itself, since a
// quantifier body is typically a comparison or arbitrary predicate
// (Greater(x, 0), not just And/Or/Not), which this package has no way
// to evaluate on its own.
type Evaluator func(expr.Expression) expr.Expression

// EvalForAll, EvalExists, EvalExistsUnique, EvalNotForAll and
// EvalNotExists implement spec 4.6.6's quantifier procedure:
//
//  1. a constant True/False body returns itself;
//  2. a body that doesn't reference boundVar is evaluated once and
//     returned directly;
//  3. the finite domain is extracted from condition (an Element(x,
//     Set(...)) term, optionally nested inside an And(...) of other
//     conditions);
//  4. for each domain value, boundVar is substituted into body and the
//     result reduced via eval; ForAll short-circuits on the first
//     False, Exists on the first True, ExistsUnique counts True results
//     and succeeds iff exactly one; a non-boolean reduction at any step
//     yields Undefined.
func EvalForAll(boundVar string, condition, body expr.Expression, eval Evaluator) expr.Expression {
	return evalQuantifier(boundVar, condition, body, eval, forAllKind)
}

func EvalExists(boundVar string, condition, body expr.Expression, eval Evaluator) expr.Expression {
	return evalQuantifier(boundVar, condition, body, eval, existsKind)
}

func EvalExistsUnique(boundVar string, condition, body expr.Expression, eval Evaluator) expr.Expression {
	return evalQuantifier(boundVar, condition, body, eval, existsUniqueKind)
}

func EvalNotForAll(boundVar string, condition, body expr.Expression, eval Evaluator) expr.Expression {
	out := evalQuantifier(boundVar, condition, body, eval, forAllKind)
	if IsUndefined(out) {
		return out
	}
	return negate(out)
}

func EvalNotExists(boundVar string, condition, body expr.Expression, eval Evaluator) expr.Expression {
	out := evalQuantifier(boundVar, condition, body, eval, existsKind)
	if IsUndefined(out) {
		return out
	}
	return negate(out)
}

type quantifierKind int

const (
	forAllKind quantifierKind = iota
	existsKind
	existsUniqueKind
)

func evalQuantifier(boundVar string, condition, body expr.Expression, eval Evaluator, kind quantifierKind) expr.Expression {
	if IsTrue(body) || IsFalse(body) {
		return body
	}
	if !references(body, boundVar) {
		return eval(body)
	}
	values, ok := finiteDomain(condition, boundVar)
	if !ok {
		return Undefined()
	}

	trueCount := 0
	for _, v := range values {
		reduced := eval(expr.Subs(body, map[string]expr.Expression{boundVar: v}))
		if IsTrue(reduced) {
			trueCount++
			if kind == existsKind {
				return True()
			}
			continue
		}
		if IsFalse(reduced) {
			if kind == forAllKind {
				return False()
			}
			continue
		}
		return Undefined()
	}
	switch kind {
	case forAllKind:
		return True()
	case existsKind:
		return False()
	default: // existsUniqueKind
		return fromBool(trueCount == 1)
	}
}

// Undefined is a dedicated sentinel distinct from True/False, returned
// when a quantifier body doesn't reduce to a boolean for some domain
// element, or when no finite domain could be extracted from the
// condition.
func Undefined() expr.Expression { return expr.NewSymbol("Undefined") }

func IsUndefined(e expr.Expression) bool {
	s, ok := e.(*expr.SymbolExpr)
	return ok && s.Name.String() == "Undefined"
}

// finiteDomain searches condition for an Element(boundVar, Set(...))
// term — directly, or as one conjunct of an And(...) of conditions —
// and returns the Set's elements.
func finiteDomain(condition expr.Expression, boundVar string) ([]expr.Expression, bool) {
	fn, ok := condition.(*expr.FunctionExpr)
	if !ok {
		return nil, false
	}
	switch fn.Name.String() {
	case "Element":
		if len(fn.Args) != 2 {
			return nil, false
		}
		s, ok := fn.Args[0].(*expr.SymbolExpr)
		if !ok || s.Name.String() != boundVar {
			return nil, false
		}
		set, ok := fn.Args[1].(*expr.FunctionExpr)
		if !ok || set.Name.String() != "Set" {
			return nil, false
		}
		return set.Args, true
	case "And":
		for _, c := range fn.Args {
			if vals, ok := finiteDomain(c, boundVar); ok {
				return vals, true
			}
		}
	}
	return nil, false
}
