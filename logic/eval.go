package logic

import "github.com/casengine/core/expr"

// reduceAnd implements spec 4.6.6's n-ary And evaluation: short-circuit
// on an absorbing False, drop identity True elements, remove
// duplicates, detect an in-place contradiction (A and Not(A) -> False),
// and apply absorption (A and (A or B) -> A). Returns ok=false when
// nothing in args changes, so the caller can treat a false return as
// "this rule does not apply here" per the pattern-template decline
// convention used throughout this module.
//
// Grounded on the teacher's builtins/And.go short-circuiting loop,
// generalized with the duplicate/contradiction/absorption passes spec
// 4.6.6 adds on top of plain short-circuit evaluation.
func reduceAnd(args []expr.Expression) (expr.Expression, bool) {
	var kept []expr.Expression
	for _, a := range args {
		if IsFalse(a) {
			return False(), true
		}
		if IsTrue(a) {
			continue
		}
		dup := false
		for _, k := range kept {
			if expr.IsSame(k, a) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, a)
		}
	}
	for i := 0; i < len(kept); i++ {
		for j := i + 1; j < len(kept); j++ {
			if isNegationPair(kept[i], kept[j]) {
				return False(), true
			}
		}
	}
	kept = absorbAnd(kept)

	if len(kept) == len(args) && sameArgs(kept, args) {
		return nil, false
	}
	switch len(kept) {
	case 0:
		return True(), true
	case 1:
		return kept[0], true
	default:
		return expr.NewFunction(andSym, kept...), true
	}
}

// absorbAnd drops any Or(...) element whose disjuncts include another
// top-level And element (A and (A or B) -> A).
func absorbAnd(args []expr.Expression) []expr.Expression {
	out := make([]expr.Expression, 0, len(args))
	for i, a := range args {
		if orFn, ok := a.(*expr.FunctionExpr); ok && orFn.Name.String() == "Or" {
			absorbed := false
			for _, disjunct := range orFn.Args {
				for j, other := range args {
					if j == i {
						continue
					}
					if expr.IsSame(disjunct, other) {
						absorbed = true
						break
					}
				}
				if absorbed {
					break
				}
			}
			if absorbed {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// reduceOr mirrors reduceAnd with True as the absorbing element,
// A or Not(A) -> True, and A or (A and B) -> A absorption.
func reduceOr(args []expr.Expression) (expr.Expression, bool) {
	var kept []expr.Expression
	for _, a := range args {
		if IsTrue(a) {
			return True(), true
		}
		if IsFalse(a) {
			continue
		}
		dup := false
		for _, k := range kept {
			if expr.IsSame(k, a) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, a)
		}
	}
	for i := 0; i < len(kept); i++ {
		for j := i + 1; j < len(kept); j++ {
			if isNegationPair(kept[i], kept[j]) {
				return True(), true
			}
		}
	}
	kept = absorbOr(kept)

	if len(kept) == len(args) && sameArgs(kept, args) {
		return nil, false
	}
	switch len(kept) {
	case 0:
		return False(), true
	case 1:
		return kept[0], true
	default:
		return expr.NewFunction(orSym, kept...), true
	}
}

func absorbOr(args []expr.Expression) []expr.Expression {
	out := make([]expr.Expression, 0, len(args))
	for i, a := range args {
		if andFn, ok := a.(*expr.FunctionExpr); ok && andFn.Name.String() == "And" {
			absorbed := false
			for _, conjunct := range andFn.Args {
				for j, other := range args {
					if j == i {
						continue
					}
					if expr.IsSame(conjunct, other) {
						absorbed = true
						break
					}
				}
				if absorbed {
					break
				}
			}
			if absorbed {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// reduceNot evaluates a single-argument Not, grounded directly on the
// teacher's stdlib/not.go NotExpr.
func reduceNot(x expr.Expression) (expr.Expression, bool) {
	if IsTrue(x) {
		return False(), true
	}
	if IsFalse(x) {
		return True(), true
	}
	if fn, ok := x.(*expr.FunctionExpr); ok && fn.Name.String() == "Not" && len(fn.Args) == 1 {
		return fn.Args[0], true
	}
	return nil, false
}

// reduceXor implements spec 4.6.6's parity semantics: known-True
// operands toggle the overall parity and are dropped; if every operand
// was a constant, the result is the accumulated parity; otherwise one
// remaining unknown operand is negated if the parity is odd, per
// "partial evaluation reduces known-True counts flipping the remaining
// unknowns".
func reduceXor(args []expr.Expression) (expr.Expression, bool) {
	parityOdd := false
	sawConst := false
	var rest []expr.Expression
	for _, a := range args {
		if IsTrue(a) {
			parityOdd = !parityOdd
			sawConst = true
			continue
		}
		if IsFalse(a) {
			sawConst = true
			continue
		}
		rest = append(rest, a)
	}
	if !sawConst {
		return nil, false
	}
	if len(rest) == 0 {
		return fromBool(parityOdd), true
	}
	if parityOdd {
		rest[0] = negate(rest[0])
	}
	if len(rest) == 1 {
		return rest[0], true
	}
	return expr.NewFunction(xorSym, rest...), true
}
