package logic

import "github.com/casengine/core/expr"

// ToNNF pushes negations inward via De Morgan's laws and eliminates
// Implies/Equivalent/Xor/Nand/Nor in favor of And/Or/Not, spec 4.6.6's
// normal-form conversion. Grounded on the same definitional rewrites as
// connectives.go, applied under an accumulated negation flag instead of
// as one-shot simplifier rules so the whole tree collapses in a single
// top-down pass.
func ToNNF(e expr.Expression) expr.Expression {
	return toNNF(e, false)
}

func toNNF(e expr.Expression, negated bool) expr.Expression {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok {
		if negated {
			return expr.NewFunction(notSym, e)
		}
		return e
	}
	switch fn.Name.String() {
	case "Not":
		if len(fn.Args) == 1 {
			return toNNF(fn.Args[0], !negated)
		}
	case "And":
		args := mapNNF(fn.Args, negated)
		if negated {
			return expr.NewFunction(orSym, args...)
		}
		return expr.NewFunction(andSym, args...)
	case "Or":
		args := mapNNF(fn.Args, negated)
		if negated {
			return expr.NewFunction(andSym, args...)
		}
		return expr.NewFunction(orSym, args...)
	case "Implies":
		if len(fn.Args) == 2 {
			return toNNF(reduceImplies(fn.Args[0], fn.Args[1]), negated)
		}
	case "Equivalent":
		if len(fn.Args) == 2 {
			return toNNF(reduceEquivalent(fn.Args[0], fn.Args[1]), negated)
		}
	case "Xor":
		if len(fn.Args) >= 2 {
			return toNNF(xorToOr(fn.Args), negated)
		}
	case "Nand":
		return toNNF(expr.NewFunction(notSym, expr.NewFunction(andSym, fn.Args...)), negated)
	case "Nor":
		return toNNF(expr.NewFunction(notSym, expr.NewFunction(orSym, fn.Args...)), negated)
	}
	if negated {
		return expr.NewFunction(notSym, e)
	}
	return e
}

func mapNNF(args []expr.Expression, negated bool) []expr.Expression {
	out := make([]expr.Expression, len(args))
	for i, a := range args {
		out[i] = toNNF(a, negated)
	}
	return out
}

// xorToOr expands an n-ary Xor into a left fold of pairwise
// (a and not b) or (not a and b), since Xor is associative parity.
func xorToOr(args []expr.Expression) expr.Expression {
	cur := args[0]
	for _, a := range args[1:] {
		cur = expr.NewFunction(orSym,
			expr.NewFunction(andSym, cur, expr.NewFunction(notSym, a)),
			expr.NewFunction(andSym, expr.NewFunction(notSym, cur), a))
	}
	return cur
}

// flattenHead flattens nested same-head And/Or calls, recursively.
func flattenHead(head string, args []expr.Expression) []expr.Expression {
	var out []expr.Expression
	for _, a := range args {
		if fn, ok := a.(*expr.FunctionExpr); ok && fn.Name.String() == head {
			out = append(out, flattenHead(head, fn.Args)...)
			continue
		}
		out = append(out, a)
	}
	return out
}

// flattenLogicAll recursively flattens every nested And/Or run in the
// tree, the "flattening nested Ors first and recursively" step spec
// 4.6.6 calls for before distribution.
func flattenLogicAll(e expr.Expression) expr.Expression {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok {
		return e
	}
	args := make([]expr.Expression, len(fn.Args))
	for i, a := range fn.Args {
		args[i] = flattenLogicAll(a)
	}
	head := fn.Name.String()
	if head == "And" || head == "Or" {
		args = flattenHead(head, args)
	}
	return expr.NewFunction(fn.Name, args...)
}

// ToCNF converts e to conjunctive normal form: NNF, then distribute Or
// over And (flattening nested runs first, recursively).
func ToCNF(e expr.Expression) expr.Expression {
	return distributeOrOverAnd(flattenLogicAll(ToNNF(e)))
}

func distributeOrOverAnd(e expr.Expression) expr.Expression {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok {
		return e
	}
	switch fn.Name.String() {
	case "And":
		args := make([]expr.Expression, len(fn.Args))
		for i, a := range fn.Args {
			args[i] = distributeOrOverAnd(a)
		}
		return expr.NewFunction(andSym, flattenHead("And", args)...)
	case "Or":
		args := make([]expr.Expression, len(fn.Args))
		for i, a := range fn.Args {
			args[i] = distributeOrOverAnd(a)
		}
		args = flattenHead("Or", args)
		for i, a := range args {
			af, ok := a.(*expr.FunctionExpr)
			if !ok || af.Name.String() != "And" {
				continue
			}
			rest := append(append([]expr.Expression{}, args[:i]...), args[i+1:]...)
			conj := make([]expr.Expression, len(af.Args))
			for j, c := range af.Args {
				conj[j] = expr.NewFunction(orSym, append(append([]expr.Expression{}, rest...), c)...)
			}
			return distributeOrOverAnd(expr.NewFunction(andSym, conj...))
		}
		return expr.NewFunction(orSym, args...)
	default:
		return e
	}
}

// ToDNF converts e to disjunctive normal form, the dual of ToCNF:
// distribute And over Or instead.
func ToDNF(e expr.Expression) expr.Expression {
	return distributeAndOverOr(flattenLogicAll(ToNNF(e)))
}

func distributeAndOverOr(e expr.Expression) expr.Expression {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok {
		return e
	}
	switch fn.Name.String() {
	case "Or":
		args := make([]expr.Expression, len(fn.Args))
		for i, a := range fn.Args {
			args[i] = distributeAndOverOr(a)
		}
		return expr.NewFunction(orSym, flattenHead("Or", args)...)
	case "And":
		args := make([]expr.Expression, len(fn.Args))
		for i, a := range fn.Args {
			args[i] = distributeAndOverOr(a)
		}
		args = flattenHead("And", args)
		for i, a := range args {
			af, ok := a.(*expr.FunctionExpr)
			if !ok || af.Name.String() != "Or" {
				continue
			}
			rest := append(append([]expr.Expression{}, args[:i]...), args[i+1:]...)
			disj := make([]expr.Expression, len(af.Args))
			for j, c := range af.Args {
				disj[j] = expr.NewFunction(andSym, append(append([]expr.Expression{}, rest...), c)...)
			}
			return distributeAndOverOr(expr.NewFunction(orSym, disj...))
		}
		return expr.NewFunction(andSym, args...)
	default:
		return e
	}
}
