// Package logic implements spec section 4.6.6's boolean subsystem:
// n-ary And/Or evaluation with absorption and contradiction/tautology
// detection, the non-associative connectives (Implies, Equivalent,
// Xor, Nand, Nor), normal-form conversion (NNF/CNF/DNF), truth-table
// enumeration, Quine-McCluskey minimization, and quantifiers over
// finite domains.
//
// Grounded on the teacher's stdlib/logical.go and builtins/And.go,
// builtins/Not.go (short-circuiting n-ary evaluation over core.Expr,
// True/False represented as ordinary symbols rather than a distinct
// boolean kind); generalized from the teacher's two-operand And/Not
// into the full connective and normal-form set spec 4.6.6 names, since
// client9/cardinal has no CNF/DNF/Quine-McCluskey/quantifier analogue
// to adapt from.
package logic

import (
	"sort"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/symbol"
)

var (
	trueSym       = symbol.New("True")
	falseSym      = symbol.New("False")
	andSym     = symbol.New("And")
	orSym      = symbol.New("Or")
	notSym     = symbol.New("Not")
	impliesSym = symbol.New("Implies")
	xorSym     = symbol.New("Xor")
)

// True and False are the boolean constants of the boxed-expression
// model: ordinary interned symbols, the same representation the
// teacher uses (core.NewBool wraps a True/False symbol internally).
func True() expr.Expression  { return expr.NewSymbolFrom(trueSym) }
func False() expr.Expression { return expr.NewSymbolFrom(falseSym) }

func IsTrue(e expr.Expression) bool {
	s, ok := e.(*expr.SymbolExpr)
	return ok && s.Name == trueSym
}

func IsFalse(e expr.Expression) bool {
	s, ok := e.(*expr.SymbolExpr)
	return ok && s.Name == falseSym
}

func IsBoolConst(e expr.Expression) bool { return IsTrue(e) || IsFalse(e) }

func fromBool(v bool) expr.Expression {
	if v {
		return True()
	}
	return False()
}

// negate returns Not(e), collapsing a double negation (Not(Not(x)) ->
// x) since that reduction is always sound regardless of x's type.
func negate(e expr.Expression) expr.Expression {
	if fn, ok := e.(*expr.FunctionExpr); ok && fn.Name.String() == "Not" && len(fn.Args) == 1 {
		return fn.Args[0]
	}
	return expr.NewFunction(notSym, e)
}

// isNegationPair reports whether a and b are structurally x and
// Not(x) in either order — the contradiction/tautology test of spec
// 4.6.6.
func isNegationPair(a, b expr.Expression) bool {
	if fn, ok := a.(*expr.FunctionExpr); ok && fn.Name.String() == "Not" && len(fn.Args) == 1 {
		if expr.IsSame(fn.Args[0], b) {
			return true
		}
	}
	if fn, ok := b.(*expr.FunctionExpr); ok && fn.Name.String() == "Not" && len(fn.Args) == 1 {
		if expr.IsSame(fn.Args[0], a) {
			return true
		}
	}
	return false
}

// Variables walks e skipping True/False and returns the sorted,
// distinct symbol names referenced — spec 4.6.6's variable extraction,
// used by truth-table enumeration and Quine-McCluskey.
func Variables(e expr.Expression) []string {
	set := map[string]bool{}
	var walk func(expr.Expression)
	walk = func(n expr.Expression) {
		switch x := n.(type) {
		case *expr.SymbolExpr:
			if x.Name == trueSym || x.Name == falseSym {
				return
			}
			set[x.Name.String()] = true
		case *expr.FunctionExpr:
			for _, c := range x.Args {
				walk(c)
			}
		}
	}
	walk(e)
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// references reports whether e mentions the symbol named name.
func references(e expr.Expression, name string) bool {
	switch x := e.(type) {
	case *expr.SymbolExpr:
		return x.Name.String() == name
	case *expr.FunctionExpr:
		for _, c := range x.Args {
			if references(c, name) {
				return true
			}
		}
	}
	return false
}

func sameArgs(a, b []expr.Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !expr.IsSame(a[i], b[i]) {
			return false
		}
	}
	return true
}
