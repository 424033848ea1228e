package engine

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/symbol"
)

var equalityHandlersOnce = false

// registerEqualityHandlers installs the per-head mathematical-equality
// handlers spec 4.1's isEqual names ("consult operator-specific eq
// handlers ... symmetric: try both sides"), for the commutative
// operators where structural equality is too strict: Plus(a,b) and
// Plus(b,a) are isEqual but not isSame unless the operand order also
// happens to match. Registered once per process via package expr's
// global handler map, the same place the teacher would register a
// builtin (engine/attribute.go's SymbolTable is likewise process-wide,
// not per-context).
func registerEqualityHandlers() {
	if equalityHandlersOnce {
		return
	}
	equalityHandlersOnce = true
	expr.RegisterEqualityHandler(symbol.New("Plus"), commutativeEqual)
	expr.RegisterEqualityHandler(symbol.New("Times"), commutativeEqual)
	expr.RegisterEqualityHandler(symbol.New("And"), commutativeEqual)
	expr.RegisterEqualityHandler(symbol.New("Or"), commutativeEqual)
}

// commutativeEqual decides Plus/Times/And/Or equality by multiset
// comparison of operands under IsEqual: greedily pair each of a's
// operands with an unused, equal operand of b. A pairing left
// Undecided rather than resolved True or False makes the whole
// comparison Undecided, since neither a confirmed mismatch nor a
// confirmed match can be claimed.
func commutativeEqual(a, b *expr.FunctionExpr, ask expr.Asker) expr.Trivalent {
	if len(a.Args) != len(b.Args) {
		return expr.False
	}
	used := make([]bool, len(b.Args))
	sawUndecided := false
	for _, av := range a.Args {
		matched := false
		for i, bv := range b.Args {
			if used[i] {
				continue
			}
			switch expr.IsEqual(av, bv, ask) {
			case expr.True:
				used[i] = true
				matched = true
			case expr.Undecided:
				sawUndecided = true
			}
			if matched {
				break
			}
		}
		if !matched {
			if sawUndecided {
				return expr.Undecided
			}
			return expr.False
		}
	}
	return expr.True
}
