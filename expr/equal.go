package expr

import (
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

const equalityTolerance = 1e-12

// eqWithTolerance implements spec 4.1's tolerance-based numeric
// equality: exact tiers (Int/BigInt/Rational) compare exactly via
// numeric.Eq, inexact tiers (Float/BigFloat/Complex) compare their
// difference against equalityTolerance so that accumulated
// floating-point error doesn't make two mathematically-equal reals
// compare unequal.
func eqWithTolerance(a, b numeric.Value) bool {
	if a.IsRational() && b.IsRational() {
		return numeric.Eq(a, b)
	}
	diff := numeric.Sub(a, b)
	return diff.IsZeroWithTolerance(equalityTolerance)
}

// Trivalent is the three-valued logic spec 3.4 requires for
// mathematical equality: two expressions may provably be equal,
// provably be different, or neither without further assumptions.
type Trivalent int

const (
	False Trivalent = iota
	True
	Undecided
)

func (t Trivalent) String() string {
	switch t {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "Undecided"
	}
}

func FromBool(b bool) Trivalent {
	if b {
		return True
	}
	return False
}

// EqualityHandler decides whether two Function nodes under the same
// head are mathematically equal beyond plain structural comparison
// (e.g. Plus(x, y) vs Plus(y, x) after assumptions narrow a domain).
// Handlers are registered per-head by package engine/rules so that
// this package never needs to import operator-specific logic.
type EqualityHandler func(a, b *FunctionExpr, ask Asker) Trivalent

// Asker is the minimal surface this package needs from the
// assumption store (package assume) to answer equality questions
// without importing it directly, avoiding an import cycle.
type Asker interface {
	Ask(proposition Expression) Trivalent
}

var equalityHandlers = map[symbol.Symbol]EqualityHandler{}

// RegisterEqualityHandler installs a per-head equality handler. Called
// from package engine's setup, once per operator that needs one.
func RegisterEqualityHandler(head symbol.Symbol, h EqualityHandler) {
	equalityHandlers[head] = h
}

type nullAsker struct{}

func (nullAsker) Ask(Expression) Trivalent { return Undecided }

// IsEqual implements spec 3.4's mathematical equality: structural
// equality first (always decides True), then numeric comparison for
// two Number nodes within tolerance, then a registered per-head
// handler if one exists, otherwise Undecided. ask may be nil, in which
// case handlers see a no-op Asker that always answers Undecided.
func IsEqual(a, b Expression, ask Asker) Trivalent {
	if ask == nil {
		ask = nullAsker{}
	}
	if IsSame(a, b) {
		return True
	}
	an, aIsNum := a.(*NumberExpr)
	bn, bIsNum := b.(*NumberExpr)
	if aIsNum && bIsNum {
		return FromBool(numericApproxEq(an, bn))
	}
	af, aIsFn := a.(*FunctionExpr)
	bf, bIsFn := b.(*FunctionExpr)
	if aIsFn && bIsFn && af.Name == bf.Name {
		if h, ok := equalityHandlers[af.Name]; ok {
			return h(af, bf, ask)
		}
	}
	return Undecided
}

func numericApproxEq(a, b *NumberExpr) bool {
	return eqWithTolerance(a.Val, b.Val)
}
