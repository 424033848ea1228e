package expr

import (
	"github.com/casengine/core/domain"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

var headNumber = symbol.New("Number")

// NumberExpr boxes a numeric.Value, the unified numeric tower (spec
// 4.3). It is always atomic and always canonical: numbers carry no
// further simplification duty of their own, only promotion, which
// numeric.Value already normalizes on construction.
type NumberExpr struct {
	Val  numeric.Value
	meta *Metadata
}

// NewNumber boxes a numeric.Value as an Expression.
func NewNumber(v numeric.Value) *NumberExpr { return &NumberExpr{Val: v} }

func (n *NumberExpr) Kind() Kind           { return KindNumber }
func (n *NumberExpr) Head() symbol.Symbol  { return headNumber }
func (n *NumberExpr) IsAtom() bool         { return true }
func (n *NumberExpr) IsCanonical() bool    { return true }
func (n *NumberExpr) Metadata() *Metadata  { return n.meta }
func (n *NumberExpr) String() string       { return n.Val.String() }

func (n *NumberExpr) Domain() domain.Domain {
	switch n.Val.Kind() {
	case numeric.KindInt, numeric.KindBigInt:
		return domain.Lit(domain.Integers)
	case numeric.KindRational:
		return domain.Lit(domain.RationalNumbers)
	case numeric.KindFloat, numeric.KindBigFloat:
		return domain.Lit(domain.RealNumbers)
	case numeric.KindComplex:
		return domain.Lit(domain.ComplexNumbers)
	default:
		return domain.Lit(domain.Numbers)
	}
}

func (n *NumberExpr) isSame(o Expression) bool {
	other, ok := o.(*NumberExpr)
	if !ok {
		return false
	}
	return n.Val.Kind() == other.Val.Kind() && numeric.Eq(n.Val, other.Val)
}

// IsZero, IsNegative and IsExact are convenience predicates used
// throughout the simplifier's rule families (spec 4.6) to avoid
// repeating the numeric.Value type switch at every call site.
func (n *NumberExpr) IsZero() bool { return numeric.Eq(n.Val, numeric.NewInt(0)) }

func (n *NumberExpr) IsExact() bool {
	switch n.Val.Kind() {
	case numeric.KindInt, numeric.KindBigInt, numeric.KindRational:
		return true
	default:
		return false
	}
}
