package expr

import (
	"strconv"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

var headString = symbol.New("String")

// StringExpr boxes a literal string value (spec 3.1). Strings are
// atomic and opaque to the simplifier: no rule family rewrites them.
type StringExpr struct {
	Val  string
	meta *Metadata
}

func NewString(s string) *StringExpr { return &StringExpr{Val: s} }

func (s *StringExpr) Kind() Kind            { return KindString }
func (s *StringExpr) Head() symbol.Symbol   { return headString }
func (s *StringExpr) IsAtom() bool          { return true }
func (s *StringExpr) IsCanonical() bool     { return true }
func (s *StringExpr) Metadata() *Metadata   { return s.meta }
func (s *StringExpr) String() string        { return strconv.Quote(s.Val) }
func (s *StringExpr) Domain() domain.Domain { return domain.Lit(domain.Strings) }

func (s *StringExpr) isSame(o Expression) bool {
	other, ok := o.(*StringExpr)
	return ok && s.Val == other.Val
}
