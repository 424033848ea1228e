package expr

import (
	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

// SymbolExpr boxes an interned symbol.Symbol: a variable, constant or
// operator name. Symbols are atomic; whether one stands for a number,
// a function or an unbound variable is a property of the definition
// registry (package engine), not of the boxed node itself.
type SymbolExpr struct {
	Name symbol.Symbol
	dom  domain.Domain // inferred type, Anything if never narrowed
	meta *Metadata
}

func NewSymbol(name string) *SymbolExpr {
	return &SymbolExpr{Name: symbol.New(name), dom: domain.Lit(domain.Anything)}
}

func NewSymbolFrom(s symbol.Symbol) *SymbolExpr {
	return &SymbolExpr{Name: s, dom: domain.Lit(domain.Anything)}
}

func (s *SymbolExpr) Kind() Kind          { return KindSymbol }
func (s *SymbolExpr) Head() symbol.Symbol { return s.Name }
func (s *SymbolExpr) IsAtom() bool        { return true }
func (s *SymbolExpr) IsCanonical() bool   { return true }
func (s *SymbolExpr) Metadata() *Metadata { return s.meta }
func (s *SymbolExpr) String() string      { return s.Name.String() }
func (s *SymbolExpr) Domain() domain.Domain {
	if s.dom == nil {
		return domain.Lit(domain.Anything)
	}
	return s.dom
}

// SetDomain narrows/widens the symbol's inferred type (spec 4.4); the
// registry calls this as assumptions accumulate.
func (s *SymbolExpr) SetDomain(d domain.Domain) { s.dom = d }

func (s *SymbolExpr) IsWildcard() bool { return s.Name.IsWildcard() }

func (s *SymbolExpr) isSame(o Expression) bool {
	other, ok := o.(*SymbolExpr)
	return ok && s.Name == other.Name
}
