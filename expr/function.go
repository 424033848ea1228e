package expr

import (
	"strings"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

// FunctionExpr is the workhorse variant: a head symbol applied to a
// sequence of argument expressions (spec 3.1). Canonicalization
// (flattening Flat heads, sorting Orderless heads, folding
// OneIdentity) is attribute-driven and lives in package simplify,
// which looks up the attributes a given head carries in its scope;
// this type just caches the
// already-canonical flag so repeated passes are cheap once a fixed
// point is reached.
type FunctionExpr struct {
	Name      symbol.Symbol
	Args      []Expression
	canonical bool
	dom       domain.Domain
	meta      *Metadata
	hash      uint64
	hashSet   bool
}

// NewFunction builds an un-canonicalized function node. Callers that
// already know the node is in canonical form (e.g. numeric folding
// results) should use NewCanonicalFunction instead.
func NewFunction(head symbol.Symbol, args ...Expression) *FunctionExpr {
	return &FunctionExpr{Name: head, Args: args}
}

func NewCanonicalFunction(head symbol.Symbol, args ...Expression) *FunctionExpr {
	return &FunctionExpr{Name: head, Args: args, canonical: true}
}

func (f *FunctionExpr) Kind() Kind          { return KindFunction }
func (f *FunctionExpr) Head() symbol.Symbol { return f.Name }
func (f *FunctionExpr) IsAtom() bool        { return false }
func (f *FunctionExpr) IsCanonical() bool   { return f.canonical }
func (f *FunctionExpr) Metadata() *Metadata { return f.meta }
func (f *FunctionExpr) setCanonical(v bool) { f.canonical = v; f.hashSet = false }

func (f *FunctionExpr) Domain() domain.Domain {
	if f.dom != nil {
		return f.dom
	}
	return domain.Lit(domain.Anything)
}

// SetDomain records an inferred result domain, typically set by the
// registry when the head's operator definition declares one.
func (f *FunctionExpr) SetDomain(d domain.Domain) { f.dom = d }

func (f *FunctionExpr) String() string {
	var b strings.Builder
	b.WriteString(f.Name.String())
	b.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (f *FunctionExpr) isSame(o Expression) bool {
	other, ok := o.(*FunctionExpr)
	if !ok || f.Name != other.Name || len(f.Args) != len(other.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].isSame(other.Args[i]) {
			return false
		}
	}
	return true
}

// WithArgs returns a shallow copy of f with replaced arguments, not
// canonical (callers must re-canonicalize through the engine).
func (f *FunctionExpr) WithArgs(args []Expression) *FunctionExpr {
	return &FunctionExpr{Name: f.Name, Args: args}
}
