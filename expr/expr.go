// Package expr implements the boxed-expression data model: the tagged
// tree of Number, Symbol, String, Function, Tensor and Dictionary nodes
// that every other package in this module operates on, plus the
// structural operations that don't need a live engine (equality,
// hashing, substitution, canonical ordering).
//
// This plays the role core/atom.go, core/int64.go, core/float64.go,
// core/function.go and core/list.go play in the teacher repo: a closed
// set of Expr-implementing variants dispatched on by a type switch
// rather than by a parsed-AST visitor. Canonicalization duties that
// need operator attributes (Flat, Orderless, OneIdentity) live in
// package simplify, which reads them from package scope's operator
// definitions; this package only knows about shapes, not about
// registered behavior.
package expr

import (
	"fmt"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/symbol"
)

// Kind tags which variant an Expression is.
type Kind int

const (
	KindNumber Kind = iota
	KindSymbol
	KindString
	KindFunction
	KindTensor
	KindDictionary
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindFunction:
		return "Function"
	case KindTensor:
		return "Tensor"
	case KindDictionary:
		return "Dictionary"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Metadata holds optional human-facing annotations a boxed expression
// may carry (spec 3.1): a human-readable description, a wikidata QID
// and a reference URL. Most expressions carry no metadata; it is
// stored out of line so the common case pays nothing for it.
type Metadata struct {
	Description string
	Wikidata    string
	URL         string
}

// Expression is the common interface every boxed node implements.
// Head returns the node's operator symbol the way core.Expr.Head does
// in the teacher repo, except here it returns a symbol.Symbol rather
// than a bare string so callers can look it up in a definition registry
// without re-interning.
type Expression interface {
	fmt.Stringer

	Kind() Kind
	Head() symbol.Symbol
	IsAtom() bool
	IsCanonical() bool
	Domain() domain.Domain
	Metadata() *Metadata

	// isSame is the structural-equality primitive (spec 3.4): same
	// shape, same children, same numeric representation. It never
	// consults assumptions or operator-specific equality handlers.
	isSame(Expression) bool
}

// withCanonical is implemented by variants that cache whether they are
// already in canonical form, so re-canonicalizing a fixed point is O(1).
type withCanonical interface {
	setCanonical(bool)
}

// IsSame reports structural equality: the two expressions have
// identical shape and content, without applying any mathematical
// identity. Contrast with IsEqual in equal.go, which folds in
// assumptions and per-operator equality handlers.
func IsSame(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.isSame(b)
}

// Children returns the direct subexpressions of an Expression: a
// Function's arguments (head excluded, per spec 3.2's definition of
// Length), a Tensor's elements, a Dictionary's values in insertion
// order. Atoms return nil.
func Children(e Expression) []Expression {
	switch v := e.(type) {
	case *FunctionExpr:
		return v.Args
	case *TensorExpr:
		return v.flatten()
	case *DictionaryExpr:
		out := make([]Expression, 0, len(v.order))
		for _, k := range v.order {
			out = append(out, v.values[hashKeyOf(k)])
		}
		return out
	default:
		return nil
	}
}

// Length mirrors spec 3.2: number of direct arguments for Function,
// number of elements for Tensor/Dictionary, 0 for every atom.
func Length(e Expression) int {
	return len(Children(e))
}
