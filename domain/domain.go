// Package domain implements the type/domain lattice of spec section 4.2:
// a DAG of named literal domains plus constructors (FunctionOf, ListOf,
// TupleOf, DictionaryOf, Union, Intersection, OptArg, VarArg, and the
// variance wrappers), with subtype/widen/narrow operations used by
// function-signature matching and symbol-type inference.
//
// The teacher repo (client9/cardinal) has no subtyping lattice of its
// own — its "type system" is just core.Expr.Head() returning a Symbol
// used as a runtime tag (see core/atomic_types.go). This package keeps
// that idiom (a Domain is identified by name, like a Head) but adds the
// ancestor DAG and constructor algebra spec.md requires; there is no
// third-party graph/lattice library in the retrieval pack to ground this
// on, so it is built on the standard library (plain maps and slices),
// matching the teacher's habit of hand-rolling small registries
// (engine/attribute.go's SymbolTable, engine/function_registry.go).
package domain

// Literal identifies one of the named literal domains.
type Literal string

const (
	Anything        Literal = "Anything"
	NothingDomain   Literal = "Nothing"
	Integers        Literal = "Integers"
	RationalNumbers Literal = "RationalNumbers"
	AlgebraicNumbers Literal = "AlgebraicNumbers"
	RealNumbers     Literal = "RealNumbers"
	ComplexNumbers  Literal = "ComplexNumbers"
	Booleans        Literal = "Booleans"
	Strings         Literal = "Strings"
	Lists           Literal = "Lists"
	Tuples          Literal = "Tuples"
	Dictionaries    Literal = "Dictionaries"
	Functions       Literal = "Functions"
	Numbers         Literal = "Numbers"
)

// ancestors maps each literal to its immediate parent in the DAG. The
// root, Anything, has no parent. NothingDomain is the bottom: it is a
// subdomain of every literal rather than having ancestors of its own,
// handled specially in isSubLiteral below.
var ancestors = map[Literal]Literal{
	Numbers:          Anything,
	Booleans:         Anything,
	Strings:          Anything,
	Lists:            Anything,
	Tuples:           Anything,
	Dictionaries:     Anything,
	Functions:        Anything,
	ComplexNumbers:   Numbers,
	AlgebraicNumbers: ComplexNumbers,
	RealNumbers:      AlgebraicNumbers,
	RationalNumbers:  RealNumbers,
	Integers:         RationalNumbers,
}

// isSubLiteral reports whether a is an ancestor-or-self of b in the DAG.
func isSubLiteral(a, b Literal) bool {
	if a == b {
		return true
	}
	if b == NothingDomain {
		return true
	}
	if a == Anything {
		return true
	}
	for cur := b; ; {
		parent, ok := ancestors[cur]
		if !ok {
			return false
		}
		if parent == a {
			return true
		}
		cur = parent
	}
}

// Ancestors returns the chain from lit up to Anything, inclusive of lit.
func Ancestors(lit Literal) []Literal {
	chain := []Literal{lit}
	cur := lit
	for {
		parent, ok := ancestors[cur]
		if !ok {
			return chain
		}
		chain = append(chain, parent)
		cur = parent
	}
}
