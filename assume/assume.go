// Package assume implements the Assumptions/Ask store of spec section
// 6: a set of canonical boolean propositions that Ask queries can be
// answered against, and sign derivation for symbols with assumed
// numeric bounds.
//
// The teacher repo has no assumption system (client9/cardinal
// evaluates expressions outright rather than reasoning about
// unassigned symbols), so this package has no direct file to adapt.
// It is grounded on the teacher's habit of a small hand-rolled
// registry over a plain map (engine/attribute.go's SymbolTable,
// engine/function_registry.go) rather than a rules-engine/SAT library:
// no such library appears anywhere in the retrieval pack, and the
// proposition set per symbol is small enough that linear scan over a
// slice is the idiomatic choice here too.
package assume

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

// Store holds assumed propositions, keyed by the single free symbol
// they constrain (spec 6 scopes assumptions to one variable at a time:
// "Assume(x > 0)", not arbitrary multi-variable constraints).
type Store struct {
	bySymbol map[symbol.Symbol][]expr.Expression
}

func NewStore() *Store {
	return &Store{bySymbol: make(map[symbol.Symbol][]expr.Expression)}
}

// Assume records a canonical boolean proposition about sym (e.g.
// Greater(x, 0)). Propositions are expected to already be canonical
// Function nodes with sym as one argument; this package does not
// canonicalize them itself (package engine does that before calling
// in).
func (s *Store) Assume(sym symbol.Symbol, prop expr.Expression) {
	s.bySymbol[sym] = append(s.bySymbol[sym], prop)
}

// Forget removes every assumption recorded about sym.
func (s *Store) Forget(sym symbol.Symbol) {
	delete(s.bySymbol, sym)
}

// Propositions returns the assumptions recorded about sym.
func (s *Store) Propositions(sym symbol.Symbol) []expr.Expression {
	return s.bySymbol[sym]
}

// Ask answers a proposition query using the stored facts: True if an
// identical proposition (or one of its algebraic consequences tested
// by consequence below) was assumed, False if its negation was
// assumed, Undecided otherwise. This satisfies package expr's Asker
// interface so equality handlers can consult it without expr
// importing this package back.
func (s *Store) Ask(prop expr.Expression) expr.Trivalent {
	sym, ok := freeSymbol(prop)
	if !ok {
		return expr.Undecided
	}
	for _, p := range s.bySymbol[sym] {
		if expr.IsSame(p, prop) {
			return expr.True
		}
		if consequence(p, prop) {
			return expr.True
		}
		if contradicts(p, prop) {
			return expr.False
		}
	}
	return expr.Undecided
}

func freeSymbol(e expr.Expression) (symbol.Symbol, bool) {
	if s, ok := e.(*expr.SymbolExpr); ok {
		return s.Name, true
	}
	if f, ok := e.(*expr.FunctionExpr); ok {
		for _, a := range f.Args {
			if sym, ok := freeSymbol(a); ok {
				return sym, true
			}
		}
	}
	return symbol.Symbol{}, false
}

// relation extracts (head, symbol, numeric bound) for a binary
// comparison node Greater(a,b)/Less(a,b)/GreaterEqual/LessEqual/Equal
// whose first argument is a Symbol and second a Number.
func relation(e expr.Expression) (head string, sym symbol.Symbol, bound *expr.NumberExpr, ok bool) {
	f, isFn := e.(*expr.FunctionExpr)
	if !isFn || len(f.Args) != 2 {
		return "", symbol.Symbol{}, nil, false
	}
	if s, isSym := f.Args[0].(*expr.SymbolExpr); isSym {
		if n, isNum := f.Args[1].(*expr.NumberExpr); isNum {
			return f.Name.String(), s.Name, n, true
		}
	}
	return "", symbol.Symbol{}, nil, false
}

// consequence reports whether assumed implies query for the limited
// set of single-variable numeric comparisons spec 6 requires (e.g.
// Greater(x, 0) implies GreaterEqual(x, 0) and Unequal(x, 0)).
func consequence(assumed, query expr.Expression) bool {
	ah, asym, abound, aok := relation(assumed)
	qh, qsym, qbound, qok := relation(query)
	if !aok || !qok || asym != qsym {
		return false
	}
	if !abound.IsExact() || !qbound.IsExact() {
		return false
	}
	if ah == "Greater" && qh == "GreaterEqual" {
		return numLessEq(qbound, abound)
	}
	if ah == "Less" && qh == "LessEqual" {
		return numLessEq(abound, qbound)
	}
	if ah == "Greater" && qh == "Unequal" {
		return numLessEq(qbound, abound)
	}
	if ah == "Less" && qh == "Unequal" {
		return numLessEq(abound, qbound)
	}
	return false
}

// contradicts reports whether assumed rules out query for the same
// comparison family (e.g. Greater(x, 0) contradicts LessEqual(x, -1)).
func contradicts(assumed, query expr.Expression) bool {
	ah, asym, abound, aok := relation(assumed)
	qh, qsym, qbound, qok := relation(query)
	if !aok || !qok || asym != qsym {
		return false
	}
	if ah == "Greater" && qh == "LessEqual" {
		return numLessEq(qbound, abound)
	}
	if ah == "Less" && qh == "GreaterEqual" {
		return numLessEq(abound, qbound)
	}
	return false
}

// numLessEq reports a <= b for two exact Number nodes.
func numLessEq(a, b *expr.NumberExpr) bool {
	return numeric.Less(a.Val, b.Val) || numeric.Eq(a.Val, b.Val)
}
