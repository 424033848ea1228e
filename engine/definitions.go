package engine

import (
	"github.com/casengine/core/domain"
	"github.com/casengine/core/expr"
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/scope"
	"github.com/casengine/core/symbol"
)

// HoldUntil is spec 3's `holdUntil` enum controlling when a Value
// Definition's bound expression is substituted in for its symbol:
// never substituted, substituted once the simplifier reaches it,
// substituted only by full evaluation, or substituted only under
// numeric approximation (`N`).
type HoldUntil int

const (
	HoldNever HoldUntil = iota
	HoldUntilSimplify
	HoldUntilEvaluate
	HoldUntilN
)

// ValueDef is spec 3/6's Value Definition record, the argument to
// DefineSymbol.
type ValueDef struct {
	Value     expr.Expression
	Type      domain.Domain
	Constant  bool
	HoldUntil HoldUntil
}

// OperatorDef is spec 3/6's Operator Definition record, the argument
// to DefineFunction. Signature is a domain.FunctionOfDomain describing
// parameter/result types (spec 4.2); Attributes carries the
// associative/commutative/idempotent/involution/hold booleans as
// scope.Attribute values (spec 4.5); Complexity is accepted but not
// stored by DefineFunction, and commutative operand ordering
// (expr.Compare) does not consult it; Rule, if set, is a rewrite rule
// registered against this head in addition to any default rule
// family already covering it.
type OperatorDef struct {
	Signature  domain.FunctionOfDomain
	Attributes []scope.Attribute
	Complexity int
	Rule       *pattern.Rule
}

// isInferred reports whether name's value-definition was installed by
// auto-binding (spec 4.4) rather than an explicit DefineSymbol call,
// since scope.ValueDefinition itself carries no such flag (package
// scope is deliberately spec-agnostic). Only an inferred definition
// may be silently updated by a later DefineSymbol of the same name;
// anything else raises duplicate-declaration (spec 6).
func (e *ComputeEngine) isInferred(name string) bool {
	return e.inferred[name]
}

// DefineSymbol registers a value definition for name (spec 6). If name
// is unbound, or bound only by auto-binding inference, the definition
// is installed and the boxed symbol returned. If name already carries
// an explicit definition, a duplicate-declaration Error is returned
// instead and the existing definition is left untouched.
func (e *ComputeEngine) DefineSymbol(name string, def ValueDef) expr.Expression {
	mustEngine(e)
	if !symbol.Valid(name) {
		return newDomainError(ErrInvalidSymbol, "invalid identifier: "+name, expr.NewString(name))
	}
	if _, ok := e.current.GetValue(name); ok && !e.isInferred(name) {
		return duplicateDeclarationError(name)
	}
	typ := def.Type
	if typ == nil {
		typ = domain.Lit(domain.Anything)
	}
	e.current.SetValue(name, &scope.ValueDefinition{Value: def.Value, Domain: typ})
	if e.inferred == nil {
		e.inferred = make(map[string]bool)
	}
	delete(e.inferred, name)
	sym := expr.NewSymbol(name)
	sym.SetDomain(typ)
	return sym
}

// DefineFunction registers an operator definition for name (spec 6).
// Duplicate-declaration handling mirrors DefineSymbol: redefining a
// head that already has an OperatorDefinition raises duplicate-
// declaration, since operator definitions are never auto-bound by
// Box (only Symbol nodes are).
func (e *ComputeEngine) DefineFunction(name string, def OperatorDef) expr.Expression {
	mustEngine(e)
	if !symbol.Valid(name) {
		return newDomainError(ErrInvalidSymbol, "invalid identifier: "+name, expr.NewString(name))
	}
	if _, ok := e.current.GetOperator(name); ok {
		return duplicateDeclarationError(name)
	}
	e.current.DefineOperator(name, &scope.OperatorDefinition{
		Attributes: def.Attributes,
		Result:     def.Signature.Result,
		Params:     def.Signature.Params,
	})
	if def.Rule != nil {
		e.rules.addUserRule(name, *def.Rule)
	}
	return expr.NewSymbolFrom(symbol.New(name))
}

// Forget removes every assumption recorded about sym, delegating to
// the assumption store (spec 4.7).
func (e *ComputeEngine) Forget(sym expr.Expression) {
	mustEngine(e)
	s, ok := sym.(*expr.SymbolExpr)
	if !ok {
		return
	}
	e.assumes.Forget(s.Name)
}

// Assume records a canonical boolean proposition about a symbol, after
// running it through Canonicalize so the assumption store only ever
// sees canonical propositions (spec 4.7: "assume(prop) canonicalizes
// and adds").
func (e *ComputeEngine) Assume(prop expr.Expression) expr.Expression {
	mustEngine(e)
	canon := e.simplify.Canonicalize(prop)
	sym, ok := freeSymbolOf(canon)
	if !ok {
		return newDomainError(ErrDomainError, "assumption must mention exactly one free symbol", canon)
	}
	e.assumes.Assume(sym, canon)
	return canon
}

// Ask answers a proposition query against the assumption store (spec
// 4.7), returning the three-valued result package expr.IsEqual and the
// equality handlers already consume through the Asker interface.
func (e *ComputeEngine) Ask(prop expr.Expression) expr.Trivalent {
	mustEngine(e)
	return e.assumes.Ask(e.simplify.Canonicalize(prop))
}

func freeSymbolOf(e expr.Expression) (symbol.Symbol, bool) {
	switch v := e.(type) {
	case *expr.SymbolExpr:
		return v.Name, true
	case *expr.FunctionExpr:
		for _, a := range v.Args {
			if s, ok := freeSymbolOf(a); ok {
				return s, true
			}
		}
	}
	return symbol.Symbol{}, false
}
