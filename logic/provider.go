package logic

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/simplify"
)

// Each ruleXxx type implements simplify.Rule's Apply-only interface
// directly rather than going through package pattern, since the
// connective heads are n-ary and the matching here is a single
// head-name check plus a reduce pass, not a positional pattern shape.

type andRule struct{}

func (andRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "And" {
		return nil, false
	}
	return reduceAnd(fn.Args)
}

type orRule struct{}

func (orRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Or" {
		return nil, false
	}
	return reduceOr(fn.Args)
}

type notRule struct{}

func (notRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Not" || len(fn.Args) != 1 {
		return nil, false
	}
	return reduceNot(fn.Args[0])
}

type xorRule struct{}

func (xorRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Xor" {
		return nil, false
	}
	return reduceXor(fn.Args)
}

type impliesRule struct{}

func (impliesRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Implies" || len(fn.Args) != 2 {
		return nil, false
	}
	return reduceImplies(fn.Args[0], fn.Args[1]), true
}

type equivalentRule struct{}

func (equivalentRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Equivalent" || len(fn.Args) != 2 {
		return nil, false
	}
	return reduceEquivalent(fn.Args[0], fn.Args[1]), true
}

type nandRule struct{}

func (nandRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Nand" {
		return nil, false
	}
	return reduceNand(fn.Args), true
}

type norRule struct{}

func (norRule) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Nor" {
		return nil, false
	}
	return reduceNor(fn.Args), true
}

// Provider implements simplify.RuleProvider for the boolean connective
// heads, wired the same way package rules wires Power/Abs/Divide: one
// entry per head, dispatched by the orchestrator's per-node head
// lookup (spec 4.6.8). And/Or additionally need the Flat and Orderless
// operator attributes registered against their scope.OperatorDefinition
// (done by the top-level engine's default scope setup) so nested
// And(And(...)) calls flatten and arguments canonicalize before these
// rules see them.
type Provider struct {
	byHead map[string][]simplify.Rule
}

func NewProvider() *Provider {
	p := &Provider{byHead: make(map[string][]simplify.Rule)}
	p.byHead["And"] = []simplify.Rule{andRule{}}
	p.byHead["Or"] = []simplify.Rule{orRule{}}
	p.byHead["Not"] = []simplify.Rule{notRule{}}
	p.byHead["Xor"] = []simplify.Rule{xorRule{}}
	p.byHead["Implies"] = []simplify.Rule{impliesRule{}}
	p.byHead["Equivalent"] = []simplify.Rule{equivalentRule{}}
	p.byHead["Nand"] = []simplify.Rule{nandRule{}}
	p.byHead["Nor"] = []simplify.Rule{norRule{}}
	return p
}

func (p *Provider) RulesFor(head string) []simplify.Rule {
	return p.byHead[head]
}
