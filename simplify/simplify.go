// Package simplify implements the Simplifier Orchestrator of spec
// section 5: bottom-up canonicalization (attribute-driven flatten/
// sort/one-identity folding) followed by cost-guarded fixpoint rule
// application, recursion-guarded by an evaluation stack.
//
// Grounded on the teacher's engine/evaluator.go: evaluateToFixedPoint
// (iterate-until-no-change with a hard iteration cap),
// applyAttributeTransformations/applyFlat/applyOrderless (attribute
// folding applied to a single node before its rules run). The
// teacher's evaluator interleaves evaluation and attribute folding in
// one pass over core.List; this package splits that into an explicit
// Canonicalize step (attributes only) and a Simplify step (rule
// families), matching spec 5's own two-phase description, but keeps
// the teacher's fixed-point-with-cap loop shape for Simplify.
package simplify

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/scope"
)

// RuleProvider supplies the rewrite rules registered for a given head
// (spec 5.3's rule families: Power, Abs, Divide, Infinity, Factorial/
// Gamma/Binomial, ...). Implemented by package engine, which owns the
// concrete rule-family wiring; kept as an interface here so this
// package doesn't import engine and create a cycle.
type RuleProvider interface {
	RulesFor(head string) []Rule
}

// Rule is re-exported here as an alias target so RuleProvider doesn't
// force every caller to import package pattern directly; see
// pattern.Rule for the concrete shape (LHS pattern + RHS template).
type Rule = ruleShape

// ruleShape mirrors pattern.Rule's Apply method without importing
// package pattern, so simplify stays agnostic to how a rule is
// represented beyond "it can attempt to rewrite one node".
type ruleShape interface {
	Apply(e expr.Expression) (expr.Expression, bool)
}

// CostFunc scores an expression for the cost-guarded descent of spec
// 5.3: a rewrite is only accepted if it does not increase cost (ties
// broken in favor of applying the rule, since most rules are meant to
// fire even when tree size is unchanged, e.g. Plus(x,x) -> 2*x).
type CostFunc func(expr.Expression) int

// DefaultCost counts nodes in the expression tree: spec 5.3's simplest
// admissible cost function, cheap enough to recompute on every rule
// attempt.
func DefaultCost(e expr.Expression) int {
	n := 1
	for _, c := range expr.Children(e) {
		n += DefaultCost(c)
	}
	return n
}

const defaultMaxIterations = 256

// Step describes one accepted rewrite, passed to an optional trace
// hook so an embedder can observe the simplifier's progress without
// this package depending on a logging library (spec 5's evaluation
// stack/step-list is the only visibility surface a pure computation
// library should expose).
type Step struct {
	Head   string
	Before expr.Expression
	After  expr.Expression
}

// Simplifier ties together a Scope (for operator attributes and the
// recursion guard) and a RuleProvider to run spec 5's full
// canonicalize-then-simplify pipeline.
type Simplifier struct {
	Scope         *scope.Scope
	Rules         RuleProvider
	Cost          CostFunc
	MaxIterations int

	// OnStep, when non-nil, is invoked after each accepted rule
	// application and after each outer fixpoint iteration (an
	// iteration-boundary Step has an empty Head).
	OnStep func(Step)
}

func New(sc *scope.Scope, rules RuleProvider) *Simplifier {
	return &Simplifier{Scope: sc, Rules: rules, Cost: DefaultCost, MaxIterations: defaultMaxIterations}
}

// Canonicalize applies attribute-driven structural transforms bottom
// up: Flat flattens nested same-head calls, Orderless sorts arguments
// canonically, OneIdentity folds a single-argument wrapper away. No
// rule family runs here; this mirrors applyAttributeTransformations,
// not evaluateToFixedPoint.
func (s *Simplifier) Canonicalize(e expr.Expression) expr.Expression {
	return expr.Map(e, func(node expr.Expression) (expr.Expression, bool) {
		fn, ok := node.(*expr.FunctionExpr)
		if !ok {
			return nil, false
		}
		if fn.IsCanonical() {
			return nil, false
		}
		head := fn.Name.String()
		args := fn.Args
		if s.Scope.HasAttribute(fn.Name, scope.Flat) {
			args = flatten(head, args)
		}
		if s.Scope.HasAttribute(fn.Name, scope.Orderless) {
			args = append([]expr.Expression(nil), args...)
			expr.SortOrderless(args)
		}
		if s.Scope.HasAttribute(fn.Name, scope.OneIdentity) && len(args) == 1 {
			return args[0], true
		}
		out := expr.NewCanonicalFunction(fn.Name, args...)
		return out, true
	})
}

func flatten(head string, args []expr.Expression) []expr.Expression {
	out := make([]expr.Expression, 0, len(args))
	for _, a := range args {
		if f, ok := a.(*expr.FunctionExpr); ok && f.Name.String() == head {
			out = append(out, f.Args...)
			continue
		}
		out = append(out, a)
	}
	return out
}

// Simplify runs canonicalization and then iterates rule application to
// a fixed point, guarded both by MaxIterations (spec 5.4's iteration
// cap) and by the Scope's EvaluationStack (its own recursion-depth
// cap, pushed/popped around each Function node visited).
func (s *Simplifier) Simplify(e expr.Expression) expr.Expression {
	current := s.Canonicalize(e)
	if errExpr, ok := expr.IsError(current); ok {
		return errExpr
	}
	for i := 0; i < s.MaxIterations; i++ {
		next, err := s.step(current)
		if err != nil {
			return expr.NewErrorExpr("RecursionLimit", err.Error(), current)
		}
		next = s.Canonicalize(next)
		if s.OnStep != nil {
			s.OnStep(Step{Before: current, After: next})
		}
		if expr.IsSame(next, current) {
			return next
		}
		if s.Cost(next) > s.Cost(current) {
			return current
		}
		current = next
	}
	return current
}

// step applies one bottom-up rewrite pass: simplify every child first,
// then try the current head's rule family against the rebuilt node.
func (s *Simplifier) step(e expr.Expression) (expr.Expression, error) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok {
		return e, nil
	}
	if err := s.Scope.Stack().Push(fn.Name.String(), e); err != nil {
		return nil, err
	}
	defer s.Scope.Stack().Pop()

	newArgs := make([]expr.Expression, len(fn.Args))
	changed := false
	for i, a := range fn.Args {
		na := s.Simplify(a)
		newArgs[i] = na
		if na != a {
			changed = true
		}
	}
	node := expr.Expression(fn)
	if changed {
		node = fn.WithArgs(newArgs)
		node = s.Canonicalize(node)
	}
	if errExpr := expr.Contagion(newArgs...); errExpr != nil {
		return errExpr, nil
	}
	if rewritten, name, ok := s.applyRules(fn.Name.String(), node); ok {
		if s.OnStep != nil {
			s.OnStep(Step{Head: name, Before: node, After: rewritten})
		}
		return rewritten, nil
	}
	return node, nil
}

func (s *Simplifier) applyRules(head string, e expr.Expression) (expr.Expression, string, bool) {
	if s.Rules == nil {
		return nil, "", false
	}
	for _, r := range s.Rules.RulesFor(head) {
		if out, ok := r.Apply(e); ok {
			return out, head, true
		}
	}
	return nil, "", false
}
