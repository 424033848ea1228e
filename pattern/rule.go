package pattern

import "github.com/casengine/core/expr"

// Template produces a replacement expression from a successful match's
// bindings. A Rule's right-hand side is a Template rather than a bare
// expr.Expression so that RuleDelayed's "held unevaluated until
// applied" semantics (core/rule.go's RuleDelayedExpr) fall out
// naturally: the closure simply isn't invoked until Apply succeeds.
type Template func(Bindings) expr.Expression

// Rule pairs a pattern with a replacement template (spec 5.2). Unlike
// the teacher's RuleDelayedExpr, which always holds its RHS, a Rule
// here distinguishes eager (Rule) from delayed (RuleDelayed)
// evaluation by whether the caller's Template closure recomputes
// something each time or returns a precomputed value.
type Rule struct {
	Name     string
	LHS      Pattern
	RHS      Template
	Constraint TypeCheck
}

// NewRule builds an eager rule whose replacement is fixed once bound.
func NewRule(name string, lhs Pattern, rhs Template) Rule {
	return Rule{Name: name, LHS: lhs, RHS: rhs}
}

// Apply tries to match r.LHS against e; on success it returns the
// replacement produced by r.RHS and true. A Template may itself decide
// the rule doesn't actually apply (e.g. a shape matched structurally
// but a numeric side-condition failed) by returning a nil Expression;
// Apply treats that the same as a pattern-match failure.
func (r Rule) Apply(e expr.Expression) (expr.Expression, bool) {
	b, ok := Match(r.LHS, e, r.Constraint)
	if !ok {
		return nil, false
	}
	out := r.RHS(b)
	if out == nil {
		return nil, false
	}
	return out, true
}

// FirstMatch tries each rule in order and returns the first that
// applies, along with its name for tracing (spec 5.3's rule selection
// is cost-guided at the simplifier level; within one rule family,
// rules are tried textually in the order they were authored, mirroring
// the teacher's function_registry.go pattern-list dispatch).
func FirstMatch(rules []Rule, e expr.Expression) (expr.Expression, string, bool) {
	for _, r := range rules {
		if out, ok := r.Apply(e); ok {
			return out, r.Name, true
		}
	}
	return nil, "", false
}
