// Package pattern implements spec section 5's wildcard pattern
// matching and rule application: Blank/BlankSequence/BlankNullSequence
// wildcards, named Pattern bindings, and Rule/RuleDelayed rewriting.
//
// Grounded on the teacher's core/patterns.go (pattern shape
// recognition), core/match.go (binding-capturing match), and
// core/rule.go (RuleDelayedExpr). Unlike the teacher, which recognizes
// patterns written as ordinary boxed expressions parsed from text
// (`Blank()`, `Pattern(x, Blank())`), this package builds patterns
// directly as Go values (B(), BSeq(), BNullSeq(), Bind(name, p)) since
// this module has no text parser (spec's Non-goals) to produce them
// from source syntax.
package pattern

import "github.com/casengine/core/expr"

// Pattern is the matcher's own small AST, distinct from expr.Expression:
// plain expressions are matched by structural equality (expr.IsSame),
// while a Pattern node introduces wildcard and binding behavior.
type Pattern interface {
	isPattern()
}

// Lit wraps a plain boxed expression to be matched by expr.IsSame
// rather than any wildcard behavior.
type Lit struct{ Expr expr.Expression }

func (Lit) isPattern() {}

// Blank matches exactly one expression, optionally constrained to a
// head (e.g. BOf("Integer") only matches Number nodes whose domain
// is Integers — Constraint, if set, is checked by the caller's
// TypeCheck hook since expr doesn't know about domain here).
type Blank struct{ Constraint string }

func (Blank) isPattern() {}

// Seq matches one or more consecutive arguments (BlankSequence, "__").
type Seq struct{ Constraint string }

func (Seq) isPattern() {}

// NullSeq matches zero or more consecutive arguments (BlankNullSequence, "___").
type NullSeq struct{ Constraint string }

func (NullSeq) isPattern() {}

// Named binds whatever Inner matches to Name in the resulting Bindings.
type Named struct {
	Name  string
	Inner Pattern
}

func (Named) isPattern() {}

// Head matches a FunctionExpr whose head equals HeadName and whose
// arguments match Args positionally, with at most one Seq/NullSeq
// absorbing a run of extra arguments.
type Head struct {
	HeadName string
	Args     []Pattern
}

func (Head) isPattern() {}

func B() Pattern                    { return Blank{} }
func BOf(constraint string) Pattern { return Blank{Constraint: constraint} }
func BSeq() Pattern                 { return Seq{} }
func BNullSeq() Pattern             { return NullSeq{} }
func Bind(name string, p Pattern) Pattern { return Named{Name: name, Inner: p} }
func L(e expr.Expression) Pattern   { return Lit{Expr: e} }
func Fn(head string, args ...Pattern) Pattern { return Head{HeadName: head, Args: args} }

// Bindings maps pattern variable names to the expressions they matched.
type Bindings map[string]expr.Expression

// TypeCheck is supplied by the caller (package engine) so this package
// never needs to import package domain's constraint-matching logic; it
// reports whether e satisfies the named constraint (e.g. "Integer").
type TypeCheck func(e expr.Expression, constraint string) bool

func defaultTypeCheck(expr.Expression, string) bool { return true }
