// Package scope implements the Definition Registry & Scopes concern:
// a lexical scope stack holding value/operator definitions, symbol
// attributes, and the evaluation stack's recursion guard.
//
// This is grounded directly on the teacher's engine/context.go Context
// (parent-chained variable lookup, a shared SymbolTable and
// EvaluationStack across a scope chain) and engine/attribute.go's
// SymbolTable, generalized from a single core.Expr value per symbol to
// the richer ValueDefinition/OperatorDefinition records spec 4.4/4.5
// requires (inferred domain, attribute set, and rewrite-rule list all
// attached to one symbol).
package scope

import (
	"fmt"

	"github.com/casengine/core/domain"
	"github.com/casengine/core/expr"
	"github.com/casengine/core/symbol"
)

// Attribute mirrors the teacher's engine/attribute.go Attribute enum,
// Mathematica-style operator attributes that drive canonicalization
// and argument-evaluation control (spec 4.5).
type Attribute int

const (
	HoldAll Attribute = iota
	HoldFirst
	HoldRest
	Flat
	Orderless
	OneIdentity
	Idempotent
	Involution
	Constant
	Protected
)

func (a Attribute) String() string {
	names := [...]string{
		"HoldAll", "HoldFirst", "HoldRest", "Flat", "Orderless",
		"OneIdentity", "Idempotent", "Involution", "Constant", "Protected",
	}
	if int(a) < len(names) {
		return names[a]
	}
	return "Unknown"
}

// ValueDefinition binds a symbol to a boxed value (spec 4.4: a lazily
// evaluated symbol binding, with the symbol's own inferred domain
// narrowing/widening as assumptions accumulate).
type ValueDefinition struct {
	Value  expr.Expression
	Domain domain.Domain
}

// OperatorDefinition records everything the canonicalizer and
// simplifier need to know about a head: its attributes and its
// rewrite rules (spec 4.5/4.6). Rules are stored as an opaque slice of
// `any` here to avoid this package importing package pattern/simplify,
// which would create an import cycle (simplify needs scope to look up
// a head's attributes); package engine does the concrete wiring.
type OperatorDefinition struct {
	Attributes []Attribute
	Rules      []any
	Result     domain.Domain
	Params     []domain.Domain
}

func (o *OperatorDefinition) Has(a Attribute) bool {
	for _, x := range o.Attributes {
		if x == a {
			return true
		}
	}
	return false
}

// StackFrame is one frame of the evaluation call stack, grounded on
// engine/context.go's EvaluationStack frame shape.
type StackFrame struct {
	Head string
	Expr expr.Expression
}

// EvaluationStack enforces spec 5.4's recursion/iteration-limit guard:
// simplification must terminate, so a runaway rewrite loop is caught
// as a catastrophic (Go error) failure rather than allowed to hang.
type EvaluationStack struct {
	frames   []StackFrame
	maxDepth int
}

func NewEvaluationStack(maxDepth int) *EvaluationStack {
	return &EvaluationStack{maxDepth: maxDepth}
}

func (s *EvaluationStack) Push(head string, e expr.Expression) error {
	if len(s.frames) >= s.maxDepth {
		return fmt.Errorf("scope: maximum evaluation depth exceeded (%d)", s.maxDepth)
	}
	s.frames = append(s.frames, StackFrame{Head: head, Expr: e})
	return nil
}

func (s *EvaluationStack) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *EvaluationStack) Depth() int { return len(s.frames) }

func (s *EvaluationStack) Frames() []StackFrame {
	out := make([]StackFrame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Scope is one lexical frame: its own value bindings, chained to a
// parent for lookup, sharing the operator registry and evaluation
// stack across the whole chain the way engine/context.go's
// NewChildContext shares symbolTable/functionRegistry/stack with its
// parent.
type Scope struct {
	values    map[string]*ValueDefinition
	parent    *Scope
	operators map[string]*OperatorDefinition // shared root map
	stack     *EvaluationStack               // shared root stack
	localOnly map[string]bool                // names locally scoped (Block-style)
}

// NewRootScope creates the outermost scope, with its own operator
// registry and evaluation stack, maxDepth bounding recursion (spec
// 5.4); a maxDepth of 0 defaults to 4096.
func NewRootScope(maxDepth int) *Scope {
	if maxDepth <= 0 {
		maxDepth = 4096
	}
	return &Scope{
		values:    make(map[string]*ValueDefinition),
		operators: make(map[string]*OperatorDefinition),
		stack:     NewEvaluationStack(maxDepth),
		localOnly: make(map[string]bool),
	}
}

// Push creates a child scope sharing the operator registry and stack.
func (s *Scope) Push() *Scope {
	return &Scope{
		values:    make(map[string]*ValueDefinition),
		parent:    s,
		operators: s.operators,
		stack:     s.stack,
		localOnly: make(map[string]bool),
	}
}

// DefineLocal marks name as lexically local to this scope (a Block-style
// temporary binding): subsequent SetValue calls for name write here
// rather than walking up to an enclosing scope.
func (s *Scope) DefineLocal(name string) { s.localOnly[name] = true }

// SetValue binds name in the nearest scope that owns it, walking up
// the parent chain the way engine/context.go's Context.Set does,
// unless name was marked local via DefineLocal.
func (s *Scope) SetValue(name string, def *ValueDefinition) {
	if s.localOnly[name] || s.parent == nil {
		s.values[name] = def
		return
	}
	s.parent.SetValue(name, def)
}

// GetValue looks up name, searching up the parent chain.
func (s *Scope) GetValue(name string) (*ValueDefinition, bool) {
	if v, ok := s.values[name]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.GetValue(name)
	}
	return nil, false
}

// DefineOperator registers or updates a head's operator definition.
// Operator definitions are always global to the scope chain (there is
// no per-scope shadowing of an operator's attributes/rules in spec
// 4.5).
func (s *Scope) DefineOperator(head string, def *OperatorDefinition) {
	s.operators[head] = def
}

func (s *Scope) GetOperator(head string) (*OperatorDefinition, bool) {
	d, ok := s.operators[head]
	return d, ok
}

// HasAttribute is a convenience used heavily by canonicalization.
func (s *Scope) HasAttribute(head symbol.Symbol, a Attribute) bool {
	def, ok := s.GetOperator(head.String())
	return ok && def.Has(a)
}

func (s *Scope) Stack() *EvaluationStack { return s.stack }
