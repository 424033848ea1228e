package engine

import (
	"github.com/casengine/core/domain"
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/scope"
	"github.com/casengine/core/symbol"
)

// RawKind tags which alternative of spec 6's input shape a RawValue
// holds: `Number(literal) | Symbol(name) | String(value) |
// Operator(name, operands[]) | Dictionary(pairs)`. This is the shape a
// parser (external to this module) would hand to Box; since this
// module has no parser of its own, RawValue is constructed directly as
// a Go value rather than produced from source text.
type RawKind int

const (
	RawNumber RawKind = iota
	RawSymbol
	RawString
	RawOperator
	RawDictionary
)

// RawValue is one node of the recursive raw-expression tree spec 6
// names as the boundary between an external parser and the engine.
type RawValue struct {
	Kind     RawKind
	Number   numeric.Value
	Name     string // Symbol name, or Operator head name
	Text     string // String value
	Operands []RawValue
	Pairs    []RawPair
}

// RawPair is one Dictionary entry of a RawValue.
type RawPair struct {
	Key   RawValue
	Value RawValue
}

func RawInt(n int64) RawValue        { return RawValue{Kind: RawNumber, Number: numeric.NewInt(n)} }
func RawFloat(f float64) RawValue    { return RawValue{Kind: RawNumber, Number: numeric.NewFloat(f)} }
func RawNum(v numeric.Value) RawValue { return RawValue{Kind: RawNumber, Number: v} }
func RawSym(name string) RawValue    { return RawValue{Kind: RawSymbol, Name: name} }
func RawStr(s string) RawValue       { return RawValue{Kind: RawString, Text: s} }
func RawOp(name string, operands ...RawValue) RawValue {
	return RawValue{Kind: RawOperator, Name: name, Operands: operands}
}
func RawDict(pairs ...RawPair) RawValue { return RawValue{Kind: RawDictionary, Pairs: pairs} }

// BoxOptions controls Box's behavior, matching spec 6's
// `box(expr, {canonical, scope})`: Canonical requests the result be
// run through Canonicalize before it is returned (off unless set, as
// with any bool field of a struct literal);
// Scope, if non-nil, resolves Symbol nodes against that scope instead
// of the engine's current scope (used to box an expression into a
// specific lexical frame, e.g. inside a function body).
type BoxOptions struct {
	Canonical bool
	Scope     *scope.Scope
	// AutoBind installs an inferred value-definition of type unknown
	// for a Symbol name with no existing binding, per spec 4.4's
	// "If auto-binding is enabled ... an inferred value-definition
	// with type unknown is installed". Off by default, matching a
	// struct literal's zero value; callers box with AutoBind: true
	// once they want unresolved symbols to start accumulating
	// inferred type information.
	AutoBind bool
}

// Box converts a raw recursive structure into a boxed, validated
// Expression, spec 6's sole input surface. Number/String nodes box
// directly; Symbol nodes are validated against the identifier grammar
// and resolved against the active scope, auto-binding an inferred
// definition when enabled and absent; Operator nodes box their
// operands bottom-up then (if opts.Canonical) run through the
// simplifier's Canonicalize pass; Dictionary nodes box each pair.
//
// Grounded on the teacher's engine/parser.go tree-building walk,
// generalized from "parse source text into core.Expr" to "box an
// already-structured raw tree into Expression", since spec 1 places
// the parser itself outside this module's scope.
func (e *ComputeEngine) Box(raw RawValue, opts BoxOptions) expr.Expression {
	mustEngine(e)
	sc := opts.Scope
	if sc == nil {
		sc = e.current
	}
	autoBind := opts.AutoBind
	boxed := e.boxNode(raw, sc, autoBind)
	if opts.Canonical {
		boxed = e.simplify.Canonicalize(boxed)
	}
	return boxed
}

func (e *ComputeEngine) boxNode(raw RawValue, sc *scope.Scope, autoBind bool) expr.Expression {
	switch raw.Kind {
	case RawNumber:
		return expr.NewNumber(numeric.Normalize(raw.Number))
	case RawString:
		return expr.NewString(raw.Text)
	case RawSymbol:
		return e.boxSymbol(raw.Name, sc, autoBind)
	case RawOperator:
		args := make([]expr.Expression, len(raw.Operands))
		for i, o := range raw.Operands {
			args[i] = e.boxNode(o, sc, autoBind)
		}
		if !symbol.Valid(raw.Name) {
			return newDomainError(ErrInvalidSymbol, "invalid operator name: "+raw.Name, nil)
		}
		return expr.NewFunction(symbol.New(raw.Name), args...)
	case RawDictionary:
		keys := make([]expr.Expression, len(raw.Pairs))
		vals := make([]expr.Expression, len(raw.Pairs))
		for i, p := range raw.Pairs {
			keys[i] = e.boxNode(p.Key, sc, autoBind)
			vals[i] = e.boxNode(p.Value, sc, autoBind)
		}
		return expr.NewDictionary(keys, vals)
	default:
		return newDomainError(ErrInvalidSymbol, "unrecognized raw node kind", nil)
	}
}

func (e *ComputeEngine) boxSymbol(name string, sc *scope.Scope, autoBind bool) expr.Expression {
	if !symbol.Valid(name) {
		return newDomainError(ErrInvalidSymbol, "invalid identifier: "+name, expr.NewString(name))
	}
	sym := expr.NewSymbol(name)
	if _, ok := sc.GetValue(name); !ok && autoBind {
		sc.SetValue(name, &scope.ValueDefinition{Domain: domain.Lit(domain.Anything)})
		if e.inferred == nil {
			e.inferred = make(map[string]bool)
		}
		e.inferred[name] = true
	}
	if def, ok := sc.GetValue(name); ok && def.Domain != nil {
		sym.SetDomain(def.Domain)
	}
	return sym
}
