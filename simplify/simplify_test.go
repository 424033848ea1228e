package simplify

import (
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/scope"
	"github.com/casengine/core/symbol"
)

func TestCanonicalizeFlattensAndSorts(t *testing.T) {
	sc := scope.NewRootScope(0)
	sc.DefineOperator("Plus", &scope.OperatorDefinition{Attributes: []scope.Attribute{scope.Flat, scope.Orderless}})
	s := New(sc, nil)

	inner := expr.NewFunction(symbol.New("Plus"), expr.NewSymbol("z"), expr.NewSymbol("y"))
	outer := expr.NewFunction(symbol.New("Plus"), expr.NewNumber(numeric.NewInt(1)), inner)

	got := s.Canonicalize(outer)
	fn, ok := got.(*expr.FunctionExpr)
	if !ok || len(fn.Args) != 3 {
		t.Fatalf("expected Flat to flatten into 3 args, got %v", got)
	}
	if _, isNum := fn.Args[0].(*expr.NumberExpr); !isNum {
		t.Fatalf("expected Orderless to sort the number first, got %v", got)
	}
}

type stubRule struct {
	match func(expr.Expression) (expr.Expression, bool)
}

func (r stubRule) Apply(e expr.Expression) (expr.Expression, bool) { return r.match(e) }

type stubRules struct{ rules map[string][]Rule }

func (s stubRules) RulesFor(head string) []Rule { return s.rules[head] }

func TestSimplifyAppliesRule(t *testing.T) {
	sc := scope.NewRootScope(0)
	sc.DefineOperator("Plus", &scope.OperatorDefinition{Attributes: []scope.Attribute{scope.Flat, scope.Orderless}})

	dropZero := stubRule{match: func(e expr.Expression) (expr.Expression, bool) {
		fn, ok := e.(*expr.FunctionExpr)
		if !ok || fn.Name.String() != "Plus" || len(fn.Args) != 2 {
			return nil, false
		}
		if n, ok := fn.Args[0].(*expr.NumberExpr); ok && n.IsZero() {
			return fn.Args[1], true
		}
		return nil, false
	}}
	rules := stubRules{rules: map[string][]Rule{"Plus": {dropZero}}}

	s := New(sc, rules)
	in := expr.NewFunction(symbol.New("Plus"), expr.NewNumber(numeric.NewInt(0)), expr.NewSymbol("x"))
	out := s.Simplify(in)
	if !expr.IsSame(out, expr.NewSymbol("x")) {
		t.Fatalf("Simplify(Plus(0, x)) = %v, want x", out)
	}
}

func TestSimplifyPropagatesErrors(t *testing.T) {
	sc := scope.NewRootScope(0)
	s := New(sc, stubRules{})
	errExpr := expr.NewErrorExpr("DivisionByZero", "boom", nil)
	in := expr.NewFunction(symbol.New("Plus"), errExpr, expr.NewSymbol("x"))
	out := s.Simplify(in)
	if _, ok := expr.IsError(out); !ok {
		t.Fatalf("expected error contagion to propagate out of Simplify, got %v", out)
	}
}
