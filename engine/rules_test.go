package engine

import (
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/symbol"
)

func TestCompositeProviderMergesDefaults(t *testing.T) {
	e := NewComputeEngine()
	if len(e.rules.RulesFor("Power")) == 0 {
		t.Fatal("compositeProvider should surface the default rules.Provider's Power rules")
	}
}

func TestCompositeProviderUserRuleWins(t *testing.T) {
	e := NewComputeEngine()
	lhs := pattern.Fn("Identity", pattern.Bind("x", pattern.B()))
	rhs := func(b pattern.Bindings) expr.Expression { return b["x"] }
	rule := pattern.NewRule("identity-unwrap", lhs, rhs)
	e.DefineFunction("Identity", OperatorDef{Rule: &rule})

	in := expr.NewFunction(symbol.New("Identity"), expr.NewSymbol("x"))
	out := e.Evaluate(in)
	if !expr.IsSame(out, expr.NewSymbol("x")) {
		t.Fatalf("Evaluate(Identity(x)) = %v, want x", out)
	}
}

func TestCompositeProviderUnknownHeadEmpty(t *testing.T) {
	e := NewComputeEngine()
	if len(e.rules.RulesFor("NoSuchHead")) != 0 {
		t.Fatal("RulesFor on an unregistered head should return no rules")
	}
}
