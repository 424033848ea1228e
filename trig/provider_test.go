package trig

import (
	"math"
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func call(head string, args ...expr.Expression) expr.Expression {
	return expr.NewFunction(symbol.New(head), args...)
}

func TestProviderRulesForKnownHeads(t *testing.T) {
	p := NewProvider()
	for _, h := range []string{FnSin, FnCos, FnTan, "ArcSin", "ArcCos", "ArcTan"} {
		if len(p.RulesFor(h)) != 1 {
			t.Errorf("expected exactly one rule for %s", h)
		}
	}
}

func TestProviderRulesForUnknownHeadEmpty(t *testing.T) {
	p := NewProvider()
	if len(p.RulesFor("Sinh")) != 0 {
		t.Fatal("RulesFor of an unregistered head should be empty")
	}
}

func TestSinRuleExactOnSymbolicAngle(t *testing.T) {
	r := sinRule{}
	arg := divide(Pi(), intLit(6))
	out, ok := r.Apply(call(FnSin, arg))
	if !ok {
		t.Fatal("sinRule should match Sin(Pi/6)")
	}
	if !expr.IsSame(out, rat(1, 2)) {
		t.Fatalf("Sin(Pi/6) = %v, want 1/2", out)
	}
}

func TestCosRuleFallsBackToNumericEvaluation(t *testing.T) {
	r := cosRule{}
	arg := expr.NewNumber(numeric.NewFloat(0.314159))
	out, ok := r.Apply(call(FnCos, arg))
	if !ok {
		t.Fatal("cosRule should evaluate a non-table float numerically")
	}
	n, isNum := out.(*expr.NumberExpr)
	if !isNum || math.Abs(n.Val.Float64()-math.Cos(0.314159)) > 1e-9 {
		t.Fatalf("Cos(0.314159) = %v, want %v", out, math.Cos(0.314159))
	}
}

func TestTanRuleDeclinesOnSymbolicArgument(t *testing.T) {
	r := tanRule{}
	arg := expr.NewSymbol("theta")
	_, ok := r.Apply(call(FnTan, arg))
	if ok {
		t.Fatal("tanRule should decline an unresolved symbolic argument")
	}
}

func TestTanRuleDeclinesAtHalfPi(t *testing.T) {
	r := tanRule{}
	arg := divide(Pi(), intLit(2))
	_, ok := r.Apply(call(FnTan, arg))
	if ok {
		t.Fatal("tanRule should decline Tan(Pi/2) rather than divide by zero")
	}
}

func TestArcSinRuleExact(t *testing.T) {
	r := arcSinRule{}
	arg := expr.NewNumber(numeric.NewFloat(0.5))
	out, ok := r.Apply(call("ArcSin", arg))
	if !ok {
		t.Fatal("arcSinRule should match 0.5")
	}
	if !expr.IsSame(out, piMultiple(1, 6)) {
		t.Fatalf("ArcSin(0.5) = %v, want pi/6", out)
	}
}

func TestArcTanRuleNumericFallback(t *testing.T) {
	r := arcTanRule{}
	arg := expr.NewNumber(numeric.NewFloat(0.37))
	out, ok := r.Apply(call("ArcTan", arg))
	if !ok {
		t.Fatal("arcTanRule should fall back to a numeric ArcTan")
	}
	n, isNum := out.(*expr.NumberExpr)
	if !isNum || math.Abs(n.Val.Float64()-math.Atan(0.37)) > 1e-9 {
		t.Fatalf("ArcTan(0.37) = %v, want %v", out, math.Atan(0.37))
	}
}

func TestWrongHeadDeclines(t *testing.T) {
	r := sinRule{}
	_, ok := r.Apply(call(FnCos, intLit(0)))
	if ok {
		t.Fatal("sinRule must decline a Cos node")
	}
}
