package rules

import (
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func TestPowerZeroExponent(t *testing.T) {
	rs := PowerRules()
	target := expr.NewFunction(symbol.New("Power"), expr.NewSymbol("x"), intLit(0))
	for _, r := range rs {
		if out, ok := r.Apply(target); ok {
			if !expr.IsSame(out, intLit(1)) {
				t.Fatalf("Power(x, 0) = %v, want 1", out)
			}
			return
		}
	}
	t.Fatalf("expected a power rule to fire on Power(x, 0)")
}

func TestPowerZeroZeroIndeterminate(t *testing.T) {
	rs := PowerRules()
	target := expr.NewFunction(symbol.New("Power"), intLit(0), intLit(0))
	for _, r := range rs {
		if out, ok := r.Apply(target); ok {
			if _, isErr := expr.IsError(out); !isErr {
				t.Fatalf("Power(0, 0) = %v, want an Indeterminate error", out)
			}
			return
		}
	}
	t.Fatalf("expected a power rule to fire on Power(0, 0)")
}

func TestAbsOfNegativeNumber(t *testing.T) {
	rs := AbsRules()
	target := expr.NewFunction(symbol.New("Abs"), expr.NewNumber(numeric.NewInt(-5)))
	out, ok := rs[0].Apply(target)
	if !ok || !expr.IsSame(out, intLit(5)) {
		t.Fatalf("Abs(-5) = %v ok=%v, want 5", out, ok)
	}
}

func TestDivideByZero(t *testing.T) {
	rs := DivideRules()
	target := expr.NewFunction(symbol.New("Divide"), expr.NewSymbol("x"), intLit(0))
	var found bool
	for _, r := range rs {
		if out, ok := r.Apply(target); ok {
			if _, isErr := expr.IsError(out); !isErr {
				t.Fatalf("expected an Error expression, got %v", out)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Divide:ByZero to fire")
	}
}

func TestGammaPositiveInteger(t *testing.T) {
	rs := FactorialRules()
	target := expr.NewFunction(symbol.New("Gamma"), intLit(5))
	for _, r := range rs {
		if out, ok := r.Apply(target); ok {
			if !expr.IsSame(out, expr.NewNumber(numeric.NewInt(24))) {
				t.Fatalf("Gamma(5) = %v, want 24", out)
			}
			return
		}
	}
	t.Fatalf("expected a factorial rule to fire on Gamma(5)")
}

func TestProviderDispatch(t *testing.T) {
	p := NewProvider()
	if len(p.RulesFor("Power")) == 0 {
		t.Fatalf("expected Power rules registered")
	}
	if len(p.RulesFor("Nonexistent")) != 0 {
		t.Fatalf("expected no rules for an unregistered head")
	}
}
