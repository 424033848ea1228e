package assume

import (
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func greater(sym string, n int64) expr.Expression {
	return expr.NewFunction(symbol.New("Greater"), expr.NewSymbol(sym), expr.NewNumber(numeric.NewInt(n)))
}

func TestAskExactMatch(t *testing.T) {
	s := NewStore()
	x := symbol.New("x")
	s.Assume(x, greater("x", 0))
	if got := s.Ask(greater("x", 0)); got != expr.True {
		t.Fatalf("Ask(exact match) = %v, want True", got)
	}
}

func TestAskConsequence(t *testing.T) {
	s := NewStore()
	x := symbol.New("x")
	s.Assume(x, greater("x", 5))
	geq3 := expr.NewFunction(symbol.New("GreaterEqual"), expr.NewSymbol("x"), expr.NewNumber(numeric.NewInt(3)))
	if got := s.Ask(geq3); got != expr.True {
		t.Fatalf("Greater(x,5) should imply GreaterEqual(x,3), got %v", got)
	}
}

func TestAskContradiction(t *testing.T) {
	s := NewStore()
	x := symbol.New("x")
	s.Assume(x, greater("x", 5))
	leq3 := expr.NewFunction(symbol.New("LessEqual"), expr.NewSymbol("x"), expr.NewNumber(numeric.NewInt(3)))
	if got := s.Ask(leq3); got != expr.False {
		t.Fatalf("Greater(x,5) should contradict LessEqual(x,3), got %v", got)
	}
}

func TestAskUndecided(t *testing.T) {
	s := NewStore()
	y := symbol.New("y")
	s.Assume(y, greater("y", 0))
	if got := s.Ask(greater("y", 100)); got != expr.Undecided {
		t.Fatalf("unrelated bound should be Undecided, got %v", got)
	}
}

func TestForget(t *testing.T) {
	s := NewStore()
	x := symbol.New("x")
	s.Assume(x, greater("x", 0))
	s.Forget(x)
	if got := s.Ask(greater("x", 0)); got != expr.Undecided {
		t.Fatalf("expected Forget to clear assumptions, got %v", got)
	}
}
