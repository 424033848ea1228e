package rules

import (
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func TestPlusFoldCombinesNumbers(t *testing.T) {
	target := expr.NewFunction(symbol.New("Plus"), intLit(2), intLit(3), expr.NewSymbol("x"))
	out, ok := (plusFold{}).Apply(target)
	if !ok {
		t.Fatal("expected plusFold to fire on Plus(2, 3, x)")
	}
	want := expr.NewFunction(symbol.New("Plus"), expr.NewNumber(numeric.NewInt(5)), expr.NewSymbol("x"))
	if !expr.IsSame(out, want) {
		t.Fatalf("Plus(2, 3, x) folded = %v, want %v", out, want)
	}
}

func TestPlusFoldCollectsLikeTerms(t *testing.T) {
	x := expr.NewSymbol("x")
	a := expr.NewFunction(symbol.New("Times"), intLit(2), x)
	b := expr.NewFunction(symbol.New("Times"), intLit(3), x)
	target := expr.NewFunction(symbol.New("Plus"), a, b)
	out, ok := (plusFold{}).Apply(target)
	if !ok {
		t.Fatal("expected plusFold to fire on 2x+3x")
	}
	want := expr.NewFunction(symbol.New("Times"), expr.NewNumber(numeric.NewInt(5)), x)
	if !expr.IsSame(out, want) {
		t.Fatalf("2x+3x folded = %v, want %v", out, want)
	}
}

func TestPlusFoldCancelsToZero(t *testing.T) {
	x := expr.NewSymbol("x")
	a := expr.NewFunction(symbol.New("Times"), intLit(1), x)
	b := expr.NewFunction(symbol.New("Times"), intLit(-1), x)
	target := expr.NewFunction(symbol.New("Plus"), a, b)
	out, ok := (plusFold{}).Apply(target)
	if !ok {
		t.Fatal("expected plusFold to fire on x + (-x)")
	}
	if !expr.IsSame(out, expr.NewNumber(numeric.NewInt(0))) {
		t.Fatalf("x + (-x) folded = %v, want 0", out)
	}
}

func TestPlusFoldDeclinesSingleTerm(t *testing.T) {
	target := expr.NewFunction(symbol.New("Plus"), expr.NewSymbol("x"), expr.NewSymbol("y"))
	if _, ok := (plusFold{}).Apply(target); ok {
		t.Fatal("plusFold should decline when there is nothing to combine")
	}
}

func TestTimesFoldCombinesNumbers(t *testing.T) {
	target := expr.NewFunction(symbol.New("Times"), intLit(2), intLit(3), expr.NewSymbol("x"))
	out, ok := (timesFold{}).Apply(target)
	if !ok {
		t.Fatal("expected timesFold to fire on Times(2, 3, x)")
	}
	want := expr.NewFunction(symbol.New("Times"), expr.NewNumber(numeric.NewInt(6)), expr.NewSymbol("x"))
	if !expr.IsSame(out, want) {
		t.Fatalf("Times(2, 3, x) folded = %v, want %v", out, want)
	}
}

func TestTimesFoldZeroShortCircuits(t *testing.T) {
	target := expr.NewFunction(symbol.New("Times"), intLit(0), intLit(5), expr.NewSymbol("x"))
	out, ok := (timesFold{}).Apply(target)
	if !ok || !expr.IsSame(out, expr.NewNumber(numeric.NewInt(0))) {
		t.Fatalf("Times(0, 5, x) folded = %v ok=%v, want 0", out, ok)
	}
}

func TestTimesFoldDeclinesSingleNumber(t *testing.T) {
	target := expr.NewFunction(symbol.New("Times"), intLit(2), expr.NewSymbol("x"))
	if _, ok := (timesFold{}).Apply(target); ok {
		t.Fatal("timesFold should decline when there is only one numeric factor")
	}
}
