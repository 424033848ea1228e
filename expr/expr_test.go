package expr

import (
	"testing"

	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

func TestIsSameStructural(t *testing.T) {
	a := NewFunction(symbol.New("Plus"), NewNumber(numeric.NewInt(1)), NewSymbol("x"))
	b := NewFunction(symbol.New("Plus"), NewNumber(numeric.NewInt(1)), NewSymbol("x"))
	c := NewFunction(symbol.New("Plus"), NewSymbol("x"), NewNumber(numeric.NewInt(1)))
	if !IsSame(a, b) {
		t.Fatalf("expected structurally identical trees to be isSame")
	}
	if IsSame(a, c) {
		t.Fatalf("expected different argument order to not be isSame")
	}
}

func TestLengthAndChildren(t *testing.T) {
	f := NewFunction(symbol.New("Plus"), NewSymbol("x"), NewSymbol("y"), NewSymbol("z"))
	if got := Length(f); got != 3 {
		t.Fatalf("Length = %d, want 3", got)
	}
	if Length(NewNumber(numeric.NewInt(5))) != 0 {
		t.Fatalf("atoms should have Length 0")
	}
}

func TestCompareOrdering(t *testing.T) {
	n := NewNumber(numeric.NewInt(1))
	s := NewSymbol("x")
	if !Compare(n, s) {
		t.Fatalf("numbers should sort before symbols")
	}
	if Compare(s, n) {
		t.Fatalf("symbols should not sort before numbers")
	}
}

func TestSortOrderless(t *testing.T) {
	args := []Expression{NewSymbol("z"), NewNumber(numeric.NewInt(2)), NewSymbol("a")}
	SortOrderless(args)
	if _, ok := args[0].(*NumberExpr); !ok {
		t.Fatalf("expected the number to sort first, got %v", args)
	}
}

func TestSubs(t *testing.T) {
	f := NewFunction(symbol.New("Plus"), NewSymbol("x"), NewNumber(numeric.NewInt(1)))
	out := Subs(f, map[string]Expression{"x": NewNumber(numeric.NewInt(41))})
	want := NewFunction(symbol.New("Plus"), NewNumber(numeric.NewInt(41)), NewNumber(numeric.NewInt(1)))
	if !IsSame(out, want) {
		t.Fatalf("Subs(x -> 41) = %v, want %v", out, want)
	}
}

func TestIsEqualNumericTolerance(t *testing.T) {
	a := NewNumber(numeric.NewFloat(0.1 + 0.2))
	b := NewNumber(numeric.NewFloat(0.3))
	if got := IsEqual(a, b, nil); got != True {
		t.Fatalf("IsEqual(0.1+0.2, 0.3) = %v, want True within tolerance", got)
	}
}

func TestErrorContagion(t *testing.T) {
	err := NewErrorExpr("DivisionByZero", "division by zero", nil)
	if got := Contagion(NewSymbol("x"), err); got != err {
		t.Fatalf("expected Contagion to find the ErrorExpr among arguments")
	}
	if Contagion(NewSymbol("x"), NewNumber(numeric.NewInt(1))) != nil {
		t.Fatalf("expected no contagion when no argument is an error")
	}
}

func TestDictionarySetPreservesOrder(t *testing.T) {
	d := NewDictionary(
		[]Expression{NewString("a"), NewString("b")},
		[]Expression{NewNumber(numeric.NewInt(1)), NewNumber(numeric.NewInt(2))},
	)
	d2 := d.Set(NewString("a"), NewNumber(numeric.NewInt(99)))
	v, ok := d2.Get(NewString("a"))
	if !ok || !IsSame(v, NewNumber(numeric.NewInt(99))) {
		t.Fatalf("expected updated value for key a")
	}
	if len(d2.Keys()) != 2 {
		t.Fatalf("expected key count unchanged on update, got %d", len(d2.Keys()))
	}
}

func TestTensorShape(t *testing.T) {
	row1 := NewVector(NewNumber(numeric.NewInt(1)), NewNumber(numeric.NewInt(2)))
	row2 := NewVector(NewNumber(numeric.NewInt(3)), NewNumber(numeric.NewInt(4)))
	m, ok := NewTensor(row1, row2)
	if !ok {
		t.Fatalf("expected rectangular rows to build a tensor")
	}
	if got := m.Shape(); len(got) != 2 || got[0] != 2 || got[1] != 2 {
		t.Fatalf("Shape = %v, want [2 2]", got)
	}
}
