package logic

import (
	"testing"

	"github.com/casengine/core/expr"
)

func TestToNNFPushesNegationThroughAnd(t *testing.T) {
	a, b := sym("a"), sym("b")
	in := expr.NewFunction(notSym, expr.NewFunction(andSym, a, b))
	got := ToNNF(in)
	want := expr.NewFunction(orSym, expr.NewFunction(notSym, a), expr.NewFunction(notSym, b))
	if !expr.IsSame(got, want) {
		t.Fatalf("ToNNF(Not(And(a,b))) = %v, want %v", got, want)
	}
}

func TestToNNFEliminatesImplies(t *testing.T) {
	a, b := sym("a"), sym("b")
	in := expr.NewFunction(impliesSym, a, b)
	got := ToNNF(in)
	want := expr.NewFunction(orSym, expr.NewFunction(notSym, a), b)
	if !expr.IsSame(got, want) {
		t.Fatalf("ToNNF(Implies(a,b)) = %v, want %v", got, want)
	}
}

func TestToNNFDoubleNegationCancels(t *testing.T) {
	a := sym("a")
	in := expr.NewFunction(notSym, expr.NewFunction(notSym, a))
	got := ToNNF(in)
	if !expr.IsSame(got, a) {
		t.Fatalf("ToNNF(Not(Not(a))) = %v, want a", got)
	}
}

func TestToCNFDistributesOrOverAnd(t *testing.T) {
	a, b, c := sym("a"), sym("b"), sym("c")
	in := expr.NewFunction(orSym, a, expr.NewFunction(andSym, b, c))
	got := ToCNF(in)
	want := expr.NewFunction(andSym,
		expr.NewFunction(orSym, a, b),
		expr.NewFunction(orSym, a, c))
	if !expr.IsSame(got, want) {
		t.Fatalf("ToCNF(Or(a, And(b,c))) = %v, want %v", got, want)
	}
}

func TestToDNFDistributesAndOverOr(t *testing.T) {
	a, b, c := sym("a"), sym("b"), sym("c")
	in := expr.NewFunction(andSym, a, expr.NewFunction(orSym, b, c))
	got := ToDNF(in)
	want := expr.NewFunction(orSym,
		expr.NewFunction(andSym, a, b),
		expr.NewFunction(andSym, a, c))
	if !expr.IsSame(got, want) {
		t.Fatalf("ToDNF(And(a, Or(b,c))) = %v, want %v", got, want)
	}
}
