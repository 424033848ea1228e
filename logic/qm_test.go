package logic

import (
	"testing"

	"github.com/casengine/core/expr"
)

// TestMinimalDNFXor builds the truth table of a two-variable Xor
// (a and not b) or (not a and b) and checks that minimization recovers
// a two-term cover that still agrees with the original truth table.
func TestMinimalDNFXor(t *testing.T) {
	a, b := sym("a"), sym("b")
	e := expr.NewFunction(orSym,
		expr.NewFunction(andSym, a, expr.NewFunction(notSym, b)),
		expr.NewFunction(andSym, expr.NewFunction(notSym, a), b))

	got, ok := MinimalDNF(e)
	if !ok {
		t.Fatalf("MinimalDNF declined")
	}

	wantRows, _ := TruthTable(e)
	gotRows, ok2 := TruthTable(got)
	if !ok2 {
		t.Fatalf("MinimalDNF result isn't a total boolean function")
	}
	for i := range wantRows {
		if wantRows[i].Value != gotRows[i].Value {
			t.Fatalf("row %d: original=%v minimized=%v", i, wantRows[i].Value, gotRows[i].Value)
		}
	}
}

func TestMinimalDNFConstantCases(t *testing.T) {
	a := sym("a")
	tautology := expr.NewFunction(orSym, a, expr.NewFunction(notSym, a))
	got, ok := MinimalDNF(tautology)
	if !ok || !IsTrue(got) {
		t.Fatalf("MinimalDNF(a or not a) = %v ok=%v, want True", got, ok)
	}

	contradiction := expr.NewFunction(andSym, a, expr.NewFunction(notSym, a))
	got2, ok2 := MinimalDNF(contradiction)
	if !ok2 || !IsFalse(got2) {
		t.Fatalf("MinimalDNF(a and not a) = %v ok=%v, want False", got2, ok2)
	}
}

func TestPrimeImplicantsOfSingleVariable(t *testing.T) {
	a := sym("a")
	implicants, ok := PrimeImplicants(a)
	if !ok || len(implicants) != 1 || !expr.IsSame(implicants[0], a) {
		t.Fatalf("PrimeImplicants(a) = %v ok=%v, want [a]", implicants, ok)
	}
}

func TestMinimalCNFAgreesWithTruthTable(t *testing.T) {
	a, b := sym("a"), sym("b")
	e := expr.NewFunction(orSym, a, b)
	got, ok := MinimalCNF(e)
	if !ok {
		t.Fatalf("MinimalCNF declined")
	}
	wantRows, _ := TruthTable(e)
	gotRows, ok2 := TruthTable(got)
	if !ok2 {
		t.Fatalf("MinimalCNF result isn't a total boolean function")
	}
	for i := range wantRows {
		if wantRows[i].Value != gotRows[i].Value {
			t.Fatalf("row %d: original=%v minimized=%v", i, wantRows[i].Value, gotRows[i].Value)
		}
	}
}
