package logic

import (
	"testing"

	"github.com/casengine/core/expr"
)

func TestEvaluateSubstitutesAndReduces(t *testing.T) {
	a, b := sym("a"), sym("b")
	e := expr.NewFunction(andSym, a, expr.NewFunction(notSym, b))
	val, ok := Evaluate(e, Assignment{"a": true, "b": false})
	if !ok || !val {
		t.Fatalf("Evaluate(a and not b, a=T,b=F) = %v ok=%v, want true", val, ok)
	}
	val2, ok2 := Evaluate(e, Assignment{"a": true, "b": true})
	if !ok2 || val2 {
		t.Fatalf("Evaluate(a and not b, a=T,b=T) = %v ok=%v, want false", val2, ok2)
	}
}

func TestIsTautologyExcludedMiddle(t *testing.T) {
	a := sym("a")
	e := expr.NewFunction(orSym, a, expr.NewFunction(notSym, a))
	val, ok := IsTautology(e)
	if !ok || !val {
		t.Fatalf("IsTautology(a or not a) = %v ok=%v, want true", val, ok)
	}
}

func TestIsSatisfiableContradictionIsUnsat(t *testing.T) {
	a := sym("a")
	e := expr.NewFunction(andSym, a, expr.NewFunction(notSym, a))
	val, ok := IsSatisfiable(e)
	if !ok || val {
		t.Fatalf("IsSatisfiable(a and not a) = %v ok=%v, want false", val, ok)
	}
}

func TestTruthTableRowCount(t *testing.T) {
	a, b := sym("a"), sym("b")
	e := expr.NewFunction(andSym, a, b)
	rows, ok := TruthTable(e)
	if !ok || len(rows) != 4 {
		t.Fatalf("TruthTable(a and b) has %d rows ok=%v, want 4", len(rows), ok)
	}
	trueCount := 0
	for _, r := range rows {
		if r.Value {
			trueCount++
		}
	}
	if trueCount != 1 {
		t.Fatalf("TruthTable(a and b) has %d true rows, want 1", trueCount)
	}
}
