package trig

import (
	"math"
	"math/big"
	"testing"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
)

func TestEvalSinMachineFloat(t *testing.T) {
	got := EvalSin(numeric.NewFloat(math.Pi / 2))
	if math.Abs(got.Float64()-1) > 1e-12 {
		t.Fatalf("EvalSin(pi/2) = %v, want 1", got)
	}
}

func TestEvalCosMachineFloat(t *testing.T) {
	got := EvalCos(numeric.NewFloat(0))
	if math.Abs(got.Float64()-1) > 1e-12 {
		t.Fatalf("EvalCos(0) = %v, want 1", got)
	}
}

func TestEvalTanUndefinedAtHalfPi(t *testing.T) {
	_, ok := EvalTan(numeric.NewFloat(math.Pi / 2))
	if ok {
		t.Fatal("EvalTan(pi/2) should report no value (cos is zero)")
	}
}

func TestBigSinAgreesWithMachinePrecision(t *testing.T) {
	raw := big.NewFloat(math.Pi / 6)
	raw.SetPrec(200)
	x := numeric.NewBigFloat(raw, 50)
	got := EvalSin(x)
	if math.Abs(got.Float64()-0.5) > 1e-9 {
		t.Fatalf("bignum Sin(pi/6) = %v, want ~0.5", got.Float64())
	}
}

func TestBigCosAgreesWithMachinePrecision(t *testing.T) {
	raw := big.NewFloat(0)
	raw.SetPrec(200)
	x := numeric.NewBigFloat(raw, 50)
	got := EvalCos(x)
	if math.Abs(got.Float64()-1) > 1e-9 {
		t.Fatalf("bignum Cos(0) = %v, want 1", got.Float64())
	}
}

func TestEvalSinComplex(t *testing.T) {
	c := numeric.NewComplex(numeric.NewFloat(0), numeric.NewFloat(1))
	got := EvalSin(c)
	if got.Kind() != numeric.KindComplex {
		t.Fatalf("EvalSin of a Complex should return a Complex, got %v", got.Kind())
	}
}

func TestEvalGeneralSinDispatch(t *testing.T) {
	arg := expr.NewNumber(numeric.NewFloat(math.Pi / 2))
	out, ok := EvalGeneral(FnSin, arg)
	if !ok {
		t.Fatal("EvalGeneral(Sin, pi/2) should succeed")
	}
	n, isNum := out.(*expr.NumberExpr)
	if !isNum || math.Abs(n.Val.Float64()-1) > 1e-9 {
		t.Fatalf("EvalGeneral(Sin, pi/2) = %v, want 1", out)
	}
}

func TestEvalGeneralUnknownHeadDeclines(t *testing.T) {
	arg := expr.NewNumber(numeric.NewFloat(0))
	_, ok := EvalGeneral("Sinh", arg)
	if ok {
		t.Fatal("EvalGeneral should decline a head it doesn't know")
	}
}

func TestEvalGeneralNonNumberDeclines(t *testing.T) {
	_, ok := EvalGeneral(FnSin, expr.NewSymbol("x"))
	if ok {
		t.Fatal("EvalGeneral should decline a symbolic argument")
	}
}
