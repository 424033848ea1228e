package engine

import (
	"math"
	"testing"

	"github.com/casengine/core/expr"
)

func TestPiMachinePrecision(t *testing.T) {
	e := NewComputeEngine()
	n, ok := e.Pi().(*expr.NumberExpr)
	if !ok {
		t.Fatalf("Pi() = %v, want a Number", e.Pi())
	}
	if math.Abs(n.Val.Float64()-math.Pi) > 1e-9 {
		t.Fatalf("Pi() = %v, want ~%v", n.Val.Float64(), math.Pi)
	}
}

func TestPiIsCachedUntilPrecisionChange(t *testing.T) {
	e := NewComputeEngine()
	first := e.Pi()
	second := e.Pi()
	if first != second {
		t.Fatal("Pi() should return the cached value on repeated calls")
	}
	e.SetPrecision(30)
	third := e.Pi()
	if third == first {
		t.Fatal("Pi() should recompute after SetPrecision")
	}
}

func TestPiBignumPrecision(t *testing.T) {
	e := NewComputeEngine(WithPrecision(30))
	n, ok := e.Pi().(*expr.NumberExpr)
	if !ok {
		t.Fatalf("Pi() at precision 30 = %v, want a Number", e.Pi())
	}
	if math.Abs(n.Val.Float64()-math.Pi) > 1e-15 {
		t.Fatalf("bignum Pi() = %v, want ~%v", n.Val.Float64(), math.Pi)
	}
}

func TestExponentialEMachinePrecision(t *testing.T) {
	e := NewComputeEngine()
	n, ok := e.ExponentialE().(*expr.NumberExpr)
	if !ok {
		t.Fatalf("ExponentialE() = %v, want a Number", e.ExponentialE())
	}
	if math.Abs(n.Val.Float64()-math.E) > 1e-9 {
		t.Fatalf("ExponentialE() = %v, want ~%v", n.Val.Float64(), math.E)
	}
}

func TestExponentialEBignumPrecision(t *testing.T) {
	e := NewComputeEngine(WithPrecision(25))
	n, ok := e.ExponentialE().(*expr.NumberExpr)
	if !ok {
		t.Fatalf("ExponentialE() at precision 25 = %v, want a Number", e.ExponentialE())
	}
	if math.Abs(n.Val.Float64()-math.E) > 1e-15 {
		t.Fatalf("bignum ExponentialE() = %v, want ~%v", n.Val.Float64(), math.E)
	}
}
