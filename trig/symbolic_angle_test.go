package trig

import (
	"math"
	"testing"

	"github.com/casengine/core/expr"
)

func TestPiCoefficientBarePi(t *testing.T) {
	c, ok := piCoefficient(Pi())
	if !ok || c != 1 {
		t.Fatalf("piCoefficient(Pi) = %v, %v, want 1, true", c, ok)
	}
}

func TestPiCoefficientDivide(t *testing.T) {
	c, ok := piCoefficient(divide(Pi(), intLit(6)))
	if !ok || math.Abs(c-1.0/6) > 1e-15 {
		t.Fatalf("piCoefficient(Pi/6) = %v, %v, want 1/6, true", c, ok)
	}
}

func TestPiCoefficientTimes(t *testing.T) {
	c, ok := piCoefficient(times(intLit(2), Pi()))
	if !ok || math.Abs(c-2) > 1e-15 {
		t.Fatalf("piCoefficient(2*Pi) = %v, %v, want 2, true", c, ok)
	}
}

func TestPiCoefficientDeclinesOnNonPi(t *testing.T) {
	_, ok := piCoefficient(expr.NewSymbol("x"))
	if ok {
		t.Fatal("piCoefficient should decline a non-pi symbol")
	}
}

func TestAngleRadiansPlainNumber(t *testing.T) {
	r, ok := angleRadians(intLit(3))
	if !ok || math.Abs(r-3) > 1e-15 {
		t.Fatalf("angleRadians(3) = %v, %v, want 3, true", r, ok)
	}
}

func TestAngleRadiansSymbolicPi(t *testing.T) {
	r, ok := angleRadians(divide(Pi(), intLit(3)))
	if !ok || math.Abs(r-math.Pi/3) > 1e-12 {
		t.Fatalf("angleRadians(Pi/3) = %v, %v, want pi/3, true", r, ok)
	}
}
