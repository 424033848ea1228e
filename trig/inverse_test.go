package trig

import (
	"math"
	"testing"

	"github.com/casengine/core/expr"
)

func TestArcSinHalf(t *testing.T) {
	angle, ok := ArcSin(0.5)
	if !ok {
		t.Fatal("expected ArcSin(0.5) to match the table")
	}
	if !expr.IsSame(angle, piMultiple(1, 6)) {
		t.Fatalf("ArcSin(0.5) = %v, want pi/6", angle)
	}
}

func TestArcSinNegativeMirrorsSign(t *testing.T) {
	angle, ok := ArcSin(-0.5)
	if !ok {
		t.Fatal("expected ArcSin(-0.5) to match the table")
	}
	if !expr.IsSame(angle, negate(piMultiple(1, 6))) {
		t.Fatalf("ArcSin(-0.5) = %v, want -pi/6", angle)
	}
}

func TestArcSinNoMatchFallsThrough(t *testing.T) {
	_, ok := ArcSin(0.314159)
	if ok {
		t.Fatal("0.314159 should not match any table entry")
	}
}

func TestArcCosHalf(t *testing.T) {
	angle, ok := ArcCos(0.5)
	if !ok {
		t.Fatal("expected ArcCos(0.5) to match the table")
	}
	if !expr.IsSame(angle, plus(divide(Pi(), intLit(2)), negate(piMultiple(1, 6)))) {
		t.Fatalf("ArcCos(0.5) = %v, want pi/2 - pi/6", angle)
	}
}

func TestArcTanOne(t *testing.T) {
	angle, ok := ArcTan(1)
	if !ok {
		t.Fatal("expected ArcTan(1) to match the table")
	}
	if !expr.IsSame(angle, piMultiple(1, 4)) {
		t.Fatalf("ArcTan(1) = %v, want pi/4", angle)
	}
}

func TestArcTanSqrt3(t *testing.T) {
	angle, ok := ArcTan(math.Sqrt(3))
	if !ok {
		t.Fatal("expected ArcTan(sqrt(3)) to match the table")
	}
	if !expr.IsSame(angle, piMultiple(1, 3)) {
		t.Fatalf("ArcTan(sqrt(3)) = %v, want pi/3", angle)
	}
}
