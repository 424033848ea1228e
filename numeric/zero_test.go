package numeric

import (
	"math"
	"math/big"
	"testing"
)

func TestIntOverflowPromotesToBigInt(t *testing.T) {
	a := Int(math.MaxInt64)
	sum := Add(a, Int(1))
	if sum.Kind() != KindBigInt {
		t.Fatalf("expected overflow to promote to BigInt, got %s", sum.Kind())
	}
}

func TestRationalNormalizesToInt(t *testing.T) {
	v := NewRational(big.NewInt(6), big.NewInt(3))
	if v.Kind() != KindInt {
		t.Fatalf("expected 6/3 to normalize to Int, got %s (%s)", v.Kind(), v.String())
	}
	if v.String() != "2" {
		t.Fatalf("expected 2, got %s", v.String())
	}
}

func TestRationalStaysReduced(t *testing.T) {
	v := NewRational(big.NewInt(4), big.NewInt(6))
	if v.Kind() != KindRational {
		t.Fatalf("expected Rational, got %s", v.Kind())
	}
	if v.String() != "2/3" {
		t.Fatalf("expected 2/3, got %s", v.String())
	}
}

func TestPromotionMachineToBigFloat(t *testing.T) {
	bf := NewBigFloat(new(big.Float).SetFloat64(2.5), 50)
	sum := Add(Int(1), bf)
	if sum.Kind() != KindBigFloat {
		t.Fatalf("expected BigFloat promotion, got %s", sum.Kind())
	}
}

func TestDivisionByZeroReportsFalse(t *testing.T) {
	_, ok := Div(Int(1), Int(0))
	if ok {
		t.Fatalf("expected division by zero to fail")
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := Complex{Re: Float(1), Im: Float(2)}
	b := Complex{Re: Float(3), Im: Float(-1)}
	sum := a.Add(b).(Complex)
	if sum.Re.Float64() != 4 || sum.Im.Float64() != 1 {
		t.Fatalf("unexpected complex sum: %s", sum.String())
	}
}

func TestIsZeroWithTolerance(t *testing.T) {
	v := Float(1e-12)
	if !v.IsZeroWithTolerance(1e-9) {
		t.Fatalf("expected value within tolerance to be treated as zero")
	}
	if Float(0.1).IsZeroWithTolerance(1e-9) {
		t.Fatalf("expected value outside tolerance to not be zero")
	}
}
