package numeric

import (
	"math"
	"math/big"
)

// Rational is the exact numerator/denominator tier, grounded on the
// teacher's core/rational.go and core/rat64.go (normalize to lowest
// terms, positive denominator — spec 4.3).
type Rational struct{ val *big.Rat }

// NewRational builds a normalized Rational from a numerator/denominator
// pair of *big.Int, shrinking to BigInt/Int when the denominator is 1.
func NewRational(num, den *big.Int) Value {
	r := new(big.Rat).SetFrac(num, den)
	return Rational{val: r}.normalize()
}

func (r Rational) normalize() Value {
	if r.val.IsInt() {
		return BigInt{val: new(big.Int).Set(r.val.Num())}.tryShrink()
	}
	return r
}

func (r Rational) toFloat() Float {
	f, _ := r.val.Float64()
	return Float(f)
}

func (r Rational) Kind() Kind     { return KindRational }
func (r Rational) String() string { return r.val.RatString() }
func (r Rational) Sign() int      { return r.val.Sign() }
func (r Rational) IsZero() bool   { return r.val.Sign() == 0 }
func (r Rational) Neg() Value     { return Rational{val: new(big.Rat).Neg(r.val)} }

func (r Rational) Add(o Value) Value {
	return Rational{val: new(big.Rat).Add(r.val, o.(Rational).val)}.normalize()
}
func (r Rational) Sub(o Value) Value {
	return Rational{val: new(big.Rat).Sub(r.val, o.(Rational).val)}.normalize()
}
func (r Rational) Mul(o Value) Value {
	return Rational{val: new(big.Rat).Mul(r.val, o.(Rational).val)}.normalize()
}
func (r Rational) Div(o Value) (Value, bool) {
	other := o.(Rational)
	if other.val.Sign() == 0 {
		return nil, false
	}
	return Rational{val: new(big.Rat).Quo(r.val, other.val)}.normalize(), true
}
func (r Rational) Pow(o Value) Value {
	other := o.(Rational)
	if !other.val.IsInt() {
		// non-integer rational exponent: fall back to float tier
		return Float(math.Pow(r.Float64(), other.Float64()))
	}
	n := other.val.Num()
	neg := n.Sign() < 0
	exp := new(big.Int).Abs(n)
	num := new(big.Int).Exp(r.val.Num(), exp, nil)
	den := new(big.Int).Exp(r.val.Denom(), exp, nil)
	if neg {
		num, den = den, num
	}
	return NewRational(num, den)
}
func (r Rational) Sqrt() Value {
	f := r.Float64()
	if f < 0 {
		return Complex{Re: Float(0), Im: Float(math.Sqrt(-f))}
	}
	return Float(math.Sqrt(f))
}

func (r Rational) Eq(o Value) bool   { return r.val.Cmp(o.(Rational).val) == 0 }
func (r Rational) Less(o Value) bool { return r.val.Cmp(o.(Rational).val) < 0 }
func (r Rational) IsZeroWithTolerance(eps float64) bool {
	return math.Abs(r.Float64()) <= eps
}
func (r Rational) Float64() float64 {
	f, _ := r.val.Float64()
	return f
}
func (r Rational) IsInt() bool      { return r.val.IsInt() }
func (r Rational) IsRational() bool { return true }
func (r Rational) IsReal() bool     { return true }
func (r Rational) IsComplex() bool  { return false }
func (r Rational) Finite() bool     { return true }

// Numerator and Denominator expose the reduced parts as BigInt, used by
// the Power/Abs rule families (spec 4.6.1/4.6.2).
func (r Rational) Numerator() BigInt   { return BigInt{val: new(big.Int).Set(r.val.Num())} }
func (r Rational) Denominator() BigInt { return BigInt{val: new(big.Int).Set(r.val.Denom())} }
