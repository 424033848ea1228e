package numeric

import (
	"math"
	"math/big"
)

// BigInt is the arbitrary-precision integer tier, grounded on the
// teacher's core/bigint.go wrapper around *big.Int.
type BigInt struct{ val *big.Int }

func NewBigInt(v *big.Int) BigInt { return BigInt{val: new(big.Int).Set(v)} }

func (b BigInt) Kind() Kind     { return KindBigInt }
func (b BigInt) String() string { return b.val.String() }
func (b BigInt) Sign() int      { return b.val.Sign() }
func (b BigInt) IsZero() bool   { return b.val.Sign() == 0 }
func (b BigInt) Neg() Value     { return BigInt{val: new(big.Int).Neg(b.val)} }

func (b BigInt) toRational() Rational {
	return Rational{val: new(big.Rat).SetInt(b.val)}
}

// tryShrink converts back down to Int when the value fits in int64 —
// mirrors core/bigint.go's IsInt64()/Int64() shrink-on-read pattern.
func (b BigInt) tryShrink() Value {
	if b.val.IsInt64() {
		return Int(b.val.Int64())
	}
	return b
}

func (b BigInt) Add(o Value) Value {
	other := o.(BigInt)
	return BigInt{val: new(big.Int).Add(b.val, other.val)}.tryShrink()
}
func (b BigInt) Sub(o Value) Value {
	other := o.(BigInt)
	return BigInt{val: new(big.Int).Sub(b.val, other.val)}.tryShrink()
}
func (b BigInt) Mul(o Value) Value {
	other := o.(BigInt)
	return BigInt{val: new(big.Int).Mul(b.val, other.val)}.tryShrink()
}
func (b BigInt) Div(o Value) (Value, bool) {
	other := o.(BigInt)
	if other.val.Sign() == 0 {
		return nil, false
	}
	q, r := new(big.Int).QuoRem(b.val, other.val, new(big.Int))
	if r.Sign() == 0 {
		return BigInt{val: q}.tryShrink(), true
	}
	return NewRational(b.val, other.val), true
}
func (b BigInt) Pow(o Value) Value {
	other := o.(BigInt)
	if other.Sign() < 0 {
		positive := BigInt{val: new(big.Int).Exp(b.val, new(big.Int).Neg(other.val), nil)}
		v, ok := Div(Int(1), positive)
		if ok {
			return v
		}
		return positive
	}
	return BigInt{val: new(big.Int).Exp(b.val, other.val, nil)}.tryShrink()
}
func (b BigInt) Sqrt() Value {
	f, _ := new(big.Float).SetInt(b.val).Float64()
	if b.Sign() < 0 {
		return Complex{Re: Float(0), Im: Float(math.Sqrt(-f))}
	}
	r := new(big.Int).Sqrt(b.val)
	check := new(big.Int).Mul(r, r)
	if check.Cmp(b.val) == 0 {
		return BigInt{val: r}.tryShrink()
	}
	return Float(math.Sqrt(f))
}

func (b BigInt) Eq(o Value) bool   { return b.val.Cmp(o.(BigInt).val) == 0 }
func (b BigInt) Less(o Value) bool { return b.val.Cmp(o.(BigInt).val) < 0 }
func (b BigInt) IsZeroWithTolerance(eps float64) bool {
	f, _ := new(big.Float).SetInt(b.val).Float64()
	return math.Abs(f) <= eps
}
func (b BigInt) Float64() float64 {
	f, _ := new(big.Float).SetInt(b.val).Float64()
	return f
}
func (b BigInt) IsInt() bool      { return true }
func (b BigInt) IsRational() bool { return true }
func (b BigInt) IsReal() bool     { return true }
func (b BigInt) IsComplex() bool  { return false }
func (b BigInt) Finite() bool     { return true }
