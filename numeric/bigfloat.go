package numeric

import (
	"math"
	"math/big"
)

// BigFloat is the arbitrary-precision decimal tier, grounded on the
// teacher's core/big package (a forked extended-precision float built
// on math/big.Float). Precision tracks the engine's configured digit
// count (spec 4.3's "precision-aware backend").
type BigFloat struct {
	val  *big.Float
	prec uint // decimal digits of precision this value was computed at
}

func NewBigFloat(v *big.Float, prec uint) BigFloat {
	return BigFloat{val: new(big.Float).Copy(v), prec: prec}
}

func (b BigFloat) toComplex() Complex { return Complex{Re: b, Im: NewBigFloat(new(big.Float), b.prec)} }

// Raw returns a copy of the underlying *big.Float, for callers (such
// as package trig's bignum Taylor series) that need to compute with
// math/big directly since this package has no transcendental
// functions of its own.
func (b BigFloat) Raw() *big.Float { return new(big.Float).Copy(b.val) }

// Precision returns the decimal digit count this value was computed
// at, so a derived value (e.g. a trig function of b) can be boxed
// back up at the same precision.
func (b BigFloat) Precision() uint { return b.prec }

func (b BigFloat) Kind() Kind     { return KindBigFloat }
func (b BigFloat) String() string { return b.val.Text('g', int(b.prec)) }
func (b BigFloat) Sign() int      { return b.val.Sign() }
func (b BigFloat) IsZero() bool   { return b.val.Sign() == 0 }
func (b BigFloat) Neg() Value     { return BigFloat{val: new(big.Float).Neg(b.val), prec: b.prec} }

func (b BigFloat) maxPrec(o BigFloat) uint {
	if o.prec > b.prec {
		return o.prec
	}
	return b.prec
}

func (b BigFloat) Add(o Value) Value {
	other := o.(BigFloat)
	return BigFloat{val: new(big.Float).Add(b.val, other.val), prec: b.maxPrec(other)}
}
func (b BigFloat) Sub(o Value) Value {
	other := o.(BigFloat)
	return BigFloat{val: new(big.Float).Sub(b.val, other.val), prec: b.maxPrec(other)}
}
func (b BigFloat) Mul(o Value) Value {
	other := o.(BigFloat)
	return BigFloat{val: new(big.Float).Mul(b.val, other.val), prec: b.maxPrec(other)}
}
func (b BigFloat) Div(o Value) (Value, bool) {
	other := o.(BigFloat)
	if other.val.Sign() == 0 {
		return nil, false
	}
	return BigFloat{val: new(big.Float).Quo(b.val, other.val), prec: b.maxPrec(other)}, true
}
func (b BigFloat) Pow(o Value) Value {
	// math/big has no Float.Exp; for integer exponents use repeated
	// squaring, otherwise fall back to float64 (spec allows machine
	// float fallback for non-constructible bignum transcendentals).
	other := o.(BigFloat)
	if other.val.IsInt() {
		n, _ := other.val.Int64()
		return b.powInt(n)
	}
	bf, _ := b.val.Float64()
	of, _ := other.val.Float64()
	return Float(math.Pow(bf, of))
}
func (b BigFloat) powInt(n int64) Value {
	neg := n < 0
	if neg {
		n = -n
	}
	result := new(big.Float).SetPrec(b.val.Prec()).SetInt64(1)
	base := new(big.Float).Copy(b.val)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	if neg {
		one := new(big.Float).SetInt64(1)
		result.Quo(one, result)
	}
	return BigFloat{val: result, prec: b.prec}
}
func (b BigFloat) Sqrt() Value {
	if b.val.Sign() < 0 {
		neg := new(big.Float).Neg(b.val)
		return Complex{Re: NewBigFloat(new(big.Float), b.prec), Im: BigFloat{val: new(big.Float).Sqrt(neg), prec: b.prec}}
	}
	return BigFloat{val: new(big.Float).Sqrt(b.val), prec: b.prec}
}

func (b BigFloat) Eq(o Value) bool   { return b.val.Cmp(o.(BigFloat).val) == 0 }
func (b BigFloat) Less(o Value) bool { return b.val.Cmp(o.(BigFloat).val) < 0 }
func (b BigFloat) IsZeroWithTolerance(eps float64) bool {
	f, _ := b.val.Float64()
	return math.Abs(f) <= eps
}
func (b BigFloat) Float64() float64 {
	f, _ := b.val.Float64()
	return f
}
func (b BigFloat) IsInt() bool      { return b.val.IsInt() }
func (b BigFloat) IsRational() bool { return false }
func (b BigFloat) IsReal() bool     { return true }
func (b BigFloat) IsComplex() bool  { return false }
func (b BigFloat) Finite() bool     { return !b.val.IsInf() }

