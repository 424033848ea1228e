package numeric

import (
	"math"
	"math/big"
	"strconv"
)

// Float is the machine double tier, grounded on the teacher's
// core/float64.go f64 type.
type Float float64

func NewFloat(f float64) Float { return Float(f) }

func (f Float) Kind() Kind { return KindFloat }
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
func (f Float) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}
func (f Float) IsZero() bool { return f == 0 }
func (f Float) Neg() Value   { return Float(-f) }

func (f Float) toBigFloat() BigFloat {
	return BigFloat{val: new(big.Float).SetFloat64(float64(f))}
}

func (f Float) Add(o Value) Value { return Float(f + o.(Float)) }
func (f Float) Sub(o Value) Value { return Float(f - o.(Float)) }
func (f Float) Mul(o Value) Value { return Float(f * o.(Float)) }
func (f Float) Div(o Value) (Value, bool) {
	other := o.(Float)
	if other == 0 {
		return nil, false
	}
	return Float(f / other), true
}
func (f Float) Pow(o Value) Value { return Float(math.Pow(float64(f), float64(o.(Float)))) }
func (f Float) Sqrt() Value {
	if f < 0 {
		return Complex{Re: Float(0), Im: Float(math.Sqrt(float64(-f)))}
	}
	return Float(math.Sqrt(float64(f)))
}

func (f Float) Eq(o Value) bool   { return f == o.(Float) }
func (f Float) Less(o Value) bool { return f < o.(Float) }
func (f Float) IsZeroWithTolerance(eps float64) bool {
	return math.Abs(float64(f)) <= eps
}
func (f Float) Float64() float64 { return float64(f) }
func (f Float) IsInt() bool      { return float64(f) == math.Trunc(float64(f)) }
func (f Float) IsRational() bool { return false }
func (f Float) IsReal() bool     { return true }
func (f Float) IsComplex() bool  { return false }
func (f Float) Finite() bool     { return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0) }
