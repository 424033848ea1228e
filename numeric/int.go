package numeric

import (
	"math"
	"math/big"
	"strconv"
)

// Int is the machine-word integer tier, grounded on the teacher's
// core/int64.go machineInt. Arithmetic that would overflow int64
// promotes itself to BigInt rather than wrapping.
type Int int64

func NewInt(n int64) Int { return Int(n) }

func (i Int) Kind() Kind     { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Sign() int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	default:
		return 0
	}
}
func (i Int) IsZero() bool { return i == 0 }
func (i Int) Neg() Value   { return Int(-i) }

func (i Int) toBigInt() BigInt { return BigInt{val: big.NewInt(int64(i))} }

func (i Int) Add(o Value) Value {
	other := o.(Int)
	sum := int64(i) + int64(other)
	// overflow check: sign of result must be consistent
	if (int64(i) > 0 && int64(other) > 0 && sum < 0) ||
		(int64(i) < 0 && int64(other) < 0 && sum > 0) {
		return i.toBigInt().Add(other.toBigInt())
	}
	return Int(sum)
}

func (i Int) Sub(o Value) Value {
	other := o.(Int)
	return i.Add(Int(-other))
}

func (i Int) Mul(o Value) Value {
	other := o.(Int)
	if i == 0 || other == 0 {
		return Int(0)
	}
	product := int64(i) * int64(other)
	if product/int64(other) != int64(i) {
		return i.toBigInt().Mul(other.toBigInt())
	}
	return Int(product)
}

func (i Int) Div(o Value) (Value, bool) {
	other := o.(Int)
	if other == 0 {
		return nil, false
	}
	if int64(i)%int64(other) == 0 {
		return Int(int64(i) / int64(other)), true
	}
	return NewRational(big.NewInt(int64(i)), big.NewInt(int64(other))), true
}

func (i Int) Pow(o Value) Value {
	other := o.(Int)
	if other.Sign() < 0 {
		positive := i.toBigInt().Pow(Int(-other))
		v, ok := Div(Int(1), positive)
		if ok {
			return v
		}
		return positive
	}
	return i.toBigInt().Pow(other)
}

func (i Int) Sqrt() Value {
	if i.Sign() < 0 {
		return Complex{Re: Float(0), Im: Float(math.Sqrt(-float64(i)))}
	}
	r := int64(math.Sqrt(float64(i)))
	for r*r > int64(i) {
		r--
	}
	for (r+1)*(r+1) <= int64(i) {
		r++
	}
	if r*r == int64(i) {
		return Int(r)
	}
	return Float(math.Sqrt(float64(i)))
}

func (i Int) Eq(o Value) bool   { return i == o.(Int) }
func (i Int) Less(o Value) bool { return i < o.(Int) }
func (i Int) IsZeroWithTolerance(eps float64) bool {
	return math.Abs(float64(i)) <= eps
}
func (i Int) Float64() float64  { return float64(i) }
func (i Int) IsInt() bool       { return true }
func (i Int) IsRational() bool  { return true }
func (i Int) IsReal() bool      { return true }
func (i Int) IsComplex() bool   { return false }
func (i Int) Finite() bool      { return true }
