package numeric

import "math"

// Complex is the complex tier: a real+imaginary pair, each itself a real
// tier Value (Float or BigFloat per spec 4.3 — "each machine or big").
type Complex struct {
	Re, Im Value
}

func NewComplex(re, im Value) Complex { return Complex{Re: re, Im: im} }

func (c Complex) realPair(o Value) (Value, Value) {
	other := o.(Complex)
	return other.Re, other.Im
}

func (c Complex) Kind() Kind { return KindComplex }
func (c Complex) String() string {
	if c.Im.Sign() == 0 {
		return c.Re.String()
	}
	if c.Im.Sign() < 0 {
		return c.Re.String() + " - " + c.Im.Neg().String() + "i"
	}
	return c.Re.String() + " + " + c.Im.String() + "i"
}
func (c Complex) Sign() int {
	// Complex numbers have no total order; Sign reports 0 only when
	// the value is exactly zero, mirroring "undecidable" elsewhere.
	if c.IsZero() {
		return 0
	}
	return 1
}
func (c Complex) IsZero() bool { return c.Re.IsZero() && c.Im.IsZero() }
func (c Complex) Neg() Value   { return Complex{Re: c.Re.Neg(), Im: c.Im.Neg()} }

func (c Complex) Add(o Value) Value {
	re, im := c.realPair(o)
	return Complex{Re: Add(c.Re, re), Im: Add(c.Im, im)}
}
func (c Complex) Sub(o Value) Value {
	re, im := c.realPair(o)
	return Complex{Re: Sub(c.Re, re), Im: Sub(c.Im, im)}
}
func (c Complex) Mul(o Value) Value {
	re, im := c.realPair(o)
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	ac := Mul(c.Re, re)
	bd := Mul(c.Im, im)
	ad := Mul(c.Re, im)
	bc := Mul(c.Im, re)
	return Complex{Re: Sub(ac, bd), Im: Add(ad, bc)}
}
func (c Complex) Div(o Value) (Value, bool) {
	re, im := c.realPair(o)
	denom := Add(Mul(re, re), Mul(im, im))
	if denom.IsZero() {
		return nil, false
	}
	// (a+bi)/(c+di) = (a+bi)(c-di)/(c^2+d^2)
	conjugate := Complex{Re: re, Im: im.Neg()}
	numerator := c.Mul(conjugate).(Complex)
	reResult, _ := Div(numerator.Re, denom)
	imResult, _ := Div(numerator.Im, denom)
	return Complex{Re: reResult, Im: imResult}, true
}
func (c Complex) Pow(o Value) Value {
	// general complex power via polar form, machine-precision only.
	re, im := c.Re.Float64(), c.Im.Float64()
	r := math.Hypot(re, im)
	theta := math.Atan2(im, re)
	other, ok := o.(Complex)
	var oreF, oimF float64
	if ok {
		oreF, oimF = other.Re.Float64(), other.Im.Float64()
	} else {
		oreF = o.Float64()
	}
	logR := math.Log(r)
	newMag := math.Exp(oreF*logR - oimF*theta)
	newAngle := oimF*logR + oreF*theta
	return Complex{Re: Float(newMag * math.Cos(newAngle)), Im: Float(newMag * math.Sin(newAngle))}
}
func (c Complex) Sqrt() Value {
	return c.Pow(Complex{Re: Float(0.5), Im: Float(0)})
}

func (c Complex) Eq(o Value) bool {
	re, im := c.realPair(o)
	return c.Re.Eq(re) && c.Im.Eq(im)
}
func (c Complex) Less(o Value) bool { return false } // no total order on Complex
func (c Complex) IsZeroWithTolerance(eps float64) bool {
	return math.Hypot(c.Re.Float64(), c.Im.Float64()) <= eps
}
func (c Complex) Float64() float64 { return c.Re.Float64() }

// ImagFloat64 returns the imaginary part as a machine float64, the
// counterpart callers (such as package trig's complex dispatch) need
// alongside Float64 to build a complex128.
func (c Complex) ImagFloat64() float64 { return c.Im.Float64() }
func (c Complex) IsInt() bool      { return c.Im.IsZero() && c.Re.IsInt() }
func (c Complex) IsRational() bool { return false }
func (c Complex) IsReal() bool     { return c.Im.IsZero() }
func (c Complex) IsComplex() bool  { return true }
func (c Complex) Finite() bool     { return c.Re.Finite() && c.Im.Finite() }
