package trig

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
)

// EvalSin computes Sin(x) for a boxed numeric argument, dispatching on
// its tier the way builtins/Sin.go branches on core.Real's precision:
// Int/BigInt/Rational/Float go through machine-precision math.Sin,
// BigFloat through a from-scratch bignum Taylor series (math/big has
// no transcendental functions), and Complex through math/cmplx.
func EvalSin(v numeric.Value) numeric.Value {
	switch x := v.(type) {
	case numeric.BigFloat:
		return bigSin(x)
	case numeric.Complex:
		return complexTrig(x, cmplx.Sin)
	default:
		return numeric.NewFloat(math.Sin(v.Float64()))
	}
}

// EvalCos mirrors EvalSin for cosine.
func EvalCos(v numeric.Value) numeric.Value {
	switch x := v.(type) {
	case numeric.BigFloat:
		return bigCos(x)
	case numeric.Complex:
		return complexTrig(x, cmplx.Cos)
	default:
		return numeric.NewFloat(math.Cos(v.Float64()))
	}
}

// EvalTan computes Tan(x) as Sin(x)/Cos(x), reporting false when
// |cos(x)| <= 1e-15 (x an odd multiple of pi/2, up to machine
// rounding).
func EvalTan(v numeric.Value) (numeric.Value, bool) {
	s, c := EvalSin(v), EvalCos(v)
	if c.IsZeroWithTolerance(1e-15) {
		return nil, false
	}
	q, ok := s.Div(c)
	return q, ok
}

// complexTrig evaluates fn on x's Re/Im pair through the standard
// library's complex128 transcendental functions, the same precision
// boundary builtins/Sin.go draws for complex arguments (no bignum
// complex trig is attempted).
func complexTrig(x numeric.Complex, fn func(complex128) complex128) numeric.Value {
	re, im := x.Float64(), x.ImagFloat64()
	out := fn(complex(re, im))
	return numeric.NewComplex(numeric.NewFloat(real(out)), numeric.NewFloat(imag(out)))
}

// bigTaylorTerms bounds the Taylor series expansion; at the working
// precisions this package targets (a few hundred decimal digits at
// most) the series converges to that precision well within this many
// terms once the argument is reduced into [-pi/4, pi/4].
const bigTaylorTerms = 60

// BigPi computes pi to prec bits, exported so a caller with its own
// precision-dependent constant cache (package engine's Pi/E cache) can
// compute a numeric Pi without duplicating this package's Machin-like
// series.
func BigPi(prec uint) *big.Float { return bigPi(prec) }

// bigPi computes pi to prec bits using the Chudnovsky-free Machin-like
// arctangent series (pi = 4*(4*atan(1/5) - atan(1/239))) on raw *big.Float,
// since math/big has no trig or pi constant of its own.
func bigPi(prec uint) *big.Float {
	atan := func(x *big.Float) *big.Float {
		sum := new(big.Float).SetPrec(prec)
		term := new(big.Float).SetPrec(prec).Copy(x)
		xSq := new(big.Float).SetPrec(prec).Mul(x, x)
		sign := 1
		for n := 0; n < bigTaylorTerms; n++ {
			denom := new(big.Float).SetPrec(prec).SetInt64(int64(2*n + 1))
			contrib := new(big.Float).SetPrec(prec).Quo(term, denom)
			if sign < 0 {
				sum.Sub(sum, contrib)
			} else {
				sum.Add(sum, contrib)
			}
			term.Mul(term, xSq)
			sign = -sign
		}
		return sum
	}
	fifth := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), big.NewFloat(5))
	term239 := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), big.NewFloat(239))
	a := new(big.Float).SetPrec(prec).Mul(big.NewFloat(4), atan(fifth))
	b := atan(term239)
	quarterPi := new(big.Float).SetPrec(prec).Sub(a, b)
	return quarterPi.Mul(quarterPi, big.NewFloat(4))
}

// bigReduce folds x into [-pi/4, pi/4] by subtracting the nearest
// multiple of pi/2, returning the reduced value and how many quarter
// turns (mod 4) were removed, so bigSin/bigCos can apply the matching
// quadrant identity.
func bigReduce(x *big.Float, prec uint) (*big.Float, int) {
	pi := bigPi(prec)
	halfPi := new(big.Float).SetPrec(prec).Quo(pi, big.NewFloat(2))
	quarters := new(big.Float).SetPrec(prec).Quo(x, halfPi)
	quarters.Add(quarters, big.NewFloat(0.5))
	qInt, _ := quarters.Int64()
	if quarters.Sign() < 0 && new(big.Float).SetInt64(qInt).Cmp(quarters) != 0 {
		qInt--
	}
	shift := new(big.Float).SetPrec(prec).Mul(halfPi, new(big.Float).SetInt64(qInt))
	reduced := new(big.Float).SetPrec(prec).Sub(x, shift)
	return reduced, int(((qInt % 4) + 4) % 4)
}

// taylorSinCos computes sin(r) and cos(r) for |r| <= pi/4 via their
// Maclaurin series on raw *big.Float arithmetic.
func taylorSinCos(r *big.Float, prec uint) (sin, cos *big.Float) {
	rSq := new(big.Float).SetPrec(prec).Mul(r, r)

	sinSum := new(big.Float).SetPrec(prec)
	sinTerm := new(big.Float).SetPrec(prec).Copy(r)
	cosSum := new(big.Float).SetPrec(prec)
	cosTerm := new(big.Float).SetPrec(prec).SetInt64(1)

	for n := 1; n <= bigTaylorTerms; n++ {
		sinSum.Add(sinSum, sinTerm)
		cosSum.Add(cosSum, cosTerm)

		sinTerm.Mul(sinTerm, rSq)
		sinTerm.Quo(sinTerm, big.NewFloat(float64(2*n)*float64(2*n+1)))
		sinTerm.Neg(sinTerm)

		cosTerm.Mul(cosTerm, rSq)
		cosTerm.Quo(cosTerm, big.NewFloat(float64(2*n-1)*float64(2*n)))
		cosTerm.Neg(cosTerm)
	}
	return sinSum, cosSum
}

// workingPrec floors the bit precision of x's raw big.Float at a
// value derived from its tracked decimal digit count: a Float built
// via SetFloat64 carries only 53 bits, and a zero-valued big.Float
// carries Prec() == 0, either of which would otherwise collapse the
// Taylor series to machine accuracy regardless of how many decimal
// digits x claims.
func workingPrec(raw *big.Float, decimalDigits uint) uint {
	bits := raw.Prec()
	floor := uint(float64(decimalDigits)*3.322) + 64
	if bits < floor {
		return floor
	}
	return bits
}

func bigSin(x numeric.BigFloat) numeric.Value {
	raw := x.Raw()
	prec := workingPrec(raw, x.Precision())
	r, quarters := bigReduce(raw, prec)
	s, c := taylorSinCos(r, prec)
	var out *big.Float
	switch quarters {
	case 0:
		out = s
	case 1:
		out = c
	case 2:
		out = new(big.Float).SetPrec(prec).Neg(s)
	default:
		out = new(big.Float).SetPrec(prec).Neg(c)
	}
	return numeric.NewBigFloat(out, x.Precision())
}

func bigCos(x numeric.BigFloat) numeric.Value {
	raw := x.Raw()
	prec := workingPrec(raw, x.Precision())
	r, quarters := bigReduce(raw, prec)
	s, c := taylorSinCos(r, prec)
	var out *big.Float
	switch quarters {
	case 0:
		out = c
	case 1:
		out = new(big.Float).SetPrec(prec).Neg(s)
	case 2:
		out = new(big.Float).SetPrec(prec).Neg(c)
	default:
		out = s
	}
	return numeric.NewBigFloat(out, x.Precision())
}

// EvalGeneral is the entry point a comparison/rule layer calls: given
// the function name and a single boxed numeric argument, it returns
// the evaluated NumberExpr, or (nil, false) when fn is not one this
// package knows how to evaluate directly (Tan at an undefined point).
func EvalGeneral(fn string, arg expr.Expression) (expr.Expression, bool) {
	n, ok := arg.(*expr.NumberExpr)
	if !ok {
		return nil, false
	}
	switch fn {
	case FnSin:
		return expr.NewNumber(numeric.Normalize(EvalSin(n.Val))), true
	case FnCos:
		return expr.NewNumber(numeric.Normalize(EvalCos(n.Val))), true
	case FnTan:
		v, ok := EvalTan(n.Val)
		if !ok {
			return nil, false
		}
		return expr.NewNumber(numeric.Normalize(v)), true
	default:
		return nil, false
	}
}
