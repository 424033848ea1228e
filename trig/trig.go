// Package trig implements spec section 4.6.7's trigonometry subsystem:
// canonical angle reduction, per-quadrant sign/cofunction identities, a
// precomputed constructible-values table for the ten named angles
// in [0, pi/2], its inverse, and a precision-aware general evaluation
// dispatch (machine float, arbitrary-precision, complex).
//
// Grounded on the teacher's builtins/Sin.go/Tan.go (precision-branching
// dispatch: math.Sin for machine-precision core.Real, a bignum Sin for
// higher precision) and builtins/Sqrt.go's "symbolically convert to
// Power(x, 1/2)" idiom, which this package reuses to express every
// closed-form constructible value as a boxed Power/Divide/Plus tree
// instead of inventing a dedicated irrational-constant expression kind.
package trig

import (
	"math"
	"math/big"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/symbol"
)

var (
	plusSym  = symbol.New("Plus")
	timesSym = symbol.New("Times")
	powerSym = symbol.New("Power")
	divSym   = symbol.New("Divide")
	piSym    = symbol.New("Pi")
)

func intLit(n int64) expr.Expression { return expr.NewNumber(numeric.NewInt(n)) }

func half() expr.Expression {
	return expr.NewNumber(numeric.NewRational(big.NewInt(1), big.NewInt(2)))
}

func plus(args ...expr.Expression) expr.Expression  { return expr.NewFunction(plusSym, args...) }
func times(args ...expr.Expression) expr.Expression { return expr.NewFunction(timesSym, args...) }
func divide(a, b expr.Expression) expr.Expression   { return expr.NewFunction(divSym, a, b) }
func negate(e expr.Expression) expr.Expression      { return times(intLit(-1), e) }

// sqrtOf builds Power(n, 1/2), the symbolic square root of the small
// integer n, per builtins/Sqrt.go's conversion rule.
func sqrtOf(n int64) expr.Expression { return expr.NewFunction(powerSym, intLit(n), half()) }

// nestedSqrt builds Power(inner, 1/2) for a compound radicand, used by
// the half-angle closed forms (sqrt(10 +/- 2*sqrt(5))).
func nestedSqrt(inner expr.Expression) expr.Expression {
	return expr.NewFunction(powerSym, inner, half())
}

// Pi returns the symbolic constant pi, the unit every angle in this
// package is ultimately expressed as a rational multiple of.
func Pi() expr.Expression { return expr.NewSymbolFrom(piSym) }

// AngularUnit is one of the four units spec section 6's Configuration
// record names for the engine's angularUnit option.
type AngularUnit int

const (
	Radians AngularUnit = iota
	Degrees
	Gradians
	Turns
)

// ToRadians converts a raw float64 angle from unit to radians.
func ToRadians(value float64, unit AngularUnit) float64 {
	switch unit {
	case Degrees:
		return value * math.Pi / 180
	case Gradians:
		return value * math.Pi / 200
	case Turns:
		return value * 2 * math.Pi
	default:
		return value
	}
}
