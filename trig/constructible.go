package trig

import (
	"math"
	"math/big"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
)

// namedAngle is one entry of the constructible-values table: a radian
// measure together with its exact symbolic Sin and Cos, expressed as
// boxed Power/Divide/Plus trees per builtins/Sqrt.go's conversion idiom.
type namedAngle struct {
	radians float64
	sin     expr.Expression
	cos     expr.Expression
}

// rat builds the boxed rational n/d.
func rat(n, d int64) expr.Expression {
	return expr.NewNumber(numeric.NewRational(big.NewInt(n), big.NewInt(d)))
}

// namedAngles is the table of the ten constructible angles in
// [0, pi/2] this package recognizes: the multiples of pi/12 plus pi/10,
// pi/5 and 3*pi/10 (the fifth-circle angles, whose closed forms involve
// sqrt(5)). Other angles, such as pi/8, 3*pi/8 and 2*pi/5, are not in
// the table and are not matched.
var namedAngles = []namedAngle{
	{0, intLit(0), intLit(1)},
	{math.Pi / 12, divide(plus(sqrtOf(6), negate(sqrtOf(2))), intLit(4)),
		divide(plus(sqrtOf(6), sqrtOf(2)), intLit(4))},
	{math.Pi / 10, divide(plus(sqrtOf(5), negate(intLit(1))), intLit(4)),
		divide(nestedSqrt(plus(intLit(10), times(intLit(2), sqrtOf(5)))), intLit(4))},
	{math.Pi / 6, rat(1, 2), divide(sqrtOf(3), intLit(2))},
	{math.Pi / 5, divide(nestedSqrt(plus(intLit(10), negate(times(intLit(2), sqrtOf(5))))), intLit(4)),
		divide(plus(sqrtOf(5), intLit(1)), intLit(4))},
	{math.Pi / 4, divide(sqrtOf(2), intLit(2)), divide(sqrtOf(2), intLit(2))},
	{3 * math.Pi / 10, divide(plus(sqrtOf(5), intLit(1)), intLit(4)),
		divide(nestedSqrt(plus(intLit(10), negate(times(intLit(2), sqrtOf(5))))), intLit(4))},
	{math.Pi / 3, divide(sqrtOf(3), intLit(2)), rat(1, 2)},
	{5 * math.Pi / 12, divide(plus(sqrtOf(6), sqrtOf(2)), intLit(4)),
		divide(plus(sqrtOf(6), negate(sqrtOf(2))), intLit(4))},
	{math.Pi / 2, intLit(1), intLit(0)},
}

// constructibleTolerance bounds how close a reduced reference angle
// must be (in radians) to a table entry to be treated as an exact
// match rather than falling through to numeric evaluation.
const constructibleTolerance = 1e-12

// negateValue negates e, folding into the boxed numeric value directly
// when e is already a NumberExpr (so a zero entry like Cos(pi/2) stays
// the exact number 0 instead of becoming an un-simplified Times(-1, 0)
// tree) and falling back to the symbolic negate wrapper otherwise.
func negateValue(e expr.Expression) expr.Expression {
	if n, ok := e.(*expr.NumberExpr); ok {
		return expr.NewNumber(n.Val.Neg())
	}
	return negate(e)
}

// MatchConstructible looks up the reference angle of reduced (already
// folded into [0, 2*pi) by ReduceAngle) against the named-angle table
// and, on a match, returns the exact Sin/Cos for reduced itself —
// applying the quadrant sign and, where the reference angle lands past
// pi/4 in the table's layout, the cofunction swap is already baked
// into the table's symmetric construction, so only the sign need be
// adjusted here.
func MatchConstructible(reduced float64) (sinVal, cosVal expr.Expression, ok bool) {
	ref := referenceAngle(reduced)
	q := QuadrantOf(reduced)
	for _, na := range namedAngles {
		if math.Abs(na.radians-ref) > constructibleTolerance {
			continue
		}
		s, c := na.sin, na.cos
		if quadrantSign(FnSin, q) < 0 {
			s = negateValue(s)
		}
		if quadrantSign(FnCos, q) < 0 {
			c = negateValue(c)
		}
		return s, c, true
	}
	return nil, nil, false
}

// MatchConstructibleTan returns the exact Tan of a constructible angle
// as Divide(sin, cos) when cos is nonzero at that angle, following the
// same sign handling as MatchConstructible.
func MatchConstructibleTan(reduced float64) (expr.Expression, bool) {
	s, c, ok := MatchConstructible(reduced)
	if !ok {
		return nil, false
	}
	if n, isNum := c.(*expr.NumberExpr); isNum && n.Val.IsZero() {
		return nil, false
	}
	return divide(s, c), true
}
