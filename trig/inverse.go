package trig

import (
	"math"

	"github.com/casengine/core/expr"
)

// inverseTolerance bounds how close a machine-precision sin/cos value
// must be to a named-angle table entry for ArcSin/ArcCos/ArcTan to
// return an exact pi-multiple instead of falling through to a
// machine-precision approximation.
const inverseTolerance = 1e-12

// piMultiple builds Times(Divide(n, d), Pi), the symbolic angle
// n*pi/d, the form ArcSin/ArcCos/ArcTan return on an exact match.
func piMultiple(n, d int64) expr.Expression {
	return times(rat(n, d), Pi())
}

// arcTable pairs each of the table's sin values (restricted to [0,
// pi/2], where sin is monotonic) with the n/d coefficients of its
// angle as a multiple of pi, letting ArcSin invert by value lookup
// rather than re-deriving the closed forms.
var arcTable = []struct {
	sinValue float64
	n, d     int64
}{
	{0, 0, 1},
	{math.Sin(math.Pi / 12), 1, 12},
	{math.Sin(math.Pi / 10), 1, 10},
	{0.5, 1, 6},
	{math.Sin(math.Pi / 5), 1, 5},
	{math.Sqrt2 / 2, 1, 4},
	{math.Sin(3 * math.Pi / 10), 3, 10},
	{math.Sqrt(3) / 2, 1, 3},
	{math.Sin(5 * math.Pi / 12), 5, 12},
	{1, 1, 2},
}

// ArcSin returns the exact angle in [-pi/2, pi/2] whose sine is
// value, as a symbolic multiple of pi, when value matches the
// constructible-values table within tolerance; otherwise it reports
// no match and the caller falls back to a numeric ArcSin.
func ArcSin(value float64) (expr.Expression, bool) {
	neg := value < 0
	av := math.Abs(value)
	for _, e := range arcTable {
		if math.Abs(e.sinValue-av) > inverseTolerance {
			continue
		}
		angle := piMultiple(e.n, e.d)
		if neg {
			angle = negate(angle)
		}
		return angle, true
	}
	return nil, false
}

// ArcCos returns the exact angle in [0, pi] whose cosine is value,
// using ArcCos(x) = pi/2 - ArcSin(x).
func ArcCos(value float64) (expr.Expression, bool) {
	s, ok := ArcSin(value)
	if !ok {
		return nil, false
	}
	return plus(divide(Pi(), intLit(2)), negate(s)), true
}

// ArcTan returns the exact angle in (-pi/2, pi/2) whose tangent is
// value, found by matching value against tan = sin/cos over the
// quadrant-I portion of the named-angle table. namedAngles and
// arcTable are kept in the same angle order, so the n/d coefficient at
// a given index belongs to the tangent computed at that same index.
func ArcTan(value float64) (expr.Expression, bool) {
	neg := value < 0
	av := math.Abs(value)
	for i, na := range namedAngles {
		c := math.Cos(na.radians)
		if c == 0 {
			continue
		}
		tanVal := math.Sin(na.radians) / c
		if math.Abs(tanVal-av) > inverseTolerance || i >= len(arcTable) {
			continue
		}
		angle := piMultiple(arcTable[i].n, arcTable[i].d)
		if neg {
			angle = negate(angle)
		}
		return angle, true
	}
	return nil, false
}
