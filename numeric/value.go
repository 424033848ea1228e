// Package numeric implements the unified NumericValue tower: machine
// integers/floats, arbitrary-precision integers and rationals (backed by
// math/big, the same tier the teacher repo's core/bigint.go and
// core/rational.go wrap), and complex values built from a pair of real
// tiers. Every binary operation promotes its operands to a common tier
// before computing, following the machine -> rational -> bignum ->
// complex order from spec section 4.3.
package numeric

// Kind identifies which tier of the numeric tower a Value occupies.
type Kind int

const (
	KindInt Kind = iota
	KindBigInt
	KindRational
	KindFloat
	KindBigFloat
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindBigInt:
		return "BigInt"
	case KindRational:
		return "Rational"
	case KindFloat:
		return "Float"
	case KindBigFloat:
		return "BigFloat"
	case KindComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// Value is the common interface implemented by every numeric tier.
// Operations never mutate the receiver; they return a new Value.
type Value interface {
	Kind() Kind
	String() string

	Sign() int
	IsZero() bool
	Neg() Value

	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value
	// Div returns (nil, false) on division by zero; the caller
	// (the expr/Divide rule family) is responsible for turning that
	// into an inline Error("division-by-zero") expression.
	Div(Value) (Value, bool)
	Pow(Value) Value
	Sqrt() Value

	Eq(Value) bool
	Less(Value) bool
	// IsZeroWithTolerance treats |value| <= eps as zero; used by
	// isEqual's numeric fallback (spec 4.1).
	IsZeroWithTolerance(eps float64) bool

	Float64() float64
	IsInt() bool
	IsRational() bool
	IsReal() bool
	IsComplex() bool
	// Finite reports whether the value is a finite number (not NaN or
	// an infinity sentinel managed at the expr layer).
	Finite() bool
}

// rank gives the promotion order: higher rank wins a mixed-tier op.
func rank(v Value) int {
	switch v.Kind() {
	case KindInt:
		return 0
	case KindBigInt:
		return 1
	case KindRational:
		return 2
	case KindFloat:
		return 3
	case KindBigFloat:
		return 4
	case KindComplex:
		return 5
	default:
		return 0
	}
}

// promote converts a and b to the higher-ranked of their two tiers.
func promote(a, b Value) (Value, Value) {
	ra, rb := rank(a), rank(b)
	if ra == rb {
		return a, b
	}
	if ra < rb {
		return upcast(a, rb), b
	}
	return a, upcast(b, ra)
}

// upcast converts v to the tier identified by targetRank.
func upcast(v Value, targetRank int) Value {
	for rank(v) < targetRank {
		switch v.Kind() {
		case KindInt:
			v = v.(Int).toBigInt()
		case KindBigInt:
			v = v.(BigInt).toRational()
		case KindRational:
			v = v.(Rational).toFloat()
		case KindFloat:
			v = v.(Float).toBigFloat()
		case KindBigFloat:
			v = v.(BigFloat).toComplex()
		default:
			return v
		}
	}
	return v
}

// Add promotes both operands to a common tier and dispatches.
func Add(a, b Value) Value { x, y := promote(a, b); return x.Add(y) }
func Sub(a, b Value) Value { x, y := promote(a, b); return x.Sub(y) }
func Mul(a, b Value) Value { x, y := promote(a, b); return x.Mul(y) }
func Div(a, b Value) (Value, bool) {
	x, y := promote(a, b)
	return x.Div(y)
}
func Pow(a, b Value) Value { x, y := promote(a, b); return x.Pow(y) }
func Eq(a, b Value) bool   { x, y := promote(a, b); return x.Eq(y) }

// Normalize shrinks a Value constructed directly at a tier (e.g.
// NewBigInt, NewRational) down to the lowest tier that represents it
// exactly, the same shrink-on-read discipline every arithmetic op
// already applies internally (BigInt.Add etc. call tryShrink before
// returning). Callers that build a Value outside of an Add/Sub/Mul
// chain — a rule family folding a bignum factorial result, say —
// should run it through Normalize so isSame comparisons against a
// naturally-produced Int/BigInt aren't defeated by a Kind mismatch.
func Normalize(v Value) Value {
	switch x := v.(type) {
	case BigInt:
		return x.tryShrink()
	case Rational:
		return x.normalize()
	default:
		return v
	}
}
func Less(a, b Value) bool { x, y := promote(a, b); return x.Less(y) }
