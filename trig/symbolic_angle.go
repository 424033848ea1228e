package trig

import (
	"math"

	"github.com/casengine/core/expr"
)

// piCoefficient recognizes e as a symbolic multiple of pi — Pi itself,
// Times(coefficient..., Pi), or Divide(Pi, n)/Divide(Times(...), n) —
// and returns that multiple as a float64 coefficient c such that e
// represents c*pi radians. This lets Sin/Cos/Tan match the
// constructible-values table against the symbolic angles a user
// actually writes (Divide(Pi, 6)) rather than only a pre-evaluated
// float argument.
func piCoefficient(e expr.Expression) (float64, bool) {
	switch x := e.(type) {
	case *expr.SymbolExpr:
		if x.Name == piSym {
			return 1, true
		}
		return 0, false
	case *expr.NumberExpr:
		return 0, false
	case *expr.FunctionExpr:
		switch x.Name.String() {
		case "Times":
			coeff := 1.0
			sawPi := false
			for _, a := range x.Args {
				if s, ok := a.(*expr.SymbolExpr); ok && s.Name == piSym {
					if sawPi {
						return 0, false
					}
					sawPi = true
					continue
				}
				n, ok := a.(*expr.NumberExpr)
				if !ok {
					return 0, false
				}
				coeff *= n.Val.Float64()
			}
			if !sawPi {
				return 0, false
			}
			return coeff, true
		case "Divide":
			if len(x.Args) != 2 {
				return 0, false
			}
			num, denom := x.Args[0], x.Args[1]
			d, ok := denom.(*expr.NumberExpr)
			if !ok {
				return 0, false
			}
			c, ok := piCoefficient(num)
			if !ok {
				return 0, false
			}
			return c / d.Val.Float64(), true
		}
	}
	return 0, false
}

// angleRadians extracts a radian measure from e, whichever form it
// takes: a plain boxed number, or a symbolic pi-multiple recognized by
// piCoefficient.
func angleRadians(e expr.Expression) (float64, bool) {
	if n, ok := e.(*expr.NumberExpr); ok {
		return n.Val.Float64(), true
	}
	if c, ok := piCoefficient(e); ok {
		return c * math.Pi, true
	}
	return 0, false
}
