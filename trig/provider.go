package trig

import (
	"math"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/simplify"
)

// sinRule, cosRule and tanRule each try the constructible-values table
// first (exact radical/rational result), falling back to EvalGeneral's
// precision-dispatched numeric evaluation for a plain NumberExpr
// argument that isn't one of the ten named angles. A symbolic
// (non-numeric) argument is declined, left for a later evaluation pass
// once it resolves to a number.
type sinRule struct{}

func (sinRule) Apply(e expr.Expression) (expr.Expression, bool) {
	return tryTrig(e, FnSin)
}

type cosRule struct{}

func (cosRule) Apply(e expr.Expression) (expr.Expression, bool) {
	return tryTrig(e, FnCos)
}

type tanRule struct{}

func (tanRule) Apply(e expr.Expression) (expr.Expression, bool) {
	return tryTrig(e, FnTan)
}

func tryTrig(e expr.Expression, fn string) (expr.Expression, bool) {
	f, ok := e.(*expr.FunctionExpr)
	if !ok || f.Name.String() != fn || len(f.Args) != 1 {
		return nil, false
	}
	arg := f.Args[0]
	if radians, ok := angleRadians(arg); ok {
		reduced := ReduceAngle(radians)
		if sin, cos, ok := MatchConstructible(reduced); ok {
			switch fn {
			case FnSin:
				return sin, true
			case FnCos:
				return cos, true
			case FnTan:
				if cz, isNum := cos.(*expr.NumberExpr); isNum && cz.Val.IsZero() {
					return nil, false
				}
				return divide(sin, cos), true
			}
		}
	}
	return EvalGeneral(fn, arg)
}

type arcSinRule struct{}

func (arcSinRule) Apply(e expr.Expression) (expr.Expression, bool) {
	return tryArc(e, "ArcSin", ArcSin)
}

type arcCosRule struct{}

func (arcCosRule) Apply(e expr.Expression) (expr.Expression, bool) {
	return tryArc(e, "ArcCos", ArcCos)
}

type arcTanRule struct{}

func (arcTanRule) Apply(e expr.Expression) (expr.Expression, bool) {
	return tryArc(e, "ArcTan", ArcTan)
}

func tryArc(e expr.Expression, head string, lookup func(float64) (expr.Expression, bool)) (expr.Expression, bool) {
	f, ok := e.(*expr.FunctionExpr)
	if !ok || f.Name.String() != head || len(f.Args) != 1 {
		return nil, false
	}
	n, ok := f.Args[0].(*expr.NumberExpr)
	if !ok {
		return nil, false
	}
	value := n.Val.Float64()
	if angle, ok := lookup(value); ok {
		return angle, true
	}
	var out float64
	switch head {
	case "ArcSin":
		out = math.Asin(value)
	case "ArcCos":
		out = math.Acos(value)
	default:
		out = math.Atan(value)
	}
	return expr.NewNumber(numeric.Normalize(numeric.NewFloat(out))), true
}

// Provider implements simplify.RuleProvider for the six trig/inverse
// heads, wired the same way logic.Provider and rules.Provider register
// their heads: one entry per function name, looked up by the
// orchestrator's per-node head dispatch.
type Provider struct {
	byHead map[string][]simplify.Rule
}

func NewProvider() *Provider {
	p := &Provider{byHead: make(map[string][]simplify.Rule)}
	p.byHead[FnSin] = []simplify.Rule{sinRule{}}
	p.byHead[FnCos] = []simplify.Rule{cosRule{}}
	p.byHead[FnTan] = []simplify.Rule{tanRule{}}
	p.byHead["ArcSin"] = []simplify.Rule{arcSinRule{}}
	p.byHead["ArcCos"] = []simplify.Rule{arcCosRule{}}
	p.byHead["ArcTan"] = []simplify.Rule{arcTanRule{}}
	return p
}

func (p *Provider) RulesFor(head string) []simplify.Rule {
	return p.byHead[head]
}
