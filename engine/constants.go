package engine

import (
	"math"
	"math/big"

	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
	"github.com/casengine/core/trig"
)

// Pi returns the numeric value of pi at the engine's configured
// precision, cached until the next SetPrecision call (spec 5's
// "Precision changes" rule, spec 8's "Precision change invalidates
// cached Pi, ExponentialE"). Machine precision (Config.Precision == 0)
// uses math.Pi directly; any other precision computes via package
// trig's bignum series.
func (e *ComputeEngine) Pi() expr.Expression {
	mustEngine(e)
	if v, ok := e.constants.values["Pi"]; ok {
		return v.(expr.Expression)
	}
	var out expr.Expression
	if e.Config.Precision == 0 {
		out = expr.NewNumber(numeric.NewFloat(math.Pi))
	} else {
		bits := uint(float64(e.Config.Precision)*3.322) + 8
		out = expr.NewNumber(numeric.NewBigFloat(trig.BigPi(bits), e.Config.Precision))
	}
	e.constants.values["Pi"] = out
	return out
}

// ExponentialE returns the numeric value of e at the engine's
// configured precision, cached the same way Pi is. At non-machine
// precision it sums the Maclaurin series sum(1/n!) directly on
// *big.Float, the same from-scratch approach package trig uses for
// its own bignum series (math/big has no transcendental constants).
func (e *ComputeEngine) ExponentialE() expr.Expression {
	mustEngine(e)
	if v, ok := e.constants.values["ExponentialE"]; ok {
		return v.(expr.Expression)
	}
	var out expr.Expression
	if e.Config.Precision == 0 {
		out = expr.NewNumber(numeric.NewFloat(math.E))
	} else {
		bits := uint(float64(e.Config.Precision)*3.322) + 8
		out = expr.NewNumber(numeric.NewBigFloat(bigE(bits), e.Config.Precision))
	}
	e.constants.values["ExponentialE"] = out
	return out
}

const eSeriesTerms = 40

func bigE(prec uint) *big.Float {
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	for n := int64(1); n < eSeriesTerms; n++ {
		term.Quo(term, big.NewFloat(float64(n)))
		sum.Add(sum, term)
	}
	return sum
}
