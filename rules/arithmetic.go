package rules

import (
	"github.com/casengine/core/expr"
	"github.com/casengine/core/numeric"
)

// plusFold implements spec 4.6's Plus family: combine every numeric
// operand into one Number, then collect identical non-numeric terms by
// summing their coefficients, the generalization of the teacher's
// stdlib/math.go PlusExpr (which folds numeric operands only) to the
// like-term collection a simplifier needs once operands can themselves
// be Times(coefficient, factors...) nodes.
type plusFold struct{}

func (plusFold) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Plus" {
		return nil, false
	}
	return foldPlus(fn.Args)
}

type coefficientTerm struct {
	coeff numeric.Value
	base  expr.Expression
}

// splitCoefficient reads e as coefficient*base: a bare Number is
// coefficient with an implicit base of 1 (folded directly into the
// numeric accumulator by the caller), Times(Number, rest...) peels the
// leading numeric factor off, anything else is coefficient 1 over
// itself.
func splitCoefficient(e expr.Expression) (numeric.Value, expr.Expression) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Times" || len(fn.Args) == 0 {
		return numeric.NewInt(1), e
	}
	first, ok := num(fn.Args[0])
	if !ok {
		return numeric.NewInt(1), e
	}
	rest := fn.Args[1:]
	if len(rest) == 1 {
		return first.Val, rest[0]
	}
	return first.Val, expr.NewFunction(timesSym, rest...)
}

func foldPlus(args []expr.Expression) (expr.Expression, bool) {
	var numSum numeric.Value
	haveNum := false
	numCount := 0
	var terms []coefficientTerm
	mergedAny := false

	for _, a := range args {
		if n, ok := num(a); ok {
			numCount++
			if haveNum {
				numSum = numeric.Add(numSum, n.Val)
			} else {
				numSum, haveNum = n.Val, true
			}
			continue
		}
		coeff, base := splitCoefficient(a)
		placed := false
		for i := range terms {
			if expr.IsSame(terms[i].base, base) {
				terms[i].coeff = numeric.Add(terms[i].coeff, coeff)
				placed, mergedAny = true, true
				break
			}
		}
		if !placed {
			terms = append(terms, coefficientTerm{coeff: coeff, base: base})
		}
	}

	if numCount <= 1 && !mergedAny {
		return nil, false
	}

	out := make([]expr.Expression, 0, len(terms)+1)
	if haveNum && (!numSum.IsZero() || len(terms) == 0) {
		out = append(out, expr.NewNumber(numSum))
	}
	for _, t := range terms {
		if t.coeff.IsZero() {
			continue
		}
		if numeric.Eq(t.coeff, numeric.NewInt(1)) {
			out = append(out, t.base)
			continue
		}
		out = append(out, expr.NewFunction(timesSym, expr.NewNumber(t.coeff), t.base))
	}

	switch len(out) {
	case 0:
		return expr.NewNumber(numeric.NewInt(0)), true
	case 1:
		return out[0], true
	default:
		return expr.NewFunction(plusSym, out...), true
	}
}

// timesFold implements spec 4.6's Times family: combine every numeric
// operand into one Number, short-circuiting to 0 if that product is
// zero, mirroring the teacher's stdlib/math.go TimesExpr.
type timesFold struct{}

func (timesFold) Apply(e expr.Expression) (expr.Expression, bool) {
	fn, ok := e.(*expr.FunctionExpr)
	if !ok || fn.Name.String() != "Times" {
		return nil, false
	}
	return foldTimes(fn.Args)
}

func foldTimes(args []expr.Expression) (expr.Expression, bool) {
	var product numeric.Value
	haveNum := false
	numCount := 0
	var rest []expr.Expression

	for _, a := range args {
		if n, ok := num(a); ok {
			numCount++
			if haveNum {
				product = numeric.Mul(product, n.Val)
			} else {
				product, haveNum = n.Val, true
			}
			continue
		}
		rest = append(rest, a)
	}

	if numCount <= 1 {
		return nil, false
	}
	if haveNum && product.IsZero() {
		return expr.NewNumber(numeric.NewInt(0)), true
	}

	out := make([]expr.Expression, 0, len(rest)+1)
	if haveNum && !numeric.Eq(product, numeric.NewInt(1)) {
		out = append(out, expr.NewNumber(product))
	}
	out = append(out, rest...)

	switch len(out) {
	case 0:
		return expr.NewNumber(numeric.NewInt(1)), true
	case 1:
		return out[0], true
	default:
		return expr.NewFunction(timesSym, out...), true
	}
}
