package pattern

import "github.com/casengine/core/expr"

// Match attempts to match p against e, returning the accumulated
// variable bindings on success. tc may be nil, in which case every
// Blank/Seq/NullSeq constraint is treated as satisfied (use this when
// constraints are checked by a caller some other way).
func Match(p Pattern, e expr.Expression, tc TypeCheck) (Bindings, bool) {
	if tc == nil {
		tc = defaultTypeCheck
	}
	b := make(Bindings)
	if matchInto(p, e, tc, b) {
		return b, true
	}
	return nil, false
}

func matchInto(p Pattern, e expr.Expression, tc TypeCheck, b Bindings) bool {
	switch v := p.(type) {
	case Lit:
		return expr.IsSame(v.Expr, e)
	case Blank:
		return tc(e, v.Constraint)
	case Seq, NullSeq:
		// A bare Seq/NullSeq outside of a Head's argument list matches
		// a single expression the same as Blank; their sequence-eating
		// behavior only applies positionally inside matchArgs.
		constraint := ""
		if s, ok := p.(Seq); ok {
			constraint = s.Constraint
		}
		if n, ok := p.(NullSeq); ok {
			constraint = n.Constraint
		}
		return tc(e, constraint)
	case Named:
		if !matchInto(v.Inner, e, tc, b) {
			return false
		}
		if existing, ok := b[v.Name]; ok {
			return expr.IsSame(existing, e)
		}
		b[v.Name] = e
		return true
	case Head:
		fn, ok := e.(*expr.FunctionExpr)
		if !ok || fn.Name.String() != v.HeadName {
			return false
		}
		return matchArgs(v.Args, fn.Args, tc, b)
	default:
		return false
	}
}

// matchArgs matches a pattern argument list against actual arguments,
// allowing at most one Seq/NullSeq (possibly wrapped in Named) to
// absorb a contiguous run of the actual arguments. This covers the
// common rule-family shapes (spec 5's Blank/BlankSequence patterns
// used in Power/Abs/Divide/etc. rules) without needing full
// backtracking search across multiple sequence wildcards.
func matchArgs(pats []Pattern, args []expr.Expression, tc TypeCheck, b Bindings) bool {
	seqIdx := -1
	for i, p := range pats {
		if isSequencePattern(p) {
			seqIdx = i
			break
		}
	}
	if seqIdx == -1 {
		if len(pats) != len(args) {
			return false
		}
		for i := range pats {
			if !matchInto(pats[i], args[i], tc, b) {
				return false
			}
		}
		return true
	}

	before := pats[:seqIdx]
	after := pats[seqIdx+1:]
	if len(before)+len(after) > len(args) {
		return false
	}
	for i, p := range before {
		if !matchInto(p, args[i], tc, b) {
			return false
		}
	}
	tailStart := len(args) - len(after)
	for i, p := range after {
		if !matchInto(p, args[tailStart+i], tc, b) {
			return false
		}
	}

	run := args[len(before):tailStart]
	seqPat := pats[seqIdx]
	name, inner := unwrapNamed(seqPat)
	if _, isNull := inner.(NullSeq); !isNull && len(run) == 0 {
		return false
	}
	constraint := sequenceConstraint(inner)
	for _, a := range run {
		if !tc(a, constraint) {
			return false
		}
	}
	if name != "" {
		b[name] = expr.NewVector(run...)
	}
	return true
}

func isSequencePattern(p Pattern) bool {
	_, inner := unwrapNamed(p)
	switch inner.(type) {
	case Seq, NullSeq:
		return true
	default:
		return false
	}
}

func unwrapNamed(p Pattern) (string, Pattern) {
	if n, ok := p.(Named); ok {
		return n.Name, n.Inner
	}
	return "", p
}

func sequenceConstraint(p Pattern) string {
	switch v := p.(type) {
	case Seq:
		return v.Constraint
	case NullSeq:
		return v.Constraint
	default:
		return ""
	}
}
