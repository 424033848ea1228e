package domain

// IsSubdomainOf implements spec 4.2's partial order:
//   - literal-to-literal: via the ancestor table.
//   - constructor-to-literal: via the constructor's base literal
//     (FunctionOf sube Functions, ListOf sube Lists, etc).
//   - FunctionOf sub FunctionOf: covariant result, contravariant
//     parameters, with OptArg tail allowance and VarArg kleene-repeat.
//   - TupleOf sub TupleOf: pointwise subtype with equal length.
//   - Union sub X: every alternative must be a subdomain of X.
//   - X sub Intersection: X must be a subdomain of every member.
func IsSubdomainOf(a, b Domain) bool {
	if litA, ok := AsLiteral(a); ok {
		if litB, ok := AsLiteral(b); ok {
			// a sub b iff b is an ancestor-or-self of a.
			return isSubLiteral(litB, litA)
		}
	}
	switch bd := b.(type) {
	case UnionDomain:
		for _, alt := range bd.Alternatives {
			if IsSubdomainOf(a, alt) {
				return true
			}
		}
		return false
	case IntersectionDomain:
		for _, m := range bd.Members {
			if !IsSubdomainOf(a, m) {
				return false
			}
		}
		return true
	}
	if ud, ok := a.(UnionDomain); ok {
		for _, alt := range ud.Alternatives {
			if !IsSubdomainOf(alt, b) {
				return false
			}
		}
		return true
	}
	if id, ok := a.(IntersectionDomain); ok {
		for _, m := range id.Members {
			if IsSubdomainOf(m, b) {
				return true
			}
		}
		return false
	}

	switch av := a.(type) {
	case FunctionOfDomain:
		if litB, ok := AsLiteral(b); ok {
			return isSubLiteral(litB, Functions) || litB == Functions
		}
		bv, ok := b.(FunctionOfDomain)
		if !ok {
			return false
		}
		return isFunctionOfSubtype(av, bv)
	case ListOfDomain:
		if litB, ok := AsLiteral(b); ok {
			return litB == Lists || litB == Anything
		}
		bv, ok := b.(ListOfDomain)
		return ok && IsSubdomainOf(av.Elem, bv.Elem)
	case TupleOfDomain:
		if litB, ok := AsLiteral(b); ok {
			return litB == Tuples || litB == Anything
		}
		bv, ok := b.(TupleOfDomain)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !IsSubdomainOf(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case DictionaryOfDomain:
		if litB, ok := AsLiteral(b); ok {
			return litB == Dictionaries || litB == Anything
		}
		bv, ok := b.(DictionaryOfDomain)
		return ok && IsSubdomainOf(av.Value, bv.Value)
	case OptArgDomain:
		return IsSubdomainOf(av.Elem, b)
	case VarArgDomain:
		if bv, ok := b.(VarArgDomain); ok {
			return IsSubdomainOf(av.Elem, bv.Elem)
		}
		return IsSubdomainOf(av.Elem, b)
	case varianceDomain:
		return IsSubdomainOf(av.elem, b)
	}
	if litB, ok := AsLiteral(b); ok {
		return litB == Anything
	}
	return false
}

// isFunctionOfSubtype compares signatures: a sub b requires a's result
// to be a subdomain of b's result (covariant) and each of a's
// parameters to be a *super*-domain of the corresponding parameter of b
// (contravariant) -- a function accepting a wider type can be used
// wherever one accepting a narrower type is expected.
func isFunctionOfSubtype(a, b FunctionOfDomain) bool {
	if !IsSubdomainOf(a.Result, b.Result) {
		return false
	}
	ap, bp := expandVarArgs(a.Params, len(b.Params)), b.Params
	if len(ap) < len(bp) {
		// a may omit trailing OptArg parameters.
		for i := len(ap); i < len(bp); i++ {
			if _, ok := bp[i].(OptArgDomain); !ok {
				return false
			}
		}
		bp = bp[:len(ap)]
	}
	if len(ap) != len(bp) {
		return false
	}
	for i := range ap {
		// contravariant: b's parameter type must be a subdomain of a's.
		if !IsSubdomainOf(unwrapOpt(bp[i]), unwrapOpt(ap[i])) {
			return false
		}
	}
	return true
}

func unwrapOpt(d Domain) Domain {
	if o, ok := d.(OptArgDomain); ok {
		return o.Elem
	}
	if v, ok := d.(VarArgDomain); ok {
		return v.Elem
	}
	return d
}

// expandVarArgs repeats a trailing VarArg parameter out to length n so
// that fixed-arity comparison can proceed positionally.
func expandVarArgs(params []Domain, n int) []Domain {
	if len(params) == 0 {
		return params
	}
	last := params[len(params)-1]
	va, ok := last.(VarArgDomain)
	if !ok || n <= len(params) {
		return params
	}
	out := make([]Domain, 0, n)
	out = append(out, params[:len(params)-1]...)
	for len(out) < n {
		out = append(out, va)
	}
	return out
}

// Widen returns the most specific common ancestor of a and b, walking
// up the literal DAG (used when inferring a symbol's return type: more
// possibilities widen it, spec 4.4).
func Widen(a, b Domain) Domain {
	litA, okA := AsLiteral(a)
	litB, okB := AsLiteral(b)
	if !okA || !okB {
		if IsSubdomainOf(a, b) {
			return b
		}
		if IsSubdomainOf(b, a) {
			return a
		}
		return Lit(Anything)
	}
	chainA := Ancestors(litA)
	seen := make(map[Literal]bool, len(chainA))
	for _, l := range chainA {
		seen[l] = true
	}
	for _, l := range Ancestors(litB) {
		if seen[l] {
			return Lit(l)
		}
	}
	return Lit(Anything)
}

// Narrow returns the subtype of a and b if one contains the other, else
// Void (NothingDomain) -- used when inferring a parameter type: more
// information narrows a symbol's possibilities, spec 4.4.
func Narrow(a, b Domain) Domain {
	if IsSubdomainOf(a, b) {
		return a
	}
	if IsSubdomainOf(b, a) {
		return b
	}
	return Lit(NothingDomain)
}
