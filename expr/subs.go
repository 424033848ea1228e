package expr

// Transform rewrites a single node, returning the replacement and
// whether a replacement occurred. Map applies it bottom-up.
type Transform func(Expression) (Expression, bool)

// Map applies fn to every subexpression of e bottom-up (children
// first, then the node itself), rebuilding Function/Tensor/Dictionary
// nodes only where a child actually changed so that unaffected
// subtrees are shared rather than copied. The result is left
// un-canonicalized; callers that need a canonical result must run it
// back through the engine.
func Map(e Expression, fn Transform) Expression {
	switch v := e.(type) {
	case *FunctionExpr:
		changed := false
		newArgs := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			na := Map(a, fn)
			newArgs[i] = na
			if na != a {
				changed = true
			}
		}
		cur := Expression(v)
		if changed {
			cur = v.WithArgs(newArgs)
		}
		if out, ok := fn(cur); ok {
			return out
		}
		return cur
	case *TensorExpr:
		changed := false
		newElems := make([]Expression, len(v.Elems))
		for i, el := range v.Elems {
			ne := Map(el, fn)
			newElems[i] = ne
			if ne != el {
				changed = true
			}
		}
		cur := Expression(v)
		if changed {
			cur = &TensorExpr{Elems: newElems, meta: v.meta}
		}
		if out, ok := fn(cur); ok {
			return out
		}
		return cur
	case *DictionaryExpr:
		changed := false
		newVals := make(map[string]Expression, len(v.values))
		for k, val := range v.values {
			nv := Map(val, fn)
			newVals[k] = nv
			if nv != val {
				changed = true
			}
		}
		cur := Expression(v)
		if changed {
			cur = &DictionaryExpr{order: v.order, values: newVals, meta: v.meta}
		}
		if out, ok := fn(cur); ok {
			return out
		}
		return cur
	default:
		if out, ok := fn(e); ok {
			return out
		}
		return e
	}
}

// Subs performs capture-avoiding-free substitution of one or more
// symbol bindings (spec 3.5): every SymbolExpr whose name matches a
// key in bindings is replaced by its bound Expression. Because this
// module has no binder/lambda construct of its own (Hold* attributes
// control evaluation, not variable scope), there is no capture to
// avoid — substitution is a plain structural replacement.
func Subs(e Expression, bindings map[string]Expression) Expression {
	return Map(e, func(node Expression) (Expression, bool) {
		sym, ok := node.(*SymbolExpr)
		if !ok {
			return nil, false
		}
		repl, ok := bindings[sym.Name.String()]
		return repl, ok
	})
}
