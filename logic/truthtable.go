package logic

import "github.com/casengine/core/expr"

// maxSatVars/maxTableVars are spec 4.6.6's enumeration caps: above
// these variable counts, satisfiability/tautology checks and full
// truth-table materialization give up and report undetermined rather
// than enumerating an intractable number of assignments.
const (
	maxSatVars   = 20
	maxTableVars = 10
)

// Assignment binds variable names to boolean values for one row of a
// truth table or one quantifier iteration.
type Assignment map[string]bool

// Evaluate substitutes assignment into e and reduces it with the same
// And/Or/Not/Implies/.../Xor rewrites the simplifier's rule families
// apply, returning (value, true) once every subexpression collapses to
// True/False, or (false, false) if some part of the tree remains
// symbolic (an unbound variable, or a non-boolean function this
// package doesn't know how to reduce).
func Evaluate(e expr.Expression, a Assignment) (bool, bool) {
	v := evalBool(e, a)
	if IsTrue(v) {
		return true, true
	}
	if IsFalse(v) {
		return false, true
	}
	return false, false
}

func evalBool(e expr.Expression, a Assignment) expr.Expression {
	switch x := e.(type) {
	case *expr.SymbolExpr:
		if x.Name == trueSym || x.Name == falseSym {
			return x
		}
		if v, ok := a[x.Name.String()]; ok {
			return fromBool(v)
		}
		return x
	case *expr.FunctionExpr:
		args := make([]expr.Expression, len(x.Args))
		for i, c := range x.Args {
			args[i] = evalBool(c, a)
		}
		switch x.Name.String() {
		case "Not":
			if len(args) == 1 {
				if out, ok := reduceNot(args[0]); ok {
					return out
				}
				return expr.NewFunction(notSym, args[0])
			}
		case "And":
			if out, ok := reduceAnd(args); ok {
				return out
			}
			return expr.NewFunction(andSym, args...)
		case "Or":
			if out, ok := reduceOr(args); ok {
				return out
			}
			return expr.NewFunction(orSym, args...)
		case "Xor":
			if out, ok := reduceXor(args); ok {
				return out
			}
			return expr.NewFunction(xorSym, args...)
		case "Implies":
			if len(args) == 2 {
				return evalBool(reduceImplies(args[0], args[1]), a)
			}
		case "Equivalent":
			if len(args) == 2 {
				return evalBool(reduceEquivalent(args[0], args[1]), a)
			}
		case "Nand":
			return evalBool(reduceNand(args), a)
		case "Nor":
			return evalBool(reduceNor(args), a)
		}
		return expr.NewFunction(x.Name, args...)
	default:
		return e
	}
}

// assignmentFor builds the assignment for enumeration index mask over
// vars, bit i of mask selecting vars[i]'s value.
func assignmentFor(vars []string, mask int) Assignment {
	a := make(Assignment, len(vars))
	for i, v := range vars {
		a[v] = mask&(1<<uint(i)) != 0
	}
	return a
}

// Row is one line of a materialized truth table.
type Row struct {
	Assignment Assignment
	Value      bool
}

// TruthTable materializes every assignment of e's variables, subject
// to maxTableVars; ok is false if the cap is exceeded or the
// expression doesn't reduce to a boolean for every assignment.
func TruthTable(e expr.Expression) ([]Row, bool) {
	vars := Variables(e)
	if len(vars) > maxTableVars {
		return nil, false
	}
	n := 1 << uint(len(vars))
	rows := make([]Row, 0, n)
	for mask := 0; mask < n; mask++ {
		a := assignmentFor(vars, mask)
		val, ok := Evaluate(e, a)
		if !ok {
			return nil, false
		}
		rows = append(rows, Row{Assignment: a, Value: val})
	}
	return rows, true
}

// IsTautology reports whether e evaluates True under every assignment
// of its variables, subject to maxSatVars.
func IsTautology(e expr.Expression) (bool, bool) {
	vars := Variables(e)
	if len(vars) > maxSatVars {
		return false, false
	}
	n := 1 << uint(len(vars))
	for mask := 0; mask < n; mask++ {
		val, ok := Evaluate(e, assignmentFor(vars, mask))
		if !ok {
			return false, false
		}
		if !val {
			return false, true
		}
	}
	return true, true
}

// IsSatisfiable reports whether some assignment of e's variables makes
// it True, subject to maxSatVars.
func IsSatisfiable(e expr.Expression) (bool, bool) {
	vars := Variables(e)
	if len(vars) > maxSatVars {
		return false, false
	}
	n := 1 << uint(len(vars))
	for mask := 0; mask < n; mask++ {
		val, ok := Evaluate(e, assignmentFor(vars, mask))
		if !ok {
			return false, false
		}
		if val {
			return true, true
		}
	}
	return false, true
}

// mintermsOf returns the bitmask indices where e is True across every
// assignment of vars, or nil if any assignment doesn't reduce to a
// boolean.
func mintermsOf(e expr.Expression, vars []string) []int {
	n := 1 << uint(len(vars))
	out := []int{}
	for mask := 0; mask < n; mask++ {
		val, ok := Evaluate(e, assignmentFor(vars, mask))
		if !ok {
			return nil
		}
		if val {
			out = append(out, mask)
		}
	}
	return out
}

func maxtermsOf(e expr.Expression, vars []string) []int {
	n := 1 << uint(len(vars))
	out := []int{}
	for mask := 0; mask < n; mask++ {
		val, ok := Evaluate(e, assignmentFor(vars, mask))
		if !ok {
			return nil
		}
		if !val {
			out = append(out, mask)
		}
	}
	return out
}
