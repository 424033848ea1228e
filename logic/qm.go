package logic

import "github.com/casengine/core/expr"

// maxQMVars is spec 4.6.6's n <= 12 cap on Quine-McCluskey
// minimization (minterm/maxterm enumeration is 2^n, and the pairwise
// merge passes are quadratic in the term count on top of that).
const maxQMVars = 12

// Implicant is one prime implicant (or, read with the maxterm
// convention, prime implicate): Bits holds the literal polarities,
// Mask has a 1 bit wherever that variable position has been merged
// away (a don't-care), and Terms records every original minterm/
// maxterm index it covers.
type Implicant struct {
	Bits  int
	Mask  int
	Terms []int
}

// quineMcCluskey runs the classic pairwise-merge prime-implicant
// search over the given minterms (or maxterms, for the dual CNF
// construction), grounded on spec 4.6.6's "find prime implicants by
// pairwise-merge" description.
func quineMcCluskey(terms []int, n int) []Implicant {
	if len(terms) == 0 {
		return nil
	}
	current := make([]Implicant, len(terms))
	for i, m := range terms {
		current[i] = Implicant{Bits: m, Mask: 0, Terms: []int{m}}
	}
	var primes []Implicant
	for len(current) > 0 {
		used := make([]bool, len(current))
		seen := map[[2]int]bool{}
		var next []Implicant
		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				merged, ok := mergeImplicants(current[i], current[j])
				if !ok {
					continue
				}
				used[i], used[j] = true, true
				key := [2]int{merged.Bits, merged.Mask}
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, merged)
			}
		}
		for i, u := range used {
			if !u {
				primes = append(primes, current[i])
			}
		}
		current = next
	}
	return dedupImplicants(primes)
}

func mergeImplicants(a, b Implicant) (Implicant, bool) {
	if a.Mask != b.Mask {
		return Implicant{}, false
	}
	diff := a.Bits ^ b.Bits
	if diff == 0 || diff&(diff-1) != 0 {
		return Implicant{}, false
	}
	terms := append(append([]int{}, a.Terms...), b.Terms...)
	return Implicant{Bits: a.Bits &^ diff, Mask: a.Mask | diff, Terms: terms}, true
}

func dedupImplicants(in []Implicant) []Implicant {
	seen := map[[2]int]bool{}
	var out []Implicant
	for _, imp := range in {
		key := [2]int{imp.Bits, imp.Mask}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, imp)
	}
	return out
}

// essentialCover picks every prime implicant that is the sole cover of
// some term, then reports the terms still left uncovered.
func essentialCover(primes []Implicant, terms []int) ([]Implicant, []int) {
	coverCount := map[int]int{}
	coverBy := map[int]int{}
	for i, p := range primes {
		for _, t := range p.Terms {
			coverCount[t]++
			coverBy[t] = i
		}
	}
	essentialIdx := map[int]bool{}
	for t, c := range coverCount {
		if c == 1 {
			essentialIdx[coverBy[t]] = true
		}
	}
	var essential []Implicant
	covered := map[int]bool{}
	for idx := range essentialIdx {
		essential = append(essential, primes[idx])
		for _, t := range primes[idx].Terms {
			covered[t] = true
		}
	}
	var remaining []int
	for _, t := range terms {
		if !covered[t] {
			remaining = append(remaining, t)
		}
	}
	return essential, remaining
}

// greedyCover picks, one at a time, the prime implicant covering the
// most still-uncovered terms until remaining is exhausted — spec
// 4.6.6's "then a greedy cover of the remainder".
func greedyCover(primes []Implicant, remaining []int) []Implicant {
	left := map[int]bool{}
	for _, t := range remaining {
		left[t] = true
	}
	var chosen []Implicant
	for len(left) > 0 {
		bestIdx, bestCount := -1, 0
		for i, p := range primes {
			count := 0
			for _, t := range p.Terms {
				if left[t] {
					count++
				}
			}
			if count > bestCount {
				bestCount, bestIdx = count, i
			}
		}
		if bestIdx == -1 {
			break
		}
		chosen = append(chosen, primes[bestIdx])
		for _, t := range primes[bestIdx].Terms {
			delete(left, t)
		}
	}
	return chosen
}

// implicantToExpr renders a DNF implicant as an And of literals
// (positive for a 1 bit, Not for a 0 bit, skipping don't-care
// positions).
func implicantToExpr(imp Implicant, vars []string) expr.Expression {
	var lits []expr.Expression
	for i, v := range vars {
		if imp.Mask&(1<<uint(i)) != 0 {
			continue
		}
		sym := expr.NewSymbol(v)
		if imp.Bits&(1<<uint(i)) != 0 {
			lits = append(lits, sym)
		} else {
			lits = append(lits, expr.NewFunction(notSym, sym))
		}
	}
	if len(lits) == 0 {
		return True()
	}
	if len(lits) == 1 {
		return lits[0]
	}
	return expr.NewFunction(andSym, lits...)
}

// implicateToExpr renders a CNF implicate (built from maxterms) as an
// Or of literals, the dual polarity convention of implicantToExpr.
func implicateToExpr(imp Implicant, vars []string) expr.Expression {
	var lits []expr.Expression
	for i, v := range vars {
		if imp.Mask&(1<<uint(i)) != 0 {
			continue
		}
		sym := expr.NewSymbol(v)
		if imp.Bits&(1<<uint(i)) != 0 {
			lits = append(lits, expr.NewFunction(notSym, sym))
		} else {
			lits = append(lits, sym)
		}
	}
	if len(lits) == 0 {
		return False()
	}
	if len(lits) == 1 {
		return lits[0]
	}
	return expr.NewFunction(orSym, lits...)
}

// PrimeImplicants returns e's DNF prime implicants for n <= 12
// variables.
func PrimeImplicants(e expr.Expression) ([]expr.Expression, bool) {
	vars := Variables(e)
	if len(vars) > maxQMVars {
		return nil, false
	}
	minterms := mintermsOf(e, vars)
	if minterms == nil {
		return nil, false
	}
	primes := quineMcCluskey(minterms, len(vars))
	out := make([]expr.Expression, len(primes))
	for i, p := range primes {
		out[i] = implicantToExpr(p, vars)
	}
	return out, true
}

// PrimeImplicates returns e's CNF prime implicates (the maxterm dual
// of PrimeImplicants) for n <= 12 variables.
func PrimeImplicates(e expr.Expression) ([]expr.Expression, bool) {
	vars := Variables(e)
	if len(vars) > maxQMVars {
		return nil, false
	}
	maxterms := maxtermsOf(e, vars)
	if maxterms == nil {
		return nil, false
	}
	primes := quineMcCluskey(maxterms, len(vars))
	out := make([]expr.Expression, len(primes))
	for i, p := range primes {
		out[i] = implicateToExpr(p, vars)
	}
	return out, true
}

// MinimalDNF returns e rewritten as a minimal sum-of-products: the
// essential prime implicants plus a greedy cover of whatever minterms
// they leave uncovered.
func MinimalDNF(e expr.Expression) (expr.Expression, bool) {
	vars := Variables(e)
	if len(vars) > maxQMVars {
		return nil, false
	}
	minterms := mintermsOf(e, vars)
	if minterms == nil {
		return nil, false
	}
	if len(minterms) == 0 {
		return False(), true
	}
	if len(minterms) == 1<<uint(len(vars)) {
		return True(), true
	}
	primes := quineMcCluskey(minterms, len(vars))
	essential, remaining := essentialCover(primes, minterms)
	chosen := append(essential, greedyCover(primes, remaining)...)
	terms := make([]expr.Expression, len(chosen))
	for i, c := range chosen {
		terms[i] = implicantToExpr(c, vars)
	}
	if len(terms) == 1 {
		return terms[0], true
	}
	return expr.NewFunction(orSym, terms...), true
}

// MinimalCNF is MinimalDNF's product-of-sums dual, built from maxterms
// and rendered via implicateToExpr.
func MinimalCNF(e expr.Expression) (expr.Expression, bool) {
	vars := Variables(e)
	if len(vars) > maxQMVars {
		return nil, false
	}
	maxterms := maxtermsOf(e, vars)
	if maxterms == nil {
		return nil, false
	}
	if len(maxterms) == 0 {
		return True(), true
	}
	if len(maxterms) == 1<<uint(len(vars)) {
		return False(), true
	}
	primes := quineMcCluskey(maxterms, len(vars))
	essential, remaining := essentialCover(primes, maxterms)
	chosen := append(essential, greedyCover(primes, remaining)...)
	clauses := make([]expr.Expression, len(chosen))
	for i, c := range chosen {
		clauses[i] = implicateToExpr(c, vars)
	}
	if len(clauses) == 1 {
		return clauses[0], true
	}
	return expr.NewFunction(andSym, clauses...), true
}
