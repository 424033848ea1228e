package engine

import "github.com/casengine/core/scope"

// seedDefaultAttributes installs the standard operator attributes
// (spec 4.5's Flat/Orderless/OneIdentity) on the commutative/
// associative heads the default rule families assume are already
// flattened and sorted by the time they run: Plus/Times arithmetic
// folding (rules.plusFold/timesFold) and And/Or's commutative equality
// handler both rely on Canonicalize having merged nested calls and put
// operands in a canonical order first.
func seedDefaultAttributes(sc *scope.Scope) {
	flatOrderless := []scope.Attribute{scope.Flat, scope.Orderless, scope.OneIdentity}
	for _, head := range []string{"Plus", "Times", "And", "Or"} {
		sc.DefineOperator(head, &scope.OperatorDefinition{Attributes: flatOrderless})
	}
}
