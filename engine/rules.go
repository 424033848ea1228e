package engine

import (
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/simplify"
)

// compositeProvider merges the default rule families (rules.Provider,
// logic.Provider, trig.Provider) with whatever a caller registers
// through defineFunction's rule-attaching form, implementing
// simplify.RuleProvider the same way each individual family does: one
// RulesFor(head) lookup, user rules tried before the defaults so a
// caller's own rewrite for a head wins ties (spec 4.6.8's "default
// simplification rules plus any user-provided rules").
type compositeProvider struct {
	defaults []simplify.RuleProvider
	user     map[string][]simplify.Rule
}

func newCompositeProvider(defaults ...simplify.RuleProvider) *compositeProvider {
	return &compositeProvider{defaults: defaults, user: make(map[string][]simplify.Rule)}
}

func (p *compositeProvider) RulesFor(head string) []simplify.Rule {
	out := append([]simplify.Rule(nil), p.user[head]...)
	for _, d := range p.defaults {
		out = append(out, d.RulesFor(head)...)
	}
	return out
}

// addUserRule registers a caller-supplied rule against head, used by
// defineFunction when a Definition carries a rewrite rule rather than
// (or in addition to) a plain value/Go implementation.
func (p *compositeProvider) addUserRule(head string, r pattern.Rule) {
	p.user[head] = append(p.user[head], r)
}
