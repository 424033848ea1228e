package rules

import (
	"github.com/casengine/core/pattern"
	"github.com/casengine/core/simplify"
)

// Provider implements simplify.RuleProvider, the central
// operator -> rule-family dispatch table of spec 4.6.8.
type Provider struct {
	byHead map[string][]pattern.Rule
	extra  map[string][]simplify.Rule
}

// NewProvider builds the default dispatch table: every essential rule
// family wired to the operator heads it rewrites. Plus/Times fold via
// extra, a plain Go Apply implementation, rather than byHead's
// pattern.Rule matcher: their arity is unbounded once Flat has merged
// nested calls, and pattern.Head matches a fixed argument count.
func NewProvider() *Provider {
	p := &Provider{byHead: make(map[string][]pattern.Rule), extra: make(map[string][]simplify.Rule)}
	// InfinityRules go ahead of the Power/Divide families so an infinite
	// operand is folded before the generic x^0 and a/a rules see it.
	p.add("Power", InfinityRules())
	p.add("Divide", InfinityRules())
	p.add("Exp", InfinityRules())
	p.add("Power", PowerRules())
	p.add("Abs", AbsRules())
	for head := range evenFunctions {
		p.add(head, AbsRules()) // Abs:EvenFunctionArgument rewrites f(Abs(x))
	}
	p.add("Divide", DivideRules())
	p.add("Times", InfinityRules())
	p.add("Binomial", FactorialRules())
	p.add("Gamma", FactorialRules())
	p.add("Factorial2", FactorialRules())
	p.addExtra("Plus", plusFold{})
	p.addExtra("Times", timesFold{})
	return p
}

func (p *Provider) add(head string, rs []pattern.Rule) {
	p.byHead[head] = append(p.byHead[head], rs...)
}

func (p *Provider) addExtra(head string, r simplify.Rule) {
	p.extra[head] = append(p.extra[head], r)
}

// RulesFor returns the rules registered against head, boxed as
// simplify.Rule (the Apply-only interface the orchestrator needs).
// pattern.Rule already implements that interface, so this is a plain
// slice-of-interface conversion; extra rules are already simplify.Rule
// and are tried first so a numeric/like-term fold runs before the
// narrower pattern rules (e.g. InfinityRules' Times handling).
func (p *Provider) RulesFor(head string) []simplify.Rule {
	rs := p.byHead[head]
	out := make([]simplify.Rule, 0, len(rs)+len(p.extra[head]))
	out = append(out, p.extra[head]...)
	for _, r := range rs {
		out = append(out, r)
	}
	return out
}
