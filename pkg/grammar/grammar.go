// Package grammar declares the production rules an enumerator rewrites
// against. A grammar is nothing more than an ordered list of
// (match, replace) handle pairs — all of the real work happens in
// pkg/term (node storage) and pkg/enumerator (the rewrite itself).
package grammar

import "github.com/hriener/behemoth/pkg/term"

// Rule rewrites one occurrence of Match, a nonterminal handle, into
// Replace, which may itself contain nonterminals.
type Rule struct {
	Match   term.Handle
	Replace term.Handle
}

// Grammar is an ordered sequence of rules. The order is observable:
// refinement emits successors in this declaration order (spec.md
// §4.3), before the frontier reorders them by cost. Multiple rules
// may share a Match; there is no uniqueness requirement.
type Grammar struct {
	Rules []Rule
}

// New returns an empty grammar, ready to have rules appended.
func New() *Grammar {
	return &Grammar{}
}

// Add appends a rule rewriting match into replace, in declaration
// order.
func (g *Grammar) Add(match, replace term.Handle) {
	g.Rules = append(g.Rules, Rule{Match: match, Replace: replace})
}

// MatchesOf returns, in declaration order, the replacement handle of
// every rule whose Match equals e.
func (g *Grammar) MatchesOf(e term.Handle) []term.Handle {
	var out []term.Handle
	for _, r := range g.Rules {
		if r.Match == e {
			out = append(out, r.Replace)
		}
	}
	return out
}
