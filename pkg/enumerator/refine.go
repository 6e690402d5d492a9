package enumerator

import (
	"github.com/hriener/behemoth/pkg/grammar"
	"github.com/hriener/behemoth/pkg/term"
)

// Refine rewrites the nonterminal targeted by p inside e, returning
// the handles of every resulting term. When p is empty, e is itself
// the targeted nonterminal and the result is the replacement of every
// rule in g whose Match equals e. Otherwise the child at the head of
// p is refined recursively, and for every resulting child handle a
// new copy of e is interned with that position replaced — unchanged
// siblings are passed through by handle, maximizing sharing.
func Refine(a *term.Arena, g *grammar.Grammar, e term.Handle, p Path) []term.Handle {
	if len(p.Indices) == 0 {
		return g.MatchesOf(e)
	}

	index := p.Indices[0]
	rest := Path{Valid: true, Depth: p.Depth - 1, Indices: p.Indices[1:]}

	n := a.Get(e)
	candidates := Refine(a, g, n.Children[index], rest)

	results := make([]term.Handle, 0, len(candidates))
	for _, c := range candidates {
		newChildren := append([]term.Handle(nil), n.Children...)
		newChildren[index] = c
		results = append(results, a.Intern(n.Name, newChildren, n.Attr))
	}

	return results
}
