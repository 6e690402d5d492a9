package enumerator

import "github.com/hriener/behemoth/pkg/term"

// Path identifies the nonterminal an enumerator should refine next: a
// sequence of child indices descending from the root, and the depth
// (its length) at which the target lies. A zero-value Path is
// invalid — the term it was computed for is concrete.
type Path struct {
	Indices []int
	Depth   int
	Valid   bool
}

// PathToNextNonterminal computes the refinement path for h: among all
// nonterminals in the term, it selects one of minimum depth, breaking
// ties by scanning children in increasing index order and keeping the
// first one that is strictly better than the best seen so far
// (spec.md §4.3's tie-break rule, comparing by depth only). The
// comparison is against the child's depth once incremented for this
// level, not its raw depth, so that an equal-depth later sibling does
// not overwrite an equal-depth earlier one — ties go to the lowest
// index.
//
// A leaf terminal returns an invalid path. A nonterminal node (one
// whose name begins with '_') returns a zero-length path at depth 0 —
// refinement targets that node itself.
func PathToNextNonterminal(a *term.Arena, h term.Handle) Path {
	n := a.Get(h)

	if n.IsNonterminal() {
		return Path{Valid: true, Depth: 0}
	}

	if n.IsLeaf() {
		return Path{}
	}

	var best Path
	for i, c := range n.Children {
		p := PathToNextNonterminal(a, c)
		if !p.Valid {
			continue
		}
		if !best.Valid || p.Depth+1 < best.Depth {
			indices := make([]int, 0, len(p.Indices)+1)
			indices = append(indices, i)
			indices = append(indices, p.Indices...)
			best = Path{Valid: true, Depth: p.Depth + 1, Indices: indices}
		}
	}

	return best
}

// IsConcrete reports whether h has no nonterminal left to refine, by
// way of the same path selection used for refinement itself — kept
// distinct from (term.Arena).IsConcrete so the two independent
// definitions of "concrete" can be checked against each other in
// tests, per spec.md §8.
func IsConcrete(a *term.Arena, h term.Handle) bool {
	return !PathToNextNonterminal(a, h).Valid
}
