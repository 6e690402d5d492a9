package enumerator

import "github.com/hriener/behemoth/pkg/term"

// IsRedundant returns true when h is provably equivalent, under the
// declared operator attributes, to a term that is or will be
// considered elsewhere in the search. False positives must not
// occur; false negatives are acceptable, since duplicates not caught
// here are still caught — if at all — by the arena's structural
// hashing downstream (spec.md §4.5).
func IsRedundant(a *term.Arena, h term.Handle) bool {
	if hasDoubleApplication(a, h) {
		return true
	}

	n := a.Get(h)
	if n.IsNonterminal() || len(n.Children) != 2 || !n.Attr.Has(term.Commutative) {
		return false
	}

	left, right := n.Children[0], n.Children[1]
	if a.CountNonterminals(left) != 0 || a.CountNonterminals(right) != 0 {
		return false
	}

	return left > right
}

// hasDoubleApplication scans the whole subtree rooted at h for a
// NoDoubleApplication operator directly nesting itself. Since
// attributes are a property of a symbol's name (spec.md §3), nesting
// is detected by comparing names rather than re-deriving attributes.
func hasDoubleApplication(a *term.Arena, h term.Handle) bool {
	n := a.Get(h)

	if !n.IsNonterminal() && n.Attr.Has(term.NoDoubleApplication) {
		for _, c := range n.Children {
			child := a.Get(c)
			if !child.IsNonterminal() && child.Name == n.Name {
				return true
			}
		}
	}

	for _, c := range n.Children {
		if hasDoubleApplication(a, c) {
			return true
		}
	}

	return false
}
