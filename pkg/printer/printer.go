// Package printer stringifies terms held in a term.Arena. The core
// enumerator never prints anything itself (spec.md §4.7); every
// printer here is an external collaborator that only reads arena
// accessors.
package printer

import (
	"strings"

	"github.com/hriener/behemoth/pkg/term"
)

// Printer renders the term at h as a string.
type Printer interface {
	AsString(h term.Handle) string
}

// Default renders a node as name(child0,child1,...), or just name for
// a leaf — the same format the reference library's own printer uses.
type Default struct {
	Arena *term.Arena
}

// AsString implements Printer.
func (p Default) AsString(h term.Handle) string {
	n := p.Arena.Get(h)
	if n.IsLeaf() {
		return n.Name
	}

	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.AsString(c))
	}
	b.WriteByte(')')
	return b.String()
}
