// Package term implements a hash-consed arena of syntax tree nodes.
//
// Every node is interned by structural value: two nodes with the same
// name, the same attribute set, and the same ordered list of child
// handles always resolve to the same Handle. This makes handle
// equality a complete substitute for recursive structural equality,
// which is what lets the enumerator's redundancy filter and priority
// queue compare terms cheaply.
package term

import "strconv"

// Handle is a stable, non-owning reference to an interned node. A
// Handle is only meaningful in the Arena that issued it and remains
// valid for the Arena's entire lifetime; handles are never recycled.
type Handle uint32

// Attr is a bitset of algebraic properties attached to a symbol at
// creation time. The same symbol carries the same Attr every time it
// appears in a term.
type Attr uint8

const (
	// None indicates that a symbol carries no special attribute.
	None Attr = 0
	// NoDoubleApplication marks an operator that must never directly
	// nest itself (e.g. double negation).
	NoDoubleApplication Attr = 1 << 0
	// Idempotent marks an operator for which repeating identical
	// operands is semantically redundant. Declared per spec.md §4.5
	// but, matching the original library, not enforced by the
	// redundancy filter beyond what structural hashing already
	// catches.
	Idempotent Attr = 1 << 1
	// Commutative marks a binary operator whose operand order is
	// immaterial; the redundancy filter keeps only the
	// canonically-ordered orientation at the root of a candidate.
	Commutative Attr = 1 << 2
)

// Has reports whether a carries every bit set in b.
func (a Attr) Has(b Attr) bool {
	return a&b == b
}

// Node is an immutable term node: a name, an ordered list of child
// handles, and an attribute bitset. A node is a nonterminal iff its
// name begins with '_'; otherwise it is a terminal (operator or leaf).
type Node struct {
	Name     string
	Children []Handle
	Attr     Attr
}

// IsNonterminal reports whether n stands for an unfilled production.
func (n Node) IsNonterminal() bool {
	return len(n.Name) > 0 && n.Name[0] == '_'
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Arena is an append-only store of interned nodes. It never frees a
// node and never renumbers a handle once issued. The zero value is a
// ready-to-use empty arena.
type Arena struct {
	nodes []Node
	index map[string]Handle
}

// NewArena returns an empty, ready-to-use arena.
func NewArena() *Arena {
	return &Arena{index: make(map[string]Handle)}
}

// Intern returns the handle for the node (name, children, attr),
// creating and appending it if no structurally equal node exists yet.
// The children slice is copied so later mutation by the caller cannot
// corrupt the arena.
func (a *Arena) Intern(name string, children []Handle, attr Attr) Handle {
	if a.index == nil {
		a.index = make(map[string]Handle)
	}

	key := strashKey(name, children, attr)
	if h, ok := a.index[key]; ok {
		return h
	}

	owned := append([]Handle(nil), children...)
	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, Node{Name: name, Children: owned, Attr: attr})
	a.index[key] = h
	return h
}

// strashKey builds the canonical map key used for structural hashing.
// Handles are small integers, so a delimited decimal encoding is both
// cheap and collision-free between distinct child sequences; Go maps
// cannot be keyed directly on a slice, which is the only reason a
// string is built here rather than comparing Node values.
func strashKey(name string, children []Handle, attr Attr) string {
	buf := make([]byte, 0, len(name)+4+8*len(children))
	buf = append(buf, byte(attr), 0)
	buf = append(buf, name...)
	buf = append(buf, 0)
	for _, c := range children {
		buf = strconv.AppendUint(buf, uint64(c), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

// Get returns the node stored at h. It panics if h is out of range,
// matching spec.md §7's stance that an invalid handle indicates a
// caller bug and must fail loudly rather than be recovered from.
func (a *Arena) Get(h Handle) Node {
	return a.nodes[h]
}

// Len returns the number of distinct nodes interned so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// CountNonterminals recursively counts nonterminal occurrences in the
// subtree rooted at h; a nonterminal node contributes 1 and recurses
// into its children, a terminal contributes 0 plus the sum over its
// children.
func (a *Arena) CountNonterminals(h Handle) int {
	n := a.Get(h)

	count := 0
	if n.IsNonterminal() {
		count = 1
	}
	for _, c := range n.Children {
		count += a.CountNonterminals(c)
	}
	return count
}

// CountNodes recursively counts the nodes in the subtree rooted at h;
// a leaf contributes 1, an internal node contributes 1 plus the sum
// over its children.
func (a *Arena) CountNodes(h Handle) int {
	n := a.Get(h)
	if n.IsLeaf() {
		return 1
	}

	count := 1
	for _, c := range n.Children {
		count += a.CountNodes(c)
	}
	return count
}

// IsConcrete reports whether the subtree rooted at h contains no
// nonterminal node. It is a pure function of term structure, computed
// independently of the enumerator's path-selection logic so that the
// two can be cross-checked against each other (spec.md §8's counting
// invariant: CountNonterminals(h) == 0 iff the term is concrete).
func (a *Arena) IsConcrete(h Handle) bool {
	return a.CountNonterminals(h) == 0
}
