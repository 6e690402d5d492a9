package enumerator

import (
	"container/heap"

	"github.com/hriener/behemoth/pkg/term"
)

// Candidate pairs a term with the number of rule applications
// performed to reach it from the seed.
type Candidate struct {
	Handle term.Handle
	Cost   int
}

// frontier is a min-priority queue of candidates ordered by the
// comparator in spec.md §4.4: cost first, then fewer remaining
// nonterminals, then fewer nodes, then handle value as a final
// deterministic tie-break. container/heap is the stdlib priority
// queue and is used here unmodified — no third-party priority-queue
// library appears anywhere in the reference corpus this engine was
// grounded on, so there is nothing to adopt in its place.
type frontier struct {
	arena *term.Arena
	items []Candidate
}

func newFrontier(a *term.Arena) *frontier {
	return &frontier{arena: a}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	na, nb := f.arena.CountNonterminals(a.Handle), f.arena.CountNonterminals(b.Handle)
	if na != nb {
		return na < nb
	}

	ca, cb := f.arena.CountNodes(a.Handle), f.arena.CountNodes(b.Handle)
	if ca != cb {
		return ca < cb
	}

	return a.Handle < b.Handle
}

func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(Candidate))
}

func (f *frontier) Pop() any {
	n := len(f.items)
	item := f.items[n-1]
	f.items = f.items[:n-1]
	return item
}

func (f *frontier) empty() bool {
	return len(f.items) == 0
}

func (f *frontier) push(c Candidate) {
	heap.Push(f, c)
}

func (f *frontier) pop() Candidate {
	return heap.Pop(f).(Candidate)
}

// size reports how many candidates are currently queued.
func (f *frontier) size() int {
	return len(f.items)
}
