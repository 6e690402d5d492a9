// Package enumerator implements the priority-ordered, cost-bounded
// search over a grammar's terms: path selection, rule-application
// rewriting, the priority frontier, the redundancy filter, and the
// enumerator loop that ties them together.
//
// The core never performs I/O and never spawns a goroutine (spec.md
// §5). Where the original implementation this package is grounded on
// printed progress directly to stdout from inside its search loop,
// that is replaced here with an optional callback the caller can wire
// up to a logger — keeping the "no I/O in core" guarantee real rather
// than aspirational.
package enumerator

import (
	"github.com/hriener/behemoth/pkg/grammar"
	"github.com/hriener/behemoth/pkg/term"
)

// Callbacks is the capability record the enumerator invokes as it
// discovers new candidates, per spec.md §9's suggested design: a
// bundle of functions rather than a class hierarchy to override.
//
// OnAbstractExpression defaults to pushing the candidate back onto
// the frontier; the other two default to no-ops. Any field left nil
// after SetCallbacks keeps its default.
type Callbacks struct {
	// OnExpression fires for every surviving successor, concrete or
	// abstract, before the concrete/abstract split.
	OnExpression func(Candidate)
	// OnConcreteExpression fires for successors with no nonterminal
	// left — the user-visible emission.
	OnConcreteExpression func(Candidate)
	// OnAbstractExpression fires for successors that still contain a
	// nonterminal. Overriding it without re-queuing the candidate
	// will stop that branch of the search from being explored further.
	OnAbstractExpression func(Candidate)
}

// Enumerator holds the frontier, the grammar, the cost bound, the
// current-cost watermark, and the quit flag described in spec.md
// §4.6. It runs single-threaded and cooperatively: Step runs to
// completion for the iteration count requested, and the caller
// decides when to call it again.
type Enumerator struct {
	arena     *term.Arena
	grammar   *grammar.Grammar
	maxCost   int
	frontier  *frontier
	callbacks Callbacks

	currentCost int
	quit        bool

	onCostLayerDone func(cost int)
	onPop           func(Candidate)
	onRedundant     func(Candidate)
}

// New constructs an enumerator over grammar g against arena a, bounded
// by maxCost. The caller must still Seed it before stepping.
func New(a *term.Arena, g *grammar.Grammar, maxCost int) *Enumerator {
	e := &Enumerator{
		arena:   a,
		grammar: g,
		maxCost: maxCost,
	}
	e.frontier = newFrontier(a)
	e.callbacks = defaultCallbacks(e)
	return e
}

func defaultCallbacks(e *Enumerator) Callbacks {
	return Callbacks{
		OnExpression:         func(Candidate) {},
		OnConcreteExpression: func(Candidate) {},
		OnAbstractExpression: func(c Candidate) { e.frontier.push(c) },
	}
}

// SetCallbacks installs cb, filling in any nil field with the
// enumerator's default behavior.
func (e *Enumerator) SetCallbacks(cb Callbacks) {
	def := defaultCallbacks(e)
	if cb.OnExpression == nil {
		cb.OnExpression = def.OnExpression
	}
	if cb.OnConcreteExpression == nil {
		cb.OnConcreteExpression = def.OnConcreteExpression
	}
	if cb.OnAbstractExpression == nil {
		cb.OnAbstractExpression = def.OnAbstractExpression
	}
	e.callbacks = cb
}

// OnCostLayerComplete registers fn to be called exactly once per cost
// layer, with the cost of the layer that just finished, the moment
// the enumerator pops a candidate from the next layer. This is the
// hook a caller uses to observe spec.md §4.6 step 3 without the core
// itself touching a logger or stdout.
func (e *Enumerator) OnCostLayerComplete(fn func(cost int)) {
	e.onCostLayerDone = fn
}

// OnPop registers fn to be called with every candidate popped from
// the frontier, before it is refined. Purely observational — a
// no-op fn is the default — intended for collaborators such as a
// metrics counter that want visibility into search-space traversal
// without the core depending on them.
func (e *Enumerator) OnPop(fn func(Candidate)) {
	e.onPop = fn
}

// OnRedundant registers fn to be called with every successor the
// redundancy filter drops, before it would otherwise have been
// considered concrete or abstract. Purely observational.
func (e *Enumerator) OnRedundant(fn func(Candidate)) {
	e.onRedundant = fn
}

// Seed pushes the starting term at cost 0.
func (e *Enumerator) Seed(h term.Handle) {
	e.frontier.push(Candidate{Handle: h, Cost: 0})
}

// IsRunning reports whether the enumerator has not yet quit: the
// frontier is non-empty, the cost bound has not been reached, and no
// caller has called SignalTermination.
func (e *Enumerator) IsRunning() bool {
	return !e.quit
}

// SignalTermination sets the quit flag; subsequent Step calls return
// immediately.
func (e *Enumerator) SignalTermination() {
	e.quit = true
}

// FrontierSize reports how many candidates are currently queued,
// exposed for collaborators (e.g. a metrics gauge) that want to
// observe search-space growth without reaching into package internals.
func (e *Enumerator) FrontierSize() int {
	return e.frontier.size()
}

// Step performs up to n iterations of the enumerator loop (spec.md
// §4.6):
//
//  1. If the frontier is empty, set the quit flag.
//  2. Pop the highest-priority candidate.
//  3. Announce the previous cost layer's completion if the watermark
//     just advanced.
//  4. If the candidate's cost has reached maxCost, quit the whole
//     session (spec.md §9: this aborts the session rather than
//     merely skipping the over-budget candidate, as observed in the
//     source).
//  5. Refine the candidate and, for every surviving successor, invoke
//     OnExpression and then either OnConcreteExpression or
//     OnAbstractExpression.
func (e *Enumerator) Step(n int) {
	for i := 0; i < n; i++ {
		if e.frontier.empty() {
			e.quit = true
		}

		if !e.IsRunning() {
			return
		}

		next := e.frontier.pop()
		if e.onPop != nil {
			e.onPop(next)
		}

		if next.Cost > e.currentCost {
			if e.onCostLayerDone != nil {
				// Matches the original deduce()'s current_costs + 1:
				// the watermark reported is the cost layer that has
				// just finished, one past the count already completed
				// before this one started.
				e.onCostLayerDone(e.currentCost + 1)
			}
			e.currentCost = next.Cost
		}

		if next.Cost >= e.maxCost {
			e.quit = true
			continue
		}

		path := PathToNextNonterminal(e.arena, next.Handle)
		successors := Refine(e.arena, e.grammar, next.Handle, path)

		for _, s := range successors {
			if !e.IsRunning() {
				break
			}
			if IsRedundant(e.arena, s) {
				if e.onRedundant != nil {
					e.onRedundant(Candidate{Handle: s, Cost: next.Cost + 1})
				}
				continue
			}

			cc := Candidate{Handle: s, Cost: next.Cost + 1}
			e.callbacks.OnExpression(cc)

			if e.arena.IsConcrete(s) {
				e.callbacks.OnConcreteExpression(cc)
			} else {
				e.callbacks.OnAbstractExpression(cc)
			}
		}
	}
}
