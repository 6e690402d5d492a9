// Package demogrammar builds the three grammars the reference library
// shipped as separate driver programs (demo.cpp, ltl.cpp, ctl.cpp):
// AND/NOT formulae, linear temporal logic, and computation tree
// logic, each over a configurable number of propositional variables.
//
// None of this is part of the enumerator's core surface (spec.md §6)
// — it is the thin, out-of-scope collaborator spec.md §1 describes,
// kept here rather than in pkg/ because a caller embedding the core
// in a different tool has no reason to import it.
package demogrammar

import (
	"fmt"

	"github.com/hriener/behemoth/pkg/grammar"
	"github.com/hriener/behemoth/pkg/term"
)

// Operator describes one named operator a profile may select: the
// term symbol it lowers to, its arity, and its attribute bitset.
type Operator struct {
	Key    string
	Symbol string
	Arity  int
	Attr   term.Attr
}

// Family is an ordered, fixed set of operators available to a
// grammar kind. Order matters: it is the declaration order rules are
// added in, which in turn is the order refinement tries them in
// before the frontier reorders by cost (spec.md §4.3).
type Family []Operator

// AndNot is the operator set used by the `andnot` demo.
var AndNot = Family{
	{Key: "not", Symbol: "not", Arity: 1, Attr: term.None},
	{Key: "and", Symbol: "and", Arity: 2, Attr: term.None},
}

// LTL is the operator set used by the `ltl` demo.
var LTL = Family{
	{Key: "not", Symbol: "!", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "and", Symbol: "&", Arity: 2, Attr: term.Idempotent | term.Commutative},
	{Key: "or", Symbol: "|", Arity: 2, Attr: term.Idempotent | term.Commutative},
	{Key: "globally", Symbol: "G", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "eventually", Symbol: "F", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "next", Symbol: "X", Arity: 1, Attr: term.None},
	{Key: "until", Symbol: "U", Arity: 2, Attr: term.Idempotent},
}

// CTL is the operator set used by the `ctl` demo.
var CTL = Family{
	{Key: "not", Symbol: "!", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "and", Symbol: "&", Arity: 2, Attr: term.Idempotent | term.Commutative},
	{Key: "or", Symbol: "|", Arity: 2, Attr: term.Idempotent | term.Commutative},
	{Key: "e-globally", Symbol: "EG", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "e-eventually", Symbol: "EF", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "e-next", Symbol: "EX", Arity: 1, Attr: term.None},
	{Key: "e-until", Symbol: "EU", Arity: 2, Attr: term.Idempotent},
	{Key: "a-globally", Symbol: "AG", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "a-eventually", Symbol: "AF", Arity: 1, Attr: term.NoDoubleApplication},
	{Key: "a-next", Symbol: "AX", Arity: 1, Attr: term.None},
	{Key: "a-until", Symbol: "AU", Arity: 2, Attr: term.Idempotent},
}

// Families maps a profile's family name to its operator set.
var Families = map[string]Family{
	"andnot": AndNot,
	"ltl":    LTL,
	"ctl":    CTL,
}

// Build constructs the arena, grammar, and start symbol for a family,
// keeping only the operators named in keys (in the family's
// canonical order, not the order keys were given in), plus one rule
// per variable x0..x{variables-1}. It returns an error if keys names
// an operator the family doesn't have.
func Build(family Family, keys []string, variables int) (*term.Arena, *grammar.Grammar, term.Handle, error) {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	known := make(map[string]bool, len(family))
	for _, op := range family {
		known[op.Key] = true
	}
	for _, k := range keys {
		if !known[k] {
			return nil, nil, 0, fmt.Errorf("demogrammar: unknown operator %q", k)
		}
	}

	a := term.NewArena()
	g := grammar.New()
	start := a.Intern("_N", nil, term.None)

	for _, op := range family {
		if !wanted[op.Key] {
			continue
		}

		children := make([]term.Handle, op.Arity)
		for i := range children {
			children[i] = start
		}

		sym := a.Intern(op.Symbol, children, op.Attr)
		g.Add(start, sym)
	}

	for i := 0; i < variables; i++ {
		v := a.Intern(fmt.Sprintf("x%d", i), nil, term.None)
		g.Add(start, v)
	}

	return a, g, start, nil
}
