package demogrammar

import "testing"

func TestBuildRejectsUnknownOperator(t *testing.T) {
	if _, _, _, err := Build(AndNot, []string{"not", "xor"}, 2); err == nil {
		t.Fatalf("expected an error for an operator not in the family")
	}
}

func TestBuildFiltersToRequestedKeysInCanonicalOrder(t *testing.T) {
	a, g, start, err := Build(LTL, []string{"until", "not"}, 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rules := g.MatchesOf(start)
	// LTL's canonical order is not, and, or, globally, eventually,
	// next, until — filtered to {not, until}, "not" must still come
	// before "until" regardless of the order the keys were requested in.
	if len(rules) != 3 { // not, until, x0
		t.Fatalf("expected 3 rules (not, until, x0), got %d", len(rules))
	}

	first := a.Get(rules[0])
	if first.Name != "!" {
		t.Fatalf("expected the first rule to be the 'not' operator (!), got %q", first.Name)
	}
}

func TestBuildAddsOneVariableRulePerVariable(t *testing.T) {
	_, g, start, err := Build(AndNot, []string{"not", "and"}, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rules := g.MatchesOf(start)
	if len(rules) != 2+3 {
		t.Fatalf("expected 2 operator rules + 3 variable rules, got %d", len(rules))
	}
}

func TestFamiliesMapHasAllThreeBuiltins(t *testing.T) {
	for _, name := range []string{"andnot", "ltl", "ctl"} {
		if _, ok := Families[name]; !ok {
			t.Fatalf("expected Families to contain %q", name)
		}
	}
}
