package bench

import (
	"testing"

	"github.com/hriener/behemoth/pkg/profile"
)

func TestRunCollectsOneResultPerSession(t *testing.T) {
	p := profile.Profile{Variables: 2, Cost: 2, Operators: []string{"not", "and"}}

	results := Run("andnot", p, 4, 2)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("session %d failed: %v", r.Session, r.Err)
		}
	}
}

func TestRunReportsErrorForUnknownFamily(t *testing.T) {
	p := profile.Profile{Variables: 2, Cost: 2, Operators: []string{"not"}}

	results := Run("not-a-family", p, 2, 0)
	for _, r := range results {
		if r.Err == nil {
			t.Fatalf("expected session %d to report an error for an unknown family", r.Session)
		}
	}
}

func TestRunSessionsAreIndependent(t *testing.T) {
	p := profile.Profile{Variables: 2, Cost: 3, Operators: []string{"not", "and"}}

	results := Run("andnot", p, 3, 0)
	for i := 1; i < len(results); i++ {
		if results[i].Emitted != results[0].Emitted {
			t.Fatalf("expected independent sessions of the same profile to emit the same count, got %d and %d", results[0].Emitted, results[i].Emitted)
		}
	}
}
