package session

import (
	"testing"

	"github.com/hriener/behemoth/internal/metrics"
	"github.com/hriener/behemoth/pkg/printer"
	"github.com/hriener/behemoth/pkg/profile"
)

func TestNewRejectsUnknownFamily(t *testing.T) {
	p := profile.Profile{Variables: 2, Cost: 3, Operators: []string{"not"}}
	if _, err := New("not-a-real-family", p, nil, nil); err == nil {
		t.Fatalf("expected an error for an unknown grammar family")
	}
}

func TestRunEmitsConcreteTermsAndUpdatesMetrics(t *testing.T) {
	p := profile.Profile{Variables: 2, Cost: 3, Operators: []string{"not", "and"}}
	m := metrics.NewSession("andnot")

	s, err := New("andnot", p, nil, m)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var viaHook []Emission
	s.OnEmit = func(e Emission) {
		viaHook = append(viaHook, e)
	}

	s.Run(1, nil)

	if len(s.Emissions) == 0 {
		t.Fatalf("expected at least one emission")
	}
	if len(viaHook) != len(s.Emissions) {
		t.Fatalf("OnEmit fired %d times, but %d emissions were recorded", len(viaHook), len(s.Emissions))
	}
}

func TestRunStopsWhenShouldContinueReturnsFalse(t *testing.T) {
	p := profile.Profile{Variables: 2, Cost: 100, Operators: []string{"not", "and"}}
	s, err := New("andnot", p, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	calls := 0
	s.Run(1, func() bool {
		calls++
		return calls < 3
	})

	if calls != 3 {
		t.Fatalf("expected shouldContinue to be consulted 3 times, got %d", calls)
	}
}

func TestPrinterForSelectsByFamily(t *testing.T) {
	p := profile.Profile{Variables: 1, Cost: 2, Operators: []string{"not", "and", "or"}}
	s, err := New("ltl", p, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := s.Printer.(printer.LTL); !ok {
		t.Fatalf("expected the ltl family to use printer.LTL, got %T", s.Printer)
	}

	var got string
	s.OnEmit = func(e Emission) {
		if got == "" {
			got = e.Term
		}
	}
	s.Run(1, nil)

	if got == "" {
		t.Fatalf("expected at least one emission to inspect the printer's output")
	}
}
