// Package session assembles one run of the enumerator core — arena,
// grammar, enumerator, printer, logging, and metrics — the way a CLI
// subcommand needs it, without any of that collaborator wiring
// leaking back into pkg/enumerator itself.
package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hriener/behemoth/internal/demogrammar"
	"github.com/hriener/behemoth/internal/metrics"
	"github.com/hriener/behemoth/pkg/enumerator"
	"github.com/hriener/behemoth/pkg/printer"
	"github.com/hriener/behemoth/pkg/profile"
	"github.com/hriener/behemoth/pkg/term"
)

// Emission is one concrete term the session produced, in emission
// order.
type Emission struct {
	Term string `json:"term"`
	Cost int    `json:"cost"`
}

// Session is one seeded, steppable enumerator together with its
// collaborators.
type Session struct {
	ID      uuid.UUID
	Arena   *term.Arena
	Enum    *enumerator.Enumerator
	Printer printer.Printer
	Logger  *slog.Logger
	Metrics *metrics.Session

	Emissions []Emission

	// OnEmit, if set, is called for every concrete emission in
	// addition to it being appended to Emissions — the hook callers
	// use to print live, push to a websocket, or update a progress
	// display without needing to poll Emissions themselves.
	OnEmit func(Emission)
}

// New builds a session for the named family/profile pair. m may be
// nil, in which case metrics are not collected at all. log may be
// nil, in which case session events are logged to slog.Default().
func New(familyName string, p profile.Profile, log *slog.Logger, m *metrics.Session) (*Session, error) {
	family, ok := demogrammar.Families[familyName]
	if !ok {
		return nil, fmt.Errorf("session: unknown grammar family %q", familyName)
	}

	arena, g, start, err := demogrammar.Build(family, p.Operators, p.Variables)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}

	id := uuid.New()
	s := &Session{
		ID:      id,
		Arena:   arena,
		Printer: printerFor(familyName, arena),
		Logger:  log.With("session", id.String(), "profile", familyName),
		Metrics: m,
	}

	s.Enum = enumerator.New(arena, g, p.Cost)
	s.Enum.Seed(start)

	s.Enum.OnCostLayerComplete(func(cost int) {
		s.Logger.Info("cost layer complete", "cost", cost)
	})

	s.Enum.OnPop(func(enumerator.Candidate) {
		if s.Metrics != nil {
			s.Metrics.CandidatesPopped.Inc()
			s.Metrics.FrontierSize.Set(float64(s.Enum.FrontierSize()))
		}
	})

	s.Enum.OnRedundant(func(enumerator.Candidate) {
		if s.Metrics != nil {
			s.Metrics.RedundantFiltered.Inc()
		}
	})

	s.Enum.SetCallbacks(enumerator.Callbacks{
		OnConcreteExpression: func(c enumerator.Candidate) {
			if s.Metrics != nil {
				s.Metrics.ConcreteEmitted.Inc()
			}
			e := Emission{Term: s.Printer.AsString(c.Handle), Cost: c.Cost}
			s.Emissions = append(s.Emissions, e)
			if s.OnEmit != nil {
				s.OnEmit(e)
			}
		},
	})

	return s, nil
}

func printerFor(familyName string, a *term.Arena) printer.Printer {
	switch familyName {
	case "ltl":
		return printer.LTL{Arena: a}
	case "ctl":
		return printer.CTL{Arena: a}
	default:
		return printer.Default{Arena: a}
	}
}

// Run steps the session to completion, stepping batchSize candidates
// at a time so a caller can interleave other work (e.g. checking a
// context for cancellation) between batches.
func (s *Session) Run(batchSize int, shouldContinue func() bool) {
	for s.Enum.IsRunning() {
		if shouldContinue != nil && !shouldContinue() {
			s.Enum.SignalTermination()
			return
		}
		s.Enum.Step(batchSize)
	}
}
