// Package bench runs several independent enumerator sessions of the
// same profile concurrently and reports per-session counts. The
// reference worker pool this package is adapted from
// (internal/parallel) managed a fixed goroutine count reading off a
// task channel; sessions here are independent and short-lived enough
// that golang.org/x/sync/errgroup's simpler fan-out/fan-in covers the
// same need without a long-lived pool.
package bench

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hriener/behemoth/internal/metrics"
	"github.com/hriener/behemoth/internal/session"
	"github.com/hriener/behemoth/pkg/profile"
)

// Result is one session's outcome.
type Result struct {
	Session int
	Emitted int
	Elapsed time.Duration
	Err     error
}

// Run starts sessions concurrent, independent sessions of family/p,
// each with its own arena and frontier, and waits for all of them to
// finish. A session's error is recorded on its Result rather than
// aborting the others.
func Run(familyName string, p profile.Profile, sessions int, concurrency int) []Result {
	results := make([]Result, sessions)

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i := 0; i < sessions; i++ {
		i := i
		g.Go(func() error {
			start := time.Now()
			m := metrics.NewSession(familyName)
			s, err := session.New(familyName, p, slog.Default().With("bench_session", i), m)
			if err != nil {
				results[i] = Result{Session: i, Err: fmt.Errorf("bench: %w", err)}
				return nil
			}
			s.Run(1, nil)
			results[i] = Result{
				Session: i,
				Emitted: len(s.Emissions),
				Elapsed: time.Since(start),
			}
			return nil
		})
	}

	// g.Wait's error is always nil: every goroutine above reports its
	// failure through results instead of returning one.
	_ = g.Wait()
	return results
}
