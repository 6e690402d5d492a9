// Package metrics instruments one enumerator session with Prometheus
// counters and a gauge. Metrics are purely observational: nothing in
// this package reads back from the registry to influence search
// order, and every session owns its own registry (spec.md §5: no
// shared mutable state across sessions).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Session groups the counters for one enumerator run.
type Session struct {
	Registry          *prometheus.Registry
	CandidatesPopped  prometheus.Counter
	RedundantFiltered prometheus.Counter
	ConcreteEmitted   prometheus.Counter
	FrontierSize      prometheus.Gauge
}

// NewSession builds a fresh registry and metric set, labeled with the
// given profile name so multiple sessions can be told apart if their
// registries are ever merged by a caller.
func NewSession(profile string) *Session {
	reg := prometheus.NewRegistry()

	labels := prometheus.Labels{"profile": profile}
	s := &Session{
		Registry: reg,
		CandidatesPopped: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "behemoth_candidates_popped_total",
			Help:        "Candidates popped from the priority frontier.",
			ConstLabels: labels,
		}),
		RedundantFiltered: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "behemoth_redundant_filtered_total",
			Help:        "Successors dropped by the redundancy filter.",
			ConstLabels: labels,
		}),
		ConcreteEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "behemoth_concrete_emitted_total",
			Help:        "Concrete terms emitted to the caller.",
			ConstLabels: labels,
		}),
		FrontierSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "behemoth_frontier_size",
			Help:        "Current number of candidates queued in the frontier.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(s.CandidatesPopped, s.RedundantFiltered, s.ConcreteEmitted, s.FrontierSize)
	return s
}

// Handler returns an http.Handler exposing the session's registry in
// the Prometheus exposition format, for mounting on a caller-owned
// mux alongside other routes.
func (s *Session) Handler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing the session's registry on
// addr, blocking until the server stops. It is only started when the
// CLI is given --metrics-addr; a session collects metrics either way.
func (s *Session) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.Handler())
	return http.ListenAndServe(addr, mux)
}
