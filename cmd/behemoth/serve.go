package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hriener/behemoth/internal/metrics"
	"github.com/hriener/behemoth/internal/session"
	"github.com/hriener/behemoth/internal/streaming"
)

var (
	serveProfile string
	serveAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a grammar profile and stream each emission to websocket clients on /stream",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveProfile, "profile", "andnot", "profile name (andnot, ltl, or ctl; --profile-file may redefine these, other names are rejected)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	profiles, err := loadProfiles()
	if err != nil {
		return err
	}
	p, err := profiles.Get(serveProfile)
	if err != nil {
		return err
	}

	m := metrics.NewSession(serveProfile)
	s, err := session.New(serveProfile, p, slog.Default(), m)
	if err != nil {
		return err
	}

	hub := streaming.NewHub(s.Logger)
	s.OnEmit = func(e session.Emission) {
		hub.Broadcast(e)
	}

	mux := http.NewServeMux()
	mux.Handle("/stream", hub)
	mux.Handle("/metrics", m.Handler())

	go func() {
		s.Run(1, nil)
		s.Logger.Info("enumeration finished", "count", len(s.Emissions))
	}()

	fmt.Printf("serving %s on %s (websocket /stream, metrics /metrics)\n", serveProfile, serveAddr)
	return http.ListenAndServe(serveAddr, mux)
}
