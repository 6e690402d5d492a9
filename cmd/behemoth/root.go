package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hriener/behemoth/pkg/profile"
)

var (
	profileFile string
	logLevel    string

	rootCmd = &cobra.Command{
		Use:   "behemoth",
		Short: "Enumerate terms of a grammar in deterministic, cost-bounded order",
		Long: `behemoth exhaustively enumerates concrete terms reachable from a
grammar's start symbol within a cost bound, in deterministic cost-first
order, pruning redundancies implied by operator attributes such as
commutativity and double-application.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile-file", "", "path to a YAML profile file (defaults to the built-in andnot/ltl/ctl profiles)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(aliasCmd("andnot"))
	rootCmd.AddCommand(aliasCmd("ltl"))
	rootCmd.AddCommand(aliasCmd("ctl"))
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadProfiles returns the profile file named by --profile-file, or
// the built-in defaults when none was given.
func loadProfiles() (*profile.File, error) {
	if profileFile == "" {
		return profile.Default(), nil
	}
	return profile.Load(profileFile)
}
