package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hriener/behemoth/internal/bench"
)

var (
	benchProfile     string
	benchSessions    int
	benchCost        int
	benchConcurrency int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run several independent sessions of one profile concurrently and report throughput",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchProfile, "profile", "andnot", "profile name (andnot, ltl, or ctl; --profile-file may redefine these, other names are rejected)")
	benchCmd.Flags().IntVar(&benchSessions, "sessions", 4, "number of independent sessions to run concurrently")
	benchCmd.Flags().IntVar(&benchCost, "cost", 0, "maximum cost bound (0 uses the profile's default)")
	benchCmd.Flags().IntVar(&benchConcurrency, "concurrency", 0, "maximum number of sessions to run at once (0 means unlimited)")
}

func runBench(cmd *cobra.Command, args []string) error {
	profiles, err := loadProfiles()
	if err != nil {
		return err
	}

	p, err := profiles.Get(benchProfile)
	if err != nil {
		return err
	}
	if benchCost > 0 {
		p.Cost = benchCost
	}

	results := bench.Run(benchProfile, p, benchSessions, benchConcurrency)

	var total int
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("session %-3d error: %v\n", r.Session, r.Err)
			continue
		}
		fmt.Printf("session %-3d %6d terms in %s\n", r.Session, r.Emitted, r.Elapsed)
		total += r.Emitted
	}
	fmt.Printf("total: %d terms across %d sessions\n", total, len(results))

	return nil
}
