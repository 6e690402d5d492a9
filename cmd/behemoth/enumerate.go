package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hriener/behemoth/internal/metrics"
	"github.com/hriener/behemoth/internal/session"
	"github.com/hriener/behemoth/internal/style"
)

var (
	enumProfile     string
	enumVars        int
	enumCost        int
	enumMetricsAddr string
	enumSnapshot    string
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Run a named grammar profile and print each concrete term as it is emitted",
	RunE:  runEnumerate,
}

func init() {
	enumerateCmd.Flags().StringVar(&enumProfile, "profile", "andnot", "profile name (andnot, ltl, or ctl; --profile-file may redefine these, other names are rejected)")
	addCommonEnumerateFlags(enumerateCmd)
}

func addCommonEnumerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&enumVars, "vars", 0, "number of variables (0 uses the profile's default)")
	cmd.Flags().IntVar(&enumCost, "cost", 0, "maximum cost bound (0 uses the profile's default)")
	cmd.Flags().StringVar(&enumMetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics for this session on this address")
	cmd.Flags().StringVar(&enumSnapshot, "snapshot", "", "if set, write the emission sequence to this file for later use by `compare`")
}

// aliasCmd returns a subcommand named after one of the built-in
// profiles, equivalent to `enumerate --profile <name>`. The reference
// library shipped these three as separate driver programs
// (demo.cpp/ltl.cpp/ctl.cpp); here they are aliases over one engine.
func aliasCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Alias for `enumerate --profile %s`", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			enumProfile = name
			return runEnumerate(cmd, args)
		},
	}
	addCommonEnumerateFlags(cmd)
	return cmd
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	profiles, err := loadProfiles()
	if err != nil {
		return err
	}

	p, err := profiles.Get(enumProfile)
	if err != nil {
		return err
	}
	if enumVars > 0 {
		p.Variables = enumVars
	}
	if enumCost > 0 {
		p.Cost = enumCost
	}

	m := metrics.NewSession(enumProfile)
	if enumMetricsAddr != "" {
		go func() {
			if err := m.Serve(enumMetricsAddr); err != nil {
				slog.Error("metrics server stopped", "err", err)
			}
		}()
	}

	s, err := session.New(enumProfile, p, slog.Default(), m)
	if err != nil {
		return err
	}

	styles := style.ForStdout()
	s.OnEmit = func(e session.Emission) {
		fmt.Printf("%s %s\n", styles.Term.Render(e.Term), styles.Cost.Render(fmt.Sprintf("%d", e.Cost)))
	}

	s.Run(1, nil)

	fmt.Fprintf(os.Stderr, "#enumerated expressions: %d\n", len(s.Emissions))

	if enumSnapshot != "" {
		if err := writeSnapshot(enumSnapshot, s.Emissions); err != nil {
			return err
		}
	}

	return nil
}

func writeSnapshot(path string, emissions []session.Emission) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("enumerate: write snapshot %s: %w", path, err)
	}
	defer f.Close()

	for _, e := range emissions {
		if _, err := fmt.Fprintf(f, "%s %d\n", e.Term, e.Cost); err != nil {
			return fmt.Errorf("enumerate: write snapshot %s: %w", path, err)
		}
	}
	return nil
}
