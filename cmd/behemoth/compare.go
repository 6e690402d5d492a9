package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hriener/behemoth/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare <snapshot-a> <snapshot-b>",
	Short: "Diff two emission snapshots written by `enumerate --snapshot`",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	report, err := compare.Snapshots(args[0], args[1])
	if err != nil {
		return err
	}

	if report.Equal {
		fmt.Println("snapshots are identical")
		return nil
	}

	fmt.Fprintf(os.Stderr, "snapshots differ: +%d -%d lines\n", report.Added, report.Removed)
	fmt.Print(report.Text)
	os.Exit(1)
	return nil
}
