// Command behemoth is a CLI around the pkg/enumerator syntax-guided
// term enumerator: it runs named grammar profiles (andnot, ltl, ctl,
// or a custom one loaded from a profile file), streams results live
// over a websocket, benchmarks concurrent sessions, and diffs
// snapshots across runs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
