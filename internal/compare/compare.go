// Package compare diffs two emission snapshots written by `behemoth
// enumerate --snapshot`, for catching accidental changes to emission
// order or content across versions of a grammar profile or the
// engine itself.
package compare

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/sourcegraph/go-diff/diff"
)

// Report summarizes the difference between two snapshot files.
type Report struct {
	Equal   bool
	Added   int
	Removed int
	Text    string
}

// Snapshots shells out to the system `diff` to produce a unified diff
// between a and b, then uses sourcegraph/go-diff to parse it back
// into added/removed line counts for a short summary alongside the
// raw text.
func Snapshots(a, b string) (*Report, error) {
	cmd := exec.Command("diff", "-u", a, b)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		exitErr, isExit := err.(*exec.ExitError)
		if !isExit || exitErr.ExitCode() != 1 {
			return nil, fmt.Errorf("compare: running diff: %w", err)
		}
		// exit status 1 from diff just means the files differ; any
		// other status (e.g. a missing file) is an error.
	}

	text := out.String()
	if text == "" {
		return &Report{Equal: true}, nil
	}

	report := &Report{Text: text}
	if fd, err := diff.ParseFileDiff(out.Bytes()); err == nil {
		for _, h := range fd.Hunks {
			for _, line := range bytes.Split(h.Body, []byte("\n")) {
				if len(line) == 0 {
					continue
				}
				switch line[0] {
				case '+':
					report.Added++
				case '-':
					report.Removed++
				}
			}
		}
	}

	return report, nil
}
