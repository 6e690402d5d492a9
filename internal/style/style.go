// Package style decides how much terminal styling the CLI should
// apply. It never touches the enumerator core — it only formats text
// the CLI is about to print.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles groups the handful of lipgloss styles the CLI applies to its
// own output (cost-layer banners, emitted terms, errors). When the
// destination is not an interactive terminal — piped to a file, or
// NO_COLOR is set — every style degrades to a plain passthrough so
// redirected output and snapshots stay free of ANSI escapes.
type Styles struct {
	Banner lipgloss.Style
	Term   lipgloss.Style
	Cost   lipgloss.Style
	Error  lipgloss.Style
}

// ForStdout returns the Styles appropriate for os.Stdout, consulting
// go-isatty rather than assuming a terminal is attached.
func ForStdout() Styles {
	return forWriter(os.Stdout)
}

func forWriter(f *os.File) Styles {
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(f.Fd()) {
		plain := lipgloss.NewStyle()
		return Styles{Banner: plain, Term: plain, Cost: plain, Error: plain}
	}

	return Styles{
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Term:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Cost:   lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}
