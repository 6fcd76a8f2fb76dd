// Package cli implements the daysheet commands. Commands report their own
// failures through the logger before returning an error, so the caller only
// has to translate a non-nil result into the exit status.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Context carries shared command dependencies. Out receives user-facing
// output; diagnostics go through the logger instead.
type Context struct {
	Out    io.Writer
	Styles Styles
}

// Styles holds the lipgloss styles for console output.
type Styles struct {
	Success lipgloss.Style
	Path    lipgloss.Style
}

// DefaultStyles returns the standard console palette.
func DefaultStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
	}
}
