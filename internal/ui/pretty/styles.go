// Package pretty provides Lipgloss-based styled output for the tree
// dump and run summaries.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components.
	NodeKind  lipgloss.Style
	TokenKind lipgloss.Style
	Range     lipgloss.Style
	TokenText lipgloss.Style
	Language  lipgloss.Style

	// Summary components.
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	FilePath     lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			NodeKind:     plain,
			TokenKind:    plain,
			Range:        plain,
			TokenText:    plain,
			Language:     plain,
			SummaryTitle: plain,
			SummaryValue: plain,
			FilePath:     plain,
			Success:      plain,
			Failure:      plain,
			Dim:          plain,
			Bold:         plain,
		}
	}
	return &Styles{
		NodeKind:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		TokenKind:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Range:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokenText:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Language:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		FilePath:     lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:         lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled determines if color should be enabled based on mode
// and writer. Mode values: "auto" (default), "always", "never". In
// auto mode, color is enabled only if the writer is a TTY and
// NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
