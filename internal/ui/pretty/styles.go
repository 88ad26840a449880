// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Rendered preview components
	Heading    lipgloss.Style
	Strong     lipgloss.Style
	Emphasis   lipgloss.Style
	Code       lipgloss.Style
	Link       lipgloss.Style
	ListBullet lipgloss.Style
	Blockquote lipgloss.Style
	Rule       lipgloss.Style

	// Map and switch report components
	RawOffset      lipgloss.Style
	RenderedOffset lipgloss.Style
	SyntaxRun      lipgloss.Style
	ModeName       lipgloss.Style
	CursorValue    lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Outcome styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Strong:     lipgloss.NewStyle().Bold(true),
		Emphasis:   lipgloss.NewStyle().Italic(true),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true),
		ListBullet: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Blockquote: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		RawOffset:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RenderedOffset: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		SyntaxRun:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		ModeName:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		CursorValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:        plain,
		Strong:         plain,
		Emphasis:       plain,
		Code:           plain,
		Link:           plain,
		ListBullet:     plain,
		Blockquote:     plain,
		Rule:           plain,
		RawOffset:      plain,
		RenderedOffset: plain,
		SyntaxRun:      plain,
		ModeName:       plain,
		CursorValue:    plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Success:        plain,
		Failure:        plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
