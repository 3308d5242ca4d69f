package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
	colorSuccess   = lipgloss.Color("34")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorError     = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("240") // Dark gray
)

// styles renders report text, plain when color is off.
type styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	NonFatal lipgloss.Style
	Fatal    lipgloss.Style
}

// Symbols for visual feedback.
const (
	symbolCheck  = "✓"
	symbolCross  = "✗"
	symbolBullet = "•"
)

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Label:    lipgloss.NewStyle().Foreground(colorSecondary),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Success:  lipgloss.NewStyle().Foreground(colorSuccess),
		Warning:  lipgloss.NewStyle().Foreground(colorWarning),
		NonFatal: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Fatal:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}

// useColor decides whether output written to w is styled.
//
// Returns false if:
//   - mode is "never"
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - w is not a terminal
//
// "always" forces color regardless of the environment.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
