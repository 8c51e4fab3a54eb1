package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the viewer styling definitions
type Styles struct {
	Title    lipgloss.Style
	RowIndex lipgloss.Style
	Row      lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusOK    lipgloss.Style
	StatusEmpty lipgloss.Style

	Muted lipgloss.Style
}

// DefaultStyles creates the default style set using the default renderer.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles creates the style set using the given renderer.
// Over SSH, pass the renderer from wishbubbletea.MakeRenderer(sess)
// so that styles emit ANSI colors appropriate for the SSH client's terminal.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2),

		RowIndex: r.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(4).
			Align(lipgloss.Right),

		Row: r.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(1),

		StatusBar: r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("235")),

		StatusOK: r.NewStyle().
			Foreground(lipgloss.Color("42")),

		StatusEmpty: r.NewStyle().
			Foreground(lipgloss.Color("214")),

		Muted: r.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}
