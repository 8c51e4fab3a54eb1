package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the local viewer against the given fetcher
func Run(fetcher ItemFetcher, serverURL string) error {
	model := NewModel(ModelConfig{
		Fetcher:   fetcher,
		ServerURL: serverURL,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}

	return nil
}
