package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModelConfig holds the configuration for creating a new viewer model
type ModelConfig struct {
	Fetcher   ItemFetcher
	ServerURL string
	// Renderer is the Lip Gloss renderer to use for styling. Over SSH, pass the
	// renderer from wishbubbletea.MakeRenderer so colors work correctly. If nil,
	// the default renderer (local terminal) is used.
	Renderer *lipgloss.Renderer
	// Logf is the diagnostic sink for fetch failures. Operators see these;
	// the rendered view does not. Defaults to log.Printf.
	Logf func(format string, v ...interface{})
}

// Model is the root BubbleTea model for the item viewer.
// Each instance issues exactly one fetch when it mounts; the view state is
// replaced wholesale on success and left untouched on failure.
type Model struct {
	config  ModelConfig
	fetcher ItemFetcher
	styles  Styles
	logf    func(format string, v ...interface{})

	viewport viewport.Model

	// View state: the locally owned copy of the collection
	rows   []string
	loaded bool

	serverURL string
	width     int
	height    int
	quitting  bool
}

// NewModel creates the root viewer model
func NewModel(config ModelConfig) Model {
	r := config.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	logf := config.Logf
	if logf == nil {
		logf = log.Printf
	}

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return Model{
		config:    config,
		fetcher:   config.Fetcher,
		styles:    NewStyles(r),
		logf:      logf,
		viewport:  vp,
		serverURL: config.ServerURL,
	}
}

// Init issues the single fetch for this mount
func (m Model) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd returns a command that performs one fetch and delivers the result
func (m Model) fetchCmd() tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		found, err := fetcher.FetchItems(context.Background())
		if err != nil {
			return FetchFailedMsg{Err: err}
		}
		return ItemsLoadedMsg{Items: found}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "r":
			// Manual remount: fresh view state plus exactly one new fetch
			m.rows = nil
			m.loaded = false
			m.refreshContent()
			return m, m.fetchCmd()
		}

	case ItemsLoadedMsg:
		// Replace view state wholesale with the received sequence
		m.rows = msg.Items
		m.loaded = true
		m.refreshContent()

	case FetchFailedMsg:
		// Diagnostic channel only; the rendered view stays as it was
		m.logf("[Viewer] Item fetch failed: %v", msg.Err)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateLayout recalculates viewport dimensions
func (m *Model) updateLayout() {
	titleHeight := 1
	statusBarHeight := 1

	height := m.height - titleHeight - statusBarHeight
	if height < 3 {
		height = 3
	}
	width := m.width
	if width < 20 {
		width = 20
	}

	m.viewport.Width = width
	m.viewport.Height = height
	m.refreshContent()
}

// refreshContent rebuilds the viewport content from the view state,
// one row per item, keyed by positional index.
func (m *Model) refreshContent() {
	var b strings.Builder
	for i, item := range m.rows {
		b.WriteString(m.styles.RowIndex.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(m.styles.Row.Render(item))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

// Rows returns the current view state
func (m Model) Rows() []string {
	return m.rows
}

// View renders the viewer
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var sections []string
	sections = append(sections, m.styles.Title.Render("Shelf Items"))
	sections = append(sections, m.viewport.View())
	sections = append(sections, m.statusLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusLine renders the bottom status bar
func (m Model) statusLine() string {
	var status string
	switch {
	case !m.loaded:
		status = m.styles.StatusEmpty.Render("no items loaded")
	case len(m.rows) == 1:
		status = m.styles.StatusOK.Render("1 item")
	default:
		status = m.styles.StatusOK.Render(fmt.Sprintf("%d items", len(m.rows)))
	}

	server := ""
	if m.serverURL != "" {
		server = m.styles.Muted.Render("  " + m.serverURL)
	}

	help := m.styles.Muted.Render("  r: reload  q: quit")

	return m.styles.StatusBar.Width(m.width).Render(status + server + help)
}
