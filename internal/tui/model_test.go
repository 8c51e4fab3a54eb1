package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher counts calls and returns a fixed result
type stubFetcher struct {
	calls int
	items []string
	err   error
}

func (f *stubFetcher) FetchItems(ctx context.Context) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// diagnosticSink records diagnostic log lines emitted by the viewer
type diagnosticSink struct {
	records []string
}

func (d *diagnosticSink) logf(format string, v ...interface{}) {
	d.records = append(d.records, fmt.Sprintf(format, v...))
}

// mount creates a model and executes its Init command, returning the
// updated model, exactly as BubbleTea would on first render.
func mount(t *testing.T, fetcher ItemFetcher, sink *diagnosticSink) Model {
	t.Helper()

	cfg := ModelConfig{Fetcher: fetcher}
	if sink != nil {
		cfg.Logf = sink.logf
	}
	m := NewModel(cfg)

	cmd := m.Init()
	require.NotNil(t, cmd, "mount must issue a fetch")

	updated, _ := m.Update(cmd())
	return updated.(Model)
}

func TestMount_RendersOneRowPerItem(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"Item1", "Item2", "Item3"}}
	m := mount(t, fetcher, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	assert.Equal(t, []string{"Item1", "Item2", "Item3"}, m.Rows())

	view := m.View()
	for _, item := range fetcher.items {
		assert.Contains(t, view, item)
	}
	assert.Contains(t, view, "3 items")
}

func TestMount_PreservesReceivedOrder(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"zebra", "apple", "mango"}}
	m := mount(t, fetcher, nil)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Rows())
}

func TestMount_IssuesExactlyOneFetch(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"Item1"}}
	m := mount(t, fetcher, nil)
	assert.Equal(t, 1, fetcher.calls)

	// Subsequent renders and unrelated messages never refetch
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = updated.(Model)
	_ = m.View()
	_ = m.View()

	assert.Equal(t, 1, fetcher.calls)
}

func TestRemount_IssuesExactlyOneMoreFetch(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"Item1"}}
	_ = mount(t, fetcher, nil)
	require.Equal(t, 1, fetcher.calls)

	// A second instance is a remount: exactly one additional request
	mount(t, fetcher, nil)
	assert.Equal(t, 2, fetcher.calls)
}

func TestReloadKey_FreshStateAndOneFetch(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"Item1", "Item2"}}
	m := mount(t, fetcher, nil)
	require.Equal(t, 1, fetcher.calls)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	require.NotNil(t, cmd)

	// View state is cleared until the new fetch lands
	assert.Empty(t, m.Rows())

	updated, _ = m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, 2, fetcher.calls)
	assert.Equal(t, []string{"Item1", "Item2"}, m.Rows())
}

func TestFetchFailure_ZeroRowsOneDiagnostic(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	sink := &diagnosticSink{}

	m := mount(t, fetcher, sink)

	// View state remains at its initial empty value
	assert.Empty(t, m.Rows())

	// Exactly one diagnostic record, invisible to the rendered view
	require.Len(t, sink.records, 1)
	assert.Contains(t, sink.records[0], "connection refused")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	view := m.View()
	assert.NotContains(t, view, "connection refused")
	assert.Contains(t, view, "no items loaded")
}

func TestFetchFailure_NoRetry(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("boom")}
	sink := &diagnosticSink{}

	m := mount(t, fetcher, sink)

	// Failure never schedules another request
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	_ = m.View()

	assert.Equal(t, 1, fetcher.calls)
	assert.Len(t, sink.records, 1)
}

func TestView_EmptyCollection(t *testing.T) {
	fetcher := &stubFetcher{items: []string{}}
	m := mount(t, fetcher, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	assert.Empty(t, m.Rows())
	assert.Contains(t, m.View(), "0 items")
}

func TestQuitKeys(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"Item1"}}
	m := mount(t, fetcher, nil)

	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		updated, cmd := m.Update(msg)
		got := updated.(Model)
		assert.True(t, got.quitting, "key %q should quit", key)
		require.NotNil(t, cmd)
	}
}

func TestView_RowsAreIndexed(t *testing.T) {
	fetcher := &stubFetcher{items: []string{"alpha", "beta"}}
	m := mount(t, fetcher, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	view := m.View()
	alphaPos := strings.Index(view, "alpha")
	betaPos := strings.Index(view, "beta")
	require.GreaterOrEqual(t, alphaPos, 0)
	require.GreaterOrEqual(t, betaPos, 0)
	assert.Less(t, alphaPos, betaPos, "rows must render in received order")
}
