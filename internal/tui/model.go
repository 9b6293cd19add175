package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/fiberscope/fiberscope/hook"
)

// KeyMap defines the observer's key bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// eventMsg wraps a bridge event for the bubbletea update loop.
type eventMsg Event

// rendererRow is one line of the renderer table.
type rendererRow struct {
	ID        hook.RendererID
	BuildType string
}

// Model is the bubbletea model for the hook observer.
type Model struct {
	hook    *hook.Hook
	events  <-chan Event
	keys    KeyMap
	maxRows int

	renderers []rendererRow
	log       []Event

	width    int
	height   int
	quitting bool
}

// NewModel creates an observer over the given hook, reading bridge events
// from ch and keeping at most maxRows rows of event history.
func NewModel(h *hook.Hook, ch <-chan Event, maxRows int) Model {
	return Model{
		hook:    h,
		events:  ch,
		keys:    DefaultKeyMap(),
		maxRows: maxRows,
	}
}

// waitForEvent blocks on the bridge channel and delivers the next event.
func waitForEvent(ch <-chan Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return eventMsg(ev)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case eventMsg:
		m = m.absorb(Event(msg))
		return m, waitForEvent(m.events)
	}

	return m, nil
}

// absorb folds one bridge event into the model's tables.
func (m Model) absorb(ev Event) Model {
	if ev.Kind == "renderer" {
		m.renderers = append(m.renderers, rendererRow{
			ID:        ev.RendererID,
			BuildType: ev.Detail,
		})
	}

	m.log = append(m.log, ev)
	if m.maxRows > 0 && len(m.log) > m.maxRows {
		m.log = m.log[len(m.log)-m.maxRows:]
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("fiberscope"))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Renderers"))
	b.WriteString("\n")
	if len(m.renderers) == 0 {
		b.WriteString(dimStyle.Render("  waiting for renderers to attach..."))
		b.WriteString("\n")
	}
	for _, r := range m.renderers {
		roots := m.hook.FiberRootCount(r.ID)
		line := fmt.Sprintf("  %-10s %-12s roots: %d",
			r.ID, buildTypeStyle(r.BuildType).Render(r.BuildType), roots)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Events"))
	b.WriteString("\n")

	visible := m.log
	if limit := m.visibleLogLines(); len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	for _, ev := range visible {
		line := dimStyle.Render(ev.When.Format("15:04:05.000")) +
			fmt.Sprintf("  %-8s %-10s %s", ev.Kind, ev.RendererID, ev.Detail)
		b.WriteString(truncate(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}

// truncate shortens a styled line to maxWidth visual columns, preserving
// ANSI escape sequences. A zero width means the terminal size is unknown.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 3 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// visibleLogLines bounds the event log to the space left under the tables.
func (m Model) visibleLogLines() int {
	if m.height == 0 {
		return 10
	}
	used := 7 + len(m.renderers) // title, headers, help, renderer rows
	if lines := m.height - used; lines > 0 {
		return lines
	}
	return 1
}
