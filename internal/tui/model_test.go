package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fiberscope/fiberscope/hook"
)

func testEvent(kind string, id hook.RendererID, detail string) eventMsg {
	return eventMsg(Event{
		When:       time.Now(),
		Kind:       kind,
		RendererID: id,
		Detail:     detail,
	})
}

func TestModel_AbsorbsRendererEvents(t *testing.T) {
	h := hook.New()
	m := NewModel(h, make(chan Event), 10)

	updated, _ := m.Update(testEvent("renderer", "abc123", "development"))
	m = updated.(Model)

	if len(m.renderers) != 1 {
		t.Fatalf("expected 1 renderer row, got %d", len(m.renderers))
	}
	if m.renderers[0].BuildType != "development" {
		t.Errorf("build type = %q, want development", m.renderers[0].BuildType)
	}
	if len(m.log) != 1 {
		t.Errorf("expected 1 log row, got %d", len(m.log))
	}
}

func TestModel_LogCapped(t *testing.T) {
	h := hook.New()
	m := NewModel(h, make(chan Event), 3)

	for i := 0; i < 10; i++ {
		updated, _ := m.Update(testEvent("commit", "abc123", "root committed"))
		m = updated.(Model)
	}

	if len(m.log) != 3 {
		t.Errorf("log should be capped at 3 rows, got %d", len(m.log))
	}
}

func TestModel_QuitKey(t *testing.T) {
	h := hook.New()
	m := NewModel(h, make(chan Event), 10)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if !m.quitting {
		t.Error("q should mark the model as quitting")
	}
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestModel_ViewListsRenderers(t *testing.T) {
	h := hook.New()
	m := NewModel(h, make(chan Event), 10)

	updated, _ := m.Update(testEvent("renderer", "abc123", "production"))
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "abc123") {
		t.Error("view should list the renderer id")
	}
	if !strings.Contains(view, "production") {
		t.Error("view should show the classification")
	}
}

func TestModel_ViewEmpty(t *testing.T) {
	h := hook.New()
	m := NewModel(h, make(chan Event), 10)

	if !strings.Contains(m.View(), "waiting for renderers") {
		t.Error("empty view should show the placeholder")
	}
}
