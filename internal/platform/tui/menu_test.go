package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

func registerTestSkins(t *testing.T) {
	t.Helper()
	registry.Reset()
	t.Cleanup(registry.Reset)

	for _, name := range []string{"ascii", "blocks", "classic"} {
		sk := *asciiSkin()
		sk.Name = name
		if err := registry.Register(sk); err != nil {
			t.Fatalf("Register(%s) failed: %v", name, err)
		}
	}
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuSelect(t *testing.T) {
	registerTestSkins(t)

	m := NewMenuModel("blocks", 80, 24)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, expected 1 on the current skin", m.cursor)
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, expected to stop at 2", m.cursor)
	}

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("select did not quit the menu program")
	}
	if m.Selected() == nil || m.Selected().Name != "blocks" {
		t.Errorf("Selected() = %+v, expected blocks", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	registerTestSkins(t)

	m := NewMenuModel("", 80, 24)
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("esc did not leave the menu without a selection")
	}
}

func TestMenuEmpty(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	m := NewMenuModel("", 80, 24)
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil || m.cursor != 0 {
		t.Error("empty menu produced a selection")
	}
}

func TestPreviewString(t *testing.T) {
	if got := previewString(asciiSkin()); got != "(------->  *" {
		t.Errorf("previewString() = %q, expected %q", got, "(------->  *")
	}
}
