package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// previewPath is the sample body drawn next to each skin, heading right.
var previewPath = []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}

// MenuModel is the Bubble Tea model for the skin picker.
type MenuModel struct {
	items    []registry.SkinInfo
	cursor   int
	width    int
	height   int
	selected *registry.SkinInfo
	quitting bool
}

// NewMenuModel creates a picker over the registered skins with the cursor
// on current, if present.
func NewMenuModel(current string, width, height int) MenuModel {
	items := registry.List()
	m := MenuModel{
		items:  items,
		width:  width,
		height: height,
	}
	for i, it := range items {
		if it.Name == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, max(len(m.items)-1, 0))
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.items)-1, 0))
	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a skin", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No skins configured."), m.width))
		b.WriteString("\n")
	}

	for i, it := range m.items {
		line := fmt.Sprintf("%-10s %s", it.Name, skinPreview(it.Name))
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if it.Description != "" {
			b.WriteString(centerText(menuDimStyle.Render("  "+it.Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// skinPreview draws the sample body with a registered skin.
func skinPreview(name string) string {
	sk, err := registry.Lookup(name)
	if err != nil {
		return ""
	}
	return previewString(sk)
}

func previewString(sk *skin.Skin) string {
	var b strings.Builder
	for i := range previewPath {
		if i > 0 {
			b.WriteRune(sk.Connector())
		}
		b.WriteRune(sk.SegmentGlyph(previewPath, i, core.DirRight))
	}
	b.WriteString("  ")
	b.WriteRune(sk.FoodGlyph())
	return b.String()
}

// Selected returns the selected skin, or nil if none was chosen.
func (m MenuModel) Selected() *registry.SkinInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, measuring styled text by its
// printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the skin picker and returns the chosen skin name.
// ok is false if the user quit without choosing.
func RunMenu(current string, width, height int) (name string, ok bool, err error) {
	p := tea.NewProgram(
		NewMenuModel(current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := finalModel.(MenuModel)
	if !isMenu || m.IsQuitting() || m.Selected() == nil {
		return "", false, nil
	}
	return m.Selected().Name, true, nil
}
