package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/skin"
)

func asciiSkin() *skin.Skin {
	return &skin.Skin{
		Name:        "ascii",
		Description: "Plain ASCII",
		Color:       "white",
		Head:        skin.DirGlyphs{Up: "^", Down: "v", Left: "<", Right: ">"},
		Tail:        skin.DirGlyphs{Up: "'", Down: ",", Left: "(", Right: ")"},
		Body: skin.BodyGlyphs{
			Vertical: "|", Horizontal: "-",
			TopLeft: "'", TopRight: "'", BottomLeft: ".", BottomRight: ".",
		},
		Food: "*",
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
