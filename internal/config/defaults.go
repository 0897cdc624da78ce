package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration with the classic skin.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:    snake.DefaultWidth,
			Height:   snake.DefaultHeight,
			CellSize: snake.DefaultCellSize,
		},
		Timing: TimingConfig{
			TickInterval: snake.DefaultTickInterval,
		},
		Food: FoodConfig{
			MaxAttempts: snake.DefaultMaxAttempts,
		},
		Skin:  "classic",
		Skins: []skin.Skin{ClassicSkin()},
	}
}

// ClassicSkin returns the built-in box-drawing skin.
func ClassicSkin() skin.Skin {
	return skin.Skin{
		Name:        "classic",
		Description: "Box-drawing snake",
		Color:       "green",
		HeadColor:   "bright_green",
		FoodColor:   "red",
		Head:        skin.DirGlyphs{Up: "▲", Down: "▼", Left: "◀", Right: "▶"},
		Tail:        skin.DirGlyphs{Up: "╷", Down: "╵", Left: "╶", Right: "╴"},
		Body: skin.BodyGlyphs{
			Vertical:    "│",
			Horizontal:  "─",
			TopLeft:     "┘",
			TopRight:    "└",
			BottomLeft:  "┐",
			BottomRight: "┌",
		},
		Food: "●",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
