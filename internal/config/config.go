// Package config provides YAML-based snake configuration loading,
// environment overrides and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Skin   string       `yaml:"skin"`  // Name of the skin to play with
	Skins  []skin.Skin  `yaml:"skins"` // Skins available for selection
}

// GridConfig defines the board.
type GridConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	CellSize int   `yaml:"cell_size"`
	Start    []int `yaml:"start,flow"` // Optional [x, y] head position after reset
}

// TimingConfig defines the movement pace.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Validate checks that the configuration can build a session.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalid)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalid)
	}
	if c.Food.MaxAttempts <= 0 {
		return fmt.Errorf("%w: food max_attempts must be positive", ErrInvalid)
	}
	if n := len(c.Grid.Start); n != 0 && n != 2 {
		return fmt.Errorf("%w: start must be [x, y], got %d values", ErrInvalid, n)
	}
	return nil
}

// Session converts the configuration into session settings.
func (c SnakeConfig) Session(seed int64) snake.Config {
	cfg := snake.Config{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		CellSize:        c.Grid.CellSize,
		TickInterval:    c.Timing.TickInterval,
		MaxFoodAttempts: c.Food.MaxAttempts,
		Seed:            seed,
	}
	if len(c.Grid.Start) == 2 {
		cfg.Start = &core.Point{X: c.Grid.Start[0], Y: c.Grid.Start[1]}
	}
	return cfg
}
