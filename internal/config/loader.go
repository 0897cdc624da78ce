package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envOverrides lists the settings that can be overridden from the environment.
// Unset variables keep the value loaded from YAML.
type envOverrides struct {
	Width        int           `env:"SNAKE_GRID_WIDTH"`
	Height       int           `env:"SNAKE_GRID_HEIGHT"`
	CellSize     int           `env:"SNAKE_CELL_SIZE"`
	TickInterval time.Duration `env:"SNAKE_TICK_INTERVAL"`
	MaxAttempts  int           `env:"SNAKE_FOOD_MAX_ATTEMPTS"`
	Skin         string        `env:"SNAKE_SKIN"`
}

// LoadSnake loads the snake configuration and applies environment overrides.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := loadSnakeYAML(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSnakeYAML(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes YAML over the hardcoded defaults, so a partial file only
// changes the keys it names. A file without skins keeps the classic skin.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	cfg.Skins = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Skins) == 0 {
		cfg.Skins = DefaultSnakeConfig().Skins
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from SNAKE_* environment variables.
func ApplyEnv(cfg *SnakeConfig) error {
	o := envOverrides{
		Width:        cfg.Grid.Width,
		Height:       cfg.Grid.Height,
		CellSize:     cfg.Grid.CellSize,
		TickInterval: cfg.Timing.TickInterval,
		MaxAttempts:  cfg.Food.MaxAttempts,
		Skin:         cfg.Skin,
	}
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	cfg.Grid.Width = o.Width
	cfg.Grid.Height = o.Height
	cfg.Grid.CellSize = o.CellSize
	cfg.Timing.TickInterval = o.TickInterval
	cfg.Food.MaxAttempts = o.MaxAttempts
	cfg.Skin = o.Skin
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
