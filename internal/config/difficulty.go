package config

import (
	"fmt"
	"strings"
	"time"
)

// Tick intervals for the difficulty presets.
const (
	EasyTickInterval   = 300 * time.Millisecond
	NormalTickInterval = 200 * time.Millisecond
	HardTickInterval   = 120 * time.Millisecond
)

// ParseDifficulty resolves a preset name. The empty string selects fixed.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// TickIntervalForPreset returns the tick interval of a preset.
// ok is false for fixed, which keeps the configured interval.
func TickIntervalForPreset(preset DifficultyPreset) (time.Duration, bool) {
	switch preset {
	case DifficultyEasy:
		return EasyTickInterval, true
	case DifficultyNormal:
		return NormalTickInterval, true
	case DifficultyHard:
		return HardTickInterval, true
	default:
		return 0, false
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if interval, ok := TickIntervalForPreset(preset); ok {
		cfg.Timing.TickInterval = interval
	}
}
