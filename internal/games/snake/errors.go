package snake

import "errors"

var (
	// ErrMissingSkin is returned when a body is reset without a visual skin.
	ErrMissingSkin = errors.New("snake: missing skin")

	// ErrInvalidConfig is returned by New for unusable board settings.
	ErrInvalidConfig = errors.New("snake: invalid config")
)
