package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// EventKind identifies a notable session occurrence.
type EventKind int

const (
	EventStarted EventKind = iota
	EventFoodEaten
	EventGameOver
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after the session has applied the change.
type Event struct {
	Kind  EventKind
	Score int
	Head  core.Point
}

// Listener receives session events. Listeners run synchronously on the
// caller's goroutine and must not call back into the session.
type Listener func(Event)
