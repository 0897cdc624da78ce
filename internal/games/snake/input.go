package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Binding names the directional input a key is bound to.
type Binding int

const (
	BindingNone Binding = iota
	BindingUp
	BindingDown
	BindingLeft
	BindingRight
)

// RawEvent is one key event as delivered by a host.
type RawEvent struct {
	Pressed bool    // key went down (false for releases)
	Echo    bool    // auto-repeat of a held key
	Binding Binding // directional binding the key satisfies, if any
}

// Fresh reports whether the event is a new key press rather than a release
// or an auto-repeat.
func (e RawEvent) Fresh() bool {
	return e.Pressed && !e.Echo
}

// ActionKind is the kind of intent derived from input.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStartOrReset
	ActionMove
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionStartOrReset:
		return "start_or_reset"
	case ActionMove:
		return "move"
	default:
		return "unknown"
	}
}

// Action is the result of mapping an input event in a given state.
// Dir is only meaningful for ActionMove.
type Action struct {
	Kind ActionKind
	Dir  core.Direction
}

// MapInput turns a raw event into an action for the current state.
// Any fresh key press starts or resets outside of play; during play only
// fresh presses of a directional binding count.
func MapInput(ev RawEvent, state State) Action {
	if (state == StateReady || state == StateGameOver) && ev.Fresh() {
		return Action{Kind: ActionStartOrReset}
	}

	if state != StatePlaying || !ev.Fresh() {
		return Action{}
	}

	switch ev.Binding {
	case BindingUp:
		return Action{Kind: ActionMove, Dir: core.DirUp}
	case BindingDown:
		return Action{Kind: ActionMove, Dir: core.DirDown}
	case BindingLeft:
		return Action{Kind: ActionMove, Dir: core.DirLeft}
	case BindingRight:
		return Action{Kind: ActionMove, Dir: core.DirRight}
	}
	return Action{}
}
