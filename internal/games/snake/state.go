package snake

// State is the session's position in the Ready/Playing/GameOver cycle.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
