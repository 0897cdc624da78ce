package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of everything a host needs to present the
// session after an event.
type Snapshot struct {
	State     State
	Score     int
	Size      core.Size
	CellSize  int
	Segments  []core.Point // tail first; empty when the body could not be built
	Head      core.Point
	Direction core.Direction
	Food      core.Point
	HasFood   bool
	Err       error
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.state,
		Score:     s.score,
		Size:      s.size,
		CellSize:  s.cfg.CellSize,
		Direction: core.DirRight,
		Food:      s.food,
		HasFood:   s.hasFood,
		Err:       s.err,
	}
	if s.body != nil {
		snap.Segments = s.body.Segments()
		snap.Head = s.body.Head()
		snap.Direction = s.body.Direction()
	}
	return snap
}

// HeadPixel returns the top-left pixel of the head cell.
func (sn Snapshot) HeadPixel() (x, y float64) {
	return core.ToPixel(sn.Head, sn.CellSize)
}

// FoodPixel returns the top-left pixel of the food cell.
// ok is false when there is no food.
func (sn Snapshot) FoodPixel() (x, y float64, ok bool) {
	if !sn.HasFood {
		return 0, 0, false
	}
	x, y = core.ToPixel(sn.Food, sn.CellSize)
	return x, y, true
}
