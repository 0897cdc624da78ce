package snake

import "time"

// TickSource is the host's fixed-interval timer. The session starts it on
// entering play and stops it on leaving play.
type TickSource interface {
	Start(interval time.Duration)
	Stop()
}

// ManualTicks is a TickSource for hosts that call Tick themselves.
// It only records what the session asked for.
type ManualTicks struct {
	Running  bool
	Interval time.Duration
	Starts   int
	Stops    int
}

// Start marks the source as running.
func (m *ManualTicks) Start(interval time.Duration) {
	m.Running = true
	m.Interval = interval
	m.Starts++
}

// Stop marks the source as stopped.
func (m *ManualTicks) Stop() {
	m.Running = false
	m.Stops++
}
