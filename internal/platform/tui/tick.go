// Package tui provides the Bubble Tea host for the snake session.
// It owns the terminal loop, maps keys to session input and drives ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session tick.
// Gen identifies the tick source run that scheduled it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// tickSource implements snake.TickSource with tea.Tick.
//
// The session calls Start and Stop from inside Update, where no command can
// be returned directly, so Start leaves the first tick pending for the model
// to collect with take. Each Start and Stop begins a new generation: a tick
// already in flight from an earlier run no longer matches and is dropped.
type tickSource struct {
	gen      int
	running  bool
	interval time.Duration
	pending  tea.Cmd
}

func newTickSource() *tickSource {
	return &tickSource{}
}

// Start begins a new run at the given interval.
func (t *tickSource) Start(interval time.Duration) {
	t.gen++
	t.running = true
	t.interval = interval
	t.pending = tickCmd(t.gen, interval)
}

// Stop ends the current run.
func (t *tickSource) Stop() {
	t.gen++
	t.running = false
	t.pending = nil
}

// take returns and clears the pending command.
func (t *tickSource) take() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// accept reports whether msg belongs to the current run.
func (t *tickSource) accept(msg TickMsg) bool {
	return t.running && msg.Gen == t.gen
}

// next schedules the following tick of the current run, or nothing once stopped.
func (t *tickSource) next() tea.Cmd {
	if !t.running {
		return nil
	}
	return tickCmd(t.gen, t.interval)
}
