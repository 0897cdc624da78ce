// Package snake implements the grid snake simulation: the body, food
// placement, input mapping and the Ready/Playing/GameOver session that ties
// them together. Hosts feed it key events and fixed-interval ticks; it has no
// loop or timer of its own.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

// Default board settings.
const (
	DefaultWidth        = 25
	DefaultHeight       = 15
	DefaultCellSize     = 40
	DefaultTickInterval = 200 * time.Millisecond
)

// Config holds the board settings a session is created with.
type Config struct {
	Width           int           // Board width in cells
	Height          int           // Board height in cells
	CellSize        int           // Pixels per cell, for coordinate conversion only
	TickInterval    time.Duration // Time between moves while playing
	Start           *core.Point   // Head position after reset; nil selects DefaultStart
	MaxFoodAttempts int           // Food spawn sample bound; 0 selects DefaultMaxAttempts
	Seed            int64         // Seed for the default random source
}

// DefaultConfig returns the standard 25x15 board.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		CellSize:        DefaultCellSize,
		TickInterval:    DefaultTickInterval,
		MaxFoodAttempts: DefaultMaxAttempts,
	}
}

// DefaultStart returns the board centre, nudged right so the tail fits.
func DefaultStart(w, h int) core.Point {
	return core.Point{X: max(w/2, 2), Y: h / 2}
}

func (c Config) start() core.Point {
	if c.Start != nil {
		return *c.Start
	}
	return DefaultStart(c.Width, c.Height)
}

func (c Config) validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: board %dx%d is smaller than 3x3", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	}
	start := c.start()
	tail := core.Point{X: start.X - 2, Y: start.Y}
	if !core.InBounds(start, c.Width, c.Height) || !core.InBounds(tail, c.Width, c.Height) {
		return fmt.Errorf("%w: start %v does not fit a 3-cell body on %dx%d",
			ErrInvalidConfig, start, c.Width, c.Height)
	}
	return nil
}

// Option customises a session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand replaces the seeded default random source used for food.
func WithRand(r Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithTickSource sets the timer the session starts and stops.
func WithTickSource(t TickSource) Option {
	return func(s *Session) {
		if t != nil {
			s.ticks = t
		}
	}
}

// WithListener registers an event listener.
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// Session owns one snake game: state, score, body and food.
// It is not safe for concurrent use; hosts deliver input and ticks from a
// single goroutine.
type Session struct {
	cfg   Config
	size  core.Size
	start core.Point
	skin  *skin.Skin

	state   State
	score   int
	body    *Body
	food    core.Point
	hasFood bool
	err     error

	rng       Rand
	spawner   *FoodSpawner
	ticks     TickSource
	listeners []Listener
	logger    *log.Logger
}

// New creates a session and resets it into the Ready state.
//
// An unusable board returns ErrInvalidConfig and no session. Otherwise the
// session is always returned; if the skin prevents building the body the
// session is left non-playable and the same error is returned (see Err).
func New(cfg Config, sk *skin.Skin, opts ...Option) (*Session, error) {
	if cfg.MaxFoodAttempts <= 0 {
		cfg.MaxFoodAttempts = DefaultMaxAttempts
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		size:   core.Size{W: cfg.Width, H: cfg.Height},
		start:  cfg.start(),
		skin:   sk,
		state:  StateReady,
		ticks:  &ManualTicks{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	s.spawner = NewFoodSpawner(s.rng, cfg.MaxFoodAttempts)

	if err := s.reset(); err != nil {
		return s, err
	}
	return s, nil
}

// HandleInput maps a key event in the current state and applies it.
// It returns the action taken; ActionNone means the event was ignored.
func (s *Session) HandleInput(ev RawEvent) Action {
	action := MapInput(ev, s.state)

	switch action.Kind {
	case ActionStartOrReset:
		switch s.state {
		case StateReady:
			s.startGame()
		case StateGameOver:
			//nolint:errcheck // failure is recorded in s.err and logged
			s.reset()
		}
	case ActionMove:
		if s.state == StatePlaying && s.body != nil {
			s.body.SetNextDirection(action.Dir)
		}
	}

	return action
}

// Tick advances the snake one cell. It does nothing outside of play.
func (s *Session) Tick() {
	if s.state != StatePlaying || s.body == nil {
		return
	}

	if !s.body.Move() {
		s.endGame()
		return
	}

	head := s.body.Head()
	switch {
	case s.hasFood && head == s.food:
		s.score++
		s.body.Grow()
		s.hasFood = false
		s.logger.Debug("food eaten", "at", head, "score", s.score)
		s.emit(EventFoodEaten)
		s.spawnFood()
	case !s.hasFood:
		// An earlier spawn ran out of attempts; try again now the body moved.
		s.spawnFood()
	}
}

// startGame moves Ready to Playing.
func (s *Session) startGame() {
	if s.body == nil {
		body, err := s.newBody()
		if err != nil {
			s.fail(err)
			return
		}
		s.body = body
	}

	s.score = 0
	if !s.hasFood {
		s.spawnFood()
	}
	s.setState(StatePlaying)
	s.ticks.Start(s.cfg.TickInterval)
	s.emit(EventStarted)
}

// endGame moves Playing to GameOver after a collision.
func (s *Session) endGame() {
	s.setState(StateGameOver)
	s.ticks.Stop()
	s.logger.Info("game over", "score", s.score, "length", s.body.Len())
	s.emit(EventGameOver)
}

// reset rebuilds the body and food and returns to Ready.
func (s *Session) reset() error {
	body, err := s.newBody()
	if err != nil {
		s.fail(err)
		return err
	}

	s.ticks.Stop()
	s.setState(StateReady)
	s.score = 0
	s.err = nil
	s.body = body
	s.hasFood = false
	s.spawnFood()
	s.logger.Debug("session reset", "start", s.start)
	s.emit(EventReset)
	return nil
}

func (s *Session) newBody() (*Body, error) {
	body := NewBody(s.size, s.skin)
	if err := body.Reset(s.start); err != nil {
		return nil, fmt.Errorf("create body: %w", err)
	}
	return body, nil
}

// fail records a body creation error. A missing skin makes the session
// non-playable; any other error aborts the operation and leaves the game
// as it was.
func (s *Session) fail(err error) {
	s.err = err
	s.logger.Error("cannot build snake", "error", err)

	if errors.Is(err, ErrMissingSkin) {
		s.ticks.Stop()
		s.body = nil
		s.hasFood = false
		s.setState(StateGameOver)
	}
}

func (s *Session) spawnFood() {
	p, ok := s.spawner.Spawn(s.body, s.size.W, s.size.H)
	if !ok {
		s.hasFood = false
		s.logger.Warn("no free cell for food", "attempts", s.spawner.MaxAttempts())
		return
	}
	s.food = p
	s.hasFood = true
}

func (s *Session) setState(next State) {
	if s.state != next {
		s.logger.Debug("state changed", "from", s.state, "to", next)
	}
	s.state = next
}

func (s *Session) emit(kind EventKind) {
	ev := Event{Kind: kind, Score: s.score}
	if s.body != nil {
		ev.Head = s.body.Head()
	}
	for _, l := range s.listeners {
		l(ev)
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the food eaten since the last start.
func (s *Session) Score() int {
	return s.score
}

// Err returns the body creation error that made the session non-playable,
// or nil.
func (s *Session) Err() error {
	return s.err
}

// Food returns the food cell; ok is false when there is no food.
func (s *Session) Food() (p core.Point, ok bool) {
	return s.food, s.hasFood
}

// Skin returns the skin the session draws the body with.
func (s *Session) Skin() *skin.Skin {
	return s.skin
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}
