package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

// Model is the Bubble Tea model hosting one snake session.
type Model struct {
	session  *snake.Session
	ticks    *tickSource
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates the session and the model that drives it.
// Only an unusable board is an error; a skin problem is shown on screen.
func NewModel(cfg snake.Config, sk *skin.Skin, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ticks := newTickSource()
	session, err := snake.New(cfg, sk,
		snake.WithLogger(logger),
		snake.WithTickSource(ticks),
		snake.WithListener(func(ev snake.Event) {
			logger.Debug("session event", "kind", ev.Kind, "score", ev.Score, "head", ev.Head)
		}),
	)
	if session == nil {
		return Model{}, fmt.Errorf("create session: %w", err)
	}

	return Model{
		session: session,
		ticks:   ticks,
		screen:  NewSessionScreen(core.Size{W: cfg.Width, H: cfg.Height}),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}, nil
}

// Init starts nothing: ticks begin with the first key press.
func (m Model) Init() tea.Cmd {
	return m.ticks.take()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.ticks.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.session.HandleInput(m.keys.Event(msg))
	return m, m.ticks.take()
}

// handleTick advances the session if the tick belongs to the running source.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticks.accept(msg) {
		return m, nil
	}
	m.session.Tick()
	return m, m.ticks.next()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSession(m.screen, m.session.Snapshot(), m.session.Skin())
	content := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen),
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Session returns the hosted session.
func (m Model) Session() *snake.Session {
	return m.session
}

// Run starts the Bubble Tea program for one session.
func Run(cfg snake.Config, sk *skin.Skin, logger *log.Logger) error {
	model, err := NewModel(cfg, sk, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
