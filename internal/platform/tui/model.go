package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trophy-runner/internal/core"
	"github.com/vovakirdan/trophy-runner/internal/frame"
	"github.com/vovakirdan/trophy-runner/internal/registry"
)

// session is the state shared between the Bubble Tea model copies and the
// frame loop callbacks.
type session struct {
	input core.InputFrame
	state core.GameState
}

// Model is the Bubble Tea model for a runner session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	sched    *TickScheduler
	loop     *frame.Loop
	sess     *session
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int // Window size, for centering only
	height   int
	quitting bool
}

// NewModel resets the game for cfg and wires it to a tick-driven frame loop.
// The playfield is measured here once; later resizes only recenter it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	w, h := game.ScreenSize()

	sess := &session{input: core.NewInputFrame(), state: game.State()}
	sched := NewTickScheduler(cfg.TickRate)

	input := func() core.InputFrame {
		in := sess.input.Clone()
		sess.input.Clear()
		return in
	}
	present := func(r core.StepResult) {
		sess.state = r.State
	}

	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		config: cfg,
		sched:  sched,
		loop:   frame.NewLoop(game, sched, input, present, logger),
		sess:   sess,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return m.sched.Next()
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
		return m, m.sched.OnTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.MapKeyToFrame(msg, &m.sess.input):
		m.quitting = true
		m.logger.Info("session ended", "frame", m.sess.state.Frame, "score", m.sess.state.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return layout(RenderScreen(m.screen), m.help.View(m.keys), m.width, m.height)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.sess.state
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
