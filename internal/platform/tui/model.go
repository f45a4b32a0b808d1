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

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// continuousActions are sampled from the hold tracker every tick.
var continuousActions = []core.Action{
	core.ActionThrust,
	core.ActionRotateLeft,
	core.ActionRotateRight,
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *ScreenCanvas
	styles     *styleCache
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	tracker    *holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	now        func() time.Time
	logger     *log.Logger
	err        error
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the logical viewport; the terminal size
// only affects how it is scaled onto cells.
func NewModel(game registry.Game, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Start at a classic terminal size until the first resize arrives
	screen := core.NewScreen(80, 23)

	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewScreenCanvas(screen, float64(cfg.ScreenW), float64(cfg.ScreenH)),
		styles:     newStyleCache(256),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		tracker:    newHoldTracker(input.HoldWindow, input.RepeatDelay),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	switch {
	case a == core.ActionNone:
		return m, nil
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	fresh := m.tracker.Press(a, m.now())
	if isDiscrete(a) && fresh {
		m.inputFrame.Set(a)
	}

	return m, nil
}

// handleResize fits the cell buffer to the terminal, leaving a row for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall-clock time since the previous
// tick and redraws the cell buffer.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for _, a := range continuousActions {
		if m.tracker.Held(a, now) {
			m.inputFrame.Hold(a)
		}
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if err := m.draw(); err != nil {
		m.logger.Error("render failed", "error", err)
		m.err = fmt.Errorf("render %s: %w", m.game.ID(), err)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// draw renders the game and any state overlay into the cell buffer.
func (m Model) draw() error {
	m.screen.Clear()
	if err := m.game.Render(m.canvas); err != nil {
		return err
	}

	switch {
	case m.gameState.Paused:
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	case m.gameState.GameOver:
		drawCenteredMessage(m.screen, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", m.gameState.Score))
	}
	return nil
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(screen *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (screen.Width() - boxW) / 2
	boxY := (screen.Height() - boxH) / 2

	screen.DrawBox(boxX, boxY, boxW, boxH, core.ColorMessage)
	screen.DrawTextCentered(boxY+1, title, core.ColorMessage)
	screen.DrawTextCentered(boxY+3, subtitle, core.ColorMessage)
}

// saveScreenshot writes the current screen as plain text under
// ~/.asteroids/screenshots.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
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
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, input config.InputConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, input, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
