// Package window runs games in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Width of one glyph of the debug font.
const debugGlyphW = 6

// keyReader reports keyboard state for the current tick.
type keyReader interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

var (
	discreteKeys = map[core.Action][]ebiten.Key{
		core.ActionFire:    {ebiten.KeySpace},
		core.ActionRestart: {ebiten.KeyR},
		core.ActionPause:   {ebiten.KeyP},
		core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
	}
	heldKeys = map[core.Action][]ebiten.Key{
		core.ActionThrust:      {ebiten.KeyArrowUp, ebiten.KeyW},
		core.ActionRotateLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRotateRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	}
)

// readInput fills in with the actions for this tick.
// Windowed input has real key-up events, so held state is read directly.
func readInput(keys keyReader, in *core.InputFrame) {
	for a, ks := range discreteKeys {
		for _, k := range ks {
			if keys.JustPressed(k) {
				in.Set(a)
			}
		}
	}
	for a, ks := range heldKeys {
		for _, k := range ks {
			if keys.Pressed(k) {
				in.Hold(a)
			}
		}
	}
}

// Frontend adapts a registry.Game to ebiten.Game.
type Frontend struct {
	game      registry.Game
	config    core.RuntimeConfig
	keys      keyReader
	in        core.InputFrame
	state     core.GameState
	lastTick  time.Time
	now       func() time.Time
	logger    *log.Logger
	renderErr error
}

// NewFrontend creates a window frontend for game.
func NewFrontend(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Frontend {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Frontend{
		game:   game,
		config: cfg,
		keys:   ebitenKeys{},
		in:     core.NewInputFrame(),
		now:    time.Now,
		logger: logger,
	}
}

// Update advances the game by the wall-clock time since the previous call.
func (f *Frontend) Update() error {
	if f.renderErr != nil {
		return f.renderErr
	}

	readInput(f.keys, &f.in)
	if f.in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	now := f.now()
	var dt time.Duration
	if !f.lastTick.IsZero() {
		dt = now.Sub(f.lastTick)
	}
	f.lastTick = now

	f.state = f.game.Step(f.in, dt).State
	f.in.Clear()
	return nil
}

// Draw renders the game and any state overlay.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorBackground)

	if err := f.game.Render(imageCanvas{dst: screen}); err != nil {
		// Draw cannot fail, so the error surfaces on the next Update.
		f.renderErr = fmt.Errorf("render %s: %w", f.game.ID(), err)
		f.logger.Error("render failed", "error", err)
		return
	}

	switch {
	case f.state.Paused:
		f.drawMessage(screen, "PAUSED", "Press P to resume")
	case f.state.GameOver:
		f.drawMessage(screen, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", f.state.Score))
	}
}

func (f *Frontend) drawMessage(screen *ebiten.Image, title, subtitle string) {
	cx, cy := f.config.ScreenW/2, f.config.ScreenH/2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*debugGlyphW/2, cy-16)
	ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*debugGlyphW/2, cy+4)
}

// Layout keeps the logical viewport regardless of the window size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.config.ScreenW, f.config.ScreenH
}

// Run opens a window for game and blocks until it closes.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	f := NewFrontend(game, cfg, logger)
	f.game.Reset(f.config)
	f.logger.Debug("game started", "game", game.ID(), "seed", f.config.Seed)

	ebiten.SetWindowSize(f.config.ScreenW, f.config.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(f.config.TickRate)

	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
