// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game is the core interface that all games must implement.
// Games contain pure logic with no frontend dependencies (no Bubble Tea, no Ebiten).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "asteroids").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides viewport dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame of dt wall-clock time.
	// Input is abstracted to platform-level actions.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the canvas.
	// The canvas is pre-cleared before this call.
	Render(dst core.Canvas) error

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Services are the collaborators handed to a game at construction.
// Zero fields are replaced with no-op implementations by Normalize.
type Services struct {
	Sound  core.SoundPlayer
	Logger *log.Logger
}

// Normalize fills unset services with silent defaults.
func (s Services) Normalize() Services {
	if s.Sound == nil {
		s.Sound = core.NopSound{}
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return s
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(svc Services) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Services{}.Normalize())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, svc Services) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(svc.Normalize()), nil
}
