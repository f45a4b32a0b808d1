package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the logical viewport and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Logical viewport width (world units, not terminal cells)
	ScreenH  int   // Logical viewport height
	TickRate int   // Frontend frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  480,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the player is dead and waiting for restart
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
