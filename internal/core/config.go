package core

// RuntimeConfig contains configuration passed to games at initialization.
// ScreenW and ScreenH come from the display provider (terminal or SSH PTY);
// zero means the size is unknown.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// HasDisplay reports whether the display size is known and non-degenerate.
func (c RuntimeConfig) HasDisplay() bool {
	return c.ScreenW > 0 && c.ScreenH > 0
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunStats summarizes a finished or running game for run history.
type RunStats struct {
	Ticks    uint64 // Simulated ticks
	Progress int    // Game-specific progress, e.g. blocks eaten
	Won      bool
}
