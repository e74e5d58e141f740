package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level number (1-based)
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by clearing every level
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
