package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic selection.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 30)
	Seed     int64 // RNG seed for letter selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Letters completed this run
	Complete bool // Whether the current letter has been fully traced
	Paused   bool // Whether the game is paused
}

// Completion describes a letter that was just traced to the end.
type Completion struct {
	GameID  string
	Glyph   string
	Word    string
	Reward  string
	Strokes int
	Elapsed time.Duration // From letter start to the final stroke
}

// StepResult is returned by Game.Step() after each host tick.
type StepResult struct {
	State GameState
	// Completed is set on the tick the current letter became complete.
	Completed *Completion
}
