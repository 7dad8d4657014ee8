package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarizes a game for the platform after each tick.
type GameState struct {
	Score      int
	HighScore  int
	Level      int
	Lines      int
	Paused     bool
	GameOver   bool // Session lost: the stack reached the top row
	Terminated bool // Session ended by the player
}

// Finished reports whether the session has reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Terminated
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
