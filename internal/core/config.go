package core

// RuntimeConfig is passed to games at initialization.
// The host measures the display once; the playfield derived from it is fixed
// for the rest of the session.
type RuntimeConfig struct {
	ScreenW  int   // Available width in terminal cells
	ScreenH  int   // Available height in terminal cells
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the runtime used when the display cannot be
// measured: 90x32 cells at 60 fps. A zero seed asks the host for a
// time-based one.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 90, ScreenH: 32, TickRate: 60}
}

// GameState is the host-visible summary of a running game.
type GameState struct {
	Frame  int // Frames simulated since start
	Score  int // Signed total score
	Active int // Live scoring objects
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
