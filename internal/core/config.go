package core

// RuntimeConfig contains what the frame driver passes to a game on reset.
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

// GameState is the coarse status the platform needs after each tick.
type GameState struct {
	Score    int    // Current score
	Phase    string // Name of the current game phase
	GameOver bool   // Whether the restart affordance is active
	Paused   bool   // Whether the frame driver is holding the simulation
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Transitions lists phase changes that happened during the tick, in order,
	// formatted as "From->To".
	Transitions []string
}
