package core

// MaxStep is the largest simulation step, in seconds, a game is expected to
// take at once. The platform clamps frame deltas to this so a stalled
// terminal (or a debugger pause) does not launch entities across the field
// in a single jump.
const MaxStep = 0.032

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Target frames per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	Difficulty string // Difficulty preset name; empty means normal
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

// GameState is the HUD-facing view of a session, returned by Game.State().
// The platform reads it; only the game mutates it.
type GameState struct {
	Score  int // Current score
	Health int // Craft health, 0..100
	Level  int // Difficulty level shown on the HUD

	Running  bool // Simulation advances this frame
	Paused   bool // Frozen by the player
	GameOver bool // Health reached zero

	FireMode   bool    // Autofire toggle
	ShieldLeft float64 // Seconds of shield remaining, 0 when inactive
	RapidLeft  float64 // Seconds of rapid fire remaining, 0 when inactive
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and any feedback events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
