package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its view and for deterministic simulation.
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

// GameState summarizes the game for the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the death screen is showing
	Paused   bool // Whether the simulation is paused
}

// EventKind identifies what happened during a tick.
type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventRoundWon     EventKind = "won"
	EventOvershot     EventKind = "overshot"
	EventOutOfTime    EventKind = "out_of_time"
	EventGameOver     EventKind = "game_over"
)

// Event is a notable state transition reported to the platform.
type Event struct {
	Kind    EventKind
	Round   int
	Target  int
	Sum     int
	Bonus   int
	Score   int
	Lives   int
	Numbers []int // Caught numbers in catch order

	// RoundsPlayed is set on EventGameOver: rounds played since the last restart.
	RoundsPlayed int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
