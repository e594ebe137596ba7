package catcher

import "github.com/vovakirdan/number-catcher/internal/core"

// Mode is the screen the game is currently in.
type Mode int

const (
	ModeIntro     Mode = iota // Rules screen, initial mode
	ModeRunning               // A round is in play
	ModeNextRound             // Shows the upcoming target
	ModeOvershot              // Caught sum went past the target
	ModeOutOfTime             // Round timer ran out
	ModeWin                   // Caught sum hit the target exactly
	ModeDeath                 // No lives left
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "Intro"
	case ModeRunning:
		return "Running"
	case ModeNextRound:
		return "NextRound"
	case ModeOvershot:
		return "Overshot"
	case ModeOutOfTime:
		return "OutOfTime"
	case ModeWin:
		return "Win"
	case ModeDeath:
		return "Death"
	default:
		return "Unknown"
	}
}

// Bubble is a falling number the ship can catch.
type Bubble struct {
	Index    int // Unique per spawn, never reused
	Number   int
	Position core.Vec2
	Speed    core.Vec2 // Only Y is used in normal play
}

// Box returns the region in which a point counts as touching the bubble.
// It is twice as wide as it is tall, centered on the bubble.
func (b Bubble) Box(radius float64) core.Box {
	return core.NewBox(b.Position, 2*radius, radius)
}

// Ship is the player's catcher. Its position is the tip of the hull.
type Ship struct {
	Position core.Vec2
	Speed    core.Vec2 // Fixed step per tick on each axis
}

// GameState is the whole mutable state of one play session.
// Times are whole seconds.
type GameState struct {
	Mode           Mode
	LivesRemaining int
	Score          int
	CurrentRound   int // Counts every round started, never reset

	RoundAllowedTime   int
	RoundTimeRemaining int // Always RoundAllowedTime minus elapsed, floored at 0
	RoundStart         int // Session clock reading when the round started

	CurrentTarget  int
	NumbersCaught  []int // Catch order
	RoundTimeBonus int

	Bubbles         []Bubble // Spawn order
	NextBubbleIndex int

	Ship   Ship
	Paused bool
}

// CaughtSum returns the sum of the numbers caught this round.
func (s *GameState) CaughtSum() int {
	total := 0
	for _, n := range s.NumbersCaught {
		total += n
	}
	return total
}

// Shortfall returns how much is still missing to reach the target.
// It is zero or negative once the target has been reached or passed.
func (s *GameState) Shortfall() int {
	return s.CurrentTarget - s.CaughtSum()
}
