package config

// Rounds get harder in two ways: less time on the clock and faster bubbles.
// Both depend only on the round number, which counts every round started in
// the session.

// RoundSeconds returns the time allowed for the given round (1-based).
// It starts at StartingRoundSeconds and shrinks by RoundSecondsStep per
// round, never below MinRoundSeconds.
func (g CatcherGameplay) RoundSeconds(round int) int {
	shrink := max(round-1, 0) * g.RoundSecondsStep
	return max(g.StartingRoundSeconds-shrink, g.MinRoundSeconds)
}

// SpeedRange returns the vertical speed bounds for bubbles spawned in the
// given round. Both bounds grow by SpeedPerRound per round.
func (b CatcherBubbles) SpeedRange(round int) (lo, hi float64) {
	boost := float64(round) * b.SpeedPerRound
	return b.MinSpeed + boost, b.MaxSpeed + boost
}
