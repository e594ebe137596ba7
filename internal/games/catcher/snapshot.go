package catcher

import "math"

// Snapshot is a copy of the game state for determinism testing and for the
// platform's read-only views. It shares no memory with the live game.
type Snapshot struct {
	Tick  uint64
	State GameState
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	st.NumbersCaught = append([]int(nil), g.state.NumbersCaught...)
	st.Bubbles = append([]Bubble(nil), g.state.Bubbles...)
	return Snapshot{Tick: g.tick, State: st}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	s := &snap.State
	h := snap.Tick
	for _, v := range []int{
		int(s.Mode), s.LivesRemaining, s.Score, s.CurrentRound,
		s.RoundAllowedTime, s.RoundTimeRemaining, s.RoundStart,
		s.CurrentTarget, s.RoundTimeBonus, s.NextBubbleIndex,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if s.Paused {
		h = h*31 + 1
	}
	for _, n := range s.NumbersCaught {
		h = h*31 + uint64(n) //#nosec G115 -- hash computation
	}
	for _, b := range s.Bubbles {
		h = h*31 + uint64(b.Index)  //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Number) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(b.Position.X)
		h = h*31 + math.Float64bits(b.Position.Y)
		h = h*31 + math.Float64bits(b.Speed.Y)
	}
	h = h*31 + math.Float64bits(s.Ship.Position.X)
	h = h*31 + math.Float64bits(s.Ship.Position.Y)
	return h
}
