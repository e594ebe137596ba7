package catcher

import (
	"slices"

	"github.com/vovakirdan/number-catcher/internal/core"
)

// update runs one simulation tick of a live round.
func (g *Game) update() {
	if g.processTimer() {
		return
	}

	if g.tick%uint64(g.cfg.Gameplay.SpawnEveryTicks) == 0 {
		g.spawnBubble()
	}

	g.moveBubbles()
	g.catchBubble()
	g.resolveSum()
}

// processTimer derives the remaining round time from the clock.
// Returns true if the round just ran out of time.
func (g *Game) processTimer() bool {
	s := &g.state
	elapsed := g.nowSeconds() - s.RoundStart
	remaining := s.RoundAllowedTime - elapsed
	if remaining <= 0 {
		g.outOfTime()
		return true
	}
	s.RoundTimeRemaining = remaining
	return false
}

// moveBubbles advances every bubble and drops the ones that have fallen
// past the bottom of the playfield, where the ship can never reach them.
func (g *Game) moveBubbles() {
	s := &g.state
	radius := g.cfg.Bubbles.Radius
	bottom := float64(g.cfg.Field.Height)

	kept := s.Bubbles[:0]
	for _, b := range s.Bubbles {
		b.Position = b.Position.Add(b.Speed)
		if b.Position.Y-radius > bottom {
			continue
		}
		kept = append(kept, b)
	}
	s.Bubbles = kept
}

// catchBubble catches at most one bubble touching the ship: the earliest
// spawned one, since bubbles are kept in spawn order.
func (g *Game) catchBubble() {
	s := &g.state
	radius := g.cfg.Bubbles.Radius
	for i, b := range s.Bubbles {
		if b.Box(radius).Contains(s.Ship.Position) {
			s.NumbersCaught = append(s.NumbersCaught, b.Number)
			s.Bubbles = slices.Delete(s.Bubbles, i, i+1)
			g.logger.Debug("caught", "index", b.Index, "number", b.Number, "sum", s.CaughtSum())
			return
		}
	}
}

// resolveSum compares the caught sum against the target.
func (g *Game) resolveSum() {
	sum := g.state.CaughtSum()
	switch {
	case sum < g.state.CurrentTarget:
		// Keep going.
	case sum > g.state.CurrentTarget:
		g.overshoot()
	default:
		g.win()
	}
}

// moveShip applies held steering while a round is live. Each direction is
// checked on its own against its inset, so diagonals combine.
func (g *Game) moveShip(in core.InputFrame) {
	s := &g.state
	// Steering is ignored while paused so the ship freezes with the bubbles.
	if s.Mode != ModeRunning || s.Paused {
		return
	}

	sh := &s.Ship
	m := g.cfg.Ship
	w := float64(g.cfg.Field.Width)
	h := float64(g.cfg.Field.Height)

	if in.Held(core.ActionLeft) && sh.Position.X >= m.MarginLeft {
		sh.Position.X -= sh.Speed.X
	}
	if in.Held(core.ActionRight) && sh.Position.X <= w-m.MarginRight {
		sh.Position.X += sh.Speed.X
	}
	if in.Held(core.ActionUp) && sh.Position.Y >= m.MarginTop {
		sh.Position.Y -= sh.Speed.Y
	}
	if in.Held(core.ActionDown) && sh.Position.Y <= h-m.MarginBottom {
		sh.Position.Y += sh.Speed.Y
	}

	sh.Position.X = core.ClampF(sh.Position.X, 0, w)
	sh.Position.Y = core.ClampF(sh.Position.Y, 0, h)
}
