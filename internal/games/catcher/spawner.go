package catcher

import "github.com/vovakirdan/number-catcher/internal/core"

// spawnBubble adds one bubble at the top of the playfield.
// Returns false when no free spawn column was found.
func (g *Game) spawnBubble() bool {
	s := &g.state
	bc := g.cfg.Bubbles

	x, ok := g.pickSpawnX()
	if !ok {
		g.logger.Debug("spawn skipped, top row is crowded", "bubbles", len(s.Bubbles))
		return false
	}

	vy := g.randomBetween(bc.SpeedRange(s.CurrentRound))

	s.Bubbles = append(s.Bubbles, Bubble{
		Index:    s.NextBubbleIndex,
		Number:   g.pickNumber(),
		Position: core.Vec2{X: x, Y: 0},
		Speed:    core.Vec2{X: 0, Y: vy},
	})
	s.NextBubbleIndex++
	return true
}

// pickNumber draws a bubble value from [1, upper]. Usually upper is the
// target, but with the configured probability it is the current shortfall,
// which makes a gap-closing bubble more likely.
func (g *Game) pickNumber() int {
	s := &g.state
	upper := s.CurrentTarget
	if g.rng.Float64() < g.cfg.Gameplay.ShortfallProbability {
		upper = s.Shortfall()
	}
	// A spent shortfall would leave an empty range. Floor it at 1.
	upper = max(upper, 1)
	return 1 + g.rng.Intn(upper)
}

// pickSpawnX rolls horizontal positions until one does not touch a live
// bubble when tested at y=0. Gives up after the configured attempts.
func (g *Game) pickSpawnX() (float64, bool) {
	bc := g.cfg.Bubbles
	lo := bc.SpawnMargin
	hi := float64(g.cfg.Field.Width) - bc.SpawnMargin

	for range bc.SpawnAttempts {
		x := g.randomBetween(lo, hi)
		if !g.overlapsBubble(core.Vec2{X: x, Y: 0}) {
			return x, true
		}
	}
	return 0, false
}

// overlapsBubble reports whether p lies in any live bubble's box.
// This is the same Bubble.Box test catch detection uses.
func (g *Game) overlapsBubble(p core.Vec2) bool {
	radius := g.cfg.Bubbles.Radius
	for _, b := range g.state.Bubbles {
		if b.Box(radius).Contains(p) {
			return true
		}
	}
	return false
}

// randomBetween draws uniformly from [lo, hi).
func (g *Game) randomBetween(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
