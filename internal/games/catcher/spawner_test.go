package catcher

import (
	"testing"

	"github.com/vovakirdan/number-catcher/internal/config"
	"github.com/vovakirdan/number-catcher/internal/core"
)

func TestSpawnsNeverOverlap(t *testing.T) {
	// The ship is clamped into the field, so it sits at the bottom of a field
	// too tall for any bubble to reach it while the test runs.
	cfg := config.DefaultCatcherConfig()
	cfg.Field.Height = 100000
	g, _ := newTestGameWith(t, cfg)
	startRound(t, g, 1<<30)
	g.state.Ship.Position = core.Vec2{X: 500, Y: float64(cfg.Field.Height)}
	radius := g.cfg.Bubbles.Radius

	spawns := 0
	for step := 0; spawns < 50 && step < 50*30*4; step++ {
		before := append([]Bubble(nil), g.state.Bubbles...)
		index := g.state.NextBubbleIndex

		g.Step(core.NewInputFrame())
		if g.Mode() != ModeRunning {
			t.Fatalf("step %d: got mode %s, expected Running", step, g.Mode())
		}
		if len(g.state.NumbersCaught) != 0 {
			t.Fatalf("step %d: caught %v, expected nothing", step, g.state.NumbersCaught)
		}

		if g.state.NextBubbleIndex == index {
			continue
		}
		spawns++

		var spawned *Bubble
		for i := range g.state.Bubbles {
			if g.state.Bubbles[i].Index == index {
				spawned = &g.state.Bubbles[i]
			}
		}
		if spawned == nil {
			continue
		}
		origin := core.Vec2{X: spawned.Position.X, Y: 0}
		for _, b := range before {
			if b.Box(radius).Contains(origin) {
				t.Fatalf("spawn %d at x=%.1f overlaps bubble %d at %+v", index, origin.X, b.Index, b.Position)
			}
		}
	}

	if spawns < 50 {
		t.Fatalf("got %d spawns, expected 50", spawns)
	}
}

func TestSpawnCadence(t *testing.T) {
	g, _ := newTestGame(t)
	startRound(t, g, 1<<30) // tick 1

	for range 28 {
		g.Step(core.NewInputFrame())
	}
	if g.state.NextBubbleIndex != 0 {
		t.Fatalf("got %d spawns before tick 30, expected 0", g.state.NextBubbleIndex)
	}

	g.Step(core.NewInputFrame()) // tick 30
	if g.state.NextBubbleIndex != 1 {
		t.Errorf("got %d spawns at tick 30, expected 1", g.state.NextBubbleIndex)
	}
}

func TestSpawnPlacement(t *testing.T) {
	g, _ := newTestGame(t)
	startRound(t, g, 20)
	g.state.CurrentRound = 2

	for range 200 {
		g.state.Bubbles = nil
		if !g.spawnBubble() {
			t.Fatal("spawn failed on an empty field")
		}
		b := g.state.Bubbles[0]
		if b.Position.Y != 0 {
			t.Errorf("got spawn y=%v, expected 0", b.Position.Y)
		}
		if b.Position.X < 10 || b.Position.X >= 1014 {
			t.Errorf("got spawn x=%v, expected within [10, 1014)", b.Position.X)
		}
		// Round 2 adds 1.0 to both speed bounds.
		if b.Speed.Y < 2.0 || b.Speed.Y >= 3.9 {
			t.Errorf("got speed %v, expected within [2.0, 3.9)", b.Speed.Y)
		}
		if b.Speed.X != 0 {
			t.Errorf("got horizontal speed %v, expected 0", b.Speed.X)
		}
		if b.Number < 1 || b.Number > 20 {
			t.Errorf("got number %d, expected within [1, 20]", b.Number)
		}
	}
}

func TestSpawnIndicesAreUnique(t *testing.T) {
	g, _ := newTestGame(t)
	startRound(t, g, 20)

	seen := make(map[int]bool)
	for range 100 {
		g.state.Bubbles = nil
		g.spawnBubble()
		idx := g.state.Bubbles[0].Index
		if seen[idx] {
			t.Fatalf("index %d reused", idx)
		}
		seen[idx] = true
	}
}

func TestSpawnGivesUpWhenCrowded(t *testing.T) {
	g, _ := newTestGame(t)
	startRound(t, g, 20)

	// Bubble boxes 120 wide every 100 pixels cover the whole top row.
	for x := 0.0; x <= 1024; x += 100 {
		dropAtShip(g, 1)
		g.state.Bubbles[len(g.state.Bubbles)-1].Position = core.Vec2{X: x, Y: 0}
	}
	count := len(g.state.Bubbles)
	next := g.state.NextBubbleIndex

	if g.spawnBubble() {
		t.Fatal("expected spawn to be skipped")
	}
	if len(g.state.Bubbles) != count || g.state.NextBubbleIndex != next {
		t.Errorf("skipped spawn changed state: %d bubbles, next index %d", len(g.state.Bubbles), g.state.NextBubbleIndex)
	}
}

func TestPickNumberShortfall(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Gameplay.ShortfallProbability = 1
	g, _ := newTestGameWith(t, cfg)
	startRound(t, g, 20)

	tests := []struct {
		name   string
		caught []int
		upper  int
	}{
		{"shortfall bounds the draw", []int{15}, 5},
		{"spent shortfall floors at one", []int{20}, 1},
		{"negative shortfall floors at one", []int{25}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.state.NumbersCaught = tt.caught
			for range 200 {
				n := g.pickNumber()
				if n < 1 || n > tt.upper {
					t.Fatalf("got %d, expected within [1, %d]", n, tt.upper)
				}
			}
		})
	}
}

func TestPickNumberTargetBound(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Gameplay.ShortfallProbability = 0
	g, _ := newTestGameWith(t, cfg)
	startRound(t, g, 8)
	g.state.NumbersCaught = []int{7}

	sawLarge := false
	for range 500 {
		n := g.pickNumber()
		if n < 1 || n > 8 {
			t.Fatalf("got %d, expected within [1, 8]", n)
		}
		if n > 1 {
			sawLarge = true
		}
	}
	if !sawLarge {
		t.Error("expected draws above the shortfall when the target bounds them")
	}
}
