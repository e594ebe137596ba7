package catcher

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/number-catcher/internal/core"
)

func render(g *Game) *core.Screen {
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	return scr
}

func TestRenderModeScreens(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game, clock *ManualClock)
		want  []string
	}{
		{
			name:  "intro",
			setup: func(*Game, *ManualClock) {},
			want:  []string{"NUMBER CATCHER", "Every 2 seconds left is a bonus point.", "Press space to start..."},
		},
		{
			name: "next round",
			setup: func(g *Game, _ *ManualClock) {
				g.state.Mode = ModeNextRound
				g.state.CurrentTarget = 33
			},
			want: []string{"NEW TARGET: 33"},
		},
		{
			name: "overshot",
			setup: func(g *Game, _ *ManualClock) {
				g.state.Mode = ModeOvershot
				g.state.LivesRemaining = 2
			},
			want: []string{"OVERSHOT!", "Lives left: 2"},
		},
		{
			name: "out of time",
			setup: func(g *Game, _ *ManualClock) {
				g.state.Mode = ModeOutOfTime
				g.state.LivesRemaining = 1
			},
			want: []string{"OUT OF TIME!", "Lives left: 1"},
		},
		{
			name: "win",
			setup: func(g *Game, _ *ManualClock) {
				g.state.Mode = ModeWin
				g.state.Score = 14
				g.state.RoundTimeBonus = 9
			},
			want: []string{"NOICE!", "New score: 14", "(Time bonus: 9)", "Press space to continue..."},
		},
		{
			name: "death",
			setup: func(g *Game, _ *ManualClock) {
				g.state.Mode = ModeDeath
				g.state.Score = 31
			},
			want: []string{"NO MORE LIVES!", "Your score: 31", "Press space to play again..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clock := newTestGame(t)
			tt.setup(g, clock)
			out := render(g).String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %q on screen:\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderRunningHUD(t *testing.T) {
	g, clock := newTestGame(t)
	startRound(t, g, 12)
	clock.Set(41 * time.Second)
	g.state.NumbersCaught = []int{3, 4}
	g.state.Score = 5
	g.Step(core.NewInputFrame())

	scr := render(g)
	hud := scr.Row(0)

	for _, w := range []string{"SUM: 7/12", "TIME: 4/45", "Score: 5", "●●●"} {
		if !strings.Contains(hud, w) {
			t.Errorf("expected %q in HUD %q", w, hud)
		}
	}
	if !strings.HasPrefix(scr.Row(1), "───") {
		t.Errorf("expected separator on row 1, got %q", scr.Row(1))
	}

	timeX := strings.Index(hud, "TIME")
	if c := scr.GetCell(len([]rune(hud[:timeX])), 0); c.Color != core.ColorRed {
		t.Errorf("got clock color %d, expected red with 4 seconds left", c.Color)
	}
}

func TestRenderShipAndBubbles(t *testing.T) {
	g, _ := newTestGame(t)
	startRound(t, g, 50)
	g.state.Ship.Position = core.Vec2{X: 0, Y: 768}
	g.state.Bubbles = []Bubble{{Index: 0, Number: 42, Position: core.Vec2{X: 512, Y: 0}}}

	scr := render(g)

	if c := scr.GetCell(0, 23); c.Rune != ShipRune || c.Color != core.ColorBlue {
		t.Errorf("got %q color %d at bottom-left, expected blue ship", c.Rune, c.Color)
	}
	if !strings.Contains(scr.Row(2), "(42)") {
		t.Errorf("expected bubble label on the first playfield row, got %q", scr.Row(2))
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g, _ := newTestGame(t)
	startRound(t, g, 50)
	g.HandlePress(core.ActionPause)

	out := render(g).String()
	if !strings.Contains(out, "PAUSED") {
		t.Errorf("expected PAUSED overlay:\n%s", out)
	}
	if !strings.Contains(out, "SUM: 0/50") {
		t.Errorf("expected HUD behind the overlay:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	scr := core.NewScreen(30, 10)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Window too small") {
		t.Errorf("expected size warning:\n%s", scr.String())
	}
}

func TestTimeColor(t *testing.T) {
	tests := []struct {
		remaining int
		expected  core.Color
	}{
		{0, core.ColorRed},
		{5, core.ColorRed},
		{6, core.ColorYellow},
		{10, core.ColorYellow},
		{11, core.ColorBlue},
		{45, core.ColorBlue},
	}
	for _, tt := range tests {
		if got := timeColor(tt.remaining); got != tt.expected {
			t.Errorf("timeColor(%d): got %d, expected %d", tt.remaining, got, tt.expected)
		}
	}
}
