// Package catcher implements Number Catcher.
// Numbered bubbles fall down the playfield and the player steers a ship to
// catch bubbles that add up exactly to the round's target before time runs out.
package catcher

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-catcher/internal/config"
	"github.com/vovakirdan/number-catcher/internal/core"
)

// Game implements the Number Catcher logic.
// It is not safe for concurrent use; the platform drives it from one goroutine.
type Game struct {
	cfg     config.CatcherConfig
	runtime core.RuntimeConfig
	clock   Clock
	rng     *rand.Rand
	logger  *log.Logger

	state      GameState
	tick       uint64 // Steps since Reset, drives the spawn cadence
	gameRounds int    // Rounds started since the last death restart
	events     []core.Event
}

// New creates a game with the given constants and session clock.
// A nil clock means wall time.
func New(cfg config.CatcherConfig, clock Clock) *Game {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Game{
		cfg:    cfg,
		clock:  clock,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes game events to l. A nil logger discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catcher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Number Catcher"
}

// Config returns the constants the game runs with.
func (g *Game) Config() config.CatcherConfig {
	return g.cfg
}

// Reset starts a fresh session on the intro screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.gameRounds = 0
	g.events = nil

	gp := g.cfg.Gameplay
	g.state = GameState{
		Mode:               ModeIntro,
		LivesRemaining:     gp.StartingLives,
		RoundAllowedTime:   gp.StartingRoundSeconds,
		RoundTimeRemaining: gp.StartingRoundSeconds,
		RoundStart:         g.nowSeconds(),
		Ship: Ship{
			Position: core.Vec2{X: g.cfg.Ship.StartX, Y: g.cfg.Ship.StartY},
			Speed:    core.Vec2{X: g.cfg.Ship.SpeedX, Y: g.cfg.Ship.SpeedY},
		},
	}
}

// Resize updates the screen size used by Render. Game state is untouched
// because the playfield has a fixed logical size.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// Runtime returns the runtime settings from the last Reset, with the screen
// size kept current by Resize.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Step advances the game by one tick.
// Presses are handled first, then steering, then the round simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		g.HandlePress(core.ActionPause)
	}
	if in.Has(core.ActionConfirm) {
		g.HandlePress(core.ActionConfirm)
	}

	g.moveShip(in)

	if g.state.Mode == ModeRunning && !g.state.Paused {
		g.update()
	}

	return core.StepResult{State: g.State(), Events: g.drainEvents()}
}

// HandlePress applies one discrete key press.
// Actions without a meaning in the current mode are ignored.
func (g *Game) HandlePress(a core.Action) {
	switch a {
	case core.ActionConfirm:
		g.confirm()
	case core.ActionPause:
		g.togglePause()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Mode == ModeDeath,
		Paused:   g.state.Paused,
	}
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// RoundsPlayed returns the rounds started since the last restart.
func (g *Game) RoundsPlayed() int {
	return g.gameRounds
}

// nowSeconds is the session clock in whole seconds.
func (g *Game) nowSeconds() int {
	return int(g.clock.Now() / time.Second)
}

func (g *Game) emit(kind core.EventKind) {
	s := &g.state
	ev := core.Event{
		Kind:   kind,
		Round:  s.CurrentRound,
		Target: s.CurrentTarget,
		Sum:    s.CaughtSum(),
		Bonus:  s.RoundTimeBonus,
		Score:  s.Score,
		Lives:  s.LivesRemaining,
	}
	if len(s.NumbersCaught) > 0 {
		ev.Numbers = append([]int(nil), s.NumbersCaught...)
	}
	if kind == core.EventGameOver {
		ev.RoundsPlayed = g.gameRounds
	}
	g.events = append(g.events, ev)
}

func (g *Game) drainEvents() []core.Event {
	ev := g.events
	g.events = nil
	return ev
}
