package catcher

import "github.com/vovakirdan/number-catcher/internal/core"

// confirm advances the current screen. Every mode is listed so that a new
// mode cannot silently inherit another mode's transition.
func (g *Game) confirm() {
	s := &g.state
	switch s.Mode {
	case ModeIntro:
		g.setupRound()
		g.startRound()
	case ModeRunning:
		// Confirm has no meaning mid-round.
	case ModeOvershot, ModeOutOfTime:
		if s.LivesRemaining <= 0 {
			g.enterDeath()
		} else {
			g.prepareNextRound()
		}
	case ModeWin:
		// Lives are never taken on a win, so a win cannot end the game.
		g.prepareNextRound()
	case ModeNextRound:
		g.startRound()
	case ModeDeath:
		g.restartAfterDeath()
	}
}

func (g *Game) togglePause() {
	if g.state.Mode != ModeRunning {
		return
	}
	g.state.Paused = !g.state.Paused
	g.logger.Debug("pause toggled", "paused", g.state.Paused, "round", g.state.CurrentRound)
}

// prepareNextRound sets up the next round and shows its target.
func (g *Game) prepareNextRound() {
	g.setupRound()
	g.state.Mode = ModeNextRound
}

// setupRound draws a new target and resets the per-round state. Allowed time
// shrinks by one step for every round already played, down to the floor.
func (g *Game) setupRound() {
	s := &g.state

	s.CurrentRound++
	g.gameRounds++
	s.RoundAllowedTime = g.cfg.Gameplay.RoundSeconds(s.CurrentRound)
	s.CurrentTarget = g.randomTarget()
	s.Bubbles = nil
	s.NumbersCaught = nil
	s.RoundTimeRemaining = s.RoundAllowedTime
	s.RoundTimeBonus = 0
}

// startRound enters play and anchors the round timer at the current instant.
func (g *Game) startRound() {
	s := &g.state
	s.Mode = ModeRunning
	s.Paused = false
	s.RoundStart = g.nowSeconds()
	s.RoundTimeRemaining = s.RoundAllowedTime

	g.logger.Info("round started",
		"round", s.CurrentRound, "target", s.CurrentTarget, "seconds", s.RoundAllowedTime)
	g.emit(core.EventRoundStarted)
}

// deductLife removes one life. It is a no-op once no lives are left.
func (g *Game) deductLife() {
	if g.state.LivesRemaining > 0 {
		g.state.LivesRemaining--
	}
}

func (g *Game) overshoot() {
	g.deductLife()
	g.state.Mode = ModeOvershot
	g.logger.Info("overshot",
		"round", g.state.CurrentRound, "target", g.state.CurrentTarget,
		"sum", g.state.CaughtSum(), "lives", g.state.LivesRemaining)
	g.emit(core.EventOvershot)
}

func (g *Game) outOfTime() {
	g.state.RoundTimeRemaining = 0
	g.deductLife()
	g.state.Mode = ModeOutOfTime
	g.logger.Info("out of time",
		"round", g.state.CurrentRound, "target", g.state.CurrentTarget,
		"sum", g.state.CaughtSum(), "lives", g.state.LivesRemaining)
	g.emit(core.EventOutOfTime)
}

// win scores one point plus one for every full bonus interval left on the clock.
func (g *Game) win() {
	s := &g.state
	s.RoundTimeBonus = s.RoundTimeRemaining / g.cfg.Gameplay.SecondsPerBonusPoint
	s.Score += 1 + s.RoundTimeBonus
	s.Mode = ModeWin
	g.logger.Info("target hit",
		"round", s.CurrentRound, "target", s.CurrentTarget,
		"bonus", s.RoundTimeBonus, "score", s.Score)
	g.emit(core.EventRoundWon)
}

func (g *Game) enterDeath() {
	g.state.Mode = ModeDeath
	g.logger.Info("game over", "score", g.state.Score, "rounds", g.gameRounds)
	g.emit(core.EventGameOver)
}

// restartAfterDeath returns to the intro with a fresh score and lives.
// The round counter and the shrunken round time carry over.
func (g *Game) restartAfterDeath() {
	s := &g.state
	s.Score = 0
	s.LivesRemaining = g.cfg.Gameplay.StartingLives
	s.Paused = false
	s.Mode = ModeIntro
	g.gameRounds = 0
}

// randomTarget draws a target uniformly from [MinTarget, MaxTarget].
func (g *Game) randomTarget() int {
	gp := g.cfg.Gameplay
	return gp.MinTarget + g.rng.Intn(gp.MaxTarget-gp.MinTarget+1)
}
