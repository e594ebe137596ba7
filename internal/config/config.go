// Package config provides YAML-based configuration loading for the
// catcher's gameplay constants.
package config

import (
	"errors"
	"fmt"
)

// CatcherConfig contains all tunable constants of the game.
type CatcherConfig struct {
	Gameplay CatcherGameplay `yaml:"gameplay"`
	Bubbles  CatcherBubbles  `yaml:"bubbles"`
	Ship     CatcherShip     `yaml:"ship"`
	Field    CatcherField    `yaml:"field"`
}

// CatcherGameplay defines rounds, lives, targets and scoring.
type CatcherGameplay struct {
	MinTarget            int     `yaml:"min_target"`
	MaxTarget            int     `yaml:"max_target"`
	StartingLives        int     `yaml:"starting_lives"`
	ShortfallProbability float64 `yaml:"shortfall_probability"` // Chance a bubble is drawn from [1, shortfall]
	SpawnEveryTicks      int     `yaml:"spawn_every_ticks"`
	StartingRoundSeconds int     `yaml:"starting_round_seconds"`
	MinRoundSeconds      int     `yaml:"min_round_seconds"`
	RoundSecondsStep     int     `yaml:"round_seconds_step"` // Time removed after each completed round
	SecondsPerBonusPoint int     `yaml:"seconds_per_bonus_point"`
}

// CatcherBubbles defines bubble size, speed and spawn placement.
type CatcherBubbles struct {
	Radius        float64 `yaml:"radius"`
	MinSpeed      float64 `yaml:"min_speed"`       // Per tick, round 0
	MaxSpeed      float64 `yaml:"max_speed"`       // Per tick, round 0
	SpeedPerRound float64 `yaml:"speed_per_round"` // Added to both bounds per round
	SpawnMargin   float64 `yaml:"spawn_margin"`    // Horizontal inset of the spawn range
	SpawnAttempts int     `yaml:"spawn_attempts"`  // Re-rolls before a spawn is skipped
}

// CatcherShip defines ship speed, start position and movement insets.
type CatcherShip struct {
	SpeedX       float64 `yaml:"speed_x"`
	SpeedY       float64 `yaml:"speed_y"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
}

// CatcherField is the logical playfield size in pixels.
// The terminal renderer scales it onto the cell grid.
type CatcherField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the constraints the game relies on.
// It reports the first violation found.
func (c CatcherConfig) Validate() error {
	g := c.Gameplay
	switch {
	case g.MinTarget < 1:
		return invalid("min_target must be >= 1, got %d", g.MinTarget)
	case g.MaxTarget < g.MinTarget:
		return invalid("max_target (%d) must be >= min_target (%d)", g.MaxTarget, g.MinTarget)
	case g.StartingLives < 1:
		return invalid("starting_lives must be >= 1, got %d", g.StartingLives)
	case g.ShortfallProbability < 0 || g.ShortfallProbability > 1:
		return invalid("shortfall_probability must be within [0, 1], got %v", g.ShortfallProbability)
	case g.SpawnEveryTicks < 1:
		return invalid("spawn_every_ticks must be >= 1, got %d", g.SpawnEveryTicks)
	case g.MinRoundSeconds < 1:
		return invalid("min_round_seconds must be >= 1, got %d", g.MinRoundSeconds)
	case g.StartingRoundSeconds < g.MinRoundSeconds:
		return invalid("starting_round_seconds (%d) must be >= min_round_seconds (%d)", g.StartingRoundSeconds, g.MinRoundSeconds)
	case g.RoundSecondsStep < 0:
		return invalid("round_seconds_step must be >= 0, got %d", g.RoundSecondsStep)
	case g.SecondsPerBonusPoint < 1:
		return invalid("seconds_per_bonus_point must be >= 1, got %d", g.SecondsPerBonusPoint)
	}

	b := c.Bubbles
	switch {
	case b.Radius <= 0:
		return invalid("bubbles.radius must be > 0, got %v", b.Radius)
	case b.MinSpeed < 0 || b.MaxSpeed < b.MinSpeed:
		return invalid("bubble speeds must satisfy 0 <= min_speed <= max_speed, got %v..%v", b.MinSpeed, b.MaxSpeed)
	case b.SpeedPerRound < 0:
		return invalid("speed_per_round must be >= 0, got %v", b.SpeedPerRound)
	case b.SpawnAttempts < 1:
		return invalid("spawn_attempts must be >= 1, got %d", b.SpawnAttempts)
	}

	f := c.Field
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return invalid("field must have a positive size, got %dx%d", f.Width, f.Height)
	case float64(f.Width) <= 2*b.SpawnMargin:
		return invalid("field width %d leaves no room inside spawn_margin %v", f.Width, b.SpawnMargin)
	}

	if c.Ship.SpeedX < 0 || c.Ship.SpeedY < 0 {
		return invalid("ship speeds must be >= 0, got %v/%v", c.Ship.SpeedX, c.Ship.SpeedY)
	}

	return nil
}
