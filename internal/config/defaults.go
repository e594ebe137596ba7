package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default game configuration.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Gameplay: CatcherGameplay{
			MinTarget:            5,
			MaxTarget:            75,
			StartingLives:        3,
			ShortfallProbability: 0.3,
			SpawnEveryTicks:      30,
			StartingRoundSeconds: 45,
			MinRoundSeconds:      15,
			RoundSecondsStep:     5,
			SecondsPerBonusPoint: 2,
		},
		Bubbles: CatcherBubbles{
			Radius:        30,
			MinSpeed:      1.0,
			MaxSpeed:      2.9,
			SpeedPerRound: 0.5,
			SpawnMargin:   10,
			SpawnAttempts: 64,
		},
		Ship: CatcherShip{
			SpeedX:       10,
			SpeedY:       8,
			StartX:       500,
			StartY:       500,
			MarginLeft:   5,
			MarginRight:  15,
			MarginTop:    0,
			MarginBottom: 25,
		},
		Field: CatcherField{
			Width:  1024,
			Height: 768,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatcherYAML
}
