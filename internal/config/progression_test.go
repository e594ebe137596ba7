package config

import (
	"math"
	"testing"
)

func TestRoundSeconds(t *testing.T) {
	gp := DefaultCatcherConfig().Gameplay

	tests := []struct {
		round    int
		expected int
	}{
		{0, 45},
		{1, 45},
		{2, 40},
		{3, 35},
		{7, 15},
		{8, 15},
		{100, 15},
	}
	for _, tt := range tests {
		if got := gp.RoundSeconds(tt.round); got != tt.expected {
			t.Errorf("RoundSeconds(%d) = %d, expected %d", tt.round, got, tt.expected)
		}
	}
}

func TestSpeedRange(t *testing.T) {
	b := DefaultCatcherConfig().Bubbles

	tests := []struct {
		round  int
		lo, hi float64
	}{
		{0, 1.0, 2.9},
		{1, 1.5, 3.4},
		{4, 3.0, 4.9},
	}
	for _, tt := range tests {
		lo, hi := b.SpeedRange(tt.round)
		if math.Abs(lo-tt.lo) > 1e-9 || math.Abs(hi-tt.hi) > 1e-9 {
			t.Errorf("SpeedRange(%d) = [%v, %v), expected [%v, %v)", tt.round, lo, hi, tt.lo, tt.hi)
		}
	}
}
