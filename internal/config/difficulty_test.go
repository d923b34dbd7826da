package config

import (
	"math"
	"testing"
)

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:       true,
		InitialFactor: 1.0,
		MaxFactor:     6.0,
		StepScore:     400,
		SpawnAccel:    0.35,
		SpeedGain:     0.18,
		ToughenEvery:  2.0,
	}
}

func TestDifficultyFactor(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	tests := []struct {
		name     string
		score    int
		expected float64
	}{
		{"fresh session", 0, 1.0},
		{"halfway to first step", 200, 1.5},
		{"first step crossed", 400, 2.0},
		{"well into the run", 1200, 4.0},
		{"cap reached", 2000, 6.0},
		{"cap holds past the ceiling", 100000, 6.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Factor(tc.score)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Factor(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestDifficultyLevelForHUD(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	tests := []struct {
		score    int
		expected int
	}{
		{0, 1},
		{399, 1},
		{400, 2}, // crossing one step bumps the displayed level
		{799, 2},
		{800, 3},
		{2000, 6},
		{99999, 6},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score); got != tc.expected {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledStaysFixed(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	cfg.InitialFactor = 2.5
	d := NewDifficultyManager(cfg)

	for _, score := range []int{0, 400, 5000} {
		if got := d.Factor(score); got != 2.5 {
			t.Errorf("disabled Factor(%d) = %v, expected 2.5", score, got)
		}
	}
}

func TestDifficultyInitialFactorClamped(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	d.SetInitialFactor(0.2)
	if got := d.Factor(0); got != 1.0 {
		t.Errorf("factor below 1 must clamp up, got %v", got)
	}

	d.SetInitialFactor(9.0)
	if got := d.Factor(0); got != 6.0 {
		t.Errorf("factor above max must clamp down, got %v", got)
	}
}

func TestIntervalShrinksWithDifficulty(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())
	band := IntervalBand{Min: 0.9, Max: 1.6}

	// Same roll, rising factor: the interval must strictly shrink until the
	// floor takes over.
	prev := math.Inf(1)
	for _, factor := range []float64{1, 2, 3, 4, 5, 6} {
		got := d.Interval(band, factor, 0.5)
		if got >= prev {
			t.Errorf("Interval at factor %v = %v, expected < %v", factor, got, prev)
		}
		prev = got
	}
}

func TestIntervalStaysInsideBand(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())
	band := IntervalBand{Min: 2.6, Max: 4.2}

	for _, roll := range []float64{0, 0.25, 0.5, 0.999} {
		got := d.Interval(band, 1.0, roll)
		if got < band.Min || got > band.Max {
			t.Errorf("Interval(roll=%v) = %v, outside [%v, %v]", roll, got, band.Min, band.Max)
		}
	}
}

func TestIntervalRespectsFloor(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.SpawnAccel = 50 // absurd acceleration
	d := NewDifficultyManager(cfg)

	got := d.Interval(IntervalBand{Min: 0.9, Max: 1.6}, 6.0, 0)
	if got < minSpawnInterval {
		t.Errorf("Interval = %v, must never drop below %v", got, minSpawnInterval)
	}
}

func TestSpeedScale(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.SpeedScale(1.0); got != 1.0 {
		t.Errorf("SpeedScale(1) = %v, expected 1.0", got)
	}
	if got := d.SpeedScale(6.0); math.Abs(got-1.9) > 1e-9 {
		t.Errorf("SpeedScale(6) = %v, expected 1.9", got)
	}
}

func TestHitPoints(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	tests := []struct {
		name     string
		factor   float64
		baseRoll int
		expected int
	}{
		{"weak roll at factor 1", 1.0, 1, 1},
		{"strong roll at factor 1", 1.0, 2, 2},
		{"first toughen threshold", 3.1, 1, 2},
		{"second toughen threshold", 5.2, 1, 3},
		{"strong roll late game", 6.0, 2, 4},
		{"zero roll is floored", 1.0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.HitPoints(tc.factor, tc.baseRoll); got != tc.expected {
				t.Errorf("HitPoints(%v, %d) = %d, expected %d", tc.factor, tc.baseRoll, got, tc.expected)
			}
		})
	}
}
