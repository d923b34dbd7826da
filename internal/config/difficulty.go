package config

import "math"

// minSpawnInterval is the absolute floor for spawn timers, so even a maxed
// difficulty factor cannot collapse a band to a per-frame spawn storm.
const minSpawnInterval = 0.12

// DifficultyManager derives dynamic game parameters from the score.
type DifficultyManager struct {
	cfg           DifficultyConfig
	initialFactor float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.MaxFactor < 1 {
		cfg.MaxFactor = 1
	}
	if cfg.StepScore <= 0 {
		cfg.StepScore = 1 // Prevent division by zero
	}
	return &DifficultyManager{
		cfg:           cfg,
		initialFactor: cfg.InitialFactor,
	}
}

// SetInitialFactor overrides the starting difficulty factor.
func (d *DifficultyManager) SetInitialFactor(f float64) {
	d.initialFactor = clampF(f, 1.0, d.cfg.MaxFactor)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Factor returns the continuous difficulty factor for a score, always within
// [1, MaxFactor]. With progression disabled it stays at the initial factor.
func (d *DifficultyManager) Factor(score int) float64 {
	f := d.initialFactor
	if d.cfg.Enabled {
		f += float64(score) / float64(d.cfg.StepScore)
	}
	return clampF(f, 1.0, d.cfg.MaxFactor)
}

// Level returns the whole-number difficulty level shown on the HUD.
func (d *DifficultyManager) Level(score int) int {
	lvl := int(d.Factor(score))
	maxLvl := int(d.cfg.MaxFactor)
	if lvl > maxLvl {
		lvl = maxLvl
	}
	if lvl < 1 {
		lvl = 1
	}
	return lvl
}

// Interval draws a spawn interval from the band, shrunk by the difficulty
// factor. roll must be in [0, 1) and selects the point inside the band, so
// callers with a deterministic RNG stay deterministic.
func (d *DifficultyManager) Interval(band IntervalBand, factor float64, roll float64) float64 {
	scale := 1.0 / (1.0 + d.cfg.SpawnAccel*(factor-1.0))
	lo := band.Min * scale
	hi := band.Max * scale
	if lo < minSpawnInterval {
		lo = minSpawnInterval
	}
	if hi < lo {
		hi = lo
	}
	return lo + roll*(hi-lo)
}

// SpeedScale returns the hostile speed multiplier for a difficulty factor.
func (d *DifficultyManager) SpeedScale(factor float64) float64 {
	return 1.0 + d.cfg.SpeedGain*(factor-1.0)
}

// HitPoints returns the health of a freshly spawned hostile. baseRoll is the
// randomized base (1 or 2); higher difficulty factors add flat bonus health.
func (d *DifficultyManager) HitPoints(factor float64, baseRoll int) int {
	hp := baseRoll
	if hp < 1 {
		hp = 1
	}
	if d.cfg.ToughenEvery > 0 {
		hp += int((factor - 1.0) / d.cfg.ToughenEvery)
	}
	return hp
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
