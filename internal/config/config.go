// Package config provides YAML-based game configuration loading and
// difficulty management for the Neon Drift runtime.
package config

// DriftConfig contains all tuning for the drift game.
type DriftConfig struct {
	Craft      CraftConfig      `yaml:"craft"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Hostiles   HostilesConfig   `yaml:"hostiles"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Pickups    PickupsConfig    `yaml:"pickups"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Starfield  StarfieldConfig  `yaml:"starfield"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CraftConfig defines the player craft parameters.
type CraftConfig struct {
	Radius    float64 `yaml:"radius"`
	Speed     float64 `yaml:"speed"`      // cells per second toward the movement target
	KeyNudge  float64 `yaml:"key_nudge"`  // target cells per second while a movement key is held
	Margin    float64 `yaml:"margin"`     // extra padding kept between craft and playfield edges
	MaxHealth int     `yaml:"max_health"`
}

// WeaponsConfig defines firing parameters.
type WeaponsConfig struct {
	Cooldown        float64 `yaml:"cooldown"`         // seconds between volleys
	RapidCooldown   float64 `yaml:"rapid_cooldown"`   // cooldown while rapid fire is active
	ProjectileSpeed float64 `yaml:"projectile_speed"` // rows per second upward
	ProjectileLife  float64 `yaml:"projectile_life"`  // seconds before a shot expires
	Radius          float64 `yaml:"radius"`           // projectile collision radius
	SpreadX         float64 `yaml:"spread_x"`         // sideways speed of rapid-fire side shots
}

// HostilesConfig defines hostile craft parameters.
type HostilesConfig struct {
	Radius         float64        `yaml:"radius"`
	BaseSpeed      float64        `yaml:"base_speed"`      // rows per second at difficulty factor 1
	SpeedJitter    float64        `yaml:"speed_jitter"`    // +/- fraction applied per spawn
	WeaveAmplitude float64        `yaml:"weave_amplitude"` // sideways speed of oscillating variants
	WeaveFrequency float64        `yaml:"weave_frequency"` // oscillation rate in radians per second
	ContactDamage  int            `yaml:"contact_damage"`
	Points         int            `yaml:"points"` // score per destroyed hostile
	Weights        HostileWeights `yaml:"weights"`
}

// HostileWeights defines the relative spawn chance of each hostile variant.
type HostileWeights struct {
	Straight int `yaml:"straight"`
	Weaver   int `yaml:"weaver"`
	Sine     int `yaml:"sine"`
}

// ObstaclesConfig defines tumbling debris parameters.
type ObstaclesConfig struct {
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	DriftSpeed    float64 `yaml:"drift_speed"` // max sideways speed
	MaxSpin       float64 `yaml:"max_spin"`    // radians per second
	ContactDamage int     `yaml:"contact_damage"`
}

// PickupsConfig defines pickup parameters.
type PickupsConfig struct {
	Radius         float64       `yaml:"radius"`
	FallSpeed      float64       `yaml:"fall_speed"`
	Lifetime       float64       `yaml:"lifetime"`    // seconds before an uncollected pickup fades
	DropChance     float64       `yaml:"drop_chance"` // chance a destroyed hostile drops one
	ShieldDuration float64       `yaml:"shield_duration"`
	RapidDuration  float64       `yaml:"rapid_duration"`
	HealAmount     int           `yaml:"heal_amount"`
	Weights        PickupWeights `yaml:"weights"`
}

// PickupWeights defines the relative chance of each pickup kind.
type PickupWeights struct {
	Shield int `yaml:"shield"`
	Rapid  int `yaml:"rapid"`
	Heal   int `yaml:"heal"`
}

// SpawnConfig defines the randomized spawn interval band per entity category.
type SpawnConfig struct {
	Hostile  IntervalBand `yaml:"hostile"`
	Obstacle IntervalBand `yaml:"obstacle"`
	Pickup   IntervalBand `yaml:"pickup"`
}

// IntervalBand is an inclusive range of seconds a spawn timer is drawn from.
type IntervalBand struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// StarfieldConfig defines the decorative background.
type StarfieldConfig struct {
	Count     int     `yaml:"count"`
	BaseSpeed float64 `yaml:"base_speed"` // rows per second for the nearest layer
}

// DifficultyConfig defines the difficulty progression system. The factor
// grows from InitialFactor with score and is clamped to [1, MaxFactor].
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	InitialFactor float64 `yaml:"initial_factor"` // 1.0 = easiest
	MaxFactor     float64 `yaml:"max_factor"`
	StepScore     int     `yaml:"step_score"`    // score needed per +1.0 factor
	SpawnAccel    float64 `yaml:"spawn_accel"`   // spawn interval shrink per factor above 1
	SpeedGain     float64 `yaml:"speed_gain"`    // hostile speed gain per factor above 1
	ToughenEvery  float64 `yaml:"toughen_every"` // +1 hostile HP per this much factor above 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialFactorForPreset returns the starting difficulty factor for a preset.
func InitialFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.0
	case DifficultyNormal:
		return 1.5
	case DifficultyHard:
		return 2.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
