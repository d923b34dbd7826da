package config

import (
	_ "embed"
)

//go:embed defaults/drift.yaml
var defaultDriftYAML []byte

// DefaultDriftConfig returns the default drift configuration. It mirrors the
// embedded defaults/drift.yaml and exists as a last-resort fallback.
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		Craft: CraftConfig{
			Radius:    1.0,
			Speed:     45,
			KeyNudge:  40,
			Margin:    1.0,
			MaxHealth: 100,
		},
		Weapons: WeaponsConfig{
			Cooldown:        0.18,
			RapidCooldown:   0.09,
			ProjectileSpeed: 26,
			ProjectileLife:  1.6,
			Radius:          0.4,
			SpreadX:         7,
		},
		Hostiles: HostilesConfig{
			Radius:         1.2,
			BaseSpeed:      7.5,
			SpeedJitter:    0.25,
			WeaveAmplitude: 6,
			WeaveFrequency: 2.2,
			ContactDamage:  15,
			Points:         100,
			Weights: HostileWeights{
				Straight: 50,
				Weaver:   30,
				Sine:     20,
			},
		},
		Obstacles: ObstaclesConfig{
			MinRadius:     1.2,
			MaxRadius:     2.8,
			MinSpeed:      4,
			MaxSpeed:      8,
			DriftSpeed:    2.5,
			MaxSpin:       3.0,
			ContactDamage: 20,
		},
		Pickups: PickupsConfig{
			Radius:         0.8,
			FallSpeed:      5.5,
			Lifetime:       9,
			DropChance:     0.12,
			ShieldDuration: 6,
			RapidDuration:  6,
			HealAmount:     25,
			Weights: PickupWeights{
				Shield: 40,
				Rapid:  20,
				Heal:   40,
			},
		},
		Spawn: SpawnConfig{
			Hostile:  IntervalBand{Min: 0.9, Max: 1.6},
			Obstacle: IntervalBand{Min: 2.6, Max: 4.2},
			Pickup:   IntervalBand{Min: 7, Max: 11},
		},
		Starfield: StarfieldConfig{
			Count:     70,
			BaseSpeed: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			InitialFactor: 1.0,
			MaxFactor:     6.0,
			StepScore:     400,
			SpawnAccel:    0.35,
			SpeedGain:     0.18,
			ToughenEvery:  2.0,
		},
	}
}
