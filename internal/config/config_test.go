package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	// The hardcoded fallback and the embedded YAML must describe the same
	// game, otherwise behavior silently depends on which path loaded.
	var fromYAML DriftConfig
	if err := yaml.Unmarshal(defaultDriftYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultDriftConfig()) {
		t.Errorf("embedded defaults/drift.yaml drifted from DefaultDriftConfig():\nyaml: %+v\ncode: %+v", fromYAML, DefaultDriftConfig())
	}
}

func TestLoadDriftCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte("craft:\n  radius: 2.5\n  max_health: 80\nhostiles:\n  contact_damage: 30\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrift(path)
	if err != nil {
		t.Fatalf("LoadDrift(%s) failed: %v", path, err)
	}
	if cfg.Craft.Radius != 2.5 {
		t.Errorf("craft.radius = %v, expected 2.5", cfg.Craft.Radius)
	}
	if cfg.Craft.MaxHealth != 80 {
		t.Errorf("craft.max_health = %d, expected 80", cfg.Craft.MaxHealth)
	}
	if cfg.Hostiles.ContactDamage != 30 {
		t.Errorf("hostiles.contact_damage = %d, expected 30", cfg.Hostiles.ContactDamage)
	}
}

func TestLoadDriftMissingCustomPath(t *testing.T) {
	_, err := LoadDrift(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("an explicit config path that does not exist must be an error, not a silent fallback")
	}
}

func TestLoadDriftInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("craft: [this is not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDrift(path); err == nil {
		t.Error("invalid YAML at an explicit path must be an error")
	}
}

func TestLoadDriftDefaultIsSane(t *testing.T) {
	// Without a custom path the loader may pick up a user or local config,
	// so only assert invariants every acceptable config satisfies.
	cfg, err := LoadDrift("")
	if err != nil {
		t.Fatalf("LoadDrift(\"\") failed: %v", err)
	}
	if cfg.Craft.Radius <= 0 {
		t.Error("craft radius must be positive")
	}
	if cfg.Spawn.Hostile.Min <= 0 || cfg.Spawn.Hostile.Max < cfg.Spawn.Hostile.Min {
		t.Errorf("hostile spawn band is degenerate: %+v", cfg.Spawn.Hostile)
	}
	if cfg.Difficulty.MaxFactor < 1 {
		t.Errorf("max_factor = %v, expected >= 1", cfg.Difficulty.MaxFactor)
	}
}

func TestApplyDriftPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantEnabled   bool
		wantInitial   float64
		wantDropDelta bool // preset adjusts drop chance away from default
	}{
		{DifficultyEasy, true, 1.0, true},
		{DifficultyNormal, true, 1.5, false},
		{DifficultyHard, true, 2.5, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDriftConfig()
			base := cfg.Pickups.DropChance
			ApplyDriftPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialFactor != tc.wantInitial {
				t.Errorf("initial_factor = %v, expected %v", cfg.Difficulty.InitialFactor, tc.wantInitial)
			}
			if tc.wantDropDelta == (cfg.Pickups.DropChance == base) {
				t.Errorf("drop_chance = %v (base %v), adjustment mismatch", cfg.Pickups.DropChance, base)
			}
		})
	}

	t.Run("fixed", func(t *testing.T) {
		cfg := DefaultDriftConfig()
		cfg.Difficulty.InitialFactor = 3.0
		ApplyDriftPreset(&cfg, DifficultyFixed)

		if cfg.Difficulty.Enabled {
			t.Error("fixed preset must disable progression")
		}
		if cfg.Difficulty.InitialFactor != 3.0 {
			t.Error("fixed preset must keep the configured factor")
		}
	})
}
