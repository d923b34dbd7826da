package drift

import (
	"math"

	"github.com/Charu-web/Neon-Drift/internal/config"
	"github.com/Charu-web/Neon-Drift/internal/core"
)

// spawnHeadroom is how far above the top edge new entities materialize, so
// they scroll into view instead of popping.
const spawnHeadroom = 1.5

// SpawnBatch is everything the spawner produced during one frame.
type SpawnBatch struct {
	Hostiles  []Hostile
	Obstacles []Obstacle
	Pickups   []Pickup
}

// Spawner owns the three countdown timers that pace hostile, obstacle and
// pickup creation. Each timer burns down by dt; on reaching zero it emits
// exactly one entity and re-arms with a randomized interval shrunk by the
// current difficulty factor.
type Spawner struct {
	cfg        *config.DriftConfig
	difficulty *config.DifficultyManager
	rng        *RNG

	hostileTimer  float64
	obstacleTimer float64
	pickupTimer   float64
}

// NewSpawner creates a spawner and arms all three timers.
func NewSpawner(cfg *config.DriftConfig, diff *config.DifficultyManager, rng *RNG, factor float64) *Spawner {
	s := &Spawner{cfg: cfg, difficulty: diff, rng: rng}
	s.Rearm(factor)
	return s
}

// Rearm rerolls every timer. Used at the start of a run.
func (s *Spawner) Rearm(factor float64) {
	s.hostileTimer = s.difficulty.Interval(s.cfg.Spawn.Hostile, factor, s.rng.Float64())
	s.obstacleTimer = s.difficulty.Interval(s.cfg.Spawn.Obstacle, factor, s.rng.Float64())
	s.pickupTimer = s.difficulty.Interval(s.cfg.Spawn.Pickup, factor, s.rng.Float64())
}

// Timers exposes the three countdowns for snapshots and tests.
func (s *Spawner) Timers() (hostile, obstacle, pickup float64) {
	return s.hostileTimer, s.obstacleTimer, s.pickupTimer
}

// Advance burns dt from every timer and returns whatever came due. field is
// the playfield entities spawn into.
func (s *Spawner) Advance(dt, factor float64, field Bounds) SpawnBatch {
	var batch SpawnBatch

	s.hostileTimer -= dt
	if s.hostileTimer <= 0 {
		batch.Hostiles = append(batch.Hostiles, s.makeHostile(factor, field))
		s.hostileTimer = s.difficulty.Interval(s.cfg.Spawn.Hostile, factor, s.rng.Float64())
	}

	s.obstacleTimer -= dt
	if s.obstacleTimer <= 0 {
		batch.Obstacles = append(batch.Obstacles, s.makeObstacle(field))
		s.obstacleTimer = s.difficulty.Interval(s.cfg.Spawn.Obstacle, factor, s.rng.Float64())
	}

	s.pickupTimer -= dt
	if s.pickupTimer <= 0 {
		batch.Pickups = append(batch.Pickups, s.makePickup(field))
		s.pickupTimer = s.difficulty.Interval(s.cfg.Spawn.Pickup, factor, s.rng.Float64())
	}

	return batch
}

// makeHostile rolls a variant by weight and builds it above the top edge.
// Fall speed scales with the difficulty factor plus a per-spawn jitter.
func (s *Spawner) makeHostile(factor float64, field Bounds) Hostile {
	hc := s.cfg.Hostiles

	variant := s.rollVariant()
	jitter := 1.0 + s.rng.Between(-hc.SpeedJitter, hc.SpeedJitter)

	h := Hostile{
		Pos: core.Vec2{
			X: s.rng.Between(field.MinX+1, field.MaxX-1),
			Y: field.MinY - spawnHeadroom,
		},
		Vel:     core.Vec2{Y: hc.BaseSpeed * s.difficulty.SpeedScale(factor) * jitter},
		Radius:  hc.Radius,
		Variant: variant,
		HP:      s.difficulty.HitPoints(factor, 1+s.rng.Intn(2)),
	}

	if variant != VariantStraight {
		h.Amp = hc.WeaveAmplitude * s.rng.Between(0.7, 1.3)
		h.Freq = hc.WeaveFrequency * s.rng.Between(0.8, 1.2)
		h.Phase = s.rng.Between(0, 2*math.Pi)
	}
	return h
}

// rollVariant draws a hostile variant from the configured weights with a
// cumulative scan.
func (s *Spawner) rollVariant() HostileVariant {
	w := s.cfg.Hostiles.Weights
	total := w.Straight + w.Weaver + w.Sine
	if total <= 0 {
		return VariantStraight
	}
	roll := s.rng.Intn(total)
	if roll < w.Straight {
		return VariantStraight
	}
	if roll < w.Straight+w.Weaver {
		return VariantWeaver
	}
	return VariantSine
}

// makeObstacle builds a tumbling debris chunk with randomized size, fall
// speed, sideways drift and spin.
func (s *Spawner) makeObstacle(field Bounds) Obstacle {
	oc := s.cfg.Obstacles

	radius := s.rng.Between(oc.MinRadius, oc.MaxRadius)
	spin := s.rng.Between(0.5, oc.MaxSpin)
	if s.rng.Chance(0.5) {
		spin = -spin
	}

	return Obstacle{
		Pos: core.Vec2{
			X: s.rng.Between(field.MinX+1, field.MaxX-1),
			Y: field.MinY - spawnHeadroom - radius,
		},
		Vel: core.Vec2{
			X: s.rng.Between(-oc.DriftSpeed, oc.DriftSpeed),
			Y: s.rng.Between(oc.MinSpeed, oc.MaxSpeed),
		},
		Radius: radius,
		Spin:   spin,
	}
}

// makePickup builds a drifting pickup with a weighted kind.
func (s *Spawner) makePickup(field Bounds) Pickup {
	pc := s.cfg.Pickups
	return Pickup{
		Pos: core.Vec2{
			X: s.rng.Between(field.MinX+1, field.MaxX-1),
			Y: field.MinY - spawnHeadroom,
		},
		Vel:    core.Vec2{Y: pc.FallSpeed},
		Radius: pc.Radius,
		Kind:   s.rollPickupKind(),
		Life:   pc.Lifetime,
	}
}

// rollPickupKind draws a pickup kind from the configured weights.
func (s *Spawner) rollPickupKind() PickupKind {
	w := s.cfg.Pickups.Weights
	total := w.Shield + w.Rapid + w.Heal
	if total <= 0 {
		return PickupHeal
	}
	roll := s.rng.Intn(total)
	if roll < w.Shield {
		return PickupShield
	}
	if roll < w.Shield+w.Rapid {
		return PickupRapid
	}
	return PickupHeal
}

// RollDrop possibly creates a pickup where a hostile was destroyed.
func (s *Spawner) RollDrop(pos core.Vec2) (Pickup, bool) {
	pc := s.cfg.Pickups
	if !s.rng.Chance(pc.DropChance) {
		return Pickup{}, false
	}
	return Pickup{
		Pos:    pos,
		Vel:    core.Vec2{Y: pc.FallSpeed},
		Radius: pc.Radius,
		Kind:   s.rollPickupKind(),
		Life:   pc.Lifetime,
	}, true
}
