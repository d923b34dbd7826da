package drift

import (
	"math"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
// Screen geometry and the decorative starfield are not part of it.
type Snapshot struct {
	Tick         uint64
	Elapsed      float64
	State        string
	Score        int
	Health       int
	FireMode     bool
	FireCooldown float64

	CraftX, CraftY   float64
	TargetX, TargetY float64
	ShieldLeft       float64
	RapidLeft        float64

	HostileTimer  float64
	ObstacleTimer float64
	PickupTimer   float64

	// Each projectile is 7 floats: X, Y, VX, VY, Radius, Life, Color
	ProjectileCount int
	ProjectileData  []float64

	// Each hostile is 10 floats: X, Y, VX, VY, Radius, Variant, HP, Amp, Freq, Phase
	HostileCount int
	HostileData  []float64

	// Each obstacle is 7 floats: X, Y, VX, VY, Radius, Angle, Spin
	ObstacleCount int
	ObstacleData  []float64

	// Each pickup is 7 floats: X, Y, VX, VY, Radius, Kind, Life
	PickupCount int
	PickupData  []float64

	RNGState uint64
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	projectileData := make([]float64, len(g.projectiles)*7)
	for i, p := range g.projectiles {
		idx := i * 7
		projectileData[idx] = p.Pos.X
		projectileData[idx+1] = p.Pos.Y
		projectileData[idx+2] = p.Vel.X
		projectileData[idx+3] = p.Vel.Y
		projectileData[idx+4] = p.Radius
		projectileData[idx+5] = p.Life
		projectileData[idx+6] = float64(p.Color)
	}

	hostileData := make([]float64, len(g.hostiles)*10)
	for i, h := range g.hostiles {
		idx := i * 10
		hostileData[idx] = h.Pos.X
		hostileData[idx+1] = h.Pos.Y
		hostileData[idx+2] = h.Vel.X
		hostileData[idx+3] = h.Vel.Y
		hostileData[idx+4] = h.Radius
		hostileData[idx+5] = float64(h.Variant)
		hostileData[idx+6] = float64(h.HP)
		hostileData[idx+7] = h.Amp
		hostileData[idx+8] = h.Freq
		hostileData[idx+9] = h.Phase
	}

	obstacleData := make([]float64, len(g.obstacles)*7)
	for i, o := range g.obstacles {
		idx := i * 7
		obstacleData[idx] = o.Pos.X
		obstacleData[idx+1] = o.Pos.Y
		obstacleData[idx+2] = o.Vel.X
		obstacleData[idx+3] = o.Vel.Y
		obstacleData[idx+4] = o.Radius
		obstacleData[idx+5] = o.Angle
		obstacleData[idx+6] = o.Spin
	}

	pickupData := make([]float64, len(g.pickups)*7)
	for i, p := range g.pickups {
		idx := i * 7
		pickupData[idx] = p.Pos.X
		pickupData[idx+1] = p.Pos.Y
		pickupData[idx+2] = p.Vel.X
		pickupData[idx+3] = p.Vel.Y
		pickupData[idx+4] = p.Radius
		pickupData[idx+5] = float64(p.Kind)
		pickupData[idx+6] = p.Life
	}

	hostileTimer, obstacleTimer, pickupTimer := g.spawner.Timers()
	target := g.tracker.Target()

	return Snapshot{
		Tick:         g.tick,
		Elapsed:      g.elapsed,
		State:        g.state,
		Score:        g.score,
		Health:       g.health,
		FireMode:     g.fireMode,
		FireCooldown: g.fireCooldown,

		CraftX:     g.craft.Pos.X,
		CraftY:     g.craft.Pos.Y,
		TargetX:    target.X,
		TargetY:    target.Y,
		ShieldLeft: g.craft.ShieldLeft,
		RapidLeft:  g.craft.RapidLeft,

		HostileTimer:  hostileTimer,
		ObstacleTimer: obstacleTimer,
		PickupTimer:   pickupTimer,

		ProjectileCount: len(g.projectiles),
		ProjectileData:  projectileData,
		HostileCount:    len(g.hostiles),
		HostileData:     hostileData,
		ObstacleCount:   len(g.obstacles),
		ObstacleData:    obstacleData,
		PickupCount:     len(g.pickups),
		PickupData:      pickupData,

		RNGState: g.rng.State(),
	}
}

// ApplySnapshot restores simulation state from a snapshot. The game must
// already be Reset with the same runtime config the snapshot came from.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.elapsed = snap.Elapsed
	g.state = snap.State
	g.score = snap.Score
	g.health = snap.Health
	g.fireMode = snap.FireMode
	g.fireCooldown = snap.FireCooldown

	g.craft.Pos.X = snap.CraftX
	g.craft.Pos.Y = snap.CraftY
	g.craft.ShieldLeft = snap.ShieldLeft
	g.craft.RapidLeft = snap.RapidLeft
	g.tracker.Reset(core.Vec2{X: snap.TargetX, Y: snap.TargetY}, g.cfg.Craft.KeyNudge)

	g.spawner.hostileTimer = snap.HostileTimer
	g.spawner.obstacleTimer = snap.ObstacleTimer
	g.spawner.pickupTimer = snap.PickupTimer

	g.projectiles = g.projectiles[:0]
	for i := range snap.ProjectileCount {
		idx := i * 7
		if idx+6 >= len(snap.ProjectileData) {
			break
		}
		g.projectiles = append(g.projectiles, Projectile{
			Pos:    core.Vec2{X: snap.ProjectileData[idx], Y: snap.ProjectileData[idx+1]},
			Vel:    core.Vec2{X: snap.ProjectileData[idx+2], Y: snap.ProjectileData[idx+3]},
			Radius: snap.ProjectileData[idx+4],
			Life:   snap.ProjectileData[idx+5],
			Color:  core.Color(snap.ProjectileData[idx+6]),
		})
	}

	g.hostiles = g.hostiles[:0]
	for i := range snap.HostileCount {
		idx := i * 10
		if idx+9 >= len(snap.HostileData) {
			break
		}
		g.hostiles = append(g.hostiles, Hostile{
			Pos:     core.Vec2{X: snap.HostileData[idx], Y: snap.HostileData[idx+1]},
			Vel:     core.Vec2{X: snap.HostileData[idx+2], Y: snap.HostileData[idx+3]},
			Radius:  snap.HostileData[idx+4],
			Variant: HostileVariant(snap.HostileData[idx+5]),
			HP:      int(snap.HostileData[idx+6]),
			Amp:     snap.HostileData[idx+7],
			Freq:    snap.HostileData[idx+8],
			Phase:   snap.HostileData[idx+9],
		})
	}

	g.obstacles = g.obstacles[:0]
	for i := range snap.ObstacleCount {
		idx := i * 7
		if idx+6 >= len(snap.ObstacleData) {
			break
		}
		g.obstacles = append(g.obstacles, Obstacle{
			Pos:    core.Vec2{X: snap.ObstacleData[idx], Y: snap.ObstacleData[idx+1]},
			Vel:    core.Vec2{X: snap.ObstacleData[idx+2], Y: snap.ObstacleData[idx+3]},
			Radius: snap.ObstacleData[idx+4],
			Angle:  snap.ObstacleData[idx+5],
			Spin:   snap.ObstacleData[idx+6],
		})
	}

	g.pickups = g.pickups[:0]
	for i := range snap.PickupCount {
		idx := i * 7
		if idx+6 >= len(snap.PickupData) {
			break
		}
		g.pickups = append(g.pickups, Pickup{
			Pos:    core.Vec2{X: snap.PickupData[idx], Y: snap.PickupData[idx+1]},
			Vel:    core.Vec2{X: snap.PickupData[idx+2], Y: snap.PickupData[idx+3]},
			Radius: snap.PickupData[idx+4],
			Kind:   PickupKind(snap.PickupData[idx+5]),
			Life:   snap.PickupData[idx+6],
		})
	}

	g.rng.state = snap.RNGState
}

// stateRank maps a session state to a stable small number for hashing.
func stateRank(state string) uint64 {
	switch state {
	case StatePaused:
		return 1
	case StateGameOver:
		return 2
	default:
		return 0
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + stateRank(snap.State)
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health) //#nosec G115 -- hash computation
	if snap.FireMode {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + math.Float64bits(snap.FireCooldown)

	h = h*31 + math.Float64bits(snap.CraftX)
	h = h*31 + math.Float64bits(snap.CraftY)
	h = h*31 + math.Float64bits(snap.TargetX)
	h = h*31 + math.Float64bits(snap.TargetY)
	h = h*31 + math.Float64bits(snap.ShieldLeft)
	h = h*31 + math.Float64bits(snap.RapidLeft)

	h = h*31 + math.Float64bits(snap.HostileTimer)
	h = h*31 + math.Float64bits(snap.ObstacleTimer)
	h = h*31 + math.Float64bits(snap.PickupTimer)

	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HostileCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickupCount)     //#nosec G115 -- hash computation

	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.HostileData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PickupData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
