package drift

import (
	"github.com/Charu-web/Neon-Drift/internal/config"
	"github.com/Charu-web/Neon-Drift/internal/core"
	"github.com/Charu-web/Neon-Drift/internal/registry"
)

// Session phases. A session starts playing, flips between playing and paused,
// and parks in game over until the player restarts.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// hudRows is how many rows at the top belong to the HUD, not the playfield.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// presetFromName maps a preset name from the runtime config to a known
// difficulty preset. Unknown names fall back to no preset.
func presetFromName(name string) config.DifficultyPreset {
	switch name {
	case "easy":
		return config.DifficultyEasy
	case "normal":
		return config.DifficultyNormal
	case "hard":
		return config.DifficultyHard
	case "fixed":
		return config.DifficultyFixed
	default:
		return ""
	}
}

// Game implements the Neon Drift simulation.
type Game struct {
	// Entity pools
	craft       Craft
	projectiles []Projectile
	hostiles    []Hostile
	obstacles   []Obstacle
	pickups     []Pickup

	// Subsystems
	tracker TargetTracker
	spawner *Spawner
	stars   *Starfield
	rng     *RNG

	// Session state
	state        string
	score        int
	health       int
	fireMode     bool
	fireCooldown float64
	elapsed      float64 // simulated seconds since the run started
	tick         uint64

	// Scratch event buffer, reused between frames
	events []core.Event

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.DriftConfig
	difficulty *config.DifficultyManager

	// Layout
	w, h           int
	frameDT        float64 // nominal seconds per frame, used for backdrop scroll
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new drift game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "drift"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Drift"
}

// Reset initializes the session from scratch.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadDrift(configPath)
	if err != nil {
		cfg = config.DefaultDriftConfig()
	}

	// Apply difficulty preset if the session asked for one
	if preset := presetFromName(runtime.Difficulty); preset != "" {
		config.ApplyDriftPreset(&cfg, preset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = NewRNG(runtime.Seed)

	g.w = runtime.ScreenW
	g.h = runtime.ScreenH
	if runtime.TickRate > 0 {
		g.frameDT = 1.0 / float64(runtime.TickRate)
	} else {
		g.frameDT = 1.0 / 60.0
	}

	// Check screen size
	g.minScreenW = 36
	g.minScreenH = 14
	g.screenTooSmall = g.w < g.minScreenW || g.h < g.minScreenH

	// The backdrop survives restarts, so it is only built on a full reset.
	// It gets a derived seed to keep its draws off the gameplay stream.
	g.stars = NewStarfield(cfg.Starfield.Count, g.w, g.h, cfg.Starfield.BaseSpeed, runtime.Seed^0x5ee7)

	g.startRun()
}

// startRun zeroes the per-run state. Shared with the in-session restart,
// which deliberately keeps the starfield and the RNG stream.
func (g *Game) startRun() {
	b := g.craftBounds()

	g.craft = Craft{
		Pos: core.Vec2{
			X: (b.MinX + b.MaxX) / 2,
			Y: b.MinY + (b.MaxY-b.MinY)*0.75,
		},
		Radius: g.cfg.Craft.Radius,
		Speed:  g.cfg.Craft.Speed,
	}
	g.tracker.Reset(g.craft.Pos, g.cfg.Craft.KeyNudge)

	g.projectiles = g.projectiles[:0]
	g.hostiles = g.hostiles[:0]
	g.obstacles = g.obstacles[:0]
	g.pickups = g.pickups[:0]

	g.score = 0
	g.health = g.cfg.Craft.MaxHealth
	g.fireMode = false
	g.fireCooldown = 0
	g.elapsed = 0
	g.tick = 0
	g.state = StatePlaying

	g.spawner = NewSpawner(&g.cfg, g.difficulty, g.rng, g.difficulty.Factor(0))
}

// field returns the full playfield rectangle below the HUD.
func (g *Game) field() Bounds {
	return Bounds{
		MinX: 0,
		MinY: hudRows,
		MaxX: float64(g.w - 1),
		MaxY: float64(g.h - 1),
	}
}

// craftBounds returns the area the craft center may occupy: the field shrunk
// by the craft radius plus the configured margin.
func (g *Game) craftBounds() Bounds {
	f := g.field()
	pad := g.cfg.Craft.Radius + g.cfg.Craft.Margin
	return Bounds{
		MinX: f.MinX + pad,
		MinY: f.MinY + pad,
		MaxX: f.MaxX - pad,
		MaxY: f.MaxY - pad,
	}
}

// Resize adapts to a new terminal size without resetting the session.
// Entities stranded outside the new field cull on the next frame.
func (g *Game) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == g.w && h == g.h) {
		return
	}
	g.w, g.h = w, h
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH

	b := g.craftBounds()
	g.craft.Pos = b.ClampVec(g.craft.Pos)
	g.tracker.Clamp(b)
	g.stars.Resize(w, h)
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	// Session transitions first; they work even while frozen.
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.startRun()
		return g.result()
	}

	// Pause honors press parity: two toggles inside one frame cancel out.
	if g.state != StateGameOver && in.Count(core.ActionPause)%2 == 1 {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return g.result()
	}

	if in.Count(core.ActionFireToggle)%2 == 1 {
		g.fireMode = !g.fireMode
	}

	if dt < 0 {
		dt = 0
	}
	if dt > core.MaxStep {
		dt = core.MaxStep
	}
	g.elapsed += dt
	g.tick++

	factor := g.difficulty.Factor(g.score)
	field := g.field()
	cb := g.craftBounds()

	// 1. Craft chases its movement target.
	g.tracker.Apply(in, dt, cb)
	g.craft.moveToward(g.tracker.Target(), dt, cb)

	// 2. Burn the fire cooldown.
	g.fireCooldown -= dt

	// 3. Fire while the toggle is on.
	if g.fireMode && g.fireCooldown <= 0 {
		g.fire()
	}

	// 4. Spawn whatever came due.
	batch := g.spawner.Advance(dt, factor, field)
	g.hostiles = append(g.hostiles, batch.Hostiles...)
	g.obstacles = append(g.obstacles, batch.Obstacles...)
	g.pickups = append(g.pickups, batch.Pickups...)

	// 5. Advance everything.
	for i := range g.projectiles {
		g.projectiles[i].advance(dt)
	}
	for i := range g.hostiles {
		g.hostiles[i].advance(dt, g.elapsed)
	}
	for i := range g.obstacles {
		g.obstacles[i].advance(dt)
	}
	for i := range g.pickups {
		g.pickups[i].advance(dt)
	}

	// 6. Cull what expired or left the field.
	g.cull(field)

	// 7. Collisions, in fixed priority order.
	g.collideProjectiles()
	g.collideCraft()

	// 8. Status timers decay after collisions.
	g.craft.decayStatus(dt)

	// 9. Session end.
	if g.health <= 0 {
		g.state = StateGameOver
	}

	return g.result()
}

// result packages the state and a copy of this frame's events.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// emit queues a feedback event with its x normalized to [0, 1].
func (g *Game) emit(kind core.EventKind, x float64) {
	nx := 0.5
	if g.w > 1 {
		nx = core.ClampF(x/float64(g.w-1), 0, 1)
	}
	g.events = append(g.events, core.Event{Kind: kind, X: nx})
}

// fire emits one volley from the craft nose and re-arms the cooldown. Rapid
// fire shortens the cooldown and adds two angled side shots.
func (g *Game) fire() {
	wc := g.cfg.Weapons

	if g.craft.RapidLeft > 0 {
		g.fireCooldown = wc.RapidCooldown
	} else {
		g.fireCooldown = wc.Cooldown
	}

	nose := core.Vec2{X: g.craft.Pos.X, Y: g.craft.Pos.Y - g.craft.Radius - 0.5}
	g.projectiles = append(g.projectiles, Projectile{
		Pos:    nose,
		Vel:    core.Vec2{Y: -wc.ProjectileSpeed},
		Radius: wc.Radius,
		Life:   wc.ProjectileLife,
		Color:  core.ColorBrightYellow,
	})

	if g.craft.RapidLeft > 0 {
		for _, vx := range [2]float64{-wc.SpreadX, wc.SpreadX} {
			g.projectiles = append(g.projectiles, Projectile{
				Pos:    nose,
				Vel:    core.Vec2{X: vx, Y: -wc.ProjectileSpeed},
				Radius: wc.Radius,
				Life:   wc.ProjectileLife,
				Color:  core.ColorBrightMagenta,
			})
		}
	}

	g.emit(core.EventShoot, g.craft.Pos.X)
}

// cull drops expired projectiles and pickups plus anything fully outside the
// field. In-place filtering keeps the pool allocations alive.
func (g *Game) cull(field Bounds) {
	projectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Life > 0 && !field.Outside(p.Pos, p.Radius) {
			projectiles = append(projectiles, p)
		}
	}
	g.projectiles = projectiles

	hostiles := g.hostiles[:0]
	for _, h := range g.hostiles {
		if !field.Outside(h.Pos, h.Radius) {
			hostiles = append(hostiles, h)
		}
	}
	g.hostiles = hostiles

	obstacles := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !field.Outside(o.Pos, o.Radius) {
			obstacles = append(obstacles, o)
		}
	}
	g.obstacles = obstacles

	pickups := g.pickups[:0]
	for _, p := range g.pickups {
		if p.Life > 0 && !field.Outside(p.Pos, p.Radius) {
			pickups = append(pickups, p)
		}
	}
	g.pickups = pickups
}

// collideProjectiles resolves projectile-hostile contacts. Each projectile
// is consumed by its first hit; a destroyed hostile scores, may drop a
// pickup, and is removed in the same frame.
func (g *Game) collideProjectiles() {
	for pi := range g.projectiles {
		p := &g.projectiles[pi]
		if p.Life <= 0 {
			continue
		}
		for hi := range g.hostiles {
			h := &g.hostiles[hi]
			if h.HP <= 0 {
				continue
			}
			if !core.CirclesOverlap(p.Pos, p.Radius, h.Pos, h.Radius) {
				continue
			}

			p.Life = 0 // consumed
			h.HP--
			if h.HP <= 0 {
				g.score += g.cfg.Hostiles.Points
				g.emit(core.EventDestroy, h.Pos.X)
				if drop, ok := g.spawner.RollDrop(h.Pos); ok {
					g.pickups = append(g.pickups, drop)
				}
			} else {
				g.emit(core.EventHit, h.Pos.X)
			}
			break
		}
	}

	// Sweep out consumed projectiles and destroyed hostiles.
	projectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Life > 0 {
			projectiles = append(projectiles, p)
		}
	}
	g.projectiles = projectiles

	hostiles := g.hostiles[:0]
	for _, h := range g.hostiles {
		if h.HP > 0 {
			hostiles = append(hostiles, h)
		}
	}
	g.hostiles = hostiles
}

// collideCraft resolves craft contacts: hostiles, then obstacles, then
// pickups. Contact removes the other entity in every case.
func (g *Game) collideCraft() {
	hostiles := g.hostiles[:0]
	for _, h := range g.hostiles {
		if core.CirclesOverlap(g.craft.Pos, g.craft.Radius, h.Pos, h.Radius) {
			g.applyDamage(g.cfg.Hostiles.ContactDamage, h.Pos.X)
			continue
		}
		hostiles = append(hostiles, h)
	}
	g.hostiles = hostiles

	obstacles := g.obstacles[:0]
	for _, o := range g.obstacles {
		if core.CirclesOverlap(g.craft.Pos, g.craft.Radius, o.Pos, o.Radius) {
			g.applyDamage(g.cfg.Obstacles.ContactDamage, o.Pos.X)
			continue
		}
		obstacles = append(obstacles, o)
	}
	g.obstacles = obstacles

	pickups := g.pickups[:0]
	for _, p := range g.pickups {
		if core.CirclesOverlap(g.craft.Pos, g.craft.Radius, p.Pos, p.Radius) {
			g.applyPickup(p)
			continue
		}
		pickups = append(pickups, p)
	}
	g.pickups = pickups
}

// applyDamage reduces health unless the shield holds. The hit feedback fires
// either way so an absorbed blow still thumps.
func (g *Game) applyDamage(amount int, x float64) {
	g.emit(core.EventHit, x)
	if g.craft.shielded() {
		return
	}
	g.health = core.Clamp(g.health-amount, 0, g.cfg.Craft.MaxHealth)
}

// applyPickup grants the pickup's effect.
func (g *Game) applyPickup(p Pickup) {
	switch p.Kind {
	case PickupShield:
		g.craft.ShieldLeft = g.cfg.Pickups.ShieldDuration
	case PickupRapid:
		g.craft.RapidLeft = g.cfg.Pickups.RapidDuration
	case PickupHeal:
		g.health = core.Clamp(g.health+g.cfg.Pickups.HealAmount, 0, g.cfg.Craft.MaxHealth)
	}
	g.emit(core.EventPickup, p.Pos.X)
}

// State returns the HUD-facing session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Health:     g.health,
		Level:      g.difficulty.Level(g.score),
		Running:    g.state == StatePlaying,
		Paused:     g.state == StatePaused,
		GameOver:   g.state == StateGameOver,
		FireMode:   g.fireMode,
		ShieldLeft: g.craft.ShieldLeft,
		RapidLeft:  g.craft.RapidLeft,
	}
}

// Register the game with the registry
func init() {
	registry.Register("drift", func() registry.Game {
		return New()
	})
}
