package drift

import (
	"math"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

// cullMargin is how far past the playfield an entity may travel before it is
// dropped from its pool.
const cullMargin = 4.0

// Bounds is a playfield rectangle in continuous cell coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ClampVec fits a point into the bounds.
func (b Bounds) ClampVec(v core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(v.X, b.MinX, b.MaxX),
		Y: core.ClampF(v.Y, b.MinY, b.MaxY),
	}
}

// Outside reports whether a circle has fully left the bounds by more than
// the cull margin. Entities spawn slightly above the top edge, which the
// margin deliberately tolerates.
func (b Bounds) Outside(pos core.Vec2, radius float64) bool {
	return pos.X < b.MinX-radius-cullMargin ||
		pos.X > b.MaxX+radius+cullMargin ||
		pos.Y < b.MinY-radius-cullMargin ||
		pos.Y > b.MaxY+radius+cullMargin
}

// HostileVariant selects a hostile movement pattern.
type HostileVariant int

const (
	VariantStraight HostileVariant = iota // falls on its spawn velocity
	VariantWeaver                         // zigzags, sideways speed tied to time and depth
	VariantSine                           // sways on a pure sine of time
)

// String returns a human-readable name for the variant.
func (v HostileVariant) String() string {
	switch v {
	case VariantStraight:
		return "straight"
	case VariantWeaver:
		return "weaver"
	case VariantSine:
		return "sine"
	default:
		return "unknown"
	}
}

// Projectile is a shot fired by the craft. It dies on its first hit, when
// its lifetime runs out, or when it leaves the field.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Life   float64 // seconds remaining
	Color  core.Color
}

func (p *Projectile) advance(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
}

// Hostile is an enemy craft descending the playfield.
type Hostile struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Radius  float64
	Variant HostileVariant
	HP      int

	// Oscillation parameters, rolled at spawn for the moving variants.
	Amp   float64 // sideways speed scale
	Freq  float64 // radians per second
	Phase float64
}

// advance moves the hostile. Oscillating variants derive their sideways
// velocity from the global clock each frame; straight ones keep whatever the
// spawner gave them.
func (h *Hostile) advance(dt, now float64) {
	switch h.Variant {
	case VariantWeaver:
		h.Vel.X = h.Amp * math.Sin(now*h.Freq+h.Phase+h.Pos.Y*0.35)
	case VariantSine:
		h.Vel.X = h.Amp * math.Sin(now*h.Freq+h.Phase)
	}
	h.Pos = h.Pos.Add(h.Vel.Scale(dt))
}

// Obstacle is tumbling debris. It cannot be shot down; the craft has to
// steer around it.
type Obstacle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Angle  float64 // current rotation in radians, kept in [0, 2π)
	Spin   float64 // radians per second, signed
}

func (o *Obstacle) advance(dt float64) {
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	o.Angle = math.Mod(o.Angle+o.Spin*dt, 2*math.Pi)
	if o.Angle < 0 {
		o.Angle += 2 * math.Pi
	}
}

// spinGlyph bins the rotation into four spokes for rendering.
func (o *Obstacle) spinGlyph() rune {
	spokes := [...]rune{'│', '╱', '─', '╲'}
	a := math.Mod(o.Angle, math.Pi)
	idx := int(a / (math.Pi / 4))
	if idx >= len(spokes) {
		idx = len(spokes) - 1
	}
	return spokes[idx]
}

// PickupKind selects a pickup effect.
type PickupKind int

const (
	PickupShield PickupKind = iota // timed damage immunity
	PickupRapid                    // timed triple-shot with a shorter cooldown
	PickupHeal                     // instant health restore
)

// String returns a human-readable name for the pickup kind.
func (k PickupKind) String() string {
	switch k {
	case PickupShield:
		return "shield"
	case PickupRapid:
		return "rapid"
	case PickupHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// Pickup is a floating power-up drifting down the field. Uncollected pickups
// fade after their lifetime.
type Pickup struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Kind   PickupKind
	Life   float64 // seconds before it fades
}

func (p *Pickup) advance(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
}
