package drift

import "github.com/Charu-web/Neon-Drift/internal/core"

// Craft is the player ship.
type Craft struct {
	Pos    core.Vec2
	Radius float64
	Speed  float64 // cells per second toward the movement target

	ShieldLeft float64 // seconds of damage immunity remaining
	RapidLeft  float64 // seconds of rapid fire remaining
}

// moveToward advances the craft toward the target at its speed budget for
// this frame, then re-clamps into bounds.
func (c *Craft) moveToward(target core.Vec2, dt float64, b Bounds) {
	c.Pos = core.MoveToward(c.Pos, target, c.Speed*dt)
	c.Pos = b.ClampVec(c.Pos)
}

// decayStatus burns down the shield and rapid-fire timers, floored at zero.
func (c *Craft) decayStatus(dt float64) {
	c.ShieldLeft -= dt
	if c.ShieldLeft < 0 {
		c.ShieldLeft = 0
	}
	c.RapidLeft -= dt
	if c.RapidLeft < 0 {
		c.RapidLeft = 0
	}
}

// shielded reports whether incoming damage is currently absorbed.
func (c *Craft) shielded() bool {
	return c.ShieldLeft > 0
}
