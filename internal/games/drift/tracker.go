package drift

import "github.com/Charu-web/Neon-Drift/internal/core"

// TargetTracker turns raw input into the craft's movement target. A pointer
// drag pins the target directly; otherwise held movement keys nudge it at a
// fixed rate. The target itself always stays inside the craft bounds, so the
// craft can never be steered out of the field no matter how long a key is
// held.
type TargetTracker struct {
	target core.Vec2
	nudge  float64 // target cells per second while a key is held
}

// Reset pins the target onto a position, usually the craft spawn point.
func (t *TargetTracker) Reset(pos core.Vec2, nudge float64) {
	t.target = pos
	t.nudge = nudge
}

// Apply folds one frame of input into the target.
func (t *TargetTracker) Apply(in core.InputFrame, dt float64, b Bounds) {
	if in.PointerActive {
		t.target = b.ClampVec(core.Vec2{X: in.PointerX, Y: in.PointerY})
		return
	}

	step := t.nudge * dt
	if in.Has(core.ActionMoveLeft) {
		t.target.X -= step
	}
	if in.Has(core.ActionMoveRight) {
		t.target.X += step
	}
	if in.Has(core.ActionMoveUp) {
		t.target.Y -= step
	}
	if in.Has(core.ActionMoveDown) {
		t.target.Y += step
	}
	t.target = b.ClampVec(t.target)
}

// Target returns the current movement target.
func (t *TargetTracker) Target() core.Vec2 {
	return t.target
}

// Clamp re-fits the target after a playfield resize.
func (t *TargetTracker) Clamp(b Bounds) {
	t.target = b.ClampVec(t.target)
}
