package drift

import (
	"math"
	"testing"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

func TestObstacleAngleWraps(t *testing.T) {
	o := Obstacle{Angle: 6.0, Spin: 1.0}
	o.advance(1)

	if o.Angle < 0 || o.Angle >= 2*math.Pi {
		t.Fatalf("angle = %v, want [0, 2π)", o.Angle)
	}
	want := math.Mod(7.0, 2*math.Pi)
	if math.Abs(o.Angle-want) > 1e-12 {
		t.Errorf("angle = %v, want %v", o.Angle, want)
	}
}

func TestObstacleAngleWrapsNegative(t *testing.T) {
	o := Obstacle{Angle: 0.1, Spin: -1.0}
	o.advance(1)

	if o.Angle < 0 || o.Angle >= 2*math.Pi {
		t.Fatalf("angle = %v, want [0, 2π)", o.Angle)
	}
	want := 2*math.Pi - 0.9
	if math.Abs(o.Angle-want) > 1e-9 {
		t.Errorf("angle = %v, want %v", o.Angle, want)
	}
}

func TestSpinGlyphSpokes(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{math.Pi / 8, '│'},
		{3 * math.Pi / 8, '╱'},
		{5 * math.Pi / 8, '─'},
		{7 * math.Pi / 8, '╲'},
		{math.Pi + math.Pi/8, '│'}, // spokes repeat every half turn
		{3*math.Pi/2 + math.Pi/8, '─'},
	}

	for _, tt := range tests {
		o := Obstacle{Angle: tt.angle}
		if got := o.spinGlyph(); got != tt.want {
			t.Errorf("spinGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestWeaverVelocityTracksClockAndDepth(t *testing.T) {
	h := Hostile{
		Variant: VariantWeaver,
		Pos:     core.Vec2{X: 10, Y: 4},
		Vel:     core.Vec2{Y: 5},
		Amp:     6,
		Freq:    2,
		Phase:   0.5,
	}
	h.advance(0.016, 1.25)

	want := 6 * math.Sin(1.25*2+0.5+4*0.35)
	if math.Abs(h.Vel.X-want) > 1e-12 {
		t.Errorf("weaver vx = %v, want %v", h.Vel.X, want)
	}
	if math.Abs(h.Pos.Y-4.08) > 1e-9 {
		t.Errorf("weaver y = %v, want 4.08", h.Pos.Y)
	}
}

func TestSineVelocityIgnoresDepth(t *testing.T) {
	a := Hostile{Variant: VariantSine, Pos: core.Vec2{Y: 2}, Amp: 6, Freq: 2, Phase: 0.5}
	b := Hostile{Variant: VariantSine, Pos: core.Vec2{Y: 18}, Amp: 6, Freq: 2, Phase: 0.5}

	a.advance(0.016, 3)
	b.advance(0.016, 3)

	if a.Vel.X != b.Vel.X {
		t.Errorf("sine sway should not depend on depth: %v vs %v", a.Vel.X, b.Vel.X)
	}
}

func TestStraightHostileKeepsVelocity(t *testing.T) {
	h := Hostile{Variant: VariantStraight, Vel: core.Vec2{Y: 7}}
	h.advance(0.5, 10)

	if h.Vel.X != 0 {
		t.Errorf("straight hostile grew sideways velocity %v", h.Vel.X)
	}
	if math.Abs(h.Pos.Y-3.5) > 1e-9 {
		t.Errorf("straight hostile y = %v, want 3.5", h.Pos.Y)
	}
}

func TestProjectileAdvance(t *testing.T) {
	p := Projectile{
		Pos:  core.Vec2{X: 5, Y: 10},
		Vel:  core.Vec2{Y: -26},
		Life: 1.6,
	}
	p.advance(0.1)

	if math.Abs(p.Pos.Y-7.4) > 1e-9 {
		t.Errorf("projectile y = %v, want 7.4", p.Pos.Y)
	}
	if math.Abs(p.Life-1.5) > 1e-9 {
		t.Errorf("projectile life = %v, want 1.5", p.Life)
	}
}

func TestPickupFades(t *testing.T) {
	p := Pickup{Pos: core.Vec2{X: 5, Y: 5}, Vel: core.Vec2{Y: 5.5}, Life: 0.3}

	p.advance(0.1)
	if math.Abs(p.Life-0.2) > 1e-9 {
		t.Errorf("pickup life = %v, want 0.2", p.Life)
	}

	p.advance(0.3)
	if p.Life > 0 {
		t.Errorf("pickup should be expired, life = %v", p.Life)
	}
}

func TestBoundsOutside(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 1, MaxX: 59, MaxY: 23}

	tests := []struct {
		name   string
		pos    core.Vec2
		radius float64
		want   bool
	}{
		{"center", core.Vec2{X: 30, Y: 12}, 1, false},
		{"on edge", core.Vec2{X: 59, Y: 23}, 1, false},
		{"spawn headroom above top", core.Vec2{X: 30, Y: 1 - spawnHeadroom}, 1, false},
		{"at the cull line", core.Vec2{X: 59 + 1 + cullMargin, Y: 12}, 1, false},
		{"past the cull line", core.Vec2{X: 59 + 1 + cullMargin + 0.01, Y: 12}, 1, true},
		{"far below", core.Vec2{X: 30, Y: 40}, 1, true},
		{"far left", core.Vec2{X: -20, Y: 12}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Outside(tt.pos, tt.radius); got != tt.want {
				t.Errorf("Outside(%+v, %v) = %v, want %v", tt.pos, tt.radius, got, tt.want)
			}
		})
	}
}

func TestBoundsClampVec(t *testing.T) {
	b := Bounds{MinX: 2, MinY: 3, MaxX: 57, MaxY: 21}

	got := b.ClampVec(core.Vec2{X: -10, Y: 50})
	if got != (core.Vec2{X: 2, Y: 21}) {
		t.Errorf("ClampVec = %+v, want (2, 21)", got)
	}

	inside := core.Vec2{X: 30, Y: 12}
	if b.ClampVec(inside) != inside {
		t.Error("ClampVec should not move an inside point")
	}
}

func TestVariantAndKindNames(t *testing.T) {
	if VariantStraight.String() != "straight" || VariantWeaver.String() != "weaver" || VariantSine.String() != "sine" {
		t.Error("hostile variant names wrong")
	}
	if HostileVariant(99).String() != "unknown" {
		t.Error("out-of-range variant should read unknown")
	}
	if PickupShield.String() != "shield" || PickupRapid.String() != "rapid" || PickupHeal.String() != "heal" {
		t.Error("pickup kind names wrong")
	}
	if PickupKind(99).String() != "unknown" {
		t.Error("out-of-range pickup kind should read unknown")
	}
}
