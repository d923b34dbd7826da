package core

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{
			name:     "clearly overlapping",
			a:        Vec2{X: 0, Y: 0},
			ra:       2,
			b:        Vec2{X: 1, Y: 1},
			rb:       2,
			expected: true,
		},
		{
			name:     "clearly apart",
			a:        Vec2{X: 0, Y: 0},
			ra:       1,
			b:        Vec2{X: 10, Y: 0},
			rb:       1,
			expected: false,
		},
		{
			name:     "exact edge contact counts",
			a:        Vec2{X: 0, Y: 0},
			ra:       1.5,
			b:        Vec2{X: 4, Y: 0},
			rb:       2.5,
			expected: true,
		},
		{
			name:     "one unit past contact",
			a:        Vec2{X: 0, Y: 0},
			ra:       1.5,
			b:        Vec2{X: 5, Y: 0},
			rb:       2.5,
			expected: false,
		},
		{
			name:     "concentric circles",
			a:        Vec2{X: 3, Y: 3},
			ra:       0.5,
			b:        Vec2{X: 3, Y: 3},
			rb:       4,
			expected: true,
		},
		{
			name:     "diagonal edge contact",
			a:        Vec2{X: 0, Y: 0},
			ra:       2.5,
			b:        Vec2{X: 3, Y: 4},
			rb:       2.5,
			expected: true,
		},
		{
			name:     "zero radius point inside",
			a:        Vec2{X: 1, Y: 1},
			ra:       0,
			b:        Vec2{X: 0, Y: 0},
			rb:       2,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb)
			if result != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := CirclesOverlap(tc.b, tc.rb, tc.a, tc.ra)
			if resultReverse != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name     string
		pos      Vec2
		target   Vec2
		maxDist  float64
		expected Vec2
	}{
		{
			name:     "reaches close target exactly",
			pos:      Vec2{X: 0, Y: 0},
			target:   Vec2{X: 1, Y: 0},
			maxDist:  5,
			expected: Vec2{X: 1, Y: 0},
		},
		{
			name:     "clamped to max distance",
			pos:      Vec2{X: 0, Y: 0},
			target:   Vec2{X: 10, Y: 0},
			maxDist:  3,
			expected: Vec2{X: 3, Y: 0},
		},
		{
			name:     "diagonal step keeps direction",
			pos:      Vec2{X: 0, Y: 0},
			target:   Vec2{X: 3, Y: 4},
			maxDist:  2.5,
			expected: Vec2{X: 1.5, Y: 2},
		},
		{
			name:     "zero budget stays put",
			pos:      Vec2{X: 2, Y: 2},
			target:   Vec2{X: 10, Y: 10},
			maxDist:  0,
			expected: Vec2{X: 2, Y: 2},
		},
		{
			name:     "already at target",
			pos:      Vec2{X: 4, Y: 4},
			target:   Vec2{X: 4, Y: 4},
			maxDist:  1,
			expected: Vec2{X: 4, Y: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MoveToward(tc.pos, tc.target, tc.maxDist)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("MoveToward() = (%v, %v), expected (%v, %v)", got.X, got.Y, tc.expected.X, tc.expected.Y)
			}
		})
	}
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	pos := Vec2{X: 10, Y: 10}
	target := Vec2{X: 12, Y: 11}

	// Even absurdly large budgets must stop at the target.
	for _, maxDist := range []float64{0.001, 0.5, 2.5, 100, 1e6} {
		got := MoveToward(pos, target, maxDist)
		if got.Sub(pos).Len() > target.Sub(pos).Len()+1e-9 {
			t.Errorf("maxDist %v overshot: got (%v, %v)", maxDist, got.X, got.Y)
		}
	}
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
