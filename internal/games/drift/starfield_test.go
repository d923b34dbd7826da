package drift

import "testing"

func TestStarfieldCoverage(t *testing.T) {
	f := NewStarfield(50, 60, 24, 12, 42)

	if len(f.Stars) != 50 {
		t.Fatalf("star count = %d, want 50", len(f.Stars))
	}
	for i, s := range f.Stars {
		if s.X < 0 || s.X >= 60 || s.Y < 0 || s.Y >= 24 {
			t.Fatalf("star %d at (%v, %v) outside the field", i, s.X, s.Y)
		}
		if s.Layer < 0 || s.Layer >= starLayers {
			t.Fatalf("star %d has layer %d", i, s.Layer)
		}
	}
}

func TestStarfieldWraps(t *testing.T) {
	f := NewStarfield(50, 60, 24, 12, 42)

	// Far more scroll than the field height; every star must wrap back in.
	for i := 0; i < 2000; i++ {
		f.Advance(1.0 / 60)
	}
	for i, s := range f.Stars {
		if s.Y < 0 || s.Y >= 24 {
			t.Fatalf("star %d drifted out to y = %v", i, s.Y)
		}
	}
}

func TestStarfieldParallax(t *testing.T) {
	f := &Starfield{
		Stars:     []Star{{Y: 0, Layer: 0}, {Y: 0, Layer: starLayers - 1}},
		w:         60,
		h:         24,
		baseSpeed: 12,
	}
	f.Advance(0.1)

	far, near := f.Stars[0], f.Stars[1]
	if near.Y <= far.Y {
		t.Errorf("near layer should scroll faster: far %v, near %v", far.Y, near.Y)
	}
}

func TestStarfieldResize(t *testing.T) {
	f := &Starfield{
		Stars:     []Star{{X: 30, Y: 12, Layer: 1}},
		w:         60,
		h:         24,
		baseSpeed: 12,
	}

	f.Resize(30, 12)
	if f.Stars[0].X != 15 || f.Stars[0].Y != 6 {
		t.Errorf("resize should rescale proportionally, got (%v, %v)", f.Stars[0].X, f.Stars[0].Y)
	}

	// Degenerate and no-op sizes leave everything alone.
	f.Resize(0, 10)
	f.Resize(30, 12)
	if f.Stars[0].X != 15 || f.Stars[0].Y != 6 {
		t.Errorf("no-op resize should not move stars, got (%v, %v)", f.Stars[0].X, f.Stars[0].Y)
	}
}

func TestStarfieldSeedStability(t *testing.T) {
	a := NewStarfield(30, 60, 24, 12, 7)
	b := NewStarfield(30, 60, 24, 12, 7)
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("same seed should build the same field, star %d differs", i)
		}
	}

	c := NewStarfield(30, 60, 24, 12, 8)
	same := true
	for i := range a.Stars {
		if a.Stars[i] != c.Stars[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should build different fields")
	}
}
