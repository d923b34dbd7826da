package drift

// starLayers is the number of parallax depth layers.
const starLayers = 3

// layerSpeed scales the scroll rate per depth layer; far stars crawl, near
// stars rush.
var layerSpeed = [starLayers]float64{0.25, 0.55, 1.0}

// Star is one particle of the parallax backdrop.
type Star struct {
	X, Y  float64
	Layer int // 0 = far, 2 = near
}

// Starfield is the scrolling background. It is pure decoration: it never
// collides with anything, is excluded from snapshots, and survives restarts
// untouched so the backdrop reads as one continuous stream.
type Starfield struct {
	Stars     []Star
	w, h      int
	baseSpeed float64
}

// NewStarfield seeds count stars uniformly over the field. It uses its own
// RNG stream so backdrop density never perturbs gameplay randomness.
func NewStarfield(count, w, h int, baseSpeed float64, seed int64) *Starfield {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if count < 0 {
		count = 0
	}

	rng := NewRNG(seed)
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Between(0, float64(w)),
			Y:     rng.Between(0, float64(h)),
			Layer: rng.Intn(len(layerSpeed)),
		}
	}
	return &Starfield{Stars: stars, w: w, h: h, baseSpeed: baseSpeed}
}

// Advance scrolls stars downward and wraps them back to the top, nearer
// layers moving faster. Called from the render path on render time, not
// simulation time.
func (f *Starfield) Advance(dt float64) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Y += f.baseSpeed * layerSpeed[s.Layer] * dt
		if s.Y >= float64(f.h) {
			s.Y -= float64(f.h)
		}
	}
}

// Resize rescales star positions proportionally into the new field.
func (f *Starfield) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == f.w && h == f.h) {
		return
	}
	sx := float64(w) / float64(f.w)
	sy := float64(h) / float64(f.h)
	for i := range f.Stars {
		f.Stars[i].X *= sx
		f.Stars[i].Y *= sy
	}
	f.w, f.h = w, h
}
