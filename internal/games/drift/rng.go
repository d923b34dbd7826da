// Package drift implements the Neon Drift game: a craft weaving through
// procedurally spawned hostiles, debris and pickups on an endless neon
// playfield. The simulation is pure; all terminal, timing and audio concerns
// live in the platform layer.
package drift

// RNG is a small deterministic linear congruential generator. The gameplay
// stream is the only source of randomness in the simulation, so two runs
// with the same seed and the same inputs match bit for bit.
type RNG struct {
	state uint64
}

// NewRNG creates a generator. A zero seed is replaced so the stream cannot
// stick at zero.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = 1
	}
	return &RNG{state: uint64(seed)}
}

// next advances the stream by one draw.
func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// Between returns a value in [lo, hi).
func (r *RNG) Between(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// State exposes the raw stream state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
