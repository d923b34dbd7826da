package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// blipGenerator is the shot sound: a short chirp that sweeps upward and
// dies fast.
type blipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBlipGenerator(sr beep.SampleRate, freq float64) *blipGenerator {
	return &blipGenerator{sr: sr, freq: freq}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.freq * (1 + 3*t)
		envelope := math.Exp(-t * 40)
		sample := 0.18 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// buzzGenerator is the hit sound: a low harsh buzz built from stacked
// harmonics with a short attack ramp.
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzzGenerator(sr beep.SampleRate, freq float64) *buzzGenerator {
	return &buzzGenerator{sr: sr, freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		attack := math.Min(t/0.015, 1.0)
		sample *= attack * 0.8

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// boomGenerator is the destroy sound: filtered noise over a low rumble,
// decaying exponentially.
type boomGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newBoomGenerator(sr beep.SampleRate) *boomGenerator {
	return &boomGenerator{sr: sr, seed: 1}
}

func (g *boomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.2*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *boomGenerator) Err() error {
	return nil
}

// chimeGenerator is the pickup sound: a two-note rising arpeggio with a
// bell-like fade.
type chimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newChimeGenerator(sr beep.SampleRate) *chimeGenerator {
	return &chimeGenerator{sr: sr}
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 660.0
		if t >= 0.08 {
			freq = 990.0
		}

		envelope := math.Exp(-t * 14)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)
		sample += 0.06 * envelope * math.Sin(2*math.Pi*freq*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}
