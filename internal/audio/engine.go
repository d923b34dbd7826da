// Package audio synthesizes the game's sound effects. Every sound is
// generated, not sampled: short one-shot streamers mixed into a single
// speaker, panned to where the event happened on screen.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/Charu-web/Neon-Drift/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// panWidth softens the stereo spread so edge events do not land fully in
// one ear.
const panWidth = 0.7

// Engine turns simulation events into sounds. Every method is safe to call
// on an engine that was never initialized; it simply stays silent, so a
// headless host or a muted session runs the exact same code path.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates a silent engine. Call Init to open the speaker.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. On error the engine stays
// muted; callers treat audio as optional.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Handle plays the sound for one simulation event, panned by the event's
// normalized x position.
func (e *Engine) Handle(ev core.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	var (
		gen beep.Streamer
		dur time.Duration
	)
	switch ev.Kind {
	case core.EventShoot:
		gen = newBlipGenerator(sampleRate, 880)
		dur = 60 * time.Millisecond
	case core.EventHit:
		gen = newBuzzGenerator(sampleRate, 130)
		dur = 90 * time.Millisecond
	case core.EventDestroy:
		gen = newBoomGenerator(sampleRate)
		dur = 220 * time.Millisecond
	case core.EventPickup:
		gen = newChimeGenerator(sampleRate)
		dur = 180 * time.Millisecond
	default:
		return
	}

	shot := &effects.Pan{
		Streamer: beep.Take(sampleRate.N(dur), gen),
		Pan:      pan(ev.X),
	}

	// The speaker streams from the mixer on its own goroutine.
	speaker.Lock()
	e.mixer.Add(shot)
	speaker.Unlock()
}

// HandleAll plays every event of a frame.
func (e *Engine) HandleAll(events []core.Event) {
	for _, ev := range events {
		e.Handle(ev)
	}
}

// Close silences everything. The speaker itself stays open; beep exposes no
// close, clearing the mixer stops all sound.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// pan maps a normalized [0, 1] screen x onto a stereo position in [-1, 1],
// scaled by panWidth.
func pan(x float64) float64 {
	p := (x*2 - 1) * panWidth
	if p < -1 {
		p = -1
	}
	if p > 1 {
		p = 1
	}
	return p
}
