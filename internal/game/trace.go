package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/crypto-flap/internal/config"
)

// Trace is the decorative chart line behind the playfield: a fixed-length
// window of samples that scrolls by one sample per frame.
type Trace struct {
	samples []float64
	cfg     config.TraceConfig
	rng     *rand.Rand
}

// NewTrace creates a trace seeded around centerY.
func NewTrace(cfg config.TraceConfig, rng *rand.Rand, centerY float64) *Trace {
	t := &Trace{
		samples: make([]float64, cfg.Points),
		cfg:     cfg,
		rng:     rng,
	}
	t.Reset(centerY)
	return t
}

// Reset regenerates the samples as a random walk starting at centerY.
func (t *Trace) Reset(centerY float64) {
	y := centerY
	for i := range t.samples {
		y += t.rng.Float64()*t.cfg.InitialJitter - t.cfg.InitialJitter/2
		t.samples[i] = y
	}
}

// Advance drops the oldest sample and appends one derived from the newest,
// perturbed by a slow wave and a little noise.
func (t *Trace) Advance(now time.Time) {
	n := len(t.samples)
	if n == 0 {
		return
	}
	last := t.samples[n-1]
	next := last + t.wave(now) + (t.rng.Float64()-0.5)*t.cfg.Noise

	copy(t.samples, t.samples[1:])
	t.samples[n-1] = next
}

func (t *Trace) wave(now time.Time) float64 {
	if t.cfg.WavePeriod <= 0 {
		return 0
	}
	phase := float64(now.UnixMilli()) / float64(t.cfg.WavePeriod.Milliseconds())
	return math.Sin(phase) * t.cfg.WaveAmplitude
}

// Samples returns the current window, oldest first.
func (t *Trace) Samples() []float64 {
	return t.samples
}
