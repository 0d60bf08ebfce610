package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// pulseGenerator is the background bed: a bass note with a plucked
// envelope on every beat and a quiet fifth above it. It never ends.
type pulseGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int // samples per beat
}

func newPulseGenerator(sr beep.SampleRate) *pulseGenerator {
	return &pulseGenerator{sr: sr, beat: sr.N(500 * time.Millisecond)}
}

func (g *pulseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		inBeat := float64(g.pos%g.beat) / float64(g.sr)

		// Move between A and C every eight beats
		root := 55.0
		if (g.pos/(g.beat*8))%2 == 1 {
			root = 65.41
		}

		env := math.Exp(-inBeat * 6)
		sample := 0.6*math.Sin(2*math.Pi*root*t) + 0.2*math.Sin(2*math.Pi*root*1.5*t)
		sample *= env * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *pulseGenerator) Err() error {
	return nil
}

// sweepGenerator plays a tone gliding from one frequency to another over
// its duration, with a short attack and an exponential release.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
	harsh    bool // add odd harmonics for a buzzier timbre
}

func newSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, harsh bool) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to, length: sr.N(d), harsh: harsh}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase)
		if g.harsh {
			sample += 0.5*math.Sin(3*g.phase) + 0.25*math.Sin(5*g.phase)
			sample /= 1.75
		}

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		sample *= attack * math.Exp(-progress*4) * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// newCue builds the streamer for a one-shot track.
func newCue(sr beep.SampleRate, t Track) beep.Streamer {
	switch t {
	case TrackPoint:
		// Rising two-step ding
		return beep.Seq(
			newSweepGenerator(sr, 880, 990, 60*time.Millisecond, false),
			newSweepGenerator(sr, 1320, 1480, 140*time.Millisecond, false),
		)
	case TrackGameOver:
		return newSweepGenerator(sr, 330, 55, 700*time.Millisecond, true)
	default:
		return nil
	}
}
