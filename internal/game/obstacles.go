package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/crypto-flap/internal/config"
	"github.com/vovakirdan/crypto-flap/internal/core"
)

// Obstacle is a gate: a top bar from 0 to TopHeight and a bottom bar from
// BottomY to the floor. BottomY - TopHeight is the gap height of the run.
type Obstacle struct {
	X         float64 // Left edge
	TopHeight float64
	BottomY   float64
	Passed    bool // Set once when the trailing edge crosses the body
}

// Right returns the trailing (right) edge for a gate of the given width.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// Gap returns the passable vertical span.
func (o Obstacle) Gap() core.Span {
	return core.Span{Min: o.TopHeight, Max: o.BottomY}
}

// Pipeline owns the active obstacles: it spawns, advances and retires them.
// Obstacles are kept in spawn order, which is also descending x order.
type Pipeline struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstaclesConfig
}

// NewPipeline creates an empty pipeline drawing gap positions from rng.
func NewPipeline(cfg config.ObstaclesConfig, rng *rand.Rand) *Pipeline {
	return &Pipeline{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset removes every obstacle.
func (p *Pipeline) Reset() {
	p.obstacles = p.obstacles[:0]
}

// Width returns the gate width.
func (p *Pipeline) Width() float64 {
	return p.cfg.Width
}

// Obstacles returns the active obstacles in spawn order. Callers must not
// modify the returned slice.
func (p *Pipeline) Obstacles() []Obstacle {
	return p.obstacles
}

// TopRange returns the interval topHeight is drawn from for the viewport.
// When the viewport is too short for the gap the range collapses to its
// lower bound.
func (p *Pipeline) TopRange(vp core.Viewport) core.Span {
	margin := vp.MinDim() * p.cfg.MarginRatio
	lo := margin
	hi := vp.H - p.cfg.GapHeight - margin
	if hi < lo {
		hi = lo
	}
	return core.Span{Min: lo, Max: hi}
}

// Spawn appends a new obstacle at the right edge of the viewport and returns it.
func (p *Pipeline) Spawn(vp core.Viewport) Obstacle {
	r := p.TopRange(vp)
	top := r.Min + p.rng.Float64()*r.Len()
	// Whole world units keep BottomY - TopHeight exactly equal to the gap
	if lo, hi := math.Ceil(r.Min), math.Floor(r.Max); lo <= hi {
		top = core.ClampF(math.Round(top), lo, hi)
	} else {
		top = r.Min
	}

	o := Obstacle{
		X:         vp.W,
		TopHeight: top,
		BottomY:   top + p.cfg.GapHeight,
	}
	p.obstacles = append(p.obstacles, o)
	return o
}

// Advance moves every obstacle left by the configured speed, marks
// obstacles whose trailing edge moved past bodyX as passed, and drops
// obstacles that left the viewport. It returns the number of obstacles
// passed this frame.
func (p *Pipeline) Advance(bodyX float64) (passed int) {
	for i := range p.obstacles {
		o := &p.obstacles[i]
		o.X -= p.cfg.Speed
		if !o.Passed && o.Right(p.cfg.Width) < bodyX {
			o.Passed = true
			passed++
		}
	}

	// Remove obstacles that have moved off the left side
	kept := p.obstacles[:0]
	for _, o := range p.obstacles {
		if o.Right(p.cfg.Width) > 0 {
			kept = append(kept, o)
		}
	}
	p.obstacles = kept

	return passed
}
