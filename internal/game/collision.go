package game

import "github.com/vovakirdan/crypto-flap/internal/core"

// CheckCollision reports whether the body is inside the horizontal span of
// any gate while sticking out of its gap. Obstacles are examined in pipeline
// order and the first hit wins.
func CheckCollision(b Body, obstacles []Obstacle, width float64) bool {
	left, right := b.HSpan()
	body := core.Span{Min: left, Max: right}

	for _, o := range obstacles {
		if !body.Overlaps(core.Span{Min: o.X, Max: o.Right(width)}) {
			continue
		}
		gap := o.Gap()
		if b.Y-b.Radius < gap.Min || b.Y+b.Radius > gap.Max {
			return true
		}
	}
	return false
}
