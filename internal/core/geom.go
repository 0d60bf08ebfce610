// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no external dependencies (no Bubble Tea) so
// game logic stays pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed interval [Min, Max] on one axis in world units.
type Span struct {
	Min, Max float64
}

// Overlaps reports whether the two spans share interior points.
// Touching endpoints do not count as an overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Max > o.Min && s.Min < o.Max
}

// Len returns the length of the span.
func (s Span) Len() float64 {
	return s.Max - s.Min
}

// Viewport is the visible world area in world units (virtual pixels).
type Viewport struct {
	W, H float64
}

// MinDim returns the smaller of the two viewport dimensions.
func (v Viewport) MinDim() float64 {
	return math.Min(v.W, v.H)
}

// ViewportFor converts a cell grid into world units using the size of one cell.
// The grid is at least one cell in each direction.
func ViewportFor(cols, rows int, cellW, cellH float64) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)
	return Viewport{W: float64(cols) * cellW, H: float64(rows) * cellH}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
