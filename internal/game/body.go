package game

import "github.com/vovakirdan/crypto-flap/internal/config"

// Body is the player-controlled coin. Y grows downward.
type Body struct {
	X        float64 // Fixed horizontal position (center)
	Y        float64 // Vertical position (center)
	Radius   float64
	Velocity float64 // Vertical velocity, world units per frame
}

// Integrate advances the body by one frame and applies the boundary policy.
// It reports true when the body hit the floor, which ends the run.
// Hitting the ceiling clamps the body and stops its upward motion.
func (b *Body) Integrate(p config.PhysicsConfig, floorY float64) (floorHit bool) {
	b.Velocity += p.Gravity
	b.Velocity *= p.Damping
	b.Y += b.Velocity

	if b.Y+b.Radius > floorY {
		b.Y = floorY - b.Radius
		floorHit = true
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.Velocity = 0
	}
	return floorHit
}

// ApplyImpulse replaces the current velocity with the lift velocity.
func (b *Body) ApplyImpulse(lift float64) {
	b.Velocity = lift
}

// HSpan returns the body's horizontal extent.
func (b Body) HSpan() (left, right float64) {
	return b.X - b.Radius, b.X + b.Radius
}
