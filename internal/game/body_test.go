package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/crypto-flap/internal/config"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func defaultPhysics() config.PhysicsConfig {
	return config.DefaultGameConfig().Physics
}

func TestBodyIntegrateOneStep(t *testing.T) {
	b := Body{X: 400, Y: 300, Radius: 20, Velocity: 0}

	if hit := b.Integrate(defaultPhysics(), 1000); hit {
		t.Fatal("body far above the floor should not hit it")
	}

	if !approx(b.Velocity, 0.245) {
		t.Errorf("Velocity = %v, expected 0.245", b.Velocity)
	}
	if !approx(b.Y, 300.245) {
		t.Errorf("Y = %v, expected 300.245", b.Y)
	}
}

func TestBodyFloorClampEndsRun(t *testing.T) {
	b := Body{Y: 475, Radius: 10, Velocity: 8}

	if hit := b.Integrate(defaultPhysics(), 480); !hit {
		t.Fatal("crossing the floor should report a hit")
	}
	if b.Y != 470 {
		t.Errorf("Y = %v, expected clamp to floor - radius = 470", b.Y)
	}
}

func TestBodyCeilingClampStopsWithoutDeath(t *testing.T) {
	b := Body{Y: 12, Radius: 10, Velocity: -8}

	if hit := b.Integrate(defaultPhysics(), 480); hit {
		t.Fatal("ceiling contact must not end the run")
	}
	if b.Y != 10 {
		t.Errorf("Y = %v, expected clamp to radius = 10", b.Y)
	}
	if b.Velocity != 0 {
		t.Errorf("Velocity = %v, expected 0 after ceiling clamp", b.Velocity)
	}
}

func TestBodyImpulseOverwrites(t *testing.T) {
	b := Body{Velocity: 5}
	b.ApplyImpulse(-8)
	if b.Velocity != -8 {
		t.Errorf("Velocity = %v, impulse should overwrite to -8", b.Velocity)
	}
	b.ApplyImpulse(-8)
	if b.Velocity != -8 {
		t.Errorf("Velocity = %v, impulse must not be additive", b.Velocity)
	}
}

func TestBodyStaysWithinBounds(t *testing.T) {
	const floor = 480.0
	b := Body{Y: floor / 2, Radius: 14}
	p := defaultPhysics()

	for frame := 0; frame < 2000; frame++ {
		if frame%7 == 0 {
			b.ApplyImpulse(p.Lift)
		}
		b.Integrate(p, floor)
		if b.Y < b.Radius || b.Y > floor {
			t.Fatalf("frame %d: Y = %v outside [%v, %v]", frame, b.Y, b.Radius, floor)
		}
	}
}
