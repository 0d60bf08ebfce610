package core

import (
	"testing"
	"time"
)

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected bool
	}{
		{"overlapping", Span{0, 10}, Span{5, 15}, true},
		{"contained", Span{0, 20}, Span{5, 6}, true},
		{"disjoint", Span{0, 10}, Span{15, 20}, false},
		{"touching edges", Span{0, 10}, Span{10, 20}, false},
		{"touching reversed", Span{10, 20}, Span{0, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestViewportFor(t *testing.T) {
	vp := ViewportFor(80, 24, 10, 20)
	if vp.W != 800 || vp.H != 480 {
		t.Errorf("ViewportFor(80, 24) = %+v, expected 800x480", vp)
	}
	if vp.MinDim() != 480 {
		t.Errorf("MinDim() = %v, expected 480", vp.MinDim())
	}
}

func TestViewportForEmptyGrid(t *testing.T) {
	vp := ViewportFor(0, -3, 10, 20)
	if vp.W != 10 || vp.H != 20 {
		t.Errorf("ViewportFor(0, -3) = %+v, expected one cell", vp)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Errorf("Now() = %v, expected %v", c.Now(), start)
	}
	c.Advance(500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 500*time.Millisecond {
		t.Errorf("elapsed = %v, expected 500ms", got)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Type: EventScored, Score: 1}}}
	if !r.Has(EventScored) {
		t.Error("Has(EventScored) should be true")
	}
	if r.Has(EventCrashed) {
		t.Error("Has(EventCrashed) should be false")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFlap)
	if !f.Has(ActionFlap) {
		t.Error("Has(ActionFlap) should be true after Set")
	}
	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("Has(ActionFlap) should be false after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionFlap) {
		t.Error("zero frame should have no actions")
	}
}
