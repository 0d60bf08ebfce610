package game

import "time"

// intervalTimer is a wall-clock repeating timer polled once per frame.
// There is exactly one per game, so restarting it can never leave a second
// timer running.
type intervalTimer struct {
	interval time.Duration
	next     time.Time
	active   bool
}

// Start arms the timer; the first fire is one interval from now.
func (t *intervalTimer) Start(now time.Time) {
	t.next = now.Add(t.interval)
	t.active = true
}

// Stop disarms the timer.
func (t *intervalTimer) Stop() {
	t.active = false
}

// Restart cancels any pending schedule and starts a fresh one.
func (t *intervalTimer) Restart(now time.Time) {
	t.Stop()
	t.Start(now)
}

// Fire reports whether the timer is due and schedules the next fire.
// At most one fire is reported per call; intervals missed during a stall
// are dropped instead of bursting.
func (t *intervalTimer) Fire(now time.Time) bool {
	if !t.active || now.Before(t.next) {
		return false
	}
	t.next = t.next.Add(t.interval)
	if !t.next.After(now) {
		t.next = now.Add(t.interval)
	}
	return true
}
