package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the wall-clock length of one frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status the game reports to the platform after each step.
type GameState struct {
	Score      int  // Current run score
	Best       int  // Best score this session
	Started    bool // Past the start screen
	GameOver   bool // Run has ended
	CanRestart bool // Restart input is accepted
}

// EventType identifies something that happened during a step.
type EventType int

const (
	EventStarted   EventType = iota // first flap left the start screen
	EventScored                     // an obstacle was passed
	EventCrashed                    // the run ended
	EventRestarted                  // a new run began after game over
)

// String returns the event name used in logs.
func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventScored:
		return "scored"
	case EventCrashed:
		return "crashed"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single game occurrence the platform may react to
// (audio cues, logging, run bookkeeping).
type Event struct {
	Type  EventType
	Score int    // Score after the event
	Cause string // Crash cause ("floor", "obstacle"); empty otherwise
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this step.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
