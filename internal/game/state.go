package game

// Phase is the state machine position of the game.
type Phase int

const (
	PhaseStart    Phase = iota // Start screen, waiting for the first flap
	PhasePlaying               // Simulation running
	PhaseGameOver              // Frozen; restart accepted after a delay
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Crash causes reported in crash events.
const (
	CauseFloor    = "floor"
	CauseObstacle = "obstacle"
)
