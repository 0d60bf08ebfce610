package game

// Snapshot captures the observable game state for determinism testing and
// debug logging.
type Snapshot struct {
	Frame      uint64
	Phase      Phase
	BodyY      float64
	Velocity   float64
	Score      int
	Best       int
	Obstacles  int
	Passed     int // Active obstacles already passed
	CrashCause string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	passed := 0
	for _, o := range g.pipes.Obstacles() {
		if o.Passed {
			passed++
		}
	}
	return Snapshot{
		Frame:      g.frame,
		Phase:      g.phase,
		BodyY:      g.body.Y,
		Velocity:   g.body.Velocity,
		Score:      g.score.Current,
		Best:       g.score.Best,
		Obstacles:  len(g.pipes.Obstacles()),
		Passed:     passed,
		CrashCause: g.crashCause,
	}
}
