package game

// Score tracks the current run and the best run of the session.
type Score struct {
	Current int
	Best    int // Never decreases
}

// Increment adds one point and updates the best score.
func (s *Score) Increment() {
	s.Current++
	if s.Current > s.Best {
		s.Best = s.Current
	}
}

// ResetRun clears the current run, keeping the best score.
func (s *Score) ResetRun() {
	s.Current = 0
}
