package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/crypto-flap/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	s := NewScoreboard(80, 24)
	s.Load(nil)

	if !strings.Contains(s.View(), "No runs yet") {
		t.Error("empty board should say there are no runs")
	}
}

func TestScoreboardLoadsBestFirst(t *testing.T) {
	ledger, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer ledger.Close()

	ledger.RecordRun(storage.RunResult{Player: "ana", Score: 4, Cause: "floor", Duration: 5 * time.Second})
	ledger.RecordRun(storage.RunResult{Player: "ben", Score: 9, Cause: "obstacle", Duration: 20 * time.Second})

	s := NewScoreboard(80, 24)
	s.Load(ledger)

	runs := s.Runs()
	if len(runs) != 2 || runs[0].Player != "ben" {
		t.Fatalf("runs = %+v, expected ben first", runs)
	}

	view := s.View()
	for _, want := range []string{"TOP RUNS", "ben", "ana", "20.0s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardNarrow(t *testing.T) {
	ledger, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer ledger.Close()
	ledger.RecordRun(storage.RunResult{Player: "ana", Score: 4, Cause: "floor"})

	s := NewScoreboard(30, 10)
	s.Load(ledger)

	if !strings.Contains(s.View(), "#1 ana 4") {
		t.Errorf("narrow board should show only the best run:\n%s", s.View())
	}
}

func TestScoreboardResize(t *testing.T) {
	s := NewScoreboard(80, 24)
	s.Resize(120, 40)
	if s.width != 120 || s.height != 40 {
		t.Errorf("size = %dx%d", s.width, s.height)
	}
}
