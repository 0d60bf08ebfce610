package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crypto-flap/internal/audio"
	"github.com/vovakirdan/crypto-flap/internal/config"
	"github.com/vovakirdan/crypto-flap/internal/core"
	"github.com/vovakirdan/crypto-flap/internal/game"
	"github.com/vovakirdan/crypto-flap/internal/storage"
)

// recordingPlayer remembers every audio call.
type recordingPlayer struct {
	loops []audio.Track
	cues  []audio.Track
	muted bool
}

func (p *recordingPlayer) PlayLoop(t audio.Track) { p.loops = append(p.loops, t) }
func (p *recordingPlayer) PlayOnce(t audio.Track) { p.cues = append(p.cues, t) }
func (p *recordingPlayer) SetMuted(m bool) { p.muted = m }
func (p *recordingPlayer) Close() {}

type harness struct {
	model  Model
	clock  *core.ManualClock
	player *recordingPlayer
	ledger *storage.Ledger
}

// newHarness builds a model for an 80x25 terminal (80x24 playfield).
func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := core.NewManualClock(time.UnixMilli(0))
	ledger, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })

	player := &recordingPlayer{}
	g := game.New(config.DefaultGameConfig(), clock)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}, Options{
		Audio:  player,
		Ledger: ledger,
		Clock:  clock,
		Player: "tester",
	})
	m.Init()

	return &harness{model: m, clock: clock, player: player, ledger: ledger}
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	h.model = m
	return cmd
}

func (h *harness) tick(t *testing.T) {
	t.Helper()
	h.clock.Advance(time.Second / 60)
	if cmd := h.send(t, TickMsg(h.clock.Now())); cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelPlayfieldLeavesStatusRow(t *testing.T) {
	h := newHarness(t)
	if h.model.screen.Width() != 80 || h.model.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", h.model.screen.Width(), h.model.screen.Height())
	}
}

func TestModelFlapStartsGame(t *testing.T) {
	h := newHarness(t)

	h.send(t, space)
	h.tick(t)

	if !h.model.State().Started {
		t.Fatal("flap should start the game")
	}
	if len(h.player.loops) != 1 || h.player.loops[0] != audio.TrackBackground {
		t.Errorf("background loop calls = %v", h.player.loops)
	}

	// Input is consumed by one tick
	h.tick(t)
	if h.model.input.Has(core.ActionFlap) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelMouseFlap(t *testing.T) {
	h := newHarness(t)

	h.send(t, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.tick(t)

	if !h.model.State().Started {
		t.Fatal("mouse press should start the game")
	}
}

func TestModelCrashRecordsRun(t *testing.T) {
	h := newHarness(t)
	h.send(t, space)
	h.tick(t)

	for i := 0; i < 600 && !h.model.State().GameOver; i++ {
		h.tick(t)
	}
	if !h.model.State().GameOver {
		t.Fatal("body never crashed")
	}

	if len(h.player.cues) == 0 || h.player.cues[len(h.player.cues)-1] != audio.TrackGameOver {
		t.Errorf("cues = %v, expected game over cue", h.player.cues)
	}

	runs, err := h.ledger.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	run := runs[0]
	if run.Player != "tester" || run.Cause != game.CauseFloor {
		t.Errorf("recorded run = %+v", run)
	}
	if run.Duration <= 0 || run.Duration > 10*time.Second {
		t.Errorf("run duration = %v", run.Duration)
	}

	// Frozen game over frames must not record again
	for range 60 {
		h.tick(t)
	}
	if s, _ := h.ledger.Summary(); s.Runs != 1 {
		t.Errorf("ledger has %d runs, expected 1", s.Runs)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	h := newHarness(t)
	h.send(t, space)
	h.tick(t)

	h.send(t, tea.WindowSizeMsg{Width: 120, Height: 41})
	h.tick(t)

	if h.model.screen.Width() != 120 || h.model.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", h.model.screen.Width(), h.model.screen.Height())
	}
	if !h.model.State().Started || h.model.State().GameOver {
		t.Errorf("resize should keep the run going, state %+v", h.model.State())
	}
}

func TestModelMuteToggle(t *testing.T) {
	h := newHarness(t)

	h.send(t, runeKey("m"))
	if !h.model.Muted() || !h.player.muted {
		t.Fatal("m should mute")
	}
	if !strings.Contains(h.model.View(), "muted") {
		t.Error("status line should show muted")
	}

	h.send(t, runeKey("m"))
	if h.model.Muted() || h.player.muted {
		t.Fatal("second m should unmute")
	}
}

func TestModelStartsMuted(t *testing.T) {
	player := &recordingPlayer{}
	clock := core.NewManualClock(time.UnixMilli(0))
	m := NewModel(game.New(config.DefaultGameConfig(), clock), core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}, Options{
		Audio: player,
		Muted: true,
	})

	if !m.Muted() || !player.muted {
		t.Error("Muted option should be applied to the player")
	}
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(t, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if h.model.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewShowsGameAndStatus(t *testing.T) {
	h := newHarness(t)

	view := h.model.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Errorf("view has %d lines, expected 25", len(lines))
	}
	if !strings.Contains(view, "flap") || !strings.Contains(view, "quit") {
		t.Error("status line should show key help")
	}
	if !strings.Contains(view, "top run: 0") {
		t.Error("status line should show the ledger best")
	}
}

func TestModelWithoutLedger(t *testing.T) {
	clock := core.NewManualClock(time.UnixMilli(0))
	m := NewModel(game.New(config.DefaultGameConfig(), clock), core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{Clock: clock})
	m.Init()

	view := m.View()
	if strings.Contains(view, "top run:") {
		t.Error("status line should omit the ledger best without a ledger")
	}
	if strings.Contains(view, "top runs") {
		t.Error("help should not offer the top runs table without a ledger")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(Model).Showing() {
		t.Error("tab should not open the table without a ledger")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorGold)
	s.DrawText(2, 0, "c", core.ColorRed)
	s.Set(4, 1, '₿', core.Color(99)) // unknown colors fall back to default

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "c") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "₿") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestModelScoreboardBetweenRuns(t *testing.T) {
	h := newHarness(t)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	h.send(t, tab)
	if !h.model.Showing() {
		t.Fatal("tab on the start screen should open the top runs")
	}
	if !strings.Contains(h.model.View(), "TOP RUNS") {
		t.Error("view should show the top runs table")
	}

	h.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	if h.model.Showing() {
		t.Fatal("esc should close the top runs")
	}

	// Mid-run the table stays closed
	h.send(t, space)
	h.tick(t)
	h.send(t, tab)
	if h.model.Showing() {
		t.Error("top runs must not open during a run")
	}
}

func TestModelScoreboardListsRuns(t *testing.T) {
	h := newHarness(t)
	h.send(t, space)
	h.tick(t)
	for i := 0; i < 600 && !h.model.State().GameOver; i++ {
		h.tick(t)
	}

	h.send(t, tea.KeyMsg{Type: tea.KeyTab})
	if !h.model.Showing() {
		t.Fatal("tab on game over should open the top runs")
	}
	if runs := h.model.board.Runs(); len(runs) != 1 || runs[0].Player != "tester" {
		t.Errorf("board runs = %+v", runs)
	}
	if !strings.Contains(h.model.View(), "tester") {
		t.Error("table should list the player")
	}

	// Flap keys scroll the table instead of restarting
	h.send(t, space)
	h.clock.Advance(time.Second)
	h.tick(t)
	if !h.model.State().GameOver {
		t.Error("keys while the table is open must not reach the game")
	}

	h.send(t, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if h.model.Showing() {
		t.Error("click should close the top runs")
	}
}
