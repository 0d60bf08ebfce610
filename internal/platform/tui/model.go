package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crypto-flap/internal/audio"
	"github.com/vovakirdan/crypto-flap/internal/core"
	"github.com/vovakirdan/crypto-flap/internal/storage"
)

// Game is the contract between the platform and a game implementation.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cols, rows int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options carries the collaborators of a Model. Every field is optional.
type Options struct {
	Audio  audio.Player
	Ledger *storage.Ledger
	Logger *log.Logger
	Clock  core.Clock // Used for run durations; defaults to the system clock
	Player string     // Name recorded in the ledger
	Muted  bool
}

// Model is the Bubble Tea model running one game session.
// The bottom terminal row is a status line; the rest is the playfield.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	audio    audio.Player
	ledger   *storage.Ledger
	logger   *log.Logger
	clock    core.Clock
	player   string
	input    core.InputFrame
	state    core.GameState
	runStart time.Time
	best     int // Best score in the ledger, across sessions
	board    Scoreboard
	muted    bool
	showing  bool // Top runs table replaces the playfield
	quitting bool
}

// NewModel creates a model for the game. cfg holds the full terminal size.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	opts.Audio.SetMuted(opts.Muted)

	cfg.ScreenW, cfg.ScreenH = playfield(cfg.ScreenW, cfg.ScreenH)
	h := help.New()
	h.Width = cfg.ScreenW

	keys := DefaultKeyMap()
	if opts.Ledger == nil {
		keys.Scores.SetEnabled(false) // Nothing to list
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   keys,
		help:   h,
		audio:  opts.Audio,
		ledger: opts.Ledger,
		logger: opts.Logger,
		clock:  opts.Clock,
		player: opts.Player,
		input:  core.NewInputFrame(),
		board:  NewScoreboard(cfg.ScreenW, cfg.ScreenH),
		muted:  opts.Muted,
	}
	m.best = m.ledgerBest()
	return m
}

// playfield returns the game area for a terminal size, leaving the last
// row for the status line.
func playfield(cols, rows int) (int, int) {
	if rows > 1 {
		rows--
	}
	return max(cols, 0), max(rows, 0)
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started",
		"game", m.game.ID(),
		"cols", m.config.ScreenW,
		"rows", m.config.ScreenH,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.FrameDuration())
}

// Showing reports whether the top runs table is open.
func (m Model) Showing() bool {
	return m.showing
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showing {
			return m.handleBoardKey(msg)
		}
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		if m.showing {
			if MapMouse(msg) == core.ActionFlap {
				m.showing = false
			}
			return m, nil
		}
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction applies one input action. Flaps are buffered until the next tick.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionMute:
		m.muted = !m.muted
		m.audio.SetMuted(m.muted)
		m.logger.Debug("audio toggled", "muted", m.muted)
	case core.ActionScores:
		// Only between runs; opening it mid-flight would hide the playfield
		if m.state.Started && !m.state.GameOver {
			return m, nil
		}
		m.board.Load(m.ledger)
		m.showing = true
	case core.ActionFlap:
		m.input.Set(core.ActionFlap)
	}
	return m, nil
}

// handleBoardKey handles keys while the top runs table is open.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Scores), key.Matches(msg, m.keys.Back):
		m.showing = false
		return m, nil
	}
	return m, m.board.Update(msg)
}

// handleResize adapts the screen and the game viewport. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW, m.config.ScreenH = playfield(msg.Width, msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.board.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	for _, ev := range result.Events {
		m = m.handleEvent(ev)
	}

	return m, tickCmd(m.config.FrameDuration())
}

func (m Model) handleEvent(ev core.Event) Model {
	now := m.clock.Now()
	m.logger.Debug("game event", "event", ev.Type, "score", ev.Score, "cause", ev.Cause)

	switch ev.Type {
	case core.EventStarted, core.EventRestarted:
		m.runStart = now
		m.audio.PlayLoop(audio.TrackBackground)
	case core.EventScored:
		m.audio.PlayOnce(audio.TrackPoint)
	case core.EventCrashed:
		m.audio.PlayOnce(audio.TrackGameOver)
		m.recordRun(ev, now)
	}
	return m
}

// recordRun stores the finished run and refreshes the ledger best.
func (m *Model) recordRun(ev core.Event, now time.Time) {
	if m.ledger == nil {
		return
	}
	run := storage.RunResult{
		Player:   m.player,
		Score:    ev.Score,
		Cause:    ev.Cause,
		Duration: now.Sub(m.runStart),
		EndedAt:  now,
	}
	if _, err := m.ledger.RecordRun(run); err != nil {
		m.logger.Warn("could not record run", "err", err)
		return
	}
	m.logger.Info("run finished", "player", m.player, "score", ev.Score, "cause", ev.Cause, "duration", run.Duration.Round(time.Millisecond))
	m.best = m.ledgerBest()
}

func (m Model) ledgerBest() int {
	if m.ledger == nil {
		return 0
	}
	best, err := m.ledger.Best()
	if err != nil {
		m.logger.Warn("could not read best score", "err", err)
		return 0
	}
	return best
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// Muted reports whether audio is muted.
func (m Model) Muted() bool {
	return m.muted
}

// View renders the playfield and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showing {
		return m.board.View() + "\n" + m.statusLine()
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	parts := []string{m.help.View(m.keys)}
	if m.ledger != nil {
		parts = append(parts, fmt.Sprintf("top run: %d", max(m.best, m.state.Best)))
	}
	if m.muted {
		parts = append(parts, "muted")
	}
	return statusStyle.Render(strings.Join(parts, "  •  "))
}

// Run starts a local Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
