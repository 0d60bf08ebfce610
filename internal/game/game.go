// Package game implements Crypto Flap: a coin falls under gravity and must
// pass through scrolling gates. The simulation runs in world units (virtual
// pixels); Render maps them onto the cells of a core.Screen.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/crypto-flap/internal/config"
	"github.com/vovakirdan/crypto-flap/internal/core"
)

// Score pulse animation: the HUD score is scaled to pulsePeak on every point
// and shrinks back by pulseDecay per playing frame.
const (
	pulsePeak  = 1.4
	pulseDecay = 0.05
)

// traceSeedSalt separates the background trace random stream from the
// obstacle stream, so cosmetic frames never shift gate placement.
const traceSeedSalt = 0x5eed

// Game holds the complete state of one play session.
// All mutation happens inside Reset, Resize and Step.
type Game struct {
	cfg      config.GameConfig
	clock    core.Clock
	runtime  core.RuntimeConfig
	viewport core.Viewport

	body    Body
	pipes   *Pipeline
	score   Score
	trace   *Trace
	spawner intervalTimer

	phase      Phase
	restartAt  time.Time // Valid in PhaseGameOver
	crashCause string

	pulse float64 // HUD score scale, 1 = at rest
	frame uint64
}

// New creates a game with the given configuration and clock.
// Reset must be called before the first Step.
func New(cfg config.GameConfig, clock core.Clock) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Game{
		cfg:   cfg,
		clock: clock,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cryptoflap"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crypto Flap"
}

// Reset starts a fresh session on the start screen. The best score is cleared.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.viewport = core.ViewportFor(rc.ScreenW, rc.ScreenH, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight)

	rng := rand.New(rand.NewSource(rc.Seed))
	g.pipes = NewPipeline(g.cfg.Obstacles, rng)
	g.trace = NewTrace(g.cfg.Trace, rand.New(rand.NewSource(rc.Seed^traceSeedSalt)), g.viewport.H/2)
	g.spawner = intervalTimer{interval: g.cfg.Obstacles.SpawnInterval}

	g.score = Score{}
	g.phase = PhaseStart
	g.restartAt = time.Time{}
	g.crashCause = ""
	g.pulse = 1
	g.frame = 0
	g.placeBody()
}

// Resize adapts the game to a new screen size without ending the run.
// The body keeps its relative height; size and horizontal position follow
// the new viewport.
func (g *Game) Resize(cols, rows int) {
	old := g.viewport
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	g.viewport = core.ViewportFor(cols, rows, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight)

	relY := 0.5
	if old.H > 0 {
		relY = g.body.Y / old.H
	}
	g.body.X = g.viewport.W * g.cfg.Player.XRatio
	g.body.Radius = g.viewport.MinDim() * g.cfg.Player.RadiusRatio
	g.body.Y = core.ClampF(relY*g.viewport.H, g.body.Radius, max(g.body.Radius, g.viewport.H-g.body.Radius))
}

// placeBody puts the body at its starting position for the viewport.
func (g *Game) placeBody() {
	g.body = Body{
		X:      g.viewport.W * g.cfg.Player.XRatio,
		Y:      g.viewport.H / 2,
		Radius: g.viewport.MinDim() * g.cfg.Player.RadiusRatio,
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Now()
	var events []core.Event

	if in.Has(core.ActionFlap) {
		events = g.flap(now, events)
	}

	switch g.phase {
	case PhaseStart, PhaseGameOver:
		// Nothing moves but the background
	case PhasePlaying:
		events = g.stepPlaying(now, events)
	}

	g.trace.Advance(now)
	g.frame++

	return core.StepResult{State: g.State(), Events: events}
}

// flap interprets the single gameplay input for the current phase.
func (g *Game) flap(now time.Time, events []core.Event) []core.Event {
	switch g.phase {
	case PhaseStart:
		g.phase = PhasePlaying
		g.spawner.Start(now)
		events = append(events, core.Event{Type: core.EventStarted})
	case PhasePlaying:
		g.body.ApplyImpulse(g.cfg.Physics.Lift)
	case PhaseGameOver:
		if g.canRestart(now) {
			g.restart(now)
			events = append(events, core.Event{Type: core.EventRestarted})
		}
	}
	return events
}

// stepPlaying runs physics, the obstacle pipeline, scoring and collision.
func (g *Game) stepPlaying(now time.Time, events []core.Event) []core.Event {
	if g.spawner.Fire(now) {
		g.pipes.Spawn(g.viewport)
	}

	floor := g.body.Integrate(g.cfg.Physics, g.viewport.H)

	// Gates still move on the frame the body lands, so a gate cleared on
	// that frame counts.
	for range g.pipes.Advance(g.body.X) {
		g.score.Increment()
		g.pulse = pulsePeak
		events = append(events, core.Event{Type: core.EventScored, Score: g.score.Current})
	}

	if floor {
		return g.crash(now, CauseFloor, events)
	}

	if CheckCollision(g.body, g.pipes.Obstacles(), g.pipes.Width()) {
		return g.crash(now, CauseObstacle, events)
	}

	if g.pulse > 1 {
		g.pulse = max(1, g.pulse-pulseDecay)
	}
	return events
}

// crash ends the run. Restart input is accepted once the restart delay has
// elapsed, so the gesture that caused the crash cannot restart the game.
func (g *Game) crash(now time.Time, cause string, events []core.Event) []core.Event {
	g.phase = PhaseGameOver
	g.restartAt = now.Add(g.cfg.Timing.RestartDelay)
	g.crashCause = cause
	g.spawner.Stop()
	return append(events, core.Event{Type: core.EventCrashed, Score: g.score.Current, Cause: cause})
}

// restart begins a new run, keeping the best score.
func (g *Game) restart(now time.Time) {
	g.placeBody()
	g.score.ResetRun()
	g.pipes.Reset()
	g.trace.Reset(g.viewport.H / 2)
	g.spawner.Restart(now)
	g.pulse = 1
	g.crashCause = ""
	g.restartAt = time.Time{}
	g.phase = PhasePlaying
}

// canRestart reports whether restart input is accepted at the given time.
func (g *Game) canRestart(now time.Time) bool {
	return g.phase == PhaseGameOver && !now.Before(g.restartAt)
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score.Current,
		Best:       g.score.Best,
		Started:    g.phase != PhaseStart,
		GameOver:   g.phase == PhaseGameOver,
		CanRestart: g.canRestart(g.clock.Now()),
	}
}
