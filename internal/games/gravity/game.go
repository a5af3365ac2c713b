// Package gravity adapts the gravity engine to the terminal platform:
// it sizes the playfield from the screen, maps input frames to taps,
// handles pause, tracks run identity and optionally records the session.
package gravity

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/gravity-switch/internal/config"
	"github.com/vovakirdan/gravity-switch/internal/core"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
	"github.com/vovakirdan/gravity-switch/internal/replay"
)

const (
	ID    = "gravity"
	Title = "Gravity Switch"
)

// Virtual pixels per terminal cell. Terminal cells are roughly twice as
// tall as they are wide.
const (
	CellW = 5
	CellH = 10
)

// PlayfieldSize converts a screen size in cells to playfield units.
func PlayfieldSize(cols, rows int) (width, height float64) {
	return float64(cols * CellW), float64(rows * CellH)
}

// Result reports what happened during one platform tick.
type Result struct {
	Phase     engine.Phase
	Score     int
	HighScore int
	Distance  float64
	Events    []engine.Event
	Paused    bool
	Finished  bool // The run ended during this tick
	RunID     string
}

// Option configures a Game.
type Option func(*Game)

// WithHighScores attaches the high score collaborator.
func WithHighScores(h engine.HighScores) Option {
	return func(g *Game) { g.scores = h }
}

// WithAudio attaches the audio collaborator.
func WithAudio(a engine.Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithRecording records every tick so the session can be replayed.
func WithRecording() Option {
	return func(g *Game) { g.record = true }
}

// Game is one player's session.
type Game struct {
	tuning config.GravityConfig
	scores engine.HighScores
	audio  engine.Audio
	record bool

	config   core.RuntimeConfig
	rng      *rand.Rand
	engine   *engine.Engine
	recorder *replay.Recorder
	paused   bool
	runID    string
}

// New creates a game with the given tuning. Call Reset before use.
func New(tuning config.GravityConfig, opts ...Option) *Game {
	g := &Game{tuning: tuning}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return Title }

// Reset creates a fresh engine for the screen size and seed in cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	width, height := PlayfieldSize(cfg.ScreenW, cfg.ScreenH)
	rng := rand.New(rand.NewSource(cfg.Seed))

	e, err := engine.New(g.tuning, width, height,
		engine.WithRand(rng),
		engine.WithHighScores(g.scores),
		engine.WithAudio(g.audio),
	)
	if err != nil {
		return err
	}

	g.config = cfg
	g.rng = rng
	g.engine = e
	g.paused = false
	g.runID = ""
	g.startRecording(width, height)
	return nil
}

// Resize adapts the playfield to a new screen size. The current run is
// abandoned; the high score is kept. The random source restarts from the
// seed so a recording made after the resize replays on its own.
func (g *Game) Resize(cols, rows int) error {
	width, height := PlayfieldSize(cols, rows)
	if err := g.engine.Resize(width, height); err != nil {
		return err
	}

	g.config.ScreenW = cols
	g.config.ScreenH = rows
	g.rng.Seed(g.config.Seed)
	g.paused = false
	g.runID = ""
	g.startRecording(width, height)
	return nil
}

func (g *Game) startRecording(width, height float64) {
	if !g.record {
		return
	}
	g.recorder = replay.NewRecorder(g.config.Seed, width, height, g.tuning)
}

// Step applies one platform tick: pause toggles, taps, then a step of dt
// reference frames. Nothing advances while paused.
func (g *Game) Step(in core.InputFrame, dt float64) Result {
	if in.Has(core.ActionPause) && (g.paused || g.engine.Phase() == engine.PhasePlaying) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(nil, false)
	}

	taps := in.Count(core.ActionFlip)
	for range taps {
		if g.engine.Phase() == engine.PhaseIdle {
			g.runID = uuid.NewString()
		}
		g.engine.HandleInput()
	}

	wasPlaying := g.engine.Phase() == engine.PhasePlaying
	res := g.engine.Step(dt)
	if g.recorder != nil {
		g.recorder.Add(dt, taps)
	}

	return g.result(res.Events, wasPlaying && res.Phase == engine.PhaseGameOver)
}

func (g *Game) result(events []engine.Event, finished bool) Result {
	d := g.engine.Snapshot()
	return Result{
		Phase:     d.State,
		Score:     d.Score,
		HighScore: d.HighScore,
		Distance:  d.Distance,
		Events:    events,
		Paused:    g.paused,
		Finished:  finished,
		RunID:     g.runID,
	}
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.engine.Snapshot(), g.paused)
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() engine.GameData { return g.engine.Snapshot() }

// Phase returns the engine phase.
func (g *Game) Phase() engine.Phase { return g.engine.Phase() }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// RunID identifies the current or last run. Empty before the first tap.
func (g *Game) RunID() string { return g.runID }

// Seed returns the seed of the random source.
func (g *Game) Seed() int64 { return g.config.Seed }

// Recording returns the session recorded so far, or nil when recording
// is disabled.
func (g *Game) Recording() *replay.Recording {
	if g.recorder == nil {
		return nil
	}
	d := g.engine.Snapshot()
	return g.recorder.Finish(g.runID, d.Score, d.Distance)
}
