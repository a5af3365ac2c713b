package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gravity-switch/internal/config"
)

// HighScores persists the best score. Implementations report failures
// through errors; the engine treats them as non-fatal.
type HighScores interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Audio plays event sounds. Playback is fire-and-forget.
type Audio interface {
	Play(Event)
}

// StepResult reports the state after a step and the events raised
// since the previous step, including those caused by HandleInput.
type StepResult struct {
	Phase  Phase
	Score  int
	Events []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithHighScores attaches a high score store.
func WithHighScores(h HighScores) Option {
	return func(e *Engine) { e.scores = h }
}

// WithAudio attaches an audio sink.
func WithAudio(a Audio) Option {
	return func(e *Engine) { e.audio = a }
}

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// Engine owns one game session. It is not safe for concurrent use;
// hosts drive it from a single goroutine.
type Engine struct {
	tuning config.GravityConfig
	data   GameData
	rng    Rand
	scores HighScores
	audio  Audio

	pending []Event
}

// New creates an engine in the idle phase for a width x height playfield.
// Without WithRand the engine draws from a source seeded with 1.
func New(tuning config.GravityConfig, width, height float64, opts ...Option) (*Engine, error) {
	cfg, err := BuildConfig(width, height, tuning)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		tuning: tuning,
		rng:    rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.data = e.newGame(cfg, 0)
	return e, nil
}

// newGame builds a fresh idle state. The high score is the larger of
// carry and whatever the store returns.
func (e *Engine) newGame(cfg Config, carry int) GameData {
	high := max(carry, 0)
	if e.scores != nil {
		if stored, err := e.scores.LoadHighScore(); err == nil && stored > high {
			high = stored
		}
	}

	return GameData{
		State:  PhaseIdle,
		Config: cfg,
		Player: Player{
			Y:          cfg.FloorY - cfg.HalfPlayer() - 5,
			GravityDir: 1,
		},
		Obstacles:      []Obstacle{},
		Particles:      []Particle{},
		Trail:          []TrailPoint{},
		HighScore:      high,
		Speed:          cfg.BaseSpeed,
		NextObstacleIn: cfg.MinGap,
	}
}

// Reset returns to a fresh idle game, keeping the high score.
func (e *Engine) Reset() {
	e.data = e.newGame(e.data.Config, e.data.HighScore)
	e.pending = nil
}

// Resize rebuilds the configuration for a new playfield and resets
// to idle. The high score is preserved.
func (e *Engine) Resize(width, height float64) error {
	cfg, err := BuildConfig(width, height, e.tuning)
	if err != nil {
		return err
	}
	e.data = e.newGame(cfg, e.data.HighScore)
	e.pending = nil
	return nil
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.data.State }

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.data.Config }

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() GameData { return e.data.Clone() }

// HandleInput applies one tap.
//
// From idle the game starts and gravity inverts without an impulse.
// While playing gravity inverts and the player is pushed toward the new
// surface. From game over a fresh idle game is created.
func (e *Engine) HandleInput() {
	switch e.data.State {
	case PhaseIdle:
		e.data.State = PhasePlaying
		e.flip(false)
	case PhasePlaying:
		e.flip(true)
	case PhaseGameOver:
		e.data = e.newGame(e.data.Config, e.data.HighScore)
	}
}

func (e *Engine) flip(impulse bool) {
	p := &e.data.Player
	p.GravityDir = -p.GravityDir
	if impulse {
		p.VY = float64(p.GravityDir) * e.data.Config.FlipSpeed
	}
	p.TargetRotation += math.Pi

	burst := FlipParticles(e.data.Config.PlayerX, p.Y, p.GravityDir, e.rng)
	e.data.Particles = append(e.data.Particles, burst...)
	e.emit(EventFlip)
}

// Step advances the simulation by dt reference frames. Physics run only
// while playing; particles keep animating in every phase. A dt that is
// not a positive finite number leaves the state untouched.
func (e *Engine) Step(dt float64) StepResult {
	if dt > 0 && !math.IsInf(dt, 1) {
		if e.data.State == PhasePlaying {
			e.advance(dt)
		}
		e.data.Particles = StepParticles(e.data.Particles, dt)
	}

	res := StepResult{
		Phase:  e.data.State,
		Score:  e.data.Score,
		Events: e.pending,
	}
	e.pending = nil
	return res
}

func (e *Engine) advance(dt float64) {
	d := &e.data
	cfg := d.Config
	p := &d.Player

	d.Distance += d.Speed * dt
	d.Speed = math.Min(cfg.MaxSpeed, d.Speed+cfg.SpeedIncrement*dt)

	p.VY += cfg.Gravity * float64(p.GravityDir) * dt
	p.VY = math.Max(-cfg.MaxFallSpeed, math.Min(cfg.MaxFallSpeed, p.VY))
	p.Y += p.VY * dt
	p.Rotation += (p.TargetRotation - p.Rotation) * cfg.RotationEase * dt

	if p.GravityDir > 0 {
		if rest := cfg.FloorRest(); p.Y > rest {
			p.Y = rest
			p.VY = 0
		}
	} else {
		if rest := cfg.CeilingRest(); p.Y < rest {
			p.Y = rest
			p.VY = 0
		}
	}

	d.Trail = StepTrail(d.Trail, cfg.PlayerX, p.Y, TrailLength)

	playerLeft := cfg.PlayerX - cfg.HalfPlayer()
	kept := d.Obstacles[:0]
	for _, o := range d.Obstacles {
		o.X -= d.Speed * dt
		if !o.Passed && o.Right() < playerLeft {
			o.Passed = true
			d.Score++
			e.emit(EventScore)
		}
		if o.X >= -o.Width {
			kept = append(kept, o)
		}
	}
	d.Obstacles = kept

	d.NextObstacleIn -= d.Speed * dt
	if d.NextObstacleIn <= 0 {
		spawnX := cfg.Width + cfg.SpawnOffset
		d.Obstacles = append(d.Obstacles, GenerateObstacle(spawnX, cfg, d.Score, e.rng))
		d.NextObstacleIn = NextGap(cfg, d.Score, e.rng.Float64())
	}

	for _, o := range d.Obstacles {
		if Collides(*p, o, cfg) {
			e.die()
			return
		}
	}
}

func (e *Engine) die() {
	d := &e.data
	d.State = PhaseGameOver
	d.Particles = append(d.Particles, DeathParticles(d.Config.PlayerX, d.Player.Y, e.rng)...)
	e.emit(EventDeath)

	if d.Score > d.HighScore {
		d.HighScore = d.Score
		if e.scores != nil {
			// A failed save keeps the in-memory value; the store logs.
			_ = e.scores.SaveHighScore(d.Score)
		}
	}
}

func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
	if e.audio != nil {
		e.audio.Play(ev)
	}
}
