package replay

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

// Player re-simulates a recording one frame at a time.
type Player struct {
	rec    *Recording
	engine *engine.Engine
	next   int
}

// NewPlayer builds a fresh engine for rec. Extra options are applied
// after the recorded random source, so they must not replace it.
func NewPlayer(rec *Recording, opts ...engine.Option) (*Player, error) {
	opts = append([]engine.Option{engine.WithRand(rand.New(rand.NewSource(rec.Seed)))}, opts...)
	e, err := engine.New(rec.Tuning, rec.Width, rec.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot start engine: %w", err)
	}
	return &Player{rec: rec, engine: e}, nil
}

// Next applies the next recorded frame. It returns false once the
// recording is exhausted.
func (p *Player) Next() (engine.StepResult, bool) {
	if p.next >= len(p.rec.Frames) {
		return engine.StepResult{}, false
	}
	f := p.rec.Frames[p.next]
	p.next++

	for range f.Taps {
		p.engine.HandleInput()
	}
	return p.engine.Step(f.DT), true
}

// Frame returns the index of the next frame to apply.
func (p *Player) Frame() int { return p.next }

// Done reports whether every frame has been applied.
func (p *Player) Done() bool { return p.next >= len(p.rec.Frames) }

// Snapshot returns the current engine state.
func (p *Player) Snapshot() engine.GameData { return p.engine.Snapshot() }

// Play re-simulates the whole recording and returns the final state.
func Play(rec *Recording) (engine.GameData, error) {
	p, err := NewPlayer(rec)
	if err != nil {
		return engine.GameData{}, err
	}
	for {
		if _, ok := p.Next(); !ok {
			break
		}
	}
	return p.Snapshot(), nil
}

// Verify re-simulates rec and checks the recorded final score and distance.
func Verify(rec *Recording) error {
	final, err := Play(rec)
	if err != nil {
		return err
	}
	if final.Score != rec.FinalScore || final.Distance != rec.FinalDistance {
		return fmt.Errorf("%w: recorded score %d distance %.2f, replayed score %d distance %.2f",
			ErrMismatch, rec.FinalScore, rec.FinalDistance, final.Score, final.Distance)
	}
	return nil
}
