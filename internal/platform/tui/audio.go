package tui

import (
	"io"
	"time"

	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

// bellGap is the minimum time between two bells of the same kind.
const bellGap = 100 * time.Millisecond

// BellAudio rings the terminal bell on game events.
// Write errors are ignored: sound never affects the game.
type BellAudio struct {
	w     io.Writer
	now   func() time.Time
	last  map[engine.Event]time.Time
	rings map[engine.Event]bool
}

// NewBellAudio creates a bell sink writing to w. Flips are silent by
// default; every tap would ring otherwise.
func NewBellAudio(w io.Writer) *BellAudio {
	return &BellAudio{
		w:    w,
		now:  time.Now,
		last: make(map[engine.Event]time.Time),
		rings: map[engine.Event]bool{
			engine.EventScore: true,
			engine.EventDeath: true,
		},
	}
}

// Play implements engine.Audio.
func (b *BellAudio) Play(ev engine.Event) {
	if !b.rings[ev] {
		return
	}
	now := b.now()
	if last, ok := b.last[ev]; ok && now.Sub(last) < bellGap {
		return
	}
	b.last[ev] = now
	_, _ = io.WriteString(b.w, "\a")
}
