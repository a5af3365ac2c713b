// Package tui provides the Bubble Tea integration for the gravity game.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

// MaxFrameDelta caps dt after a stall so the player cannot tunnel
// through obstacles.
const MaxFrameDelta = 4.0

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that scheduled it, so a model left behind by a session never
// shares its ticks with the next one.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// newLoopID returns a fresh tick loop identifier.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(loop uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// frameDelta converts the wall-clock time between two ticks into a dt
// multiplier, clamped to [0, MaxFrameDelta].
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 1
	}
	dt := engine.DeltaFrames(now.Sub(prev))
	if dt < 0 {
		return 0
	}
	return min(dt, MaxFrameDelta)
}
