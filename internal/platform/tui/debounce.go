package tui

import "time"

// DefaultDebounce is the minimum time between two accepted taps.
const DefaultDebounce = 150 * time.Millisecond

// TapGate drops taps that arrive within window of the last accepted one.
// Key auto-repeat would otherwise flip gravity several times per press.
type TapGate struct {
	window time.Duration
	last   time.Time
}

// NewTapGate creates a gate. A non-positive window accepts every tap.
func NewTapGate(window time.Duration) *TapGate {
	return &TapGate{window: window}
}

// Allow reports whether a tap at now is accepted, and records it if so.
func (g *TapGate) Allow(now time.Time) bool {
	if g.window > 0 && !g.last.IsZero() && now.Sub(g.last) < g.window {
		return false
	}
	g.last = now
	return true
}
