package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFlip           // Space, Up, W, Enter, mouse click - flip gravity (the "tap")
	ActionUp             // Up arrow, K - menu navigation
	ActionDown           // Down arrow, J - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlip:
		return "Flip"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions delivered between two frames.
// Actions are counted rather than flagged: two taps that both survive
// debouncing within one frame must both reach the simulation.
type InputFrame struct {
	counts map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		counts: make(map[Action]int),
	}
}

// Add records one occurrence of an action for this frame.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	if f.counts == nil {
		f.counts = make(map[Action]int)
	}
	f.counts[a]++
}

// Count returns how many times the action occurred this frame.
func (f InputFrame) Count(a Action) int {
	return f.counts[a]
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.counts[a] > 0
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.counts) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.counts {
		delete(f.counts, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.counts {
		clone.counts[k] = v
	}
	return clone
}
