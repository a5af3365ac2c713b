package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-switch/internal/config"
	"github.com/vovakirdan/gravity-switch/internal/core"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
	"github.com/vovakirdan/gravity-switch/internal/storage"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// testClock is a manually advanced clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testOptions(store *storage.Store) Options {
	return Options{
		Tuning: config.DefaultGravityConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  25,
			TickRate: 60,
			Seed:     42,
		},
		Store:    store,
		Debounce: DefaultDebounce,
	}
}

func newTestModel(t *testing.T, opts Options) (Model, *testClock) {
	t.Helper()
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	clock := &testClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m.now = clock.Now
	return m, clock
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

// tick delivers one frame of this model's tick loop and advances the clock.
func tick(t *testing.T, m Model, clock *testClock) Model {
	t.Helper()
	clock.Advance(engine.ReferenceFrame)
	m, _ = send(t, m, TickMsg{At: clock.Now(), Loop: m.loop})
	return m
}

func TestNewModelReservesHelpRow(t *testing.T) {
	m, _ := newTestModel(t, testOptions(nil))

	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, want 80x24", m.screen.Width(), m.screen.Height())
	}
	cfg := m.Game().Snapshot().Config
	if cfg.Width != 400 || cfg.Height != 240 {
		t.Errorf("playfield = %vx%v, want 400x240", cfg.Width, cfg.Height)
	}
	if m.Game().Phase() != engine.PhaseIdle {
		t.Errorf("phase = %v, want idle", m.Game().Phase())
	}
}

func TestTapStartsRunOnNextTick(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))

	m, _ = send(t, m, spaceKey)
	if m.Game().Phase() != engine.PhaseIdle {
		t.Fatal("tap applied before the tick")
	}

	m = tick(t, m, clock)
	if m.Game().Phase() != engine.PhasePlaying {
		t.Errorf("phase = %v, want playing", m.Game().Phase())
	}
	if m.Game().RunID() == "" {
		t.Error("run id not assigned")
	}
}

func TestMouseClickTaps(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, clock)
	if m.Game().Phase() != engine.PhasePlaying {
		t.Errorf("phase = %v, want playing", m.Game().Phase())
	}
}

func TestTapsAreDebounced(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))

	m, _ = send(t, m, spaceKey)
	m, _ = send(t, m, spaceKey)
	if got := m.input.Count(core.ActionFlip); got != 1 {
		t.Fatalf("queued taps = %d, want 1", got)
	}

	clock.Advance(DefaultDebounce)
	m, _ = send(t, m, spaceKey)
	if got := m.input.Count(core.ActionFlip); got != 2 {
		t.Errorf("queued taps = %d, want 2", got)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))

	m, _ = send(t, m, spaceKey)
	m, cmd := send(t, m, TickMsg{At: clock.Now(), Loop: m.loop + 1})
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if m.Game().Phase() != engine.PhaseIdle {
		t.Errorf("stale tick advanced the game to %v", m.Game().Phase())
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))

	m, _ = send(t, m, spaceKey)
	m = tick(t, m, clock)
	m, _ = send(t, m, keyRune('p'))
	m = tick(t, m, clock)
	if !m.Game().Paused() {
		t.Fatal("game not paused")
	}

	before := m.Game().Snapshot().Distance
	for range 10 {
		m = tick(t, m, clock)
	}
	if after := m.Game().Snapshot().Distance; after != before {
		t.Errorf("distance moved while paused: %v -> %v", before, after)
	}
}

func TestBackOnlyWhenEmbedded(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))
	m, _ = send(t, m, spaceKey)
	m = tick(t, m, clock)
	m, _ = send(t, m, keyRune('p'))
	m = tick(t, m, clock)

	m, _ = send(t, m, keyRune('b'))
	if m.BackToMenu() {
		t.Error("standalone model went back to menu")
	}

	opts := testOptions(nil)
	opts.Embedded = true
	e, clock := newTestModel(t, opts)
	e, _ = send(t, e, keyRune('b'))
	if e.BackToMenu() {
		t.Error("back honoured while idle")
	}
	e, _ = send(t, e, spaceKey)
	e = tick(t, e, clock)
	e, _ = send(t, e, keyRune('p'))
	e = tick(t, e, clock)
	e, _ = send(t, e, keyRune('b'))
	if !e.BackToMenu() {
		t.Error("embedded model did not go back while paused")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, testOptions(nil))

	m, cmd := send(t, m, keyRune('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Errorf("quit not requested: quitting=%v cmd=%v", m.IsQuitting(), cmd != nil)
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestResizeRebuildsPlayfield(t *testing.T) {
	m, clock := newTestModel(t, testOptions(nil))
	m, _ = send(t, m, spaceKey)
	m = tick(t, m, clock)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	d := m.Game().Snapshot()
	if d.Config.Width != 500 || d.Config.Height != 300 {
		t.Errorf("playfield = %vx%v, want 500x300", d.Config.Width, d.Config.Height)
	}
	if d.State != engine.PhaseIdle {
		t.Errorf("phase after resize = %v, want idle", d.State)
	}
}

func TestFinishedRunIsSaved(t *testing.T) {
	store := openTestStore(t)
	m, clock := newTestModel(t, testOptions(store))

	m, _ = send(t, m, spaceKey)
	for range 20000 {
		m = tick(t, m, clock)
		if m.Game().Phase() == engine.PhaseGameOver {
			break
		}
	}
	if m.Game().Phase() != engine.PhaseGameOver {
		t.Fatal("run never ended")
	}

	// Ticks after the end must not save the run again
	for range 10 {
		m = tick(t, m, clock)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved runs = %d, want 1", len(runs))
	}
	d := m.Game().Snapshot()
	if runs[0].RunID != m.Game().RunID() || runs[0].Score != d.Score {
		t.Errorf("saved run = %+v, want id %s score %d", runs[0], m.Game().RunID(), d.Score)
	}
}

func TestViewShowsPlayfieldAndHelp(t *testing.T) {
	m, _ := newTestModel(t, testOptions(nil))

	view := m.View()
	for _, want := range []string{"TAP TO FLIP GRAVITY", "flip gravity", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 25 {
		t.Errorf("view has %d lines, want 25", lines)
	}
}
