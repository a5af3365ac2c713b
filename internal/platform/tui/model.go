package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-switch/internal/config"
	"github.com/vovakirdan/gravity-switch/internal/core"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
	"github.com/vovakirdan/gravity-switch/internal/replay"
	"github.com/vovakirdan/gravity-switch/internal/storage"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Tuning   config.GravityConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store // May be nil: runs are not persisted
	Logger   *log.Logger    // May be nil
	Bell     io.Writer      // Non-nil enables the terminal bell
	Debounce time.Duration
	Record   bool
	Embedded bool // The model runs inside a session; b returns to the menu
}

// Model is the Bubble Tea model hosting one gravity game.
type Model struct {
	game     *gravity.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	gate     *TapGate
	input    core.InputFrame
	loop     uint64
	lastTick time.Time
	now      func() time.Time

	quitting   bool
	backToMenu bool
}

// NewModel creates a model and resets its game to the runtime config.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := []gravity.Option{
		gravity.WithHighScores(storage.NewHighScoreKeeper(opts.Store, logger)),
	}
	if opts.Bell != nil {
		gameOpts = append(gameOpts, gravity.WithAudio(NewBellAudio(opts.Bell)))
	}
	if opts.Record {
		gameOpts = append(gameOpts, gravity.WithRecording())
	}
	game := gravity.New(opts.Tuning, gameOpts...)

	cols, rows := playfieldCells(cfg.ScreenW, cfg.ScreenH)
	gameCfg := cfg
	gameCfg.ScreenW, gameCfg.ScreenH = cols, rows
	if err := game.Reset(gameCfg); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start game: %w", err)
	}

	keys := NewKeyMapper()
	keys.EnableBack(opts.Embedded)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cols, rows),
		store:  opts.Store,
		logger: logger,
		config: cfg,
		keys:   keys,
		help:   h,
		gate:   NewTapGate(opts.Debounce),
		input:  core.NewInputFrame(),
		loop:   newLoopID(),
		now:    time.Now,
	}, nil
}

// playfieldCells returns the screen area left for the playfield once the
// help bar is reserved.
func playfieldCells(width, height int) (cols, rows int) {
	return max(width, 1), max(height-helpRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop, m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keys.MapMouse(msg) == core.ActionFlip {
			m.tap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionFlip:
		m.tap()
	case core.ActionPause:
		m.input.Add(core.ActionPause)
	case core.ActionBack:
		if m.game.Paused() || m.game.Phase() == engine.PhaseGameOver {
			m.backToMenu = true
		}
	}
	return m, nil
}

// tap queues a flip for the next tick unless it is debounced.
func (m *Model) tap() {
	if m.gate.Allow(m.now()) {
		m.input.Add(core.ActionFlip)
	}
}

// handleResize rebuilds the playfield for the new terminal size.
// The current run is abandoned.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols, rows := playfieldCells(msg.Width, msg.Height)
	if err := m.game.Resize(cols, rows); err != nil {
		m.logger.Warn("cannot resize playfield", "cols", cols, "rows", rows, "error", err)
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(cols, rows)
	m.help.Width = msg.Width
	m.input.Clear()
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.input, dt)
	m.input.Clear()

	if result.Finished {
		m.saveRun(result)
	}

	return m, tickCmd(m.loop, m.config.TickInterval())
}

// saveRun adds a finished run to the leaderboard.
func (m Model) saveRun(result gravity.Result) {
	m.logger.Info("run finished",
		"run", result.RunID,
		"score", result.Score,
		"distance", int(result.Distance),
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(result.RunID, result.Score, result.Distance); err != nil {
		m.logger.Warn("cannot save run", "run", result.RunID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".gravity", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", gravity.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Game returns the hosted game.
func (m Model) Game() *gravity.Game {
	return m.game
}

// Run plays the game in the current terminal until the user quits.
// When recordPath is set and recording is enabled, the session is written
// there on exit.
func Run(opts Options, recordPath string) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks count as taps
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if recordPath == "" {
		return nil
	}
	m, ok := finalModel.(Model)
	if !ok {
		return nil
	}
	rec := m.Game().Recording()
	if rec == nil {
		return nil
	}
	if err := replay.WriteFile(recordPath, rec); err != nil {
		return err
	}
	model.logger.Info("recording saved", "path", recordPath, "frames", len(rec.Frames))
	return nil
}
