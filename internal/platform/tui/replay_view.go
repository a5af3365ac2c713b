package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-switch/internal/core"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
	"github.com/vovakirdan/gravity-switch/internal/replay"
)

// minReplayTick keeps zero-dt frames from spinning the event loop.
const minReplayTick = time.Millisecond

// ReplayModel plays a recording back at its recorded pace.
type ReplayModel struct {
	rec      *replay.Recording
	player   *replay.Player
	screen   *core.Screen
	keys     *KeyMapper
	loop     uint64
	speed    float64
	paused   bool
	quitting bool
}

// NewReplayModel prepares playback of rec. speed scales the playback
// rate; values <= 0 play at recorded pace.
func NewReplayModel(rec *replay.Recording, speed float64) (ReplayModel, error) {
	player, err := replay.NewPlayer(rec)
	if err != nil {
		return ReplayModel{}, err
	}
	if speed <= 0 {
		speed = 1
	}
	cols := max(int(rec.Width/gravity.CellW), 1)
	rows := max(int(rec.Height/gravity.CellH), 1)

	return ReplayModel{
		rec:    rec,
		player: player,
		screen: core.NewScreen(cols, rows),
		keys:   NewKeyMapper(),
		loop:   newLoopID(),
		speed:  speed,
	}, nil
}

// Init schedules the first frame.
func (m ReplayModel) Init() tea.Cmd {
	return m.nextTick()
}

// nextTick waits as long as the upcoming frame took when it was recorded.
func (m ReplayModel) nextTick() tea.Cmd {
	if m.player.Done() {
		return nil
	}
	dt := m.rec.Frames[m.player.Frame()].DT
	interval := time.Duration(dt * float64(engine.ReferenceFrame) / m.speed)
	return tickCmd(m.loop, max(interval, minReplayTick))
}

// Update handles messages for the replay viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action == core.ActionPause || action == core.ActionFlip {
			m.paused = !m.paused
			if !m.paused {
				return m, m.nextTick()
			}
		}
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop || m.paused {
			return m, nil
		}
		m.player.Next()
		return m, m.nextTick()
	}

	return m, nil
}

// View renders the replayed playfield and a status line.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	gravity.Render(m.screen, m.player.Snapshot(), false)
	status := fmt.Sprintf("REPLAY %s  frame %d/%d  %.1fx", shortRunID(m.rec.RunID),
		m.player.Frame(), len(m.rec.Frames), m.speed)
	switch {
	case m.player.Done():
		status += "  (finished, q to quit)"
	case m.paused:
		status += "  (paused, space to resume)"
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// Done reports whether every recorded frame has been shown.
func (m ReplayModel) Done() bool {
	return m.player.Done()
}

// RunReplay plays rec in the current terminal.
func RunReplay(rec *replay.Recording, speed float64) error {
	model, err := NewReplayModel(rec, speed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
