package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-switch/internal/games/gravity"
	"github.com/vovakirdan/gravity-switch/internal/storage"
)

// MenuChoice is an entry of the title menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuScores
	MenuQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "High Scores"
	case MenuQuit:
		return "Quit"
	}
	return "Unknown"
}

var menuChoices = []MenuChoice{MenuPlay, MenuScores, MenuQuit}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("48"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	best      int
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuChoice // Set when user selects an entry
}

// NewMenuModel creates a new menu model. The best score is read from
// store once; a nil store shows no best score.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	best := 0
	if store != nil {
		if score, err := store.HighScore(); err == nil {
			best = score
		}
	}
	return MenuModel{
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := menuChoices[m.cursor]
		if choice == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Leave a third of the screen above the title
	b.WriteString(strings.Repeat("\n", max(m.height/3-4, 1)))
	b.WriteString(menuTitleStyle.Render(centerText(spaced(gravity.Title), m.width)))
	b.WriteString("\n\n")
	b.WriteString(menuDimStyle.Render(centerText("Flip gravity. Dodge the spikes.", m.width)))
	b.WriteString("\n\n")

	for i, choice := range menuChoices {
		line := "  " + choice.String()
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + choice.String()
			style = menuCursorStyle
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	if m.best > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("BEST: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(menuDimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or nil if none was chosen yet.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// spaced upper-cases text and puts a space between its letters.
func spaced(text string) string {
	return strings.Join(strings.Split(strings.ToUpper(text), ""), " ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs a local session starting on the title menu. Finished games
// return to the menu.
func RunMenu(opts Options) error {
	opts.Embedded = true
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
