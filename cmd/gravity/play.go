package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-switch/internal/core"
	"github.com/vovakirdan/gravity-switch/internal/platform/tui"
)

var (
	flagRecord   string
	flagSound    bool
	flagDebounce time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Gravity Switch",
	Long: `Start playing in the current terminal.

Controls:
  Space/Up/W/Enter/Click - Flip gravity (also starts and restarts a run)
  P/Esc                  - Pause
  Ctrl+S                 - Save a screenshot
  Q/Ctrl+C               - Quit

Examples:
  gravity play
  gravity play --seed 42 --record run.gsr
  gravity play --sound --debounce 100ms
  gravity play --config ./my-gravity.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start with the title menu. After a run, press B on the game over
screen to return to the menu and browse the high scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Ring the terminal bell on score and death")
		cmd.Flags().DurationVar(&flagDebounce, "debounce", tui.DefaultDebounce, "Minimum time between two taps")
	}
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the session to this file on exit")
}

// playOptions collects the options shared by play and menu. Logs go
// nowhere by default so they do not corrupt the alternate screen.
func playOptions() (tui.Options, func()) {
	logger, logCloser, err := newLogger(io.Discard)
	if err != nil {
		fatal("%v", err)
	}

	tuning, err := loadTuning()
	if err != nil {
		logCloser.Close()
		fatal("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	opts := tui.Options{
		Tuning: tuning,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:    store,
		Logger:   logger,
		Debounce: flagDebounce,
	}
	if flagSound {
		opts.Bell = os.Stdout
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}
	return opts, cleanup
}

func runPlay(_ *cobra.Command, _ []string) {
	opts, cleanup := playOptions()
	opts.Record = flagRecord != ""

	runErr := tui.Run(opts, flagRecord)
	cleanup()

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	opts, cleanup := playOptions()

	runErr := tui.RunMenu(opts)
	cleanup()

	if runErr != nil {
		fatal("running menu: %v", runErr)
	}
}
