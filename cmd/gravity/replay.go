package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-switch/internal/platform/tui"
	"github.com/vovakirdan/gravity-switch/internal/replay"
)

var (
	flagWatch bool
	flagSpeed float64
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify or watch a recorded run",
	Long: `Re-simulate a recording made with 'gravity play --record'.

Without --watch the run is replayed headless and its final score and
distance are checked against the recorded outcome. With --watch it is
played back in the terminal.

Examples:
  gravity replay run.gsr
  gravity replay run.gsr --watch
  gravity replay run.gsr --watch --speed 2`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Play the recording back in the terminal")
	replayCmd.Flags().Float64Var(&flagSpeed, "speed", 1, "Playback speed multiplier for --watch")
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.ReadFile(args[0])
	if err != nil {
		fatal("%v", err)
	}

	if flagWatch {
		if err := tui.RunReplay(rec, flagSpeed); err != nil {
			fatal("running replay: %v", err)
		}
		return
	}

	fmt.Printf("Run:      %s\n", rec.RunID)
	fmt.Printf("Recorded: %s\n", rec.RecordedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Seed:     %d\n", rec.Seed)
	fmt.Printf("Field:    %.0fx%.0f\n", rec.Width, rec.Height)
	fmt.Printf("Frames:   %d (%s)\n", len(rec.Frames), rec.Duration().Round(100*time.Millisecond))
	fmt.Printf("Outcome:  score %d, distance %.0f\n", rec.FinalScore, rec.FinalDistance)

	if err := replay.Verify(rec); err != nil {
		if errors.Is(err, replay.ErrMismatch) {
			fatal("replay does not reproduce the recorded outcome: %v", err)
		}
		fatal("%v", err)
	}
	fmt.Println("Verified: replay reproduces the recorded outcome")
}
