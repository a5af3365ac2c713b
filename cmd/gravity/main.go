// gravity is a one-button arcade game for the terminal: flip gravity to
// dodge spikes and blocks on the floor and the ceiling.
//
// Usage:
//
//	gravity play              - Play in the current terminal
//	gravity menu              - Start with the title menu
//	gravity scores            - Show the leaderboard
//	gravity serve             - Start SSH server for remote play
//	gravity replay <file>     - Verify or watch a recorded run
//	gravity config            - Print the effective tuning
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.gravity/gravity.db)
//	--config <path>     - Use a custom tuning file
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-switch/internal/config"
	"github.com/vovakirdan/gravity-switch/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravity",
	Short: "Gravity Switch - flip gravity, dodge the obstacles",
	Long: `Gravity Switch is a one-button endless runner for the terminal.
The player runs along the floor or the ceiling; every tap flips gravity.
Spikes and blocks scroll in from the right, faster and faster.

Available commands:
  play     - Play directly
  menu     - Title menu with play and high scores
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  replay   - Verify or watch a recorded run
  config   - Print the effective tuning

Examples:
  gravity play
  gravity play --record run.gsr
  gravity serve --ssh :2222
  gravity replay run.gsr --watch`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set and to fallback otherwise. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravity",
		Level:           level,
	})
	return logger, closer, nil
}

// loadTuning reads the tuning file selected by --config.
func loadTuning() (config.GravityConfig, error) {
	return config.LoadGravity(flagConfig)
}

// openStore opens the leaderboard. Play goes on without one when it
// cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fatal reports err on stderr and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
