package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-switch/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning",
	Long: `Print the tuning the game would play with, as YAML.

The tuning is read from --config, then ~/.gravity/configs/gravity.yaml,
then ./configs/gravity.yaml, then the built-in defaults. The output is a
valid tuning file and can be edited and passed back with --config.

Examples:
  gravity config
  gravity config --defaults > my-gravity.yaml
  gravity play --config my-gravity.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	tuning := config.DefaultGravityConfig()
	if !flagDefaults {
		var err error
		if tuning, err = loadTuning(); err != nil {
			fatal("%v", err)
		}
	}

	data, err := config.Marshal(tuning)
	if err != nil {
		fatal("%v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fatal("%v", err)
	}
}
