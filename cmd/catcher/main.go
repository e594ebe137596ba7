// catcher is a terminal arcade game: steer a ship to catch falling numbers
// that add up exactly to the round's target.
//
// Usage:
//
//	catcher play     - Play a session
//	catcher rules    - Print the rules
//	catcher config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load gameplay constants from a YAML file
//	--log <path>         - Write logs to a file (default: off)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Number Catcher - catch numbers that add up to the target",
	Long: `Number Catcher is a terminal arcade game. Numbered bubbles fall down
the screen; steer your ship into them so the numbers you catch add up
exactly to the round's target before the clock runs out.

Available commands:
  play     - Play a session
  rules    - Print the rules
  config   - Print the effective configuration

Examples:
  catcher play
  catcher play --seed 42
  catcher play --config ./my-catcher.yaml --log catcher.log --log-level debug
  catcher config > ~/.catcher/catcher.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (the terminal belongs to the game)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log, logs are discarded
// because the game owns the terminal.
// The returned close function releases the log file.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "catcher",
		Level:           level,
	})
	return logger, closeFn, nil
}
