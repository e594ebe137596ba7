package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-catcher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the gameplay constants the game would run with, as YAML.

The configuration is looked up in this order:
  1. --config <path>
  2. ~/.catcher/catcher.yaml
  3. ./configs/catcher.yaml
  4. built-in defaults

Values missing from a file keep their defaults. With --defaults the
commented built-in file is printed instead, ready to be edited.

Examples:
  catcher config
  catcher config --defaults > ./configs/catcher.yaml
  catcher config --config ./my-catcher.yaml
  catcher config > ~/.catcher/catcher.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
