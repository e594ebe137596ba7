package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-catcher/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules",
	Long: `Print how Number Catcher is played, using the constants from the
effective configuration.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return writeRules(cmd.OutOrStdout(), cfg)
}

func writeRules(w io.Writer, cfg config.CatcherConfig) error {
	gp := cfg.Gameplay
	_, err := fmt.Fprintf(w, `NUMBER CATCHER

Every round has a target between %d and %d. Numbered bubbles fall from the
top of the screen. Steer your ship into them: the numbers you catch add up,
and the sum has to hit the target exactly.

  Hit the target     +1 point, plus 1 for every %d seconds left on the clock
  Go over the target lose a life
  Run out of time    lose a life

You start with %d lives. The first round lasts %d seconds, every round after
that is %d seconds shorter, down to %d seconds. When no lives are left the
game is over and a new one starts from the intro.

Controls:
  Arrows/WASD/HJKL  Steer (hold to keep moving)
  Space/Enter       Start, continue
  P                 Pause
  Tab               Session scores
  Ctrl+S            Screenshot
  Q/Ctrl+C          Quit
`,
		gp.MinTarget, gp.MaxTarget, gp.SecondsPerBonusPoint,
		gp.StartingLives, gp.StartingRoundSeconds, gp.RoundSecondsStep, gp.MinRoundSeconds)
	return err
}
