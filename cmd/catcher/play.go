package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/number-catcher/internal/config"
	"github.com/vovakirdan/number-catcher/internal/core"
	"github.com/vovakirdan/number-catcher/internal/games/catcher"
	"github.com/vovakirdan/number-catcher/internal/platform/tui"
	"github.com/vovakirdan/number-catcher/internal/storage"
)

var flagNoScores bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Number Catcher session.

Controls:
  Arrows/WASD/HJKL  - Steer
  Space/Enter       - Start, continue
  P                 - Pause
  Tab               - Session scores
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Scores are kept for the current session only and summarized on exit.

Examples:
  catcher play
  catcher play --seed 42 --fps 30
  catcher play --no-scores`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoScores, "no-scores", false, "Do not record or summarize the session")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		// Logged below so a session can be replayed with --seed.
		cfg.Seed = time.Now().UnixNano()
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	var store *storage.Store
	if !flagNoScores {
		store, err = storage.Open()
		if err != nil {
			logger.Warn("could not open session scores database", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open session scores database: %v\n", err)
			// Continue without storage - game still works
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session started", "fps", cfg.TickRate, "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", width, height))
	game := catcher.New(gameCfg, catcher.NewSystemClock())
	if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")

	if store == nil {
		return nil
	}
	return printSummary(cmd.OutOrStdout(), store)
}

// printSummary writes the session's totals and best games.
func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("reading session stats: %w", err)
	}
	if stats.Games == 0 && stats.RoundsWon == 0 && stats.RoundsLost() == 0 {
		return nil
	}
	games, err := store.TopGames(5)
	if err != nil {
		return fmt.Errorf("reading session games: %w", err)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(title.Render("Session Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 30))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Games played: %d\n", stats.Games)
	fmt.Fprintf(&b, "Best score:   %d\n", stats.BestScore)
	fmt.Fprintf(&b, "Rounds won:   %d\n", stats.RoundsWon)
	fmt.Fprintf(&b, "Rounds lost:  %d (%d overshot, %d out of time)\n",
		stats.RoundsLost(), stats.Overshoots, stats.Timeouts)
	fmt.Fprintf(&b, "Best bonus:   %d\n", stats.BestBonus)

	if len(games) > 0 {
		b.WriteString("\n")
		b.WriteString(dim.Render(fmt.Sprintf("%-6s %-8s %s", "Rank", "Score", "Rounds")))
		b.WriteString("\n")
		for i, g := range games {
			rounds := fmt.Sprintf("%d", g.RoundsPlayed)
			if !g.Finished {
				rounds += " (quit)"
			}
			fmt.Fprintf(&b, "%-6s %-8d %s\n", fmt.Sprintf("#%d", i+1), g.Score, rounds)
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}
