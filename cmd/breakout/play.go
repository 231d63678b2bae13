package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagEndless bool
	flagLevel   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout in the terminal",
	Long: `Start a game. Without --endless or --level a menu asks for the mode
and starting level.

Controls:
  Left/Right, A/D  - Move paddle
  Space/Up         - Launch ball
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Extra lives and a wider paddle
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fewer lives, narrower paddle
  fixed  - No progression, stays at config's initial level

Examples:
  breakout play
  breakout play --endless
  breakout play --level 3 --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: levels cycle until game over")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-based), skips the menu")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size early for the mode selector
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	mode := breakout.ModeCampaign
	startLevel := 0

	if cmd.Flags().Changed("endless") || cmd.Flags().Changed("level") {
		if flagEndless {
			mode = breakout.ModeEndless
		}
		startLevel = max(flagLevel-1, 0)
	} else {
		selection, selErr := tui.RunModeSelector(breakout.LevelNames(), width, height)
		if selErr != nil {
			return selErr
		}
		if selection == nil {
			return nil
		}
		if selection.Mode == tui.ModeEndless {
			mode = breakout.ModeEndless
		}
		startLevel = selection.Level
	}

	game := breakout.New(cfg, mode, logger)
	game.SetStartLevel(startLevel)

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	final, err := tui.Run(game, runtime, logger)
	if err != nil {
		logger.Error("game aborted", "err", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s - score %d, level %d\n", game.Title(), final.Score, game.Level())
	return nil
}
