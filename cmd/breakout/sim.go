package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	flagTicks   int
	flagWidth   int
	flagHeight  int
	flagShowEnd bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Run the game without a terminal UI. A bot serves and tracks the ball
with the paddle; the run stops after --ticks or at game over and prints a
summary, including a state hash that is identical for identical seeds.

Examples:
  breakout sim --seed 42
  breakout sim --ticks 20000 --endless --frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height in cells")
	simCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: levels cycle until game over")
	simCmd.Flags().BoolVar(&flagShowEnd, "frame", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	mode := breakout.ModeCampaign
	if flagEndless {
		mode = breakout.ModeEndless
	}

	runtime := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if runtime.Seed == 0 {
		runtime.Seed = 1
	}

	sum := simulate(cfg, mode, runtime, flagTicks, logger)
	printSummary(cmd.OutOrStdout(), sum)

	if flagShowEnd {
		fmt.Fprintln(cmd.OutOrStdout(), sum.Frame)
	}
	return nil
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Ticks      int
	Score      int
	Lives      int
	Level      int
	BlocksHit  int
	BallsLost  int
	BlocksLeft int
	Particles  int
	Phase      string
	Hash       uint64
	Frame      string
}

// simulate plays up to ticks ticks with the autopilot.
func simulate(cfg config.GameConfig, mode breakout.GameMode, runtime core.RuntimeConfig, ticks int, logger *log.Logger) simSummary {
	game := breakout.New(cfg, mode, logger)
	game.Reset(runtime)

	var sum simSummary
	for sum.Ticks < ticks {
		res := game.Step(breakout.Autopilot(game))
		sum.Ticks++
		sum.BlocksHit += res.BlocksHit
		if res.BallLost {
			sum.BallsLost++
		}
		if res.State.GameOver {
			break
		}
	}

	state := game.State()
	snap := game.Snapshot()
	screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	game.Render(screen)

	left := 0
	for _, b := range game.Blocks() {
		if b.Alive {
			left++
		}
	}

	sum.Score = state.Score
	sum.Lives = state.Lives
	sum.Level = game.Level()
	sum.BlocksLeft = left
	sum.Particles = len(game.Particles())
	sum.Phase = game.Phase()
	sum.Hash = snap.Hash()
	sum.Frame = screen.String()

	logger.Info("simulation finished", "ticks", sum.Ticks, "score", sum.Score, "phase", sum.Phase)
	return sum
}

func printSummary(w io.Writer, s simSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ticks\t%d\n", s.Ticks)
	fmt.Fprintf(tw, "state\t%s\n", s.Phase)
	fmt.Fprintf(tw, "score\t%d\n", s.Score)
	fmt.Fprintf(tw, "lives\t%d\n", s.Lives)
	fmt.Fprintf(tw, "level\t%d\n", s.Level)
	fmt.Fprintf(tw, "blocks hit\t%d\n", s.BlocksHit)
	fmt.Fprintf(tw, "blocks left\t%d\n", s.BlocksLeft)
	fmt.Fprintf(tw, "balls lost\t%d\n", s.BallsLost)
	fmt.Fprintf(tw, "particles\t%d\n", s.Particles)
	fmt.Fprintf(tw, "hash\t%016x\n", s.Hash)
	tw.Flush()
}
