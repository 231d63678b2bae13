package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	flagConfig     string
	flagDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration exactly as play and sim do and print it as
YAML. Redirect the output to ~/.arcade/configs/breakout.yaml to start a
custom config.

Search order:
  --config path
  ~/.arcade/configs/breakout.yaml
  ./configs/breakout.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, simCmd, configCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// loadGameConfig resolves the config file and applies --difficulty.
func loadGameConfig(logger *log.Logger) (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, fmt.Errorf("load config: %w", err)
	}
	config.ApplyPreset(&cfg, preset)

	logger.Debug("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}
