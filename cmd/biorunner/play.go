package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bio-runner/internal/core"
	"github.com/vovakirdan/bio-runner/internal/platform/tui"
	"github.com/vovakirdan/bio-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner card",
	Long: `Start the runner card. The run begins on the first interaction.

Controls:
  Space/Up/Click - Start, jump, retry
  Esc            - Stop the current run
  Tab            - Run history (s toggles recent/best)
  Q/Ctrl+C       - Quit

Examples:
  biorunner play
  biorunner play --difficulty easy
  biorunner play --config ./my-runner.yaml --log-file runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger("biorunner")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	// Run history lives for this process only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("run history disabled", "err", err)
	} else {
		defer store.Close()
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = cfg.Timing.FrameRate
	runtime.Seed = seed()

	opts := tui.Options{
		Config:     cfg,
		Runtime:    runtime,
		Difficulty: flagDifficulty,
		Theme:      theme,
		Store:      store,
		Logger:     logger,
	}

	logger.Info("starting", "width", runtime.ScreenW, "height", runtime.ScreenH, "seed", runtime.Seed)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
