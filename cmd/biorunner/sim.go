package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bio-runner/internal/runner"
	"github.com/vovakirdan/bio-runner/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks uint64
	flagWidth    float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Play the runner with a built-in autopilot and no terminal UI.

Sessions run on a virtual clock: one frame per step and one score point
every score_interval of virtual time. Every session is recorded in the
in-memory run log and summarised at the end.

Examples:
  biorunner sim
  biorunner sim --runs 50 --seed 7 --difficulty hard
  biorunner sim --width 1200 --max-ticks 20000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of sessions")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 36000, "Frame limit per session (0 = until game over)")
	simCmd.Flags().Float64Var(&flagWidth, "width", 600, "Viewport width in world units")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}
	if flagWidth <= 0 {
		return fmt.Errorf("--width must be positive, got %g", flagWidth)
	}

	logger, closer, err := newLogger("biorunner-sim")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	s := seed()
	world := runner.NewWorld(cfg, rand.New(rand.NewSource(s)))
	world.SetViewport(flagWidth)
	pilot := runner.NewAutopilot(cfg)
	perScore := cfg.Timing.FramesPerScoreTick()
	frame := time.Second / time.Duration(cfg.Timing.FrameRate)

	for i := 1; i <= flagRuns; i++ {
		snap := pilot.Play(world, flagMaxTicks, perScore)

		reason := "collision"
		if !snap.IsGameOver {
			reason = "tick limit"
			world.Stop()
		}
		logger.Debug("run finished", "run", i, "reason", reason, "score", snap.Score, "ticks", snap.Tick)

		_, err := store.SaveRun(storage.RunRecord{
			Mode:       "sim",
			Difficulty: flagDifficulty,
			Score:      snap.Score,
			Ticks:      snap.Tick,
			Obstacles:  snap.Cleared,
			MaxSpeed:   snap.TopSpeed,
			Duration:   time.Duration(snap.Tick) * frame,
			Seed:       s,
		})
		if err != nil {
			return err
		}
	}

	return printSummary(store, s)
}

// printSummary prints the best runs and aggregate statistics.
func printSummary(store *storage.Store, seed int64) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	top, err := store.TopRuns(5)
	if err != nil {
		return err
	}

	fmt.Printf("Autopilot - %d runs (seed %d)\n", stats.Runs, seed)
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-7s  %-7s  %-8s  %-9s  %s\n", "Rank", "Score", "Ticks", "Cleared", "Top spd", "Time")
	fmt.Printf("  %-4s  %-7s  %-7s  %-8s  %-9s  %s\n", "----", "-----", "-----", "-------", "-------", "----")

	for i, r := range top {
		fmt.Printf("  %-4d  %-7d  %-7d  %-8d  %-9.2f  %s\n",
			i+1, r.Score, r.Ticks, r.Obstacles, r.MaxSpeed, r.Duration.Round(time.Second/10))
	}

	fmt.Println()
	fmt.Printf("Best: %d   Average: %.1f   Frames: %d   Top speed: %.2f\n",
		stats.HighScore, stats.AvgScore, stats.TotalTicks, stats.BestSpeed)
	return nil
}
