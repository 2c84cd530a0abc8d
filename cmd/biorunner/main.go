// biorunner is the endless runner card of a link-in-bio page, playable in
// the terminal.
//
// Usage:
//
//	biorunner                  - Play (same as "biorunner play")
//	biorunner play             - Play the runner card
//	biorunner sim              - Run headless autopilot sessions
//	biorunner config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Override the frame rate from the config
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom runner config YAML
//	--difficulty <name>   - easy, normal or hard
//	--theme <name>        - dark or light
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biorunner",
	Short: "Bio Runner - the link-in-bio runner card in your terminal",
	Long: `Bio Runner is the small endless runner shown on a link-in-bio page,
hosted in the terminal.

Available commands:
  play     - Play the runner card (default)
  sim      - Run headless autopilot sessions and summarise them
  config   - Print the default runner configuration

Examples:
  biorunner
  biorunner play --difficulty hard --theme light
  biorunner sim --runs 20 --seed 42
  biorunner config > ~/.biorunner/runner.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config frame_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagTheme, "theme", "dark", "Color theme: dark, light")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
