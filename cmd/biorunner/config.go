package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bio-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner configuration",
	Long: `Print the embedded default configuration as YAML.

The runner looks for its config in this order:
  --config <path>
  ~/.biorunner/runner.yaml
  ./configs/runner.yaml
  embedded defaults

Examples:
  biorunner config > ~/.biorunner/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
