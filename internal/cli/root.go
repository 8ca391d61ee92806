// Package cli implements the birdops CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
)

// gridConfigPath is the grid.yaml location, shared by all subcommands.
var gridConfigPath string

var rootCmd = &cobra.Command{
	Use:   "birdops",
	Short: "Operator tooling for the seabird classifier training grid",
	Long: `Birdops drives hyperparameter sweeps of the swin-tiny seabird
classifier and post-processes the resulting training logs.

A sweep runs the training script once per combination of the configured
hyperparameter lists, teeing each run's output to a timestamped log
file. The trim and summarize commands clean those logs and extract the
reported metrics into a summary table.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gridConfigPath, "config", config.GridFileName, "path to the grid configuration file")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(distributionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(versionCmd)
}
