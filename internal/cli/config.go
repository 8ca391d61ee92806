package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the grid configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default grid.yaml",
	Long: `Write a grid.yaml with the default training command, paths, and
hyperparameter lists. Edit the lists to define the sweep.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing grid.yaml")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if config.FileExists(gridConfigPath) && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", gridConfigPath)
	}
	if err := config.SaveYAML(gridConfigPath, config.DefaultGridConfig()); err != nil {
		return err
	}
	fmt.Println(render(styleSuccess, fmt.Sprintf("Wrote %s.", gridConfigPath)))
	fmt.Println(render(styleHint, "Edit the grid lists, then start a sweep with: birdops run"))
	return nil
}
