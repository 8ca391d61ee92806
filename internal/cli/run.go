package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/grid"
)

var (
	runDryRun bool
	runPTY    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full hyperparameter sweep",
	Long: `Run the training script once per combination of the configured
hyperparameter lists, sequentially, in a fixed order. Each run's merged
stdout/stderr is shown live and captured to a timestamped log file in
the logs directory. A failing run is reported and the sweep continues
unless continue_on_error is disabled.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print each command without executing it")
	runCmd.Flags().BoolVar(&runPTY, "pty", false, "run the training script under a pseudo-terminal")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGridConfig(gridConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("pty") {
		cfg.UsePTY = runPTY
	}

	session, err := grid.NewRunner(cfg, runDryRun).Sweep()
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range session.Runs {
		if res.ExitCode != 0 {
			failed++
		}
	}

	if runDryRun {
		fmt.Println(render(styleHint, fmt.Sprintf("Dry run: %d combinations.", len(session.Runs))))
		return nil
	}
	if failed > 0 {
		fmt.Println(render(styleError, fmt.Sprintf("Sweep finished: %d/%d runs failed, see %s.", failed, len(session.Runs), cfg.LogsDir)))
	} else {
		fmt.Println(render(styleSuccess, fmt.Sprintf("Sweep finished: %d runs, all succeeded.", len(session.Runs))))
	}
	return nil
}
