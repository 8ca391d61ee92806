package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/logs"
)

var (
	trimLinesFlag int
	trimForce     bool
	trimDir       string
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Drop the environment preamble from each training log",
	Long: `Rewrite every .log file in the logs directory with its first N
lines removed. The training script prints a fixed-length environment
dump before the first epoch; N must match that preamble exactly.

Trimming is destructive, so processed files are recorded in a ledger
next to the logs and skipped on later invocations. Use --force to trim
a file again anyway.`,
	Args: cobra.NoArgs,
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().IntVar(&trimLinesFlag, "lines", 0, "preamble lines to drop (default: trim_lines from grid.yaml)")
	trimCmd.Flags().BoolVar(&trimForce, "force", false, "trim files even if the ledger says they were already trimmed")
	trimCmd.Flags().StringVar(&trimDir, "dir", "", "logs directory (default: logs_dir from grid.yaml)")
}

func runTrim(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGridConfig(gridConfigPath)
	if err != nil {
		return err
	}

	dir := cfg.LogsDir
	if trimDir != "" {
		dir = trimDir
	}
	n := cfg.TrimLines
	if cmd.Flags().Changed("lines") {
		n = trimLinesFlag
	}
	if n < 0 {
		return fmt.Errorf("--lines must not be negative")
	}

	ledger, err := logs.OpenLedger(filepath.Join(dir, config.TrimLedgerFileName))
	if err != nil {
		return fmt.Errorf("failed to open trim ledger: %w", err)
	}
	defer ledger.Close()

	trimmed, skipped, err := logs.TrimDir(dir, n, ledger, trimForce)
	if err != nil {
		return err
	}

	fmt.Println(render(styleSuccess, fmt.Sprintf("Trimmed %d file(s), skipped %d.", trimmed, skipped)))
	if skipped > 0 && !trimForce {
		fmt.Println(render(styleWarning, "Skipped files were already trimmed; use --force to trim again."))
	}
	return nil
}
