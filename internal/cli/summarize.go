package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/summary"
)

var (
	summarizeDir   string
	summarizeWatch bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Extract run metadata and metrics from the logs into summary.csv",
	Long: `Scan every .log file in the logs directory and emit one summary
row per file: run identity, hyperparameters, the best validation
accuracy across epochs, and the final report metrics. Lines that never
appeared leave their column empty; the row is still written.

With --watch, the directory is re-summarized whenever a log changes.`,
	Args: cobra.NoArgs,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeDir, "dir", "", "logs directory (default: logs_dir from grid.yaml)")
	summarizeCmd.Flags().BoolVar(&summarizeWatch, "watch", false, "keep watching the directory and re-summarize on changes")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGridConfig(gridConfigPath)
	if err != nil {
		return err
	}
	dir := cfg.LogsDir
	if summarizeDir != "" {
		dir = summarizeDir
	}

	if summarizeWatch {
		stop := make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		go func() {
			<-sig
			close(stop)
		}()
		fmt.Println(render(styleHint, fmt.Sprintf("Watching %s, Ctrl-C to stop.", dir)))
		return summary.Watch(dir, stop)
	}

	n, path, err := summary.Run(dir)
	if err != nil {
		return err
	}
	fmt.Println(render(styleSuccess, fmt.Sprintf("Wrote %d row(s) to %s.", n, path)))
	return nil
}
