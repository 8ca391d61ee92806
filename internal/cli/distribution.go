package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/dataset"
)

var (
	distCSV    string
	distJSON   string
	distColumn string
	distOutDir string
	distName   string
)

var distributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Compute a value distribution for a dataset column",
	Long: `Count how many times each distinct value appears in a column of a
dataset CSV (or a key of a JSON list of records), compute percentages,
and write the result as a summary CSV in the output directory.`,
	Args: cobra.NoArgs,
	RunE: runDistribution,
}

func init() {
	distributionCmd.Flags().StringVar(&distCSV, "csv", "", "dataset CSV file")
	distributionCmd.Flags().StringVar(&distJSON, "json", "", "dataset JSON file (list of records)")
	distributionCmd.Flags().StringVar(&distColumn, "column", "species_name", "column or key to count")
	distributionCmd.Flags().StringVar(&distOutDir, "out", "data_exploration", "output directory")
	distributionCmd.Flags().StringVar(&distName, "name", "", "output filename (default: <stem>_<column>_distribution.csv)")
}

func runDistribution(cmd *cobra.Command, args []string) error {
	if (distCSV == "") == (distJSON == "") {
		return fmt.Errorf("exactly one of --csv or --json is required")
	}

	var (
		entries []dataset.Entry
		input   string
		err     error
	)
	if distCSV != "" {
		input = distCSV
		entries, err = dataset.ColumnDistribution(distCSV, distColumn)
	} else {
		input = distJSON
		entries, err = dataset.KeyDistribution(distJSON, distColumn)
	}
	if err != nil {
		return err
	}

	name := distName
	if name == "" {
		name = dataset.OutputName(input, distColumn)
	}
	out := filepath.Join(distOutDir, name)
	if err := dataset.WriteDistribution(out, distColumn, entries); err != nil {
		return err
	}

	fmt.Println(render(styleSuccess, fmt.Sprintf("Wrote %d value(s) to %s.", len(entries), out)))
	return nil
}
