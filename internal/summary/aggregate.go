package summary

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/models"
)

// Aggregate reads every *.log file in dir and extracts one summary row
// per file, in filename order so repeated runs over an unchanged
// directory produce identical tables. An unreadable file is reported and
// skipped; it never aborts the batch.
func Aggregate(dir string) ([]models.SummaryRow, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read logs dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var rows []models.SummaryRow
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Warning: failed to read %s, skipping: %v", name, err)
			continue
		}

		row, drift := Extract(name, string(data))
		for _, tag := range drift {
			log.Printf("Warning: %s: expected %s line not found (log format drift?)", name, tag)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteSummary writes the rows as a CSV table with the fixed header.
func WriteSummary(path string, rows []models.SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.SummaryColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Run aggregates dir and writes summary.csv into it. Returns the number
// of rows and the summary path.
func Run(dir string) (int, string, error) {
	rows, err := Aggregate(dir)
	if err != nil {
		return 0, "", err
	}
	path := filepath.Join(dir, config.SummaryFileName)
	if err := WriteSummary(path, rows); err != nil {
		return 0, "", err
	}
	return len(rows), path, nil
}
