// Package dataset computes value distributions over dataset metadata
// files, used to sanity-check class balance before a sweep.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one distinct value with its frequency.
type Entry struct {
	Value   string
	Count   int
	Percent float64
}

// ColumnDistribution counts how often each distinct value appears in the
// named column of a CSV file. Entries are sorted by count descending,
// value ascending on ties.
func ColumnDistribution(csvPath, column string) ([]Entry, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", csvPath, err)
	}

	col := -1
	for i, name := range header {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in %s (have: %s)", column, csvPath, strings.Join(header, ", "))
	}

	counts := make(map[string]int)
	total := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row is reported and skipped; anything else
			// ends the scan, but never silently.
			if _, ok := err.(*csv.ParseError); ok {
				log.Printf("Warning: skipping malformed row in %s: %v", csvPath, err)
				continue
			}
			log.Printf("Warning: stopped reading %s early: %v", csvPath, err)
			break
		}
		if col >= len(record) {
			continue
		}
		counts[record[col]]++
		total++
	}
	return tally(counts, total), nil
}

// KeyDistribution counts how often each distinct value of key appears in
// a JSON file holding a list of records.
func KeyDistribution(jsonPath, key string) ([]Entry, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s as a list of records: %w", jsonPath, err)
	}

	counts := make(map[string]int)
	total := 0
	for _, rec := range records {
		v, ok := rec[key]
		if !ok {
			continue
		}
		counts[fmt.Sprintf("%v", v)]++
		total++
	}
	return tally(counts, total), nil
}

func tally(counts map[string]int, total int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for value, count := range counts {
		percent := 0.0
		if total > 0 {
			percent = 100 * float64(count) / float64(total)
		}
		entries = append(entries, Entry{Value: value, Count: count, Percent: percent})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})
	return entries
}

// OutputName derives the summary filename from the input file and
// column, matching the `<stem>_<column>_distribution.csv` convention.
func OutputName(inputPath, column string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return fmt.Sprintf("%s_%s_distribution.csv", stem, column)
}

// WriteDistribution writes the entries as a CSV table (value, count,
// percent), creating the output directory if needed.
func WriteDistribution(path, column string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{column, "count", "percent"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Value, fmt.Sprintf("%d", e.Count), fmt.Sprintf("%.2f", e.Percent)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
