package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestColumnDistribution(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "split_test.csv")
	content := "image,species_name\n" +
		"img1.jpg,puffin\n" +
		"img2.jpg,gannet\n" +
		"img3.jpg,puffin\n" +
		"img4.jpg,puffin\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ColumnDistribution(csvPath, "species_name")
	if err != nil {
		t.Fatalf("ColumnDistribution() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Value != "puffin" || entries[0].Count != 3 {
		t.Errorf("entries[0] = %+v, want puffin x3", entries[0])
	}
	if entries[1].Value != "gannet" || entries[1].Count != 1 {
		t.Errorf("entries[1] = %+v, want gannet x1", entries[1])
	}
	if entries[0].Percent != 75 {
		t.Errorf("puffin percent = %v, want 75", entries[0].Percent)
	}
}

func TestColumnDistributionSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "split_test.csv")
	// The third row has an extra field and must not end the scan.
	content := "image,species_name\n" +
		"img1.jpg,puffin\n" +
		"img2.jpg,gannet,stray-field\n" +
		"img3.jpg,puffin\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ColumnDistribution(csvPath, "species_name")
	if err != nil {
		t.Fatalf("ColumnDistribution() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (malformed row skipped, rest counted)", len(entries))
	}
	if entries[0].Value != "puffin" || entries[0].Count != 2 {
		t.Errorf("entries[0] = %+v, want puffin x2", entries[0])
	}
}

func TestColumnDistributionUnknownColumn(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(csvPath, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ColumnDistribution(csvPath, "species_name"); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestKeyDistribution(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "metadata.json")
	content := `[
  {"image": "img1.jpg", "species_name": "fulmar"},
  {"image": "img2.jpg", "species_name": "fulmar"},
  {"image": "img3.jpg", "species_name": "kittiwake"},
  {"image": "img4.jpg"}
]`
	if err := os.WriteFile(jsonPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := KeyDistribution(jsonPath, "species_name")
	if err != nil {
		t.Fatalf("KeyDistribution() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Records without the key don't count toward the total.
	if entries[0].Value != "fulmar" || entries[0].Count != 2 {
		t.Errorf("entries[0] = %+v, want fulmar x2", entries[0])
	}
	want := 100 * 2.0 / 3.0
	if diff := entries[0].Percent - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("fulmar percent = %v, want %v", entries[0].Percent, want)
	}
}

func TestTallyTieBreaksByValue(t *testing.T) {
	entries := tally(map[string]int{"tern": 2, "auk": 2, "gull": 5}, 9)
	if entries[0].Value != "gull" {
		t.Errorf("entries[0] = %+v, want gull first", entries[0])
	}
	if entries[1].Value != "auk" || entries[2].Value != "tern" {
		t.Errorf("tie not broken by value: %v, %v", entries[1].Value, entries[2].Value)
	}
}

func TestWriteDistribution(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "exploration", "split_test_species_name_distribution.csv")
	entries := []Entry{
		{Value: "puffin", Count: 3, Percent: 75},
		{Value: "gannet", Count: 1, Percent: 25},
	}

	if err := WriteDistribution(out, "species_name", entries); err != nil {
		t.Fatalf("WriteDistribution() error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2", len(records))
	}
	if records[0][0] != "species_name" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][2] != "75.00" {
		t.Errorf("percent formatted as %q, want 75.00", records[1][2])
	}
}

func TestOutputName(t *testing.T) {
	got := OutputName("data/split_test.csv", "species_name")
	if got != "split_test_species_name_distribution.csv" {
		t.Errorf("OutputName() = %q", got)
	}
}
