// Package summary scans training logs and tabulates the metrics the
// training script reports.
package summary

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/models"
)

// Line grammar of the training script's output. The script is an
// external collaborator, so each tagged line is treated as a tiny wire
// format: a fixed tag at line start plus captured values. Every rule is
// optional per file; absence leaves the field null.
var (
	runDirPattern = regexp.MustCompile(`(?m)^\[info\] run_dir: (.+)$`)
	modelPattern  = regexp.MustCompile(`(?m)^\[info\] model: (.+)$`)

	// The four hyperparameters appear on one combined line; they are
	// captured together, all four or none.
	hyperPattern = regexp.MustCompile(`(?m)^\[info\] epochs: (\d+), lr: ([0-9.eE+-]+), weight_decay: ([0-9.eE+-]+), accum_steps: (\d+)\s*$`)

	// One line per epoch; the best (maximum) value across the file wins.
	epochValAccPattern = regexp.MustCompile(`(?m)^\[epoch \d+\] val_acc: ([0-9.eE+-]+)`)

	valMacroF1Pattern  = regexp.MustCompile(`(?m)^\[report\] val_macro_f1: ([0-9.eE+-]+)`)
	valMAPPattern      = regexp.MustCompile(`(?m)^\[report\] val_mAP: ([0-9.eE+-]+)`)
	testMacroF1Pattern = regexp.MustCompile(`(?m)^\[report\] test_macro_f1: ([0-9.eE+-]+)`)
	testMAPPattern     = regexp.MustCompile(`(?m)^\[report\] test_mAP: ([0-9.eE+-]+)`)
)

// expectedTags are lines the training script has printed in every run so
// far. A file missing one of them signals drift in the log format, which
// is worth a warning rather than a silent null.
var expectedTags = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"run_dir", runDirPattern},
	{"model", modelPattern},
	{"hyperparameters", hyperPattern},
}

// Extract builds the summary row for one log file. It never fails: a log
// with no recognized lines still yields a row, with RunName taken from
// the filename. The returned drift list names expected tags that were
// absent.
func Extract(logFile, content string) (models.SummaryRow, []string) {
	row := models.SummaryRow{
		RunName: strings.TrimSuffix(logFile, filepath.Ext(logFile)),
		LogFile: logFile,
	}

	if m := runDirPattern.FindStringSubmatch(content); m != nil {
		row.RunName = filepath.Base(strings.TrimRight(m[1], "\r"))
	}
	if m := modelPattern.FindStringSubmatch(content); m != nil {
		row.Model = captured(m[1])
	}
	if m := hyperPattern.FindStringSubmatch(content); m != nil {
		row.Epochs = captured(m[1])
		row.LR = captured(m[2])
		row.WeightDecay = captured(m[3])
		row.AccumSteps = captured(m[4])
	}

	row.BestValAcc = bestValAcc(content)

	if m := valMacroF1Pattern.FindStringSubmatch(content); m != nil {
		row.ValMacroF1 = captured(m[1])
	}
	if m := valMAPPattern.FindStringSubmatch(content); m != nil {
		row.ValMAP = captured(m[1])
	}
	if m := testMacroF1Pattern.FindStringSubmatch(content); m != nil {
		row.TestMacroF1 = captured(m[1])
	}
	if m := testMAPPattern.FindStringSubmatch(content); m != nil {
		row.TestMAP = captured(m[1])
	}

	var drift []string
	for _, tag := range expectedTags {
		if !tag.pattern.MatchString(content) {
			drift = append(drift, tag.name)
		}
	}
	return row, drift
}

// bestValAcc selects the textual value of the numerically largest
// val_acc line, or nil when no epoch line matched. Values are kept as
// matched; only the comparison is numeric.
func bestValAcc(content string) *string {
	matches := epochValAccPattern.FindAllStringSubmatch(content, -1)
	var bestText *string
	best := 0.0
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if bestText == nil || v > best {
			best = v
			bestText = captured(m[1])
		}
	}
	return bestText
}

func captured(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}
