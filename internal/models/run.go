package models

import (
	"fmt"
	"strconv"
	"strings"
)

// RunConfig is one point of the hyperparameter grid. It is built for a
// single training invocation and survives only as command-line arguments
// and an encoded log filename.
type RunConfig struct {
	Epochs       int
	LearningRate float64
	WeightDecay  float64
	MaxPerClass  int
	AccumSteps   int
}

// Args returns the named command-line arguments passed to the training
// script for this combination.
func (rc RunConfig) Args() []string {
	return []string{
		"--epochs", fmt.Sprintf("%d", rc.Epochs),
		"--lr", formatFloat(rc.LearningRate),
		"--weight_decay", formatFloat(rc.WeightDecay),
		"--max_per_class", fmt.Sprintf("%d", rc.MaxPerClass),
		"--accum_steps", fmt.Sprintf("%d", rc.AccumSteps),
	}
}

// Slug returns a filesystem-safe encoding of the combination, with every
// `.` in the float values replaced by `p`.
func (rc RunConfig) Slug() string {
	return fmt.Sprintf("e%d_lr%s_wd%s_mpc%d_as%d",
		rc.Epochs,
		safeFloat(rc.LearningRate),
		safeFloat(rc.WeightDecay),
		rc.MaxPerClass,
		rc.AccumSteps,
	)
}

func (rc RunConfig) String() string {
	return fmt.Sprintf("epochs=%d lr=%s weight_decay=%s max_per_class=%d accum_steps=%d",
		rc.Epochs, formatFloat(rc.LearningRate), formatFloat(rc.WeightDecay), rc.MaxPerClass, rc.AccumSteps)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func safeFloat(v float64) string {
	return strings.ReplaceAll(formatFloat(v), ".", "p")
}
