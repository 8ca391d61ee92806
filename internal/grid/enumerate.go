// Package grid enumerates hyperparameter combinations and drives the
// training script once per combination.
package grid

import (
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/config"
	"github.com/nomnemo/swin-tiny-seabird-classifier/internal/models"
)

// Enumerate expands the candidate value lists into the full Cartesian
// product. The nesting order is fixed (epochs outermost, accum_steps
// innermost) so repeated sweeps visit combinations in the same order.
func Enumerate(g config.GridValues) []models.RunConfig {
	combos := make([]models.RunConfig, 0, len(g.Epochs)*len(g.LearningRate)*len(g.WeightDecay)*len(g.MaxPerClass)*len(g.AccumSteps))
	for _, epochs := range g.Epochs {
		for _, lr := range g.LearningRate {
			for _, wd := range g.WeightDecay {
				for _, mpc := range g.MaxPerClass {
					for _, as := range g.AccumSteps {
						combos = append(combos, models.RunConfig{
							Epochs:       epochs,
							LearningRate: lr,
							WeightDecay:  wd,
							MaxPerClass:  mpc,
							AccumSteps:   as,
						})
					}
				}
			}
		}
	}
	return combos
}
