package config

import (
	"fmt"
	"time"
)

// GridValues holds the candidate value lists for the hyperparameter
// sweep. The Cartesian product of the five lists defines the runs.
type GridValues struct {
	Epochs       []int     `yaml:"epochs"`
	LearningRate []float64 `yaml:"learning_rate"`
	WeightDecay  []float64 `yaml:"weight_decay"`
	MaxPerClass  []int     `yaml:"max_per_class"`
	AccumSteps   []int     `yaml:"accum_steps"`
}

// GridConfig is the grid.yaml configuration for the operator commands.
// It replaces the edit-in-source constants of the original scripts.
type GridConfig struct {
	Version int `yaml:"version"`

	// Command is the training entry point, e.g. ["python3", "train.py"].
	// The five hyperparameter flags are appended per combination.
	Command []string `yaml:"command"`

	LogsDir         string `yaml:"logs_dir"`
	PauseSeconds    int    `yaml:"pause_seconds"`
	ContinueOnError bool   `yaml:"continue_on_error"`
	UsePTY          bool   `yaml:"use_pty"`

	// TrimLines is the preamble length dropped by `birdops trim`. The
	// training script prints a fixed-length environment dump before the
	// first epoch; if that preamble ever changes length this value must
	// change with it.
	TrimLines int `yaml:"trim_lines"`

	Grid GridValues `yaml:"grid"`
}

// DefaultGridConfig returns the values the original operator scripts
// hard-coded.
func DefaultGridConfig() *GridConfig {
	return &GridConfig{
		Version:         1,
		Command:         []string{"python3", "train.py"},
		LogsDir:         DefaultLogsDir,
		PauseSeconds:    10,
		ContinueOnError: true,
		TrimLines:       19,
		Grid: GridValues{
			Epochs:       []int{10, 20},
			LearningRate: []float64{0.0001, 0.0005},
			WeightDecay:  []float64{0.01},
			MaxPerClass:  []int{100},
			AccumSteps:   []int{1, 4},
		},
	}
}

// LoadGridConfig loads grid.yaml from the given path, or returns the
// defaults when the file does not exist. Keys absent from the file keep
// their default values. The returned config is always validated.
func LoadGridConfig(path string) (*GridConfig, error) {
	cfg := DefaultGridConfig()
	if FileExists(path) {
		if err := LoadYAML(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid config %s: %w", path, err)
	}
	return cfg, nil
}

// Pause returns the configured delay between runs.
func (c *GridConfig) Pause() time.Duration {
	return time.Duration(c.PauseSeconds) * time.Second
}

// Validate checks the config before any run starts. The original scripts
// accepted whatever was typed in; here an empty or nonsensical list is a
// setup error.
func (c *GridConfig) Validate() error {
	if len(c.Command) == 0 || c.Command[0] == "" {
		return fmt.Errorf("command must name the training entry point")
	}
	if c.LogsDir == "" {
		return fmt.Errorf("logs_dir must not be empty")
	}
	if c.PauseSeconds < 0 {
		return fmt.Errorf("pause_seconds must not be negative")
	}
	if c.TrimLines < 0 {
		return fmt.Errorf("trim_lines must not be negative")
	}

	g := c.Grid
	if len(g.Epochs) == 0 || len(g.LearningRate) == 0 || len(g.WeightDecay) == 0 ||
		len(g.MaxPerClass) == 0 || len(g.AccumSteps) == 0 {
		return fmt.Errorf("every grid list needs at least one value")
	}
	for _, v := range g.Epochs {
		if v <= 0 {
			return fmt.Errorf("epochs values must be positive, got %d", v)
		}
	}
	for _, v := range g.LearningRate {
		if v <= 0 {
			return fmt.Errorf("learning_rate values must be positive, got %g", v)
		}
	}
	for _, v := range g.WeightDecay {
		if v < 0 {
			return fmt.Errorf("weight_decay values must not be negative, got %g", v)
		}
	}
	for _, v := range g.MaxPerClass {
		if v <= 0 {
			return fmt.Errorf("max_per_class values must be positive, got %d", v)
		}
	}
	for _, v := range g.AccumSteps {
		if v <= 0 {
			return fmt.Errorf("accum_steps values must be positive, got %d", v)
		}
	}
	return nil
}
