package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGridConfigIsValid(t *testing.T) {
	if err := DefaultGridConfig().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GridConfig)
		wantErr bool
	}{
		{
			name:   "defaults pass",
			mutate: func(c *GridConfig) {},
		},
		{
			name:    "empty command",
			mutate:  func(c *GridConfig) { c.Command = nil },
			wantErr: true,
		},
		{
			name:    "empty logs dir",
			mutate:  func(c *GridConfig) { c.LogsDir = "" },
			wantErr: true,
		},
		{
			name:    "negative pause",
			mutate:  func(c *GridConfig) { c.PauseSeconds = -1 },
			wantErr: true,
		},
		{
			name:    "empty epochs list",
			mutate:  func(c *GridConfig) { c.Grid.Epochs = nil },
			wantErr: true,
		},
		{
			name:    "zero epochs value",
			mutate:  func(c *GridConfig) { c.Grid.Epochs = []int{10, 0} },
			wantErr: true,
		},
		{
			name:    "negative learning rate",
			mutate:  func(c *GridConfig) { c.Grid.LearningRate = []float64{-0.001} },
			wantErr: true,
		},
		{
			name:   "zero weight decay is allowed",
			mutate: func(c *GridConfig) { c.Grid.WeightDecay = []float64{0} },
		},
		{
			name:    "zero accum steps",
			mutate:  func(c *GridConfig) { c.Grid.AccumSteps = []int{0} },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGridConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGridConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGridConfig(filepath.Join(t.TempDir(), "grid.yaml"))
	if err != nil {
		t.Fatalf("LoadGridConfig() error: %v", err)
	}
	want := DefaultGridConfig()
	if cfg.LogsDir != want.LogsDir || cfg.TrimLines != want.TrimLines {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadGridConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	orig := DefaultGridConfig()
	orig.Grid.Epochs = []int{3, 7}
	orig.PauseSeconds = 0
	if err := SaveYAML(path, orig); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGridConfig(path)
	if err != nil {
		t.Fatalf("LoadGridConfig() error: %v", err)
	}
	if len(cfg.Grid.Epochs) != 2 || cfg.Grid.Epochs[0] != 3 || cfg.Grid.Epochs[1] != 7 {
		t.Errorf("epochs = %v, want [3 7]", cfg.Grid.Epochs)
	}
	if cfg.PauseSeconds != 0 {
		t.Errorf("pause_seconds = %d, want 0", cfg.PauseSeconds)
	}
}

func TestLoadGridConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	content := `command: [python3, train.py]
logs_dir: logs
grid:
  epochs: [10]
  learning_rate: [0.0001]
  weight_decay: [0.01]
  max_per_class: [100]
  accum_steps: [1]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGridConfig(path)
	if err != nil {
		t.Fatalf("LoadGridConfig() error: %v", err)
	}
	if !cfg.ContinueOnError {
		t.Error("ContinueOnError = false for config omitting the key, want default true")
	}
	if cfg.TrimLines != 19 {
		t.Errorf("TrimLines = %d for config omitting the key, want default 19", cfg.TrimLines)
	}
	if cfg.PauseSeconds != 10 {
		t.Errorf("PauseSeconds = %d for config omitting the key, want default 10", cfg.PauseSeconds)
	}
	// Keys that were given override the defaults.
	if len(cfg.Grid.Epochs) != 1 || cfg.Grid.Epochs[0] != 10 {
		t.Errorf("epochs = %v, want [10]", cfg.Grid.Epochs)
	}
}

func TestLoadGridConfigExplicitFalseOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	cfg := DefaultGridConfig()
	cfg.ContinueOnError = false
	if err := SaveYAML(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadGridConfig(path)
	if err != nil {
		t.Fatalf("LoadGridConfig() error: %v", err)
	}
	if loaded.ContinueOnError {
		t.Error("ContinueOnError = true, want explicit false from the file")
	}
}

func TestLoadGridConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	content := "version: 1\ncommand: [python3, train.py]\nlogs_dir: logs\nlerning_rate_typo: [0.1]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGridConfig(path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadGridConfigRejectsInvalidGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	cfg := DefaultGridConfig()
	cfg.Grid.MaxPerClass = nil
	if err := SaveYAML(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGridConfig(path); err == nil {
		t.Error("expected error for empty max_per_class list")
	}
}
