package models

import (
	"strings"
	"testing"
)

func TestRunConfigArgs(t *testing.T) {
	rc := RunConfig{Epochs: 10, LearningRate: 0.0001, WeightDecay: 0.01, MaxPerClass: 100, AccumSteps: 1}

	got := strings.Join(rc.Args(), " ")
	want := "--epochs 10 --lr 0.0001 --weight_decay 0.01 --max_per_class 100 --accum_steps 1"
	if got != want {
		t.Errorf("Args() = %q, want %q", got, want)
	}
}

func TestRunConfigSlug(t *testing.T) {
	tests := []struct {
		name string
		rc   RunConfig
		want string
	}{
		{
			name: "dots replaced",
			rc:   RunConfig{Epochs: 10, LearningRate: 0.0001, WeightDecay: 0.01, MaxPerClass: 100, AccumSteps: 1},
			want: "e10_lr0p0001_wd0p01_mpc100_as1",
		},
		{
			name: "scientific notation",
			rc:   RunConfig{Epochs: 20, LearningRate: 1e-05, WeightDecay: 0, MaxPerClass: 50, AccumSteps: 4},
			want: "e20_lr1e-05_wd0_mpc50_as4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rc.Slug()
			if got != tt.want {
				t.Errorf("Slug() = %q, want %q", got, tt.want)
			}
			if strings.Contains(got, ".") {
				t.Errorf("Slug() = %q still contains a dot", got)
			}
		})
	}
}
