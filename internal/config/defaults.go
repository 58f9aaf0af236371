package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			BaseMS:       1000,
			StepMS:       100,
			LinesPerStep: 10,
			MinMS:        100,
		},
		Autoplay: AutoplayConfig{
			IntervalMS: 100,
			Genome:     "100,1,10,100",
			LineCap:    0,
		},
		Training: TrainingConfig{
			Population:    10,
			Generations:   10,
			LineCap:       256,
			CrossoverRate: 70,
			MutationRate:  10,
			SelectionRate: 20,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Ramp:   true,
		},
	}
}
