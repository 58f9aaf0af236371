// Package config provides YAML-based configuration loading and difficulty
// presets for tetris.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/ai"
)

// TetrisConfig contains all tunable parameters.
type TetrisConfig struct {
	Gravity    GravityConfig    `yaml:"gravity"`
	Autoplay   AutoplayConfig   `yaml:"autoplay"`
	Training   TrainingConfig   `yaml:"training"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GravityConfig defines the fall-speed ramp.
type GravityConfig struct {
	BaseMS       int `yaml:"base_ms"`        // Interval between falls at zero lines
	StepMS       int `yaml:"step_ms"`        // Reduction per step
	LinesPerStep int `yaml:"lines_per_step"` // Cleared lines per step
	MinMS        int `yaml:"min_ms"`         // Floor for the interval
}

// AutoplayConfig defines how the AI drives a game.
type AutoplayConfig struct {
	IntervalMS int    `yaml:"interval_ms"` // Delay between placements in interactive auto mode
	Genome     string `yaml:"genome"`      // Weights, "line,height_max,height_diff,dead_space"
	LineCap    int    `yaml:"line_cap"`    // Headless episodes stop here; 0 means play to game over
}

// TrainingConfig defines the genetic optimizer.
type TrainingConfig struct {
	Population    int `yaml:"population"`
	Generations   int `yaml:"generations"`
	LineCap       int `yaml:"line_cap"`       // Episode ends after this many cleared lines
	CrossoverRate int `yaml:"crossover_rate"` // Percent of the next population
	MutationRate  int `yaml:"mutation_rate"`
	SelectionRate int `yaml:"selection_rate"`
}

// DifficultyConfig selects the gravity ramp behaviour.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
	Ramp   bool             `yaml:"ramp"` // Speed up as lines are cleared
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables the gravity ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// GravityInterval returns the delay between falls after lines cleared rows.
func (c TetrisConfig) GravityInterval(lines int) time.Duration {
	g := c.Gravity
	ms := g.BaseMS
	if c.Difficulty.Ramp && g.LinesPerStep > 0 {
		ms -= (lines / g.LinesPerStep) * g.StepMS
	}
	ms = max(ms, g.MinMS)
	return time.Duration(ms) * time.Millisecond
}

// AutoplayInterval returns the delay between AI placements.
func (c TetrisConfig) AutoplayInterval() time.Duration {
	return time.Duration(c.Autoplay.IntervalMS) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c TetrisConfig) Validate() error {
	g := c.Gravity
	switch {
	case g.BaseMS <= 0:
		return fmt.Errorf("config: gravity.base_ms must be positive, got %d", g.BaseMS)
	case g.MinMS <= 0 || g.MinMS > g.BaseMS:
		return fmt.Errorf("config: gravity.min_ms must be in 1..%d, got %d", g.BaseMS, g.MinMS)
	case g.StepMS < 0:
		return fmt.Errorf("config: gravity.step_ms must not be negative, got %d", g.StepMS)
	case g.LinesPerStep <= 0:
		return fmt.Errorf("config: gravity.lines_per_step must be positive, got %d", g.LinesPerStep)
	}

	a := c.Autoplay
	if a.IntervalMS <= 0 {
		return fmt.Errorf("config: autoplay.interval_ms must be positive, got %d", a.IntervalMS)
	}
	if a.LineCap < 0 {
		return fmt.Errorf("config: autoplay.line_cap must not be negative, got %d", a.LineCap)
	}
	if _, err := ai.ParseGenome(a.Genome); err != nil {
		return fmt.Errorf("config: autoplay.genome: %w", err)
	}

	if err := c.Training.Validate(); err != nil {
		return err
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// Validate checks the optimizer settings. The three rates must add up to 100.
func (t TrainingConfig) Validate() error {
	switch {
	case t.Population < 2:
		return fmt.Errorf("config: training.population must be at least 2, got %d", t.Population)
	case t.Generations < 1:
		return fmt.Errorf("config: training.generations must be at least 1, got %d", t.Generations)
	case t.LineCap <= 0:
		return fmt.Errorf("config: training.line_cap must be positive, got %d", t.LineCap)
	case t.CrossoverRate < 0 || t.MutationRate < 0 || t.SelectionRate < 0:
		return fmt.Errorf("config: training rates must not be negative")
	}
	if sum := t.CrossoverRate + t.MutationRate + t.SelectionRate; sum != 100 {
		return fmt.Errorf("config: training rates must sum to 100, got %d", sum)
	}
	return nil
}
