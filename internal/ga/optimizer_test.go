package ga

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func smallTraining() config.TrainingConfig {
	cfg := config.DefaultTetrisConfig().Training
	cfg.Population = 6
	cfg.Generations = 3
	cfg.LineCap = 2
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallTraining()
	cfg.SelectionRate = 50
	if _, err := New(cfg, 1, nil); err == nil {
		t.Error("New accepted rates that do not sum to 100")
	}
}

func TestInitialPopulation(t *testing.T) {
	o, err := New(smallTraining(), 42, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pop := o.Population()
	if len(pop) != 6 {
		t.Fatalf("population = %d, want 6", len(pop))
	}
	for i, ind := range pop {
		if ind.Fitness != 0 {
			t.Errorf("slot %d starts with fitness %d", i, ind.Fitness)
		}
	}
}

func TestGroupSizesSumEveryGeneration(t *testing.T) {
	cfg := smallTraining()
	o, err := New(cfg, 7, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var results []GenerationResult
	if _, err := o.Run(context.Background(), func(r GenerationResult) {
		results = append(results, r)
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != cfg.Generations {
		t.Fatalf("got %d generations, want %d", len(results), cfg.Generations)
	}
	for _, r := range results {
		if r.Groups.Total() != cfg.Population {
			t.Errorf("generation %d groups %+v do not sum to %d", r.Generation, r.Groups, cfg.Population)
		}
		if len(r.Individuals) != cfg.Population {
			t.Errorf("generation %d reported %d individuals", r.Generation, len(r.Individuals))
		}
	}
	if o.Generation() != cfg.Generations {
		t.Errorf("Generation = %d, want %d", o.Generation(), cfg.Generations)
	}
	if n := len(o.Population()); n != cfg.Population {
		t.Errorf("final population = %d, want %d", n, cfg.Population)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() (Individual, []Individual) {
		o, err := New(smallTraining(), 99, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		best, err := o.Run(context.Background(), nil)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return best, o.Population()
	}

	best1, pop1 := run()
	best2, pop2 := run()
	if best1 != best2 {
		t.Errorf("best differs: %+v vs %+v", best1, best2)
	}
	for i := range pop1 {
		if pop1[i] != pop2[i] {
			t.Fatalf("slot %d differs: %+v vs %+v", i, pop1[i], pop2[i])
		}
	}
}

func TestRunReportsBest(t *testing.T) {
	o, err := New(smallTraining(), 11, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	top := -1
	best, err := o.Run(context.Background(), func(r GenerationResult) {
		for _, ind := range r.Individuals {
			top = max(top, ind.Fitness)
		}
		if r.Best.Fitness != fittest(r.Individuals).Fitness {
			t.Errorf("generation %d: Best is not the fittest", r.Generation)
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if best.Fitness != top {
		t.Errorf("best fitness = %d, want %d", best.Fitness, top)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	o, err := New(smallTraining(), 1, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := o.Evaluate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Evaluate = %v, want context.Canceled", err)
	}
	if _, err := o.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}
