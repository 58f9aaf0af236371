// Package ga tunes ai.Genome weights with a genetic algorithm. Every
// generation plays one game per individual in parallel, then builds the next
// population from crossover, mutation and elitist selection.
package ga

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Individual is one candidate genome and the score its last game reached.
type Individual struct {
	Genome  ai.Genome
	Fitness int
}

// GenerationResult describes one finished generation.
type GenerationResult struct {
	Generation  int          // 1-based
	Individuals []Individual // evaluated population, in slot order
	Best        Individual   // fittest of this generation
	Groups      GroupSizes   // how the next population was built
	Elapsed     time.Duration
}

// Optimizer runs the generation loop. It is not safe for concurrent use;
// Evaluate is the only method that fans out internally.
type Optimizer struct {
	cfg        config.TrainingConfig
	rng        *rand.Rand
	pop        []Individual
	generation int
	logger     *log.Logger
}

// New creates an optimizer with a random initial population.
// A nil logger discards output.
func New(cfg config.TrainingConfig, seed int64, logger *log.Logger) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	o := &Optimizer{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		pop:    make([]Individual, cfg.Population),
		logger: logger,
	}
	for i := range o.pop {
		o.pop[i].Genome = randomGenome(o.rng)
	}
	return o, nil
}

// Population returns a copy of the current population.
func (o *Optimizer) Population() []Individual {
	return append([]Individual(nil), o.pop...)
}

// Generation returns how many generations have been reproduced.
func (o *Optimizer) Generation() int {
	return o.generation
}

// Evaluate plays one game per individual, each on its own goroutine, and
// waits for all of them. Game seeds are drawn before the fork, so results
// depend only on the optimizer seed. Each goroutine writes only its own slot.
func (o *Optimizer) Evaluate(ctx context.Context) error {
	seeds := make([]int64, len(o.pop))
	for i := range seeds {
		seeds[i] = o.rng.Int63()
	}

	var wg sync.WaitGroup
	for i := range o.pop {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ind := &o.pop[i]
			res, err := ai.Play(ctx, tetris.New(seeds[i]), ind.Genome, o.cfg.LineCap)
			ind.Fitness = res.Score
			if err != nil {
				return
			}
			o.logger.Info("individual evaluated",
				"generation", o.generation+1,
				"slot", i,
				"genome", ind.Genome.String(),
				"score", res.Score,
				"lines", res.Lines,
				"pieces", res.Pieces,
			)
		}(i)
	}
	wg.Wait()
	return ctx.Err()
}

// Reproduce replaces the population with the next generation and resets all
// fitness to zero.
func (o *Optimizer) Reproduce() GroupSizes {
	sizes := Sizes(len(o.pop), o.cfg)

	next := make([]ai.Genome, 0, len(o.pop))
	next = append(next, crossover(o.rng, o.pop, sizes.Crossover)...)
	next = append(next, mutate(o.rng, o.pop, sizes.Mutation)...)
	next = append(next, selectTop(o.pop, sizes.Selection)...)
	shuffle(o.rng, next)

	for i := range o.pop {
		o.pop[i] = Individual{Genome: next[i]}
	}
	o.generation++
	return sizes
}

// Run evaluates and reproduces for the configured number of generations and
// returns the fittest individual seen. onGeneration, if set, is called after
// every generation from the calling goroutine.
func (o *Optimizer) Run(ctx context.Context, onGeneration func(GenerationResult)) (Individual, error) {
	var best Individual
	found := false

	for gen := 1; gen <= o.cfg.Generations; gen++ {
		start := time.Now()
		if err := o.Evaluate(ctx); err != nil {
			return best, err
		}

		evaluated := o.Population()
		genBest := fittest(evaluated)
		if !found || genBest.Fitness > best.Fitness {
			best, found = genBest, true
		}

		groups := o.Reproduce()
		res := GenerationResult{
			Generation:  gen,
			Individuals: evaluated,
			Best:        genBest,
			Groups:      groups,
			Elapsed:     time.Since(start),
		}
		o.logger.Info("generation done",
			"generation", gen,
			"best", genBest.Genome.String(),
			"score", genBest.Fitness,
			"elapsed", res.Elapsed.Round(time.Millisecond),
		)
		if onGeneration != nil {
			onGeneration(res)
		}
	}
	return best, nil
}

// fittest returns the highest-scoring individual, earliest slot on ties.
func fittest(pop []Individual) Individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}
