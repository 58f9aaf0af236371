package ga

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/ai"
	"github.com/vovakirdan/tui-tetris/internal/config"
)

// GroupSizes is how many members of the next population each operator
// contributes. The three always add up to the population size.
type GroupSizes struct {
	Crossover int
	Mutation  int
	Selection int
}

// Total returns the size of the population the groups build.
func (s GroupSizes) Total() int {
	return s.Crossover + s.Mutation + s.Selection
}

// Sizes splits a population of n by the configured rates. Crossover and
// mutation round down; selection takes the remainder.
func Sizes(n int, cfg config.TrainingConfig) GroupSizes {
	cross := n * cfg.CrossoverRate / 100
	mut := n * cfg.MutationRate / 100
	return GroupSizes{
		Crossover: cross,
		Mutation:  mut,
		Selection: n - cross - mut,
	}
}

// randomGenome draws every weight uniformly from 0..255.
func randomGenome(rng *rand.Rand) ai.Genome {
	var g ai.Genome
	for i := range g {
		g[i] = uint8(rng.Intn(256))
	}
	return g
}

func genomes(pop []Individual) []ai.Genome {
	out := make([]ai.Genome, len(pop))
	for i, ind := range pop {
		out[i] = ind.Genome
	}
	return out
}

func shuffle(rng *rand.Rand, gs []ai.Genome) {
	rng.Shuffle(len(gs), func(i, j int) {
		gs[i], gs[j] = gs[j], gs[i]
	})
}

// crossover pairs neighbours (0,1), (2,3), ... and swaps a random inclusive
// gene range within each pair. An odd member out is passed through. The
// children are shuffled and the first count returned.
func crossover(rng *rand.Rand, pop []Individual, count int) []ai.Genome {
	gs := genomes(pop)
	for i := 0; i+1 < len(gs); i += 2 {
		lo := rng.Intn(ai.GeneCount)
		hi := lo + rng.Intn(ai.GeneCount-lo)
		swapRange(&gs[i], &gs[i+1], lo, hi)
	}
	shuffle(rng, gs)
	return gs[:count]
}

// swapRange exchanges genes lo through hi inclusive between a and b.
func swapRange(a, b *ai.Genome, lo, hi int) {
	for i := lo; i <= hi; i++ {
		a[i], b[i] = b[i], a[i]
	}
}

// mutate shuffles the population and overwrites one random gene in each of
// the first count genomes.
func mutate(rng *rand.Rand, pop []Individual, count int) []ai.Genome {
	gs := genomes(pop)
	shuffle(rng, gs)
	for i := 0; i < count; i++ {
		gs[i][rng.Intn(ai.GeneCount)] = uint8(rng.Intn(256))
	}
	return gs[:count]
}

// selectTop returns the count fittest genomes. Equal fitness keeps
// population order.
func selectTop(pop []Individual, count int) []ai.Genome {
	sorted := append([]Individual(nil), pop...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})
	return genomes(sorted[:count])
}
