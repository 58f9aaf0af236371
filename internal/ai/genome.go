// Package ai picks placements for the falling piece by exhaustive search over
// hold, rotation and column, scoring every resulting board with a weighted
// sum of four features.
package ai

import (
	"fmt"
	"strconv"
	"strings"
)

// Gene indexes one weight of a Genome.
type Gene int

const (
	GeneLine Gene = iota
	GeneHeightMax
	GeneHeightDiff
	GeneDeadSpace

	geneCount
)

// GeneCount is the number of weights in a Genome.
const GeneCount = int(geneCount)

// Genome holds the feature weights, indexed by Gene.
type Genome [GeneCount]uint8

// DefaultGenome is a hand-tuned weight set that clears lines steadily.
var DefaultGenome = Genome{100, 1, 10, 100}

var geneNames = [GeneCount]string{"line", "height_max", "height_diff", "dead_space"}

// String returns the gene name.
func (g Gene) String() string {
	if g < 0 || g >= geneCount {
		return "unknown"
	}
	return geneNames[g]
}

// Weight returns the weight for gene.
func (g Genome) Weight(gene Gene) uint8 {
	return g[gene]
}

// String formats the genome as comma-separated weights, the form ParseGenome accepts.
func (g Genome) String() string {
	parts := make([]string, GeneCount)
	for i, w := range g {
		parts[i] = strconv.Itoa(int(w))
	}
	return strings.Join(parts, ",")
}

// ParseGenome reads four weights in 0..255 separated by commas or spaces.
// Surrounding brackets are allowed, so "[100, 1, 10, 100]" and "100,1,10,100"
// are both valid.
func ParseGenome(s string) (Genome, error) {
	var g Genome
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != GeneCount {
		return g, fmt.Errorf("ai: genome needs %d weights, got %d", GeneCount, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return g, fmt.Errorf("ai: invalid %s weight %q: %w", Gene(i), f, err)
		}
		g[i] = uint8(v)
	}
	return g, nil
}
