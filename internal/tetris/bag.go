package tetris

import (
	"math/rand/v2"
)

// Bag is the 7-bag randomizer: it hands out a shuffled permutation of all
// seven kinds and only reshuffles once the permutation is used up.
//
// The random source is held by value, so copying a Bag (as Game.Clone does)
// forks an independent generator with identical future output.
type Bag struct {
	src rand.PCG
	buf []Kind
}

// NewBag creates a bag seeded deterministically from seed.
func NewBag(seed int64) Bag {
	return Bag{src: *rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)}
}

// Next removes and returns the next kind, refilling the buffer when empty.
func (b *Bag) Next() Kind {
	if len(b.buf) == 0 {
		b.buf = b.permutation()
	}
	k := b.buf[0]
	b.buf = b.buf[1:]
	return k
}

// Remaining returns how many kinds are left before the next reshuffle.
func (b *Bag) Remaining() int {
	return len(b.buf)
}

// permutation returns a fresh shuffled set of all kinds.
func (b *Bag) permutation() []Kind {
	kinds := Kinds()
	rand.New(&b.src).Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	return kinds
}

// clone returns a copy whose buffer does not alias the original.
func (b Bag) clone() Bag {
	b.buf = append([]Kind(nil), b.buf...)
	return b
}
