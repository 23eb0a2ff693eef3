package piece

import (
	"math/rand/v2"
	"time"
)

// Source draws a uniform integer in [0, n).
//
// *rand.Rand from math/rand/v2 satisfies it; tests pass a scripted source.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded with seed.
// A zero seed is replaced with the current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator mints pieces with strictly increasing ids starting at 0.
//
// Not safe for concurrent use.
type Generator struct {
	src  Source
	next int
}

// NewGenerator creates a Generator drawing kinds from src.
// A nil src gets a time-seeded source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource(0)
	}
	return &Generator{src: src}
}

// Next returns a new piece with a uniformly drawn kind and the next id.
func (g *Generator) Next() Piece {
	p := Piece{
		Kind: Kinds[g.src.IntN(len(Kinds))],
		ID:   g.next,
	}
	g.next++
	return p
}

// Issued returns how many pieces the generator has minted.
func (g *Generator) Issued() int {
	return g.next
}
