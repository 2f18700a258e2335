// Package random provides a seedable ports.RandomSource.
package random

import (
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen/go-appstore/internal/ports"
)

// Source draws integers from a PCG generator. It is not safe for concurrent use.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

var _ ports.RandomSource = (*Source)(nil)

// New creates a source. The same non-zero seed always yields the same
// sequence; seed 0 seeds from the clock.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the effective seed, useful for reproducing a run.
func (s *Source) Seed() uint64 {
	return s.seed
}

// IntN returns a value in [0, n), or 0 when n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}

	return s.rng.IntN(n)
}
