package core

import "math/rand/v2"

// Rand is the random source contract shared by the rule generator and mutator:
// a uniform draw in [0, n).
type Rand interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// Seed restarts the sequence from the given seed.
func (r *RNG) Seed(seed uint64) {
	r.r = rand.New(rand.NewPCG(seed, 0))
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
