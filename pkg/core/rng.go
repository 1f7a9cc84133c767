package core

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding. It
// satisfies automaton.Source.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Int64 returns a non-negative pseudo-random int64, handy for deriving seeds.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}
