package core

import "math/rand/v2"

// Rand is the source of randomness used by grid generation. Implementations
// are only ever called from the single animation thread.
type Rand interface {
	// FloatIn returns a uniform float64 in [lo, hi).
	FloatIn(lo, hi float64) float64
	// IntIn returns a uniform int in [lo, hi] inclusive.
	IntIn(lo, hi int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FloatIn returns a uniform float64 in [lo, hi).
func (r *RNG) FloatIn(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// IntIn returns a uniform int in [lo, hi] inclusive.
func (r *RNG) IntIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}
