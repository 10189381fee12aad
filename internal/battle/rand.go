package battle

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source every stochastic decision draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a reproducible PCG-backed source for the given seed
func NewRand(seed uint64) *rand.Rand {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewPCG(seed, seed^pcgStreamSalt))
}

// NewTimeSeededRand returns a source seeded from the wall clock
func NewTimeSeededRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// chance reports true with probability p (0..1)
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// percent reports true with probability pct/100, matching accuracy semantics
func percent(rng Rand, pct int) bool {
	return rng.Float64()*100 < float64(pct)
}

// intBetween draws a uniform integer in [lo, hi]
func intBetween(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
