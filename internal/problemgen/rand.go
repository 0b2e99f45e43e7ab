package problemgen

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness source used by templates and template selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform integer in the half-open range [lo, hi).
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}

// inclusive returns a uniform integer in the closed range [lo, hi].
func inclusive(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// pick returns one of options uniformly.
func pick(r Rand, options ...int) int {
	return options[r.IntN(len(options))]
}
