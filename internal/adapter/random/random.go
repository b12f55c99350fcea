package random

import (
	"math/rand/v2"
	"time"
)

// New returns the run's pseudo-random source. A negative seed seeds from the
// clock; any other seed gives a reproducible sequence.
func New(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Roll reports whether a percent chance succeeds, drawing one value in [0, 100).
func Roll(rng interface{ IntN(int) int }, percent int) bool {
	return rng.IntN(100) < percent
}
