package port

// Random is the pseudo-random source threaded through sorting and selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a value in [0, n).
	IntN(n int) int

	Shuffle(n int, swap func(i, j int))
}
