package graph

import "math/rand"

// NewRand returns a *rand.Rand seeded deterministically, for tests and
// examples that need Variable hashes to be reproducible within a
// single process (hash equality across independent runs is not a
// package guarantee; build both sides of a comparison in the same
// process, per package invariant).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
