package book

import "math/rand"

// Rand is the randomness source used by Random and RecommendGenre.
// Injecting it keeps the random pick deterministic under test.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRand picks through the process-global source, which is safe for
// concurrent use.
var DefaultRand Rand = globalRand{}
