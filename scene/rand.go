package scene

import "math/rand"

// Rand is the seeded random source threaded through every generator.
// All randomness in a render flows through a single Rand, so the same
// seed always produces a byte-identical image. It wraps math/rand with
// an explicit source; the global rand state is never touched.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a deterministic random source from a seed.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Uniform returns a uniform value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// Boolean returns true with the given probability. It always consumes
// exactly one value from the source, so draw order stays stable.
func (r *Rand) Boolean(p float64) bool {
	return r.src.Float64() < p
}

// IntN returns a uniform integer in [0, n).
func (r *Rand) IntN(n int) int {
	return r.src.Intn(n)
}

// Pick returns a uniformly chosen element of choices.
func Pick[T any](r *Rand, choices []T) T {
	return choices[r.IntN(len(choices))]
}
