/*
Package rng provides a small seedable pseudo-random source backing maze
generation and goal placement.

The generator is a splitmix-style counter mixer: a 64-bit state advanced by a
fixed odd increment per draw, with the output decorrelated from the counter by
xor-shift and multiply stages. Two sources built from the same seed produce
identical streams for identical call sequences, which is what makes seeded
game sessions reproducible.
*/
package rng

import "time"

// Mixing constants from the splitmix64 reference generator.
const (
	increment = 0x9E3779B97F4A7C15
	mixOne    = 0xBF58476D1CE4E5B9
	mixTwo    = 0x94D049BB133111EB
)

// Rand is a deterministic pseudo-random source. It is not safe for
// concurrent use; every consumer in this module draws from its own instance.
type Rand struct {
	state uint64
}

// New returns a source seeded with the given value. Equal seeds yield equal
// output streams.
func New(seed int64) *Rand {
	return &Rand{state: uint64(seed)}
}

// NewFromTime returns a source seeded from the wall clock, for fresh sessions
// where reproducibility across runs is not wanted.
func NewFromTime() *Rand {
	return New(time.Now().UnixNano())
}

// Uint64 advances the state and returns the next value of the stream.
func (r *Rand) Uint64() uint64 {
	r.state += increment
	z := r.state
	z = (z ^ (z >> 30)) * mixOne
	z = (z ^ (z >> 27)) * mixTwo
	return z ^ (z >> 31)
}

// Intn returns a uniform value in [0, n). It panics if n <= 0, matching the
// contract of math/rand.Intn.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(r.Uint64() % uint64(n))
}
