package core

import "math/rand/v2"

// Stream identifiers keep the random draws of each generation subsystem
// independent of one another while still deriving from a single world seed.
const (
	StreamIslets     uint64 = 101
	StreamPorts      uint64 = 202
	StreamEncounters uint64 = 303
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewStream(seed, 0)
}

// NewStream creates a deterministic RNG for one subsystem. PCG is portable and
// bit-reproducible, so the same seed and stream always yield the same draws.
func NewStream(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Range returns a value in [lo, hi). When hi <= lo it returns lo.
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + float64(r.r.Float64()*(hi-lo))
}

// Signed returns a value in [-1, 1).
func (r *RNG) Signed() float64 { return float64(r.r.Float64()*2) - 1 }

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}
