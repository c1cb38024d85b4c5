package core

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// KeepThreshold is the standard-normal cutoff a draw must exceed for a grid
// point to survive the filter. About 30.85% of draws pass.
const KeepThreshold = 0.5

// RNG is a thin convenience wrapper around math/rand/v2 seeded from text.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG for the provided seed string. The empty
// string is a valid seed.
func NewRNG(seed string) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(SeedValue(seed), 0))}
}

// SeedValue hashes a seed string into the 64-bit PCG state.
func SeedValue(seed string) uint64 {
	return xxhash.Sum64String(seed)
}

// Gaussian returns a normally distributed value with mean 0 and unit variance.
func (r *RNG) Gaussian() float64 {
	return r.r.NormFloat64()
}

// Keep consumes one Gaussian draw and reports whether it exceeds
// KeepThreshold.
func (r *RNG) Keep() bool {
	return r.Gaussian() > KeepThreshold
}

// Filter returns the points for which Keep succeeds, consuming exactly one
// draw per input point in order.
func Filter(r *RNG, points []Point) []Point {
	kept := make([]Point, 0, len(points)/3+1)
	for _, p := range points {
		if r.Keep() {
			kept = append(kept, p)
		}
	}
	return kept
}
