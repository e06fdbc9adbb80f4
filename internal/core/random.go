package core

import "math/rand/v2"

// Random is the single source of randomness an animation draws from. Tests
// substitute scripted implementations.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Int64 returns a non-negative pseudo-random int64, used to derive child seeds.
func (r *RNG) Int64() int64 { return r.r.Int64() }

// RandomRange returns a uniform sample in [min, max).
func RandomRange(r Random, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// RandomRange32 is RandomRange for float32 attributes.
func RandomRange32(r Random, min, max float32) float32 {
	return min + float32(r.Float64())*(max-min)
}
