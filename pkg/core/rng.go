package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRNG2 creates a deterministic RNG from a two-word seed, for deriving
// independent per-event streams from a world-level stream.
func NewRNG2(seed1, seed2 uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Uint32n returns a random uint32 in [0, n). n must be positive.
func (r *RNG) Uint32n(n uint32) uint32 {
	return r.r.Uint32N(n)
}

// Uint64 returns a random 64-bit value, typically used to seed child streams.
func (r *RNG) Uint64() uint64 {
	return r.r.Uint64()
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// OneIn reports true with probability 1/n. OneIn(1) is always true. It is the
// primitive behind single-pass reservoir selection: calling OneIn(k) for the
// k-th candidate seen leaves every candidate with equal final probability.
func (r *RNG) OneIn(n uint32) bool {
	if n <= 1 {
		return true
	}
	return r.r.Uint32N(n) == 0
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
