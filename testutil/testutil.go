package testutil

import (
	"math/rand"
	"sync"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64s returns n values in [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	return r.Float64sRange(n, 0, 1)
}

// Float64sRange returns n values in [lo, hi).
func (r *RNG) Float64sRange(n int, lo, hi float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + r.rand.Float64()*(hi-lo)
	}
	return out
}

// Int64s returns n values in [lo, hi). hi must be greater than lo.
func (r *RNG) Int64s(n int, lo, hi int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, n)
	for i := range out {
		out[i] = lo + r.rand.Int63n(hi-lo)
	}
	return out
}

// NonZeroInt64s returns n values in [-limit, limit] excluding zero.
func (r *RNG) NonZeroInt64s(n int, limit int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, n)
	for i := range out {
		v := r.rand.Int63n(limit) + 1
		if r.rand.Intn(2) == 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}

// Bools returns n values that are true with probability p.
func (r *RNG) Bools(n int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < p
	}
	return out
}

// Strings returns n lowercase ASCII words of length [1, maxLen].
func (r *RNG) Strings(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	buf := make([]byte, maxLen)
	for i := range out {
		l := r.rand.Intn(maxLen) + 1
		for j := 0; j < l; j++ {
			buf[j] = letters[r.rand.Intn(len(letters))]
		}
		out[i] = string(buf[:l])
	}
	return out
}
