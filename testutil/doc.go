// Package testutil provides testing utilities for rvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that fills typed slices
// suitable for building vectors.
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Float64s(1024)          // uniform [0, 1)
//	ys := rng.Int64s(1024, -100, 100) // uniform [-100, 100)
//	zs := rng.NonZeroInt64s(1024, 50) // divisors without zeros
package testutil
