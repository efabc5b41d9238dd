// Package simd provides the elementwise and reduction kernels behind rvec
// arithmetic.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the kernel set. On any detected
// vector ISA the 4x unrolled kernels are installed; they keep independent
// lanes in flight so the Go compiler can schedule them across the wide
// execution units. Everything else uses the plain generic loops.
// Set RVEC_SIMD=generic to force the generic loops.
//
// # Operations
//
//   - Elementwise: Add, Sub, Mul, Div (vector and scalar forms)
//   - Reductions: Sum, Dot
//   - Floor semantics: FloorDivInt64, ModInt64, DivModFloat64
//   - Helpers: Binary, Scalar, ScalarLeft, IndexZero
//
// Kernels never allocate and never check lengths: callers pass slices of
// equal length with dst already sized.
package simd
