package simd

import (
	"math/rand"
	"testing"
)

func randomFloats(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

func BenchmarkAddF64(b *testing.B) {
	const size = 1000000
	va := randomFloats(size)
	vb := randomFloats(size)
	dst := make([]float64, size)

	b.ResetTimer()
	for b.Loop() {
		AddF64(dst, va, vb)
	}
}

func BenchmarkAddF64Generic(b *testing.B) {
	const size = 1000000
	va := randomFloats(size)
	vb := randomFloats(size)
	dst := make([]float64, size)

	b.ResetTimer()
	for b.Loop() {
		addGeneric(dst, va, vb)
	}
}

func BenchmarkDivScalarF64(b *testing.B) {
	const size = 1000000
	va := randomFloats(size)
	dst := make([]float64, size)

	b.ResetTimer()
	for b.Loop() {
		DivScalarF64(dst, va, 3)
	}
}

func BenchmarkSumF64(b *testing.B) {
	va := randomFloats(1000000)

	b.ResetTimer()
	for b.Loop() {
		_ = SumF64(va)
	}
}

func BenchmarkFloorDivInt64(b *testing.B) {
	const size = 1000000
	a := make([]int64, size)
	d := make([]int64, size)
	for i := range a {
		a[i] = int64(i) - size/2
		d[i] = int64(i%13) + 1
	}
	dst := make([]int64, size)

	b.ResetTimer()
	for b.Loop() {
		Binary(dst, a, d, FloorDivInt64)
	}
}
