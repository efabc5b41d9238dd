//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	features.AVX2 = cpu.X86.HasAVX2
	features.AVX512 = cpu.X86.HasAVX512F
	initCapabilities()
}
