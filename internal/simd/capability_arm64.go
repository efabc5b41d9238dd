//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	features.ASIMD = cpu.ARM64.HasASIMD
	features.SVE2 = cpu.ARM64.HasSVE2
	initCapabilities()
}
