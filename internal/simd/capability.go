package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA identifies the vector instruction set the kernels are tuned for.
type ISA uint8

const (
	// Generic is the portable kernel set.
	Generic ISA = iota
	// NEON is ARM64 Advanced SIMD (128-bit).
	NEON
	// SVE2 is ARM64 scalable vectors.
	SVE2
	// AVX2 is x86-64 AVX2 (256-bit).
	AVX2
	// AVX512 is x86-64 AVX-512 Foundation (512-bit).
	AVX512
)

var isaNames = [...]string{
	Generic: "generic",
	NEON:    "neon",
	SVE2:    "sve2",
	AVX2:    "avx2",
	AVX512:  "avx512",
}

// String returns the lower-case ISA name.
func (i ISA) String() string {
	if int(i) < len(isaNames) {
		return isaNames[i]
	}
	return "unknown"
}

// ParseISA parses an ISA name as accepted by RVEC_SIMD.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range isaNames {
		if name == s {
			return ISA(i), true
		}
	}
	return Generic, false
}

// Features lists the CPU capabilities relevant to kernel selection.
type Features struct {
	ASIMD  bool // ARM64 NEON
	SVE2   bool // ARM64 SVE2
	AVX2   bool // x86-64 AVX2
	AVX512 bool // x86-64 AVX-512F
}

// Set once by the platform init functions, read-only afterwards.
var (
	features    Features
	activeISA   ISA
	hasOverride bool
)

// initCapabilities picks the active ISA after the platform file filled in
// features. RVEC_SIMD may force a lower ISA; an unavailable one is ignored.
func initCapabilities() {
	if override := os.Getenv("RVEC_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok && available(isa) {
			hasOverride = true
			activeISA = isa
			return
		}
	}
	activeISA = best()
}

func available(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return features.ASIMD
	case SVE2:
		return features.SVE2
	case AVX2:
		return features.AVX2
	case AVX512:
		return features.AVX512
	default:
		return false
	}
}

func best() ISA {
	switch runtime.GOARCH {
	case "arm64":
		// Apple cores run NEON faster than their SVE2 support.
		if features.SVE2 && runtime.GOOS != "darwin" {
			return SVE2
		}
		if features.ASIMD {
			return NEON
		}
	case "amd64":
		if features.AVX512 {
			return AVX512
		}
		if features.AVX2 {
			return AVX2
		}
	}
	return Generic
}

// ActiveISA returns the ISA chosen at init.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether RVEC_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// CPUFeatures returns the detected CPU capabilities.
func CPUFeatures() Features {
	return features
}
