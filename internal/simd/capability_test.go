package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" AVX2 ", AVX2, true},
		{"avx512", AVX512, true},
		{"neon", NEON, true},
		{"sve2", SVE2, true},
		{"mmx", Generic, false},
		{"", Generic, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseISA(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestISAString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "avx512", AVX512.String())
	assert.Equal(t, "unknown", ISA(99).String())
}

func TestActiveISAIsAvailable(t *testing.T) {
	assert.True(t, available(ActiveISA()))
	assert.True(t, available(Generic))
	assert.False(t, available(ISA(99)))
}

func TestKernelSetMatchesISA(t *testing.T) {
	if ActiveISA() == Generic {
		assert.Equal(t, "generic", KernelSet())
	} else {
		assert.Equal(t, "unrolled", KernelSet())
	}
}
