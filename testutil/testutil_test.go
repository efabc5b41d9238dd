package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64sRange(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Float64sRange(64, -1, 1)

	assert.Len(t, v, 64)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}
}

func TestInt64s(t *testing.T) {
	rng := NewRNG(4711)

	for _, x := range rng.Int64s(256, -3, 3) {
		assert.GreaterOrEqual(t, x, int64(-3))
		assert.Less(t, x, int64(3))
	}
}

func TestNonZeroInt64s(t *testing.T) {
	rng := NewRNG(4711)

	for _, x := range rng.NonZeroInt64s(512, 2) {
		assert.NotZero(t, x)
		assert.LessOrEqual(t, x, int64(2))
		assert.GreaterOrEqual(t, x, int64(-2))
	}
}

func TestStrings(t *testing.T) {
	rng := NewRNG(4711)

	for _, s := range rng.Strings(32, 5) {
		assert.NotEmpty(t, s)
		assert.LessOrEqual(t, len(s), 5)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)
	first := rng.Bools(16, 0.5)
	rng.Reset()
	assert.Equal(t, first, rng.Bools(16, 0.5))
	assert.Equal(t, int64(7), rng.Seed())
}
