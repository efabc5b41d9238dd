//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	// int is 64-bit on the platforms this file builds for.
	assert.NoError(t, err)
	assert.Equal(t, int(math.MaxUint32), got)
}

func TestFloat64ToInt64(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int64
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"truncates positive", 2.9, 2, false},
		{"truncates negative", -2.9, -2, false},
		{"min int64", -9223372036854775808.0, math.MinInt64, false},
		{"two pow 63", 9223372036854775808.0, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
		{"neg inf", math.Inf(-1), 0, true},
		{"too small", -1e19, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Float64ToInt64(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
