package rvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumProduct(t *testing.T) {
	tests := []struct {
		name      string
		in        *Vector
		sum, prod any
	}{
		{"int", Of[int64](1, 2, 3, 4), int64(10), int64(24)},
		{"float", Of(0.5, 2.0, 4.0), 6.5, 4.0},
		{"bool", Of(true, true, false), int64(2), int64(0)},
		{"empty int", Of[int64](), int64(0), int64(1)},
		{"empty float", Of[float64](), 0.0, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.in.Sum()
			require.NoError(t, err)
			assert.Equal(t, tc.sum, s)

			p, err := tc.in.Product()
			require.NoError(t, err)
			assert.Equal(t, tc.prod, p)
		})
	}

	_, err := Of("a").Sum()
	var uo *ErrUnsupportedOperator
	assert.ErrorAs(t, err, &uo)
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name           string
		in             *Vector
		min, max       any
		argMin, argMax int
	}{
		{"int", Of[int64](3, 1, 4, 1, 5, 5), int64(1), int64(5), 1, 4},
		{"float", Of(2.5, -1.0, 7.25), -1.0, 7.25, 1, 2},
		{"bool", Of(true, false, true), false, true, 1, 0},
		{"all true", Of(true, true), true, true, 0, 0},
		{"text", Of("pear", "apple", "zoo"), "apple", "zoo", 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, err := tc.in.Min()
			require.NoError(t, err)
			assert.Equal(t, tc.min, lo)

			hi, err := tc.in.Max()
			require.NoError(t, err)
			assert.Equal(t, tc.max, hi)

			i, err := tc.in.ArgMin()
			require.NoError(t, err)
			assert.Equal(t, tc.argMin, i)

			j, err := tc.in.ArgMax()
			require.NoError(t, err)
			assert.Equal(t, tc.argMax, j)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		empty := Of[int64]()
		_, err := empty.Min()
		assert.ErrorIs(t, err, ErrEmptyVector)
		_, err = empty.Max()
		assert.ErrorIs(t, err, ErrEmptyVector)
		_, err = empty.ArgMin()
		assert.ErrorIs(t, err, ErrEmptyVector)
		_, err = empty.ArgMax()
		assert.ErrorIs(t, err, ErrEmptyVector)
	})
}

func TestStatistics(t *testing.T) {
	v := Of[int64](2, 4, 4, 4, 5, 5, 7, 9)

	mean, err := v.Mean()
	require.NoError(t, err)
	assert.Equal(t, 5.0, mean)

	variance, err := v.Variance()
	require.NoError(t, err)
	assert.Equal(t, 4.0, variance)

	std, err := v.Std()
	require.NoError(t, err)
	assert.Equal(t, 2.0, std)

	median, err := v.Median()
	require.NoError(t, err)
	assert.Equal(t, 4.5, median)

	median, err = Of(3.0, 1.0, 2.0).Median()
	require.NoError(t, err)
	assert.Equal(t, 2.0, median)

	t.Run("MedianDoesNotReorder", func(t *testing.T) {
		f := Of(3.0, 1.0, 2.0)
		_, err := f.Median()
		require.NoError(t, err)
		got, _ := f.Float64s()
		assert.Equal(t, []float64{3, 1, 2}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		empty := Of[float64]()
		for name, fn := range map[string]func() (float64, error){
			"mean":     empty.Mean,
			"median":   empty.Median,
			"variance": empty.Variance,
			"std":      empty.Std,
		} {
			_, err := fn()
			assert.ErrorIs(t, err, ErrEmptyVector, name)
		}
	})

	t.Run("Text", func(t *testing.T) {
		_, err := Of("a").Mean()
		var uo *ErrUnsupportedOperator
		assert.ErrorAs(t, err, &uo)
	})
}

func TestNormDot(t *testing.T) {
	v := Of(3.0, 4.0)

	n, err := v.Norm()
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)

	n, err = Of[float64]().Norm()
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	unit, err := v.Normalize()
	require.NoError(t, err)
	got, _ := unit.Float64s()
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, got, 1e-12)

	_, err = Of(0.0, 0.0).Normalize()
	var dz *ErrDivisionByZero
	assert.ErrorAs(t, err, &dz)

	d, err := Of[int64](1, 2, 3).Dot(Of(4.0, 5.0, 6.0))
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	_, err = v.Dot(Of(1.0))
	var lm *ErrLengthMismatch
	assert.ErrorAs(t, err, &lm)

	_, err = v.Dot(Of("a", "b"))
	var uo *ErrUnsupportedOperator
	assert.ErrorAs(t, err, &uo)

	assert.False(t, math.IsNaN(d))
}
