package rvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOps(t *testing.T) {
	v := Of[int64](1, 2)

	require.NoError(t, v.Push(3))
	require.NoError(t, v.Insert(0, 0))
	require.NoError(t, v.Insert(-1, 9))
	assert.Equal(t, "[0, 1, 2, 9, 3]", v.String())

	x, err := v.Remove(3)
	require.NoError(t, err)
	assert.Equal(t, int64(9), x)

	x, err = v.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(3), x)
	assert.Equal(t, 3, v.Len())

	require.NoError(t, v.Extend(Of[int64](7, 8)))
	assert.Equal(t, "[0, 1, 2, 7, 8]", v.String())

	var tm *ErrTypeMismatch
	assert.ErrorAs(t, v.Push(1.5), &tm)
	assert.ErrorAs(t, v.Insert(0, "x"), &tm)

	var km *ErrKindMismatch
	assert.ErrorAs(t, v.Extend(Of(1.0)), &km)

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, Int64, v.Kind())

	_, err = v.Pop()
	var ie *ErrIndexOutOfRange
	assert.ErrorAs(t, err, &ie)

	_, err = v.Remove(0)
	assert.ErrorAs(t, err, &ie)
}

func TestReverseSort(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		v := Of[int64](3, 1, 2)
		v.Reverse()
		assert.Equal(t, "[2, 1, 3]", v.String())
		v.Sort()
		assert.Equal(t, "[1, 2, 3]", v.String())
		v.SortDescending()
		assert.Equal(t, "[3, 2, 1]", v.String())
	})

	t.Run("FloatNaNFirst", func(t *testing.T) {
		v := Of(2.0, math.NaN(), -1.0)
		v.Sort()
		got, _ := v.Float64s()
		assert.True(t, math.IsNaN(got[0]))
		assert.Equal(t, []float64{-1, 2}, got[1:])
	})

	t.Run("Bool", func(t *testing.T) {
		v := Of(true, false, true, false)
		v.Sort()
		assert.Equal(t, "[false, false, true, true]", v.String())
		v.SortDescending()
		assert.Equal(t, "[true, true, false, false]", v.String())
	})

	t.Run("Text", func(t *testing.T) {
		v := Of("b", "C", "a")
		v.Sort()
		assert.Equal(t, `["C", "a", "b"]`, v.String())
		v.Reverse()
		assert.Equal(t, `["b", "a", "C"]`, v.String())
	})
}
