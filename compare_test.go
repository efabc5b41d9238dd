package rvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	a := Of[int64](1, 2, 3)
	b := Of(1.0, 2.5, 2.0)

	tests := []struct {
		c    Comparison
		want []bool
	}{
		{CmpEqual, []bool{true, false, false}},
		{CmpNotEqual, []bool{false, true, true}},
		{CmpLess, []bool{false, true, false}},
		{CmpLessEqual, []bool{true, true, false}},
		{CmpGreater, []bool{false, false, true}},
		{CmpGreaterEqual, []bool{true, false, true}},
	}
	for _, tc := range tests {
		t.Run(tc.c.String(), func(t *testing.T) {
			out, err := a.Compare(tc.c, b)
			require.NoError(t, err)
			assert.Equal(t, Bool, out.Kind())
			got, _ := out.Bools()
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("Text", func(t *testing.T) {
		out, err := Of("apple", "pear").Compare(CmpLess, Of("banana", "fig"))
		require.NoError(t, err)
		got, _ := out.Bools()
		assert.Equal(t, []bool{true, false}, got)
	})

	t.Run("TextWithNumber", func(t *testing.T) {
		_, err := Of("a").Compare(CmpEqual, Of[int64](1))
		var uo *ErrUnsupportedOperator
		require.ErrorAs(t, err, &uo)
		assert.Equal(t, "eq", uo.Op)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := a.Compare(CmpEqual, Of[int64](1))
		var lm *ErrLengthMismatch
		assert.ErrorAs(t, err, &lm)
	})

	t.Run("NaN", func(t *testing.T) {
		n := Of(math.NaN())
		eq, err := n.Compare(CmpEqual, n)
		require.NoError(t, err)
		got, _ := eq.Bools()
		assert.Equal(t, []bool{false}, got)

		ne, err := n.Compare(CmpNotEqual, n)
		require.NoError(t, err)
		got, _ = ne.Bools()
		assert.Equal(t, []bool{true}, got)
	})
}

func TestCompareScalar(t *testing.T) {
	out, err := Of[int64](1, 5, 10).CompareScalar(CmpGreater, 4)
	require.NoError(t, err)
	got, _ := out.Bools()
	assert.Equal(t, []bool{false, true, true}, got)

	out, err = Of[int64](1, 2).CompareScalar(CmpLess, 1.5)
	require.NoError(t, err)
	got, _ = out.Bools()
	assert.Equal(t, []bool{true, false}, got)

	out, err = Of(true, false).CompareScalar(CmpEqual, 1)
	require.NoError(t, err)
	got, _ = out.Bools()
	assert.Equal(t, []bool{true, false}, got)

	out, err = Of("a", "b").CompareScalar(CmpEqual, "b")
	require.NoError(t, err)
	got, _ = out.Bools()
	assert.Equal(t, []bool{false, true}, got)

	_, err = Of("a").CompareScalar(CmpEqual, 1)
	var uo *ErrUnsupportedOperator
	assert.ErrorAs(t, err, &uo)
}
