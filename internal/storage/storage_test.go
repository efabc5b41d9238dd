package storage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind    Kind
		name    string
		zero    any
		numeric bool
	}{
		{KindInt64, "int64", int64(0), true},
		{KindFloat64, "float64", float64(0), true},
		{KindBool, "bool", false, true},
		{KindText, "text", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.kind.String())
			assert.Equal(t, tc.zero, tc.kind.Zero())
			assert.Equal(t, tc.numeric, tc.kind.IsNumeric())
			assert.True(t, tc.kind.Valid())

			parsed, ok := ParseKind(tc.name)
			assert.True(t, ok)
			assert.Equal(t, tc.kind, parsed)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, "Kind(9)", Kind(9).String())
		assert.False(t, Kind(9).Valid())
		assert.Nil(t, Kind(9).Zero())
		_, ok := ParseKind("complex")
		assert.False(t, ok)
	})

	t.Run("aliases", func(t *testing.T) {
		for alias, want := range map[string]Kind{"INT": KindInt64, " float ": KindFloat64, "str": KindText, "String": KindText} {
			got, ok := ParseKind(alias)
			assert.True(t, ok, alias)
			assert.Equal(t, want, got, alias)
		}
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
		want any
		ok   bool
	}{
		{"int", 3, KindInt64, int64(3), true},
		{"int8", int8(-3), KindInt64, int64(-3), true},
		{"int32", int32(7), KindInt64, int64(7), true},
		{"uint16", uint16(9), KindInt64, int64(9), true},
		{"uint64 fits", uint64(10), KindInt64, int64(10), true},
		{"uint64 overflow", uint64(math.MaxUint64), 0, nil, false},
		{"float32", float32(1.5), KindFloat64, 1.5, true},
		{"float64", 2.25, KindFloat64, 2.25, true},
		{"bool", true, KindBool, true, true},
		{"string", "a", KindText, "a", true},
		{"nil", nil, 0, nil, false},
		{"slice", []int{1}, 0, nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, v, ok := Normalize(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.kind, k)
				assert.Equal(t, tc.want, v)
			}
		})
	}
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, n    int
		wantStart, wantTo int
	}{
		{"full", 0, 3, 3, 0, 3},
		{"stop beyond", 1, 10, 3, 1, 3},
		{"negative start", -2, 3, 3, 1, 3},
		{"far negative", -10, 2, 3, 0, 2},
		{"inverted", 2, 1, 3, 2, 2},
		{"start beyond", 5, 9, 3, 3, 3},
		{"empty", 0, 0, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, e := ClampRange(tc.start, tc.stop, tc.n)
			assert.Equal(t, tc.wantStart, s)
			assert.Equal(t, tc.wantTo, e)
		})
	}
}

func TestBufferPushGetSet(t *testing.T) {
	s, err := New(KindInt64, 0)
	require.NoError(t, err)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(int64(2)))
	require.NoError(t, s.Push(uint8(3)))
	assert.Equal(t, 3, s.Len())

	err = s.Push(1.5)
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 3, te.Index)
	assert.Equal(t, "float64", te.Got)
	assert.Equal(t, KindInt64, te.Expected)
	assert.Equal(t, 3, s.Len(), "failed push must not grow the buffer")

	v, err := s.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = s.Get(3)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, re.Index)
	assert.Equal(t, 3, re.Length)

	_, err = s.Get(-4)
	assert.ErrorAs(t, err, &re)

	require.NoError(t, s.Set(-3, 10))
	v, _ = s.Get(0)
	assert.Equal(t, int64(10), v)

	assert.ErrorAs(t, s.Set(0, "x"), &te)
	assert.ErrorAs(t, s.Set(7, 1), &re)

	assert.Equal(t, []any{int64(10), int64(2), int64(3)}, s.Values())
}

func TestBufferNoSilentWidening(t *testing.T) {
	s, err := New(KindFloat64, 0)
	require.NoError(t, err)

	var te *TypeError
	assert.ErrorAs(t, s.Push(1), &te)
	assert.NoError(t, s.Push(float32(1)))
}

func TestBufferSliceIsCopy(t *testing.T) {
	b := Copy([]string{"a", "b", "c", "d"})

	s := b.Slice(1, 3)
	assert.Equal(t, []any{"b", "c"}, s.Values())

	require.NoError(t, s.Set(0, "z"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, b.Raw())

	assert.Equal(t, 0, b.Slice(3, 1).Len())
	assert.Equal(t, KindText, b.Slice(3, 1).Kind())
	assert.Equal(t, []any{"c", "d"}, b.Slice(-2, 100).Values())
}

func TestBufferInsertRemove(t *testing.T) {
	b := Copy([]float64{1, 2, 3})

	require.NoError(t, b.Insert(0, 0.5))
	require.NoError(t, b.Insert(100, 4.0))
	require.NoError(t, b.Insert(-1, 3.5))
	assert.Equal(t, []float64{0.5, 1, 2, 3, 3.5, 4}, b.Raw())

	v, err := b.Remove(-1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = b.Remove(10)
	var re *RangeError
	assert.ErrorAs(t, err, &re)

	b.Truncate()
	assert.Equal(t, 0, b.Len())
}

func TestBufferAppend(t *testing.T) {
	a := Copy([]bool{true})
	require.NoError(t, a.Append(Copy([]bool{false, true})))
	assert.Equal(t, []bool{true, false, true}, a.Raw())

	err := a.Append(Copy([]int64{1}))
	var ke *KindError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, KindBool, ke.Left)
	assert.Equal(t, KindInt64, ke.Right)
}

func TestZeros(t *testing.T) {
	for _, k := range []Kind{KindInt64, KindFloat64, KindBool, KindText} {
		t.Run(k.String(), func(t *testing.T) {
			s, err := Zeros(k, 4)
			require.NoError(t, err)
			assert.Equal(t, k, s.Kind())
			assert.Equal(t, 4, s.Len())
			for _, v := range s.Values() {
				assert.Equal(t, k.Zero(), v)
			}
		})
	}

	_, err := Zeros(KindInt64, -1)
	assert.Error(t, err)
	_, err = Zeros(Kind(42), 1)
	assert.Error(t, err)
}

func TestFromValues(t *testing.T) {
	s, err := FromValues(KindText, []any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, s.Values())

	_, err = FromValues(KindText, []any{"x", 1, "z"})
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Index)
	assert.Equal(t, "int64", te.Got)
}

func TestClone(t *testing.T) {
	b := Copy([]int64{1, 2})
	c := b.Clone()
	require.NoError(t, c.Set(0, 9))
	assert.Equal(t, []int64{1, 2}, b.Raw())

	typed, ok := As[int64](c)
	require.True(t, ok)
	assert.Equal(t, []int64{9, 2}, typed.Raw())

	_, ok = As[float64](c)
	assert.False(t, ok)
}
