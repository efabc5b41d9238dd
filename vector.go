package rvec

import (
	"slices"

	"github.com/cluffa/rvec/internal/storage"
)

// Vector is an ordered sequence of elements that all share one Kind. The
// kind is fixed at construction.
//
// Operations that produce a result return a new Vector and leave their
// operands untouched. Methods documented as "in place" mutate the receiver.
// A Vector is not safe for concurrent mutation.
type Vector struct {
	data storage.Storage
}

func wrap(s storage.Storage) *Vector {
	return &Vector{data: s}
}

func wrapSlice[T Element](data []T) *Vector {
	return &Vector{data: storage.Wrap(data)}
}

// New builds a vector from values. The first element decides the kind and
// every element must match it.
//
// An empty input has no element to infer the kind from and fails with
// ErrEmptyInput; use NewOf or Zeros for empty vectors.
func New(values []any) (*Vector, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	k, _, ok := storage.Normalize(values[0])
	if !ok {
		return nil, &ErrTypeMismatch{Index: 0, Got: storage.TypeName(values[0]), unsupported: true}
	}
	return NewOf(k, values)
}

// NewOf builds a vector of kind k from values.
func NewOf(k Kind, values []any) (*Vector, error) {
	s, err := storage.FromValues(k, values)
	if err != nil {
		return nil, translateError(err)
	}
	return wrap(s), nil
}

// Of builds a vector from typed values. The values are copied.
func Of[T Element](values ...T) *Vector {
	return wrap(storage.Copy(values))
}

// FromInt64s builds an Int64 vector holding a copy of xs.
func FromInt64s(xs []int64) *Vector { return Of(xs...) }

// FromFloat64s builds a Float64 vector holding a copy of xs.
func FromFloat64s(xs []float64) *Vector { return Of(xs...) }

// FromBools builds a Bool vector holding a copy of xs.
func FromBools(xs []bool) *Vector { return Of(xs...) }

// FromStrings builds a Text vector holding a copy of xs.
func FromStrings(xs []string) *Vector { return Of(xs...) }

// Zeros returns a vector of n additive identities of kind k
// (0, 0.0, false or "").
func Zeros(k Kind, n int) (*Vector, error) {
	if n < 0 {
		return nil, &ErrInvalidLength{Length: n}
	}
	s, err := storage.Zeros(k, n)
	if err != nil {
		return nil, err
	}
	return wrap(s), nil
}

// Kind returns the element kind.
func (v *Vector) Kind() Kind { return v.data.Kind() }

// Len returns the number of elements.
func (v *Vector) Len() int { return v.data.Len() }

// Get returns element i. Negative indices count from the end.
func (v *Vector) Get(i int) (any, error) {
	x, err := v.data.Get(i)
	return x, translateError(err)
}

// Set replaces element i in place. Negative indices count from the end and
// x must match the vector's kind.
func (v *Vector) Set(i int, x any) error {
	return translateError(v.data.Set(i, x))
}

// Slice returns a copy of the half-open range [start, stop). Negative bounds
// count from the end and both bounds are clamped, so Slice never fails.
func (v *Vector) Slice(start, stop int) *Vector {
	return wrap(v.data.Slice(start, stop))
}

// SliceStep returns a copy of every step-th element between start and stop.
// A negative step walks backwards from start; bounds follow the same
// clamping rules as Python's extended slices.
func (v *Vector) SliceStep(start, stop, step int) (*Vector, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	if step == 1 {
		return v.Slice(start, stop), nil
	}
	return gatherVector(v, stepIndices(start, stop, step, v.Len())), nil
}

func stepIndices(start, stop, step, n int) []int {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	bound := func(i int) int {
		if i < 0 {
			i += n
			if i < lower {
				return lower
			}
			return i
		}
		if i > upper {
			return upper
		}
		return i
	}
	start, stop = bound(start), bound(stop)

	var idx []int
	if step > 0 {
		for i := start; i < stop; i += step {
			idx = append(idx, i)
		}
	} else {
		for i := start; i > stop; i += step {
			idx = append(idx, i)
		}
	}
	return idx
}

// gatherVector copies the elements at idx into a new vector. Every index
// must already be in range.
func gatherVector(v *Vector, idx []int) *Vector {
	switch v.Kind() {
	case Int64:
		return wrapSlice(gather(raw[int64](v), idx))
	case Float64:
		return wrapSlice(gather(raw[float64](v), idx))
	case Bool:
		return wrapSlice(gather(raw[bool](v), idx))
	default:
		return wrapSlice(gather(raw[string](v), idx))
	}
}

func gather[T Element](src []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}

// Concat returns a new vector holding v followed by other. Both must share
// the same kind.
func (v *Vector) Concat(other *Vector) (*Vector, error) {
	out := v.data.Clone()
	if err := out.Append(other.data); err != nil {
		return nil, translateError(err)
	}
	return wrap(out), nil
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return wrap(v.data.Clone())
}

// ToSlice returns the elements as canonical Go values (int64, float64, bool
// or string).
func (v *Vector) ToSlice() []any {
	return v.data.Values()
}

// Int64s returns a copy of the elements of an Int64 vector.
func (v *Vector) Int64s() ([]int64, error) { return typedCopy[int64](v) }

// Float64s returns a copy of the elements of a Float64 vector.
func (v *Vector) Float64s() ([]float64, error) { return typedCopy[float64](v) }

// Bools returns a copy of the elements of a Bool vector.
func (v *Vector) Bools() ([]bool, error) { return typedCopy[bool](v) }

// Strings returns a copy of the elements of a Text vector.
func (v *Vector) Strings() ([]string, error) { return typedCopy[string](v) }

func typedCopy[T Element](v *Vector) ([]T, error) {
	b, ok := storage.As[T](v.data)
	if !ok {
		return nil, &ErrTypeMismatch{Index: -1, Got: v.Kind().String(), Expected: storage.KindOf[T]()}
	}
	return slices.Clone(b.Raw()), nil
}

// Equal reports whether v and other have the same kind, the same length and
// equal elements. NaN never equals NaN.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || v.Kind() != other.Kind() {
		return false
	}
	switch b := v.data.(type) {
	case *storage.Buffer[int64]:
		return slices.Equal(b.Raw(), raw[int64](other))
	case *storage.Buffer[float64]:
		return slices.Equal(b.Raw(), raw[float64](other))
	case *storage.Buffer[bool]:
		return slices.Equal(b.Raw(), raw[bool](other))
	default:
		return slices.Equal(raw[string](v), raw[string](other))
	}
}

// raw returns the backing slice of v, or nil when v does not hold T.
func raw[T Element](v *Vector) []T {
	b, ok := storage.As[T](v.data)
	if !ok {
		return nil
	}
	return b.Raw()
}
