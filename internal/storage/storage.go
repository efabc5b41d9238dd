package storage

import (
	"fmt"
	"slices"
)

// Storage is a contiguous buffer of a single Kind.
type Storage interface {
	// Kind returns the element kind. It never changes.
	Kind() Kind

	// Len returns the number of stored elements.
	Len() int

	// Push appends v. It returns a *TypeError if v does not match Kind.
	Push(v any) error

	// Get returns element i. Negative indices count from the end.
	Get(i int) (any, error)

	// Set replaces element i in place.
	Set(i int, v any) error

	// Insert places v before index i. i is clamped into [0, Len].
	Insert(i int, v any) error

	// Remove deletes element i and returns it.
	Remove(i int) (any, error)

	// Truncate drops every element and keeps the capacity.
	Truncate()

	// Slice returns a deep copy of the clamped half-open range [start, stop).
	Slice(start, stop int) Storage

	// Append copies every element of other onto the end of the receiver.
	// Both storages must share the same kind.
	Append(other Storage) error

	// Values returns the elements as canonical Go values.
	Values() []any

	// Clone returns a deep copy.
	Clone() Storage
}

// Buffer is the Storage implementation for element type T.
type Buffer[T Element] struct {
	data []T
}

var (
	_ Storage = (*Buffer[int64])(nil)
	_ Storage = (*Buffer[float64])(nil)
	_ Storage = (*Buffer[bool])(nil)
	_ Storage = (*Buffer[string])(nil)
)

// NewBuffer creates an empty buffer with the given capacity.
func NewBuffer[T Element](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{data: make([]T, 0, capacity)}
}

// Wrap adopts data without copying. The caller must not retain data.
func Wrap[T Element](data []T) *Buffer[T] {
	if data == nil {
		data = []T{}
	}
	return &Buffer[T]{data: data}
}

// Copy creates a buffer holding a copy of data.
func Copy[T Element](data []T) *Buffer[T] {
	return Wrap(slices.Clone(data))
}

// New creates an empty storage of kind k.
func New(k Kind, capacity int) (Storage, error) {
	switch k {
	case KindInt64:
		return NewBuffer[int64](capacity), nil
	case KindFloat64:
		return NewBuffer[float64](capacity), nil
	case KindBool:
		return NewBuffer[bool](capacity), nil
	case KindText:
		return NewBuffer[string](capacity), nil
	default:
		return nil, fmt.Errorf("storage: unknown kind %s", k)
	}
}

// Zeros creates a storage of kind k holding n additive identities.
func Zeros(k Kind, n int) (Storage, error) {
	if n < 0 {
		return nil, fmt.Errorf("storage: negative length %d", n)
	}
	switch k {
	case KindInt64:
		return Wrap(make([]int64, n)), nil
	case KindFloat64:
		return Wrap(make([]float64, n)), nil
	case KindBool:
		return Wrap(make([]bool, n)), nil
	case KindText:
		return Wrap(make([]string, n)), nil
	default:
		return nil, fmt.Errorf("storage: unknown kind %s", k)
	}
}

// As returns the typed buffer behind s when it stores T.
func As[T Element](s Storage) (*Buffer[T], bool) {
	b, ok := s.(*Buffer[T])
	return b, ok
}

// Raw exposes the backing slice. Kernels read and write it directly; the
// slice is owned by the buffer.
func (b *Buffer[T]) Raw() []T {
	return b.data
}

// Kind implements Storage.
func (b *Buffer[T]) Kind() Kind {
	return KindOf[T]()
}

// Len implements Storage.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

func (b *Buffer[T]) convert(index int, v any) (T, error) {
	var zero T
	_, canonical, ok := Normalize(v)
	if ok {
		if x, ok := canonical.(T); ok {
			return x, nil
		}
	}
	return zero, &TypeError{Index: index, Got: TypeName(v), Expected: b.Kind()}
}

// Push implements Storage.
func (b *Buffer[T]) Push(v any) error {
	x, err := b.convert(len(b.data), v)
	if err != nil {
		return err
	}
	b.data = append(b.data, x)
	return nil
}

// PushValue appends a value that is already of type T.
func (b *Buffer[T]) PushValue(v T) {
	b.data = append(b.data, v)
}

// Get implements Storage.
func (b *Buffer[T]) Get(i int) (any, error) {
	j, ok := NormalizeIndex(i, len(b.data))
	if !ok {
		return nil, &RangeError{Index: i, Length: len(b.data)}
	}
	return b.data[j], nil
}

// Set implements Storage.
func (b *Buffer[T]) Set(i int, v any) error {
	j, ok := NormalizeIndex(i, len(b.data))
	if !ok {
		return &RangeError{Index: i, Length: len(b.data)}
	}
	x, err := b.convert(j, v)
	if err != nil {
		return err
	}
	b.data[j] = x
	return nil
}

// Insert implements Storage.
func (b *Buffer[T]) Insert(i int, v any) error {
	j := clampBound(i, len(b.data))
	x, err := b.convert(j, v)
	if err != nil {
		return err
	}
	b.data = slices.Insert(b.data, j, x)
	return nil
}

// Remove implements Storage.
func (b *Buffer[T]) Remove(i int) (any, error) {
	j, ok := NormalizeIndex(i, len(b.data))
	if !ok {
		return nil, &RangeError{Index: i, Length: len(b.data)}
	}
	v := b.data[j]
	b.data = slices.Delete(b.data, j, j+1)
	return v, nil
}

// Truncate implements Storage.
func (b *Buffer[T]) Truncate() {
	clear(b.data)
	b.data = b.data[:0]
}

// Slice implements Storage.
func (b *Buffer[T]) Slice(start, stop int) Storage {
	start, stop = ClampRange(start, stop, len(b.data))
	return Copy(b.data[start:stop])
}

// Append implements Storage.
func (b *Buffer[T]) Append(other Storage) error {
	o, ok := other.(*Buffer[T])
	if !ok {
		return &KindError{Left: b.Kind(), Right: other.Kind()}
	}
	b.data = append(b.data, o.data...)
	return nil
}

// Values implements Storage.
func (b *Buffer[T]) Values() []any {
	out := make([]any, len(b.data))
	for i, v := range b.data {
		out[i] = v
	}
	return out
}

// Clone implements Storage.
func (b *Buffer[T]) Clone() Storage {
	return Copy(b.data)
}

// FromValues creates a storage of kind k and pushes every value in order.
// The first value that does not match k aborts construction.
func FromValues(k Kind, values []any) (Storage, error) {
	s, err := New(k, len(values))
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := s.Push(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}
