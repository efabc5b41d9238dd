package rvec

import (
	"slices"

	"github.com/cluffa/rvec/internal/storage"
)

// Push appends x in place. x must match the vector's kind.
func (v *Vector) Push(x any) error {
	return translateError(v.data.Push(x))
}

// Extend appends every element of other in place. Both vectors must share
// the same kind.
func (v *Vector) Extend(other *Vector) error {
	return translateError(v.data.Append(other.data))
}

// Pop removes and returns the last element in place.
func (v *Vector) Pop() (any, error) {
	x, err := v.data.Remove(-1)
	return x, translateError(err)
}

// Insert places x before index i in place. Negative indices count from the
// end and i is clamped into [0, Len].
func (v *Vector) Insert(i int, x any) error {
	return translateError(v.data.Insert(i, x))
}

// Remove deletes element i in place and returns it.
func (v *Vector) Remove(i int) (any, error) {
	x, err := v.data.Remove(i)
	return x, translateError(err)
}

// Clear removes every element in place. The kind is kept.
func (v *Vector) Clear() {
	v.data.Truncate()
}

// Reverse reverses the element order in place.
func (v *Vector) Reverse() {
	switch b := v.data.(type) {
	case *storage.Buffer[int64]:
		slices.Reverse(b.Raw())
	case *storage.Buffer[float64]:
		slices.Reverse(b.Raw())
	case *storage.Buffer[bool]:
		slices.Reverse(b.Raw())
	case *storage.Buffer[string]:
		slices.Reverse(b.Raw())
	}
}

// Sort sorts the elements in ascending order in place. false sorts before
// true, Text sorts lexicographically and NaN sorts first.
func (v *Vector) Sort() {
	switch b := v.data.(type) {
	case *storage.Buffer[int64]:
		slices.Sort(b.Raw())
	case *storage.Buffer[float64]:
		slices.Sort(b.Raw())
	case *storage.Buffer[bool]:
		sortBools(b.Raw())
	case *storage.Buffer[string]:
		slices.Sort(b.Raw())
	}
}

// SortDescending sorts the elements in descending order in place.
func (v *Vector) SortDescending() {
	v.Sort()
	v.Reverse()
}

func sortBools(xs []bool) {
	falses := 0
	for _, x := range xs {
		if !x {
			falses++
		}
	}
	for i := range xs {
		xs[i] = i >= falses
	}
}
