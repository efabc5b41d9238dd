package rvec

import (
	"cmp"
	"math"
	"slices"

	"github.com/cluffa/rvec/internal/simd"
)

func (v *Vector) numeric(op string) error {
	if v.Kind() == Text {
		return &ErrUnsupportedOperator{Op: op, Kind: Text}
	}
	return nil
}

func (v *Vector) nonEmptyNumeric(op string) error {
	if err := v.numeric(op); err != nil {
		return err
	}
	if v.Len() == 0 {
		return ErrEmptyVector
	}
	return nil
}

// Sum returns the sum of all elements: int64 for Int64 and Bool vectors,
// float64 for Float64 vectors. The sum of an empty vector is zero. Integer
// sums wrap on overflow.
func (v *Vector) Sum() (any, error) {
	if err := v.numeric("sum"); err != nil {
		return nil, err
	}
	if v.Kind() == Float64 {
		return simd.SumF64(raw[float64](v)), nil
	}
	return simd.SumI64(int64View(v.data)), nil
}

// Product returns the product of all elements with the same result kinds
// as Sum. The product of an empty vector is one.
func (v *Vector) Product() (any, error) {
	if err := v.numeric("product"); err != nil {
		return nil, err
	}
	if v.Kind() == Float64 {
		p := 1.0
		for _, x := range raw[float64](v) {
			p *= x
		}
		return p, nil
	}
	p := int64(1)
	for _, x := range int64View(v.data) {
		p *= x
	}
	return p, nil
}

// Min returns the smallest element with the vector's own type. Text
// compares lexicographically and false is smaller than true. A NaN element
// makes the result NaN.
func (v *Vector) Min() (any, error) {
	if v.Len() == 0 {
		return nil, ErrEmptyVector
	}
	switch v.Kind() {
	case Int64:
		return slices.Min(raw[int64](v)), nil
	case Float64:
		return slices.Min(raw[float64](v)), nil
	case Bool:
		return !slices.Contains(raw[bool](v), false), nil
	default:
		return slices.Min(raw[string](v)), nil
	}
}

// Max returns the largest element with the vector's own type.
func (v *Vector) Max() (any, error) {
	if v.Len() == 0 {
		return nil, ErrEmptyVector
	}
	switch v.Kind() {
	case Int64:
		return slices.Max(raw[int64](v)), nil
	case Float64:
		return slices.Max(raw[float64](v)), nil
	case Bool:
		return slices.Contains(raw[bool](v), true), nil
	default:
		return slices.Max(raw[string](v)), nil
	}
}

// ArgMin returns the index of the first smallest element. NaN elements
// are never selected unless the first element is NaN.
func (v *Vector) ArgMin() (int, error) {
	if v.Len() == 0 {
		return -1, ErrEmptyVector
	}
	switch v.Kind() {
	case Float64:
		return argBest(raw[float64](v), less[float64]), nil
	case Text:
		return argBest(raw[string](v), less[string]), nil
	default:
		return argBest(int64View(v.data), less[int64]), nil
	}
}

// ArgMax returns the index of the first largest element.
func (v *Vector) ArgMax() (int, error) {
	if v.Len() == 0 {
		return -1, ErrEmptyVector
	}
	switch v.Kind() {
	case Float64:
		return argBest(raw[float64](v), greater[float64]), nil
	case Text:
		return argBest(raw[string](v), greater[string]), nil
	default:
		return argBest(int64View(v.data), greater[int64]), nil
	}
}

func less[T cmp.Ordered](x, y T) bool    { return x < y }
func greater[T cmp.Ordered](x, y T) bool { return x > y }

// argBest returns the first index whose element beats every earlier one.
func argBest[T cmp.Ordered](xs []T, better func(x, y T) bool) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if better(xs[i], xs[best]) {
			best = i
		}
	}
	return best
}

// Mean returns the arithmetic mean as float64.
func (v *Vector) Mean() (float64, error) {
	if err := v.nonEmptyNumeric("mean"); err != nil {
		return 0, err
	}
	x := float64View(v.data)
	return simd.SumF64(x) / float64(len(x)), nil
}

// Median returns the middle element of the sorted values, or the mean of
// the two middle elements for an even length.
func (v *Vector) Median() (float64, error) {
	if err := v.nonEmptyNumeric("median"); err != nil {
		return 0, err
	}
	x := slices.Clone(float64View(v.data))
	slices.Sort(x)
	n := len(x)
	if n%2 == 1 {
		return x[n/2], nil
	}
	return (x[n/2-1] + x[n/2]) / 2, nil
}

// Variance returns the population variance.
func (v *Vector) Variance() (float64, error) {
	if err := v.nonEmptyNumeric("variance"); err != nil {
		return 0, err
	}
	x := float64View(v.data)
	mean := simd.SumF64(x) / float64(len(x))
	var ss float64
	for _, xi := range x {
		d := xi - mean
		ss += d * d
	}
	return ss / float64(len(x)), nil
}

// Std returns the population standard deviation.
func (v *Vector) Std() (float64, error) {
	variance, err := v.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Norm returns the Euclidean (L2) norm. The norm of an empty vector is zero.
func (v *Vector) Norm() (float64, error) {
	if err := v.numeric("norm"); err != nil {
		return 0, err
	}
	x := float64View(v.data)
	return math.Sqrt(simd.DotF64(x, x)), nil
}

// Normalize returns v divided by its L2 norm as Float64. A zero norm fails
// with *ErrDivisionByZero.
func (v *Vector) Normalize() (*Vector, error) {
	norm, err := v.Norm()
	if err != nil {
		return nil, err
	}
	if norm == 0 {
		return nil, &ErrDivisionByZero{Index: -1}
	}
	return v.DivideScalar(norm)
}

// Dot returns the inner product of two numeric vectors of equal length.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := v.numeric("dot"); err != nil {
		return 0, err
	}
	if err := other.numeric("dot"); err != nil {
		return 0, err
	}
	if v.Len() != other.Len() {
		return 0, &ErrLengthMismatch{Left: v.Len(), Right: other.Len()}
	}
	return simd.DotF64(float64View(v.data), float64View(other.data)), nil
}
