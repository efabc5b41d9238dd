package rvec

import (
	"cmp"
	"context"
	"time"
)

// Compare evaluates a[i] c b[i] for every element and returns a Bool
// vector. Numeric kinds compare after promotion (Bool as 0 and 1); Text
// compares lexicographically and only with Text.
func (e *Executor) Compare(ctx context.Context, c Comparison, a, b *Vector) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, c.String(), a.Len(), start, err) }()

	k, err := compareKind(c, a.Kind(), b.Kind())
	if err != nil {
		return nil, err
	}
	if a.Len() != b.Len() {
		return nil, &ErrLengthMismatch{Left: a.Len(), Right: b.Len()}
	}

	dst := make([]bool, a.Len())
	switch k {
	case Text:
		err = compareVectors(ctx, e, c, dst, raw[string](a), raw[string](b))
	case Float64:
		err = compareVectors(ctx, e, c, dst, float64View(a.data), float64View(b.data))
	default:
		err = compareVectors(ctx, e, c, dst, int64View(a.data), int64View(b.data))
	}
	if err != nil {
		return nil, err
	}
	return wrapSlice(dst), nil
}

// CompareScalar evaluates a[i] c s for every element.
func (e *Executor) CompareScalar(ctx context.Context, c Comparison, a *Vector, s any) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, c.String()+"_scalar", a.Len(), start, err) }()

	sc, err := newScalar(s, a.Kind())
	if err != nil {
		return nil, err
	}
	k, err := compareKind(c, a.Kind(), sc.kind)
	if err != nil {
		return nil, err
	}

	dst := make([]bool, a.Len())
	switch k {
	case Text:
		err = compareWithScalar(ctx, e, c, dst, raw[string](a), sc.value.(string))
	case Float64:
		err = compareWithScalar(ctx, e, c, dst, float64View(a.data), sc.asFloat64())
	default:
		err = compareWithScalar(ctx, e, c, dst, int64View(a.data), sc.asInt64())
	}
	if err != nil {
		return nil, err
	}
	return wrapSlice(dst), nil
}

func compareVectors[T cmp.Ordered](ctx context.Context, e *Executor, c Comparison, dst []bool, a, b []T) error {
	pred := predicate[T](c)
	return e.split(ctx, c.String(), len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = pred(a[i], b[i])
		}
	})
}

func compareWithScalar[T cmp.Ordered](ctx context.Context, e *Executor, c Comparison, dst []bool, a []T, s T) error {
	pred := predicate[T](c)
	return e.split(ctx, c.String(), len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = pred(a[i], s)
		}
	})
}

// predicate uses the language operators so that NaN compares unequal to
// everything.
func predicate[T cmp.Ordered](c Comparison) func(x, y T) bool {
	switch c {
	case CmpEqual:
		return func(x, y T) bool { return x == y }
	case CmpNotEqual:
		return func(x, y T) bool { return x != y }
	case CmpLess:
		return func(x, y T) bool { return x < y }
	case CmpLessEqual:
		return func(x, y T) bool { return x <= y }
	case CmpGreater:
		return func(x, y T) bool { return x > y }
	default:
		return func(x, y T) bool { return x >= y }
	}
}

// Compare returns v c other elementwise as a Bool vector.
func (v *Vector) Compare(c Comparison, other *Vector) (*Vector, error) {
	return defaultExecutor.Compare(context.Background(), c, v, other)
}

// CompareScalar returns v c s elementwise as a Bool vector.
func (v *Vector) CompareScalar(c Comparison, s any) (*Vector, error) {
	return defaultExecutor.CompareScalar(context.Background(), c, v, s)
}
