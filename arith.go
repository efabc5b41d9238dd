package rvec

import (
	"context"
	"time"

	"github.com/cluffa/rvec/internal/mem"
	"github.com/cluffa/rvec/internal/simd"
)

// Binary applies op elementwise to a and b. Both vectors must have the same
// length; the result kind follows the promotion rules (see Op).
//
// Divide, FloorDivide and Modulo fail with *ErrDivisionByZero if any element
// of b is zero. No result is produced in that case. Integer results wrap on
// overflow.
func (e *Executor) Binary(ctx context.Context, op Op, a, b *Vector) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, op.String(), a.Len(), start, err) }()

	k, err := resultKind(op, a.Kind(), b.Kind())
	if err != nil {
		return nil, err
	}
	if a.Len() != b.Len() {
		return nil, &ErrLengthMismatch{Left: a.Len(), Right: b.Len()}
	}
	n := a.Len()

	if k == Int64 {
		x, y := int64View(a.data), int64View(b.data)
		if op.divides() {
			if i := simd.IndexZero(y); i >= 0 {
				return nil, &ErrDivisionByZero{Index: i}
			}
		}
		dst := mem.Aligned[int64](n)
		kernel := int64Kernel(op)
		err = e.split(ctx, op.String(), n, func(lo, hi int) {
			kernel(dst[lo:hi], x[lo:hi], y[lo:hi])
		})
		if err != nil {
			return nil, err
		}
		return wrapSlice(dst), nil
	}

	x, y := float64View(a.data), float64View(b.data)
	if op.divides() {
		if i := simd.IndexZero(y); i >= 0 {
			return nil, &ErrDivisionByZero{Index: i}
		}
	}
	dst := mem.Aligned[float64](n)
	kernel := float64Kernel(op)
	err = e.split(ctx, op.String(), n, func(lo, hi int) {
		kernel(dst[lo:hi], x[lo:hi], y[lo:hi])
	})
	if err != nil {
		return nil, err
	}
	return wrapSlice(dst), nil
}

// Scalar computes a[i] op s for every element. The scalar is broadcast
// without materializing a vector. A zero divisor fails with
// *ErrDivisionByZero{Index: -1}.
func (e *Executor) Scalar(ctx context.Context, op Op, a *Vector, s any) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, op.String()+"_scalar", a.Len(), start, err) }()

	sc, err := newScalar(s, a.Kind())
	if err != nil {
		return nil, err
	}
	k, err := resultKind(op, a.Kind(), sc.kind)
	if err != nil {
		return nil, err
	}
	if op.divides() && sc.isZero() {
		return nil, &ErrDivisionByZero{Index: -1}
	}
	n := a.Len()

	if k == Int64 {
		x, y := int64View(a.data), sc.asInt64()
		dst := mem.Aligned[int64](n)
		kernel := int64ScalarKernel(op)
		err = e.split(ctx, op.String(), n, func(lo, hi int) {
			kernel(dst[lo:hi], x[lo:hi], y)
		})
		if err != nil {
			return nil, err
		}
		return wrapSlice(dst), nil
	}

	x, y := float64View(a.data), sc.asFloat64()
	dst := mem.Aligned[float64](n)
	kernel := float64ScalarKernel(op)
	err = e.split(ctx, op.String(), n, func(lo, hi int) {
		kernel(dst[lo:hi], x[lo:hi], y)
	})
	if err != nil {
		return nil, err
	}
	return wrapSlice(dst), nil
}

// ScalarLeft computes s op a[i] for every element, the reflected form of
// Scalar (for example 10 - v or 1 / v). A zero element of a fails Divide,
// FloorDivide and Modulo.
func (e *Executor) ScalarLeft(ctx context.Context, op Op, s any, a *Vector) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, op.String()+"_scalar_left", a.Len(), start, err) }()

	sc, err := newScalar(s, a.Kind())
	if err != nil {
		return nil, err
	}
	k, err := resultKind(op, sc.kind, a.Kind())
	if err != nil {
		return nil, err
	}
	n := a.Len()

	if k == Int64 {
		x, y := sc.asInt64(), int64View(a.data)
		if op.divides() {
			if i := simd.IndexZero(y); i >= 0 {
				return nil, &ErrDivisionByZero{Index: i}
			}
		}
		dst := mem.Aligned[int64](n)
		f := int64Func(op)
		err = e.split(ctx, op.String(), n, func(lo, hi int) {
			simd.ScalarLeft(dst[lo:hi], x, y[lo:hi], f)
		})
		if err != nil {
			return nil, err
		}
		return wrapSlice(dst), nil
	}

	x, y := sc.asFloat64(), float64View(a.data)
	if op.divides() {
		if i := simd.IndexZero(y); i >= 0 {
			return nil, &ErrDivisionByZero{Index: i}
		}
	}
	dst := mem.Aligned[float64](n)
	f := float64Func(op)
	err = e.split(ctx, op.String(), n, func(lo, hi int) {
		simd.ScalarLeft(dst[lo:hi], x, y[lo:hi], f)
	})
	if err != nil {
		return nil, err
	}
	return wrapSlice(dst), nil
}

func int64Func(op Op) func(x, y int64) int64 {
	switch op {
	case OpAdd:
		return func(x, y int64) int64 { return x + y }
	case OpSubtract:
		return func(x, y int64) int64 { return x - y }
	case OpMultiply:
		return func(x, y int64) int64 { return x * y }
	case OpFloorDivide:
		return simd.FloorDivInt64
	default:
		return simd.ModInt64
	}
}

func float64Func(op Op) func(x, y float64) float64 {
	switch op {
	case OpAdd:
		return func(x, y float64) float64 { return x + y }
	case OpSubtract:
		return func(x, y float64) float64 { return x - y }
	case OpMultiply:
		return func(x, y float64) float64 { return x * y }
	case OpDivide:
		return func(x, y float64) float64 { return x / y }
	case OpFloorDivide:
		return simd.FloorDivFloat64
	default:
		return simd.ModFloat64
	}
}

// int64Kernel never sees OpDivide: true division always promotes to Float64.
func int64Kernel(op Op) func(dst, a, b []int64) {
	switch op {
	case OpAdd:
		return simd.AddI64
	case OpSubtract:
		return simd.SubI64
	case OpMultiply:
		return simd.MulI64
	default:
		f := int64Func(op)
		return func(dst, a, b []int64) { simd.Binary(dst, a, b, f) }
	}
}

func float64Kernel(op Op) func(dst, a, b []float64) {
	switch op {
	case OpAdd:
		return simd.AddF64
	case OpSubtract:
		return simd.SubF64
	case OpMultiply:
		return simd.MulF64
	case OpDivide:
		return simd.DivF64
	default:
		f := float64Func(op)
		return func(dst, a, b []float64) { simd.Binary(dst, a, b, f) }
	}
}

func int64ScalarKernel(op Op) func(dst, a []int64, s int64) {
	switch op {
	case OpAdd:
		return simd.AddScalarI64
	case OpSubtract:
		return simd.SubScalarI64
	case OpMultiply:
		return simd.MulScalarI64
	default:
		f := int64Func(op)
		return func(dst, a []int64, s int64) { simd.Scalar(dst, a, s, f) }
	}
}

func float64ScalarKernel(op Op) func(dst, a []float64, s float64) {
	switch op {
	case OpAdd:
		return simd.AddScalarF64
	case OpSubtract:
		return simd.SubScalarF64
	case OpMultiply:
		return simd.MulScalarF64
	case OpDivide:
		return simd.DivScalarF64
	default:
		f := float64Func(op)
		return func(dst, a []float64, s float64) { simd.Scalar(dst, a, s, f) }
	}
}

// Add returns v + other elementwise.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	return defaultExecutor.Binary(context.Background(), OpAdd, v, other)
}

// Subtract returns v - other elementwise.
func (v *Vector) Subtract(other *Vector) (*Vector, error) {
	return defaultExecutor.Binary(context.Background(), OpSubtract, v, other)
}

// Multiply returns v * other elementwise.
func (v *Vector) Multiply(other *Vector) (*Vector, error) {
	return defaultExecutor.Binary(context.Background(), OpMultiply, v, other)
}

// Divide returns v / other elementwise as Float64.
func (v *Vector) Divide(other *Vector) (*Vector, error) {
	return defaultExecutor.Binary(context.Background(), OpDivide, v, other)
}

// FloorDivide returns the floored quotient of v and other elementwise.
func (v *Vector) FloorDivide(other *Vector) (*Vector, error) {
	return defaultExecutor.Binary(context.Background(), OpFloorDivide, v, other)
}

// Modulo returns the floored remainder of v and other elementwise. The
// result takes the sign of the divisor.
func (v *Vector) Modulo(other *Vector) (*Vector, error) {
	return defaultExecutor.Binary(context.Background(), OpModulo, v, other)
}

// AddScalar returns v + s.
func (v *Vector) AddScalar(s any) (*Vector, error) {
	return defaultExecutor.Scalar(context.Background(), OpAdd, v, s)
}

// SubtractScalar returns v - s.
func (v *Vector) SubtractScalar(s any) (*Vector, error) {
	return defaultExecutor.Scalar(context.Background(), OpSubtract, v, s)
}

// MultiplyScalar returns v * s.
func (v *Vector) MultiplyScalar(s any) (*Vector, error) {
	return defaultExecutor.Scalar(context.Background(), OpMultiply, v, s)
}

// DivideScalar returns v / s as Float64.
func (v *Vector) DivideScalar(s any) (*Vector, error) {
	return defaultExecutor.Scalar(context.Background(), OpDivide, v, s)
}

// FloorDivideScalar returns the floored quotient v // s.
func (v *Vector) FloorDivideScalar(s any) (*Vector, error) {
	return defaultExecutor.Scalar(context.Background(), OpFloorDivide, v, s)
}

// ModuloScalar returns the floored remainder v % s.
func (v *Vector) ModuloScalar(s any) (*Vector, error) {
	return defaultExecutor.Scalar(context.Background(), OpModulo, v, s)
}
