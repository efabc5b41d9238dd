package rvec

import (
	"context"
	"math"
	"time"

	"github.com/cluffa/rvec/internal/mem"
)

// mapNumeric applies fi to Int64 and Bool vectors (yielding Int64) and ff to
// Float64 vectors. Text is rejected.
func (e *Executor) mapNumeric(ctx context.Context, op string, v *Vector, fi func(int64) int64, ff func(float64) float64) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, op, v.Len(), start, err) }()

	switch v.Kind() {
	case Text:
		return nil, &ErrUnsupportedOperator{Op: op, Kind: Text}
	case Float64:
		return e.apply(ctx, op, raw[float64](v), ff)
	default:
		x := int64View(v.data)
		dst := mem.Aligned[int64](len(x))
		err = e.split(ctx, op, len(x), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				dst[i] = fi(x[i])
			}
		})
		if err != nil {
			return nil, err
		}
		return wrapSlice(dst), nil
	}
}

// mapFloat applies f to every element promoted to float64 and returns a
// Float64 vector.
func (e *Executor) mapFloat(ctx context.Context, op string, v *Vector, f func(float64) float64) (out *Vector, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, op, v.Len(), start, err) }()

	if v.Kind() == Text {
		return nil, &ErrUnsupportedOperator{Op: op, Kind: Text}
	}
	return e.apply(ctx, op, float64View(v.data), f)
}

func (e *Executor) apply(ctx context.Context, op string, x []float64, f func(float64) float64) (*Vector, error) {
	dst := mem.Aligned[float64](len(x))
	err := e.split(ctx, op, len(x), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(x[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return wrapSlice(dst), nil
}

// Negate returns -v. Bool promotes to Int64; MinInt64 wraps to itself.
func (v *Vector) Negate() (*Vector, error) {
	return defaultExecutor.mapNumeric(context.Background(), "negate", v,
		func(x int64) int64 { return -x },
		func(x float64) float64 { return -x },
	)
}

// Abs returns the absolute value of every element. Bool promotes to Int64;
// MinInt64 wraps to itself.
func (v *Vector) Abs() (*Vector, error) {
	return defaultExecutor.mapNumeric(context.Background(), "abs", v,
		func(x int64) int64 {
			if x < 0 {
				return -x
			}
			return x
		},
		math.Abs,
	)
}

// Square returns v[i] * v[i]. Integer results wrap on overflow.
func (v *Vector) Square() (*Vector, error) {
	return defaultExecutor.mapNumeric(context.Background(), "square", v,
		func(x int64) int64 { return x * x },
		func(x float64) float64 { return x * x },
	)
}

// Sqrt returns the square root of every element as Float64. Negative inputs
// yield NaN.
func (v *Vector) Sqrt() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "sqrt", v, math.Sqrt)
}

// Exp returns e**v[i] as Float64.
func (v *Vector) Exp() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "exp", v, math.Exp)
}

// Log returns the natural logarithm of every element as Float64.
func (v *Vector) Log() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "log", v, math.Log)
}

// Sin returns the sine of every element (radians) as Float64.
func (v *Vector) Sin() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "sin", v, math.Sin)
}

// Cos returns the cosine of every element (radians) as Float64.
func (v *Vector) Cos() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "cos", v, math.Cos)
}

// Tan returns the tangent of every element (radians) as Float64.
func (v *Vector) Tan() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "tan", v, math.Tan)
}

// Round rounds every element to digits decimal places, halves away from
// zero. Negative digits round to tens, hundreds and so on. The result is
// Float64.
func (v *Vector) Round(digits int) (*Vector, error) {
	p := math.Pow(10, float64(digits))
	return defaultExecutor.mapFloat(context.Background(), "round", v, func(x float64) float64 {
		return math.Round(x*p) / p
	})
}

// Asin returns the arcsine of every element as Float64.
func (v *Vector) Asin() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "asin", v, math.Asin)
}

// Acos returns the arccosine of every element as Float64.
func (v *Vector) Acos() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "acos", v, math.Acos)
}

// Atan returns the arctangent of every element as Float64.
func (v *Vector) Atan() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "atan", v, math.Atan)
}

// Sinh returns the hyperbolic sine of every element as Float64.
func (v *Vector) Sinh() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "sinh", v, math.Sinh)
}

// Cosh returns the hyperbolic cosine of every element as Float64.
func (v *Vector) Cosh() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "cosh", v, math.Cosh)
}

// Tanh returns the hyperbolic tangent of every element as Float64.
func (v *Vector) Tanh() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "tanh", v, math.Tanh)
}

// Asinh returns the inverse hyperbolic sine of every element as Float64.
func (v *Vector) Asinh() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "asinh", v, math.Asinh)
}

// Acosh returns the inverse hyperbolic cosine of every element as Float64.
func (v *Vector) Acosh() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "acosh", v, math.Acosh)
}

// Atanh returns the inverse hyperbolic tangent of every element as Float64.
func (v *Vector) Atanh() (*Vector, error) {
	return defaultExecutor.mapFloat(context.Background(), "atanh", v, math.Atanh)
}
