package rvec

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cluffa/rvec/internal/conv"
)

// AsFloat64 converts every element to float64. Text elements are parsed
// with strconv.ParseFloat after trimming surrounding whitespace.
func (v *Vector) AsFloat64() (*Vector, error) {
	switch v.Kind() {
	case Float64:
		return v.Clone(), nil
	case Text:
		src := raw[string](v)
		out := make([]float64, len(src))
		for i, s := range src {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, &ErrConversion{Index: i, Target: Float64, cause: err}
			}
			out[i] = f
		}
		return wrapSlice(out), nil
	default:
		return wrapSlice(slices.Clone(float64View(v.data))), nil
	}
}

// AsInt64 converts every element to int64. Floats are truncated toward
// zero; NaN, infinities and out-of-range values fail with *ErrConversion.
// Text elements are parsed as base-10 integers.
func (v *Vector) AsInt64() (*Vector, error) {
	switch v.Kind() {
	case Int64:
		return v.Clone(), nil
	case Float64:
		src := raw[float64](v)
		out := make([]int64, len(src))
		for i, f := range src {
			x, err := conv.Float64ToInt64(f)
			if err != nil {
				return nil, &ErrConversion{Index: i, Target: Int64, cause: err}
			}
			out[i] = x
		}
		return wrapSlice(out), nil
	case Text:
		src := raw[string](v)
		out := make([]int64, len(src))
		for i, s := range src {
			x, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, &ErrConversion{Index: i, Target: Int64, cause: err}
			}
			out[i] = x
		}
		return wrapSlice(out), nil
	default:
		return wrapSlice(int64View(v.data)), nil
	}
}

// AsBool converts every element to bool: non-zero numbers (NaN included)
// and non-empty strings are true.
func (v *Vector) AsBool() *Vector {
	switch v.Kind() {
	case Bool:
		return v.Clone()
	case Text:
		src := raw[string](v)
		out := make([]bool, len(src))
		for i, s := range src {
			out[i] = s != ""
		}
		return wrapSlice(out)
	default:
		src := float64View(v.data)
		out := make([]bool, len(src))
		for i, f := range src {
			out[i] = f != 0
		}
		return wrapSlice(out)
	}
}

// AsText converts every element to its display form without quotes.
func (v *Vector) AsText() *Vector {
	if v.Kind() == Text {
		return v.Clone()
	}
	out := make([]string, v.Len())
	for i, x := range v.data.Values() {
		out[i] = formatElement(x, false)
	}
	return wrapSlice(out)
}
