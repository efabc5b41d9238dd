package rvec

import (
	"math"
	"strconv"
	"strings"
)

// String renders the vector as a bracketed, comma separated list:
// [1, 2, 3], [1.0, 2.5], ["a", "b"] or [true, false].
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		x, _ := v.data.Get(i)
		sb.WriteString(formatElement(x, true))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatElement(x any, quote bool) string {
	switch t := x.(type) {
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatFloat(t)
	case bool:
		return strconv.FormatBool(t)
	case string:
		if quote {
			return strconv.Quote(t)
		}
		return t
	default:
		return ""
	}
}

// formatFloat prints the shortest representation that round-trips. Values
// in [1e-4, 1e16) use positional notation with at least one fractional
// digit, everything else uses an exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	a := math.Abs(f)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
