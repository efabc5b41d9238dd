package storage

import "math"

// Element is the set of Go types a Buffer can hold.
type Element interface {
	int64 | float64 | bool | string
}

// Normalize maps an accepted Go scalar to its kind and canonical value
// (int64, float64, bool or string). Unsigned values above math.MaxInt64 and
// unsupported types report ok == false.
func Normalize(v any) (k Kind, canonical any, ok bool) {
	switch x := v.(type) {
	case int64:
		return KindInt64, x, true
	case int:
		return KindInt64, int64(x), true
	case int32:
		return KindInt64, int64(x), true
	case int16:
		return KindInt64, int64(x), true
	case int8:
		return KindInt64, int64(x), true
	case uint8:
		return KindInt64, int64(x), true
	case uint16:
		return KindInt64, int64(x), true
	case uint32:
		return KindInt64, int64(x), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, nil, false
		}
		return KindInt64, int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, nil, false
		}
		return KindInt64, int64(x), true
	case float64:
		return KindFloat64, x, true
	case float32:
		return KindFloat64, float64(x), true
	case bool:
		return KindBool, x, true
	case string:
		return KindText, x, true
	default:
		return 0, nil, false
	}
}

// KindOf returns the kind stored by a Buffer[T].
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int64:
		return KindInt64
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	default:
		return KindText
	}
}

// NormalizeIndex converts a possibly negative index into [0, n).
func NormalizeIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return i, false
	}
	return i, true
}

// ClampRange normalizes negative bounds and clamps both into [0, n]. An
// inverted range collapses to start == stop.
func ClampRange(start, stop, n int) (int, int) {
	start = clampBound(start, n)
	stop = clampBound(stop, n)
	if stop < start {
		stop = start
	}
	return start, stop
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
