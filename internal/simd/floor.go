package simd

import "math"

// FloorDivInt64 returns a divided by b rounded toward negative infinity.
// b must not be zero. MinInt64 / -1 wraps to MinInt64.
func FloorDivInt64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ModInt64 returns the remainder of a floor-divided by b. The result is zero
// or has the sign of b. b must not be zero.
func ModInt64(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// DivModFloat64 returns the floored quotient and the remainder of a / b, with
// the remainder carrying the sign of b. A zero remainder is signed like b and
// a zero quotient like a/b. b must not be zero.
func DivModFloat64(a, b float64) (float64, float64) {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 {
		if (b < 0) != (mod < 0) {
			mod += b
			div -= 1
		}
	} else {
		mod = math.Copysign(0, b)
	}

	var floorDiv float64
	if div != 0 {
		floorDiv = math.Floor(div)
		// (a - mod) / b is inexact; snap to the nearest integer.
		if div-floorDiv > 0.5 {
			floorDiv++
		}
	} else {
		floorDiv = math.Copysign(0, a/b)
	}
	return floorDiv, mod
}

// FloorDivFloat64 returns the floored quotient of a / b.
func FloorDivFloat64(a, b float64) float64 {
	q, _ := DivModFloat64(a, b)
	return q
}

// ModFloat64 returns the floored remainder of a / b.
func ModFloat64(a, b float64) float64 {
	_, r := DivModFloat64(a, b)
	return r
}
