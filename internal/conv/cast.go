package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// float64 cannot represent MaxInt64 exactly; 2^63 is the first value that
// no longer fits.
const twoPow63 = 9223372036854775808.0

// Float64ToInt64 truncates v toward zero. NaN, infinities and values outside
// the int64 range are rejected.
func Float64ToInt64(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("float conversion: %v cannot be converted to int64", v)
	}
	t := math.Trunc(v)
	if t >= twoPow63 || t < -twoPow63 {
		return 0, fmt.Errorf("integer overflow: %v cannot be converted to int64", v)
	}
	return int64(t), nil
}
