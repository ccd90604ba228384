package safecast

import "math"

// ToInt converts any [IInteger] value to an int.
// Values outside the range of an int are clamped to the closest boundary.
func ToInt[I IInteger](i I) int {
	if i < 0 {
		if int64(i) < math.MinInt {
			return math.MinInt
		}
		return int(i)
	}
	if uint64(i) > math.MaxInt {
		return math.MaxInt
	}
	return int(i)
}

// ToUint64 converts any [IInteger] value to an uint64. Negative values become 0.
func ToUint64[I IInteger](i I) uint64 {
	if i < 0 {
		return 0
	}
	return uint64(i)
}
