// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"cmp"
	"math"
)

// Clamp restricts a value to be within a specified range.
// Returns low if val < low, high if val > high, otherwise returns val.
func Clamp[T cmp.Ordered](val, low, high T) T {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

// RoundUpTo rounds a value up to the nearest positive multiple of nearest.
// Non-positive values round to 0.
func RoundUpTo(value float64, nearest int64) int64 {
	if value <= 0 || nearest <= 0 {
		return 0
	}
	return int64(math.Ceil(value/float64(nearest))) * nearest
}
