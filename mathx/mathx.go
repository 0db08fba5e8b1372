// Package mathx holds small numeric helpers shared by the generators.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any ordered numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp restricts v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundHalfUp rounds to the nearest integer, with halves going towards +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// MapRange linearly remaps value from [low1, high1] to [low2, high2].
// The result is not clamped.
func MapRange(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// EaseOutQuart decelerates towards 1. Input is expected in [0, 1].
func EaseOutQuart(x float64) float64 {
	return 1 - math.Pow(1-x, 4)
}
