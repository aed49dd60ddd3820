/*package eq is a simple package for telling whether two arrays are equal to
one another, either exactly or up to floating point error.*/
package eq

import (
	"math"
)

// Float32s returns true if two []float32 arrays are the same and false
// otherwise.
func Float32s(x, y []float32) bool {
	if len(x) != len(y) { return false }
	for i := range x {
		if x[i] != y[i] { return false }
	}
	return true
}

// Float32sRel returns true if every element of x is within a relative error
// of rel of the corresponding element of y. Elements are compared relative to
// the largest magnitude in either array, so values which cancelled down to
// near zero don't need to match to more bits than the inputs carried.
func Float32sRel(x, y []float32, rel float64) bool {
	if len(x) != len(y) { return false }

	scale := 0.0
	for i := range x {
		scale = math.Max(scale, math.Abs(float64(x[i])))
		scale = math.Max(scale, math.Abs(float64(y[i])))
	}

	for i := range x {
		if math.Abs(float64(x[i]) - float64(y[i])) > rel*scale {
			return false
		}
	}
	return true
}

// MaxRelDiff returns the largest difference between x and y, relative to the
// largest magnitude in either array. It returns +Inf if the lengths differ
// and 0 if both arrays are all zero.
func MaxRelDiff(x, y []float32) float64 {
	if len(x) != len(y) { return math.Inf(+1) }

	scale, diff := 0.0, 0.0
	for i := range x {
		scale = math.Max(scale, math.Abs(float64(x[i])))
		scale = math.Max(scale, math.Abs(float64(y[i])))
		diff = math.Max(diff, math.Abs(float64(x[i]) - float64(y[i])))
	}

	if scale == 0 { return 0 }
	return diff / scale
}
