package core

import "math"

// Epsilon is the tolerance used for geometric comparisons and surface offsets
const Epsilon = 1e-5

// FloatEqual reports whether a and b differ by less than Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
