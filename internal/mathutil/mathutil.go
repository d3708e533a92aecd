// Package mathutil holds small generic float helpers shared by geom and its
// sub-packages.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used by geometric predicates that must absorb
// rounding error (collinearity, parallel lines).
const Epsilon = 2.220446049250313e-16

// Lerp returns a + (b-a)*t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports whether |a-b| < eps.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T constraints.Float](deg T) T {
	return deg * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T constraints.Float](rad T) T {
	return rad * 180 / math.Pi
}

// IsFinite returns true if x is neither infinite nor NaN.
func IsFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
