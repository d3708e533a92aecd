package geom

import (
	"math"
	"slices"

	"github.com/gogpu/geom/internal/mathutil"
)

// Polynomial root solvers for quadratic and cubic equations.
// Ray casts against circles and ellipses solve quadratics; cubic-bezier
// easing inverts x(t) with the cubic solver.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// If a is zero or nearly zero the equation is solved as linear; if all
// coefficients are zero a single 0.0 is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation
	sc0 := c / a
	sc1 := b / a
	if !mathutil.IsFinite(sc0) || !mathutil.IsFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !mathutil.IsFinite(arg) {
		// Discriminant overflow: one root from x^2 + sc1*x = 0,
		// the other from the product of roots.
		return sortedPair(-sc1, sc0/-sc1)
	}
	switch {
	case arg < 0.0:
		return nil
	case arg == 0.0:
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form avoiding cancellation,
	// see https://math.stackexchange.com/questions/866331
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(root1, root2 float64) []float64 {
	if !mathutil.IsFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveLinear handles the case when the quadratic coefficient vanishes.
func solveLinear(b, c float64) []float64 {
	root := -c / b
	if mathutil.IsFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

// SolveCubic finds real roots of ax^3 + bx^2 + cx + d = 0 with Cardano's
// formula, arranged as in Jim Blinn's "How to Solve a Cubic Equation"
// (https://momentsingraphics.de/CubicRoots.html) to stay stable. A single
// real root uses the cube-root form; three real roots use the
// trigonometric form. Roots are returned in ascending order.
func SolveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	aRecip := 1.0 / a
	scaledB := b * (oneThird * aRecip)
	scaledC := c * (oneThird * aRecip)
	scaledD := d * aRecip
	if !mathutil.IsFinite(scaledB) || !mathutil.IsFinite(scaledC) || !mathutil.IsFinite(scaledD) {
		return SolveQuadratic(b, c, d)
	}

	c0, c1, c2 := scaledD, scaledC, scaledB

	// Delta and discriminant in Blinn's notation.
	d0 := (-c2)*c2 + c1
	d1 := (-c1)*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4.0*d0*d2 - d1*d1
	de := (-2.0*c2)*d0 + d1

	var roots []float64
	switch {
	case disc < 0.0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		roots = []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	case disc == 0.0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		roots = []float64{t1 - c2, -2.0*t1 - c2}
	default:
		th := math.Atan2(math.Sqrt(disc), -de) * oneThird
		thSin, thCos := math.Sincos(th)
		ss3 := thSin * math.Sqrt(3.0)
		t := 2.0 * math.Sqrt(-d0)
		roots = []float64{
			t*thCos - c2,
			t*0.5*(-thCos+ss3) - c2,
			t*0.5*(-thCos-ss3) - c2,
		}
	}
	slices.Sort(roots)
	return roots
}

// SolveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 in [0, 1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return filterRootsToUnitInterval(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval returns roots of ax^3 + bx^2 + cx + d = 0 in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return filterRootsToUnitInterval(SolveCubic(a, b, c, d))
}

// filterRootsToUnitInterval keeps roots in [0, 1], snapping values within a
// small epsilon of the boundaries onto them.
func filterRootsToUnitInterval(roots []float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range roots {
		if r >= -eps && r <= 1.0+eps {
			result = append(result, mathutil.Clamp(r, 0, 1))
		}
	}
	return result
}
