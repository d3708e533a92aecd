package geom

import "math"

// SATResult is the minimum translation found by SAT.
type SATResult struct {
	// Normal is the unit separating axis with the smallest overlap.
	Normal Vec2

	// Distance is the signed overlap along Normal.
	Distance float64
}

// MTV returns the minimum translation vector, Normal scaled by Distance.
// Moving the first polygon by it separates the pair.
func (r SATResult) MTV() Vec2 {
	return r.Normal.Scale(r.Distance)
}

// SAT runs the separating axis test on two convex polygons. It returns false
// as soon as an edge normal of either polygon separates them; polygons that
// only touch have zero overlap and count as separated.
//
// Convexity is not checked. For concave input the result is meaningless;
// see Polygon.IsConvex.
func SAT(p1, p2 Polygon) (SATResult, bool) {
	res := SATResult{Distance: math.MaxFloat64}
	for _, poly := range [2]Polygon{p1, p2} {
		n := len(poly.Points)
		for i := range n {
			a, b := poly.Points[i], poly.Points[(i+1)%n]
			axis := Vec2{X: -(b.Y - a.Y), Y: b.X - a.X}.Unit()

			min1, max1 := project(p1, axis)
			min2, max2 := project(p2, axis)
			o := math.Min(max1, max2) - math.Max(min1, min2)
			if o <= 0 {
				return SATResult{}, false
			}
			if o < math.Abs(res.Distance) {
				o1 := max2 - min1
				o2 := min2 - max1
				if math.Abs(o1) < math.Abs(o2) {
					res.Distance = o1
				} else {
					res.Distance = o2
				}
				res.Normal = axis
			}
		}
	}
	return res, true
}

// project returns the extent of p along axis.
func project(p Polygon, axis Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, pt := range p.Points {
		d := pt.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
