package geom

import (
	"math"

	"github.com/gogpu/geom/internal/mathutil"
)

// RaycastHit describes where a ray segment meets a shape.
//
// For the closed-form casts the ray is origin + direction*t with t in
// [0, 1], and Fraction is that t: the hit offset is Fraction*direction, for
// any length of direction. RaycastGrid reports Fraction the same way even
// though it walks the grid with a normalized direction.
type RaycastHit struct {
	Point    Vec2
	Normal   Vec2
	Fraction float64

	// GridPos is the cell that was hit, valid when HasGridPos is set.
	GridPos    Vec2
	HasGridPos bool
}

// Raycast casts the segment origin → origin+direction against any shape.
func Raycast(origin, direction Vec2, s Shape) (RaycastHit, bool) {
	return s.Raycast(origin, direction)
}

// RaycastPoint hits p when it lies on the ray segment. The normal faces back
// along the ray.
func RaycastPoint(origin, direction Vec2, p Point) (RaycastHit, bool) {
	dd := direction.SLen()
	if dd <= mathutil.Epsilon {
		return RaycastHit{}, false
	}
	v := p.Pt.Sub(origin)
	if math.Abs(v.Cross(direction)) > mathutil.Epsilon*math.Max(1, dd) {
		return RaycastHit{}, false
	}
	t := v.Dot(direction) / dd
	if t < 0 || t > 1 {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Point:    p.Pt,
		Normal:   direction.Unit().Neg(),
		Fraction: t,
	}, true
}

// RaycastLine intersects the ray segment with l. Hits exactly at either end
// of either segment are not reported. The normal faces the ray's origin.
func RaycastLine(origin, direction Vec2, l Line) (RaycastHit, bool) {
	cd := l.P2.Sub(l.P1)
	abxcd := direction.Cross(cd)
	if math.Abs(abxcd) < mathutil.Epsilon {
		return RaycastHit{}, false
	}
	ac := l.P1.Sub(origin)
	s := ac.Cross(cd) / abxcd
	if s <= 0 || s >= 1 {
		return RaycastHit{}, false
	}
	t := ac.Cross(direction) / abxcd
	if t <= 0 || t >= 1 {
		return RaycastHit{}, false
	}
	normal := cd.Normal().Unit()
	if direction.Dot(normal) > 0 {
		normal = normal.Neg()
	}
	return RaycastHit{
		Point:    origin.Add(direction.Scale(s)),
		Normal:   normal,
		Fraction: s,
	}, true
}

// RaycastRect intersects the ray segment with r using the slab method. A ray
// starting inside the rectangle reports no hit.
func RaycastRect(origin, direction Vec2, r Rect) (RaycastHit, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	var normal Vec2
	maxPt := r.Max()

	if direction.X != 0 {
		tx1 := (r.Pos.X - origin.X) / direction.X
		tx2 := (maxPt.X - origin.X) / direction.X
		tmin = math.Max(tmin, math.Min(tx1, tx2))
		tmax = math.Min(tmax, math.Max(tx1, tx2))
		normal = Vec2{X: -math.Copysign(1, direction.X)}
	} else if origin.X < r.Pos.X || origin.X > maxPt.X {
		return RaycastHit{}, false
	}

	if direction.Y != 0 {
		ty1 := (r.Pos.Y - origin.Y) / direction.Y
		ty2 := (maxPt.Y - origin.Y) / direction.Y
		if near := math.Min(ty1, ty2); near > tmin {
			normal = Vec2{Y: -math.Copysign(1, direction.Y)}
			tmin = near
		}
		tmax = math.Min(tmax, math.Max(ty1, ty2))
	} else if origin.Y < r.Pos.Y || origin.Y > maxPt.Y {
		return RaycastHit{}, false
	}

	if tmax < tmin || tmin < 0 || tmin > 1 {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Point:    origin.Add(direction.Scale(tmin)),
		Normal:   normal,
		Fraction: tmin,
	}, true
}

// circleHitT returns the smallest t in [0, 1] where origin + direction*t is
// on the circle.
func circleHitT(origin, direction, center Vec2, radius float64) (float64, bool) {
	a := direction.Dot(direction)
	if a <= mathutil.Epsilon {
		return 0, false
	}
	oc := origin.Sub(center)
	b := 2 * direction.Dot(oc)
	c := oc.Dot(oc) - radius*radius
	roots := SolveQuadraticInUnitInterval(a, b, c)
	if len(roots) == 0 {
		return 0, false
	}
	// Roots are ascending; the first one is the entry point.
	return roots[0], true
}

// RaycastCircle intersects the ray segment with c.
func RaycastCircle(origin, direction Vec2, c Circle) (RaycastHit, bool) {
	t, ok := circleHitT(origin, direction, c.Center, c.Radius)
	if !ok {
		return RaycastHit{}, false
	}
	point := origin.Add(direction.Scale(t))
	return RaycastHit{
		Point:    point,
		Normal:   point.Sub(c.Center).Unit(),
		Fraction: t,
	}, true
}

// RaycastEllipse maps the ray into the frame where e is the unit circle,
// casts it there and maps the hit back. The normal is the gradient of the
// ellipse's implicit equation, computed in the ellipse's own axes and then
// rotated; normals do not transform like points.
func RaycastEllipse(origin, direction Vec2, e Ellipse) (RaycastHit, bool) {
	toUnit := e.toUnitFrame()
	o := toUnit.TransformPoint(origin)
	d := toUnit.TransformVector(direction)
	t, ok := circleHitT(o, d, Vec2{}, 1)
	if !ok {
		return RaycastHit{}, false
	}
	u := o.Add(d.Scale(t))

	// Hit in the ellipse's axis frame, before rotation.
	p := Vec2{X: e.RadiusX * u.X, Y: e.RadiusY * u.Y}
	grad := Vec2{X: e.RadiusY * e.RadiusY * p.X, Y: e.RadiusX * e.RadiusX * p.Y}
	return RaycastHit{
		Point:    origin.Add(direction.Scale(t)),
		Normal:   grad.Rotate(e.Angle).Unit(),
		Fraction: t,
	}, true
}

// RaycastPolygon casts against every edge of p and keeps the nearest hit.
func RaycastPolygon(origin, direction Vec2, p Polygon) (RaycastHit, bool) {
	var best RaycastHit
	found := false
	prev := p.Points[len(p.Points)-1]
	for _, cur := range p.Points {
		if hit, ok := RaycastLine(origin, direction, Line{P1: prev, P2: cur}); ok {
			if !found || hit.Fraction < best.Fraction {
				best, found = hit, true
			}
		}
		prev = cur
	}
	return best, found
}
