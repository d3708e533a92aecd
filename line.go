package geom

import "math"

// Line is the segment between P1 and P2.
type Line struct {
	P1, P2 Vec2
}

// NewLine creates a line segment.
func NewLine(p1, p2 Vec2) Line {
	return Line{P1: p1, P2: p2}
}

func (Line) sealed() {}

// Kind returns KindLine.
func (Line) Kind() Kind { return KindLine }

// Transform maps both endpoints.
func (l Line) Transform(m Matrix) Shape {
	return Line{P1: m.TransformPoint(l.P1), P2: m.TransformPoint(l.P2)}
}

// BoundingBox returns the box spanned by the endpoints.
func (l Line) BoundingBox() Rect {
	return RectFromPoints(l.P1, l.P2)
}

// Area is always zero.
func (Line) Area() float64 { return 0 }

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.P1.Dist(l.P2)
}

// Eval returns the point at parameter t (t=0 is P1, t=1 is P2).
func (l Line) Eval(t float64) Vec2 {
	return l.P1.Lerp(l.P2, t)
}

// Contains reports whether q lies on the segment.
func (l Line) Contains(q Vec2) bool {
	return TestLinePoint(l, q)
}

// RandomPoint returns a uniformly distributed point on the segment.
func (l Line) RandomPoint(r Rand) Vec2 {
	return l.Eval(r.Float64())
}

// Raycast intersects the ray segment with the line.
func (l Line) Raycast(origin, direction Vec2) (RaycastHit, bool) {
	return RaycastLine(origin, direction, l)
}

// Collides reports whether l overlaps other.
func (l Line) Collides(other Shape) bool {
	return TestShapeShape(l, other)
}

// Intersection returns the crossing point of two segments.
func (l Line) Intersection(other Line) (Vec2, bool) {
	t, ok := LineIntersectionT(l, other)
	if !ok {
		return Vec2{}, false
	}
	return l.Eval(t), true
}

// LineIntersectionT returns the parameter along l1 at which it crosses l2.
// Parallel segments, including collinear ones, report no intersection.
func LineIntersectionT(l1, l2 Line) (float64, bool) {
	d1 := l1.P2.Sub(l1.P1)
	d2 := l2.P2.Sub(l2.P1)
	denom := d2.Y*d1.X - d2.X*d1.Y
	if denom == 0 {
		return 0, false
	}
	ua := (d2.X*(l1.P1.Y-l2.P1.Y) - d2.Y*(l1.P1.X-l2.P1.X)) / denom
	ub := (d1.X*(l1.P1.Y-l2.P1.Y) - d1.Y*(l1.P1.X-l2.P1.X)) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 || math.IsNaN(ua) || math.IsNaN(ub) {
		return 0, false
	}
	return ua, true
}
