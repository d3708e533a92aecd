package geom

// Point is a single position.
type Point struct {
	Pt Vec2
}

// Pt is a convenience function to create a Point shape.
func Pt(x, y float64) Point {
	return Point{Pt: Vec2{X: x, Y: y}}
}

func (Point) sealed() {}

// Kind returns KindPoint.
func (Point) Kind() Kind { return KindPoint }

// Transform maps the point.
func (p Point) Transform(m Matrix) Shape {
	return Point{Pt: m.TransformPoint(p.Pt)}
}

// BoundingBox returns a zero-size Rect at the point.
func (p Point) BoundingBox() Rect {
	return Rect{Pos: p.Pt}
}

// Area is always zero.
func (Point) Area() float64 { return 0 }

// Contains reports exact equality.
func (p Point) Contains(q Vec2) bool {
	return p.Pt.Eq(q)
}

// RandomPoint returns the point itself.
func (p Point) RandomPoint(Rand) Vec2 {
	return p.Pt
}

// Raycast hits the point when it lies on the segment.
func (p Point) Raycast(origin, direction Vec2) (RaycastHit, bool) {
	return RaycastPoint(origin, direction, p)
}

// Collides reports whether p overlaps other.
func (p Point) Collides(other Shape) bool {
	return TestShapeShape(p, other)
}
