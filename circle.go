package geom

import "math"

// Circle is a disk given by center and radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle creates a circle.
func NewCircle(center Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

func (Circle) sealed() {}

// Kind returns KindCircle.
func (Circle) Kind() Kind { return KindCircle }

// Ellipse returns the circle as an ellipse with equal radii.
func (c Circle) Ellipse() Ellipse {
	return Ellipse{Center: c.Center, RadiusX: c.Radius, RadiusY: c.Radius}
}

// Transform maps the circle. Under a general affine map a circle becomes
// an ellipse, so the result is always an Ellipse.
func (c Circle) Transform(m Matrix) Shape {
	return c.Ellipse().Transform(m)
}

// BoundingBox returns the square around the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{
		Pos:    Vec2{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// Area returns pi * r^2.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Vec2) bool {
	return TestCirclePoint(c, p)
}

// RandomPoint returns a uniformly distributed point inside the circle.
func (c Circle) RandomPoint(r Rand) Vec2 {
	return c.Center.Add(randomInUnitDisk(r).Scale(c.Radius))
}

// Raycast intersects the ray segment with the circle.
func (c Circle) Raycast(origin, direction Vec2) (RaycastHit, bool) {
	return RaycastCircle(origin, direction, c)
}

// Collides reports whether c overlaps other.
func (c Circle) Collides(other Shape) bool {
	return TestShapeShape(c, other)
}

// randomInUnitDisk samples the unit disk with uniform area density.
func randomInUnitDisk(r Rand) Vec2 {
	angle := r.Float64() * 2 * math.Pi
	dist := math.Sqrt(r.Float64())
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos * dist, Y: sin * dist}
}
