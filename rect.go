package geom

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// Negative sizes are not clamped.
type Rect struct {
	Pos           Vec2
	Width, Height float64
}

// NewRect creates a rectangle.
func NewRect(pos Vec2, width, height float64) Rect {
	return Rect{Pos: pos, Width: width, Height: height}
}

// RectFromPoints returns the smallest Rect containing both points.
func RectFromPoints(p1, p2 Vec2) Rect {
	minX, maxX := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	minY, maxY := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	return Rect{Pos: Vec2{X: minX, Y: minY}, Width: maxX - minX, Height: maxY - minY}
}

func (Rect) sealed() {}

// Kind returns KindRect.
func (Rect) Kind() Kind { return KindRect }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.Pos.X + r.Width, Y: r.Pos.Y + r.Height}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Pos.X + r.Width/2, Y: r.Pos.Y + r.Height/2}
}

// Points returns the four corners, clockwise from the top-left in screen
// coordinates.
func (r Rect) Points() [4]Vec2 {
	return [4]Vec2{
		r.Pos,
		{X: r.Pos.X + r.Width, Y: r.Pos.Y},
		{X: r.Pos.X + r.Width, Y: r.Pos.Y + r.Height},
		{X: r.Pos.X, Y: r.Pos.Y + r.Height},
	}
}

// Polygon returns the rectangle as a 4-point polygon.
func (r Rect) Polygon() Polygon {
	pts := r.Points()
	return Polygon{Points: pts[:]}
}

// Union returns the smallest Rect containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	a, b := r.Max(), other.Max()
	minX, minY := math.Min(r.Pos.X, other.Pos.X), math.Min(r.Pos.Y, other.Pos.Y)
	return Rect{
		Pos:    Vec2{X: minX, Y: minY},
		Width:  math.Max(a.X, b.X) - minX,
		Height: math.Max(a.Y, b.Y) - minY,
	}
}

// Transform maps the rectangle. Without rotation or skew the result is
// still a Rect; otherwise it is the Polygon of the mapped corners.
func (r Rect) Transform(m Matrix) Shape {
	if m.HasRotationOrSkew() {
		pts := r.Points()
		out := make([]Vec2, len(pts))
		for i, p := range pts {
			out[i] = m.TransformPoint(p)
		}
		return Polygon{Points: out}
	}
	return RectFromPoints(m.TransformPoint(r.Pos), m.TransformPoint(r.Max()))
}

// BoundingBox returns the rectangle itself.
func (r Rect) BoundingBox() Rect {
	return r
}

// Area returns width * height.
func (r Rect) Area() float64 {
	return math.Abs(r.Width * r.Height)
}

// Contains reports whether p lies inside or on the border.
func (r Rect) Contains(p Vec2) bool {
	return TestRectPoint(r, p)
}

// RandomPoint returns a uniformly distributed point inside the rectangle.
func (r Rect) RandomPoint(rng Rand) Vec2 {
	return Vec2{
		X: r.Pos.X + rng.Float64()*r.Width,
		Y: r.Pos.Y + rng.Float64()*r.Height,
	}
}

// Raycast intersects the ray segment with the rectangle.
func (r Rect) Raycast(origin, direction Vec2) (RaycastHit, bool) {
	return RaycastRect(origin, direction, r)
}

// Collides reports whether r overlaps other.
func (r Rect) Collides(other Shape) bool {
	return TestShapeShape(r, other)
}
