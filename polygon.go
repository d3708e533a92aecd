package geom

import "math"

// minPolygonPoints is the smallest point count accepted by NewPolygon.
const minPolygonPoints = 3

// Polygon is a simple polygon given by its ordered vertices. The closing
// edge from the last point back to the first is implicit.
type Polygon struct {
	Points []Vec2
}

// NewPolygon creates a polygon from at least three points. The slice is used
// as is, not copied.
func NewPolygon(points []Vec2) (Polygon, error) {
	if len(points) < minPolygonPoints {
		return Polygon{}, &PointCountError{Got: len(points), Need: minPolygonPoints}
	}
	return Polygon{Points: points}, nil
}

func (Polygon) sealed() {}

// Kind returns KindPolygon.
func (Polygon) Kind() Kind { return KindPolygon }

// Transform maps every vertex into a new polygon.
func (p Polygon) Transform(m Matrix) Shape {
	var out Polygon
	p.TransformTo(m, &out)
	return out
}

// TransformTo maps every vertex into dst, reusing dst's backing array when it
// is large enough. dst must not share storage with p.
func (p Polygon) TransformTo(m Matrix, dst *Polygon) {
	if cap(dst.Points) < len(p.Points) {
		dst.Points = make([]Vec2, len(p.Points))
	}
	dst.Points = dst.Points[:len(p.Points)]
	for i, pt := range p.Points {
		m.TransformPointTo(&dst.Points[i], pt)
	}
}

// BoundingBox returns the bounds of the vertices.
func (p Polygon) BoundingBox() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{Pos: Vec2{X: minX, Y: minY}, Width: maxX - minX, Height: maxY - minY}
}

// signedArea returns twice the signed shoelace area. It is positive for
// counter-clockwise winding in a Y-up frame.
func signedArea(points []Vec2) float64 {
	var sum float64
	prev := points[len(points)-1]
	for _, cur := range points {
		sum += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	return sum
}

// Area returns the enclosed area regardless of winding.
func (p Polygon) Area() float64 {
	if len(p.Points) < minPolygonPoints {
		return 0
	}
	return math.Abs(signedArea(p.Points)) / 2
}

// Centroid returns the area centroid.
func (p Polygon) Centroid() Vec2 {
	var cx, cy float64
	prev := p.Points[len(p.Points)-1]
	for _, cur := range p.Points {
		cross := prev.Cross(cur)
		cx += (prev.X + cur.X) * cross
		cy += (prev.Y + cur.Y) * cross
		prev = cur
	}
	a := signedArea(p.Points) * 3
	return Vec2{X: cx / a, Y: cy / a}
}

// Contains uses the even-odd rule. Self-intersecting input is not rejected
// and gives an undefined answer.
func (p Polygon) Contains(q Vec2) bool {
	return TestPolygonPoint(p, q)
}

// IsConvex reports whether every turn along the boundary has the same
// orientation. Collinear vertices are allowed.
func (p Polygon) IsConvex() bool {
	n := len(p.Points)
	if n < minPolygonPoints {
		return false
	}
	var sign float64
	for i := range n {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// RandomPoint returns a uniformly distributed point inside the polygon. The
// polygon is triangulated and a triangle is chosen with probability
// proportional to its area. If triangulation fails the first vertex is
// returned.
func (p Polygon) RandomPoint(r Rand) Vec2 {
	tris := Triangulate(p.Points)
	if len(tris) == 0 {
		return p.Points[0]
	}
	var total float64
	areas := make([]float64, len(tris))
	for i, tri := range tris {
		areas[i] = tri.Area()
		total += areas[i]
	}
	pick := r.Float64() * total
	chosen := tris[len(tris)-1]
	for i, a := range areas {
		if pick < a {
			chosen = tris[i]
			break
		}
		pick -= a
	}
	return chosen.randomPoint(r)
}

// Raycast intersects the ray segment with every edge and keeps the first hit.
func (p Polygon) Raycast(origin, direction Vec2) (RaycastHit, bool) {
	return RaycastPolygon(origin, direction, p)
}

// Collides reports whether p overlaps other.
func (p Polygon) Collides(other Shape) bool {
	return TestShapeShape(p, other)
}

// edge returns the edge from vertex i to vertex i+1 (wrapping).
func (p Polygon) edge(i int) Line {
	return Line{P1: p.Points[i], P2: p.Points[(i+1)%len(p.Points)]}
}
