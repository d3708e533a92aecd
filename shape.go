package geom

// Kind identifies a concrete Shape variant.
type Kind uint8

// Shape variants, in dispatch-table order.
const (
	KindPoint Kind = iota
	KindLine
	KindRect
	KindCircle
	KindEllipse
	KindPolygon

	kindCount
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindRect:
		return "Rect"
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Shape is the closed set of geometric primitives understood by the kernel.
// The set is sealed: only Point, Line, Rect, Circle, Ellipse and Polygon
// implement it.
type Shape interface {
	// Kind returns the concrete variant.
	Kind() Kind

	// Transform returns the shape mapped by m. The result may be a different
	// variant (a rotated Rect is a Polygon, a Circle becomes an Ellipse).
	Transform(m Matrix) Shape

	// BoundingBox returns the axis-aligned bounds.
	BoundingBox() Rect

	// Area returns the enclosed area, never negative.
	Area() float64

	// Contains reports whether p lies inside the shape.
	Contains(p Vec2) bool

	// RandomPoint samples a point of the shape using r.
	RandomPoint(r Rand) Vec2

	// Raycast intersects the segment origin → origin+direction with the
	// shape and returns the first hit.
	Raycast(origin, direction Vec2) (RaycastHit, bool)

	// Collides reports whether the shape overlaps other.
	Collides(other Shape) bool

	sealed()
}

// Rand is the random source used by RandomPoint. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

var (
	_ Shape = Point{}
	_ Shape = Line{}
	_ Shape = Rect{}
	_ Shape = Circle{}
	_ Shape = Ellipse{}
	_ Shape = Polygon{}
)
