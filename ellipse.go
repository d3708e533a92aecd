package geom

import (
	"math"

	"github.com/gogpu/geom/internal/mathutil"
)

// Ellipse is given by its center, the two radii along its own axes, and the
// rotation of those axes in degrees.
type Ellipse struct {
	Center           Vec2
	RadiusX, RadiusY float64
	Angle            float64
}

// NewEllipse creates an ellipse.
func NewEllipse(center Vec2, rx, ry, angle float64) Ellipse {
	return Ellipse{Center: center, RadiusX: rx, RadiusY: ry, Angle: angle}
}

func (Ellipse) sealed() {}

// Kind returns KindEllipse.
func (Ellipse) Kind() Kind { return KindEllipse }

// IsCircle reports whether both radii are equal.
func (e Ellipse) IsCircle() bool {
	return e.RadiusX == e.RadiusY
}

// mat2 returns the matrix mapping the unit circle onto the ellipse
// (relative to its center).
func (e Ellipse) mat2() mat2 {
	return mat2Rotation(mathutil.Deg2Rad(e.Angle)).mul(mat2Scale(e.RadiusX, e.RadiusY))
}

// UnitMatrix returns the affine map taking the unit circle at the origin
// onto the ellipse.
func (e Ellipse) UnitMatrix() Matrix {
	m := e.mat2().matrix()
	m.E, m.F = e.Center.X, e.Center.Y
	return m
}

// ellipseFromMat2 recovers the center-relative ellipse that t maps the unit
// circle onto. The image is the set p with |t⁻¹p| = 1, i.e. pᵀMp = 1 for
// M = (t⁻¹)ᵀt⁻¹; the radii are 1/sqrt of M's eigenvalues and the axes are
// its eigenvectors.
func ellipseFromMat2(t mat2) Ellipse {
	inv := t.inverse()
	m := inv.transpose().mul(inv)
	e1, e2, v1 := m.symmetricEigen()
	out := Ellipse{
		// The smaller eigenvalue gives the larger radius.
		RadiusX: 1 / math.Sqrt(e2),
		RadiusY: 1 / math.Sqrt(e1),
	}
	if e1 == e2 {
		return out
	}
	// X axis runs along the eigenvector of e2, perpendicular to v1.
	angle := mathutil.Rad2Deg(math.Atan2(v1.X, -v1.Y))
	switch {
	case angle > 90:
		angle -= 180
	case angle <= -90:
		angle += 180
	}
	out.Angle = angle
	return out
}

// Transform maps the ellipse. The linear part is applied to the ellipse
// matrix and the radii and angle are recovered from the result, so
// rotation combined with non-uniform scale stays exact.
func (e Ellipse) Transform(m Matrix) Shape {
	center := m.TransformPoint(e.Center)
	if e.Angle == 0 && !m.HasRotationOrSkew() {
		return Ellipse{
			Center:  center,
			RadiusX: math.Abs(m.A) * e.RadiusX,
			RadiusY: math.Abs(m.D) * e.RadiusY,
		}
	}
	out := ellipseFromMat2(linear(m).mul(e.mat2()))
	out.Center = center
	return out
}

// BoundingBox returns the tight axis-aligned bounds of the rotated ellipse.
func (e Ellipse) BoundingBox() Rect {
	t := e.mat2()
	hw := math.Hypot(t.a, t.b)
	hh := math.Hypot(t.c, t.d)
	return Rect{
		Pos:    Vec2{X: e.Center.X - hw, Y: e.Center.Y - hh},
		Width:  2 * hw,
		Height: 2 * hh,
	}
}

// Area returns pi * rx * ry.
func (e Ellipse) Area() float64 {
	return math.Pi * math.Abs(e.RadiusX*e.RadiusY)
}

// Contains reports whether p lies strictly inside the ellipse.
func (e Ellipse) Contains(p Vec2) bool {
	return TestEllipsePoint(e, p)
}

// RandomPoint returns a uniformly distributed point inside the ellipse.
func (e Ellipse) RandomPoint(r Rand) Vec2 {
	return e.mat2().transform(randomInUnitDisk(r)).Add(e.Center)
}

// Raycast intersects the ray segment with the ellipse.
func (e Ellipse) Raycast(origin, direction Vec2) (RaycastHit, bool) {
	return RaycastEllipse(origin, direction, e)
}

// Collides reports whether e overlaps other.
func (e Ellipse) Collides(other Shape) bool {
	return TestShapeShape(e, other)
}

// toUnitFrame returns the map from world space into the frame where e is
// the unit circle at the origin.
func (e Ellipse) toUnitFrame() Matrix {
	return e.UnitMatrix().Inverse()
}
