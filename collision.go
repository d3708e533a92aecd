package geom

import (
	"math"

	"github.com/gogpu/geom/internal/mathutil"
)

// Narrow-phase overlap tests.
//
// Every unordered pair of shape kinds has exactly one implementation. The
// dispatch table in TestShapeShape fills the mirrored slot by swapping the
// arguments, so TestShapeShape(a, b) == TestShapeShape(b, a) always holds.
//
// Boundary conventions: Rect containment is inclusive, Circle and Ellipse
// interiors are open, and rectangles that only share an edge do not collide
// under TestRectRect (use TestRectRect2 for touching-counts semantics).

type pairTest func(a, b Shape) bool

var pairTests = buildPairTests()

func buildPairTests() [kindCount][kindCount]pairTest {
	var t [kindCount][kindCount]pairTest
	set := func(a, b Kind, f pairTest) {
		t[a][b] = f
		if a != b {
			t[b][a] = func(x, y Shape) bool { return f(y, x) }
		}
	}

	set(KindPoint, KindPoint, func(a, b Shape) bool { return TestPointPoint(a.(Point), b.(Point)) })
	set(KindPoint, KindLine, func(a, b Shape) bool { return TestLinePoint(b.(Line), a.(Point).Pt) })
	set(KindPoint, KindRect, func(a, b Shape) bool { return TestRectPoint(b.(Rect), a.(Point).Pt) })
	set(KindPoint, KindCircle, func(a, b Shape) bool { return TestCirclePoint(b.(Circle), a.(Point).Pt) })
	set(KindPoint, KindEllipse, func(a, b Shape) bool { return TestEllipsePoint(b.(Ellipse), a.(Point).Pt) })
	set(KindPoint, KindPolygon, func(a, b Shape) bool { return TestPolygonPoint(b.(Polygon), a.(Point).Pt) })

	set(KindLine, KindLine, func(a, b Shape) bool { return TestLineLine(a.(Line), b.(Line)) })
	set(KindLine, KindRect, func(a, b Shape) bool { return TestRectLine(b.(Rect), a.(Line)) })
	set(KindLine, KindCircle, func(a, b Shape) bool { return TestLineCircle(a.(Line), b.(Circle)) })
	set(KindLine, KindEllipse, func(a, b Shape) bool { return TestEllipseLine(b.(Ellipse), a.(Line)) })
	set(KindLine, KindPolygon, func(a, b Shape) bool { return TestLinePolygon(a.(Line), b.(Polygon)) })

	set(KindRect, KindRect, func(a, b Shape) bool { return TestRectRect(a.(Rect), b.(Rect)) })
	set(KindRect, KindCircle, func(a, b Shape) bool { return TestRectCircle(a.(Rect), b.(Circle)) })
	set(KindRect, KindEllipse, func(a, b Shape) bool { return TestEllipseRect(b.(Ellipse), a.(Rect)) })
	set(KindRect, KindPolygon, func(a, b Shape) bool { return TestRectPolygon(a.(Rect), b.(Polygon)) })

	set(KindCircle, KindCircle, func(a, b Shape) bool { return TestCircleCircle(a.(Circle), b.(Circle)) })
	set(KindCircle, KindEllipse, func(a, b Shape) bool { return TestCircleEllipse(a.(Circle), b.(Ellipse)) })
	set(KindCircle, KindPolygon, func(a, b Shape) bool { return TestCirclePolygon(a.(Circle), b.(Polygon)) })

	set(KindEllipse, KindEllipse, func(a, b Shape) bool { return TestEllipseEllipse(a.(Ellipse), b.(Ellipse)) })
	set(KindEllipse, KindPolygon, func(a, b Shape) bool { return TestEllipsePolygon(a.(Ellipse), b.(Polygon)) })

	set(KindPolygon, KindPolygon, func(a, b Shape) bool { return TestPolygonPolygon(a.(Polygon), b.(Polygon)) })
	return t
}

// TestShapeShape reports whether two shapes overlap. The result does not
// depend on argument order. A nil shape never collides.
func TestShapeShape(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	return pairTests[a.Kind()][b.Kind()](a, b)
}

// TestPointPoint reports whether both points are equal.
func TestPointPoint(p1, p2 Point) bool {
	return p1.Pt.Eq(p2.Pt)
}

// TestLinePoint reports whether p lies on the segment l.
func TestLinePoint(l Line, p Vec2) bool {
	v1 := p.Sub(l.P1)
	v2 := l.P2.Sub(l.P1)
	ll := v2.Dot(v2)
	if ll == 0 {
		return l.P1.Eq(p)
	}
	if math.Abs(v1.Cross(v2)) > mathutil.Epsilon {
		return false
	}
	t := v1.Dot(v2) / ll
	return t >= 0 && t <= 1
}

// TestLineLine reports whether two segments share a point. Collinear
// segments collide when they overlap.
func TestLineLine(l1, l2 Line) bool {
	if _, ok := LineIntersectionT(l1, l2); ok {
		return true
	}
	d1 := l1.P2.Sub(l1.P1)
	if d1.Cross(l2.P2.Sub(l2.P1)) != 0 || d1.Cross(l2.P1.Sub(l1.P1)) != 0 {
		return false
	}
	return TestLinePoint(l1, l2.P1) || TestLinePoint(l1, l2.P2) ||
		TestLinePoint(l2, l1.P1) || TestLinePoint(l2, l1.P2)
}

// TestRectPoint reports whether p is inside r or on its border.
func TestRectPoint(r Rect, p Vec2) bool {
	return p.X >= r.Pos.X && p.X <= r.Pos.X+r.Width &&
		p.Y >= r.Pos.Y && p.Y <= r.Pos.Y+r.Height
}

// TestRectRect reports whether two rectangles overlap with positive area.
// Rectangles that only touch along an edge or a corner do not collide.
func TestRectRect(r1, r2 Rect) bool {
	return r1.Pos.X+r1.Width > r2.Pos.X &&
		r1.Pos.X < r2.Pos.X+r2.Width &&
		r1.Pos.Y+r1.Height > r2.Pos.Y &&
		r1.Pos.Y < r2.Pos.Y+r2.Height
}

// TestRectRect2 is TestRectRect with touching edges counted as collisions.
func TestRectRect2(r1, r2 Rect) bool {
	return r1.Pos.X+r1.Width >= r2.Pos.X &&
		r1.Pos.X <= r2.Pos.X+r2.Width &&
		r1.Pos.Y+r1.Height >= r2.Pos.Y &&
		r1.Pos.Y <= r2.Pos.Y+r2.Height
}

// TestRectLine reports whether l touches r.
func TestRectLine(r Rect, l Line) bool {
	if TestRectPoint(r, l.P1) || TestRectPoint(r, l.P2) {
		return true
	}
	pts := r.Points()
	return TestLineLine(l, Line{P1: pts[0], P2: pts[1]}) ||
		TestLineLine(l, Line{P1: pts[1], P2: pts[2]}) ||
		TestLineLine(l, Line{P1: pts[2], P2: pts[3]}) ||
		TestLineLine(l, Line{P1: pts[3], P2: pts[0]})
}

// TestRectCircle clamps the circle center onto r and compares squared
// distances.
func TestRectCircle(r Rect, c Circle) bool {
	nearest := Vec2{
		X: mathutil.Clamp(c.Center.X, r.Pos.X, r.Pos.X+r.Width),
		Y: mathutil.Clamp(c.Center.Y, r.Pos.Y, r.Pos.Y+r.Height),
	}
	return nearest.SDist(c.Center) < c.Radius*c.Radius
}

// TestRectPolygon tests r as a four-point polygon.
func TestRectPolygon(r Rect, p Polygon) bool {
	return TestPolygonPolygon(r.Polygon(), p)
}

// TestCirclePoint reports whether p lies strictly inside c.
func TestCirclePoint(c Circle, p Vec2) bool {
	return c.Center.SDist(p) < c.Radius*c.Radius
}

// TestCircleCircle reports whether two circles overlap. Touching circles do
// not collide.
func TestCircleCircle(c1, c2 Circle) bool {
	rr := c1.Radius + c2.Radius
	return c1.Center.SDist(c2.Center) < rr*rr
}

// closestOnSegment returns the point of l nearest to p.
func closestOnSegment(l Line, p Vec2) Vec2 {
	d := l.P2.Sub(l.P1)
	ll := d.Dot(d)
	if ll == 0 {
		return l.P1
	}
	t := mathutil.Clamp(p.Sub(l.P1).Dot(d)/ll, 0, 1)
	return l.P1.Add(d.Scale(t))
}

// TestLineCircle reports whether the segment enters the open disk of c.
func TestLineCircle(l Line, c Circle) bool {
	return closestOnSegment(l, c.Center).SDist(c.Center) < c.Radius*c.Radius
}

// TestCirclePolygon reports whether c overlaps p, either because the center
// is inside p or because an edge enters the circle.
func TestCirclePolygon(c Circle, p Polygon) bool {
	if TestPolygonPoint(p, c.Center) {
		return true
	}
	for i := range p.Points {
		if TestLineCircle(p.edge(i), c) {
			return true
		}
	}
	return false
}

// TestLinePolygon reports whether l touches p, either with an endpoint
// inside or by crossing an edge.
func TestLinePolygon(l Line, p Polygon) bool {
	if TestPolygonPoint(p, l.P1) || TestPolygonPoint(p, l.P2) {
		return true
	}
	for i := range p.Points {
		if TestLineLine(l, p.edge(i)) {
			return true
		}
	}
	return false
}

// TestPolygonPoint uses the even-odd rule with half-open edges, so points on
// the boundary may land on either side.
func TestPolygonPoint(p Polygon, pt Vec2) bool {
	inside := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// TestPolygonPolygon tests every edge of p1 against p2, then falls back to
// containment so a polygon nested entirely inside the other still collides.
func TestPolygonPolygon(p1, p2 Polygon) bool {
	for i := range p1.Points {
		if TestLinePolygon(p1.edge(i), p2) {
			return true
		}
	}
	for _, pt := range p2.Points {
		if TestPolygonPoint(p1, pt) {
			return true
		}
	}
	return false
}

// TestEllipsePoint reports whether p lies strictly inside e.
func TestEllipsePoint(e Ellipse, p Vec2) bool {
	v := p.Sub(e.Center).Rotate(-e.Angle)
	return v.X*v.X/(e.RadiusX*e.RadiusX)+v.Y*v.Y/(e.RadiusY*e.RadiusY) < 1
}

var unitCircle = Circle{Radius: 1}

// TestEllipseLine maps l into the unit circle frame of e and tests it there.
func TestEllipseLine(e Ellipse, l Line) bool {
	if e.IsCircle() {
		return TestLineCircle(l, Circle{Center: e.Center, Radius: e.RadiusX})
	}
	return TestLineCircle(l.Transform(e.toUnitFrame()).(Line), unitCircle)
}

// TestEllipseRect tests r as a four-point polygon.
func TestEllipseRect(e Ellipse, r Rect) bool {
	return TestEllipsePolygon(e, r.Polygon())
}

// TestEllipsePolygon maps p into the unit circle frame of e and tests it
// there.
func TestEllipsePolygon(e Ellipse, p Polygon) bool {
	if e.IsCircle() {
		return TestCirclePolygon(Circle{Center: e.Center, Radius: e.RadiusX}, p)
	}
	var q Polygon
	p.TransformTo(e.toUnitFrame(), &q)
	return TestCirclePolygon(unitCircle, q)
}

// TestCircleEllipse reports whether c overlaps e.
func TestCircleEllipse(c Circle, e Ellipse) bool {
	if e.IsCircle() {
		return TestCircleCircle(c, Circle{Center: e.Center, Radius: e.RadiusX})
	}
	return TestEllipseEllipse(c.Ellipse(), e)
}

// TestEllipseEllipse decides overlap algebraically. With A and B the conic
// matrices of the two ellipses (negative inside), the monic characteristic
// cubic of det(λA + B) has all real roots, two of them distinct and
// positive, exactly when the ellipses are separated. Touching ellipses give
// a double positive root and do not collide.
//
// See Etayo, Gonzalez-Vega, del Rio, "A new approach to characterizing the
// relative position of two ellipses depending on one parameter" (2006).
func TestEllipseEllipse(e1, e2 Ellipse) bool {
	if e1.IsCircle() && e2.IsCircle() {
		return TestCircleCircle(
			Circle{Center: e1.Center, Radius: e1.RadiusX},
			Circle{Center: e2.Center, Radius: e2.RadiusX},
		)
	}
	return !ellipsesSeparated(e1, e2)
}

func ellipsesSeparated(e1, e2 Ellipse) bool {
	// Work relative to e1's center to keep the coefficients small.
	ma := conicMatrix(e1, e1.Center)
	mb := conicMatrix(e2, e1.Center)
	a, b, c, d := pencilCubic(ma, mb)
	b, c, d = b/a, c/a, d/a

	disc := 18*b*c*d - 4*b*b*b*d + b*b*c*c - 4*c*c*c - 27*d*d
	return disc >= 0 && d > 0 && (b < 0 || c < 0)
}
