package geom

import (
	"math"
	"testing"
)

func TestRaycastCircle_FractionConventions(t *testing.T) {
	c := NewCircle(V2(5, 0), 1)
	tests := []struct {
		name     string
		dir      Vec2
		fraction float64
	}{
		// Fraction is relative to the supplied direction, so a direction of
		// length 5 puts the hit at 0.8 and one of length 10 at 0.4.
		{"length 5", V2(5, 0), 0.8},
		{"length 10", V2(10, 0), 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := RaycastCircle(V2(0, 0), tt.dir, c)
			if !ok {
				t.Fatal("no hit")
			}
			if !hit.Point.Approx(V2(4, 0), 1e-12) {
				t.Errorf("Point = %v, want (4, 0)", hit.Point)
			}
			if !hit.Normal.Approx(V2(-1, 0), 1e-12) {
				t.Errorf("Normal = %v, want (-1, 0)", hit.Normal)
			}
			if math.Abs(hit.Fraction-tt.fraction) > 1e-12 {
				t.Errorf("Fraction = %v, want %v", hit.Fraction, tt.fraction)
			}
			// Fraction times the direction length is the distance travelled.
			if d := hit.Fraction * tt.dir.Len(); math.Abs(d-4) > 1e-12 {
				t.Errorf("Fraction*|dir| = %v, want 4", d)
			}
		})
	}

	// A unit direction is a segment of length one and falls short.
	if _, ok := RaycastCircle(V2(0, 0), V2(1, 0), c); ok {
		t.Error("unit-length ray reached a circle 4 units away")
	}
}

func TestRaycast_Shapes(t *testing.T) {
	origin := V2(0, 0)
	dir := V2(10, 0)
	tests := []struct {
		name     string
		shape    Shape
		hit      bool
		point    Vec2
		normal   Vec2
		fraction float64
	}{
		{"point on ray", Pt(3, 0), true, V2(3, 0), V2(-1, 0), 0.3},
		{"point off ray", Pt(3, 0.1), false, Vec2{}, Vec2{}, 0},
		{"line across", NewLine(V2(2, -1), V2(2, 1)), true, V2(2, 0), V2(-1, 0), 0.2},
		{"line too far", NewLine(V2(12, -1), V2(12, 1)), false, Vec2{}, Vec2{}, 0},
		{"line parallel", NewLine(V2(2, 1), V2(4, 1)), false, Vec2{}, Vec2{}, 0},
		{"rect front face", NewRect(V2(6, -1), 2, 2), true, V2(6, 0), V2(-1, 0), 0.6},
		{"rect beside", NewRect(V2(6, 1), 2, 2), false, Vec2{}, Vec2{}, 0},
		{"circle", NewCircle(V2(5, 0), 1), true, V2(4, 0), V2(-1, 0), 0.4},
		{"ellipse", NewEllipse(V2(5, 0), 2, 1, 0), true, V2(3, 0), V2(-1, 0), 0.3},
		{"ellipse rotated", NewEllipse(V2(5, 0), 2, 1, 90), true, V2(4, 0), V2(-1, 0), 0.4},
		{"polygon nearest edge", NewRect(V2(3, -1), 2, 2).Polygon(), true, V2(3, 0), V2(-1, 0), 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := Raycast(origin, dir, tt.shape)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if !ok {
				return
			}
			if !hit.Point.Approx(tt.point, 1e-9) {
				t.Errorf("Point = %v, want %v", hit.Point, tt.point)
			}
			if !hit.Normal.Approx(tt.normal, 1e-9) {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.normal)
			}
			if math.Abs(hit.Fraction-tt.fraction) > 1e-9 {
				t.Errorf("Fraction = %v, want %v", hit.Fraction, tt.fraction)
			}
			if hit.HasGridPos {
				t.Error("closed-form cast set a grid position")
			}
		})
	}
}

func TestRaycastRect_VerticalRay(t *testing.T) {
	r := NewRect(V2(-1, 4), 2, 2)
	hit, ok := RaycastRect(V2(0, 0), V2(0, 10), r)
	if !ok {
		t.Fatal("no hit")
	}
	if !hit.Point.Approx(V2(0, 4), 1e-12) || !hit.Normal.Approx(V2(0, -1), 1e-12) {
		t.Errorf("hit = %+v, want point (0, 4) normal (0, -1)", hit)
	}

	// Same ray shifted outside the slab on x.
	if _, ok := RaycastRect(V2(2, 0), V2(0, 10), r); ok {
		t.Error("vertical ray outside the x slab hit")
	}
}

func TestRaycastEllipse_NormalIsGradient(t *testing.T) {
	// Hit the top of an axis-aligned ellipse away from its vertices and
	// compare against the implicit-function gradient (x/rx^2, y/ry^2).
	e := NewEllipse(V2(0, 0), 4, 1, 0)
	hit, ok := RaycastEllipse(V2(2, 5), V2(0, -10), e)
	if !ok {
		t.Fatal("no hit")
	}
	wantY := math.Sqrt(1 - 4.0/16)
	if !hit.Point.Approx(V2(2, wantY), 1e-9) {
		t.Fatalf("Point = %v, want (2, %v)", hit.Point, wantY)
	}
	want := V2(2/16.0, wantY).Unit()
	if !hit.Normal.Approx(want, 1e-9) {
		t.Errorf("Normal = %v, want %v", hit.Normal, want)
	}

	// The same configuration rotated by 30 degrees rotates the normal too.
	m := Rotate(30)
	re := NewEllipse(V2(0, 0), 4, 1, 30)
	rhit, ok := RaycastEllipse(m.TransformPoint(V2(2, 5)), m.TransformVector(V2(0, -10)), re)
	if !ok {
		t.Fatal("no hit on rotated ellipse")
	}
	if !rhit.Normal.Approx(want.Rotate(30), 1e-9) {
		t.Errorf("rotated Normal = %v, want %v", rhit.Normal, want.Rotate(30))
	}
	if math.Abs(rhit.Fraction-hit.Fraction) > 1e-9 {
		t.Errorf("rotated Fraction = %v, want %v", rhit.Fraction, hit.Fraction)
	}
}

func TestRaycast_OriginInsideCircleHitsExit(t *testing.T) {
	hit, ok := RaycastCircle(V2(0, 0), V2(4, 0), NewCircle(V2(0, 0), 2))
	if !ok {
		t.Fatal("no hit")
	}
	if !hit.Point.Approx(V2(2, 0), 1e-12) || math.Abs(hit.Fraction-0.5) > 1e-12 {
		t.Errorf("hit = %+v, want exit at (2, 0), fraction 0.5", hit)
	}
}

func TestRaycastPolygon_KeepsNearestHit(t *testing.T) {
	p := lShape(t)
	// Enters the right arm from below, then would cross the top edge.
	hit, ok := RaycastPolygon(V2(1.5, -1), V2(0, 4), p)
	if !ok {
		t.Fatal("no hit")
	}
	if !hit.Point.Approx(V2(1.5, 0), 1e-12) || !hit.Normal.Approx(V2(0, -1), 1e-12) {
		t.Errorf("hit = %+v, want point (1.5, 0) normal (0, -1)", hit)
	}
	if math.Abs(hit.Fraction-0.25) > 1e-12 {
		t.Errorf("Fraction = %v, want 0.25", hit.Fraction)
	}
}

func TestRaycast_ZeroDirection(t *testing.T) {
	shapes := []Shape{Pt(0, 0), NewCircle(V2(0, 0), 1), NewEllipse(V2(0, 0), 2, 1, 10)}
	for _, s := range shapes {
		if _, ok := s.Raycast(V2(0, 0), Vec2{}); ok {
			t.Errorf("%v: zero direction reported a hit", s.Kind())
		}
	}
}
