package geom

import "testing"

// BenchmarkTestShapeShape measures dispatch plus the pair test for a few
// representative pairs.
func BenchmarkTestShapeShape(b *testing.B) {
	poly := Polygon{Points: []Vec2{V2(0, 0), V2(2, 0), V2(2, 1), V2(1, 1), V2(1, 2), V2(0, 2)}}
	pairs := []struct {
		name string
		a, b Shape
	}{
		{"rect-rect", NewRect(V2(0, 0), 2, 2), NewRect(V2(1, 1), 2, 2)},
		{"circle-polygon", NewCircle(V2(1.6, 1.6), 0.3), poly},
		{"ellipse-ellipse", NewEllipse(V2(0, 0), 3, 1, 45), NewEllipse(V2(3, -3), 3, 1, 45)},
		{"polygon-polygon", poly, NewRect(V2(1.2, 1.2), 0.6, 0.6).Polygon()},
	}

	for _, p := range pairs {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				TestShapeShape(p.a, p.b)
			}
		})
	}
}

func BenchmarkRaycastGrid(b *testing.B) {
	hit := SolidCells(V2(40, 25))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		RaycastGrid(V2(0.5, 0.5), V2(40, 25), hit)
	}
}

func BenchmarkSAT(b *testing.B) {
	p1 := NewRect(V2(0, 0), 1, 1).Polygon()
	p2 := Polygon{Points: []Vec2{V2(0.75, 0.5), V2(1.75, -0.5), V2(2.75, 0.5), V2(1.75, 1.5)}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SAT(p1, p2)
	}
}

// BenchmarkTriangulate triangulates a 64-point star.
func BenchmarkTriangulate(b *testing.B) {
	const n = 64
	pts := make([]Vec2, n)
	for i := range pts {
		r := 10.0
		if i%2 == 1 {
			r = 4
		}
		pts[i] = FromAngle(360 * float64(i) / n).Scale(r)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Triangulate(pts)
	}
}

// BenchmarkPolygonTransform compares the allocating Transform with
// TransformTo reusing a buffer.
func BenchmarkPolygonTransform(b *testing.B) {
	p := NewRect(V2(0, 0), 10, 10).Polygon()
	m := Translate(V2(5, 5)).Multiply(Rotate(30))

	b.Run("Transform", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = p.Transform(m)
		}
	})
	b.Run("TransformTo", func(b *testing.B) {
		var dst Polygon
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			p.TransformTo(m, &dst)
		}
	})
}
