package geom

import (
	"testing"

	"golang.org/x/image/math/f64"
)

func TestAff3RoundTrip(t *testing.T) {
	m := Translate(V2(3, -2)).Multiply(Rotate(30)).Multiply(Scale(V2(2, 0.5)))
	got := MatrixFromAff3(m.Aff3())
	if got != m {
		t.Errorf("MatrixFromAff3(Aff3()) = %+v, want %+v", got, m)
	}
}

func TestAff3Layout(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := f64.Aff3{1, 3, 5, 2, 4, 6}
	if got := m.Aff3(); got != want {
		t.Fatalf("Aff3() = %v, want %v", got, want)
	}

	// Applying the row-major form by hand must agree with TransformPoint.
	a := m.Aff3()
	p := V2(7, -1)
	manual := V2(a[0]*p.X+a[1]*p.Y+a[2], a[3]*p.X+a[4]*p.Y+a[5])
	if !manual.Approx(m.TransformPoint(p), 1e-12) {
		t.Errorf("row-major apply = %v, TransformPoint = %v", manual, m.TransformPoint(p))
	}
}

func TestVecF64(t *testing.T) {
	v := V2(1.5, -4)
	if got := v.F64(); got != (f64.Vec2{1.5, -4}) {
		t.Errorf("F64() = %v", got)
	}
	if got := VecFromF64(v.F64()); got != v {
		t.Errorf("VecFromF64(F64()) = %v, want %v", got, v)
	}
}
