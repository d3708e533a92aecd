package geom

import (
	"math"
	"testing"
)

func matricesEqual(m1, m2 Matrix, eps float64) bool {
	return math.Abs(m1.A-m2.A) < eps && math.Abs(m1.B-m2.B) < eps &&
		math.Abs(m1.C-m2.C) < eps && math.Abs(m1.D-m2.D) < eps &&
		math.Abs(m1.E-m2.E) < eps && math.Abs(m1.F-m2.F) < eps
}

func TestMatrix_InverseRoundTrip(t *testing.T) {
	matrices := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(V2(10, -4))},
		{"rotate 37", Rotate(37)},
		{"scale", Scale(V2(2, 0.25))},
		{"skew", Skew(V2(20, 10))},
		{"composite", Translate(V2(3, 4)).Multiply(Rotate(-120)).Multiply(Scale(V2(3, -2)))},
	}
	points := []Vec2{V2(0, 0), V2(1, 2), V2(-7.5, 3.25), V2(1e3, -1e3)}

	for _, tt := range matrices {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Inverse()
			for _, p := range points {
				got := inv.TransformPoint(tt.m.TransformPoint(p))
				if !got.Approx(p, 1e-9) {
					t.Errorf("inverse round trip of %v = %v", p, got)
				}
			}
			if !matricesEqual(tt.m.Multiply(inv), Identity(), 1e-9) {
				t.Errorf("m * inverse = %+v, want identity", tt.m.Multiply(inv))
			}
		})
	}
}

func TestMatrix_InverseDegenerate(t *testing.T) {
	inv := Scale(V2(0, 1)).Inverse()
	if !math.IsInf(inv.A, 0) && !math.IsNaN(inv.A) {
		t.Errorf("degenerate inverse A = %v, want non-finite", inv.A)
	}
}

func TestMatrix_RotationDecomposition(t *testing.T) {
	for deg := -179.0; deg <= 180; deg += 7.5 {
		got := Rotate(deg).Rotation()
		if math.Abs(got-deg) > 1e-9 {
			t.Errorf("Rotate(%v).Rotation() = %v", deg, got)
		}
	}
	if got := Rotate(180).Rotation(); math.Abs(got-180) > 1e-9 {
		t.Errorf("Rotate(180).Rotation() = %v, want 180", got)
	}
}

func TestMatrix_ScaleDecomposition(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want Vec2
	}{
		{"uniform", Scale(V2(2, 2)), V2(2, 2)},
		{"non-uniform", Scale(V2(3, 0.5)), V2(3, 0.5)},
		{"rotated", Rotate(30).Multiply(Scale(V2(4, 5))), V2(4, 5)},
		{"translated", Translate(V2(9, 9)).Multiply(Scale(V2(1.5, 2.5))), V2(1.5, 2.5)},
		{"reflection", Scale(V2(1, -1)), V2(1, -1)},
		{"zero", Matrix{}, V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleFactors(); !got.Approx(tt.want, 1e-9) {
				t.Errorf("ScaleFactors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_MultiplyOrder(t *testing.T) {
	// Translate after scale: the point is scaled first.
	m := Translate(V2(10, 0)).Multiply(Scale(V2(2, 2)))
	if got := m.TransformPoint(V2(1, 1)); !got.Approx(V2(12, 2), 1e-12) {
		t.Errorf("T*S applied to (1,1) = %v, want (12,2)", got)
	}
	m = Scale(V2(2, 2)).Multiply(Translate(V2(10, 0)))
	if got := m.TransformPoint(V2(1, 1)); !got.Approx(V2(22, 2), 1e-12) {
		t.Errorf("S*T applied to (1,1) = %v, want (22,2)", got)
	}
}

func TestMatrix_SelfOperationsMatchMultiply(t *testing.T) {
	base := Translate(V2(5, -3)).Multiply(Rotate(20))

	m := base
	m.TranslateSelf(V2(2, 7))
	if want := base.Multiply(Translate(V2(2, 7))); !matricesEqual(m, want, 1e-12) {
		t.Errorf("TranslateSelf = %+v, want %+v", m, want)
	}

	m = base
	m.RotateSelf(45)
	if want := base.Multiply(Rotate(45)); !matricesEqual(m, want, 1e-12) {
		t.Errorf("RotateSelf = %+v, want %+v", m, want)
	}

	m = base
	m.ScaleSelf(V2(2, 3))
	if want := base.Multiply(Scale(V2(2, 3))); !matricesEqual(m, want, 1e-12) {
		t.Errorf("ScaleSelf = %+v, want %+v", m, want)
	}

	m = base
	m.SkewSelf(V2(15, 0))
	if want := base.Multiply(Skew(V2(15, 0))); !matricesEqual(m, want, 1e-12) {
		t.Errorf("SkewSelf = %+v, want %+v", m, want)
	}
}

func TestMatrix_TransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(V2(100, 100)).Multiply(Rotate(90))
	if got := m.TransformVector(V2(1, 0)); !got.Approx(V2(0, 1), 1e-12) {
		t.Errorf("TransformVector = %v, want (0,1)", got)
	}
	var dst Vec2
	m.TransformPointTo(&dst, V2(1, 0))
	if !dst.Approx(V2(100, 101), 1e-12) {
		t.Errorf("TransformPointTo = %v, want (100,101)", dst)
	}
	m.TransformVectorTo(&dst, dst)
	if want := m.TransformVector(V2(100, 101)); !dst.Approx(want, 1e-9) {
		t.Errorf("TransformVectorTo aliasing = %v, want %v", dst, want)
	}
}

func TestMatrix_Predicates(t *testing.T) {
	tests := []struct {
		name                          string
		m                             Matrix
		translation, rotation, scale  bool
		rotationOrSkew, translateOnly bool
	}{
		{"identity", Identity(), false, false, false, false, true},
		{"translate", Translate(V2(1, 0)), true, false, false, false, true},
		{"rotate", Rotate(10), false, true, false, true, false},
		{"scale", Scale(V2(2, 1)), false, false, true, false, false},
		{"skew", Skew(V2(10, 0)), false, false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.HasTranslation(); got != tt.translation {
				t.Errorf("HasTranslation() = %v", got)
			}
			if got := tt.m.HasRotation(); got != tt.rotation {
				t.Errorf("HasRotation() = %v", got)
			}
			if got := tt.m.HasScale(); got != tt.scale {
				t.Errorf("HasScale() = %v", got)
			}
			if got := tt.m.HasRotationOrSkew(); got != tt.rotationOrSkew {
				t.Errorf("HasRotationOrSkew() = %v", got)
			}
			if got := tt.m.IsTranslationOnly(); got != tt.translateOnly {
				t.Errorf("IsTranslationOnly() = %v", got)
			}
		})
	}
}

func TestMatrix_SkewAngles(t *testing.T) {
	got := Skew(V2(30, 0)).SkewAngles()
	if math.Abs(got.X-30) > 1e-9 || got.Y != 0 {
		t.Errorf("Skew(30,0).SkewAngles() = %v, want (30,0)", got)
	}
}

func TestMaxScaleFactor(t *testing.T) {
	const eps = 1e-10

	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1.0},
		{"pure translation", Translate(V2(10, 20)), 1.0},
		{"uniform scale 2", Scale(V2(2, 2)), 2.0},
		{"non-uniform scale 1,4", Scale(V2(1, 4)), 4.0},
		{"negative scale -2,1", Scale(V2(-2, 1)), 2.0},
		{"zero scale both", Scale(V2(0, 0)), 0.0},
		{"rotation 45deg", Rotate(45), 1.0},
		{"scale 3,1 then rotate 45deg", Scale(V2(3, 1)).Multiply(Rotate(45)), 3.0},
		// [1 1; 0 1]: eigenvalues of M^T M are (3 +/- sqrt(5)) / 2.
		{"shear 45", Skew(V2(45, 0)), math.Sqrt((3 + math.Sqrt(5)) / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.MaxScaleFactor()
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Matrix%+v.MaxScaleFactor() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}
