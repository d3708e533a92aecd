package geom

import "math"

// mat2 is a 2x2 matrix in row-major order:
//
//	| a  b |
//	| c  d |
//
// It only backs the ellipse representation: an ellipse is the image of the
// unit circle under a mat2 plus a center offset.
type mat2 struct {
	a, b, c, d float64
}

func mat2Rotation(rad float64) mat2 {
	sin, cos := math.Sincos(rad)
	return mat2{a: cos, b: -sin, c: sin, d: cos}
}

func mat2Scale(x, y float64) mat2 {
	return mat2{a: x, d: y}
}

func (m mat2) mul(o mat2) mat2 {
	return mat2{
		a: m.a*o.a + m.b*o.c,
		b: m.a*o.b + m.b*o.d,
		c: m.c*o.a + m.d*o.c,
		d: m.c*o.b + m.d*o.d,
	}
}

func (m mat2) transform(v Vec2) Vec2 {
	return Vec2{X: m.a*v.X + m.b*v.Y, Y: m.c*v.X + m.d*v.Y}
}

func (m mat2) det() float64 {
	return m.a*m.d - m.b*m.c
}

func (m mat2) transpose() mat2 {
	return mat2{a: m.a, b: m.c, c: m.b, d: m.d}
}

func (m mat2) inverse() mat2 {
	det := m.det()
	return mat2{a: m.d / det, b: -m.b / det, c: -m.c / det, d: m.a / det}
}

// symmetricEigen returns the eigenvalues (e1 >= e2) of a symmetric matrix
// and the unit eigenvector belonging to e1. The eigenvector of e2 is its
// perpendicular.
func (m mat2) symmetricEigen() (e1, e2 float64, v1 Vec2) {
	p, q, r := m.a, m.b, m.d
	half := (p + r) / 2
	disc := math.Hypot((p-r)/2, q)
	e1, e2 = half+disc, half-disc

	switch {
	case q != 0:
		// Pick the better conditioned of the two equivalent forms.
		u := Vec2{X: e1 - r, Y: q}
		w := Vec2{X: q, Y: e1 - p}
		if w.SLen() > u.SLen() {
			u = w
		}
		v1 = u.Unit()
	case p >= r:
		v1 = Vec2{X: 1}
	default:
		v1 = Vec2{Y: 1}
	}
	return e1, e2, v1
}

// matrix embeds m as the linear part of an affine Matrix.
func (m mat2) matrix() Matrix {
	return Matrix{A: m.a, B: m.c, C: m.b, D: m.d}
}

// linear returns the linear part of an affine Matrix.
func linear(m Matrix) mat2 {
	return mat2{a: m.A, b: m.C, c: m.B, d: m.D}
}
