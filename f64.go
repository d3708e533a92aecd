package geom

import "golang.org/x/image/math/f64"

// Interop with golang.org/x/image, whose draw and vector packages describe
// transforms as f64.Aff3 (row-major 2x3) and points as f64.Vec2.

// Aff3 returns m in the row-major layout used by golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.C, m.E,
		m.B, m.D, m.F,
	}
}

// MatrixFromAff3 converts a row-major x/image affine transform.
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], C: a[1], E: a[2],
		B: a[3], D: a[4], F: a[5],
	}
}

// F64 returns v as an f64.Vec2.
func (v Vec2) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

// VecFromF64 converts an f64.Vec2.
func VecFromF64(v f64.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}
