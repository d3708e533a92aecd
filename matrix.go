package geom

import (
	"math"

	"github.com/gogpu/geom/internal/mathutil"
)

// decomposeEpsilon absorbs the rounding left by sin/cos in decomposed factors.
const decomposeEpsilon = 1e-12

// Matrix represents a 2D affine transformation in canvas layout:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Angles are in degrees.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(t Vec2) Matrix {
	return Matrix{A: 1, D: 1, E: t.X, F: t.Y}
}

// Scale creates a scaling matrix.
func Scale(s Vec2) Matrix {
	return Matrix{A: s.X, D: s.Y}
}

// Rotate creates a rotation matrix (angle in degrees).
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(mathutil.Deg2Rad(deg))
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Skew creates a skew matrix from the skew angles along X and Y in degrees.
func Skew(deg Vec2) Matrix {
	return Matrix{
		A: 1, B: math.Tan(mathutil.Deg2Rad(deg.Y)),
		C: math.Tan(mathutil.Deg2Rad(deg.X)), D: 1,
	}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// MultiplySelf replaces m with m * other.
func (m *Matrix) MultiplySelf(other Matrix) {
	*m = m.Multiply(other)
}

// TranslateSelf appends a translation in local space.
func (m *Matrix) TranslateSelf(t Vec2) {
	m.E += t.X*m.A + t.Y*m.C
	m.F += t.X*m.B + t.Y*m.D
}

// RotateSelf appends a rotation (degrees) in local space.
func (m *Matrix) RotateSelf(deg float64) {
	sin, cos := math.Sincos(mathutil.Deg2Rad(deg))
	a, b, c, d := m.A, m.B, m.C, m.D
	m.A = cos*a + sin*c
	m.B = cos*b + sin*d
	m.C = cos*c - sin*a
	m.D = cos*d - sin*b
}

// ScaleSelf appends a scale in local space.
func (m *Matrix) ScaleSelf(s Vec2) {
	m.A *= s.X
	m.B *= s.X
	m.C *= s.Y
	m.D *= s.Y
}

// SkewSelf appends a skew (degrees) in local space.
func (m *Matrix) SkewSelf(deg Vec2) {
	m.MultiplySelf(Skew(deg))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// TransformPointTo stores the transformed point in dst.
func (m Matrix) TransformPointTo(dst *Vec2, p Vec2) {
	x := m.A*p.X + m.C*p.Y + m.E
	dst.Y = m.B*p.X + m.D*p.Y + m.F
	dst.X = x
}

// TransformVectorTo stores the transformed vector in dst.
func (m Matrix) TransformVectorTo(dst *Vec2, v Vec2) {
	x := m.A*v.X + m.C*v.Y
	dst.Y = m.B*v.X + m.D*v.Y
	dst.X = x
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse matrix.
// The matrix must not be degenerate: a zero determinant yields Inf/NaN entries.
func (m Matrix) Inverse() Matrix {
	det := m.Det()
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}
}

// Translation returns the translation component.
func (m Matrix) Translation() Vec2 {
	return Vec2{X: m.E, Y: m.F}
}

// Rotation returns the rotation component in degrees, in (-180, 180].
func (m Matrix) Rotation() float64 {
	switch {
	case m.A != 0 || m.B != 0:
		return mathutil.Rad2Deg(math.Atan2(m.B, m.A))
	case m.C != 0 || m.D != 0:
		return mathutil.Rad2Deg(math.Atan2(-m.C, m.D))
	default:
		return 0
	}
}

// ScaleFactors returns the scale component after removing rotation.
// The Y factor carries the sign of the determinant, so reflections show up
// as a negative Y scale.
func (m Matrix) ScaleFactors() Vec2 {
	det := m.Det()
	switch {
	case m.A != 0 || m.B != 0:
		r := math.Hypot(m.A, m.B)
		return Vec2{X: r, Y: det / r}
	case m.C != 0 || m.D != 0:
		s := math.Hypot(m.C, m.D)
		return Vec2{X: det / s, Y: s}
	default:
		return Vec2{}
	}
}

// SkewAngles returns the skew component in degrees.
func (m Matrix) SkewAngles() Vec2 {
	switch {
	case m.A != 0 || m.B != 0:
		r2 := m.A*m.A + m.B*m.B
		return Vec2{X: mathutil.Rad2Deg(math.Atan((m.A*m.C + m.B*m.D) / r2))}
	case m.C != 0 || m.D != 0:
		s2 := m.C*m.C + m.D*m.D
		return Vec2{Y: mathutil.Rad2Deg(math.Atan((m.A*m.C + m.B*m.D) / s2))}
	default:
		return Vec2{}
	}
}

// HasTranslation reports whether the matrix translates.
func (m Matrix) HasTranslation() bool {
	return m.E != 0 || m.F != 0
}

// HasRotation reports whether the decomposed rotation is nonzero.
func (m Matrix) HasRotation() bool {
	return m.Rotation() != 0
}

// HasScale reports whether the decomposed scale differs from (1, 1).
func (m Matrix) HasScale() bool {
	s := m.ScaleFactors()
	return !mathutil.ApproxEqual(s.X, 1, decomposeEpsilon) ||
		!mathutil.ApproxEqual(s.Y, 1, decomposeEpsilon)
}

// HasRotationOrSkew reports whether the linear part mixes the axes.
// When false the matrix maps axis-aligned rectangles to axis-aligned
// rectangles.
func (m Matrix) HasRotationOrSkew() bool {
	return m.B != 0 || m.C != 0
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 1 && m.E == 0 && m.F == 0
}

// IsTranslationOnly returns true if the linear part is the identity.
func (m Matrix) IsTranslationOnly() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// MaxScaleFactor returns the largest singular value of the linear part,
// the maximum factor by which the matrix stretches any vector.
func (m Matrix) MaxScaleFactor() float64 {
	// Eigenvalues of M^T * M.
	p := m.A*m.A + m.B*m.B
	q := m.A*m.C + m.B*m.D
	r := m.C*m.C + m.D*m.D
	half := (p + r) / 2
	disc := math.Sqrt(math.Max(0, (p-r)*(p-r)/4+q*q))
	return math.Sqrt(half + disc)
}
