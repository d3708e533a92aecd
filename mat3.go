package geom

import (
	"math"

	"github.com/gogpu/geom/internal/mathutil"
)

// mat3 is a 3x3 matrix stored as three columns. It is used to hold the
// implicit conic form X^T M X = 0 of an ellipse, X = (x, y, 1).
type mat3 [3][3]float64

// det3 returns the determinant of the matrix with the given columns.
func det3(c0, c1, c2 [3]float64) float64 {
	return c0[0]*(c1[1]*c2[2]-c2[1]*c1[2]) -
		c1[0]*(c0[1]*c2[2]-c2[1]*c0[2]) +
		c2[0]*(c0[1]*c1[2]-c1[1]*c0[2])
}

func (m mat3) det() float64 {
	return det3(m[0], m[1], m[2])
}

// conicMatrix returns the implicit matrix of e in a frame whose origin is at
// origin. Points strictly inside the ellipse give X^T M X < 0.
func conicMatrix(e Ellipse, origin Vec2) mat3 {
	sin, cos := math.Sincos(mathutil.Deg2Rad(e.Angle))
	ix := 1 / (e.RadiusX * e.RadiusX)
	iy := 1 / (e.RadiusY * e.RadiusY)

	// Q = R diag(ix, iy) R^T
	qa := cos*cos*ix + sin*sin*iy
	qb := cos*sin*(ix-iy)
	qd := sin*sin*ix + cos*cos*iy

	c := e.Center.Sub(origin)
	qcx := qa*c.X + qb*c.Y
	qcy := qb*c.X + qd*c.Y
	k := c.X*qcx + c.Y*qcy - 1

	return mat3{
		{qa, qb, -qcx},
		{qb, qd, -qcy},
		{-qcx, -qcy, k},
	}
}

// pencilCubic returns the coefficients of det(λA + B) = a λ³ + b λ² + c λ + d,
// expanding the determinant column by column.
func pencilCubic(ma, mb mat3) (a, b, c, d float64) {
	a = ma.det()
	b = det3(mb[0], ma[1], ma[2]) + det3(ma[0], mb[1], ma[2]) + det3(ma[0], ma[1], mb[2])
	c = det3(ma[0], mb[1], mb[2]) + det3(mb[0], ma[1], mb[2]) + det3(mb[0], mb[1], ma[2])
	d = mb.det()
	return a, b, c, d
}
