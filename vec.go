package geom

import (
	"math"

	"github.com/gogpu/geom/internal/mathutil"
)

// Vec2 is a 2D vector used both as a position and as a displacement.
//
// Vec2 is a value type: every method returns a new vector. The few methods
// ending in To write into a caller-owned destination instead, for per-frame
// code that wants to avoid temporaries.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle degrees from +X.
func FromAngle(deg float64) Vec2 {
	sin, cos := math.Sincos(mathutil.Deg2Rad(deg))
	return Vec2{X: cos, Y: sin}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// ScaleV returns the component-wise product of two vectors.
func (v Vec2) ScaleV(s Vec2) Vec2 {
	return Vec2{X: v.X * s.X, Y: v.Y * s.Y}
}

// InvScale returns the vector divided component-wise by s.
func (v Vec2) InvScale(s Vec2) Vec2 {
	return Vec2{X: v.X / s.X, Y: v.Y / s.Y}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SLen returns the squared length of the vector.
// This is faster than Len() when you only need to compare magnitudes.
func (v Vec2) SLen() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the distance between two points.
func (v Vec2) Dist(w Vec2) float64 {
	return v.Sub(w).Len()
}

// SDist returns the squared distance between two points.
func (v Vec2) SDist(w Vec2) float64 {
	dx, dy := v.X-w.X, v.Y-w.Y
	return dx*dx + dy*dy
}

// Unit returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec2) Unit() Vec2 {
	length := v.Len()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Normal returns the perpendicular vector (y, -x).
func (v Vec2) Normal() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Rotate returns the vector rotated by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	sin, cos := math.Sincos(mathutil.Deg2Rad(deg))
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateBy rotates v by the angle of the unit vector u, treating both as
// complex numbers and multiplying them.
func (v Vec2) RotateBy(u Vec2) Vec2 {
	return Vec2{
		X: v.X*u.X - v.Y*u.Y,
		Y: v.X*u.Y + v.Y*u.X,
	}
}

// InvRotateBy undoes RotateBy(u) for a unit vector u.
func (v Vec2) InvRotateBy(u Vec2) Vec2 {
	return Vec2{
		X: v.X*u.X + v.Y*u.Y,
		Y: -v.X*u.Y + v.Y*u.X,
	}
}

// Project returns the projection of v onto on.
func (v Vec2) Project(on Vec2) Vec2 {
	return on.Scale(on.Dot(v) / on.SLen())
}

// Reject returns the component of v perpendicular to on.
func (v Vec2) Reject(on Vec2) Vec2 {
	return v.Sub(v.Project(on))
}

// Reflect mirrors v about the line with the given normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: mathutil.Lerp(v.X, w.X, t),
		Y: mathutil.Lerp(v.Y, w.Y, t),
	}
}

// Slerp interpolates along the arc between the unit vectors v and w.
// Parallel inputs have no defined arc and produce NaN components.
func (v Vec2) Slerp(w Vec2, t float64) Vec2 {
	cos := v.Dot(w)
	sin := v.Cross(w)
	angle := math.Atan2(sin, cos)
	s := math.Sin(angle)
	return v.Scale(math.Sin((1-t)*angle) / s).Add(w.Scale(math.Sin(t*angle) / s))
}

// Angle returns the angle of the vector from +X in degrees.
func (v Vec2) Angle() float64 {
	return mathutil.Rad2Deg(math.Atan2(v.Y, v.X))
}

// AngleBetween returns the signed angle in degrees from v to w.
func (v Vec2) AngleBetween(w Vec2) float64 {
	return mathutil.Rad2Deg(math.Atan2(v.Cross(w), v.Dot(w)))
}

// Clamp limits each component of v to the box [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: mathutil.Clamp(v.X, lo.X, hi.X),
		Y: mathutil.Clamp(v.Y, lo.Y, hi.Y),
	}
}

// Floor rounds both components down.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Eq reports exact component equality.
func (v Vec2) Eq(w Vec2) bool {
	return v.X == w.X && v.Y == w.Y
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return mathutil.ApproxEqual(v.X, w.X, epsilon) && mathutil.ApproxEqual(v.Y, w.Y, epsilon)
}

// AddTo stores v+w in dst.
func (v Vec2) AddTo(dst *Vec2, w Vec2) {
	dst.X = v.X + w.X
	dst.Y = v.Y + w.Y
}

// SubTo stores v-w in dst.
func (v Vec2) SubTo(dst *Vec2, w Vec2) {
	dst.X = v.X - w.X
	dst.Y = v.Y - w.Y
}

// ScaleTo stores v*s in dst.
func (v Vec2) ScaleTo(dst *Vec2, s float64) {
	dst.X = v.X * s
	dst.Y = v.Y * s
}

// LerpTo stores the interpolation between v and w in dst.
func (v Vec2) LerpTo(dst *Vec2, w Vec2, t float64) {
	dst.X = v.X + (w.X-v.X)*t
	dst.Y = v.Y + (w.Y-v.Y)*t
}
