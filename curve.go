package geom

import "slices"

// Parametric curves for motion paths. Every curve is evaluated on t in
// [0, 1]. Bezier types follow kurbo's layout; the spline builders return
// closures so they can be handed straight to NormalizedCurve.

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez is a quadratic Bezier curve. P0 and P2 are the end points, P1 is
// the control point.
type QuadBez struct {
	P0, P1, P2 Vec2
}

// NewQuadBez creates a quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Vec2) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at t.
func (q QuadBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Vec2{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Deriv evaluates the first derivative at t.
func (q QuadBez) Deriv(t float64) Vec2 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Scale(2 * (1 - t)).Add(d1.Scale(2 * t))
}

// Deriv2 returns the second derivative, which is constant.
func (q QuadBez) Deriv2() Vec2 {
	return q.P2.Sub(q.P1.Scale(2)).Add(q.P0).Scale(2)
}

// Subdivide splits the curve at t=0.5 using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// Extrema returns the parameters in (0, 1) where x or y is extremal.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)]
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	slices.Sort(result)
	return result
}

// BoundingBox returns the tight bounds of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := RectFromPoints(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		bbox = bbox.Union(Rect{Pos: p})
	}
	return bbox
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez is a cubic Bezier curve. P0 and P3 are the end points, P1 and P2
// the control points.
type CubicBez struct {
	P0, P1, P2, P3 Vec2
}

// NewCubicBez creates a cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Vec2) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at t.
func (c CubicBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Vec2{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Hodograph returns the derivative curve, a quadratic Bezier.
func (c CubicBez) Hodograph() QuadBez {
	return QuadBez{
		P0: c.P1.Sub(c.P0).Scale(3),
		P1: c.P2.Sub(c.P1).Scale(3),
		P2: c.P3.Sub(c.P2).Scale(3),
	}
}

// Deriv evaluates the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	return c.Hodograph().Eval(t)
}

// Deriv2 evaluates the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	return c.Hodograph().Deriv(t)
}

// Subdivide splits the curve at t=0.5 using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns the parameters in [0, 1] where x or y is extremal.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	// The derivative divided by 3 is a quadratic in Bernstein form.
	result = append(result, SolveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, SolveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	slices.Sort(result)
	return result
}

// BoundingBox returns the tight bounds of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := RectFromPoints(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(Rect{Pos: p})
	}
	return bbox
}

// -------------------------------------------------------------------
// Function forms
// -------------------------------------------------------------------

// EvaluateQuadratic evaluates the quadratic Bezier (p1, p2, p3) at t.
func EvaluateQuadratic(p1, p2, p3 Vec2, t float64) Vec2 {
	return QuadBez{P0: p1, P1: p2, P2: p3}.Eval(t)
}

// EvaluateQuadraticFirstDerivative evaluates B'(t) of (p1, p2, p3).
func EvaluateQuadraticFirstDerivative(p1, p2, p3 Vec2, t float64) Vec2 {
	return QuadBez{P0: p1, P1: p2, P2: p3}.Deriv(t)
}

// EvaluateQuadraticSecondDerivative evaluates B''(t) of (p1, p2, p3).
func EvaluateQuadraticSecondDerivative(p1, p2, p3 Vec2, _ float64) Vec2 {
	return QuadBez{P0: p1, P1: p2, P2: p3}.Deriv2()
}

// EvaluateBezier evaluates the cubic Bezier (p1, p2, p3, p4) at t.
func EvaluateBezier(p1, p2, p3, p4 Vec2, t float64) Vec2 {
	return CubicBez{P0: p1, P1: p2, P2: p3, P3: p4}.Eval(t)
}

// EvaluateBezierFirstDerivative evaluates B'(t) of (p1, p2, p3, p4).
func EvaluateBezierFirstDerivative(p1, p2, p3, p4 Vec2, t float64) Vec2 {
	return CubicBez{P0: p1, P1: p2, P2: p3, P3: p4}.Deriv(t)
}

// EvaluateBezierSecondDerivative evaluates B''(t) of (p1, p2, p3, p4).
func EvaluateBezierSecondDerivative(p1, p2, p3, p4 Vec2, t float64) Vec2 {
	return CubicBez{P0: p1, P1: p2, P2: p3, P3: p4}.Deriv2(t)
}

// EvaluateCatmullRom evaluates the Catmull-Rom segment between p2 and p3 at
// t; p1 and p4 only shape the tangents.
func EvaluateCatmullRom(p1, p2, p3, p4 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	eval := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b + (c-a)*t + (2*a-5*b+4*c-d)*t2 + (3*b-a-3*c+d)*t3)
	}
	return Vec2{
		X: eval(p1.X, p2.X, p3.X, p4.X),
		Y: eval(p1.Y, p2.Y, p3.Y, p4.Y),
	}
}

// -------------------------------------------------------------------
// Hermite splines
// -------------------------------------------------------------------

// Hermite returns the cubic Hermite interpolant from p1 to p2 with tangents
// m1 and m2.
func Hermite(p1, m1, m2, p2 float64) func(t float64) float64 {
	return func(t float64) float64 {
		t2 := t * t
		t3 := t2 * t
		h00 := 2*t3 - 3*t2 + 1
		h10 := t3 - 2*t2 + t
		h01 := -2*t3 + 3*t2
		h11 := t3 - t2
		return h00*p1 + h10*m1 + h01*p2 + h11*m2
	}
}

// hermite2 applies Hermite to both axes.
func hermite2(p1, m1, m2, p2 Vec2) func(t float64) Vec2 {
	hx := Hermite(p1.X, m1.X, m2.X, p2.X)
	hy := Hermite(p1.Y, m1.Y, m2.Y, p2.Y)
	return func(t float64) Vec2 {
		return Vec2{X: hx(t), Y: hy(t)}
	}
}

// Cardinal returns the cardinal spline segment from p2 to p3. Tension 0 is
// Catmull-Rom, tension 1 gives zero tangents.
func Cardinal(p1, p2, p3, p4 Vec2, tension float64) func(t float64) Vec2 {
	k := (1 - tension) / 2
	return hermite2(p2, p3.Sub(p1).Scale(k), p4.Sub(p2).Scale(k), p3)
}

// CatmullRom returns the Catmull-Rom segment from p2 to p3.
func CatmullRom(p1, p2, p3, p4 Vec2) func(t float64) Vec2 {
	return Cardinal(p1, p2, p3, p4, 0)
}

// KochanekBartels returns the segment from p2 to p3 of a Kochanek-Bartels
// spline with the given tension, continuity and bias. All three zero is
// Catmull-Rom.
func KochanekBartels(p1, p2, p3, p4 Vec2, tension, continuity, bias float64) func(t float64) Vec2 {
	in, mid, out := p2.Sub(p1), p3.Sub(p2), p4.Sub(p3)
	t1 := 1 - tension
	m1 := in.Scale(t1 * (1 + bias) * (1 + continuity) / 2).
		Add(mid.Scale(t1 * (1 - bias) * (1 - continuity) / 2))
	m2 := mid.Scale(t1 * (1 + bias) * (1 - continuity) / 2).
		Add(out.Scale(t1 * (1 - bias) * (1 + continuity) / 2))
	return hermite2(p2, m1, m2, p3)
}
