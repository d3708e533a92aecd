package geom

import "math"

// Triangle references three vertices of the polygon it was cut from. The
// pointers alias the caller's slice, so vertex identity (and index, through
// pointer arithmetic on the slice) is preserved.
type Triangle [3]*Vec2

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(t[1].Sub(*t[0]).Cross(t[2].Sub(*t[0]))) / 2
}

// Polygon returns the triangle as a standalone polygon holding copies of
// the vertices.
func (t Triangle) Polygon() Polygon {
	return Polygon{Points: []Vec2{*t[0], *t[1], *t[2]}}
}

// randomPoint samples the triangle uniformly by folding the unit square.
func (t Triangle) randomPoint(r Rand) Vec2 {
	u, v := r.Float64(), r.Float64()
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	a := *t[0]
	return a.Add(t[1].Sub(a).Scale(u)).Add(t[2].Sub(a).Scale(v))
}

// isCCW reports whether a → b → c turns left (or goes straight) in a Y-up
// frame.
func isCCW(a, b, c Vec2) bool {
	return b.Sub(a).Cross(c.Sub(a)) >= 0
}

// IsCCWPolygon reports whether the vertices wind counter-clockwise in a Y-up
// frame (clockwise on screen, where Y points down).
func IsCCWPolygon(points []Vec2) bool {
	return signedArea(points) > 0
}

// pointInTriangle reports whether p is inside or on the border of the
// counter-clockwise triangle abc.
func pointInTriangle(p, a, b, c Vec2) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}

// Triangulate splits a simple polygon into len(points)-2 triangles by ear
// clipping. Triangles are wound the same way as the input.
//
// Self-intersecting or otherwise malformed input may leave a state in which
// no ear exists; Triangulate then returns nil.
func Triangulate(points []Vec2) []Triangle {
	idx := TriangulateIndices(points)
	if idx == nil {
		return nil
	}
	tris := make([]Triangle, len(idx))
	for i, t := range idx {
		tris[i] = Triangle{&points[t[0]], &points[t[1]], &points[t[2]]}
	}
	return tris
}

// TriangulateIndices is Triangulate returning vertex indices instead of
// pointers.
func TriangulateIndices(points []Vec2) [][3]int {
	n := len(points)
	if n < minPolygonPoints {
		return nil
	}
	if n == minPolygonPoints {
		return [][3]int{{0, 1, 2}}
	}

	next := make([]int, n)
	prev := make([]int, n)
	for i := range n {
		next[i] = (i + 1) % n
		prev[i] = (i + n - 1) % n
	}
	ccw := IsCCWPolygon(points)
	if !ccw {
		// Walk the ring backwards so every turn test below can assume CCW.
		next, prev = prev, next
	}

	reflex := make(map[int]struct{})
	for i := range n {
		if !isCCW(points[prev[i]], points[i], points[next[i]]) {
			reflex[i] = struct{}{}
		}
	}

	tris := make([][3]int, 0, n-2)
	remaining := n
	cur, skipped := 0, 0
	for remaining > 3 {
		pi, ni := prev[cur], next[cur]
		a, b, c := points[pi], points[cur], points[ni]

		if isCCW(a, b, c) && !anyReflexInside(points, reflex, pi, cur, ni) {
			tris = append(tris, orient([3]int{pi, cur, ni}, ccw))
			next[pi] = ni
			prev[ni] = pi
			delete(reflex, cur)
			remaining--
			skipped = 0

			// Clipping can only make a neighbour convex.
			for _, v := range [2]int{pi, ni} {
				if _, ok := reflex[v]; ok && isCCW(points[prev[v]], points[v], points[next[v]]) {
					delete(reflex, v)
				}
			}
		} else {
			skipped++
			if skipped > remaining {
				Logger().Debug("triangulate: no ear found, polygon is not simple",
					"points", n, "remaining", remaining)
				return nil
			}
		}
		cur = ni
	}
	tris = append(tris, orient([3]int{prev[cur], cur, next[cur]}, ccw))
	return tris
}

// anyReflexInside reports whether a reflex vertex other than the triangle's
// corners lies in triangle (a, b, c).
func anyReflexInside(points []Vec2, reflex map[int]struct{}, a, b, c int) bool {
	for v := range reflex {
		if v == a || v == b || v == c {
			continue
		}
		if pointInTriangle(points[v], points[a], points[b], points[c]) {
			return true
		}
	}
	return false
}

// orient restores the input winding for triangles cut from a clockwise
// polygon.
func orient(t [3]int, ccw bool) [3]int {
	if ccw {
		return t
	}
	return [3]int{t[2], t[1], t[0]}
}
