package raster

import (
	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/cache"
)

// ellipseSegments is the number of edges used to approximate an ellipse.
const ellipseSegments = 64

// outlines memoizes sampled ellipses across renders.
var outlines = cache.New[geom.Ellipse, []geom.Vec2](256)

// Outline returns a closed polygon approximating s in world coordinates.
// Points and lines have no area; they come back as nil and are drawn with
// a pixel width instead. The result may be shared and must not be modified.
func Outline(s geom.Shape) []geom.Vec2 {
	switch v := s.(type) {
	case geom.Rect:
		pts := v.Points()
		return pts[:]
	case geom.Polygon:
		return v.Points
	case geom.Circle:
		return ellipseOutline(v.Ellipse())
	case geom.Ellipse:
		return ellipseOutline(v)
	}
	return nil
}

func ellipseOutline(e geom.Ellipse) []geom.Vec2 {
	return outlines.GetOrCreate(e, func() []geom.Vec2 { return sampleEllipse(e) })
}

func sampleEllipse(e geom.Ellipse) []geom.Vec2 {
	m := e.UnitMatrix()
	pts := make([]geom.Vec2, ellipseSegments)
	for i := range pts {
		pts[i] = m.TransformPoint(geom.FromAngle(360 * float64(i) / ellipseSegments))
	}
	return pts
}

// segmentQuad returns the rectangle of half-width hw around the segment
// a-b. Coordinates are in pixels.
func segmentQuad(a, b geom.Vec2, hw float64) []geom.Vec2 {
	n := b.Sub(a).Normal().Unit().Scale(hw)
	if n.IsZero() {
		return squareAround(a, hw)
	}
	return []geom.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// squareAround returns an axis-aligned square of half-size hw centered on p.
func squareAround(p geom.Vec2, hw float64) []geom.Vec2 {
	return geom.NewRect(p.Sub(geom.V2(hw, hw)), 2*hw, 2*hw).Polygon().Points
}
