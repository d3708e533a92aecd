package raster

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/scene"
)

func TestOutline(t *testing.T) {
	tests := []struct {
		name  string
		shape geom.Shape
		n     int
		area  float64
		tol   float64
	}{
		{"rect", geom.NewRect(geom.V2(0, 0), 2, 3), 4, 6, 1e-12},
		{"polygon", geom.Polygon{Points: []geom.Vec2{geom.V2(0, 0), geom.V2(1, 0), geom.V2(0, 1)}}, 3, 0.5, 1e-12},
		// A 64-gon inscribed in the unit circle loses about 0.16% of the area.
		{"circle", geom.NewCircle(geom.V2(5, 5), 1), ellipseSegments, 3.1365, 1e-3},
		{"ellipse", geom.NewEllipse(geom.V2(0, 0), 2, 1, 30), ellipseSegments, 2 * 3.1365, 2e-3},
		{"point", geom.Pt(1, 1), 0, 0, 0},
		{"line", geom.NewLine(geom.V2(0, 0), geom.V2(1, 1)), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Outline(tt.shape)
			require.Len(t, pts, tt.n)
			if tt.n == 0 {
				return
			}
			assert.InDelta(t, tt.area, geom.Polygon{Points: pts}.Area(), tt.tol)
		})
	}
}

func TestOutline_EllipsePointsOnBoundary(t *testing.T) {
	e := geom.NewEllipse(geom.V2(1, 2), 3, 1, 45)
	m := e.UnitMatrix().Inverse()
	for _, p := range Outline(e) {
		assert.InDelta(t, 1, m.TransformPoint(p).Len(), 1e-9)
	}
}

func TestOutline_EllipseIsCached(t *testing.T) {
	e := geom.NewEllipse(geom.V2(-3, 7), 2, 0.5, 10)
	a := Outline(e)
	b := Outline(e)
	require.Len(t, b, ellipseSegments)
	assert.Same(t, &a[0], &b[0])

	// A circle and the equivalent ellipse share one entry.
	c := Outline(geom.NewCircle(geom.V2(40, 40), 2))
	d := Outline(geom.NewCircle(geom.V2(40, 40), 2).Ellipse())
	assert.Same(t, &c[0], &d[0])
}

func TestSegmentQuad(t *testing.T) {
	q := segmentQuad(geom.V2(0, 0), geom.V2(10, 0), 1)
	require.Len(t, q, 4)
	assert.InDelta(t, 20, geom.Polygon{Points: q}.Area(), 1e-12)

	// Degenerate segments become a square marker.
	sq := segmentQuad(geom.V2(3, 3), geom.V2(3, 3), 2)
	require.Len(t, sq, 4)
	assert.InDelta(t, 16, geom.Polygon{Points: sq}.Area(), 1e-12)
}

func TestCanvas_ToPixel(t *testing.T) {
	c, err := NewCanvas(geom.NewRect(geom.V2(-2, -1), 4, 2), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 30), c.Image().Bounds())
	assert.Equal(t, geom.V2(5, 5), c.ToPixel(geom.V2(-2, -1)))
	assert.Equal(t, geom.V2(25, 15), c.ToPixel(geom.V2(0, 0)))
}

func TestNewCanvas_TooLarge(t *testing.T) {
	_, err := NewCanvas(geom.NewRect(geom.V2(0, 0), 1e6, 1), 40, 16)
	assert.Error(t, err)
}

func TestCanvas_FillShape(t *testing.T) {
	c, err := NewCanvas(geom.NewRect(geom.V2(0, 0), 10, 10), 10, 0)
	require.NoError(t, err)
	before := c.Image().RGBAAt(50, 50)

	c.FillShape(geom.NewCircle(geom.V2(5, 5), 2), hitFill)
	assert.NotEqual(t, before, c.Image().RGBAAt(50, 50), "circle center not painted")
	assert.Equal(t, before, c.Image().RGBAAt(5, 5), "pixel far from the circle painted")
}

func TestRender(t *testing.T) {
	cfg, err := scene.Load(bytes.NewBufferString(`
shapes:
  - name: a
    rect: {pos: [0, 0], width: 2, height: 2}
  - name: b
    circle: {center: [2, 2], radius: 1}
  - name: c
    ellipse: {center: [6, 1], rx: 1, ry: 0.5, angle: 20}
rays:
  - name: r
    origin: [0, 4]
    direction: [8, 0]
grids:
  - origin: [0.5, 3.5]
    direction: [1, 0]
    solid: [[4, 3]]
`))
	require.NoError(t, err)
	s, err := cfg.Build()
	require.NoError(t, err)
	rep, err := scene.Evaluate(context.Background(), s)
	require.NoError(t, err)

	img, err := Render(s, rep, Options{Scale: 20, Labels: true})
	require.NoError(t, err)

	b := s.Bounds()
	assert.Equal(t, int(b.Width*20)+2*defaultPadding, img.Bounds().Dx())

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRender_NilReport(t *testing.T) {
	s := &scene.Scene{Shapes: []scene.Shape{{Name: "dot", Shape: geom.Pt(0, 0)}}}
	img, err := Render(s, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2*defaultPadding, img.Bounds().Dx())
}
