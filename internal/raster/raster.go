// Package raster draws an evaluated scene into an RGBA image for visual
// inspection. Filling is done by golang.org/x/image/vector, which
// anti-aliases polygon outlines; curved shapes are flattened first.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/scene"
)

// Options controls rendering.
type Options struct {
	// Scale is the number of pixels per world unit. Default 40.
	Scale float64

	// Padding is the margin around the scene in pixels. Default 16.
	Padding int

	// Labels draws shape names next to the shapes.
	Labels bool
}

const (
	defaultScale   = 40
	defaultPadding = 16

	// maxSide bounds either image dimension.
	maxSide = 8192
)

// Palette.
var (
	background = color.RGBA{R: 0x1e, G: 0x1f, B: 0x24, A: 0xff}
	idleFill   = color.NRGBA{R: 0x4c, G: 0x8d, B: 0xf6, A: 0x80}
	hitFill    = color.NRGBA{R: 0xf2, G: 0x55, B: 0x4a, A: 0x90}
	cellFill   = color.NRGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0x80}
	rayColor   = color.NRGBA{R: 0xf5, G: 0xd0, B: 0x42, A: 0xff}
	pointColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	textColor  = color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
)

// Canvas draws world-space geometry into an RGBA image.
type Canvas struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	toPx geom.Matrix
}

// NewCanvas creates a canvas framing world (in world units) at the given
// scale with padding pixels on each side, cleared to the background color.
func NewCanvas(world geom.Rect, scale float64, padding int) (*Canvas, error) {
	w := int(math.Ceil(world.Width*scale)) + 2*padding
	h := int(math.Ceil(world.Height*scale)) + 2*padding
	if w <= 0 || h <= 0 || w > maxSide || h > maxSide {
		return nil, fmt.Errorf("raster: image size %dx%d out of range", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)

	toPx := geom.Translate(geom.V2(float64(padding), float64(padding))).
		Multiply(geom.Scale(geom.V2(scale, scale))).
		Multiply(geom.Translate(world.Pos.Neg()))

	z := vector.NewRasterizer(w, h)
	z.DrawOp = xdraw.Over
	return &Canvas{img: img, z: z, toPx: toPx}, nil
}

// Image returns the target image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ToPixel maps a world point to pixel coordinates.
func (c *Canvas) ToPixel(p geom.Vec2) geom.Vec2 {
	return c.toPx.TransformPoint(p)
}

// fillPx fills a closed polygon given in pixel coordinates.
func (c *Canvas) fillPx(pts []geom.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = xdraw.Over
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// FillShape fills s. Points and lines are drawn with a fixed pixel width.
func (c *Canvas) FillShape(s geom.Shape, col color.Color) {
	switch v := s.(type) {
	case geom.Point:
		c.Dot(v.Pt, 3, col)
	case geom.Line:
		c.Segment(v.P1, v.P2, 1.5, col)
	default:
		outline := Outline(s)
		px := make([]geom.Vec2, len(outline))
		for i, p := range outline {
			px[i] = c.ToPixel(p)
		}
		c.fillPx(px, col)
	}
}

// Segment draws a world-space segment hw pixels either side of its axis.
func (c *Canvas) Segment(a, b geom.Vec2, hw float64, col color.Color) {
	c.fillPx(segmentQuad(c.ToPixel(a), c.ToPixel(b), hw), col)
}

// Dot draws a square marker of half-size hw pixels at world point p.
func (c *Canvas) Dot(p geom.Vec2, hw float64, col color.Color) {
	c.fillPx(squareAround(c.ToPixel(p), hw), col)
}

// Render draws the scene and the outcome of its queries. Shapes that take
// part in a collision are drawn in a warning color; rays are drawn up to
// their hit point with the surface normal.
func Render(s *scene.Scene, rep *scene.Report, opts Options) (*image.RGBA, error) {
	if opts.Scale <= 0 {
		opts.Scale = defaultScale
	}
	if opts.Padding <= 0 {
		opts.Padding = defaultPadding
	}

	c, err := NewCanvas(s.Bounds(), opts.Scale, opts.Padding)
	if err != nil {
		return nil, err
	}

	colliding := make(map[string]bool)
	if rep != nil {
		for _, col := range rep.Collisions {
			colliding[col.A], colliding[col.B] = true, true
		}
	}

	for _, g := range s.Grids {
		for _, cell := range g.Solid {
			c.FillShape(geom.NewRect(cell.Floor(), 1, 1), cellFill)
		}
	}
	for _, sh := range s.Shapes {
		fill := idleFill
		if colliding[sh.Name] {
			fill = hitFill
		}
		c.FillShape(sh.Shape, fill)
	}

	if rep != nil {
		for i, r := range s.Rays {
			c.drawCast(r.Origin, r.Direction, rep.Rays[i])
		}
		for i, g := range s.Grids {
			c.drawCast(g.Origin, g.Direction, rep.Grids[i])
		}
	}

	if opts.Labels {
		l, err := newLabeler(c.img)
		if err != nil {
			return nil, err
		}
		defer l.Close()
		maxX := float64(c.img.Bounds().Dx())
		for _, sh := range s.Shapes {
			// Above the top-left corner, kept inside the image.
			p := c.ToPixel(sh.Shape.BoundingBox().Pos).Add(geom.V2(2, -4))
			p.X = math.Max(0, math.Min(p.X, maxX-l.Width(sh.Name)))
			p.Y = math.Max(p.Y, labelSize)
			l.Draw(p, sh.Name)
		}
	}
	return c.img, nil
}

func (c *Canvas) drawCast(origin, dir geom.Vec2, res scene.RayResult) {
	end := origin.Add(dir)
	if res.Hit {
		end = res.Point
	}
	c.Segment(origin, end, 1, rayColor)
	c.Dot(origin, 2, rayColor)
	if res.Hit {
		c.Dot(res.Point, 3, pointColor)
		if !res.Normal.IsZero() {
			c.Segment(res.Point, res.Point.Add(res.Normal.Scale(0.5)), 1, pointColor)
		}
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
