package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/geom"
)

// labelSize is the label font size in pixels.
const labelSize = 12

// labeler draws short strings with the embedded Go Regular font.
type labeler struct {
	face font.Face
	dst  *image.RGBA
}

func newLabeler(dst *image.RGBA) (*labeler, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: font face: %w", err)
	}
	return &labeler{face: face, dst: dst}, nil
}

// Draw writes s with its baseline starting at the pixel position p.
func (l *labeler) Draw(p geom.Vec2, s string) {
	d := &font.Drawer{
		Dst:  l.dst,
		Src:  image.NewUniform(textColor),
		Face: l.face,
		Dot:  fixed.P(int(math.Round(p.X)), int(math.Round(p.Y))),
	}
	d.DrawString(s)
}

// Width returns the advance of s in pixels.
func (l *labeler) Width(s string) float64 {
	adv := font.MeasureString(l.face, s)
	return float64(adv) / 64
}

func (l *labeler) Close() {
	_ = l.face.Close()
}
