// Package scene loads a YAML description of shapes, rays and grid casts and
// evaluates every query against the geom kernel.
//
// Example:
//
//	cfg, err := scene.LoadFile("level.yaml")
//	if err != nil {
//		return err
//	}
//	s, err := cfg.Build()
//	if err != nil {
//		return err
//	}
//	report, err := scene.Evaluate(ctx, s)
package scene

import "github.com/gogpu/geom"

// Scene is a built, validated scene. Shapes are already transformed.
type Scene struct {
	Shapes []Shape
	Rays   []Ray
	Grids  []Grid
}

// Shape is a named kernel shape.
type Shape struct {
	Name  string
	Shape geom.Shape
}

// Ray is a named ray segment origin → origin+direction.
type Ray struct {
	Name      string
	Origin    geom.Vec2
	Direction geom.Vec2
}

// Grid is a named grid cast. MaxDistance of zero uses the kernel default.
type Grid struct {
	Name        string
	Origin      geom.Vec2
	Direction   geom.Vec2
	Solid       []geom.Vec2
	MaxDistance float64
}

// Bounds returns the union of all shape bounds and ray segments, or a zero
// Rect for an empty scene.
func (s *Scene) Bounds() geom.Rect {
	var (
		bounds geom.Rect
		seeded bool
	)
	add := func(r geom.Rect) {
		if !seeded {
			bounds, seeded = r, true
			return
		}
		bounds = bounds.Union(r)
	}
	for _, sh := range s.Shapes {
		add(sh.Shape.BoundingBox())
	}
	for _, r := range s.Rays {
		add(geom.RectFromPoints(r.Origin, r.Origin.Add(r.Direction)))
	}
	for _, g := range s.Grids {
		add(geom.RectFromPoints(g.Origin, g.Origin))
		for _, c := range g.Solid {
			add(geom.NewRect(c.Floor(), 1, 1))
		}
	}
	return bounds
}

// Lookup returns the shape with the given name.
func (s *Scene) Lookup(name string) (geom.Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Name == name {
			return sh.Shape, true
		}
	}
	return nil, false
}
