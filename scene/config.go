package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom"
)

// Config is the YAML description of a scene.
type Config struct {
	Shapes []ShapeConfig `yaml:"shapes"`
	Rays   []RayConfig   `yaml:"rays"`
	Grids  []GridConfig  `yaml:"grids"`
}

// Vec is a point or vector written as [x, y].
type Vec []float64

func (v Vec) vec2() (geom.Vec2, error) {
	if len(v) != 2 {
		return geom.Vec2{}, fmt.Errorf("%w: got %d", ErrBadVector, len(v))
	}
	return geom.V2(v[0], v[1]), nil
}

// ShapeConfig describes one shape. Exactly one geometry field must be set.
type ShapeConfig struct {
	Name      string           `yaml:"name"`
	Point     Vec              `yaml:"point,omitempty"`
	Line      *LineConfig      `yaml:"line,omitempty"`
	Rect      *RectConfig      `yaml:"rect,omitempty"`
	Circle    *CircleConfig    `yaml:"circle,omitempty"`
	Ellipse   *EllipseConfig   `yaml:"ellipse,omitempty"`
	Polygon   []Vec            `yaml:"polygon,omitempty"`
	Transform *TransformConfig `yaml:"transform,omitempty"`
}

// LineConfig is a segment from P1 to P2.
type LineConfig struct {
	P1 Vec `yaml:"p1"`
	P2 Vec `yaml:"p2"`
}

// RectConfig is an axis-aligned rectangle with its top-left corner at Pos.
type RectConfig struct {
	Pos    Vec     `yaml:"pos"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CircleConfig is a circle.
type CircleConfig struct {
	Center Vec     `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// EllipseConfig is an ellipse with radii RX and RY rotated by Angle degrees.
type EllipseConfig struct {
	Center Vec     `yaml:"center"`
	RX     float64 `yaml:"rx"`
	RY     float64 `yaml:"ry"`
	Angle  float64 `yaml:"angle"`
}

// TransformConfig is applied as scale, then skew, then rotate, then
// translate. Angles are in degrees.
type TransformConfig struct {
	Translate Vec     `yaml:"translate,omitempty"`
	Rotate    float64 `yaml:"rotate,omitempty"`
	Scale     Vec     `yaml:"scale,omitempty"`
	Skew      Vec     `yaml:"skew,omitempty"`
}

// RayConfig is a ray segment cast against every shape.
type RayConfig struct {
	Name      string `yaml:"name"`
	Origin    Vec    `yaml:"origin"`
	Direction Vec    `yaml:"direction"`
}

// GridConfig is a ray cast through a grid of unit cells.
type GridConfig struct {
	Name        string  `yaml:"name"`
	Origin      Vec     `yaml:"origin"`
	Direction   Vec     `yaml:"direction"`
	Solid       []Vec   `yaml:"solid"`
	MaxDistance float64 `yaml:"max_distance,omitempty"`
}

// Load decodes a scene description from r.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &c, nil
}

// LoadFile decodes the scene description in the named file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// Matrix returns the transform as a matrix. A nil transform is the identity.
func (t *TransformConfig) Matrix() (geom.Matrix, error) {
	m := geom.Identity()
	if t == nil {
		return m, nil
	}
	if t.Translate != nil {
		v, err := t.Translate.vec2()
		if err != nil {
			return m, fmt.Errorf("translate: %w", err)
		}
		m.TranslateSelf(v)
	}
	if t.Rotate != 0 {
		m.RotateSelf(t.Rotate)
	}
	if t.Skew != nil {
		v, err := t.Skew.vec2()
		if err != nil {
			return m, fmt.Errorf("skew: %w", err)
		}
		m.SkewSelf(v)
	}
	if t.Scale != nil {
		v, err := t.Scale.vec2()
		if err != nil {
			return m, fmt.Errorf("scale: %w", err)
		}
		m.ScaleSelf(v)
	}
	return m, nil
}

// geometry builds the untransformed shape.
func (c ShapeConfig) geometry() (geom.Shape, error) {
	var shapes []func() (geom.Shape, error)

	if c.Point != nil {
		shapes = append(shapes, func() (geom.Shape, error) {
			p, err := c.Point.vec2()
			return geom.Point{Pt: p}, err
		})
	}
	if c.Line != nil {
		shapes = append(shapes, func() (geom.Shape, error) {
			p1, err := c.Line.P1.vec2()
			if err != nil {
				return nil, fmt.Errorf("p1: %w", err)
			}
			p2, err := c.Line.P2.vec2()
			if err != nil {
				return nil, fmt.Errorf("p2: %w", err)
			}
			return geom.NewLine(p1, p2), nil
		})
	}
	if c.Rect != nil {
		shapes = append(shapes, func() (geom.Shape, error) {
			pos, err := c.Rect.Pos.vec2()
			if err != nil {
				return nil, fmt.Errorf("pos: %w", err)
			}
			return geom.NewRect(pos, c.Rect.Width, c.Rect.Height), nil
		})
	}
	if c.Circle != nil {
		shapes = append(shapes, func() (geom.Shape, error) {
			center, err := c.Circle.Center.vec2()
			if err != nil {
				return nil, fmt.Errorf("center: %w", err)
			}
			return geom.NewCircle(center, c.Circle.Radius), nil
		})
	}
	if c.Ellipse != nil {
		shapes = append(shapes, func() (geom.Shape, error) {
			center, err := c.Ellipse.Center.vec2()
			if err != nil {
				return nil, fmt.Errorf("center: %w", err)
			}
			return geom.NewEllipse(center, c.Ellipse.RX, c.Ellipse.RY, c.Ellipse.Angle), nil
		})
	}
	if c.Polygon != nil {
		shapes = append(shapes, func() (geom.Shape, error) {
			pts := make([]geom.Vec2, len(c.Polygon))
			for i, v := range c.Polygon {
				p, err := v.vec2()
				if err != nil {
					return nil, fmt.Errorf("polygon[%d]: %w", i, err)
				}
				pts[i] = p
			}
			return geom.NewPolygon(pts)
		})
	}

	switch len(shapes) {
	case 0:
		return nil, ErrNoGeometry
	case 1:
		return shapes[0]()
	default:
		return nil, ErrMultipleGeometry
	}
}

// Build validates the description and constructs the scene.
func (c *Config) Build() (*Scene, error) {
	s := &Scene{}
	log := geom.Logger()

	names := make(map[string]bool, len(c.Shapes))
	for i, sc := range c.Shapes {
		wrap := func(err error) error {
			return &EntryError{Section: "shapes", Index: i, Name: sc.Name, Err: err}
		}
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("shape%d", i)
		}
		if names[name] {
			return nil, wrap(ErrDuplicateName)
		}
		names[name] = true

		shape, err := sc.geometry()
		if err != nil {
			return nil, wrap(err)
		}
		m, err := sc.Transform.Matrix()
		if err != nil {
			return nil, wrap(err)
		}
		if !m.IsIdentity() {
			shape = shape.Transform(m)
		}
		if p, ok := shape.(geom.Polygon); ok && !p.IsConvex() {
			log.Warn("scene: polygon is not convex, SAT results will be skipped",
				"shape", name, "points", len(p.Points))
		}
		s.Shapes = append(s.Shapes, Shape{Name: name, Shape: shape})
	}

	for i, rc := range c.Rays {
		wrap := func(err error) error {
			return &EntryError{Section: "rays", Index: i, Name: rc.Name, Err: err}
		}
		origin, err := rc.Origin.vec2()
		if err != nil {
			return nil, wrap(fmt.Errorf("origin: %w", err))
		}
		dir, err := rc.Direction.vec2()
		if err != nil {
			return nil, wrap(fmt.Errorf("direction: %w", err))
		}
		s.Rays = append(s.Rays, Ray{Name: orIndex(rc.Name, "ray", i), Origin: origin, Direction: dir})
	}

	for i, gc := range c.Grids {
		wrap := func(err error) error {
			return &EntryError{Section: "grids", Index: i, Name: gc.Name, Err: err}
		}
		origin, err := gc.Origin.vec2()
		if err != nil {
			return nil, wrap(fmt.Errorf("origin: %w", err))
		}
		dir, err := gc.Direction.vec2()
		if err != nil {
			return nil, wrap(fmt.Errorf("direction: %w", err))
		}
		solid := make([]geom.Vec2, len(gc.Solid))
		for j, v := range gc.Solid {
			if solid[j], err = v.vec2(); err != nil {
				return nil, wrap(fmt.Errorf("solid[%d]: %w", j, err))
			}
		}
		s.Grids = append(s.Grids, Grid{
			Name:        orIndex(gc.Name, "grid", i),
			Origin:      origin,
			Direction:   dir,
			Solid:       solid,
			MaxDistance: gc.MaxDistance,
		})
	}

	log.Debug("scene: built", "shapes", len(s.Shapes), "rays", len(s.Rays), "grids", len(s.Grids))
	return s, nil
}

func orIndex(name, prefix string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s%d", prefix, i)
}
