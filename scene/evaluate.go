package scene

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/geom"
)

// Report holds the results of evaluating a scene. Every slice follows the
// order of the scene description.
type Report struct {
	Shapes     []ShapeInfo
	Collisions []Collision
	Rays       []RayResult
	Grids      []RayResult
}

// ShapeInfo summarizes one shape.
type ShapeInfo struct {
	Name   string
	Kind   geom.Kind
	Area   float64
	Bounds geom.Rect
}

// Collision is an overlapping pair of shapes. When both shapes are convex
// polygons (or rectangles) MTV is the translation that separates A from B.
type Collision struct {
	A, B   string
	MTV    geom.Vec2
	HasMTV bool
}

// RayResult is the outcome of one ray or grid cast. Target is the name of
// the nearest shape hit; it is empty for grid casts.
type RayResult struct {
	Name   string
	Hit    bool
	Target string
	geom.RaycastHit
}

// Evaluate runs every pairwise collision test, ray cast and grid cast in s.
// Work is spread over GOMAXPROCS goroutines; the kernel is reentrant and
// shapes are values, so no locking is needed. The only error is ctx's.
func Evaluate(ctx context.Context, s *Scene) (*Report, error) {
	n := len(s.Shapes)
	rep := &Report{
		Shapes: make([]ShapeInfo, n),
		Rays:   make([]RayResult, len(s.Rays)),
		Grids:  make([]RayResult, len(s.Grids)),
	}
	for i, sh := range s.Shapes {
		rep.Shapes[i] = ShapeInfo{
			Name:   sh.Name,
			Kind:   sh.Shape.Kind(),
			Area:   sh.Shape.Area(),
			Bounds: sh.Shape.BoundingBox(),
		}
	}

	// Row i holds the pairs (i, j) for j > i.
	rows := make([][]Collision, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range s.Shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = collideRow(s.Shapes, i)
			return nil
		})
	}
	for i, r := range s.Rays {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep.Rays[i] = castRay(s.Shapes, r)
			return nil
		})
	}
	for i, gr := range s.Grids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep.Grids[i] = castGrid(gr)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, row := range rows {
		rep.Collisions = append(rep.Collisions, row...)
	}
	geom.Logger().Info("scene: evaluated",
		"shapes", n,
		"collisions", len(rep.Collisions),
		"rays_hit", countHits(rep.Rays),
		"grids_hit", countHits(rep.Grids))
	return rep, nil
}

func collideRow(shapes []Shape, i int) []Collision {
	var out []Collision
	a := shapes[i]
	for _, b := range shapes[i+1:] {
		if !geom.TestShapeShape(a.Shape, b.Shape) {
			continue
		}
		c := Collision{A: a.Name, B: b.Name}
		pa, okA := convexPolygon(a.Shape)
		pb, okB := convexPolygon(b.Shape)
		if okA && okB {
			if res, ok := geom.SAT(pa, pb); ok {
				c.MTV, c.HasMTV = res.MTV(), true
			}
		}
		out = append(out, c)
	}
	return out
}

// convexPolygon returns s as a polygon SAT can handle.
func convexPolygon(s geom.Shape) (geom.Polygon, bool) {
	switch v := s.(type) {
	case geom.Rect:
		return v.Polygon(), true
	case geom.Polygon:
		return v, v.IsConvex()
	}
	return geom.Polygon{}, false
}

func castRay(shapes []Shape, r Ray) RayResult {
	res := RayResult{Name: r.Name}
	for _, sh := range shapes {
		hit, ok := geom.Raycast(r.Origin, r.Direction, sh.Shape)
		if !ok {
			continue
		}
		if !res.Hit || hit.Fraction < res.Fraction {
			res.Hit, res.Target, res.RaycastHit = true, sh.Name, hit
		}
	}
	return res
}

func castGrid(gr Grid) RayResult {
	var opts []geom.GridOption
	if gr.MaxDistance > 0 {
		opts = append(opts, geom.WithMaxDistance(gr.MaxDistance))
	}
	hit, ok := geom.RaycastGrid(gr.Origin, gr.Direction, geom.SolidCells(gr.Solid...), opts...)
	return RayResult{Name: gr.Name, Hit: ok, RaycastHit: hit}
}

func countHits(results []RayResult) int {
	n := 0
	for _, r := range results {
		if r.Hit {
			n++
		}
	}
	return n
}
