package geom

import "math"

// GridHitResult tells RaycastGrid what a GridHitFunc decided about a cell.
type GridHitResult uint8

const (
	// GridMiss lets the ray pass through the cell.
	GridMiss GridHitResult = iota

	// GridHitCell stops the ray where it entered the cell. RaycastGrid
	// fills in the hit itself; the returned RaycastHit is ignored.
	GridHitCell

	// GridHitCustom stops the ray and reports the returned RaycastHit as is.
	// Use it for geometry smaller than a cell.
	GridHitCustom
)

// GridHitFunc is called for every cell the ray visits, in order. cell holds
// integral coordinates.
type GridHitFunc func(cell Vec2) (RaycastHit, GridHitResult)

// SolidCells returns a GridHitFunc that stops at any of the given cells.
func SolidCells(cells ...Vec2) GridHitFunc {
	solid := make(map[Vec2]struct{}, len(cells))
	for _, c := range cells {
		solid[c.Floor()] = struct{}{}
	}
	return func(cell Vec2) (RaycastHit, GridHitResult) {
		if _, ok := solid[cell]; ok {
			return RaycastHit{}, GridHitCell
		}
		return RaycastHit{}, GridMiss
	}
}

// RaycastGrid walks a grid of unit cells from origin along direction and
// returns the first cell hit accepts (Amanatides and Woo traversal).
//
// The walk uses the normalized direction and stops after the configured
// maximum distance (64 cells by default). Fraction in the result is the
// walked distance divided by the length of direction, so origin +
// direction*Fraction is the hit point. The normal points against the axis
// last crossed and is zero when the starting cell itself is hit.
func RaycastGrid(origin, direction Vec2, hit GridHitFunc, opts ...GridOption) (RaycastHit, bool) {
	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	length := direction.Len()
	if length == 0 {
		Logger().Debug("raycast grid: zero direction", "origin", origin)
		return RaycastHit{}, false
	}
	dir := direction.Scale(1 / length)

	cell := origin.Floor()
	step := Vec2{X: -1, Y: -1}
	if dir.X > 0 {
		step.X = 1
	}
	if dir.Y > 0 {
		step.Y = 1
	}

	// Ray length needed to cross one cell on each axis.
	tDelta := Vec2{X: math.Abs(1 / dir.X), Y: math.Abs(1 / dir.Y)}

	// Ray length to the first boundary on each axis.
	tMax := Vec2{X: math.Inf(1), Y: math.Inf(1)}
	if !math.IsInf(tDelta.X, 0) {
		if step.X > 0 {
			tMax.X = tDelta.X * (cell.X + 1 - origin.X)
		} else {
			tMax.X = tDelta.X * (origin.X - cell.X)
		}
	}
	if !math.IsInf(tDelta.Y, 0) {
		if step.Y > 0 {
			tMax.Y = tDelta.Y * (cell.Y + 1 - origin.Y)
		} else {
			tMax.Y = tDelta.Y * (origin.Y - cell.Y)
		}
	}

	var t float64
	var normal Vec2
	for t <= o.maxDistance {
		h, res := hit(cell)
		switch res {
		case GridHitCell:
			return RaycastHit{
				Point:      origin.Add(dir.Scale(t)),
				Normal:     normal,
				Fraction:   t / length,
				GridPos:    cell,
				HasGridPos: true,
			}, true
		case GridHitCustom:
			return h, true
		}

		if tMax.X < tMax.Y {
			cell.X += step.X
			t = tMax.X
			tMax.X += tDelta.X
			normal = Vec2{X: -step.X}
		} else {
			cell.Y += step.Y
			t = tMax.Y
			tMax.Y += tDelta.Y
			normal = Vec2{Y: -step.Y}
		}
	}
	return RaycastHit{}, false
}
