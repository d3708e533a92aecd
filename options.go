package geom

// GridOption configures a RaycastGrid call.
//
// Example:
//
//	hit, ok := geom.RaycastGrid(origin, dir, geom.SolidCells(walls...),
//		geom.WithMaxDistance(128))
type GridOption func(*gridOptions)

// gridOptions holds optional configuration for grid ray casts.
type gridOptions struct {
	maxDistance float64
}

// defaultGridMaxDistance is the walk limit in cells.
const defaultGridMaxDistance = 64

func defaultGridOptions() gridOptions {
	return gridOptions{maxDistance: defaultGridMaxDistance}
}

// WithMaxDistance limits how far, in cells along the normalized direction,
// the grid walk goes before giving up. Non-positive values keep the default.
func WithMaxDistance(cells float64) GridOption {
	return func(o *gridOptions) {
		if cells > 0 {
			o.maxDistance = cells
		}
	}
}

// CurveOption configures arc-length sampling in NormalizedCurve and
// CurveLength.
//
// Example:
//
//	walk := geom.NormalizedCurve(path, geom.WithEntries(32), geom.WithDetail(4))
type CurveOption func(*curveOptions)

// curveOptions holds the lookup table resolution.
type curveOptions struct {
	entries int
	detail  int
}

const (
	defaultCurveEntries = 10
	defaultCurveDetail  = 10
)

func defaultCurveOptions() curveOptions {
	return curveOptions{entries: defaultCurveEntries, detail: defaultCurveDetail}
}

// WithEntries sets the number of lookup table intervals. Values below one
// keep the default.
func WithEntries(n int) CurveOption {
	return func(o *curveOptions) {
		if n > 0 {
			o.entries = n
		}
	}
}

// WithDetail sets how many straight segments approximate each lookup table
// interval. Values below one keep the default.
func WithDetail(n int) CurveOption {
	return func(o *curveOptions) {
		if n > 0 {
			o.detail = n
		}
	}
}
