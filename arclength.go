package geom

import "sort"

// lengthTable samples curve into entries intervals of detail straight
// segments each and returns the cumulative length at every interval
// boundary. table[0] is 0 and table[entries] is the total length.
func lengthTable(curve func(float64) Vec2, o curveOptions) []float64 {
	table := make([]float64, o.entries+1)
	steps := o.entries * o.detail
	prev := curve(0)
	var length float64
	for i := 1; i <= steps; i++ {
		p := curve(float64(i) / float64(steps))
		length += p.Dist(prev)
		prev = p
		if i%o.detail == 0 {
			table[i/o.detail] = length
		}
	}
	return table
}

// CurveLength approximates the arc length of curve on [0, 1] with a
// polyline of entries*detail segments.
func CurveLength(curve func(float64) Vec2, opts ...CurveOption) float64 {
	o := defaultCurveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	table := lengthTable(curve, o)
	return table[len(table)-1]
}

// NormalizedCurve reparametrizes curve by arc length, so equal steps of the
// returned function's parameter cover equal distances. The length table is
// built once; each call is a binary search plus a linear interpolation.
//
// A curve of zero length is returned unchanged.
func NormalizedCurve(curve func(float64) Vec2, opts ...CurveOption) func(s float64) Vec2 {
	o := defaultCurveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	table := lengthTable(curve, o)
	total := table[o.entries]
	if total == 0 {
		return curve
	}

	return func(s float64) Vec2 {
		switch {
		case s <= 0:
			return curve(0)
		case s >= 1:
			return curve(1)
		}
		target := s * total
		// First boundary at or past target; i >= 1 since target > 0.
		i := sort.SearchFloat64s(table, target)
		if i > o.entries {
			i = o.entries
		}
		lo, hi := table[i-1], table[i]
		frac := 0.0
		if hi > lo {
			frac = (target - lo) / (hi - lo)
		}
		return curve((float64(i-1) + frac) / float64(o.entries))
	}
}
