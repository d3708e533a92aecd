// Package cache provides a small generic LRU cache.
//
// The raster package keeps ellipse outlines in one so that re-rendering a
// scene does not resample every curved shape:
//
//	outlines := cache.New[geom.Ellipse, []geom.Vec2](256)
//	pts := outlines.GetOrCreate(e, func() []geom.Vec2 { return sample(e) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
