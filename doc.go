// Package geom provides 2D geometry and collision primitives for Go.
//
// # Overview
//
// geom is a small Pure Go kernel for games and simulations. It covers
// vectors and affine matrices, six shape kinds with a common interface,
// pairwise overlap tests, ray casts against shapes and tile grids, the
// separating axis theorem, polygon triangulation, curve evaluation and
// easing functions.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	box := geom.NewRect(geom.V2(0, 0), 32, 32)
//	ball := geom.NewCircle(geom.V2(40, 16), 10)
//	if box.Collides(ball) {
//		// ...
//	}
//
//	hit, ok := geom.Raycast(geom.V2(-10, 16), geom.V2(100, 0), ball)
//
// # Shapes
//
// Point, Line, Rect, Circle, Ellipse and Polygon implement Shape. The
// interface is sealed; TestShapeShape dispatches on Kind through a
// complete table, so every pair of kinds has an overlap test and the
// result does not depend on argument order.
//
// Shapes are values. Transform returns a new Shape, which may be of a
// different kind: a rotated Rect becomes a Polygon and a transformed Circle
// becomes an Ellipse.
//
// # Coordinate System
//
// Uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, positive angles turn from +X toward +Y
//
// # Ray Casts
//
// A ray is the segment origin → origin+direction. Fraction in a
// RaycastHit is the parameter along that segment, not a distance; scale
// it by the direction's length to get one.
//
// # Logging
//
// The package logs nothing by default. Install a slog.Logger with
// SetLogger to see debug output for degenerate input.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
