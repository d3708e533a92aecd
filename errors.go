package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors for the geom package.
var (
	// ErrInvalidArgument is returned when a constructor or builder receives
	// input it cannot represent.
	ErrInvalidArgument = errors.New("geom: invalid argument")
)

// PointCountError is returned when a polygon is built from too few points.
type PointCountError struct {
	Got  int
	Need int
}

func (e *PointCountError) Error() string {
	return fmt.Sprintf("geom: polygon needs at least %d points, got %d", e.Need, e.Got)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *PointCountError) Unwrap() error {
	return ErrInvalidArgument
}
