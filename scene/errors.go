package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGeometry is returned when a shape entry names no geometry.
	ErrNoGeometry = errors.New("scene: shape has no geometry")

	// ErrMultipleGeometry is returned when a shape entry names more than one
	// geometry.
	ErrMultipleGeometry = errors.New("scene: shape has more than one geometry")

	// ErrBadVector is returned for a coordinate list that is not exactly two
	// numbers long.
	ErrBadVector = errors.New("scene: vector needs exactly two components")

	// ErrDuplicateName is returned when two entries of the same section share
	// a name.
	ErrDuplicateName = errors.New("scene: duplicate name")
)

// EntryError ties a build error to the scene entry that caused it.
type EntryError struct {
	Section string // "shapes", "rays" or "grids"
	Index   int
	Name    string
	Err     error
}

func (e *EntryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("scene: %s[%d] %q: %v", e.Section, e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("scene: %s[%d]: %v", e.Section, e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
