package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is created or resized with a non-positive extent.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned for coordinate access outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidDensity is returned by Randomize for densities outside [0, 1].
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
)
