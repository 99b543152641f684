package terrain

import (
	"errors"
)

// Sentinel errors for terrain construction and access.
var (
	// ErrEmptyGrid indicates the height grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: height grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrNonFiniteElevation indicates a NaN or infinite height value.
	ErrNonFiniteElevation = errors.New("terrain: elevation values must be finite")
	// ErrSourceOutOfBounds indicates a water source outside the grid.
	ErrSourceOutOfBounds = errors.New("terrain: water source out of bounds")
	// ErrOutOfBounds indicates a coordinate access outside grid dimensions.
	ErrOutOfBounds = errors.New("terrain: location out of bounds")
)
