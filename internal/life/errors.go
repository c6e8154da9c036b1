package life

import "github.com/pkg/errors"

// Domain errors for grid construction and pattern placement.
var (
	// ErrInvalidDimensions indicates a grid with a non-positive width or height.
	ErrInvalidDimensions = errors.New("life: grid dimensions must be positive")

	// ErrUnknownPattern indicates a pattern name missing from the registry.
	ErrUnknownPattern = errors.New("life: unknown pattern")

	// ErrPatternTooLarge indicates a pattern that does not fit on the grid.
	ErrPatternTooLarge = errors.New("life: pattern does not fit on grid")
)
