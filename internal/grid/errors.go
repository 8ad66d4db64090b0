package grid

import "errors"

// Parsing errors.
var (
	// ErrEmpty indicates a grid with no rows or no columns.
	ErrEmpty = errors.New("grid: empty grid")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: rows have differing lengths")

	// ErrMarker indicates a character that is not a known cell marker.
	ErrMarker = errors.New("grid: unknown cell marker")
)
