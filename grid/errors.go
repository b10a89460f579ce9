package grid

import "errors"

// Sentinel errors for grid construction. They are kept separate, rather
// than a single shared sentinel, because they report genuinely distinct
// conditions and a caller may reasonably want to distinguish them with
// errors.Is.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths were supplied
	// directly to New (gridio.Decode never produces this; it pads).
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
