// Package grid implements the rectangular character grid every other stage
// of the pipeline operates over, plus a parallel status grid the tracer
// uses to mark cells SEEN during flood fill.
//
// Grid is an immutable, bounds-checked value type: the constructor deep
// copies its input rows so a caller mutating its own slice afterward cannot
// reach back into the grid, InBounds is an O(1) range check, and cells are
// read through At(y, x) rather than by exposing the backing slice directly.
//
// Errors:
//
//	ErrEmptyGrid — input has no rows or no columns.
//	ErrNonRectangular — input rows differ in length (should not occur from
//	    gridio.Decode, which always pads; exists for hand-built grids).
package grid
