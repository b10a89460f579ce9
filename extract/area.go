package extract

import "github.com/asciiart/citaa/core"

// computeArea runs a shoelace-style area calculation over a single
// extracted face component f: start from the topmost of the leftmost
// vertices (minimum X, ties broken by minimum Y), walk the face's own
// cycle with an initial direction of East, accumulating
// area += (x0 - x1) * y1 at every step, and return the absolute value.
//
// The walk reuses the same turn-preference order as the extraction walk
// itself (turnOrder), since f is by construction a simple cycle with
// exactly that connectivity.
func computeArea(f *core.Component) (int, error) {
	if len(f.Vertices) == 0 {
		return 0, nil
	}

	start := f.Vertices[0]
	for _, v := range f.Vertices[1:] {
		if v.X < start.X || (v.X == start.X && v.Y < start.Y) {
			start = v
		}
	}

	area := 0
	u, dir := start, core.East
	for {
		w := u.Edges[dir]
		if w == nil {
			return 0, core.NewGraphInvariantError(u, dir)
		}
		area += (u.X - w.X) * w.Y
		if w == start {
			break
		}
		nextDir, ok := chooseDirection(w, dir)
		if !ok {
			return 0, core.NewGraphInvariantError(w, dir)
		}
		u, dir = w, nextDir
	}

	if area < 0 {
		area = -area
	}
	return area, nil
}
