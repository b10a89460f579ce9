package tracer

import (
	"github.com/asciiart/citaa/core"
	"github.com/asciiart/citaa/grid"
)

// neighbourOrder is the fixed compass order the flood fill tries from
// every vertex: E, N, W, S.
var neighbourOrder = [core.NDirections]core.Direction{core.East, core.North, core.West, core.South}

// Trace scans g in row-major order and returns one Unknown-typed
// core.Component per maximal 4-connected region of drawing characters.
// status must be the same dimensions as g and is mutated in place: every
// cell belonging to an emitted component is marked grid.Seen.
func Trace(g *grid.Grid, status *grid.StatusGrid) []*core.Component {
	var components []*core.Component
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if status.Get(y, x) != grid.Empty {
				continue
			}
			if !grid.IsDrawingChar(g.At(y, x)) {
				continue
			}
			components = append(components, floodFill(g, status, y, x))
		}
	}
	return components
}

type coord struct{ y, x int }

// floodFill builds one component starting at (y0,x0), which the caller has
// already confirmed is an Empty, drawing-character cell.
func floodFill(g *grid.Grid, status *grid.StatusGrid, y0, x0 int) *core.Component {
	c := core.NewComponent()
	verts := make(map[coord]*core.Vertex)

	start := c.AddVertex(y0, x0, g.At(y0, x0))
	verts[coord{y0, x0}] = start
	status.Set(y0, x0, grid.Seen)

	queue := []*core.Vertex{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, d := range neighbourOrder {
			ny, nx := u.Y+d.DY(), u.X+d.DX()
			if !g.InBounds(ny, nx) {
				continue
			}
			if !grid.IsDrawingChar(g.At(ny, nx)) {
				continue
			}

			key := coord{ny, nx}
			v, ok := verts[key]
			if !ok {
				v = c.AddVertex(ny, nx, g.At(ny, nx))
				verts[key] = v
				status.Set(ny, nx, grid.Seen)
				queue = append(queue, v)
			}
			// Every 4-adjacent pair of drawing cells gets an edge, whether
			// v was just discovered or was already part of this component
			// (e.g. closing a box's cycle).
			core.Connect(u, d, v)
		}
	}

	return c
}
