package extract

import "github.com/asciiart/citaa/core"

// Branches repeatedly peels degree-1 tails off residual into new LINE
// components, mutating residual in place (both its edge table and its
// vertex arena), and returns the extracted components in the order their
// walks were started. When Branches returns, residual contains only
// vertices of degree 0 (dropped from its arena already) or degree >= 2 —
// the junction graph the loop extractor consumes next.
func Branches(residual *core.Component) []*core.Component {
	var lines []*core.Component

	for {
		leaves := collectLeaves(residual)
		if len(leaves) == 0 {
			break
		}
		for _, u := range leaves {
			if _, ok := u.SoleDirection(); !ok {
				// Already consumed by an earlier walk this round — the
				// two-endpoint-single-edge case documented in doc.go.
				continue
			}
			lines = append(lines, walkBranch(residual, u))
		}
		dropIsolated(residual)
	}
	// A vertex that was isolated from the start (no leaf ever reached it)
	// is dropped here too.
	dropIsolated(residual)
	return lines
}

// collectLeaves snapshots every vertex currently at degree 1, in the
// component's arena order (stable, since it derives from the tracer's
// row-major discovery order).
func collectLeaves(residual *core.Component) []*core.Vertex {
	var leaves []*core.Vertex
	for _, v := range residual.Vertices {
		if _, ok := v.SoleDirection(); ok {
			leaves = append(leaves, v)
		}
	}
	return leaves
}

// walkBranch extracts the single tail starting at the degree-1 vertex u: a
// new LINE component, initially containing a copy of u, grown one vertex at
// a time by following u's unique remaining edge, until the current vertex's
// degree (in residual, after the edge just traversed has been removed) is
// no longer exactly 1 — a junction or a true dead end, which becomes the
// tail's last vertex and is left in residual for a later round or for the
// loop extractor.
func walkBranch(residual *core.Component, start *core.Vertex) *core.Component {
	line := core.NewComponent()
	line.Type = core.Line
	line.Dashed = residual.Dashed

	cur := start
	curCopy := line.AddVertex(cur.Y, cur.X, cur.Char)

	for {
		d, ok := cur.SoleDirection()
		if !ok {
			break
		}
		next := cur.Edges[d]
		nextCopy := line.AddVertex(next.Y, next.X, next.Char)
		core.Connect(curCopy, d, nextCopy)
		core.Disconnect(cur, d)
		cur = next
		curCopy = nextCopy
	}
	return line
}

// dropIsolated removes every degree-0 vertex from residual's arena without
// emitting anything for them: the trailing cells of every tail just
// walked, now disconnected on all four sides.
func dropIsolated(residual *core.Component) {
	kept := residual.Vertices[:0]
	for _, v := range residual.Vertices {
		if v.Degree() == 0 {
			continue
		}
		kept = append(kept, v)
	}
	residual.Vertices = kept
}
