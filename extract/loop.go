package extract

import "github.com/asciiart/citaa/core"

// turnOrder is the face walk's direction-preference order relative to the
// direction just arrived from: try turning first, then straight, then the
// other turn (see core/doc.go for why this avoids "left"/"right" labels).
func turnOrder(d core.Direction) [3]core.Direction {
	return [3]core.Direction{d.Next(), d, d.Prev()}
}

// chooseDirection returns the first direction in turnOrder(from) for which
// v has a live outgoing edge, and true. It returns (0, false) if none of
// the three candidates has an edge — the GraphInvariantViolated case.
func chooseDirection(v *core.Vertex, from core.Direction) (core.Direction, bool) {
	for _, d := range turnOrder(from) {
		if v.Edges[d] != nil {
			return d, true
		}
	}
	return 0, false
}

// Loops walks every face of the junction graph left in residual after
// Branches has run, and returns every face except the one with the largest
// area (the outer face) as a BOX component. residual is consumed in the
// process: every edge is nulled, one directed half at a time, as its face
// walk crosses it.
//
// The outer double loop tries every (vertex, direction) pair with a live
// edge, in residual.Vertices order and fixed E,N,W,S direction order.
// Because each face walk only ever nulls the directed half of an edge it
// actually crosses (core.DisconnectOneSide, not core.Disconnect), the
// mirrored half on the far endpoint survives for the adjacent face's own
// walk to find and consume later — so each undirected edge is visited at
// most twice, once per bordering face.
func Loops(residual *core.Component) ([]*core.Component, error) {
	var faces []*core.Component

	for _, v := range residual.Vertices {
		for d := core.Direction(0); d < core.NDirections; d++ {
			if v.Edges[d] == nil {
				continue
			}
			face, err := walkFace(v, d)
			if err != nil {
				return nil, err
			}
			faces = append(faces, face)
		}
	}
	if len(faces) == 0 {
		return nil, nil
	}

	maxIdx := 0
	for i, f := range faces {
		if f.Area > faces[maxIdx].Area {
			maxIdx = i
		}
	}

	boxes := make([]*core.Component, 0, len(faces)-1)
	for i, f := range faces {
		if i == maxIdx {
			continue
		}
		f.Type = core.Box
		f.Dashed = residual.Dashed
		boxes = append(boxes, f)
	}
	return boxes, nil
}

// walkFace extracts the single face reached by stepping out of start in
// direction d, as a fresh component, and computes its area. It consumes the
// traversed edges' directed halves in residual as it goes.
func walkFace(start *core.Vertex, d core.Direction) (*core.Component, error) {
	f := core.NewComponent()
	startCopy := f.AddVertex(start.Y, start.X, start.Char)

	u, uCopy, dir := start, startCopy, d
	for {
		w := u.Edges[dir]
		if w == nil {
			return nil, core.NewGraphInvariantError(u, dir)
		}

		closing := w == start
		var wCopy *core.Vertex
		if closing {
			wCopy = startCopy
		} else {
			wCopy = f.AddVertex(w.Y, w.X, w.Char)
		}
		core.Connect(uCopy, dir, wCopy)
		core.DisconnectOneSide(u, dir)

		if closing {
			break
		}

		nextDir, ok := chooseDirection(w, dir)
		if !ok {
			return nil, core.NewGraphInvariantError(w, dir)
		}
		u, uCopy, dir = w, wCopy, nextDir
	}

	area, err := computeArea(f)
	if err != nil {
		return nil, err
	}
	f.Area = area
	return f, nil
}
