package core

// Connect and Disconnect are the only two general-purpose mutators of a
// Vertex's edge table. Other packages build and tear down component graphs
// through these two functions (directly or via Splice), which keeps edge
// symmetry true by construction; the one exception is DisconnectOneSide,
// which clears a single side of an edge and is used only by the loop
// extractor's face walk.

// Connect wires a bidirectional edge between u and v in direction d: u's
// edge slot d points to v, and v's edge slot d.Opposite() points to u.
// Connect does not validate geometric alignment (invariant E2); callers are
// expected to only connect vertices that are actually adjacent (tracer) or
// aligned (post-compactification stages).
func Connect(u *Vertex, d Direction, v *Vertex) {
	u.Edges[d] = v
	v.Edges[d.Opposite()] = u
}

// Disconnect removes the edge leaving u in direction d, clearing both
// u's slot and, if still present, the mirrored slot on the far endpoint.
// Disconnect is a no-op if u has no edge in direction d.
func Disconnect(u *Vertex, d Direction) {
	v := u.Edges[d]
	if v == nil {
		return
	}
	u.Edges[d] = nil
	opp := d.Opposite()
	if v.Edges[opp] == u {
		v.Edges[opp] = nil
	}
}

// Splice replaces vertex v — which must have exactly the two aligned
// neighbours a (in direction d) and b (in direction d.Opposite()) — with a
// direct edge between a and b, then disconnects v entirely. This is the
// compactifier's core operation: collapsing a collinear segment cell by
// joining its two neighbours and dropping the intermediate.
func Splice(v *Vertex, d Direction) {
	a := v.Edges[d]
	b := v.Edges[d.Opposite()]
	for dir := Direction(0); dir < NDirections; dir++ {
		Disconnect(v, dir)
	}
	if a != nil && b != nil {
		Connect(a, d.Opposite(), b)
	}
}

// DisconnectOneSide clears only u's own edge slot d, leaving the mirrored
// slot on the far endpoint untouched. This intentionally breaks edge
// symmetry and exists for exactly one caller: the loop extractor's face
// walk, which must consume a directed half of an edge at a time so that the
// adjacent face on the other side can still discover and walk its own half
// later. Every other package uses Connect/Disconnect exclusively.
func DisconnectOneSide(u *Vertex, d Direction) {
	u.Edges[d] = nil
}
