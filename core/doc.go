// Package core defines the Vertex, Direction, and Component types shared by
// every stage of the citaa shape-extraction pipeline (tracer, compact,
// extract, diagram), and the two mutators — Connect and Disconnect — that
// are the only code allowed to touch a vertex's edge table directly, apart
// from the single-sided DisconnectOneSide used by the loop extractor.
//
// Unlike a general-purpose graph library, core does not key vertices by a
// string ID in a shared map. Each Component owns an arena — a plain
// []*Vertex — and every edge is a direct pointer into that arena, addressed
// by compass Direction (EAST, NORTH, WEST, SOUTH). This follows the
// cyclic-pointer-graph guidance: ownership is "vertex belongs to exactly one
// Component's arena", not reference counting, so destroying a Component's
// arena destroys its vertices. See Component.Vertices.
//
// Determinism and single-threadedness (the whole pipeline runs on one
// goroutine, batch, no cancellation) mean core carries none of the
// sync.RWMutex machinery a concurrent graph library would need: there is
// exactly one owner of any Vertex at any time, and callers never touch it
// from more than one goroutine.
//
// Direction arithmetic:
//
//	Opposite: (d+2) mod 4
//	Next:     (d+1) mod 4
//	Prev:     (d+3) mod 4  (equivalently (d-1+4) mod 4)
//
// "Left turn" and "right turn" are deliberately not used to describe these
// offsets anywhere in this module — which mod-4 step reads as "left" is
// orientation-dependent and easy to get backwards (see DESIGN.md). The
// face-walk turn preference in package extract is defined directly in terms
// of Next/straight/Prev instead.
package core
