// Package tracer implements the component tracer: it scans a grid.Grid in
// row-major order and flood-fills each maximal 4-connected region of
// drawing characters into an Unknown-typed core.Component, wiring a core
// edge between every pair of 4-adjacent drawing cells (not just the BFS
// tree edges — a box's four sides form a cycle, so the full adjacency
// graph, including edges to already-visited neighbours, must be built).
//
// The flood fill itself is an ordinary connected-components BFS: a
// visited array plus a FIFO queue rather than native recursion, so deeply
// nested or very large regions cannot blow the call stack. It differs from
// a textbook connected-components scan only in what it builds as output —
// not a bare coordinate set, but a core.Component whose arena holds
// fully edge-wired *core.Vertex values.
//
// Determinism: the outer scan is row-major, and the neighbour order tried
// from every dequeued vertex is fixed E, N, W, S (core's Direction
// declaration order), so two runs on the same grid produce byte-identical
// vertex insertion order.
package tracer
