// Package compact implements the compactifier: it removes every vertex
// whose character is a "plain segment" ('-'/'=' horizontal, '|'/':'
// vertical) that has both of its aligned neighbours present, splicing
// those two neighbours together with core.Splice and dropping the
// intermediate vertex from the component's arena.
//
// Compact reads edges live during a single pass over a snapshot of the
// arena, which is enough to collapse a run of several collinear segment
// cells completely in one call: each splice updates the shared neighbour
// pointer the next cell in the run reads.
//
// Edge case: a segment cell with only one aligned neighbour (a
// terminator) or none (an isolated stray) is left in place; the former
// becomes a genuine line endpoint, the latter is dropped later by the
// branch extractor as a zero-degree vertex.
package compact
