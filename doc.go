// Package citaa turns ASCII-art diagrams into rendered PNGs.
//
// citaa reads a grid of characters such as:
//
//	+-----+     +-----+
//	| one | --> | two |
//	+-----+     +-----+
//
// traces connected runs of drawing characters, splices away redundant
// straight-segment detail, and classifies what remains into lines and
// boxes with their corner/endpoint vertices, before handing the result to
// a renderer.
//
// The pipeline is organized as a chain of single-purpose packages:
//
//	grid/    — the rectangular character grid and its drawing-character
//	           vocabulary
//	gridio/  — decodes a byte stream into a grid
//	tracer/  — flood-fills the grid into connected components
//	compact/ — collapses collinear straight-segment vertices
//	extract/ — pulls branches (open paths) and loops (closed faces) out
//	           of a traced, compacted component
//	diagram/ — the single Extract entry point chaining the above
//	render/  — rasterizes extracted components to a PNG
//
// cmd/citaa wires decode, extract and render into a command-line tool.
package citaa
