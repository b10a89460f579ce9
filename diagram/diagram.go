package diagram

import (
	"io"

	"github.com/asciiart/citaa/compact"
	"github.com/asciiart/citaa/core"
	"github.com/asciiart/citaa/extract"
	"github.com/asciiart/citaa/grid"
	"github.com/asciiart/citaa/gridio"
	"github.com/asciiart/citaa/tracer"
)

// Extract decodes r into a grid, traces its connected drawing components,
// and runs compaction and branch/loop extraction on each in turn, returning
// a flat ordered list of LINE and BOX components. Components are emitted
// component-by-component, branches before loops within each.
//
// Extract returns grid.ErrEmptyGrid (via gridio.Decode) if the input has no
// rows or columns, and a *core.GraphInvariantError (wrapping
// core.ErrGraphInvariantViolated) if the loop extractor gets stuck
// mid-walk.
func Extract(r io.Reader) ([]*core.Component, error) {
	g, err := gridio.Decode(r)
	if err != nil {
		return nil, err
	}

	status := grid.NewStatusGrid(g.Height, g.Width)
	traced := tracer.Trace(g, status)

	var out []*core.Component
	for _, c := range traced {
		compact.Compact(c)

		lines := extract.Branches(c)
		out = append(out, lines...)

		boxes, err := extract.Loops(c)
		if err != nil {
			return nil, err
		}
		out = append(out, boxes...)
	}
	return out, nil
}
