package compact

import (
	"github.com/asciiart/citaa/core"
	"github.com/asciiart/citaa/grid"
)

// Compact collapses every collapsible plain-segment vertex in c, in place,
// and marks c.Dashed if any vertex present before splicing used a dashed
// segment character. Calling Compact a second time on the same component
// is a no-op: after one pass, no surviving plain-segment vertex has both
// of its aligned neighbours present any more.
func Compact(c *core.Component) {
	snapshot := make([]*core.Vertex, len(c.Vertices))
	copy(snapshot, c.Vertices)

	for _, v := range snapshot {
		if grid.IsDashed(v.Char) {
			c.Dashed = true
		}
	}

	for _, v := range snapshot {
		switch {
		case grid.IsHorizontalSegment(v.Char):
			if v.Edges[core.West] != nil && v.Edges[core.East] != nil {
				core.Splice(v, core.East)
				c.Remove(v)
			}
		case grid.IsVerticalSegment(v.Char):
			if v.Edges[core.North] != nil && v.Edges[core.South] != nil {
				core.Splice(v, core.North)
				c.Remove(v)
			}
		}
	}
}
