package compact_test

import (
	"testing"

	"github.com/asciiart/citaa/compact"
	"github.com/asciiart/citaa/core"
	"github.com/asciiart/citaa/grid"
	"github.com/asciiart/citaa/tracer"
)

func trace(t *testing.T, rows []string) *core.Component {
	t.Helper()
	rs := make([][]rune, len(rows))
	for i, r := range rows {
		rs[i] = []rune(r)
	}
	g, err := grid.New(rs)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	status := grid.NewStatusGrid(g.Height, g.Width)
	comps := tracer.Trace(g, status)
	if len(comps) != 1 {
		t.Fatalf("len(comps) = %d; want 1", len(comps))
	}
	return comps[0]
}

func TestCompact_BoxKeepsOnlyFourCorners(t *testing.T) {
	c := trace(t, []string{
		"+----+",
		"|    |",
		"|    |",
		"+----+",
	})
	compact.Compact(c)

	if len(c.Vertices) != 4 {
		t.Fatalf("len(Vertices) = %d; want 4", len(c.Vertices))
	}
	for _, v := range c.Vertices {
		if v.Char != '+' {
			t.Errorf("surviving vertex %v has char %q; want '+'", v, v.Char)
		}
	}
	tl := c.FindVertex(0, 0)
	tr := c.FindVertex(0, 5)
	bl := c.FindVertex(3, 0)
	br := c.FindVertex(3, 5)
	if tl.Edges[core.East] != tr || tr.Edges[core.West] != tl {
		t.Fatalf("top edge not spliced into a direct corner-to-corner edge")
	}
	if tl.Edges[core.South] != bl || bl.Edges[core.North] != tl {
		t.Fatalf("left edge not spliced into a direct corner-to-corner edge")
	}
	if br.Edges[core.West] != bl || br.Edges[core.North] != tr {
		t.Fatalf("bottom/right edges not spliced correctly")
	}
}

func TestCompact_IsIdempotent(t *testing.T) {
	c := trace(t, []string{
		"+----+",
		"|    |",
		"+----+",
	})
	compact.Compact(c)
	before := len(c.Vertices)
	compact.Compact(c)
	if len(c.Vertices) != before {
		t.Fatalf("second Compact changed vertex count: %d -> %d", before, len(c.Vertices))
	}
}

// TestCompact_StraySegmentEndpointsSurviveAsTerminators: a bare run of '-'
// with no corners on either end compactifies down to its two endpoints,
// since the endpoints of the run are themselves plain-segment characters
// with only one aligned neighbour apiece, which Compact leaves as
// terminators, not all the way down to nothing.
func TestCompact_StraySegmentEndpointsSurviveAsTerminators(t *testing.T) {
	c := trace(t, []string{"---"})
	compact.Compact(c)

	if len(c.Vertices) != 2 {
		t.Fatalf("len(Vertices) = %d; want 2 (the two terminator endpoints)", len(c.Vertices))
	}
	left := c.FindVertex(0, 0)
	right := c.FindVertex(0, 2)
	if left == nil || right == nil {
		t.Fatalf("expected endpoints at x=0 and x=2 to survive")
	}
	if left.Edges[core.East] != right || right.Edges[core.West] != left {
		t.Fatalf("endpoints not directly connected after compaction")
	}
}

func TestCompact_DashedCornerSurvives(t *testing.T) {
	c := trace(t, []string{
		"+=-=+",
		":   :",
		"+=-=+",
	})
	compact.Compact(c)
	if len(c.Vertices) != 4 {
		t.Fatalf("len(Vertices) = %d; want 4 corners", len(c.Vertices))
	}
	if !c.Dashed {
		t.Fatal("Dashed = false; want true even though every dash character was spliced away")
	}
}
