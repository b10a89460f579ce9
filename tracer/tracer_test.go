package tracer_test

import (
	"testing"

	"github.com/asciiart/citaa/core"
	"github.com/asciiart/citaa/grid"
	"github.com/asciiart/citaa/tracer"
)

func buildGrid(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	rs := make([][]rune, len(rows))
	for i, r := range rows {
		rs[i] = []rune(r)
	}
	g, err := grid.New(rs)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

func TestTrace_SingleBoxIsOneComponent(t *testing.T) {
	g := buildGrid(t, []string{
		"+----+",
		"|    |",
		"|    |",
		"+----+",
	})
	status := grid.NewStatusGrid(g.Height, g.Width)
	comps := tracer.Trace(g, status)
	if len(comps) != 1 {
		t.Fatalf("len(comps) = %d; want 1", len(comps))
	}
	// 2*6 + 2*2 (perimeter cells) = 16 drawing cells.
	if got := len(comps[0].Vertices); got != 16 {
		t.Fatalf("len(Vertices) = %d; want 16", got)
	}
	// Drawing cells are marked Seen; blank cells (the box interior) are
	// never part of a component and stay Empty.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			want := grid.Empty
			if grid.IsDrawingChar(g.At(y, x)) {
				want = grid.Seen
			}
			if status.Get(y, x) != want {
				t.Fatalf("cell (%d,%d) status = %v; want %v", y, x, status.Get(y, x), want)
			}
		}
	}
}

func TestTrace_BoxCornersFormACycle(t *testing.T) {
	g := buildGrid(t, []string{
		"+--+",
		"|  |",
		"+--+",
	})
	status := grid.NewStatusGrid(g.Height, g.Width)
	comps := tracer.Trace(g, status)
	c := comps[0]

	tl := c.FindVertex(0, 0)
	tr := c.FindVertex(0, 3)
	bl := c.FindVertex(2, 0)
	br := c.FindVertex(2, 3)
	for _, v := range []*core.Vertex{tl, tr, bl, br} {
		if v == nil {
			t.Fatalf("expected corner vertex missing")
		}
	}
	if tl.Edges[core.East] == nil || tl.Edges[core.South] == nil {
		t.Fatalf("top-left corner missing expected edges: %+v", tl.Edges)
	}
	if br.Edges[core.West] == nil || br.Edges[core.North] == nil {
		t.Fatalf("bottom-right corner missing expected edges: %+v", br.Edges)
	}
}

func TestTrace_TwoSeparateComponents(t *testing.T) {
	g := buildGrid(t, []string{
		"+-+   +-+",
		"| |   | |",
		"+-+   +-+",
	})
	status := grid.NewStatusGrid(g.Height, g.Width)
	comps := tracer.Trace(g, status)
	if len(comps) != 2 {
		t.Fatalf("len(comps) = %d; want 2", len(comps))
	}
}

func TestTrace_RowMajorInsertionOrder(t *testing.T) {
	g := buildGrid(t, []string{
		"+-+",
	})
	status := grid.NewStatusGrid(g.Height, g.Width)
	comps := tracer.Trace(g, status)
	c := comps[0]
	if len(c.Vertices) != 3 {
		t.Fatalf("len(Vertices) = %d; want 3", len(c.Vertices))
	}
	// Starting vertex is always the row-major-first cell; with East tried
	// first from every vertex, a single row is discovered left to right.
	wantX := []int{0, 1, 2}
	for i, v := range c.Vertices {
		if v.X != wantX[i] {
			t.Fatalf("Vertices[%d].X = %d; want %d", i, v.X, wantX[i])
		}
	}
}
