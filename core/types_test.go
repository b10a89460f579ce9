package core_test

import (
	"testing"

	"github.com/asciiart/citaa/core"
)

func TestDirection_Opposite(t *testing.T) {
	cases := []struct {
		d, want core.Direction
	}{
		{core.East, core.West},
		{core.North, core.South},
		{core.West, core.East},
		{core.South, core.North},
	}
	for _, c := range cases {
		if got := c.d.Opposite(); got != c.want {
			t.Errorf("%v.Opposite() = %v; want %v", c.d, got, c.want)
		}
	}
}

func TestDirection_NextPrevWrap(t *testing.T) {
	if core.South.Next() != core.East {
		t.Errorf("South.Next() = %v; want East (wraps mod 4)", core.South.Next())
	}
	if core.East.Prev() != core.South {
		t.Errorf("East.Prev() = %v; want South (wraps mod 4)", core.East.Prev())
	}
}

func TestDirection_DYDX(t *testing.T) {
	cases := []struct {
		d      core.Direction
		dy, dx int
	}{
		{core.East, 0, 1},
		{core.West, 0, -1},
		{core.North, -1, 0},
		{core.South, 1, 0},
	}
	for _, c := range cases {
		if got := c.d.DY(); got != c.dy {
			t.Errorf("%v.DY() = %d; want %d", c.d, got, c.dy)
		}
		if got := c.d.DX(); got != c.dx {
			t.Errorf("%v.DX() = %d; want %d", c.d, got, c.dx)
		}
	}
}

func TestVertex_DegreeAndSoleDirection(t *testing.T) {
	a := &core.Vertex{Y: 0, X: 0, Char: '+'}
	b := &core.Vertex{Y: 0, X: 1, Char: '-'}

	if a.Degree() != 0 {
		t.Fatalf("fresh vertex degree = %d; want 0", a.Degree())
	}
	core.Connect(a, core.East, b)
	if a.Degree() != 1 || b.Degree() != 1 {
		t.Fatalf("after Connect, degrees = %d,%d; want 1,1", a.Degree(), b.Degree())
	}
	dir, ok := a.SoleDirection()
	if !ok || dir != core.East {
		t.Fatalf("a.SoleDirection() = %v,%v; want East,true", dir, ok)
	}
	if _, ok := b.SoleDirection(); !ok {
		t.Fatalf("b.SoleDirection() ok = false; want true")
	}
}

func TestComponent_AddFindRemove(t *testing.T) {
	c := core.NewComponent()
	if c.Type != core.Unknown {
		t.Fatalf("new component type = %v; want Unknown", c.Type)
	}
	v := c.AddVertex(2, 3, '+')
	if len(c.Vertices) != 1 {
		t.Fatalf("len(Vertices) = %d; want 1", len(c.Vertices))
	}
	if got := c.FindVertex(2, 3); got != v {
		t.Fatalf("FindVertex(2,3) = %p; want %p", got, v)
	}
	if got := c.FindVertex(9, 9); got != nil {
		t.Fatalf("FindVertex(9,9) = %v; want nil", got)
	}
	c.Remove(v)
	if len(c.Vertices) != 0 {
		t.Fatalf("len(Vertices) after Remove = %d; want 0", len(c.Vertices))
	}
}
