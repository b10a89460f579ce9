package render

import "seehuhn.de/go/geom/vec"

// Schema is the grid-to-pixel geometry every component is rasterized
// against.
type Schema struct {
	XCell, YCell           float64
	BorderLeft, BorderRight float64
	BorderTop, BorderBottom float64
	FuzzX, FuzzY           float64

	// Dash is the on/off pattern (user-space units) used when a
	// Component's Dashed flag is set.
	Dash []float64

	// PointMarkerRadius is the filled-circle radius drawn at every vertex
	// whose source character is '*'.
	PointMarkerRadius float64

	// ArrowSize is the half-length of the filled triangle drawn at every
	// vertex whose source character is an arrow glyph.
	ArrowSize float64
}

// DefaultSchema: 10x14 cells, borders left/right=20, top/bottom=28,
// a 0.5-pixel fuzz, a 6-on/4-off dash pattern, and a 3-pixel point
// marker radius (see DESIGN.md for where these numbers come from).
// ArrowSize has no equivalent elsewhere; 5.0 is chosen to read clearly at
// the default cell size.
var DefaultSchema = Schema{
	XCell: 10, YCell: 14,
	BorderLeft: 20, BorderRight: 20,
	BorderTop: 28, BorderBottom: 28,
	FuzzX: 0.5, FuzzY: 0.5,
	Dash:              []float64{6.0, 4.0},
	PointMarkerRadius: 3.0,
	ArrowSize:         5.0,
}

// PixelWidth and PixelHeight convert a grid's cell dimensions to the final
// canvas size in pixels.
func (s Schema) PixelWidth(gridWidth int) int {
	return int(s.BorderLeft+s.BorderRight) + gridWidth*int(s.XCell)
}

func (s Schema) PixelHeight(gridHeight int) int {
	return int(s.BorderTop+s.BorderBottom) + gridHeight*int(s.YCell)
}

// Point maps a grid cell (y,x) to its device-space coordinate, including
// the sub-pixel fuzz applied to avoid coverage seams between adjacent cell
// edges.
func (s Schema) Point(y, x int) vec.Vec2 {
	return vec.Vec2{
		X: s.BorderLeft + float64(x)*s.XCell + s.FuzzX,
		Y: s.BorderTop + float64(y)*s.YCell + s.FuzzY,
	}
}
