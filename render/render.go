package render

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/raster"

	"github.com/asciiart/citaa/core"
)

// Render rasterizes components, plus any free-standing text annotations,
// onto a width*height-cell canvas (grid coordinates) and writes a PNG to w.
func Render(w io.Writer, width, height int, components []*core.Component, freeText []core.Annotation) error {
	schema := DefaultSchema
	pxW := schema.PixelWidth(width)
	pxH := schema.PixelHeight(height)

	img := image.NewRGBA(image.Rect(0, 0, pxW, pxH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(pxW), URy: float64(pxH)}
	r := raster.NewRasterizer(clip)
	r.Width = 1.5

	for _, c := range components {
		paintComponent(r, img, schema, c)
	}
	for _, a := range freeText {
		paintText(img, schema, a, color.Black)
	}

	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}

// paintComponent strokes a component's outline (closed for BOX, open for
// LINE), optionally filling a BOX's interior with its Background colour
// first, then overlays any point markers ('*' vertices), arrowheads
// (arrow-glyph vertices), and the component's own text annotations.
// Vertex order within the component is its walk order from the
// tracer/extractors, which is already the polygon/polyline traversal order
// the path needs. WhiteText selects white ink for c.Text so a label stays
// legible against a dark Background fill.
func paintComponent(r *raster.Rasterizer, img *image.RGBA, schema Schema, c *core.Component) {
	if len(c.Vertices) == 0 {
		return
	}

	outline := &path.Data{}
	outline = outline.MoveTo(schema.Point(c.Vertices[0].Y, c.Vertices[0].X))
	for _, v := range c.Vertices[1:] {
		outline = outline.LineTo(schema.Point(v.Y, v.X))
	}
	if c.Type == core.Box {
		outline = outline.Close()
	}

	if c.Type == core.Box && c.Background != nil {
		bg := toColor(*c.Background)
		r.FillNonZero(outline, func(y, xMin int, coverage []float32) {
			blendRow(img, y, xMin, coverage, bg)
		})
	}

	r.Dash = nil
	r.DashPhase = 0
	if c.Dashed {
		r.Dash = schema.Dash
	}
	ink := color.Black
	r.Stroke(asPath(outline), func(y, xMin int, coverage []float32) {
		blendRow(img, y, xMin, coverage, ink)
	})

	for _, v := range c.Vertices {
		switch v.Char {
		case '*':
			paintPointMarker(r, img, schema, v)
		case '<', '>', '^', 'V', 'v':
			paintArrowhead(r, img, schema, v)
		}
	}

	textInk := color.Color(color.Black)
	if c.WhiteText {
		textInk = color.White
	}
	for _, ann := range c.Text {
		paintText(img, schema, ann, textInk)
	}
}

// paintPointMarker draws a small filled circle (approximated as a
// 12-sided polygon) at v.
func paintPointMarker(r *raster.Rasterizer, img *image.RGBA, schema Schema, v *core.Vertex) {
	center := schema.Point(v.Y, v.X)
	p := circlePath(center, schema.PointMarkerRadius)
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		blendRow(img, y, xMin, coverage, color.Black)
	})
}

// paintArrowhead draws a small filled triangle at v, oriented by its arrow
// glyph. citaa does not inspect the adjacent vertex to determine line
// direction; the glyph alone fixes the heading.
func paintArrowhead(r *raster.Rasterizer, img *image.RGBA, schema Schema, v *core.Vertex) {
	center := schema.Point(v.Y, v.X)
	s := schema.ArrowSize

	var tip, left, right vec.Vec2
	switch v.Char {
	case '>':
		tip = vec.Vec2{X: center.X + s, Y: center.Y}
		left = vec.Vec2{X: center.X - s, Y: center.Y - s}
		right = vec.Vec2{X: center.X - s, Y: center.Y + s}
	case '<':
		tip = vec.Vec2{X: center.X - s, Y: center.Y}
		left = vec.Vec2{X: center.X + s, Y: center.Y - s}
		right = vec.Vec2{X: center.X + s, Y: center.Y + s}
	case '^':
		tip = vec.Vec2{X: center.X, Y: center.Y - s}
		left = vec.Vec2{X: center.X - s, Y: center.Y + s}
		right = vec.Vec2{X: center.X + s, Y: center.Y + s}
	case 'V', 'v':
		tip = vec.Vec2{X: center.X, Y: center.Y + s}
		left = vec.Vec2{X: center.X - s, Y: center.Y - s}
		right = vec.Vec2{X: center.X + s, Y: center.Y - s}
	default:
		return
	}

	p := (&path.Data{}).MoveTo(tip).LineTo(left).LineTo(right).Close()
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		blendRow(img, y, xMin, coverage, color.Black)
	})
}

// circlePath approximates a circle of the given radius centred at c with a
// 12-sided polygon; the rasterizer's own Flatness setting is for curve
// commands, which this package never emits.
func circlePath(c vec.Vec2, radius float64) *path.Data {
	const sides = 12
	p := &path.Data{}
	for i := 0; i <= sides; i++ {
		theta := 2 * math.Pi * float64(i) / sides
		pt := vec.Vec2{X: c.X + radius*math.Cos(theta), Y: c.Y + radius*math.Sin(theta)}
		if i == 0 {
			p = p.MoveTo(pt)
		} else {
			p = p.LineTo(pt)
		}
	}
	return p.Close()
}

// asPath adapts a *path.Data's command/coordinate slices to the
// iterator-shaped path.Path that Rasterizer.Stroke expects, walking Cmds
// and Coords exactly the way raster.Rasterizer.collectPathEdges does
// internally for Fill.
func asPath(p *path.Data) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) bool {
		coordIdx := 0
		for _, cmd := range p.Cmds {
			var pts []vec.Vec2
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				pts = p.Coords[coordIdx : coordIdx+1]
				coordIdx++
			case path.CmdQuadTo:
				pts = p.Coords[coordIdx : coordIdx+2]
				coordIdx += 2
			case path.CmdCubeTo:
				pts = p.Coords[coordIdx : coordIdx+3]
				coordIdx += 3
			case path.CmdClose:
				pts = nil
			}
			if !yield(cmd, pts) {
				return false
			}
		}
		return true
	}
}

// blendRow alpha-composites a row of anti-aliased coverage values into img
// using the solid ink colour.
func blendRow(img *image.RGBA, y, xMin int, coverage []float32, ink color.Color) {
	ir, ig, ib, _ := ink.RGBA()
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for i, cov := range coverage {
		x := xMin + i
		if x < bounds.Min.X || x >= bounds.Max.X || cov <= 0 {
			continue
		}
		if cov > 1 {
			cov = 1
		}
		bg := img.RGBAAt(x, y)
		a := float64(cov)
		px := color.RGBA{
			R: blend8(bg.R, uint8(ir>>8), a),
			G: blend8(bg.G, uint8(ig>>8), a),
			B: blend8(bg.B, uint8(ib>>8), a),
			A: 255,
		}
		img.SetRGBA(x, y, px)
	}
}

func blend8(bg, fg uint8, a float64) uint8 {
	return uint8(float64(bg)*(1-a) + float64(fg)*a)
}

func toColor(rgb core.RGB) color.Color {
	scale := func(c uint8) uint8 {
		return uint8(float64(c) * 255.0 / 15.0)
	}
	return color.RGBA{R: scale(rgb.R), G: scale(rgb.G), B: scale(rgb.B), A: 255}
}

// paintText draws an annotation using a fixed-width bitmap face, in ink.
// Full glyph shaping is out of scope; citaa only needs to draw the text it
// is handed at the position it is handed.
func paintText(img *image.RGBA, schema Schema, a core.Annotation, ink color.Color) {
	pt := schema.Point(a.Y, a.X)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(pt.X * 64), Y: fixed.Int26_6(pt.Y * 64)},
	}
	d.DrawString(a.Text)
}
