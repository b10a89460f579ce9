// Package render rasterizes a []core.Component (and any free-standing text
// annotations attached by upstream code) onto a PNG canvas.
//
// The vector pipeline is seehuhn.de/go/geom's path/vec/rect types feeding
// seehuhn.de/go/raster's Rasterizer: component outlines become path.Data
// polylines, Rasterizer.Stroke (dashed when Component.Dashed) and
// FillNonZero produce per-scanline coverage, and this package composites
// that coverage into an image.RGBA before handing it to image/png for the
// final encode (see DESIGN.md).
//
// Grid-to-pixel geometry (cell size, page borders, sub-pixel fuzz, the
// dash pattern, point-marker radius) is carried as DefaultSchema — see
// DESIGN.md for where these constants come from.
//
// Annotation text is drawn with golang.org/x/image/font's basicfont face:
// a full font-shaping pipeline (seehuhn.de/go/sfnt, brought in transitively
// by seehuhn.de/go/pdf) is out of proportion to citaa's non-goal of label
// placement — citaa only draws text it is handed, at the position it is
// handed, and a fixed-width bitmap face is the idiomatic way to do that
// without pulling in a font-shaping dependency of its own.
package render
