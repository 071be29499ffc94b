package contour

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Renderer draws a traced PathSet onto a raster canvas. It is a host-side
// adapter: the pipeline itself never renders.
type Renderer struct {
	// LineWidth is the stroke width in pixels; values below 1 draw at 1.
	LineWidth float64
	// Background fills the canvas before stroking; nil leaves it white.
	Background color.Color
	// Stroke is the polyline color; nil strokes black.
	Stroke color.Color
}

// Draw strokes every path of the set onto a w x h canvas and returns the
// resulting image.
func (r *Renderer) Draw(set PathSet, w, h int) image.Image {
	ctx := gg.NewContext(w, h)

	bg := r.Background
	if bg == nil {
		bg = color.White
	}
	ctx.SetColor(bg)
	ctx.DrawRectangle(0, 0, float64(w), float64(h))
	ctx.Fill()

	stroke := r.Stroke
	if stroke == nil {
		stroke = color.Black
	}
	ctx.SetStrokeStyle(gg.NewSolidPattern(stroke))
	ctx.SetLineWidth(Max(r.LineWidth, 1))

	for _, path := range set {
		ctx.MoveTo(path[0].X, path[0].Y)
		for _, pt := range path[1:] {
			ctx.LineTo(pt.X, pt.Y)
		}
		ctx.Stroke()
	}
	return ctx.Image()
}
