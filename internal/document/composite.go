package document

import (
	"image"
	"image/color"

	"github.com/example/layerpaint/internal/layer"
	"github.com/example/layerpaint/internal/render"
	"github.com/example/layerpaint/internal/shape"
)

var _ shape.Surface = (*render.Canvas)(nil)

// Composite renders layers bottom to top into a new transparent image of
// the given size. Each visible layer is painted onto its own scratch canvas
// (background first, then shapes in order) and blended source-over onto the
// result. It never mutates the layers.
func Composite(layers []*layer.Layer, size image.Point, paper color.RGBA) *image.RGBA {
	out := render.NewCanvas(size.X, size.Y)
	for _, l := range layers {
		if !l.Visible {
			continue
		}
		scratch := render.NewCanvas(size.X, size.Y)
		if bg, ok := l.Background(); ok {
			scratch.Fill(bg)
		}
		erase := eraseColor(l, paper)
		for _, s := range l.Shapes() {
			shape.Render(scratch, s, erase)
		}
		out.Composite(scratch)
	}
	return out.Image()
}

func eraseColor(l *layer.Layer, paper color.RGBA) color.RGBA {
	if bg, ok := l.Background(); ok {
		return bg
	}
	return paper
}
