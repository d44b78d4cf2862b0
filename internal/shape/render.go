package shape

import (
	"image"
	"image/color"
)

// Surface is the drawing collaborator shapes are painted onto.
type Surface interface {
	FillRect(r image.Rectangle, c color.Color)
	StrokeRect(r image.Rectangle, c color.Color, width int)
	FillEllipse(r image.Rectangle, c color.Color)
	StrokeEllipse(r image.Rectangle, c color.Color, width int)
	StrokePolyline(points []image.Point, c color.Color, width int)
	Blit(img image.Image, at image.Point)
}

// Render paints s onto dst. Eraser strokes use erase instead of a colour of
// their own.
func Render(dst Surface, s Shape, erase color.Color) {
	switch v := s.(type) {
	case Rectangle:
		box := v.Bounds()
		if v.Filled {
			dst.FillRect(box, v.Color)
		} else {
			dst.StrokeRect(box, v.Color, v.Width)
		}
	case Ellipse:
		box := v.Bounds()
		if v.Filled {
			dst.FillEllipse(box, v.Color)
		} else {
			dst.StrokeEllipse(box, v.Color, v.Width)
		}
	case Freehand:
		if len(v.Points) >= 2 {
			dst.StrokePolyline(v.Points, v.Color, v.Width)
		}
	case Eraser:
		if len(v.Points) >= 2 {
			dst.StrokePolyline(v.Points, erase, v.Width)
		}
	case Raster:
		if v.Image != nil {
			dst.Blit(v.Image, v.Origin)
		}
	}
}
