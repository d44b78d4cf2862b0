// Package shape describes the marks a user draws and how they are painted
// onto a Surface.
package shape

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// ErrTooFewPoints is returned when a stroke has fewer than two points.
var ErrTooFewPoints = errors.New("stroke needs at least two points")

// Kind identifies the variant of a Shape.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
	KindFreehand
	KindEraser
	KindRaster
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindFreehand:
		return "freehand"
	case KindEraser:
		return "eraser"
	case KindRaster:
		return "raster"
	}
	return "unknown"
}

// Shape is one committed mark. The set of implementations is closed: it is
// exactly the types declared in this package.
type Shape interface {
	Kind() Kind
	// Bounds reports the area the shape may paint, in canvas coordinates.
	Bounds() image.Rectangle
	shape()
}

// Rectangle is an axis-aligned box spanned by two corner points.
type Rectangle struct {
	Start, End image.Point
	Color      color.RGBA
	Filled     bool
	Width      int
}

// Ellipse is the ellipse inscribed in the box spanned by two corner points.
type Ellipse struct {
	Start, End image.Point
	Color      color.RGBA
	Filled     bool
	Width      int
}

// Freehand is a connected polyline in a colour.
type Freehand struct {
	Points []image.Point
	Color  color.RGBA
	Width  int
}

// Eraser is a polyline painted with the erase colour of the layer it is
// rendered into.
type Eraser struct {
	Points []image.Point
	Width  int
}

// Raster is a bitmap blitted at Origin. Loading a file or pasting from the
// clipboard produces one.
type Raster struct {
	Image  *image.RGBA
	Origin image.Point
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Ellipse) Kind() Kind   { return KindEllipse }
func (Freehand) Kind() Kind  { return KindFreehand }
func (Eraser) Kind() Kind    { return KindEraser }
func (Raster) Kind() Kind    { return KindRaster }

func (Rectangle) shape() {}
func (Ellipse) shape()   {}
func (Freehand) shape()  {}
func (Eraser) shape()    {}
func (Raster) shape()    {}

func (r Rectangle) Bounds() image.Rectangle { return Normalize(r.Start, r.End) }
func (e Ellipse) Bounds() image.Rectangle   { return Normalize(e.Start, e.End) }
func (f Freehand) Bounds() image.Rectangle  { return strokeBounds(f.Points, f.Width) }
func (e Eraser) Bounds() image.Rectangle    { return strokeBounds(e.Points, e.Width) }

func (r Raster) Bounds() image.Rectangle {
	if r.Image == nil {
		return image.Rectangle{}
	}
	return r.Image.Bounds().Sub(r.Image.Bounds().Min).Add(r.Origin)
}

// Normalize returns the box spanned by two arbitrary corner points:
// left=min(x1,x2), top=min(y1,y2), width=|x1-x2|, height=|y1-y2|.
func Normalize(a, b image.Point) image.Rectangle {
	// image.Rect already swaps coordinates so Min <= Max.
	return image.Rect(a.X, a.Y, b.X, b.Y)
}

// NewRectangle builds a rectangle record.
func NewRectangle(start, end image.Point, c color.RGBA, filled bool, width int) Rectangle {
	return Rectangle{Start: start, End: end, Color: c, Filled: filled, Width: clampWidth(width)}
}

// NewEllipse builds an ellipse record.
func NewEllipse(start, end image.Point, c color.RGBA, filled bool, width int) Ellipse {
	return Ellipse{Start: start, End: end, Color: c, Filled: filled, Width: clampWidth(width)}
}

// NewFreehand copies points into a freehand record.
func NewFreehand(points []image.Point, c color.RGBA, width int) (Freehand, error) {
	if len(points) < 2 {
		return Freehand{}, ErrTooFewPoints
	}
	return Freehand{Points: clonePoints(points), Color: c, Width: clampWidth(width)}, nil
}

// NewEraser copies points into an eraser record.
func NewEraser(points []image.Point, width int) (Eraser, error) {
	if len(points) < 2 {
		return Eraser{}, ErrTooFewPoints
	}
	return Eraser{Points: clonePoints(points), Width: clampWidth(width)}, nil
}

// NewRaster copies img so later changes to the source do not leak in.
func NewRaster(img image.Image, origin image.Point) Raster {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return Raster{Image: rgba, Origin: origin}
}

func clampWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

func clonePoints(points []image.Point) []image.Point {
	out := make([]image.Point, len(points))
	copy(out, points)
	return out
}

func strokeBounds(points []image.Point, width int) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: points[0], Max: points[0].Add(image.Pt(1, 1))}
	for _, p := range points[1:] {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r.Inset(-(width/2 + 1))
}
