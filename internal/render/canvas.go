// Package render implements the raster surface the paint program draws on.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four curves approximate a
// quarter ellipse each.
const kappa = 0.5522847498

// Canvas is an RGBA drawing surface. The zero value is not usable; create
// one with NewCanvas or Wrap.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a fully transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Wrap draws directly into img.
func Wrap(img *image.RGBA) *Canvas { return &Canvas{img: img} }

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Fill replaces every pixel with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Composite blends src over c using source-over alpha compositing.
func (c *Canvas) Composite(src *Canvas) {
	draw.Draw(c.img, c.img.Bounds(), src.img, c.img.Bounds().Min, draw.Over)
}

// FillRect paints the rectangle r.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// StrokeRect paints an outline of the given width just inside r.
func (c *Canvas) StrokeRect(r image.Rectangle, col color.Color, width int) {
	if r.Empty() {
		return
	}
	if width < 1 {
		width = 1
	}
	if 2*width >= r.Dx() || 2*width >= r.Dy() {
		c.FillRect(r, col)
		return
	}
	c.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	c.FillRect(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	c.FillRect(image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), col)
	c.FillRect(image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), col)
}

// FillEllipse paints the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	z := c.rasterizer()
	ellipsePath(z, r, false)
	c.drawRasterizer(z, col)
}

// StrokeEllipse paints an elliptical ring of the given width inside r.
func (c *Canvas) StrokeEllipse(r image.Rectangle, col color.Color, width int) {
	if r.Empty() {
		return
	}
	if width < 1 {
		width = 1
	}
	inner := r.Inset(width)
	if inner.Empty() {
		c.FillEllipse(r, col)
		return
	}
	z := c.rasterizer()
	ellipsePath(z, r, false)
	// Opposite winding cancels coverage inside the inner ellipse.
	ellipsePath(z, inner, true)
	c.drawRasterizer(z, col)
}

// StrokePolyline connects consecutive points with square-brush lines.
func (c *Canvas) StrokePolyline(points []image.Point, col color.Color, width int) {
	if len(points) < 2 {
		return
	}
	src := image.NewUniform(col)
	for i := 1; i < len(points); i++ {
		drawLine(c.img, points[i-1], points[i], src, width)
	}
}

// Blit draws img with its top-left corner at at.
func (c *Canvas) Blit(img image.Image, at image.Point) {
	b := img.Bounds()
	draw.Draw(c.img, b.Sub(b.Min).Add(at), img, b.Min, draw.Over)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (c *Canvas) drawRasterizer(z *vector.Rasterizer, col color.Color) {
	b := c.img.Bounds()
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// ellipsePath appends a closed ellipse inscribed in r. Coordinates are
// relative to the canvas origin, which is always (0,0) for canvases built by
// this package.
func ellipsePath(z *vector.Rasterizer, r image.Rectangle, reverse bool) {
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2
	kx := rx * kappa
	ky := ry * kappa

	if !reverse {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	z.ClosePath()
}

// stamp paints a width×width square roughly centred on p.
func stamp(img *image.RGBA, p image.Point, src image.Image, width int) {
	if width < 1 {
		width = 1
	}
	tl := p.Sub(image.Pt(width/2, width/2))
	r := image.Rectangle{Min: tl, Max: tl.Add(image.Pt(width, width))}
	draw.Draw(img, r, src, image.Point{}, draw.Over)
}

// drawLine walks the Bresenham line from a to b stamping the brush at every
// step.
func drawLine(img *image.RGBA, a, b image.Point, src image.Image, width int) {
	x0, y0 := a.X, a.Y
	dx := abs(b.X - x0)
	dy := abs(b.Y - y0)
	sx := -1
	if x0 < b.X {
		sx = 1
	}
	sy := -1
	if y0 < b.Y {
		sy = 1
	}
	err := dx - dy
	for {
		stamp(img, image.Pt(x0, y0), src, width)
		if x0 == b.X && y0 == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
