package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/example/layerpaint/internal/render"
	"github.com/example/layerpaint/internal/shape"
)

const checkerSize = 8

// Frame renders the whole window into a new image.
func (a *App) Frame() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: a.size})
	a.Draw(img)
	return img
}

// Draw paints the window into dst, whose bounds start at the origin.
func (a *App) Draw(dst *image.RGBA) {
	th := a.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)
	a.drawCanvas(dst)
	a.drawToolbar(dst)
	a.drawStatus(dst)
	if tip, ok := a.tooltip(); ok {
		tip.Draw(dst, th)
	}
	if a.dialogOpen {
		a.dialog.Draw(dst, th)
	}
	if a.helpOpen {
		a.help.Draw(dst, th)
	}
}

// drawCheckerboard fills rect of dst with squares of the given size.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

func (a *App) drawCanvas(dst *image.RGBA) {
	region := a.gesture.Region()
	if a.backdrop == nil || a.backdrop.Bounds().Size() != region.Size() {
		a.backdrop = image.NewRGBA(image.Rectangle{Max: region.Size()})
		drawCheckerboard(a.backdrop, a.backdrop.Bounds(), checkerSize, a.theme.CheckerLight, a.theme.CheckerDark)
	}
	draw.Draw(dst, region, a.backdrop, image.Point{}, draw.Src)

	img := a.doc.Render()
	if s, ok := a.gesture.Preview(); ok {
		if l := a.gesture.Target(); l != nil {
			shape.Render(render.Wrap(img), s, a.doc.EraseColor(l))
		}
	}
	draw.Draw(dst, region, img, image.Point{}, draw.Over)
}

func (a *App) drawToolbar(dst *image.RGBA) {
	th := a.theme
	band := image.Rect(0, 0, dst.Bounds().Dx(), toolbarHeight)
	draw.Draw(dst, band, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	edge := image.Rect(band.Min.X, band.Max.Y-1, band.Max.X, band.Max.Y)
	draw.Draw(dst, edge, &image.Uniform{th.ToolbarBorder}, image.Point{}, draw.Src)
	for i, b := range a.buttons {
		b.Draw(dst, th, a.buttonState(i, b))
	}
	a.slider.Draw(dst, th, a.doc.Thickness(), a.hoverSlider || a.sliding)
}

// StatusSummary describes the current drawing settings.
func (a *App) StatusSummary() string {
	d := a.doc
	return fmt.Sprintf("%s | fill %s | size %d | %s %d/%d | %s",
		d.Tool, onOff(d.Filled), d.Thickness(),
		d.ActiveLayer().Name, d.ActiveIndex()+1, d.LayerCount(), d.Target)
}

func (a *App) drawStatus(dst *image.RGBA) {
	th := a.theme
	b := dst.Bounds()
	bar := image.Rect(0, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	baseline := bar.Min.Y + 14
	render.DrawLabel(dst, bar.Min.X+margin, baseline, a.status, th.StatusText)

	summary := a.StatusSummary()
	box := image.Rect(bar.Max.X-margin-12, bar.Min.Y+4, bar.Max.X-margin, bar.Max.Y-4)
	x := box.Min.X - margin - render.MeasureLabel(summary)
	render.DrawLabel(dst, x, baseline, summary, th.StatusText)
	draw.Draw(dst, box.Inset(-1), &image.Uniform{th.SwatchBorder}, image.Point{}, draw.Src)
	draw.Draw(dst, box, &image.Uniform{a.doc.Color}, image.Point{}, draw.Src)
}

func (a *App) tooltip() (Tooltip, bool) {
	if a.dialogOpen || a.helpOpen || a.sliding {
		return Tooltip{}, false
	}
	switch {
	case a.hover >= 0 && a.hover < len(a.buttons):
		return Tooltip{Text: a.describe(a.buttons[a.hover].Action()), At: a.mouse}, true
	case a.hoverSlider:
		return Tooltip{Text: "Thickness (+, -)", At: a.mouse}, true
	}
	return Tooltip{}, false
}
