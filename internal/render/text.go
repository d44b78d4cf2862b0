package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelFace is the bitmap face used for widget labels and tooltips.
var LabelFace font.Face = basicfont.Face7x13

var (
	goregularFont *opentype.Font
	faces         sync.Map // map[float64]font.Face
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v", err)
		return
	}
	goregularFont = f
}

// Face returns a Go Regular face at size points.
func Face(size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	size = math.Round(size*100) / 100
	if face, ok := faces.Load(size); ok {
		return face.(font.Face), nil
	}
	if goregularFont == nil {
		return nil, fmt.Errorf("text font not initialised")
	}
	face, err := opentype.NewFace(goregularFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	faces.Store(size, face)
	return face, nil
}

// MeasureLabel returns the advance width of s in LabelFace.
func MeasureLabel(s string) int {
	d := &font.Drawer{Face: LabelFace}
	return d.MeasureString(s).Ceil()
}

// DrawLabel draws s in LabelFace with its baseline at (x, y).
func DrawLabel(dst *image.RGBA, x, y int, s string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: LabelFace, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

// MeasureText returns the dimensions of text rendered at size. baseline is
// the offset from the top of the box to the baseline.
func MeasureText(text string, size float64) (width, height, baseline int, err error) {
	face, err := Face(size)
	if err != nil {
		return 0, 0, 0, err
	}
	drawer := &font.Drawer{Face: face}
	width = drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	baseline = metrics.Ascent.Ceil()
	height = baseline + metrics.Descent.Ceil()
	return width, height, baseline, nil
}

// DrawText renders text at size with its top-left corner at (x, y).
func DrawText(dst *image.RGBA, x, y int, text string, col color.Color, size float64) error {
	face, err := Face(size)
	if err != nil {
		return err
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
	return nil
}
