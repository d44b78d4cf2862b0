package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/render"
	"github.com/example/layerpaint/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
	StateDisabled
)

// Button represents a clickable toolbar element. Clicking it runs the
// command named by Action.
type Button interface {
	Draw(dst *image.RGBA, th *theme.Theme, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Action() string
}

// Selector is implemented by buttons that show as pressed while some
// document setting is active.
type Selector interface {
	Selected(d *document.Document) bool
}

// Enabler is implemented by buttons whose command only does something in
// some document states. A disabled button ignores clicks.
type Enabler interface {
	Enabled(d *document.Document) bool
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	theme *theme.Theme
	cache [4]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	if th != cb.theme {
		cb.theme = th
		cb.cache = [4]*image.RGBA{}
	}
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, th, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [4]*image.RGBA{}
	}
}

// Selected forwards to the wrapped button when it is a Selector.
func (cb *CacheButton) Selected(d *document.Document) bool {
	if s, ok := cb.Button.(Selector); ok {
		return s.Selected(d)
	}
	return false
}

// Enabled forwards to the wrapped button when it is an Enabler.
func (cb *CacheButton) Enabled(d *document.Document) bool {
	if e, ok := cb.Button.(Enabler); ok {
		return e.Enabled(d)
	}
	return true
}

func buttonColors(th *theme.Theme, state ButtonState) color.RGBA {
	switch state {
	case StateHover:
		return th.ButtonBackgroundHover
	case StatePressed:
		return th.ButtonBackgroundPress
	}
	return th.ButtonBackground
}

func drawLabelButton(dst *image.RGBA, th *theme.Theme, r image.Rectangle, label string, state ButtonState) {
	draw.Draw(dst, r, &image.Uniform{buttonColors(th, state)}, image.Point{}, draw.Src)
	render.Wrap(dst).StrokeRect(r, th.ButtonBorder, 1)
	text := th.ButtonText
	if state == StateDisabled {
		text = halfway(th.ButtonText, th.ButtonBackground)
	}
	x := r.Min.X + (r.Dx()-render.MeasureLabel(label))/2
	render.DrawLabel(dst, x, r.Min.Y+(r.Dy()+10)/2, label, text)
}

func halfway(a, b color.RGBA) color.RGBA {
	mid := func(x, y uint8) uint8 { return uint8((int(x) + int(y)) / 2) }
	return color.RGBA{mid(a.R, b.R), mid(a.G, b.G), mid(a.B, b.B), mid(a.A, b.A)}
}

// labelWidth is the width a text button needs for label.
func labelWidth(label string) int { return render.MeasureLabel(label) + 12 }

// ActionButton runs a command when clicked. When enabled is set the button
// is greyed out while it reports false.
type ActionButton struct {
	label   string
	action  string
	enabled func(d *document.Document) bool
	rect    image.Rectangle
}

func (b *ActionButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	drawLabelButton(dst, th, b.rect, b.label, state)
}

func (b *ActionButton) Rect() image.Rectangle     { return b.rect }
func (b *ActionButton) SetRect(r image.Rectangle) { b.rect = r }
func (b *ActionButton) Action() string            { return b.action }

func (b *ActionButton) Enabled(d *document.Document) bool {
	return b.enabled == nil || b.enabled(d)
}

// ToolButton selects a drawing tool and stays pressed while it is current.
type ToolButton struct {
	label string
	tool  document.Tool
	rect  image.Rectangle
}

func (b *ToolButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	drawLabelButton(dst, th, b.rect, b.label, state)
}

func (b *ToolButton) Rect() image.Rectangle               { return b.rect }
func (b *ToolButton) SetRect(r image.Rectangle)           { b.rect = r }
func (b *ToolButton) Action() string                      { return b.tool.String() }
func (b *ToolButton) Selected(d *document.Document) bool { return d.Tool == b.tool }

// ToggleButton runs a command that flips a setting and shows pressed while
// the setting is on.
type ToggleButton struct {
	label  string
	action string
	on     func(d *document.Document) bool
	rect   image.Rectangle
}

func (b *ToggleButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	drawLabelButton(dst, th, b.rect, b.label, state)
}

func (b *ToggleButton) Rect() image.Rectangle               { return b.rect }
func (b *ToggleButton) SetRect(r image.Rectangle)           { b.rect = r }
func (b *ToggleButton) Action() string                      { return b.action }
func (b *ToggleButton) Selected(d *document.Document) bool { return b.on(d) }

// Swatch picks one palette colour.
type Swatch struct {
	index int
	color PaletteColor
	rect  image.Rectangle
}

func (s *Swatch) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	draw.Draw(dst, s.rect, &image.Uniform{s.color.Color}, image.Point{}, draw.Src)
	border := th.SwatchBorder
	width := 1
	switch state {
	case StateHover:
		width = 2
	case StatePressed:
		border = th.SwatchSelected
		width = 2
	}
	render.Wrap(dst).StrokeRect(s.rect, border, width)
}

func (s *Swatch) Rect() image.Rectangle     { return s.rect }
func (s *Swatch) SetRect(r image.Rectangle) { s.rect = r }
func (s *Swatch) Action() string            { return paletteAction(s.index) }
func (s *Swatch) Selected(d *document.Document) bool {
	return d.Target == document.TargetBrush && d.Color == s.color.Color
}

func paletteAction(i int) string { return fmt.Sprintf("color-%d", i+1) }

// Slider maps a horizontal track onto an integer range by linear
// interpolation.
type Slider struct {
	Min, Max int
	rect     image.Rectangle
}

const sliderLabelWidth = 56

// Rect returns the slider bounds, label included.
func (s *Slider) Rect() image.Rectangle { return s.rect }

// SetRect moves the slider.
func (s *Slider) SetRect(r image.Rectangle) { s.rect = r }

func (s *Slider) track() image.Rectangle {
	r := s.rect
	r.Min.X += sliderLabelWidth
	return r.Inset(4)
}

// ValueAt returns the value for pointer column x, clamped to [Min, Max].
func (s *Slider) ValueAt(x int) int {
	t := s.track()
	if t.Dx() <= 1 || s.Max <= s.Min {
		return s.Min
	}
	frac := float64(x-t.Min.X) / float64(t.Dx()-1)
	frac = min(max(frac, 0), 1)
	return s.Min + int(frac*float64(s.Max-s.Min)+0.5)
}

// KnobX returns the track column that represents v.
func (s *Slider) KnobX(v int) int {
	t := s.track()
	if s.Max <= s.Min {
		return t.Min.X
	}
	v = min(max(v, s.Min), s.Max)
	return t.Min.X + (v-s.Min)*(t.Dx()-1)/(s.Max-s.Min)
}

// Draw paints the label, track and knob for value v.
func (s *Slider) Draw(dst *image.RGBA, th *theme.Theme, v int, hover bool) {
	render.DrawLabel(dst, s.rect.Min.X+2, s.rect.Min.Y+(s.rect.Dy()+10)/2, fmt.Sprintf("Size %d", v), th.Foreground)
	t := s.track()
	mid := t.Min.Y + t.Dy()/2
	draw.Draw(dst, image.Rect(t.Min.X, mid-1, t.Max.X, mid+2), &image.Uniform{th.SliderTrack}, image.Point{}, draw.Src)
	kx := s.KnobX(v)
	knob := image.Rect(kx-3, t.Min.Y, kx+4, t.Max.Y)
	if hover {
		knob = knob.Inset(-1)
	}
	draw.Draw(dst, knob, &image.Uniform{th.SliderKnob}, image.Point{}, draw.Src)
}

// Tooltip is a small label drawn next to the pointer.
type Tooltip struct {
	Text string
	At   image.Point
}

// Rect returns where the tooltip lands inside bounds.
func (t Tooltip) Rect(bounds image.Rectangle) image.Rectangle {
	w := render.MeasureLabel(t.Text) + 8
	r := image.Rect(0, 0, w, 18).Add(t.At.Add(image.Pt(12, 16)))
	if r.Max.X > bounds.Max.X {
		r = r.Sub(image.Pt(r.Max.X-bounds.Max.X, 0))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Sub(image.Pt(0, r.Max.Y-bounds.Max.Y))
	}
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	return r
}

// Draw paints the tooltip onto dst.
func (t Tooltip) Draw(dst *image.RGBA, th *theme.Theme) {
	if t.Text == "" {
		return
	}
	r := t.Rect(dst.Bounds())
	draw.Draw(dst, r, &image.Uniform{th.TooltipBackground}, image.Point{}, draw.Src)
	render.Wrap(dst).StrokeRect(r, th.TooltipText, 1)
	render.DrawLabel(dst, r.Min.X+4, r.Min.Y+13, t.Text, th.TooltipText)
}
