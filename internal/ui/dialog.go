package ui

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"

	"github.com/example/layerpaint/internal/colorparse"
	"github.com/example/layerpaint/internal/render"
	"github.com/example/layerpaint/internal/theme"
)

type dialogResult int

const (
	dialogPending dialogResult = iota
	dialogConfirmed
	dialogCancelled
)

const (
	dialogWidth    = 340
	dialogHeight   = 150
	dialogMaxInput = 24
)

// ColorDialog is the modal custom colour entry box.
type ColorDialog struct {
	Title  string
	input  string
	errMsg string

	rect   image.Rectangle
	field  image.Rectangle
	ok     *ActionButton
	cancel *ActionButton
	hover  int
}

func newColorDialog() *ColorDialog {
	return &ColorDialog{
		ok:     &ActionButton{label: "OK"},
		cancel: &ActionButton{label: "Cancel"},
		hover:  -1,
	}
}

// Open resets the dialog with initial text.
func (d *ColorDialog) Open(title, initial string) {
	d.Title = title
	d.input = initial
	d.errMsg = ""
	d.hover = -1
}

// Input returns the text typed so far.
func (d *ColorDialog) Input() string { return d.input }

// Error returns the message for the last rejected input.
func (d *ColorDialog) Error() string { return d.errMsg }

// Layout centres the dialog inside window.
func (d *ColorDialog) Layout(window image.Rectangle) {
	c := image.Pt(window.Min.X+window.Dx()/2, window.Min.Y+window.Dy()/2)
	d.rect = image.Rect(c.X-dialogWidth/2, c.Y-dialogHeight/2, c.X+dialogWidth/2, c.Y+dialogHeight/2)
	d.field = image.Rect(d.rect.Min.X+12, d.rect.Min.Y+40, d.rect.Max.X-52, d.rect.Min.Y+62)
	by := d.rect.Max.Y - 36
	d.cancel.SetRect(image.Rect(d.rect.Max.X-84, by, d.rect.Max.X-12, by+24))
	d.ok.SetRect(image.Rect(d.rect.Max.X-160, by, d.rect.Max.X-96, by+24))
}

// Rect returns the dialog panel.
func (d *ColorDialog) Rect() image.Rectangle { return d.rect }

// Key handles one key press.
func (d *ColorDialog) Key(e key.Event) (dialogResult, color.RGBA) {
	switch e.Code {
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		return d.submit()
	case key.CodeEscape:
		return dialogCancelled, color.RGBA{}
	case key.CodeDeleteBackspace:
		if d.input != "" {
			_, size := utf8.DecodeLastRuneInString(d.input)
			d.input = d.input[:len(d.input)-size]
		}
		return dialogPending, color.RGBA{}
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) && e.Modifiers&key.ModControl == 0 && len(d.input) < dialogMaxInput {
		d.input += string(e.Rune)
	}
	return dialogPending, color.RGBA{}
}

// Click handles a pointer press at p. Presses outside the buttons do
// nothing; the dialog stays modal.
func (d *ColorDialog) Click(p image.Point) (dialogResult, color.RGBA) {
	switch {
	case p.In(d.ok.Rect()):
		return d.submit()
	case p.In(d.cancel.Rect()):
		return dialogCancelled, color.RGBA{}
	}
	return dialogPending, color.RGBA{}
}

// Hover tracks the pointer for button highlighting.
func (d *ColorDialog) Hover(p image.Point) {
	d.hover = -1
	if p.In(d.ok.Rect()) {
		d.hover = 0
	} else if p.In(d.cancel.Rect()) {
		d.hover = 1
	}
}

func (d *ColorDialog) submit() (dialogResult, color.RGBA) {
	c, err := colorparse.Parse(d.input)
	if err != nil {
		var perr *colorparse.Error
		if errors.As(err, &perr) {
			d.errMsg = perr.Message
		} else {
			d.errMsg = err.Error()
		}
		return dialogPending, color.RGBA{}
	}
	d.errMsg = ""
	return dialogConfirmed, c
}

// Draw paints the dialog with its drop shadow.
func (d *ColorDialog) Draw(dst *image.RGBA, th *theme.Theme) {
	render.DropShadow(dst, d.rect, render.DefaultShadowOptions())
	draw.Draw(dst, d.rect, &image.Uniform{th.DialogBackground}, image.Point{}, draw.Src)
	cv := render.Wrap(dst)
	cv.StrokeRect(d.rect, th.DialogBorder, 1)
	drawTitle(dst, d.rect.Min.X+12, d.rect.Min.Y+8, d.Title, th.DialogText)
	render.DrawLabel(dst, d.rect.Min.X+12, d.rect.Min.Y+36, "#RRGGBB, RRGGBB or R,G,B", th.DialogText)

	draw.Draw(dst, d.field, &image.Uniform{th.InputBackground}, image.Point{}, draw.Src)
	cv.StrokeRect(d.field, th.DialogBorder, 1)
	render.DrawLabel(dst, d.field.Min.X+4, d.field.Min.Y+15, d.input+"|", th.DialogText)

	preview := image.Rect(d.field.Max.X+8, d.field.Min.Y, d.rect.Max.X-12, d.field.Max.Y)
	if c, err := colorparse.Parse(d.input); err == nil {
		draw.Draw(dst, preview, &image.Uniform{c}, image.Point{}, draw.Src)
	}
	cv.StrokeRect(preview, th.DialogBorder, 1)

	if d.errMsg != "" {
		render.DrawLabel(dst, d.rect.Min.X+12, d.field.Max.Y+16, d.errMsg, th.DialogError)
	}
	for i, b := range []*ActionButton{d.ok, d.cancel} {
		state := StateDefault
		if i == d.hover {
			state = StateHover
		}
		b.Draw(dst, th, state)
	}
}

const titleSize = 14

// drawTitle draws a panel heading in the vector face, falling back to the
// label face.
func drawTitle(dst *image.RGBA, x, y int, s string, col color.Color) {
	if err := render.DrawText(dst, x, y, s, col, titleSize); err != nil {
		log.Printf("draw title: %v", err)
		render.DrawLabel(dst, x, y+13, s, col)
	}
}

// HelpOverlay lists every command with its shortcuts.
type HelpOverlay struct {
	Lines []string
	rect  image.Rectangle
}

const (
	helpLineHeight = 16
	helpTitle      = "Keyboard shortcuts (any key closes)"
)

// Layout sizes the overlay to fit its lines in two columns inside window.
func (h *HelpOverlay) Layout(window image.Rectangle) {
	colW := 0
	for _, l := range h.Lines {
		colW = max(colW, render.MeasureLabel(l))
	}
	rows := (len(h.Lines) + 1) / 2
	w := 2*colW + 64
	if tw, _, _, err := render.MeasureText(helpTitle, titleSize); err == nil {
		w = max(w, tw+32)
	}
	ht := rows*helpLineHeight + 56
	c := image.Pt(window.Min.X+window.Dx()/2, window.Min.Y+window.Dy()/2)
	h.rect = image.Rect(c.X-w/2, c.Y-ht/2, c.X+w/2, c.Y+ht/2)
}

// Rect returns the overlay panel.
func (h *HelpOverlay) Rect() image.Rectangle { return h.rect }

// Draw paints the overlay with its drop shadow.
func (h *HelpOverlay) Draw(dst *image.RGBA, th *theme.Theme) {
	render.DropShadow(dst, h.rect, render.DefaultShadowOptions())
	draw.Draw(dst, h.rect, &image.Uniform{th.DialogBackground}, image.Point{}, draw.Src)
	render.Wrap(dst).StrokeRect(h.rect, th.DialogBorder, 1)
	drawTitle(dst, h.rect.Min.X+16, h.rect.Min.Y+8, helpTitle, th.DialogText)
	rows := (len(h.Lines) + 1) / 2
	colX := []int{h.rect.Min.X + 16, h.rect.Min.X + h.rect.Dx()/2 + 8}
	for i, l := range h.Lines {
		x := colX[i/max(rows, 1)]
		y := h.rect.Min.Y + 44 + (i%max(rows, 1))*helpLineHeight
		render.DrawLabel(dst, x, y, l, th.DialogText)
	}
}
