package ui

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/layerpaint/internal/colorparse"
	"github.com/example/layerpaint/internal/gesture"
)

// HandleMouse applies a pointer event and reports whether the window needs
// repainting.
func (a *App) HandleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	a.mouse = p
	press := e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft
	release := e.Direction == mouse.DirRelease && e.Button == mouse.ButtonLeft
	dragging := a.gesture.State() != gesture.Idle

	// A release ends the drag in progress wherever it lands.
	if release && dragging {
		a.finishGesture(p)
		return true
	}
	if a.helpOpen {
		if e.Direction == mouse.DirPress {
			a.helpOpen = false
			return true
		}
		return false
	}
	if a.dialogOpen {
		a.dialog.Hover(p)
		if press {
			a.finishDialog(a.dialog.Click(p))
		}
		return true
	}
	if a.sliding {
		a.doc.SetThickness(a.slider.ValueAt(p.X))
		if release {
			a.sliding = false
		}
		return true
	}
	if dragging {
		a.gesture.PointerMove(p)
		return true
	}

	if p.Y < toolbarHeight {
		a.hover, a.hoverSlider = a.widgetAt(p)
		if press {
			switch {
			case a.hoverSlider:
				a.sliding = true
				a.doc.SetThickness(a.slider.ValueAt(p.X))
			case a.hover >= 0 && a.buttons[a.hover].Enabled(a.doc):
				a.Exec(a.buttons[a.hover].Action())
			}
		}
		return true
	}
	a.hover, a.hoverSlider = -1, false

	switch {
	case press:
		return a.gesture.PointerDown(p)
	case e.Direction == mouse.DirNone:
		return true
	}
	return false
}

func (a *App) finishGesture(p image.Point) {
	l := a.gesture.Target()
	s, ok := a.gesture.PointerUp(p)
	if !ok {
		return
	}
	b := s.Bounds()
	a.status = fmt.Sprintf("%s on %s (%dx%d)", s.Kind(), l.Name, b.Dx(), b.Dy())
}

// HandleKey applies a key event and reports whether the window needs
// repainting.
func (a *App) HandleKey(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if a.helpOpen {
		a.helpOpen = false
		return true
	}
	if a.dialogOpen {
		a.finishDialog(a.dialog.Key(e))
		return true
	}
	name, ok := lookupKey(a.keymap, e)
	if !ok {
		return false
	}
	a.Exec(name)
	return true
}

func (a *App) finishDialog(res dialogResult, c color.RGBA) {
	switch res {
	case dialogConfirmed:
		a.dialogOpen = false
		a.doc.PickColor(c)
		a.notice("%s colour: %s", a.doc.Target, colorparse.Hex(c))
	case dialogCancelled:
		a.dialogOpen = false
		a.status = "colour entry cancelled"
	}
}
