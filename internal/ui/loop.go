package ui

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// Run opens the window and blocks until it is closed.
func (a *App) Run() { driver.Main(a.Main) }

// Main runs the event loop on s.
func (a *App) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  a.size.X,
		Height: a.size.Y,
		Title:  a.Title(),
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			a.Resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			a.paint(s, w)
		case mouse.Event:
			if a.HandleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if a.HandleKey(e) {
				w.Send(paint.Event{})
			}
			if a.quit {
				return
			}
		case error:
			log.Print(e)
		}
	}
}

func (a *App) paint(s screen.Screen, w screen.Window) {
	b, err := s.NewBuffer(a.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	a.Draw(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
