// Package ui is the paint window: a toolbar band of widgets above the
// canvas, a status line below it, and the modal colour dialog and help
// overlay on top.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/layerpaint/internal/clipboard"
	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/gesture"
	"github.com/example/layerpaint/internal/notify"
	"github.com/example/layerpaint/internal/theme"
)

const (
	toolbarHeight = 64
	statusHeight  = 20
	rowHeight     = 24
	rowGap        = 6
	margin        = 4
	swatchSize    = 20
	sliderWidth   = sliderLabelWidth + 120
)

// PaletteColor is a named swatch.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

// DefaultPalette returns the built-in swatches. The first three keep the
// classic red, green, blue order on keys 1 to 3.
func DefaultPalette() []PaletteColor {
	return []PaletteColor{
		{"Red", colornames.Red},
		{"Green", colornames.Lime},
		{"Blue", colornames.Blue},
		{"Black", colornames.Black},
		{"White", colornames.White},
		{"Yellow", colornames.Yellow},
		{"Orange", colornames.Orange},
		{"Purple", colornames.Purple},
		{"Cyan", colornames.Cyan},
		{"Magenta", colornames.Magenta},
		{"Brown", colornames.Saddlebrown},
		{"Gray", colornames.Gray},
	}
}

// App holds the document and everything the window needs to edit it.
type App struct {
	doc      *document.Document
	gesture  *gesture.Controller
	theme    *theme.Theme
	output   string
	palette  []PaletteColor
	notifier *notify.Notifier

	copyImage  func(image.Image) error
	pasteImage func() (image.Image, error)

	size    image.Point
	buttons []*CacheButton
	slider  *Slider
	dialog  *ColorDialog
	help    *HelpOverlay

	dialogOpen bool
	helpOpen   bool

	commands map[string]*command
	order    []string
	keymap   map[KeyShortcut]string

	mouse       image.Point
	hover       int
	hoverSlider bool
	sliding     bool
	status      string
	quit        bool
	backdrop    *image.RGBA
}

// Option modifies an App during creation.
type Option func(*App)

// WithDocument edits d instead of a fresh document.
func WithDocument(d *document.Document) Option { return func(a *App) { a.doc = d } }

// WithTheme sets the UI colours.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.theme = t } }

// WithOutput sets the PNG path used by save and load. The PDF export
// path is derived from it.
func WithOutput(path string) Option { return func(a *App) { a.output = path } }

// WithPalette replaces the swatches.
func WithPalette(p []PaletteColor) Option { return func(a *App) { a.palette = p } }

// WithNotifier sends desktop notifications after save, copy and export.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.notifier = n } }

// WithClipboard replaces the system clipboard, mainly for tests.
func WithClipboard(write func(image.Image) error, read func() (image.Image, error)) Option {
	return func(a *App) {
		a.copyImage = write
		a.pasteImage = read
	}
}

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{
		output:     document.DefaultFile,
		copyImage:  clipboard.WriteImage,
		pasteImage: clipboard.ReadImage,
		hover:      -1,
	}
	for _, o := range opts {
		o(a)
	}
	if a.doc == nil {
		a.doc = document.New()
	}
	if a.theme == nil {
		a.theme = theme.Default()
	}
	if len(a.palette) == 0 {
		a.palette = DefaultPalette()
	}
	region := image.Rect(0, toolbarHeight, a.doc.Size.X, toolbarHeight+a.doc.Size.Y)
	a.gesture = gesture.New(a.doc, region)
	a.dialog = newColorDialog()
	a.registerCommands()
	a.help = &HelpOverlay{Lines: a.helpLines()}
	a.buildWidgets()
	a.Resize(0, 0)
	a.status = "press H for help"
	return a
}

// Document returns the document being edited.
func (a *App) Document() *document.Document { return a.doc }

// Size returns the window size in pixels.
func (a *App) Size() image.Point { return a.size }

// CanvasRect returns the canvas region in window coordinates.
func (a *App) CanvasRect() image.Rectangle { return a.gesture.Region() }

// Status returns the current status line message.
func (a *App) Status() string { return a.status }

// Done reports whether the user asked to quit.
func (a *App) Done() bool { return a.quit }

// Title is the window title.
func (a *App) Title() string { return "layerpaint - " + filepath.Base(a.output) }

// PDFPath is where the export command writes.
func (a *App) PDFPath() string {
	return strings.TrimSuffix(a.output, filepath.Ext(a.output)) + ".pdf"
}

// SetTheme swaps the UI colours.
func (a *App) SetTheme(t *theme.Theme) {
	a.theme = t
}

func (a *App) notice(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	log.Print(a.status)
}

func (a *App) buildWidgets() {
	add := func(b Button) { a.buttons = append(a.buttons, &CacheButton{Button: b}) }
	for _, t := range []struct {
		label string
		tool  document.Tool
	}{
		{"Rect", document.ToolRectangle},
		{"Ellipse", document.ToolEllipse},
		{"Brush", document.ToolBrush},
		{"Eraser", document.ToolEraser},
	} {
		add(&ToolButton{label: t.label, tool: t.tool})
	}
	add(&ToggleButton{label: "Fill", action: "fill", on: func(d *document.Document) bool { return d.Filled }})
	add(&ActionButton{label: "Undo", action: "undo", enabled: func(d *document.Document) bool {
		return d.ActiveLayer().CanUndo()
	}})
	add(&ActionButton{label: "Redo", action: "redo", enabled: func(d *document.Document) bool {
		return d.ActiveLayer().CanRedo()
	}})
	for _, b := range [][2]string{
		{"Clear", "clear"},
		{"Save", "save"}, {"Load", "load"}, {"PDF", "export"},
		{"Copy", "copy"}, {"Paste", "paste"}, {"Help", "help"},
	} {
		add(&ActionButton{label: b[0], action: b[1]})
	}
	for i, p := range a.palette {
		add(&Swatch{index: i, color: p})
	}
	add(&ActionButton{label: "Custom", action: "color-dialog"})
	add(&ToggleButton{label: "BG", action: "target", on: func(d *document.Document) bool {
		return d.Target == document.TargetBackground
	}})
	for _, b := range [][2]string{
		{"+Layer", "layer-new"}, {"-Layer", "layer-delete"},
		{"<", "layer-prev"}, {">", "layer-next"},
	} {
		add(&ActionButton{label: b[0], action: b[1]})
	}
	add(&ToggleButton{label: "Hide", action: "layer-visibility", on: func(d *document.Document) bool {
		return !d.ActiveLayer().Visible
	}})
	a.slider = &Slider{Min: document.MinThickness, Max: document.MaxThickness}
}

// layout places the widgets in two rows and returns the width they need.
func (a *App) layout() int {
	x, y := margin, margin
	row := 0
	right := 0
	place := func(w, h int) image.Rectangle {
		r := image.Rect(x, y+(rowHeight-h)/2, x+w, y+(rowHeight-h)/2+h)
		x += w + margin
		right = max(right, x)
		return r
	}
	for _, cb := range a.buttons {
		b := cb.Button
		if _, ok := b.(*Swatch); ok && row == 0 {
			row = 1
			x, y = margin, margin+rowHeight+rowGap
		}
		switch v := b.(type) {
		case *Swatch:
			cb.SetRect(place(swatchSize, swatchSize))
		case *ToolButton:
			cb.SetRect(place(labelWidth(v.label), rowHeight))
		case *ToggleButton:
			cb.SetRect(place(labelWidth(v.label), rowHeight))
		case *ActionButton:
			switch v.action {
			case "undo":
				x += 2 * margin
			case "layer-new":
				// the slider sits between the colour controls and the layer buttons
				x += 2 * margin
				a.slider.SetRect(place(sliderWidth, rowHeight))
				x += 2 * margin
			}
			cb.SetRect(place(labelWidth(v.label), rowHeight))
		default:
			cb.SetRect(place(labelWidth(b.Action()), rowHeight))
		}
	}
	return right
}

// Resize sets the window size, never smaller than the toolbar and canvas
// need, and lays the widgets out again.
func (a *App) Resize(width, height int) {
	need := a.layout()
	a.size = image.Pt(
		max(width, need, a.doc.Size.X),
		max(height, toolbarHeight+a.doc.Size.Y+statusHeight),
	)
	a.backdrop = nil
	a.dialog.Layout(image.Rectangle{Max: a.size})
	a.help.Layout(image.Rectangle{Max: a.size})
}

func (a *App) widgetAt(p image.Point) (int, bool) {
	for i, b := range a.buttons {
		if p.In(b.Rect()) {
			return i, false
		}
	}
	if p.In(a.slider.Rect()) {
		return -1, true
	}
	return -1, false
}

func (a *App) buttonState(i int, b *CacheButton) ButtonState {
	if !b.Enabled(a.doc) {
		return StateDisabled
	}
	if b.Selected(a.doc) {
		return StatePressed
	}
	if i == a.hover {
		return StateHover
	}
	return StateDefault
}
