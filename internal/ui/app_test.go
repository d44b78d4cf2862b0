package ui

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/colornames"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/gesture"
	"github.com/example/layerpaint/internal/shape"
)

type fakeClipboard struct {
	written image.Image
	content image.Image
}

func (f *fakeClipboard) write(img image.Image) error {
	f.written = img
	return nil
}

func (f *fakeClipboard) read() (image.Image, error) {
	if f.content == nil {
		return nil, errors.New("empty")
	}
	return f.content, nil
}

func newTestApp(t *testing.T) (*App, *fakeClipboard) {
	t.Helper()
	cb := &fakeClipboard{}
	a := New(
		WithDocument(document.New(document.WithSize(200, 100))),
		WithOutput(filepath.Join(t.TempDir(), "drawing.png")),
		WithClipboard(cb.write, cb.read),
	)
	return a, cb
}

func press(r rune) key.Event { return key.Event{Rune: r, Direction: key.DirPress} }

func pressCode(c key.Code, m key.Modifiers) key.Event {
	return key.Event{Rune: -1, Code: c, Modifiers: m, Direction: key.DirPress}
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.HandleKey(press(r))
	}
}

func mouseAt(p image.Point, b mouse.Button, d mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: b, Direction: d}
}

func click(a *App, p image.Point) {
	a.HandleMouse(mouseAt(p, mouse.ButtonLeft, mouse.DirPress))
	a.HandleMouse(mouseAt(p, mouse.ButtonLeft, mouse.DirRelease))
}

func drag(a *App, from, to image.Point) {
	a.HandleMouse(mouseAt(from, mouse.ButtonLeft, mouse.DirPress))
	a.HandleMouse(mouseAt(to, mouse.ButtonNone, mouse.DirNone))
	a.HandleMouse(mouseAt(to, mouse.ButtonLeft, mouse.DirRelease))
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func buttonRect(t *testing.T, a *App, action string) image.Rectangle {
	t.Helper()
	for _, b := range a.buttons {
		if b.Action() == action {
			return b.Rect()
		}
	}
	t.Fatalf("no button for %q", action)
	return image.Rectangle{}
}

func TestLayout(t *testing.T) {
	a, _ := newTestApp(t)
	if got, want := a.CanvasRect(), image.Rect(0, toolbarHeight, 200, toolbarHeight+100); got != want {
		t.Fatalf("canvas = %v, want %v", got, want)
	}
	if got, want := a.Size().Y, toolbarHeight+100+statusHeight; got != want {
		t.Fatalf("height = %d, want %d", got, want)
	}
	for _, b := range a.buttons {
		r := b.Rect()
		if r.Empty() || r.Max.Y > toolbarHeight || r.Max.X > a.Size().X {
			t.Errorf("%s placed at %v outside the toolbar", b.Action(), r)
		}
	}
	if a.slider.Rect().Empty() {
		t.Fatal("slider not placed")
	}
	a.Resize(100, 50)
	if a.Size().Y != toolbarHeight+100+statusHeight {
		t.Fatalf("window shrank below the canvas: %v", a.Size())
	}
}

func TestKeyDispatch(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()

	a.HandleKey(press('e'))
	if d.Tool != document.ToolEllipse {
		t.Fatalf("tool = %v, want ellipse", d.Tool)
	}
	a.HandleKey(press('X'))
	if d.Tool != document.ToolEraser {
		t.Fatalf("tool = %v, want eraser", d.Tool)
	}
	a.HandleKey(press('f'))
	if d.Filled {
		t.Fatal("fill not toggled")
	}
	a.HandleKey(press('2'))
	if d.Color != colornames.Lime {
		t.Fatalf("colour = %v, want lime", d.Color)
	}
	a.HandleKey(key.Event{Rune: '+', Modifiers: key.ModShift, Direction: key.DirPress})
	if d.Thickness() != document.DefaultThickness+1 {
		t.Fatalf("thickness = %d", d.Thickness())
	}
	a.HandleKey(press('-'))
	a.HandleKey(press('-'))
	if d.Thickness() != document.DefaultThickness-1 {
		t.Fatalf("thickness = %d", d.Thickness())
	}
	if a.HandleKey(press('%')) {
		t.Fatal("unbound key reported a change")
	}
	if a.HandleKey(key.Event{Rune: 'e', Direction: key.DirRelease}) {
		t.Fatal("key release handled")
	}
	a.HandleKey(pressCode(key.CodeEscape, 0))
	if !a.Done() {
		t.Fatal("escape did not quit")
	}
}

func TestUndoRedoShortcuts(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	d.Commit(shape.NewRectangle(image.Pt(0, 0), image.Pt(5, 5), colornames.Red, true, 1))

	a.HandleKey(key.Event{Rune: 'z', Code: key.CodeZ, Modifiers: key.ModControl, Direction: key.DirPress})
	if d.ActiveLayer().Len() != 0 {
		t.Fatal("Ctrl+Z did not undo")
	}
	a.HandleKey(press('y'))
	if d.ActiveLayer().Len() != 1 {
		t.Fatal("y did not redo")
	}
	a.HandleKey(press('y'))
	if a.Status() != "nothing to redo" {
		t.Fatalf("status = %q", a.Status())
	}
}

func TestMouseDrawCommits(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	drag(a, image.Pt(10, 74), image.Pt(30, 94))

	shapes := d.ActiveLayer().Shapes()
	if len(shapes) != 1 {
		t.Fatalf("shapes = %d, want 1", len(shapes))
	}
	if got, want := shapes[0].Bounds(), image.Rect(10, 10, 30, 30); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
}

func TestToolbarClickDoesNotDraw(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	click(a, center(buttonRect(t, a, "ellipse")))
	if d.Tool != document.ToolEllipse {
		t.Fatalf("tool = %v, want ellipse", d.Tool)
	}
	click(a, center(buttonRect(t, a, "color-3")))
	if d.Color != colornames.Blue {
		t.Fatalf("colour = %v, want blue", d.Color)
	}
	if d.ActiveLayer().Len() != 0 {
		t.Fatal("toolbar click committed a shape")
	}
}

func TestReleaseOffCanvasEndsDrag(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	a.HandleMouse(mouseAt(image.Pt(20, 80), mouse.ButtonLeft, mouse.DirPress))
	a.HandleMouse(mouseAt(image.Pt(190, 120), mouse.ButtonNone, mouse.DirNone))
	a.HandleMouse(mouseAt(image.Pt(205, 120), mouse.ButtonLeft, mouse.DirRelease))
	shapes := d.ActiveLayer().Shapes()
	if len(shapes) != 1 || a.gesture.State() != gesture.Idle {
		t.Fatalf("shapes=%d state=%v, want one shape and idle", len(shapes), a.gesture.State())
	}
	if got, want := shapes[0].Bounds(), image.Rect(20, 16, 199, 56); got != want {
		t.Fatalf("bounds = %v, want %v", got, want)
	}
	a.HandleMouse(mouseAt(image.Pt(60, 90), mouse.ButtonNone, mouse.DirNone))
	if _, ok := a.gesture.Preview(); ok {
		t.Fatal("preview follows the pointer after release")
	}

	a.HandleKey(press('b'))
	a.HandleMouse(mouseAt(image.Pt(20, 80), mouse.ButtonLeft, mouse.DirPress))
	a.HandleMouse(mouseAt(image.Pt(60, 100), mouse.ButtonNone, mouse.DirNone))
	a.HandleMouse(mouseAt(center(buttonRect(t, a, "clear")), mouse.ButtonLeft, mouse.DirRelease))
	for i := 0; i < 10; i++ {
		a.HandleMouse(mouseAt(image.Pt(30+i, 120), mouse.ButtonNone, mouse.DirNone))
	}
	if d.ActiveLayer().Len() != 2 {
		t.Fatalf("len = %d, want the stroke committed beside the rectangle", d.ActiveLayer().Len())
	}
	if n := len(a.gesture.Points()); n != 0 || a.gesture.State() != gesture.Idle {
		t.Fatalf("points=%d state=%v after release over the toolbar", n, a.gesture.State())
	}
	if !strings.HasPrefix(a.Status(), "freehand on ") {
		t.Fatalf("status = %q", a.Status())
	}
}

func TestLayerSwitchMidDrag(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	base := d.ActiveLayer()
	a.HandleMouse(mouseAt(image.Pt(10, 74), mouse.ButtonLeft, mouse.DirPress))
	a.HandleKey(press('n'))
	a.HandleMouse(mouseAt(image.Pt(30, 94), mouse.ButtonLeft, mouse.DirRelease))
	if d.LayerCount() != 2 {
		t.Fatalf("layers = %d, want 2", d.LayerCount())
	}
	if base.Len() != 1 || d.ActiveLayer().Len() != 0 {
		t.Fatalf("base len=%d active len=%d, want the shape on the layer the drag began on",
			base.Len(), d.ActiveLayer().Len())
	}
	if got, want := a.Status(), "rectangle on "+base.Name+" (20x20)"; got != want {
		t.Fatalf("status = %q, want %q", got, want)
	}
}

func TestUndoRedoButtonsDisabled(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	state := func(action string) ButtonState {
		for i, b := range a.buttons {
			if b.Action() == action {
				return a.buttonState(i, b)
			}
		}
		t.Fatalf("no button for %q", action)
		return StateDefault
	}
	if state("undo") != StateDisabled || state("redo") != StateDisabled {
		t.Fatal("undo and redo should start disabled")
	}
	before := a.Status()
	click(a, center(buttonRect(t, a, "undo")))
	if a.Status() != before {
		t.Fatalf("disabled undo ran: status = %q", a.Status())
	}

	drag(a, image.Pt(10, 74), image.Pt(30, 94))
	if state("undo") == StateDisabled || state("redo") != StateDisabled {
		t.Fatal("after drawing only undo should be enabled")
	}
	click(a, center(buttonRect(t, a, "undo")))
	if d.ActiveLayer().Len() != 0 {
		t.Fatal("undo button did not undo")
	}
	if state("undo") != StateDisabled || state("redo") == StateDisabled {
		t.Fatal("after undo only redo should be enabled")
	}
}

func TestSliderDrag(t *testing.T) {
	a, _ := newTestApp(t)
	r := a.slider.Rect()
	y := center(r).Y
	a.HandleMouse(mouseAt(image.Pt(r.Max.X-1, y), mouse.ButtonLeft, mouse.DirPress))
	if got := a.Document().Thickness(); got != document.MaxThickness {
		t.Fatalf("thickness = %d, want %d", got, document.MaxThickness)
	}
	// dragging keeps control even past the toolbar
	a.HandleMouse(mouseAt(image.Pt(0, 150), mouse.ButtonNone, mouse.DirNone))
	if got := a.Document().Thickness(); got != document.MinThickness {
		t.Fatalf("thickness = %d, want %d", got, document.MinThickness)
	}
	a.HandleMouse(mouseAt(image.Pt(0, 150), mouse.ButtonLeft, mouse.DirRelease))
	if a.sliding {
		t.Fatal("slider still captured after release")
	}
	if a.Document().ActiveLayer().Len() != 0 {
		t.Fatal("slider drag drew on the canvas")
	}
}

func TestColorDialog(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()

	a.HandleKey(press('k'))
	if !a.dialogOpen {
		t.Fatal("dialog not open")
	}
	for i, n := 0, len(a.dialog.Input()); i < n; i++ {
		a.HandleKey(pressCode(key.CodeDeleteBackspace, 0))
	}
	typeText(a, "#12")
	a.HandleKey(pressCode(key.CodeReturnEnter, 0))
	if !a.dialogOpen || a.dialog.Error() == "" {
		t.Fatalf("invalid input accepted: open=%v err=%q", a.dialogOpen, a.dialog.Error())
	}
	// canvas input is blocked while the dialog is up
	drag(a, image.Pt(10, 74), image.Pt(30, 94))
	if d.ActiveLayer().Len() != 0 {
		t.Fatal("drawing reached the canvas behind the dialog")
	}

	typeText(a, "3456")
	a.HandleKey(pressCode(key.CodeReturnEnter, 0))
	if a.dialogOpen {
		t.Fatal("dialog still open after valid input")
	}
	if want := (color.RGBA{0x12, 0x34, 0x56, 0xff}); d.Color != want {
		t.Fatalf("colour = %v, want %v", d.Color, want)
	}

	a.HandleKey(press('g'))
	a.HandleKey(press('k'))
	a.HandleKey(pressCode(key.CodeEscape, 0))
	if a.dialogOpen || a.Done() {
		t.Fatalf("escape: open=%v quit=%v", a.dialogOpen, a.Done())
	}
	if _, ok := d.ActiveLayer().Background(); !ok {
		t.Fatal("base layer lost its background")
	}
}

func TestColorDialogButtons(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()
	d.Target = document.TargetBackground

	a.Exec("color-dialog")
	for i, n := 0, len(a.dialog.Input()); i < n; i++ {
		a.HandleKey(pressCode(key.CodeDeleteBackspace, 0))
	}
	typeText(a, "#00ff00")
	click(a, center(a.dialog.ok.Rect()))
	if a.dialogOpen {
		t.Fatal("OK did not close the dialog")
	}
	if bg, _ := d.ActiveLayer().Background(); bg != colornames.Lime {
		t.Fatalf("background = %v, want lime", bg)
	}
	if d.Color != colornames.Red {
		t.Fatalf("brush colour changed to %v", d.Color)
	}
}

func TestHelpDismiss(t *testing.T) {
	a, _ := newTestApp(t)
	a.HandleKey(pressCode(key.CodeF1, 0))
	if !a.helpOpen {
		t.Fatal("help not shown")
	}
	a.HandleKey(press('e'))
	if a.helpOpen {
		t.Fatal("help still shown")
	}
	if a.Document().Tool != document.ToolRectangle {
		t.Fatal("dismissing key also ran a command")
	}
	a.HandleKey(press('h'))
	click(a, image.Pt(10, 74))
	if a.helpOpen {
		t.Fatal("click did not dismiss help")
	}
	for _, l := range a.help.Lines {
		if strings.Contains(l, "Ctrl+V") {
			return
		}
	}
	t.Fatal("help does not list paste")
}

func TestSaveLoad(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()

	a.HandleKey(press('l'))
	if !strings.HasPrefix(a.Status(), "no such file") {
		t.Fatalf("status = %q", a.Status())
	}

	drag(a, image.Pt(10, 74), image.Pt(30, 94))
	a.HandleKey(key.Event{Rune: 's', Code: key.CodeS, Modifiers: key.ModControl, Direction: key.DirPress})
	if _, err := os.Stat(a.output); err != nil {
		t.Fatalf("save: %v", err)
	}
	want := d.Render()

	a.HandleKey(press('c'))
	a.HandleKey(press('l'))
	shapes := d.Layers()[0].Shapes()
	if len(shapes) != 1 || shapes[0].Kind() != shape.KindRaster {
		t.Fatalf("base layer after load = %v", shapes)
	}
	if got := d.Render(); got.RGBAAt(20, 20) != want.RGBAAt(20, 20) {
		t.Fatalf("loaded pixel = %v, want %v", got.RGBAAt(20, 20), want.RGBAAt(20, 20))
	}
}

func TestExportPDF(t *testing.T) {
	a, _ := newTestApp(t)
	a.HandleKey(press('p'))
	if !strings.HasSuffix(a.PDFPath(), "drawing.pdf") {
		t.Fatalf("pdf path = %s", a.PDFPath())
	}
	data, err := os.ReadFile(a.PDFPath())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Fatal("not a PDF")
	}
}

func TestLayerCommands(t *testing.T) {
	a, _ := newTestApp(t)
	d := a.Document()

	a.HandleKey(pressCode(key.CodeDeleteForward, 0))
	if d.LayerCount() != 1 || !strings.Contains(a.Status(), document.ErrLastLayer.Error()) {
		t.Fatalf("layers = %d, status = %q", d.LayerCount(), a.Status())
	}

	a.HandleKey(press('n'))
	a.HandleKey(press('n'))
	if d.LayerCount() != 3 || d.ActiveIndex() != 2 {
		t.Fatalf("layers = %d active = %d", d.LayerCount(), d.ActiveIndex())
	}
	top := d.ActiveLayer()
	a.HandleKey(press('['))
	if d.ActiveIndex() != 1 || d.ActiveLayer() != top {
		t.Fatal("[ did not move the layer down")
	}
	a.HandleKey(pressCode(key.CodeTab, 0))
	if d.ActiveIndex() != 2 {
		t.Fatalf("tab: active = %d", d.ActiveIndex())
	}
	a.HandleKey(pressCode(key.CodeTab, 0))
	if d.ActiveIndex() != 0 {
		t.Fatalf("tab wrap: active = %d", d.ActiveIndex())
	}
	a.HandleKey(pressCode(key.CodeTab, key.ModShift))
	if d.ActiveIndex() != 2 {
		t.Fatalf("shift+tab: active = %d", d.ActiveIndex())
	}
	a.HandleKey(press('v'))
	if d.ActiveLayer().Visible {
		t.Fatal("v did not hide the layer")
	}
	a.HandleKey(pressCode(key.CodeDeleteForward, 0))
	if d.LayerCount() != 2 || d.ActiveIndex() != 1 {
		t.Fatalf("after delete: layers = %d active = %d", d.LayerCount(), d.ActiveIndex())
	}
}

func TestCopyPaste(t *testing.T) {
	a, cb := newTestApp(t)
	d := a.Document()

	a.HandleKey(key.Event{Rune: 'v', Code: key.CodeV, Modifiers: key.ModControl, Direction: key.DirPress})
	if !strings.HasPrefix(a.Status(), "paste failed") {
		t.Fatalf("status = %q", a.Status())
	}

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(src, src.Bounds(), &image.Uniform{colornames.Blue}, image.Point{}, draw.Src)
	cb.content = src
	a.HandleKey(press('n'))
	a.HandleKey(key.Event{Rune: 'v', Code: key.CodeV, Modifiers: key.ModControl, Direction: key.DirPress})
	shapes := d.ActiveLayer().Shapes()
	if len(shapes) != 1 || shapes[0].Kind() != shape.KindRaster {
		t.Fatalf("active layer = %v", shapes)
	}
	if got := d.Render().RGBAAt(2, 2); got != colornames.Blue {
		t.Fatalf("pasted pixel = %v", got)
	}
	if want := "pasted 4x4 image onto " + d.ActiveLayer().Name; a.Status() != want {
		t.Fatalf("status = %q, want %q", a.Status(), want)
	}
	if d.Layers()[0].Len() != 0 {
		t.Fatal("paste touched the base layer")
	}

	a.HandleKey(key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress})
	if cb.written == nil || cb.written.Bounds().Size() != d.Size {
		t.Fatalf("copied %v", cb.written)
	}
	if d.ActiveLayer().Len() != 1 {
		t.Fatal("Ctrl+C cleared the layer")
	}
}

func TestFrame(t *testing.T) {
	a, _ := newTestApp(t)
	th := a.theme

	a.HandleMouse(mouseAt(image.Pt(10, 74), mouse.ButtonLeft, mouse.DirPress))
	a.HandleMouse(mouseAt(image.Pt(40, 104), mouse.ButtonNone, mouse.DirNone))
	img := a.Frame()
	if got := img.RGBAAt(20, 84); got != colornames.Red {
		t.Fatalf("preview pixel = %v, want red", got)
	}
	if a.Document().ActiveLayer().Len() != 0 {
		t.Fatal("preview committed")
	}
	if got := img.RGBAAt(100, 84); got != document.Paper {
		t.Fatalf("canvas pixel = %v, want paper", got)
	}
	if got := img.RGBAAt(1, 1); got != th.ToolbarBackground {
		t.Fatalf("toolbar pixel = %v", got)
	}
	if got := img.RGBAAt(1, img.Bounds().Max.Y-1); got != th.StatusBackground {
		t.Fatalf("status pixel = %v", got)
	}
	if got := img.RGBAAt(199, 0+toolbarHeight+100); got != th.StatusBackground {
		t.Fatalf("below canvas = %v", got)
	}
}
