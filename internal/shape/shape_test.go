package shape

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

type call struct {
	op     string
	rect   image.Rectangle
	points int
	color  color.Color
	width  int
}

type recorder struct{ calls []call }

func (r *recorder) FillRect(b image.Rectangle, c color.Color) {
	r.calls = append(r.calls, call{op: "fillRect", rect: b, color: c})
}
func (r *recorder) StrokeRect(b image.Rectangle, c color.Color, w int) {
	r.calls = append(r.calls, call{op: "strokeRect", rect: b, color: c, width: w})
}
func (r *recorder) FillEllipse(b image.Rectangle, c color.Color) {
	r.calls = append(r.calls, call{op: "fillEllipse", rect: b, color: c})
}
func (r *recorder) StrokeEllipse(b image.Rectangle, c color.Color, w int) {
	r.calls = append(r.calls, call{op: "strokeEllipse", rect: b, color: c, width: w})
}
func (r *recorder) StrokePolyline(p []image.Point, c color.Color, w int) {
	r.calls = append(r.calls, call{op: "polyline", points: len(p), color: c, width: w})
}
func (r *recorder) Blit(img image.Image, at image.Point) {
	r.calls = append(r.calls, call{op: "blit", rect: img.Bounds().Add(at)})
}

var (
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestNormalizeCommutative(t *testing.T) {
	pts := []image.Point{{0, 0}, {10, 5}, {-3, 7}, {50, -20}, {4, 4}}
	for _, a := range pts {
		for _, b := range pts {
			r1 := Normalize(a, b)
			r2 := Normalize(b, a)
			if r1 != r2 {
				t.Fatalf("Normalize(%v,%v)=%v but swapped=%v", a, b, r1, r2)
			}
			if r1.Dx() < 0 || r1.Dy() < 0 {
				t.Fatalf("negative size %v", r1)
			}
			if r1.Min.X != min(a.X, b.X) || r1.Min.Y != min(a.Y, b.Y) {
				t.Fatalf("unexpected origin %v for %v,%v", r1.Min, a, b)
			}
			if r1.Dx() != abs(a.X-b.X) || r1.Dy() != abs(a.Y-b.Y) {
				t.Fatalf("unexpected size %v for %v,%v", r1.Size(), a, b)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestNormalizeBox(t *testing.T) {
	got := Normalize(image.Pt(50, 40), image.Pt(10, 10))
	if got != image.Rect(10, 10, 50, 40) {
		t.Fatalf("got %v", got)
	}
}

func TestStrokesNeedTwoPoints(t *testing.T) {
	if _, err := NewFreehand([]image.Point{{1, 1}}, red, 2); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
	if _, err := NewEraser(nil, 2); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestFreehandCopiesPoints(t *testing.T) {
	pts := []image.Point{{1, 1}, {2, 2}}
	f, err := NewFreehand(pts, red, 3)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = image.Pt(99, 99)
	if f.Points[0] != image.Pt(1, 1) {
		t.Fatal("record shares the caller's point slice")
	}
}

func TestRenderDispatch(t *testing.T) {
	fe, _ := NewFreehand([]image.Point{{0, 0}, {5, 5}, {9, 1}}, red, 4)
	er, _ := NewEraser([]image.Point{{0, 0}, {5, 5}}, 6)
	shapes := []Shape{
		NewRectangle(image.Pt(50, 40), image.Pt(10, 10), red, true, 2),
		NewRectangle(image.Pt(10, 10), image.Pt(50, 40), red, false, 3),
		NewEllipse(image.Pt(0, 0), image.Pt(20, 10), red, true, 2),
		NewEllipse(image.Pt(20, 10), image.Pt(0, 0), red, false, 2),
		fe,
		er,
		NewRaster(image.NewRGBA(image.Rect(0, 0, 4, 4)), image.Pt(1, 2)),
	}
	rec := &recorder{}
	for _, s := range shapes {
		Render(rec, s, white)
	}
	want := []call{
		{op: "fillRect", rect: image.Rect(10, 10, 50, 40), color: red},
		{op: "strokeRect", rect: image.Rect(10, 10, 50, 40), color: red, width: 3},
		{op: "fillEllipse", rect: image.Rect(0, 0, 20, 10), color: red},
		{op: "strokeEllipse", rect: image.Rect(0, 0, 20, 10), color: red, width: 2},
		{op: "polyline", points: 3, color: red, width: 4},
		{op: "polyline", points: 2, color: white, width: 6},
		{op: "blit", rect: image.Rect(1, 2, 5, 6)},
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %+v", len(rec.calls), len(want), rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, rec.calls[i], want[i])
		}
	}
}

func TestKinds(t *testing.T) {
	if (Rectangle{}).Kind() != KindRectangle || (Eraser{}).Kind() != KindEraser || (Raster{}).Kind() != KindRaster {
		t.Fatal("unexpected kind mapping")
	}
	if KindFreehand.String() != "freehand" {
		t.Fatalf("String = %q", KindFreehand.String())
	}
}

func TestStrokeAndRasterBounds(t *testing.T) {
	pts := []image.Point{{10, 10}, {20, 5}}
	f, err := NewFreehand(pts, red, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.Bounds(), image.Rect(7, 2, 24, 14); got != want {
		t.Fatalf("freehand bounds = %v, want %v", got, want)
	}
	e, err := NewEraser(pts, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e.Bounds(), image.Rect(9, 4, 22, 12); got != want {
		t.Fatalf("eraser bounds = %v, want %v", got, want)
	}
	r := NewRaster(image.NewRGBA(image.Rect(5, 5, 8, 7)), image.Pt(1, 2))
	if got, want := r.Bounds(), image.Rect(1, 2, 4, 4); got != want {
		t.Fatalf("raster bounds = %v, want %v", got, want)
	}
	if !(Raster{}).Bounds().Empty() {
		t.Fatal("empty raster has bounds")
	}
}
