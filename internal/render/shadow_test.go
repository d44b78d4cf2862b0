package render

import (
	"image"
	"testing"
)

func TestDropShadowDarkensOffsetArea(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	panel := image.Rect(10, 10, 30, 30)
	opts := ShadowOptions{Radius: 3, Offset: image.Pt(8, 6), Opacity: 0.5}
	DropShadow(dst, panel, opts)

	inside := panel.Min.Add(opts.Offset).Add(image.Pt(10, 10))
	if dst.RGBAAt(inside.X, inside.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", inside)
	}
	if dst.RGBAAt(2, 2).A != 0 {
		t.Fatal("shadow leaked far from the panel")
	}
}

func TestDropShadowBlursEdge(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	panel := image.Rect(10, 10, 30, 30)
	DropShadow(dst, panel, ShadowOptions{Radius: 4, Offset: image.Pt(0, 0), Opacity: 1})
	edge := dst.RGBAAt(31, 20).A
	if edge == 0 {
		t.Fatal("expected blurred alpha just outside the panel edge")
	}
	if centre := dst.RGBAAt(20, 20).A; centre <= edge {
		t.Fatalf("centre alpha %d should exceed edge alpha %d", centre, edge)
	}
}

func TestDropShadowZeroOpacity(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	DropShadow(dst, image.Rect(2, 2, 10, 10), ShadowOptions{Radius: 4, Opacity: 0})
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("expected untouched destination")
		}
	}
}
