package export

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func sample() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(5, 5, color.RGBA{255, 0, 0, 255})
	return img
}

func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), "test"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
}

func TestPageMatchesImage(t *testing.T) {
	p, err := PDF(sample(), "")
	if err != nil {
		t.Fatal(err)
	}
	if w, h := p.GetPageSize(); w != 40 || h != 20 {
		t.Fatalf("page size = %vx%v, want 40x20", w, h)
	}
	if p.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", p.PageCount())
	}
}

func TestWriteEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, image.NewRGBA(image.Rectangle{}), ""); err == nil {
		t.Fatal("expected an error for an empty image")
	}
}

func TestWritePDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WritePDF(path, sample(), ""); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("file is not a PDF")
	}
}
