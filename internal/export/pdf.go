// Package export writes the flattened canvas to formats other than PNG.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// PDF builds a single page the size of img, in points, with img covering it.
func PDF(img image.Image, title string) (*gofpdf.Fpdf, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("export: empty image")
	}
	w, h := float64(b.Dx()), float64(b.Dy())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetCreator("layerpaint", true)
	if title != "" {
		p.SetTitle(title, true)
	}
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode canvas: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)
	p.ImageOptions("canvas", 0, 0, w, h, false, opts, 0, "")
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return p, nil
}

// Write renders img as a one-page PDF to w.
func Write(w io.Writer, img image.Image, title string) error {
	p, err := PDF(img, title)
	if err != nil {
		return err
	}
	return p.Output(w)
}

// WritePDF renders img as a one-page PDF file at path.
func WritePDF(path string, img image.Image, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := Write(f, img, title); err != nil {
		_ = f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export %s: closing file: %w", path, err)
	}
	return nil
}
