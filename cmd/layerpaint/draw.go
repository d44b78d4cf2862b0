package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/layerpaint/internal/clipboard"
	"github.com/example/layerpaint/internal/colorparse"
	"github.com/example/layerpaint/internal/config"
	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/shape"
)

// drawCmd applies one shape to an image without opening a window.
type drawCmd struct {
	*root
	fs          *flag.FlagSet
	file        string
	output      string
	size        string
	colorSpec   string
	color       color.RGBA
	width       int
	filled      bool
	toClipboard bool
	kind        string
	points      []image.Point
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

// parseColor accepts palette names, SVG colour names and the formats of
// the custom colour dialog.
func parseColor(s string, palette []config.PaletteEntry) (color.RGBA, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range palette {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Color, nil
		}
	}
	if c, err := config.LookupColor(spec); err == nil {
		return c, nil
	}
	c, err := colorparse.Parse(spec)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("size must look like WIDTHxHEIGHT, got %q", s)
	}
	x, errW := strconv.Atoi(w)
	y, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || x < 1 || y < 1 {
		return image.Point{}, fmt.Errorf("invalid size %q", s)
	}
	return image.Pt(x, y), nil
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{fs: fs}
	if r != nil {
		d.root = r.subcommand("draw")
	} else {
		d.root = &root{program: "draw", config: config.New()}
	}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input image file (omit to start from a blank canvas)")
	fs.StringVar(&d.output, "output", "", "output PNG path (defaults to the input file)")
	fs.StringVar(&d.size, "size", fmt.Sprintf("%dx%d", document.DefaultWidth, document.DefaultHeight), "blank canvas size when no input file is given")
	fs.StringVar(&d.colorSpec, "color", "red", "palette name, colour name, #RRGGBB or R,G,B")
	fs.IntVar(&d.width, "width", document.DefaultThickness, "stroke width in pixels")
	fs.BoolVar(&d.filled, "fill", false, "fill rectangles and ellipses")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	positionals := fs.Args()
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.kind = strings.ToLower(positionals[0])
	coords, err := expectInts(positionals[1:], d.kind)
	if err != nil {
		return nil, err
	}
	switch d.kind {
	case "rect", "ellipse":
		if len(coords) != 4 {
			return nil, fmt.Errorf("%s requires 4 integer arguments", d.kind)
		}
	case "brush", "eraser":
		if len(coords) < 4 || len(coords)%2 != 0 {
			return nil, fmt.Errorf("%s requires pairs of coordinates for at least two points", d.kind)
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.kind)
	}
	for i := 0; i < len(coords); i += 2 {
		d.points = append(d.points, image.Pt(coords[i], coords[i+1]))
	}
	d.color, err = parseColor(d.colorSpec, d.root.config.Palette)
	if err != nil {
		return nil, err
	}
	if d.output == "" {
		if d.file == "" {
			return nil, fmt.Errorf("output file is required when drawing on a blank canvas")
		}
		d.output = d.file
	}
	d.width = min(max(d.width, document.MinThickness), document.MaxThickness)
	return d, nil
}

func expectInts(args []string, kind string) ([]int, error) {
	vals := make([]int, len(args))
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", kind, raw)
		}
		vals[i] = v
	}
	return vals, nil
}

func (d *drawCmd) newDocument() (*document.Document, error) {
	if d.file == "" {
		size, err := parseSize(d.size)
		if err != nil {
			return nil, err
		}
		return document.New(document.WithSize(size.X, size.Y)), nil
	}
	img, err := document.DecodeFile(d.file)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	b := img.Bounds()
	doc := document.New(document.WithSize(b.Dx(), b.Dy()))
	doc.ActiveLayer().Reset(shape.NewRaster(img, image.Point{}))
	return doc, nil
}

func (d *drawCmd) record() (shape.Shape, error) {
	switch d.kind {
	case "rect":
		return shape.NewRectangle(d.points[0], d.points[1], d.color, d.filled, d.width), nil
	case "ellipse":
		return shape.NewEllipse(d.points[0], d.points[1], d.color, d.filled, d.width), nil
	case "brush":
		return shape.NewFreehand(d.points, d.color, d.width)
	case "eraser":
		return shape.NewEraser(d.points, d.width)
	}
	return nil, fmt.Errorf("unsupported shape %q", d.kind)
}

func (d *drawCmd) Run() error {
	doc, err := d.newDocument()
	if err != nil {
		return err
	}
	s, err := d.record()
	if err != nil {
		return err
	}
	doc.Commit(s)
	if err := doc.Save(d.output); err != nil {
		return err
	}
	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	d.notifier.Save(saved)
	if d.toClipboard {
		img := doc.Render()
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", filepath.Base(d.output))
		d.notifier.Copy(filepath.Base(d.output), img)
	}
	return nil
}
