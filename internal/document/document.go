// Package document holds the state of one painting session: its layers, the
// active layer and the current tool settings.
package document

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/example/layerpaint/internal/layer"
	"github.com/example/layerpaint/internal/shape"
	"github.com/google/uuid"
)

const (
	MinThickness     = 1
	MaxThickness     = 40
	DefaultThickness = 2

	DefaultWidth  = 960
	DefaultHeight = 600
)

var (
	// ErrLastLayer is returned when removing the only remaining layer.
	ErrLastLayer = errors.New("cannot remove the last layer")
	// ErrNoSuchLayer is returned for an unknown layer id.
	ErrNoSuchLayer = errors.New("no such layer")
)

// Paper is the colour erasers paint on layers without a background.
var Paper = color.RGBA{255, 255, 255, 255}

// Tool selects what a drag on the canvas produces.
type Tool int

const (
	ToolRectangle Tool = iota
	ToolEllipse
	ToolBrush
	ToolEraser
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolRectangle, ToolEllipse, ToolBrush, ToolEraser}

func (t Tool) String() string {
	switch t {
	case ToolRectangle:
		return "rectangle"
	case ToolEllipse:
		return "ellipse"
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

// Freehand reports whether the tool records a point list rather than two
// corners.
func (t Tool) Freehand() bool { return t == ToolBrush || t == ToolEraser }

// ColorTarget selects what picking a colour changes.
type ColorTarget int

const (
	TargetBrush ColorTarget = iota
	TargetBackground
)

func (c ColorTarget) String() string {
	if c == TargetBackground {
		return "background"
	}
	return "brush"
}

// Document is the whole editable state of a session.
type Document struct {
	Size   image.Point
	Paper  color.RGBA
	Tool   Tool
	Color  color.RGBA
	Target ColorTarget
	Filled bool

	thickness    int
	layers       []*layer.Layer
	active       int
	layerCounter int
}

// Option configures a Document created by New.
type Option func(*Document)

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(d *Document) { d.Size = image.Pt(width, height) }
}

// WithThickness sets the initial brush thickness.
func WithThickness(n int) Option { return func(d *Document) { d.thickness = n } }

// WithColor sets the initial brush colour.
func WithColor(c color.RGBA) Option { return func(d *Document) { d.Color = c } }

// WithTool sets the initial tool.
func WithTool(t Tool) Option { return func(d *Document) { d.Tool = t } }

// New creates a document with a single white base layer.
func New(opts ...Option) *Document {
	d := &Document{
		Size:         image.Pt(DefaultWidth, DefaultHeight),
		Paper:        Paper,
		Tool:         ToolRectangle,
		Color:        color.RGBA{255, 0, 0, 255},
		Filled:       true,
		thickness:    DefaultThickness,
		layerCounter: 1,
	}
	for _, o := range opts {
		o(d)
	}
	if d.Size.X < 1 {
		d.Size.X = 1
	}
	if d.Size.Y < 1 {
		d.Size.Y = 1
	}
	d.thickness = clampThickness(d.thickness)
	d.layers = []*layer.Layer{layer.NewWithBackground("Background", d.Paper)}
	return d
}

func clampThickness(n int) int {
	if n < MinThickness {
		return MinThickness
	}
	if n > MaxThickness {
		return MaxThickness
	}
	return n
}

// Thickness returns the brush thickness.
func (d *Document) Thickness() int { return d.thickness }

// SetThickness sets the brush thickness, clamped to the allowed range.
func (d *Document) SetThickness(n int) { d.thickness = clampThickness(n) }

// SetTool switches the current tool.
func (d *Document) SetTool(t Tool) {
	d.Tool = t
	log.Printf("tool: %s", t)
}

// ToggleFill flips between filled and outlined shapes.
func (d *Document) ToggleFill() {
	d.Filled = !d.Filled
	if d.Filled {
		log.Print("fill: filled")
	} else {
		log.Print("fill: outline")
	}
}

// ToggleTarget flips whether picked colours go to the brush or to the active
// layer's background.
func (d *Document) ToggleTarget() {
	if d.Target == TargetBrush {
		d.Target = TargetBackground
	} else {
		d.Target = TargetBrush
	}
	log.Printf("color target: %s", d.Target)
}

// PickColor applies c to the current colour target.
func (d *Document) PickColor(c color.RGBA) {
	if d.Target == TargetBackground {
		d.ActiveLayer().SetBackground(c)
		return
	}
	d.Color = c
}

// Layers returns the layers bottom to top. The slice is a copy; the layers
// are shared.
func (d *Document) Layers() []*layer.Layer { return append([]*layer.Layer(nil), d.layers...) }

// LayerCount returns the number of layers.
func (d *Document) LayerCount() int { return len(d.layers) }

// ActiveIndex returns the index of the active layer.
func (d *Document) ActiveIndex() int { return d.active }

// ActiveLayer returns the layer new shapes go to.
func (d *Document) ActiveLayer() *layer.Layer { return d.layers[d.active] }

// AddLayer appends a transparent layer on top and makes it active.
func (d *Document) AddLayer() *layer.Layer {
	l := layer.New(fmt.Sprintf("Layer %d", d.layerCounter))
	d.layerCounter++
	d.layers = append(d.layers, l)
	d.active = len(d.layers) - 1
	log.Printf("added %s", l.Name)
	return l
}

// RemoveActiveLayer deletes the active layer. The last remaining layer
// cannot be removed.
func (d *Document) RemoveActiveLayer() error {
	if len(d.layers) <= 1 {
		return ErrLastLayer
	}
	removed := d.layers[d.active]
	copy(d.layers[d.active:], d.layers[d.active+1:])
	d.layers[len(d.layers)-1] = nil
	d.layers = d.layers[:len(d.layers)-1]
	if d.active > 0 {
		d.active--
	}
	log.Printf("removed %s", removed.Name)
	return nil
}

// IndexOf returns the index of the layer with id, or -1.
func (d *Document) IndexOf(id uuid.UUID) int {
	for i, l := range d.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// CycleLayer moves the active selection by delta, wrapping around.
func (d *Document) CycleLayer(delta int) {
	n := len(d.layers)
	d.active = ((d.active+delta)%n + n) % n
}

// MoveActiveLayer shifts the active layer up (delta > 0) or down in the
// stack. It reports false when the layer is already at the edge.
func (d *Document) MoveActiveLayer(delta int) bool {
	to := d.active + delta
	if delta == 0 || to < 0 || to >= len(d.layers) {
		return false
	}
	d.layers[d.active], d.layers[to] = d.layers[to], d.layers[d.active]
	d.active = to
	return true
}

// ToggleVisibility shows or hides the active layer.
func (d *Document) ToggleVisibility() {
	l := d.ActiveLayer()
	l.Visible = !l.Visible
}

// Layer returns the layer with the given id.
func (d *Document) Layer(id uuid.UUID) (*layer.Layer, error) {
	i := d.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchLayer, id)
	}
	return d.layers[i], nil
}

// Commit appends s to the active layer.
func (d *Document) Commit(s shape.Shape) {
	d.ActiveLayer().Append(s)
}

// CommitTo appends s to the layer with the given id, wherever that layer
// now sits in the stack.
func (d *Document) CommitTo(id uuid.UUID, s shape.Shape) error {
	l, err := d.Layer(id)
	if err != nil {
		return err
	}
	l.Append(s)
	return nil
}

// Undo undoes the newest shape on the active layer.
func (d *Document) Undo() bool { return d.ActiveLayer().Undo() }

// Redo restores the most recently undone shape on the active layer.
func (d *Document) Redo() bool { return d.ActiveLayer().Redo() }

// Clear empties the active layer, keeping its background.
func (d *Document) Clear() {
	l := d.ActiveLayer()
	l.Clear()
	log.Printf("cleared %s", l.Name)
}

// EraseColor returns the colour erasers paint on l.
func (d *Document) EraseColor(l *layer.Layer) color.RGBA {
	return eraseColor(l, d.Paper)
}

// Render composites all visible layers into a new image.
func (d *Document) Render() *image.RGBA {
	return Composite(d.layers, d.Size, d.Paper)
}
