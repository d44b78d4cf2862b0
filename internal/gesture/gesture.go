// Package gesture turns pointer events over the canvas into shape records.
package gesture

import (
	"image"
	"log"

	"github.com/example/layerpaint/internal/document"
	"github.com/example/layerpaint/internal/layer"
	"github.com/example/layerpaint/internal/shape"
	"github.com/google/uuid"
)

// State is the phase of the pointer gesture in progress.
type State int

const (
	Idle State = iota
	DraggingShape
	DraggingFreehand
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingShape:
		return "dragging shape"
	case DraggingFreehand:
		return "dragging freehand"
	}
	return "unknown"
}

// Controller tracks one drag at a time. Pointer positions are in window
// coordinates; region is the canvas rectangle within the window and every
// recorded point is relative to its top-left corner. A drag belongs to the
// layer that was active when it started, even if the selection changes
// before the release.
type Controller struct {
	doc    *document.Document
	region image.Rectangle

	state  State
	tool   document.Tool
	target uuid.UUID
	start  image.Point
	last   image.Point
	points []image.Point
}

// New returns an idle controller committing into doc.
func New(doc *document.Document, region image.Rectangle) *Controller {
	return &Controller{doc: doc, region: region}
}

// SetDocument swaps the document gestures commit into and drops any drag.
func (c *Controller) SetDocument(doc *document.Document) {
	c.doc = doc
	c.reset()
}

// SetRegion moves the canvas rectangle, for example after a window resize.
func (c *Controller) SetRegion(r image.Rectangle) { c.region = r }

// Region returns the canvas rectangle in window coordinates.
func (c *Controller) Region() image.Rectangle { return c.region }

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Points returns a copy of the freehand points gathered so far.
func (c *Controller) Points() []image.Point { return append([]image.Point(nil), c.points...) }

// Contains reports whether p (window coordinates) lies on the canvas.
func (c *Controller) Contains(p image.Point) bool { return p.In(c.region) }

func (c *Controller) local(p image.Point) image.Point { return p.Sub(c.region.Min) }

// clamp maps p onto the nearest canvas pixel and returns it in canvas
// coordinates.
func (c *Controller) clamp(p image.Point) image.Point {
	r := c.region
	p.X = min(max(p.X, r.Min.X), r.Max.X-1)
	p.Y = min(max(p.Y, r.Min.Y), r.Max.Y-1)
	return c.local(p)
}

// Target returns the layer the gesture in progress will commit to, or nil
// when idle or when that layer has since been removed.
func (c *Controller) Target() *layer.Layer {
	if c.state == Idle {
		return nil
	}
	l, err := c.doc.Layer(c.target)
	if err != nil {
		return nil
	}
	return l
}

// PointerDown starts a gesture. It returns false and changes nothing when p
// is outside the canvas.
func (c *Controller) PointerDown(p image.Point) bool {
	if !c.Contains(p) {
		return false
	}
	l := c.doc.ActiveLayer()
	l.ClearRedo()
	lp := c.local(p)
	c.target = l.ID
	c.tool = c.doc.Tool
	c.start, c.last = lp, lp
	if c.tool.Freehand() {
		c.points = []image.Point{lp}
		c.state = DraggingFreehand
	} else {
		c.points = nil
		c.state = DraggingShape
	}
	return true
}

// PointerMove extends the gesture in progress. Positions off the canvas are
// pulled onto its border, so a stroke that leaves and re-enters follows the
// edge.
func (c *Controller) PointerMove(p image.Point) bool {
	if c.state == Idle {
		return false
	}
	lp := c.clamp(p)
	c.last = lp
	if c.state == DraggingFreehand && lp != c.points[len(c.points)-1] {
		c.points = append(c.points, lp)
	}
	return true
}

// PointerUp finishes the gesture wherever the pointer is released, clamping
// the position onto the canvas, and appends the resulting record to the
// layer the drag started on. It returns the committed record, or false when
// nothing was committed (no drag, a freehand stroke with fewer than two
// points, or the layer was removed mid-drag).
func (c *Controller) PointerUp(p image.Point) (shape.Shape, bool) {
	if c.state == Idle {
		return nil, false
	}
	lp := c.clamp(p)
	c.last = lp
	if c.state == DraggingFreehand && lp != c.points[len(c.points)-1] {
		c.points = append(c.points, lp)
	}
	s, ok := c.build()
	target := c.target
	c.reset()
	if !ok {
		log.Print("stroke too short, discarded")
		return nil, false
	}
	if err := c.doc.CommitTo(target, s); err != nil {
		log.Printf("%s discarded: %v", s.Kind(), err)
		return nil, false
	}
	return s, true
}

// Preview returns the record the gesture would commit right now, built from
// the current document attributes. It is never added to a layer.
func (c *Controller) Preview() (shape.Shape, bool) {
	if c.state == Idle {
		return nil, false
	}
	return c.build()
}

func (c *Controller) build() (shape.Shape, bool) {
	d := c.doc
	switch c.state {
	case DraggingShape:
		tool := c.tool
		if !d.Tool.Freehand() {
			tool = d.Tool
		}
		if tool == document.ToolEllipse {
			return shape.NewEllipse(c.start, c.last, d.Color, d.Filled, d.Thickness()), true
		}
		return shape.NewRectangle(c.start, c.last, d.Color, d.Filled, d.Thickness()), true
	case DraggingFreehand:
		tool := c.tool
		if d.Tool.Freehand() {
			tool = d.Tool
		}
		if tool == document.ToolEraser {
			e, err := shape.NewEraser(c.points, d.Thickness())
			if err != nil {
				return nil, false
			}
			return e, true
		}
		f, err := shape.NewFreehand(c.points, d.Color, d.Thickness())
		if err != nil {
			return nil, false
		}
		return f, true
	}
	return nil, false
}

func (c *Controller) reset() {
	c.state = Idle
	c.target = uuid.Nil
	c.points = nil
}
