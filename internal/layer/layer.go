// Package layer holds one compositable drawing surface: an ordered list of
// shape records with its own undo history.
package layer

import (
	"image/color"

	"github.com/example/layerpaint/internal/shape"
	"github.com/google/uuid"
)

// Layer is an ordered stack of shapes with a redo buffer and an optional
// solid background.
type Layer struct {
	ID      uuid.UUID
	Name    string
	Visible bool

	background    color.RGBA
	hasBackground bool
	shapes        []shape.Shape
	redo          []shape.Shape
}

// New returns a visible, empty layer without a background.
func New(name string) *Layer {
	return &Layer{ID: uuid.New(), Name: name, Visible: true}
}

// NewWithBackground returns a visible layer filled with bg.
func NewWithBackground(name string, bg color.RGBA) *Layer {
	l := New(name)
	l.SetBackground(bg)
	return l
}

// Append adds s on top of the layer and discards the redo history.
func (l *Layer) Append(s shape.Shape) {
	l.shapes = append(l.shapes, s)
	l.redo = nil
}

// Undo moves the newest shape onto the redo stack. It reports false when
// there is nothing to undo.
func (l *Layer) Undo() bool {
	n := len(l.shapes)
	if n == 0 {
		return false
	}
	s := l.shapes[n-1]
	l.shapes[n-1] = nil
	l.shapes = l.shapes[:n-1]
	l.redo = append(l.redo, s)
	return true
}

// Redo moves the top of the redo stack back onto the layer. It reports
// false when the redo stack is empty.
func (l *Layer) Redo() bool {
	n := len(l.redo)
	if n == 0 {
		return false
	}
	s := l.redo[n-1]
	l.redo[n-1] = nil
	l.redo = l.redo[:n-1]
	l.shapes = append(l.shapes, s)
	return true
}

// Clear drops all shapes and redo history. The background is kept.
func (l *Layer) Clear() {
	l.shapes = nil
	l.redo = nil
}

// ClearRedo discards the redo stack.
func (l *Layer) ClearRedo() { l.redo = nil }

// Reset replaces the whole history with records and removes the background.
func (l *Layer) Reset(records ...shape.Shape) {
	l.shapes = append([]shape.Shape(nil), records...)
	l.redo = nil
	l.hasBackground = false
	l.background = color.RGBA{}
}

// SetBackground sets the solid fill painted beneath the shapes.
func (l *Layer) SetBackground(c color.RGBA) {
	l.background = c
	l.hasBackground = true
}

// ClearBackground makes the layer transparent beneath its shapes.
func (l *Layer) ClearBackground() {
	l.background = color.RGBA{}
	l.hasBackground = false
}

// Background returns the background colour and whether one is set.
func (l *Layer) Background() (color.RGBA, bool) { return l.background, l.hasBackground }

// Shapes returns the shapes bottom to top. The slice is a copy.
func (l *Layer) Shapes() []shape.Shape { return append([]shape.Shape(nil), l.shapes...) }

// RedoStack returns the redo stack from bottom to top; the last element is
// the next shape Redo restores. The slice is a copy.
func (l *Layer) RedoStack() []shape.Shape { return append([]shape.Shape(nil), l.redo...) }

// Len returns the number of shapes on the layer.
func (l *Layer) Len() int { return len(l.shapes) }

// CanUndo reports whether Undo would do anything.
func (l *Layer) CanUndo() bool { return len(l.shapes) > 0 }

// CanRedo reports whether Redo would do anything.
func (l *Layer) CanRedo() bool { return len(l.redo) > 0 }
