package windowing

import (
	"github.com/agiangrant/modal/ui"
)

// Rect is an integer rectangle in desktop coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// CenteredIn returns r repositioned so it is centered within outer.
// Offsets use integer division, matching OS window placement.
func (r Rect) CenteredIn(outer Rect) Rect {
	return Rect{
		X:      outer.X + (outer.Width-r.Width)/2,
		Y:      outer.Y + (outer.Height-r.Height)/2,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// WindowKind selects the window chrome and behavior.
type WindowKind int

const (
	// KindNormal is a regular application window.
	KindNormal WindowKind = iota

	// KindPopup is a chromeless overlay window (dialogs, backdrops).
	KindPopup
)

// WindowOptions configures a window at creation time.
type WindowOptions struct {
	Title   string
	Bounds  Rect
	Focused bool

	// Kind, Movable, and Transparent record the caller's intent, but the
	// layered host implies their popup values: every window composites as
	// a chromeless, non-movable, transparent layer on the shared surface.
	Kind        WindowKind
	Movable     bool
	Transparent bool

	// Root builds the window's widget tree. Called once when the window
	// is opened.
	Root func() *ui.Widget
}

// Window is a composited layer owned by a Host. Windows stack in creation
// order; later windows draw above and receive input before earlier ones.
type Window struct {
	opts       WindowOptions
	bounds     Rect
	root       *ui.Widget
	dispatcher *ui.Dispatcher
	focused    bool
}

func newWindow(opts WindowOptions) *Window {
	root := opts.Root()
	return &Window{
		opts:       opts,
		bounds:     opts.Bounds,
		root:       root,
		dispatcher: ui.NewDispatcher(root),
		focused:    opts.Focused,
	}
}

// Bounds returns the window's rectangle in desktop coordinates.
func (w *Window) Bounds() Rect {
	return w.bounds
}

// Root returns the window's widget tree.
func (w *Window) Root() *ui.Widget {
	return w.root
}

// Focused reports whether the window receives keyboard input.
func (w *Window) Focused() bool {
	return w.focused
}

// layoutIfNeeded runs a layout pass when the tree has pending changes.
func (w *Window) layoutIfNeeded() {
	if w.root.NeedsLayout() {
		ui.Layout(w.root, float32(w.bounds.Width), float32(w.bounds.Height))
	}
}
