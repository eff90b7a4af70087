// Package ui provides a small retained-mode widget tree: declarative
// element construction through fluent builders, a DOM-like event model
// with capture/bubble propagation, and a deterministic two-pass layout.
//
// Widgets carry no behavior beyond their declared properties and
// handlers; rendering and input are supplied by a host (see the
// windowing package).
package ui

import (
	"sync"
	"sync/atomic"
)

// WidgetID uniquely identifies a widget in the tree.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget for layout and rendering.
type WidgetKind string

const (
	KindContainer WidgetKind = "container"
	KindVStack    WidgetKind = "vstack"
	KindHStack    WidgetKind = "hstack"
	KindZStack    WidgetKind = "zstack"
	KindText      WidgetKind = "text"
	KindButton    WidgetKind = "button"
)

// SizeMode determines how a widget's width or height is calculated.
type SizeMode int

const (
	// SizeAuto sizes the widget to its content (text metrics or children).
	SizeAuto SizeMode = iota

	// SizeFixed uses the explicitly set width/height.
	SizeFixed

	// SizeFull fills the parent's inner size. Inside a stack's main axis
	// this means the remaining space after fixed siblings are placed.
	SizeFull
)

// Position determines how a widget is positioned relative to its parent.
type Position int

const (
	// PositionStatic is the default - widget flows in the parent's layout.
	PositionStatic Position = iota

	// PositionAbsolute positions the widget at x/y within the parent's
	// bounds. Widget is removed from normal flow.
	PositionAbsolute
)

// JustifyContent controls alignment along the main axis.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifyBetween
)

// AlignItems controls alignment along the cross axis.
type AlignItems int

const (
	AlignStart AlignItems = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

// Widget represents a UI element in the retained tree.
// Widgets are thread-safe for concurrent property updates.
type Widget struct {
	mu sync.RWMutex

	id       WidgetID
	kind     WidgetKind
	parent   *Widget
	children []*Widget

	// Layout properties
	positionMode  Position
	x, y          float32 // Offsets for PositionAbsolute
	width, height float32
	widthMode     SizeMode
	heightMode    SizeMode

	// Spacing
	padding [4]float32 // [top, right, bottom, left]
	gap     float32    // Space between children (for VStack/HStack)

	// Child alignment
	justify JustifyContent
	align   AlignItems

	// Visual properties
	backgroundColor *uint32
	borderColor     uint32
	borderWidth     float32
	cornerRadius    [4]float32 // [top-left, top-right, bottom-right, bottom-left]
	shadowColor     uint32
	shadowOffsetY   float32
	shadowSpread    float32
	opacity         float32
	visible         bool

	// Content
	text      string
	textColor uint32
	fontSize  float32

	// Custom application data
	data any

	// Event handlers
	onClick      MouseHandler
	onMouseDown  MouseHandler
	onMouseUp    MouseHandler
	onMouseEnter MouseHandler
	onMouseLeave MouseHandler
	onKeyDown    KeyHandler

	// Interactive state
	hovered bool
	pressed bool

	// Computed layout (window coordinates, cached for hit testing)
	computedBounds Bounds
	layoutDirty    bool
}

// NewWidget creates a widget of the given kind.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:          newWidgetID(),
		kind:        kind,
		opacity:     1.0,
		textColor:   ColorBlack,
		fontSize:    16,
		visible:     true,
		layoutDirty: true,
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget kind.
func (w *Widget) Kind() WidgetKind {
	return w.kind
}

// Parent returns the widget's parent, or nil for the root.
func (w *Widget) Parent() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	children := make([]*Widget, len(w.children))
	copy(children, w.children)
	return children
}

// AddChild appends a child widget.
func (w *Widget) AddChild(child *Widget) *Widget {
	if child == nil {
		return w
	}
	w.mu.Lock()
	w.children = append(w.children, child)
	w.mu.Unlock()
	child.mu.Lock()
	child.parent = w
	child.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetFrame sets an absolute position and fixed size.
func (w *Widget) SetFrame(x, y, width, height float32) *Widget {
	w.mu.Lock()
	w.positionMode = PositionAbsolute
	w.x = x
	w.y = y
	w.width = width
	w.height = height
	w.widthMode = SizeFixed
	w.heightMode = SizeFixed
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetSize sets a fixed width and height.
func (w *Widget) SetSize(width, height float32) *Widget {
	w.mu.Lock()
	w.width = width
	w.height = height
	w.widthMode = SizeFixed
	w.heightMode = SizeFixed
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetWidth sets a fixed width, leaving height untouched.
func (w *Widget) SetWidth(width float32) *Widget {
	w.mu.Lock()
	w.width = width
	w.widthMode = SizeFixed
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetHeight sets a fixed height, leaving width untouched.
func (w *Widget) SetHeight(height float32) *Widget {
	w.mu.Lock()
	w.height = height
	w.heightMode = SizeFixed
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetFullSize makes the widget fill its parent on both axes.
func (w *Widget) SetFullSize() *Widget {
	w.mu.Lock()
	w.widthMode = SizeFull
	w.heightMode = SizeFull
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetFullWidth makes the widget fill its parent horizontally.
func (w *Widget) SetFullWidth() *Widget {
	w.mu.Lock()
	w.widthMode = SizeFull
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetFullHeight makes the widget fill its parent vertically.
func (w *Widget) SetFullHeight() *Widget {
	w.mu.Lock()
	w.heightMode = SizeFull
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetPosition sets the x/y offset used by PositionAbsolute.
func (w *Widget) SetPosition(x, y float32) *Widget {
	w.mu.Lock()
	w.x = x
	w.y = y
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetPositionMode sets how the widget is positioned.
func (w *Widget) SetPositionMode(pos Position) *Widget {
	w.mu.Lock()
	w.positionMode = pos
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetBackgroundColor sets the background fill color.
func (w *Widget) SetBackgroundColor(color uint32) *Widget {
	w.mu.Lock()
	w.backgroundColor = &color
	w.mu.Unlock()
	return w
}

// SetBorder sets border width and color.
func (w *Widget) SetBorder(width float32, color uint32) *Widget {
	w.mu.Lock()
	w.borderWidth = width
	w.borderColor = color
	w.mu.Unlock()
	return w
}

// SetCornerRadius sets a uniform corner radius.
// A radius of half the widget's size produces a circle.
func (w *Widget) SetCornerRadius(radius float32) *Widget {
	w.mu.Lock()
	w.cornerRadius = [4]float32{radius, radius, radius, radius}
	w.mu.Unlock()
	return w
}

// SetCornerRadii sets each corner radius individually, clockwise from
// top-left. Zero leaves a corner square, so chrome strips can round only
// their outer edge.
func (w *Widget) SetCornerRadii(topLeft, topRight, bottomRight, bottomLeft float32) *Widget {
	w.mu.Lock()
	w.cornerRadius = [4]float32{topLeft, topRight, bottomRight, bottomLeft}
	w.mu.Unlock()
	return w
}

// SetShadow sets a drop shadow below the widget.
// Spread is how far the shadow extends beyond the widget's bounds.
func (w *Widget) SetShadow(color uint32, offsetY, spread float32) *Widget {
	w.mu.Lock()
	w.shadowColor = color
	w.shadowOffsetY = offsetY
	w.shadowSpread = spread
	w.mu.Unlock()
	return w
}

// SetOpacity sets opacity (0.0 to 1.0).
func (w *Widget) SetOpacity(opacity float32) *Widget {
	w.mu.Lock()
	w.opacity = opacity
	w.mu.Unlock()
	return w
}

// SetVisible shows or hides the widget. Hidden widgets keep their layout
// slot but are not drawn and receive no events.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.mu.Lock()
	w.visible = visible
	w.mu.Unlock()
	return w
}

// SetText sets the text content.
func (w *Widget) SetText(text string) *Widget {
	w.mu.Lock()
	changed := w.text != text
	w.text = text
	w.mu.Unlock()
	if changed {
		w.markLayoutDirty()
	}
	return w
}

// SetTextColor sets the text color.
func (w *Widget) SetTextColor(color uint32) *Widget {
	w.mu.Lock()
	w.textColor = color
	w.mu.Unlock()
	return w
}

// SetFontSize sets the font size in logical pixels.
func (w *Widget) SetFontSize(size float32) *Widget {
	w.mu.Lock()
	w.fontSize = size
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetPaddingAll sets padding for each side (top, right, bottom, left).
func (w *Widget) SetPaddingAll(top, right, bottom, left float32) *Widget {
	w.mu.Lock()
	w.padding = [4]float32{top, right, bottom, left}
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetGap sets the spacing between children.
func (w *Widget) SetGap(gap float32) *Widget {
	w.mu.Lock()
	w.gap = gap
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetJustify sets main-axis alignment of children.
func (w *Widget) SetJustify(j JustifyContent) *Widget {
	w.mu.Lock()
	w.justify = j
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetAlign sets cross-axis alignment of children.
func (w *Widget) SetAlign(a AlignItems) *Widget {
	w.mu.Lock()
	w.align = a
	w.mu.Unlock()
	w.markLayoutDirty()
	return w
}

// SetData sets custom application data.
func (w *Widget) SetData(data any) *Widget {
	w.mu.Lock()
	w.data = data
	w.mu.Unlock()
	return w
}

// Size returns the declared width and height.
func (w *Widget) Size() (width, height float32) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height
}

// Text returns the text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// TextStyle returns the text color and font size.
func (w *Widget) TextStyle() (color uint32, size float32) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.textColor, w.fontSize
}

// BackgroundColor returns the background color, or 0 if not set.
func (w *Widget) BackgroundColor() (color uint32, ok bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.backgroundColor != nil {
		return *w.backgroundColor, true
	}
	return 0, false
}

// CornerRadius returns the top-left corner radius, which for widgets
// styled with SetCornerRadius is the uniform one.
func (w *Widget) CornerRadius() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cornerRadius[0]
}

// CornerRadii returns all four corner radii, clockwise from top-left.
func (w *Widget) CornerRadii() [4]float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cornerRadius
}

// Border returns the border width and color.
func (w *Widget) Border() (width float32, color uint32) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.borderWidth, w.borderColor
}

// Shadow returns the drop shadow color, vertical offset, and spread.
func (w *Widget) Shadow() (color uint32, offsetY, spread float32) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.shadowColor, w.shadowOffsetY, w.shadowSpread
}

// Opacity returns the widget's opacity.
func (w *Widget) Opacity() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.opacity
}

// Data returns the custom application data.
func (w *Widget) Data() any {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data
}

// Visible returns whether the widget is drawn.
func (w *Widget) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// IsHovered returns true if the mouse is over this widget.
func (w *Widget) IsHovered() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hovered
}

// IsPressed returns true if a mouse button went down on this widget and
// has not been released yet.
func (w *Widget) IsPressed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pressed
}

// ComputedBounds returns the widget's window-space bounds from the last
// layout pass.
func (w *Widget) ComputedBounds() Bounds {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.computedBounds
}

// NeedsLayout reports whether the subtree rooted at this widget has
// pending layout changes.
func (w *Widget) NeedsLayout() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.layoutDirty
}

// markLayoutDirty flags this widget and all ancestors for relayout.
func (w *Widget) markLayoutDirty() {
	for cur := w; cur != nil; {
		cur.mu.Lock()
		cur.layoutDirty = true
		parent := cur.parent
		cur.mu.Unlock()
		cur = parent
	}
}

func (w *Widget) setHovered(hovered bool) {
	w.mu.Lock()
	w.hovered = hovered
	w.mu.Unlock()
}

func (w *Widget) setPressed(pressed bool) {
	w.mu.Lock()
	w.pressed = pressed
	w.mu.Unlock()
}

// OnClick sets the click handler (mouse down + up over the same widget).
func (w *Widget) OnClick(handler MouseHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClick = handler
	return w
}

// OnMouseDown sets the mouse down handler.
func (w *Widget) OnMouseDown(handler MouseHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseDown = handler
	return w
}

// OnMouseUp sets the mouse up handler. The handler fires when the button
// is released inside the widget's hit-region, regardless of where the
// press started.
func (w *Widget) OnMouseUp(handler MouseHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseUp = handler
	return w
}

// OnMouseEnter sets the mouse enter handler.
func (w *Widget) OnMouseEnter(handler MouseHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseEnter = handler
	return w
}

// OnMouseLeave sets the mouse leave handler.
func (w *Widget) OnMouseLeave(handler MouseHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseLeave = handler
	return w
}

// OnKeyDown sets the key down handler.
func (w *Widget) OnKeyDown(handler KeyHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onKeyDown = handler
	return w
}

// HandleEvent processes an event during the given phase. The default
// implementation invokes the matching callback at the target and bubble
// phases. Return true to stop propagation.
func (w *Widget) HandleEvent(event Event, phase EventPhase) bool {
	if phase == PhaseCapture {
		return false
	}

	w.mu.RLock()
	onClick := w.onClick
	onMouseDown := w.onMouseDown
	onMouseUp := w.onMouseUp
	onMouseEnter := w.onMouseEnter
	onMouseLeave := w.onMouseLeave
	onKeyDown := w.onKeyDown
	w.mu.RUnlock()

	switch e := event.(type) {
	case *MouseEvent:
		switch e.eventType {
		case EventClick:
			if onClick != nil {
				onClick(e)
				return e.IsPropagationStopped()
			}
		case EventMouseDown:
			if onMouseDown != nil {
				onMouseDown(e)
				return e.IsPropagationStopped()
			}
		case EventMouseUp:
			if onMouseUp != nil {
				onMouseUp(e)
				return e.IsPropagationStopped()
			}
		case EventMouseEnter:
			if onMouseEnter != nil {
				onMouseEnter(e)
				return e.IsPropagationStopped()
			}
		case EventMouseLeave:
			if onMouseLeave != nil {
				onMouseLeave(e)
				return e.IsPropagationStopped()
			}
		}
	case *KeyEvent:
		if e.eventType == EventKeyDown && onKeyDown != nil {
			onKeyDown(e)
			return e.IsPropagationStopped()
		}
	}

	return false
}

// HitTest returns true if local coordinates hit this widget. The default
// hit-region is the widget's full rectangular bounds; the dispatcher has
// already performed the bounds check when this is called.
func (w *Widget) HitTest(localX, localY float32) bool {
	return true
}

// CanReceiveEvents returns true if this widget can receive events.
func (w *Widget) CanReceiveEvents() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}
