package ui

import "sync"

// EventType identifies the kind of event.
type EventType uint8

const (
	// Mouse events
	EventMouseEnter EventType = iota + 1
	EventMouseLeave
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventClick

	// Keyboard events
	EventKeyDown
	EventKeyUp
)

// EventPhase indicates when in the event propagation cycle we are.
type EventPhase uint8

const (
	// PhaseCapture - event travels from root down to target.
	// Parents can intercept before children see it.
	PhaseCapture EventPhase = iota

	// PhaseTarget - event is at the target widget.
	PhaseTarget

	// PhaseBubble - event travels from target up to root.
	// Normal handling phase - most handlers use this.
	PhaseBubble
)

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Event is the interface for all events.
type Event interface {
	// Type returns the event type.
	Type() EventType

	// Target returns the widget that was hit (for mouse) or focused (for keyboard).
	Target() *Widget

	// CurrentTarget returns the widget currently handling the event during propagation.
	CurrentTarget() *Widget

	// Phase returns the current propagation phase.
	Phase() EventPhase

	// StopPropagation prevents the event from continuing to propagate.
	StopPropagation()

	// IsPropagationStopped returns true if propagation was stopped.
	IsPropagationStopped() bool

	// PreventDefault prevents the default behavior (if any).
	PreventDefault()

	// IsDefaultPrevented returns true if default was prevented.
	IsDefaultPrevented() bool

	// internal methods for event dispatch
	setTarget(w *Widget)
	setCurrentTarget(w *Widget)
	setPhase(p EventPhase)
}

// eventBase provides common event functionality.
type eventBase struct {
	eventType          EventType
	target             *Widget
	currentTarget      *Widget
	phase              EventPhase
	propagationStopped bool
	defaultPrevented   bool
}

func (e *eventBase) Type() EventType            { return e.eventType }
func (e *eventBase) Target() *Widget            { return e.target }
func (e *eventBase) CurrentTarget() *Widget     { return e.currentTarget }
func (e *eventBase) Phase() EventPhase          { return e.phase }
func (e *eventBase) StopPropagation()           { e.propagationStopped = true }
func (e *eventBase) IsPropagationStopped() bool { return e.propagationStopped }
func (e *eventBase) PreventDefault()            { e.defaultPrevented = true }
func (e *eventBase) IsDefaultPrevented() bool   { return e.defaultPrevented }
func (e *eventBase) setTarget(w *Widget)        { e.target = w }
func (e *eventBase) setCurrentTarget(w *Widget) { e.currentTarget = w }
func (e *eventBase) setPhase(p EventPhase)      { e.phase = p }

// MouseEvent represents mouse interaction events.
type MouseEvent struct {
	eventBase

	// Window coordinates (relative to the window's top-left)
	X, Y float32

	// Local coordinates (relative to target widget's top-left)
	LocalX, LocalY float32

	// Which button triggered the event (for down/up/click)
	Button MouseButton

	// Modifier keys held during the event
	Modifiers Modifiers
}

// NewMouseEvent creates a mouse event. Uses an object pool since mouse
// move events fire at input rate.
func NewMouseEvent(eventType EventType, x, y float32, button MouseButton, mods Modifiers) *MouseEvent {
	e := mouseEventPool.Get().(*MouseEvent)
	e.eventType = eventType
	e.target = nil
	e.currentTarget = nil
	e.phase = PhaseTarget
	e.propagationStopped = false
	e.defaultPrevented = false
	e.X = x
	e.Y = y
	e.LocalX = x
	e.LocalY = y
	e.Button = button
	e.Modifiers = mods
	return e
}

// Release returns the event to the pool. Call when done processing.
func (e *MouseEvent) Release() {
	mouseEventPool.Put(e)
}

var mouseEventPool = sync.Pool{
	New: func() any {
		return &MouseEvent{}
	},
}

// KeyEvent represents keyboard events.
type KeyEvent struct {
	eventBase

	// Physical key code (platform-specific)
	KeyCode uint32

	// Logical key (e.g., 'a', 'Enter', 'Escape')
	Key string

	// Modifier keys held during the event
	Modifiers Modifiers
}

// NewKeyEvent creates a keyboard event.
func NewKeyEvent(eventType EventType, keyCode uint32, key string, mods Modifiers) *KeyEvent {
	e := keyEventPool.Get().(*KeyEvent)
	e.eventType = eventType
	e.target = nil
	e.currentTarget = nil
	e.phase = PhaseTarget
	e.propagationStopped = false
	e.defaultPrevented = false
	e.KeyCode = keyCode
	e.Key = key
	e.Modifiers = mods
	return e
}

// Release returns the event to the pool.
func (e *KeyEvent) Release() {
	keyEventPool.Put(e)
}

var keyEventPool = sync.Pool{
	New: func() any {
		return &KeyEvent{}
	},
}

// Responder is implemented by widgets (or custom components) that handle
// events. The interface enables composition - custom components can embed
// Widget and override event handling.
type Responder interface {
	// HandleEvent processes an event during the given phase.
	// Return true to stop propagation (event was consumed).
	HandleEvent(event Event, phase EventPhase) bool

	// HitTest returns true if this widget should receive events at the given
	// local coordinates. Override for custom hit shapes.
	// Default implementation checks rectangular bounds.
	HitTest(localX, localY float32) bool

	// CanReceiveEvents returns true if this widget can receive events.
	// Returns false for invisible widgets.
	CanReceiveEvents() bool
}

// Bounds represents the window-space bounding box of a widget.
// Updated during layout for efficient hit testing.
type Bounds struct {
	X, Y          float32 // Top-left corner in window coordinates
	Width, Height float32
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// LocalPoint converts window coordinates to local coordinates relative to bounds.
func (b Bounds) LocalPoint(windowX, windowY float32) (localX, localY float32) {
	return windowX - b.X, windowY - b.Y
}

// MouseHandler is a callback for mouse events.
type MouseHandler func(*MouseEvent)

// KeyHandler is a callback for keyboard events.
type KeyHandler func(*KeyEvent)
