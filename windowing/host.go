package windowing

import (
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/agiangrant/modal/ui"
)

// exitRequested is process-wide: any handler may ask the application to
// quit, and repeated requests are no-ops.
var exitRequested atomic.Bool

// RequestExit asks the running host to terminate its event loop. Safe to
// call from any goroutine and idempotent.
func RequestExit() {
	exitRequested.Store(true)
}

// ExitRequested reports whether termination has been requested.
func ExitRequested() bool {
	return exitRequested.Load()
}

// resetExit clears the termination flag. Used by tests.
func resetExit() {
	exitRequested.Store(false)
}

// Host owns the Ebitengine surface for one display and composites windows
// onto it. Implements ebiten.Game.
type Host struct {
	display  Display
	windows  []*Window
	surfaces map[*Window]*ebiten.Image
	started  bool
}

// NewHost creates a host for the given display.
func NewHost(display Display) *Host {
	return &Host{
		display:  display,
		surfaces: make(map[*Window]*ebiten.Image),
	}
}

// OpenWindow creates a window and adds it above all existing windows.
// Windows must be opened before Run is called.
func (h *Host) OpenWindow(opts WindowOptions) (*Window, error) {
	if h.started {
		return nil, fmt.Errorf("open window %q: host already running", opts.Title)
	}
	if opts.Root == nil {
		return nil, fmt.Errorf("open window %q: no root builder", opts.Title)
	}
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		return nil, fmt.Errorf("open window %q: invalid bounds %dx%d",
			opts.Title, opts.Bounds.Width, opts.Bounds.Height)
	}

	w := newWindow(opts)
	if w.focused {
		// Only one window holds keyboard focus at a time.
		for _, other := range h.windows {
			other.focused = false
		}
	}
	h.windows = append(h.windows, w)
	return w, nil
}

// Windows returns the host's windows in stacking order, bottom first.
func (h *Host) Windows() []*Window {
	out := make([]*Window, len(h.windows))
	copy(out, h.windows)
	return out
}

// Run drives the event loop until a handler requests exit. The host
// surface is borderless, always-on-top, and transparent, sized to cover
// the display.
func (h *Host) Run() error {
	h.started = true

	title := ""
	anyFocused := false
	for _, w := range h.windows {
		if w.opts.Title != "" && title == "" {
			title = w.opts.Title
		}
		if w.focused {
			anyFocused = true
		}
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowPosition(h.display.X, h.display.Y)
	ebiten.SetWindowSize(h.display.Width, h.display.Height)

	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     !anyFocused,
	}
	if err := ebiten.RunGameWithOptions(h, opts); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}
	return nil
}

// Update implements ebiten.Game. Polls input and routes it to windows.
func (h *Host) Update() error {
	if ExitRequested() {
		return ebiten.Termination
	}

	for _, w := range h.windows {
		w.layoutIfNeeded()
	}

	mods := currentModifiers()

	// Cursor position is surface-local; the surface origin coincides with
	// the display origin, so desktop coordinates are a fixed offset.
	cx, cy := ebiten.CursorPosition()
	dx := cx + h.display.X
	dy := cy + h.display.Y

	target := h.windowAt(dx, dy)
	if target != nil {
		lx := float32(dx - target.bounds.X)
		ly := float32(dy - target.bounds.Y)

		target.dispatcher.MouseMove(lx, ly, mods)
		for _, b := range mouseButtons {
			if inpututil.IsMouseButtonJustPressed(b.ebiten) {
				target.dispatcher.MouseDown(lx, ly, b.ui, mods)
			}
			if inpututil.IsMouseButtonJustReleased(b.ebiten) {
				target.dispatcher.MouseUp(lx, ly, b.ui, mods)
			}
		}
	}

	if focused := h.focusedWindow(); focused != nil {
		for _, k := range inpututil.AppendJustPressedKeys(nil) {
			focused.dispatcher.KeyDown(uint32(k), keyName(k), mods)
		}
		for _, k := range inpututil.AppendJustReleasedKeys(nil) {
			focused.dispatcher.KeyUp(uint32(k), keyName(k), mods)
		}
	}

	return nil
}

// Draw implements ebiten.Game. Windows draw bottom-up in creation order.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Clear()
	for _, w := range h.windows {
		surface := h.surfaceFor(w)
		surface.Clear()
		drawWidget(surface, w.root)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(w.bounds.X-h.display.X),
			float64(w.bounds.Y-h.display.Y),
		)
		screen.DrawImage(surface, op)
	}
}

// Layout implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.display.Width, h.display.Height
}

// windowAt returns the topmost window containing the desktop point.
func (h *Host) windowAt(x, y int) *Window {
	for i := len(h.windows) - 1; i >= 0; i-- {
		if h.windows[i].bounds.Contains(x, y) {
			return h.windows[i]
		}
	}
	return nil
}

func (h *Host) focusedWindow() *Window {
	for i := len(h.windows) - 1; i >= 0; i-- {
		if h.windows[i].focused {
			return h.windows[i]
		}
	}
	return nil
}

func (h *Host) surfaceFor(w *Window) *ebiten.Image {
	if s, ok := h.surfaces[w]; ok {
		return s
	}
	s := ebiten.NewImage(w.bounds.Width, w.bounds.Height)
	h.surfaces[w] = s
	return s
}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	ui     ui.MouseButton
}{
	{ebiten.MouseButtonLeft, ui.MouseButtonLeft},
	{ebiten.MouseButtonRight, ui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, ui.MouseButtonMiddle},
}

func currentModifiers() ui.Modifiers {
	var mods ui.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ui.ModSuper
	}
	return mods
}

// keyName maps an Ebitengine key to the logical name handlers match on.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyEscape:
		return "Escape"
	case ebiten.KeyEnter:
		return "Enter"
	case ebiten.KeySpace:
		return "Space"
	case ebiten.KeyTab:
		return "Tab"
	case ebiten.KeyBackspace:
		return "Backspace"
	}
	return k.String()
}
