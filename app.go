package modal

import (
	"fmt"

	"github.com/agiangrant/modal/ui"
	"github.com/agiangrant/modal/windowing"
)

// App wires the backdrop and dialog windows onto the primary display and
// runs the event loop until one of the dialog's handlers requests exit.
type App struct {
	theme Theme
}

// New creates an application with the given theme.
func New(theme Theme) *App {
	return &App{theme: theme}
}

// Run opens the windows and blocks until the application quits.
func (a *App) Run() error {
	return a.run(windowing.Displays())
}

// run is the display-injectable core of Run. Fails before any window is
// created when no display is available.
func (a *App) run(displays []windowing.Display) error {
	primary, err := windowing.Primary(displays)
	if err != nil {
		return fmt.Errorf("open dialog: %w", err)
	}

	backdropBounds, dialogBounds := planPlacements(primary, a.theme)

	host := windowing.NewHost(primary)

	// The backdrop opens first so the dialog stacks above it.
	_, err = host.OpenWindow(windowing.WindowOptions{
		Bounds:      backdropBounds,
		Kind:        windowing.KindPopup,
		Transparent: true,
		Root: func() *ui.Widget {
			return Backdrop{}.Render(a.theme)
		},
	})
	if err != nil {
		return fmt.Errorf("open backdrop: %w", err)
	}

	_, err = host.OpenWindow(windowing.WindowOptions{
		Title:       a.theme.Dialog.Title,
		Bounds:      dialogBounds,
		Kind:        windowing.KindPopup,
		Focused:     true,
		Transparent: true,
		Root: func() *ui.Widget {
			return DialogBox{}.Render(a.theme)
		},
	})
	if err != nil {
		return fmt.Errorf("open dialog: %w", err)
	}

	return host.Run()
}

// planPlacements computes window rectangles for a display: the backdrop
// covers it entirely, the dialog is centered within it.
func planPlacements(display windowing.Display, theme Theme) (backdrop, dialog windowing.Rect) {
	backdrop = display.Bounds()
	dialog = windowing.Rect{
		Width:  theme.Dialog.Width,
		Height: theme.Dialog.Height,
	}.CenteredIn(backdrop)
	return backdrop, dialog
}
