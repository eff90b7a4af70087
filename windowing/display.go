// Package windowing manages displays and popup windows on top of Ebitengine.
//
// The host drives a single borderless surface covering the target display
// and composites windows onto it as z-ordered layers in creation order.
// Input is routed to the topmost window under the cursor; keyboard input
// goes to the focused window.
package windowing

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Display describes a connected monitor.
type Display struct {
	// Origin in the virtual desktop. The primary display is at (0, 0).
	X, Y int

	// Size in device-independent pixels.
	Width, Height int

	// Name is the OS-reported monitor name.
	Name string
}

// Bounds returns the display's rectangle in desktop coordinates.
func (d Display) Bounds() Rect {
	return Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// Displays returns all connected displays, primary first.
func Displays() []Display {
	monitors := ebiten.AppendMonitors(nil)
	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		w, h := m.Size()
		displays = append(displays, Display{
			Width:  w,
			Height: h,
			Name:   m.Name(),
		})
	}
	return displays
}

// Primary returns the primary display from the given list.
// Returns an error when no displays are connected.
func Primary(displays []Display) (Display, error) {
	if len(displays) == 0 {
		return Display{}, fmt.Errorf("no displays connected")
	}
	return displays[0], nil
}
