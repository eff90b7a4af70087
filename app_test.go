package modal

import (
	"strings"
	"testing"

	"github.com/agiangrant/modal/windowing"
)

func TestRunFailsWithoutDisplays(t *testing.T) {
	app := New(DefaultTheme())

	err := app.run(nil)
	if err == nil {
		t.Fatal("expected an error with no displays")
	}
	if !strings.Contains(err.Error(), "no displays") {
		t.Errorf("error = %q, want mention of missing displays", err)
	}
}

func TestPlanPlacements(t *testing.T) {
	display := windowing.Display{Width: 1920, Height: 1080, Name: "Main"}

	backdrop, dialog := planPlacements(display, DefaultTheme())

	if backdrop != display.Bounds() {
		t.Errorf("backdrop = %+v, want full display %+v", backdrop, display.Bounds())
	}

	want := windowing.Rect{X: 730, Y: 450, Width: 460, Height: 180}
	if dialog != want {
		t.Errorf("dialog = %+v, want %+v", dialog, want)
	}
}

func TestPlanPlacementsFollowsThemeSize(t *testing.T) {
	display := windowing.Display{Width: 1920, Height: 1080}
	theme := DefaultTheme()
	theme.Dialog.Width = 600
	theme.Dialog.Height = 300

	_, dialog := planPlacements(display, theme)
	want := windowing.Rect{X: 660, Y: 390, Width: 600, Height: 300}
	if dialog != want {
		t.Errorf("dialog = %+v, want %+v", dialog, want)
	}
}

func TestPlanPlacementsSecondaryDisplayOrigin(t *testing.T) {
	display := windowing.Display{X: 1920, Y: 0, Width: 1000, Height: 800}

	backdrop, dialog := planPlacements(display, DefaultTheme())

	if backdrop.X != 1920 {
		t.Errorf("backdrop X = %d, want 1920", backdrop.X)
	}
	if dialog.X != 1920+(1000-460)/2 {
		t.Errorf("dialog X = %d, want %d", dialog.X, 1920+(1000-460)/2)
	}
}
