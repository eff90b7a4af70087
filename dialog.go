package modal

import (
	"github.com/agiangrant/modal/ui"
	"github.com/agiangrant/modal/windowing"
)

// requestExit is what the dialog's handlers call to quit. A variable so
// tests can observe termination requests without a running host.
var requestExit = windowing.RequestExit

// DialogBox is the confirmation dialog. Like Backdrop it is stateless;
// every visual and textual property comes from the theme.
type DialogBox struct{}

// Render builds the dialog's widget tree. The tree is a pure function of
// the theme: a rounded panel with a macOS-style title bar, a message
// area, and OK/Cancel buttons. All three interactive elements request
// application exit.
func (DialogBox) Render(t Theme) *ui.Widget {
	d := t.Dialog
	textColor := ui.Hex(d.TextColor)

	panel := ui.VStack(
		titleBar(d, textColor),
		// Message area takes whatever height the title bar and button
		// row leave over.
		ui.Container(
			ui.Text(d.Message).WithTextStyle(textColor, 14),
		).
			WithFullWidth().
			WithFullHeight().
			WithPaddingXY(20, 12).
			WithAlign(ui.AlignCenter),
		buttonRow(d, textColor),
	).
		WithFullSize().
		WithBackground(ui.Hex(d.Background)).
		WithCornerRadius(d.CornerRadius).
		WithShadow(ui.WithAlpha(ui.ColorBlack, 0.35), 8, 6)

	return ui.Container(panel).
		WithFullSize().
		OnKeyDown(handleKey)
}

// titleBar builds the chrome strip: three traffic-light glyphs on the
// left, the title centered in the remaining space.
func titleBar(d DialogTheme, textColor uint32) *ui.Widget {
	return ui.HStack(
		glyph(ui.ColorRed500).OnMouseUp(func(e *ui.MouseEvent) {
			if e.Button == ui.MouseButtonLeft {
				handleDismiss(e)
			}
		}),
		glyph(ui.ColorYellow400),
		glyph(ui.ColorGreen500),
		ui.Container(
			ui.Text(d.Title).WithTextStyle(textColor, 13),
		).
			WithFullWidth().
			WithFullHeight().
			WithJustify(ui.JustifyCenter).
			WithAlign(ui.AlignCenter),
	).
		WithFullWidth().
		WithHeight(36).
		WithBackground(ui.Hex(d.TitleBar)).
		// Only the outer edge follows the panel's rounding; the strip's
		// bottom corners stay square against the panel body.
		WithCornerRadii(d.CornerRadius, d.CornerRadius, 0, 0).
		WithPaddingXY(12, 0).
		WithGap(8).
		WithAlign(ui.AlignCenter)
}

// glyph is one 12x12 title-bar circle. Corner radius of half the size
// renders a circle.
func glyph(color uint32) *ui.Widget {
	return ui.Container().
		WithSize(12, 12).
		WithBackground(color).
		WithCornerRadius(6)
}

func buttonRow(d DialogTheme, textColor uint32) *ui.Widget {
	return ui.HStack(
		button(d.CancelLabel, ui.ColorGray200, textColor, handleDismiss),
		button(d.OKLabel, ui.ColorBlue500, ui.ColorWhite, handleOK),
	).
		WithFullWidth().
		WithHeight(52).
		WithJustify(ui.JustifyEnd).
		WithAlign(ui.AlignCenter).
		WithGap(10).
		WithPaddingXY(16, 0)
}

func button(label string, bg, fg uint32, onRelease ui.MouseHandler) *ui.Widget {
	return ui.Button(label).
		WithTextStyle(fg, 13).
		WithBackground(bg).
		WithCornerRadius(6).
		WithPaddingXY(18, 6).
		OnMouseUp(func(e *ui.MouseEvent) {
			if e.Button == ui.MouseButtonLeft {
				onRelease(e)
			}
		})
}

// handleOK confirms the dialog. The demo app has nothing to confirm, so
// confirming and dismissing both quit.
func handleOK(*ui.MouseEvent) {
	requestExit()
}

// handleDismiss cancels the dialog.
func handleDismiss(*ui.MouseEvent) {
	requestExit()
}

// handleKey dismisses the dialog on Escape.
func handleKey(e *ui.KeyEvent) {
	if e.Key == "Escape" {
		requestExit()
	}
}
