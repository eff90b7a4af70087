package modal

import "github.com/agiangrant/modal/ui"

// Backdrop dims the display behind the dialog. It holds no state; its
// appearance comes entirely from the theme.
type Backdrop struct{}

// Render builds the backdrop's widget tree: a single full-size tinted
// layer. Repeated calls with the same theme produce equivalent trees.
func (Backdrop) Render(t Theme) *ui.Widget {
	return ui.Container().
		WithFullSize().
		WithBackground(ui.WithAlpha(ui.Hex(t.Backdrop.Color), t.Backdrop.Opacity))
}
