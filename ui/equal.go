package ui

// Equal reports whether two widget trees declare the same structure and
// properties. Identifiers, parents, event handlers, and transient
// interaction state are ignored, so two independently built trees compare
// equal when their declarations match.
func Equal(a, b *Widget) bool {
	if a == nil || b == nil {
		return a == b
	}

	a.mu.RLock()
	b.mu.RLock()
	same := a.kind == b.kind &&
		a.positionMode == b.positionMode &&
		a.x == b.x && a.y == b.y &&
		a.width == b.width && a.height == b.height &&
		a.widthMode == b.widthMode && a.heightMode == b.heightMode &&
		a.padding == b.padding &&
		a.gap == b.gap &&
		a.justify == b.justify &&
		a.align == b.align &&
		colorPtrEqual(a.backgroundColor, b.backgroundColor) &&
		a.borderColor == b.borderColor &&
		a.borderWidth == b.borderWidth &&
		a.cornerRadius == b.cornerRadius &&
		a.shadowColor == b.shadowColor &&
		a.shadowOffsetY == b.shadowOffsetY &&
		a.shadowSpread == b.shadowSpread &&
		a.opacity == b.opacity &&
		a.visible == b.visible &&
		a.text == b.text &&
		a.textColor == b.textColor &&
		a.fontSize == b.fontSize &&
		len(a.children) == len(b.children)
	ac := make([]*Widget, len(a.children))
	copy(ac, a.children)
	bc := make([]*Widget, len(b.children))
	copy(bc, b.children)
	b.mu.RUnlock()
	a.mu.RUnlock()

	if !same {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

func colorPtrEqual(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
