package ui

// Two-pass layout: measure computes intrinsic sizes bottom-up, arrange
// assigns window-space bounds top-down. The result is a pure function of
// the tree's declared properties, cached on each widget for hit testing
// and rendering.

// measureTextFunc measures a single line of text. The host backend
// replaces this with real font metrics; the default is a deterministic
// heuristic so layout works without a renderer (and in tests).
var measureTextFunc = func(text string, fontSize float32) (width, height float32) {
	return fontSize * 0.55 * float32(len([]rune(text))), fontSize * 1.25
}

// SetMeasureTextFunc installs the text measurement function.
// Called by the rendering backend at startup.
func SetMeasureTextFunc(fn func(text string, fontSize float32) (width, height float32)) {
	if fn != nil {
		measureTextFunc = fn
	}
}

// Layout computes bounds for the whole tree within a window of the given
// size and clears pending layout flags.
func Layout(root *Widget, width, height float32) {
	if root == nil {
		return
	}
	arrange(root, 0, 0, width, height)
	clearLayoutDirty(root)
}

// layoutProps is a consistent snapshot of the fields layout reads.
type layoutProps struct {
	kind          WidgetKind
	positionMode  Position
	x, y          float32
	width, height float32
	widthMode     SizeMode
	heightMode    SizeMode
	padding       [4]float32
	gap           float32
	justify       JustifyContent
	align         AlignItems
	text          string
	fontSize      float32
	children      []*Widget
}

func (w *Widget) layoutProps() layoutProps {
	w.mu.RLock()
	defer w.mu.RUnlock()
	children := make([]*Widget, len(w.children))
	copy(children, w.children)
	return layoutProps{
		kind:         w.kind,
		positionMode: w.positionMode,
		x:            w.x,
		y:            w.y,
		width:        w.width,
		height:       w.height,
		widthMode:    w.widthMode,
		heightMode:   w.heightMode,
		padding:      w.padding,
		gap:          w.gap,
		justify:      w.justify,
		align:        w.align,
		text:         w.text,
		fontSize:     w.fontSize,
		children:     children,
	}
}

// measure returns the size the widget wants within the available space.
func measure(w *Widget, availW, availH float32) (width, height float32) {
	p := w.layoutProps()

	switch p.widthMode {
	case SizeFixed:
		width = p.width
	case SizeFull:
		width = availW
	}
	switch p.heightMode {
	case SizeFixed:
		height = p.height
	case SizeFull:
		height = availH
	}
	if p.widthMode != SizeAuto && p.heightMode != SizeAuto {
		return width, height
	}

	padX := p.padding[1] + p.padding[3]
	padY := p.padding[0] + p.padding[2]
	innerW := availW - padX
	innerH := availH - padY

	var contentW, contentH float32
	switch p.kind {
	case KindText, KindButton:
		contentW, contentH = measureTextFunc(p.text, p.fontSize)

	case KindVStack:
		n := 0
		for _, child := range p.children {
			cp := child.layoutProps()
			if cp.positionMode != PositionStatic {
				continue
			}
			cw, ch := measure(child, innerW, innerH)
			if cw > contentW {
				contentW = cw
			}
			contentH += ch
			n++
		}
		if n > 1 {
			contentH += p.gap * float32(n-1)
		}

	case KindHStack:
		n := 0
		for _, child := range p.children {
			cp := child.layoutProps()
			if cp.positionMode != PositionStatic {
				continue
			}
			cw, ch := measure(child, innerW, innerH)
			if ch > contentH {
				contentH = ch
			}
			contentW += cw
			n++
		}
		if n > 1 {
			contentW += p.gap * float32(n-1)
		}

	default: // Container, ZStack: largest child wins
		for _, child := range p.children {
			cp := child.layoutProps()
			if cp.positionMode != PositionStatic {
				continue
			}
			cw, ch := measure(child, innerW, innerH)
			if cw > contentW {
				contentW = cw
			}
			if ch > contentH {
				contentH = ch
			}
		}
	}

	if p.widthMode == SizeAuto {
		width = contentW + padX
	}
	if p.heightMode == SizeAuto {
		height = contentH + padY
	}
	return width, height
}

// arrange assigns bounds to the widget and lays out its children.
func arrange(w *Widget, x, y, width, height float32) {
	w.mu.Lock()
	w.computedBounds = Bounds{X: x, Y: y, Width: width, Height: height}
	w.mu.Unlock()

	p := w.layoutProps()
	if len(p.children) == 0 {
		return
	}

	innerX := x + p.padding[3]
	innerY := y + p.padding[0]
	innerW := width - p.padding[1] - p.padding[3]
	innerH := height - p.padding[0] - p.padding[2]

	switch p.kind {
	case KindVStack:
		arrangeStack(p, innerX, innerY, innerW, innerH, true)
	case KindHStack:
		arrangeStack(p, innerX, innerY, innerW, innerH, false)
	default:
		// Container and ZStack position each child independently
		// within the inner box, using justify (horizontal) and
		// align (vertical).
		for _, child := range p.children {
			cp := child.layoutProps()
			if cp.positionMode == PositionAbsolute {
				cw, ch := measure(child, innerW, innerH)
				arrange(child, x+cp.x, y+cp.y, cw, ch)
				continue
			}
			cw, ch := measure(child, innerW, innerH)
			if cp.heightMode != SizeFull && p.align == AlignStretch {
				ch = innerH
			}
			cx := innerX + mainOffset(p.justify, innerW, cw)
			cy := innerY + crossOffset(p.align, innerH, ch)
			arrange(child, cx, cy, cw, ch)
		}
	}

	// Absolute children of stacks
	if p.kind == KindVStack || p.kind == KindHStack {
		for _, child := range p.children {
			cp := child.layoutProps()
			if cp.positionMode != PositionAbsolute {
				continue
			}
			cw, ch := measure(child, innerW, innerH)
			arrange(child, x+cp.x, y+cp.y, cw, ch)
		}
	}
}

// arrangeStack lays out flow children along one axis. Children whose
// main-axis size mode is SizeFull share the space left over after fixed
// and auto children are placed.
func arrangeStack(p layoutProps, innerX, innerY, innerW, innerH float32, vertical bool) {
	type slot struct {
		child    *Widget
		main     float32 // main-axis size (resolved below for flexible)
		cross    float32 // cross-axis size
		flexible bool
	}

	mainAvail := innerW
	crossAvail := innerH
	if vertical {
		mainAvail = innerH
		crossAvail = innerW
	}

	var slots []slot
	var fixedTotal float32
	flexCount := 0
	for _, child := range p.children {
		cp := child.layoutProps()
		if cp.positionMode != PositionStatic {
			continue
		}
		mw, mh := measure(child, innerW, innerH)
		s := slot{child: child}
		if vertical {
			s.main, s.cross = mh, mw
			s.flexible = cp.heightMode == SizeFull
		} else {
			s.main, s.cross = mw, mh
			s.flexible = cp.widthMode == SizeFull
		}
		if s.flexible {
			flexCount++
		} else {
			fixedTotal += s.main
		}
		if crossFull(cp, vertical) || p.align == AlignStretch {
			s.cross = crossAvail
		}
		slots = append(slots, s)
	}
	if len(slots) == 0 {
		return
	}

	gaps := p.gap * float32(len(slots)-1)

	// Distribute leftover space to flexible children.
	if flexCount > 0 {
		remaining := mainAvail - fixedTotal - gaps
		if remaining < 0 {
			remaining = 0
		}
		each := remaining / float32(flexCount)
		for i := range slots {
			if slots[i].flexible {
				slots[i].main = each
			}
		}
	}

	var used float32
	for _, s := range slots {
		used += s.main
	}
	used += gaps
	free := mainAvail - used
	if free < 0 {
		free = 0
	}

	cursor := float32(0)
	spacing := p.gap
	switch p.justify {
	case JustifyCenter:
		cursor = free / 2
	case JustifyEnd:
		cursor = free
	case JustifyBetween:
		if len(slots) > 1 {
			spacing += free / float32(len(slots)-1)
		}
	}

	for _, s := range slots {
		cross := crossOffset(p.align, crossAvail, s.cross)
		if vertical {
			arrange(s.child, innerX+cross, innerY+cursor, s.cross, s.main)
		} else {
			arrange(s.child, innerX+cursor, innerY+cross, s.main, s.cross)
		}
		cursor += s.main + spacing
	}
}

func crossFull(cp layoutProps, vertical bool) bool {
	if vertical {
		return cp.widthMode == SizeFull
	}
	return cp.heightMode == SizeFull
}

func mainOffset(j JustifyContent, avail, size float32) float32 {
	switch j {
	case JustifyCenter:
		return (avail - size) / 2
	case JustifyEnd:
		return avail - size
	}
	return 0
}

func crossOffset(a AlignItems, avail, size float32) float32 {
	switch a {
	case AlignCenter:
		return (avail - size) / 2
	case AlignEnd:
		return avail - size
	}
	return 0
}

func clearLayoutDirty(w *Widget) {
	w.mu.Lock()
	w.layoutDirty = false
	children := make([]*Widget, len(w.children))
	copy(children, w.children)
	w.mu.Unlock()

	for _, child := range children {
		clearLayoutDirty(child)
	}
}
