package ui

// Builder helpers for common widget patterns.
// These provide a fluent API for constructing UI trees.

// Container creates a generic container widget.
func Container(children ...*Widget) *Widget {
	w := NewWidget(KindContainer)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// VStack creates a vertical stack container.
// Children are laid out top-to-bottom.
func VStack(children ...*Widget) *Widget {
	w := NewWidget(KindVStack)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// HStack creates a horizontal stack container.
// Children are laid out left-to-right.
func HStack(children ...*Widget) *Widget {
	w := NewWidget(KindHStack)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// ZStack creates a depth stack container.
// Children are layered on top of each other, later children on top.
func ZStack(children ...*Widget) *Widget {
	w := NewWidget(KindZStack)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// Text creates a text widget.
func Text(text string) *Widget {
	w := NewWidget(KindText)
	w.SetText(text)
	return w
}

// Button creates a button widget.
func Button(text string) *Widget {
	w := NewWidget(KindButton)
	w.SetText(text)
	return w
}

// With returns the widget for chaining.
func (w *Widget) With(fn func(*Widget)) *Widget {
	fn(w)
	return w
}

// WithChildren adds children to the widget.
func (w *Widget) WithChildren(children ...*Widget) *Widget {
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// WithFrame sets position and size.
func (w *Widget) WithFrame(x, y, width, height float32) *Widget {
	return w.SetFrame(x, y, width, height)
}

// WithSize sets width and height.
func (w *Widget) WithSize(width, height float32) *Widget {
	return w.SetSize(width, height)
}

// WithWidth sets a fixed width.
func (w *Widget) WithWidth(width float32) *Widget {
	return w.SetWidth(width)
}

// WithHeight sets a fixed height.
func (w *Widget) WithHeight(height float32) *Widget {
	return w.SetHeight(height)
}

// WithFullSize makes the widget fill its parent.
func (w *Widget) WithFullSize() *Widget {
	return w.SetFullSize()
}

// WithFullWidth makes the widget fill its parent horizontally.
func (w *Widget) WithFullWidth() *Widget {
	return w.SetFullWidth()
}

// WithFullHeight makes the widget fill its parent vertically.
func (w *Widget) WithFullHeight() *Widget {
	return w.SetFullHeight()
}

// WithPosition sets x and y.
func (w *Widget) WithPosition(x, y float32) *Widget {
	return w.SetPosition(x, y)
}

// WithPositionMode sets how the widget is positioned.
func (w *Widget) WithPositionMode(pos Position) *Widget {
	return w.SetPositionMode(pos)
}

// WithBackground sets the background color.
func (w *Widget) WithBackground(color uint32) *Widget {
	return w.SetBackgroundColor(color)
}

// WithBorder sets border width and color.
func (w *Widget) WithBorder(width float32, color uint32) *Widget {
	return w.SetBorder(width, color)
}

// WithCornerRadius sets uniform corner radius.
func (w *Widget) WithCornerRadius(radius float32) *Widget {
	return w.SetCornerRadius(radius)
}

// WithCornerRadii sets each corner radius, clockwise from top-left.
func (w *Widget) WithCornerRadii(topLeft, topRight, bottomRight, bottomLeft float32) *Widget {
	return w.SetCornerRadii(topLeft, topRight, bottomRight, bottomLeft)
}

// WithShadow sets a drop shadow.
func (w *Widget) WithShadow(color uint32, offsetY, spread float32) *Widget {
	return w.SetShadow(color, offsetY, spread)
}

// WithOpacity sets opacity (0.0 to 1.0).
func (w *Widget) WithOpacity(opacity float32) *Widget {
	return w.SetOpacity(opacity)
}

// WithText sets text content.
func (w *Widget) WithText(text string) *Widget {
	return w.SetText(text)
}

// WithTextStyle sets text color and size.
func (w *Widget) WithTextStyle(color uint32, size float32) *Widget {
	w.SetTextColor(color)
	w.SetFontSize(size)
	return w
}

// WithPadding sets uniform padding on all sides.
func (w *Widget) WithPadding(padding float32) *Widget {
	return w.SetPaddingAll(padding, padding, padding, padding)
}

// WithPaddingXY sets horizontal and vertical padding.
func (w *Widget) WithPaddingXY(horizontal, vertical float32) *Widget {
	return w.SetPaddingAll(vertical, horizontal, vertical, horizontal)
}

// WithGap sets the spacing between children.
func (w *Widget) WithGap(gap float32) *Widget {
	return w.SetGap(gap)
}

// WithJustify sets main-axis alignment of children.
func (w *Widget) WithJustify(j JustifyContent) *Widget {
	return w.SetJustify(j)
}

// WithAlign sets cross-axis alignment of children.
func (w *Widget) WithAlign(a AlignItems) *Widget {
	return w.SetAlign(a)
}

// WithData sets custom application data.
func (w *Widget) WithData(data any) *Widget {
	return w.SetData(data)
}
