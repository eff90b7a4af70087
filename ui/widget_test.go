package ui

import "testing"

func TestWidgetCreation(t *testing.T) {
	tests := []struct {
		name     string
		widget   *Widget
		wantKind WidgetKind
	}{
		{
			name:     "VStack",
			widget:   VStack(),
			wantKind: KindVStack,
		},
		{
			name:     "HStack",
			widget:   HStack(),
			wantKind: KindHStack,
		},
		{
			name:     "Text",
			widget:   Text("Hello"),
			wantKind: KindText,
		},
		{
			name:     "Button",
			widget:   Button("Click"),
			wantKind: KindButton,
		},
		{
			name:     "Container",
			widget:   Container(),
			wantKind: KindContainer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.widget.Kind() != tt.wantKind {
				t.Errorf("widget.Kind() = %v, want %v", tt.widget.Kind(), tt.wantKind)
			}
		})
	}
}

func TestWidgetChildren(t *testing.T) {
	parent := VStack(
		Text("Child 1"),
		Text("Child 2"),
		Button("Click"),
	)

	children := parent.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}

	if children[0].Kind() != KindText {
		t.Error("first child should be Text widget")
	}
	if children[2].Kind() != KindButton {
		t.Error("third child should be Button widget")
	}
	if children[0].Parent() != parent {
		t.Error("child parent should point at the containing widget")
	}
}

func TestWidgetBuilderChaining(t *testing.T) {
	w := Container().
		WithSize(100, 50).
		WithBackground(ColorBlue500).
		WithCornerRadius(8).
		WithOpacity(0.5).
		WithPadding(4)

	if gotW, gotH := w.Size(); gotW != 100 || gotH != 50 {
		t.Errorf("Size() = (%v, %v), want (100, 50)", gotW, gotH)
	}
	if bg, ok := w.BackgroundColor(); !ok || bg != ColorBlue500 {
		t.Errorf("BackgroundColor() = (%#x, %v), want (%#x, true)", bg, ok, ColorBlue500)
	}
	if w.CornerRadius() != 8 {
		t.Errorf("CornerRadius() = %v, want 8", w.CornerRadius())
	}
	if w.Opacity() != 0.5 {
		t.Errorf("Opacity() = %v, want 0.5", w.Opacity())
	}
}

func TestCornerRadii(t *testing.T) {
	uniform := Container().WithCornerRadius(8)
	if got := uniform.CornerRadii(); got != [4]float32{8, 8, 8, 8} {
		t.Errorf("uniform radii = %v, want all 8", got)
	}

	strip := Container().WithCornerRadii(10, 10, 0, 0)
	if got := strip.CornerRadii(); got != [4]float32{10, 10, 0, 0} {
		t.Errorf("radii = %v, want rounded top and square bottom", got)
	}
	if strip.CornerRadius() != 10 {
		t.Errorf("CornerRadius() = %v, want top-left radius 10", strip.CornerRadius())
	}
}

func TestWidgetVisibility(t *testing.T) {
	w := Container()
	if !w.CanReceiveEvents() {
		t.Error("visible widget should receive events")
	}

	w.SetVisible(false)
	if w.CanReceiveEvents() {
		t.Error("hidden widget should not receive events")
	}
}

func TestWidgetIDsUnique(t *testing.T) {
	a := Container()
	b := Container()
	if a.ID() == b.ID() {
		t.Errorf("widget IDs should be unique, both got %d", a.ID())
	}
}

func TestMarkLayoutDirtyPropagates(t *testing.T) {
	child := Text("hi")
	root := VStack(child)
	Layout(root, 100, 100)

	if root.NeedsLayout() {
		t.Fatal("layout should be clean after Layout")
	}

	child.SetText("changed")
	if !root.NeedsLayout() {
		t.Error("text change should mark the root dirty")
	}
}

func TestEqualIgnoresHandlersAndIDs(t *testing.T) {
	build := func(handler MouseHandler) *Widget {
		return VStack(
			Text("Title").WithTextStyle(ColorGray900, 13),
			Button("OK").WithBackground(ColorBlue500).OnMouseUp(handler),
		).WithGap(8)
	}

	a := build(nil)
	b := build(func(*MouseEvent) {})
	if !Equal(a, b) {
		t.Error("trees with identical declarations should compare equal")
	}

	c := build(nil)
	c.Children()[1].SetText("Cancel")
	if Equal(a, c) {
		t.Error("trees with different text should not compare equal")
	}
}

func TestHexColors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{"opaque with hash", "#FF5500", 0xFF5500FF},
		{"opaque without hash", "FF5500", 0xFF5500FF},
		{"with alpha", "FF550080", 0xFF550080},
		{"lowercase", "#ff5500", 0xFF5500FF},
		{"invalid length", "#FF55", 0},
		{"invalid chars", "#GGGGGG", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(0x000000FF, 0.3)
	if got != 0x0000004D {
		t.Errorf("WithAlpha(black, 0.3) = %#x, want 0x0000004D", got)
	}

	if got := WithAlpha(0x112233FF, 2.0); got != 0x112233FF {
		t.Errorf("opacity above 1 should clamp, got %#x", got)
	}
	if got := WithAlpha(0x112233FF, -1); got != 0x11223300 {
		t.Errorf("opacity below 0 should clamp, got %#x", got)
	}
}
