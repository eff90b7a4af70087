package ui

import "testing"

// fixture builds a small tree laid out at 200x100:
// root > panel (50,25,100x50) > button (10,10,30x20 within panel).
func dispatchFixture() (root, panel, button *Widget) {
	button = Button("Go").WithFrame(10, 10, 30, 20)
	panel = Container(button).WithFrame(50, 25, 100, 50)
	root = Container(panel).WithFullSize()
	Layout(root, 200, 100)
	return root, panel, button
}

func TestHitTestFindsDeepestWidget(t *testing.T) {
	root, panel, button := dispatchFixture()
	d := NewDispatcher(root)

	tests := []struct {
		name string
		x, y float32
		want *Widget
	}{
		{"button interior", 65, 40, button},
		{"panel outside button", 130, 60, panel},
		{"root outside panel", 5, 5, root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.HitTest(tt.x, tt.y)
			if result == nil {
				t.Fatal("expected a hit")
			}
			if result.Widget != tt.want {
				t.Errorf("hit %v widget, want %v", result.Widget.Kind(), tt.want.Kind())
			}
		})
	}

	if got := d.HitTest(500, 500); got != nil {
		t.Errorf("point outside root should miss, hit %v", got.Widget.Kind())
	}
}

func TestHitTestLocalCoordinates(t *testing.T) {
	root, _, _ := dispatchFixture()
	d := NewDispatcher(root)

	result := d.HitTest(65, 40)
	if result == nil {
		t.Fatal("expected a hit")
	}
	if result.LocalX != 5 || result.LocalY != 5 {
		t.Errorf("local point = (%v, %v), want (5, 5)", result.LocalX, result.LocalY)
	}
}

func TestClickSynthesizedOnSameWidget(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)

	clicks := 0
	button.OnClick(func(*MouseEvent) { clicks++ })

	d.MouseDown(65, 40, MouseButtonLeft, 0)
	d.MouseUp(66, 41, MouseButtonLeft, 0)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestNoClickWhenReleasedElsewhere(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)

	clicks := 0
	button.OnClick(func(*MouseEvent) { clicks++ })

	d.MouseDown(65, 40, MouseButtonLeft, 0)
	d.MouseUp(5, 5, MouseButtonLeft, 0)

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 (released outside)", clicks)
	}
}

func TestNoMouseUpWhenReleasedOutsideWidget(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)

	ups := 0
	button.OnMouseUp(func(*MouseEvent) { ups++ })

	// Press on the button, release over the panel. The button's pressed
	// state clears but its release handler must not fire.
	d.MouseDown(65, 40, MouseButtonLeft, 0)
	d.MouseUp(130, 60, MouseButtonLeft, 0)

	if ups != 0 {
		t.Errorf("mouse up count = %d, want 0 for a release outside the hit-region", ups)
	}
	if button.IsPressed() {
		t.Error("button should not remain pressed after release elsewhere")
	}
}

func TestMouseUpDeliveredToWidgetUnderCursor(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)

	ups := 0
	button.OnMouseUp(func(e *MouseEvent) {
		if e.Button == MouseButtonLeft {
			ups++
		}
	})

	// Press started on the root, release lands on the button. The button
	// still sees the mouse up even though no click is synthesized.
	d.MouseDown(5, 5, MouseButtonLeft, 0)
	d.MouseUp(65, 40, MouseButtonLeft, 0)

	if ups != 1 {
		t.Errorf("mouse up count = %d, want 1", ups)
	}
}

func TestEventBubblesToParent(t *testing.T) {
	root, panel, button := dispatchFixture()
	d := NewDispatcher(root)

	var order []string
	button.OnMouseDown(func(*MouseEvent) { order = append(order, "button") })
	panel.OnMouseDown(func(*MouseEvent) { order = append(order, "panel") })

	d.MouseDown(65, 40, MouseButtonLeft, 0)

	if len(order) != 2 || order[0] != "button" || order[1] != "panel" {
		t.Errorf("dispatch order = %v, want [button panel]", order)
	}
}

func TestStopPropagationHaltsBubbling(t *testing.T) {
	root, panel, button := dispatchFixture()
	d := NewDispatcher(root)

	parentSaw := false
	button.OnMouseDown(func(e *MouseEvent) { e.StopPropagation() })
	panel.OnMouseDown(func(*MouseEvent) { parentSaw = true })

	d.MouseDown(65, 40, MouseButtonLeft, 0)

	if parentSaw {
		t.Error("parent should not see event after StopPropagation")
	}
}

func TestHoverEnterLeave(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)

	var events []string
	button.OnMouseEnter(func(*MouseEvent) { events = append(events, "enter") })
	button.OnMouseLeave(func(*MouseEvent) { events = append(events, "leave") })

	d.MouseMove(65, 40, 0)
	if !button.IsHovered() {
		t.Error("button should be hovered")
	}

	d.MouseMove(5, 5, 0)
	if button.IsHovered() {
		t.Error("button should no longer be hovered")
	}

	if len(events) != 2 || events[0] != "enter" || events[1] != "leave" {
		t.Errorf("hover events = %v, want [enter leave]", events)
	}
}

func TestHoverKeepsParentWhenMovingToChild(t *testing.T) {
	root, panel, _ := dispatchFixture()
	d := NewDispatcher(root)

	leaves := 0
	panel.OnMouseLeave(func(*MouseEvent) { leaves++ })

	d.MouseMove(130, 60, 0) // panel, outside button
	d.MouseMove(65, 40, 0)  // into button

	if leaves != 0 {
		t.Errorf("panel saw %d leave events moving into its child, want 0", leaves)
	}
	if !panel.IsHovered() {
		t.Error("panel should stay hovered while mouse is over its child")
	}
}

func TestKeyDownFallsBackToRoot(t *testing.T) {
	root, _, _ := dispatchFixture()
	d := NewDispatcher(root)

	var got string
	root.OnKeyDown(func(e *KeyEvent) { got = e.Key })

	d.KeyDown(27, "Escape", 0)

	if got != "Escape" {
		t.Errorf("root key handler saw %q, want %q", got, "Escape")
	}
}

func TestKeyDownBubblesFromFocused(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)
	d.Focus(button)

	rootSaw := false
	root.OnKeyDown(func(*KeyEvent) { rootSaw = true })

	d.KeyDown(27, "Escape", 0)

	if !rootSaw {
		t.Error("key event should bubble from focused widget to root")
	}
}

func TestPressedStateClearsOnRelease(t *testing.T) {
	root, _, button := dispatchFixture()
	d := NewDispatcher(root)

	d.MouseDown(65, 40, MouseButtonLeft, 0)
	if !button.IsPressed() {
		t.Error("button should be pressed after mouse down")
	}

	d.MouseUp(65, 40, MouseButtonLeft, 0)
	if button.IsPressed() {
		t.Error("button should not be pressed after mouse up")
	}
}

func TestInvisibleWidgetNotHit(t *testing.T) {
	root, _, button := dispatchFixture()
	button.SetVisible(false)
	d := NewDispatcher(root)

	result := d.HitTest(65, 40)
	if result == nil {
		t.Fatal("expected a hit on the panel")
	}
	if result.Widget == button {
		t.Error("invisible widget should not be hit")
	}
}
