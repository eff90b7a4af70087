package ui

// ============================================================================
// Event Dispatcher
// ============================================================================

// Dispatcher routes raw input to the widget tree. It performs hit testing
// against cached layout bounds, tracks hover and pressed state, synthesizes
// click events, and propagates events through capture, target, and bubble
// phases.
type Dispatcher struct {
	root *Widget

	hoveredWidget *Widget   // Deepest widget currently under the mouse
	hoveredChain  []*Widget // All widgets in hover chain (root to deepest)
	pressedWidget *Widget   // Widget where mouse down occurred
	pressedChain  []*Widget
	pressedButton MouseButton
	focusedWidget *Widget
}

// NewDispatcher creates a dispatcher for the given tree.
func NewDispatcher(root *Widget) *Dispatcher {
	return &Dispatcher{root: root}
}

// SetRoot replaces the tree the dispatcher routes into, clearing all
// interaction state.
func (d *Dispatcher) SetRoot(root *Widget) {
	d.root = root
	d.hoveredWidget = nil
	d.hoveredChain = nil
	d.pressedWidget = nil
	d.pressedChain = nil
	d.pressedButton = MouseButtonNone
	d.focusedWidget = nil
}

// ============================================================================
// Hit Testing
// ============================================================================

// HitTestResult contains the result of a hit test.
type HitTestResult struct {
	Widget *Widget
	LocalX float32
	LocalY float32
	// Chain is the path from root to target (for event propagation)
	Chain []*Widget
}

// HitTest finds the topmost widget at the given window coordinates.
// Returns nil if no widget is at that position.
func (d *Dispatcher) HitTest(x, y float32) *HitTestResult {
	if d.root == nil {
		return nil
	}

	chain := make([]*Widget, 0, 8)
	target := d.hitTestRecursive(d.root, x, y, &chain)
	if target == nil {
		return nil
	}

	bounds := target.ComputedBounds()
	localX, localY := bounds.LocalPoint(x, y)
	return &HitTestResult{
		Widget: target,
		LocalX: localX,
		LocalY: localY,
		Chain:  chain,
	}
}

// hitTestRecursive walks the tree to find the topmost widget at the point.
// Appends widgets to the chain as it descends.
func (d *Dispatcher) hitTestRecursive(w *Widget, x, y float32, chain *[]*Widget) *Widget {
	if !w.CanReceiveEvents() {
		return nil
	}

	bounds := w.ComputedBounds()
	if !bounds.Contains(x, y) {
		return nil
	}

	// Custom hit test hook (non-rectangular shapes)
	localX, localY := bounds.LocalPoint(x, y)
	if !w.HitTest(localX, localY) {
		return nil
	}

	*chain = append(*chain, w)

	// Check children in reverse order (last child is drawn on top)
	children := w.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if target := d.hitTestRecursive(children[i], x, y, chain); target != nil {
			return target
		}
	}

	return w
}

// ============================================================================
// Mouse Event Dispatch
// ============================================================================

// MouseMove handles mouse movement and hover state.
// Returns true if hover state changed and a redraw is needed.
func (d *Dispatcher) MouseMove(x, y float32, mods Modifiers) bool {
	result := d.HitTest(x, y)
	var newHovered *Widget
	var newChain []*Widget
	if result != nil {
		newHovered = result.Widget
		newChain = result.Chain
	}

	changed := false
	if !chainsEqual(d.hoveredChain, newChain) {
		d.updateHoverState(newHovered, x, y, mods, newChain)
		changed = true
	}

	if newHovered != nil {
		e := NewMouseEvent(EventMouseMove, x, y, MouseButtonNone, mods)
		e.LocalX = result.LocalX
		e.LocalY = result.LocalY
		d.dispatchToWidget(newHovered, e, result.Chain)
		e.Release()
	}

	return changed
}

// MouseDown handles mouse button press.
func (d *Dispatcher) MouseDown(x, y float32, button MouseButton, mods Modifiers) {
	result := d.HitTest(x, y)
	if result == nil {
		if d.focusedWidget != nil {
			d.focusedWidget = nil
		}
		return
	}

	target := result.Widget

	// Pressed state is set on the entire chain, like hover
	d.pressedWidget = target
	d.pressedChain = result.Chain
	d.pressedButton = button
	for _, w := range result.Chain {
		w.setPressed(true)
	}

	d.focusedWidget = target

	e := NewMouseEvent(EventMouseDown, x, y, button, mods)
	e.LocalX = result.LocalX
	e.LocalY = result.LocalY
	d.dispatchToWidget(target, e, result.Chain)
	e.Release()
}

// MouseUp handles mouse button release. If the release lands on the same
// widget where the press started, a click event is synthesized.
func (d *Dispatcher) MouseUp(x, y float32, button MouseButton, mods Modifiers) {
	result := d.HitTest(x, y)
	var target *Widget
	var localX, localY float32
	var chain []*Widget
	if result != nil {
		target = result.Widget
		localX = result.LocalX
		localY = result.LocalY
		chain = result.Chain
	}

	if target != nil {
		e := NewMouseEvent(EventMouseUp, x, y, button, mods)
		e.LocalX = localX
		e.LocalY = localY
		d.dispatchToWidget(target, e, chain)
		e.Release()
	}

	if d.pressedWidget != nil {
		// A release outside the pressed widget only clears its pressed
		// state; mouse-up handlers fire solely through the hit-region
		// dispatch above.
		for _, w := range d.pressedChain {
			w.setPressed(false)
		}

		if target == d.pressedWidget && button == d.pressedButton {
			e := NewMouseEvent(EventClick, x, y, button, mods)
			e.LocalX = localX
			e.LocalY = localY
			d.dispatchToWidget(target, e, chain)
			e.Release()
		}

		d.pressedWidget = nil
		d.pressedChain = nil
		d.pressedButton = MouseButtonNone
	}
}

// ============================================================================
// Keyboard Event Dispatch
// ============================================================================

// KeyDown routes a key press to the focused widget, falling back to the
// tree root so window-level shortcuts work without an explicit focus.
func (d *Dispatcher) KeyDown(keyCode uint32, key string, mods Modifiers) {
	target := d.focusedWidget
	if target == nil {
		target = d.root
	}
	if target == nil {
		return
	}

	e := NewKeyEvent(EventKeyDown, keyCode, key, mods)
	d.dispatchKeyEvent(target, e)
	e.Release()
}

// KeyUp routes a key release to the focused widget or the root.
func (d *Dispatcher) KeyUp(keyCode uint32, key string, mods Modifiers) {
	target := d.focusedWidget
	if target == nil {
		target = d.root
	}
	if target == nil {
		return
	}

	e := NewKeyEvent(EventKeyUp, keyCode, key, mods)
	d.dispatchKeyEvent(target, e)
	e.Release()
}

func (d *Dispatcher) dispatchKeyEvent(target *Widget, e *KeyEvent) {
	chain := buildChainToRoot(target)

	e.setTarget(target)

	// Capture phase (root to target)
	for i := 0; i < len(chain)-1; i++ {
		e.setPhase(PhaseCapture)
		e.setCurrentTarget(chain[i])
		if chain[i].HandleEvent(e, PhaseCapture) || e.IsPropagationStopped() {
			return
		}
	}

	// Target phase
	e.setPhase(PhaseTarget)
	e.setCurrentTarget(target)
	if target.HandleEvent(e, PhaseTarget) || e.IsPropagationStopped() {
		return
	}

	// Bubble phase (target to root)
	for i := len(chain) - 2; i >= 0; i-- {
		e.setPhase(PhaseBubble)
		e.setCurrentTarget(chain[i])
		if chain[i].HandleEvent(e, PhaseBubble) || e.IsPropagationStopped() {
			return
		}
	}
}

// ============================================================================
// Focus and Hover State
// ============================================================================

// Focus gives a widget keyboard focus.
func (d *Dispatcher) Focus(w *Widget) {
	d.focusedWidget = w
}

// FocusedWidget returns the widget with keyboard focus, or nil.
func (d *Dispatcher) FocusedWidget() *Widget {
	return d.focusedWidget
}

// HoveredWidget returns the deepest widget under the mouse, or nil.
func (d *Dispatcher) HoveredWidget() *Widget {
	return d.hoveredWidget
}

// updateHoverState dispatches leave/enter events for the chain delta so
// parents stay hovered while the mouse moves between their children.
func (d *Dispatcher) updateHoverState(newHovered *Widget, x, y float32, mods Modifiers, newChain []*Widget) {
	oldChain := d.hoveredChain

	oldSet := make(map[*Widget]bool, len(oldChain))
	for _, w := range oldChain {
		oldSet[w] = true
	}
	newSet := make(map[*Widget]bool, len(newChain))
	for _, w := range newChain {
		newSet[w] = true
	}

	// Leave events deepest-first
	for i := len(oldChain) - 1; i >= 0; i-- {
		w := oldChain[i]
		if newSet[w] {
			continue
		}
		w.setHovered(false)

		bounds := w.ComputedBounds()
		localX, localY := bounds.LocalPoint(x, y)
		e := NewMouseEvent(EventMouseLeave, x, y, MouseButtonNone, mods)
		e.LocalX = localX
		e.LocalY = localY
		e.setTarget(w)
		e.setCurrentTarget(w)
		w.HandleEvent(e, PhaseBubble)
		e.Release()
	}

	// Enter events root-first
	for _, w := range newChain {
		if oldSet[w] {
			continue
		}
		w.setHovered(true)

		bounds := w.ComputedBounds()
		localX, localY := bounds.LocalPoint(x, y)
		e := NewMouseEvent(EventMouseEnter, x, y, MouseButtonNone, mods)
		e.LocalX = localX
		e.LocalY = localY
		e.setTarget(w)
		e.setCurrentTarget(w)
		w.HandleEvent(e, PhaseBubble)
		e.Release()
	}

	d.hoveredWidget = newHovered
	d.hoveredChain = newChain
}

// ============================================================================
// Dispatch Helpers
// ============================================================================

// dispatchToWidget runs the full capture/target/bubble cycle along the chain.
func (d *Dispatcher) dispatchToWidget(target *Widget, e Event, chain []*Widget) {
	if target == nil {
		return
	}

	e.setTarget(target)

	// Capture phase (from root towards target)
	for i := 0; i < len(chain)-1; i++ {
		e.setPhase(PhaseCapture)
		e.setCurrentTarget(chain[i])
		if chain[i].HandleEvent(e, PhaseCapture) || e.IsPropagationStopped() {
			return
		}
	}

	// Target phase
	e.setPhase(PhaseTarget)
	e.setCurrentTarget(target)
	if target.HandleEvent(e, PhaseTarget) || e.IsPropagationStopped() {
		return
	}

	// Bubble phase (from target towards root)
	for i := len(chain) - 2; i >= 0; i-- {
		e.setPhase(PhaseBubble)
		e.setCurrentTarget(chain[i])
		if chain[i].HandleEvent(e, PhaseBubble) || e.IsPropagationStopped() {
			return
		}
	}
}

// buildChainToRoot builds a slice from root to the given widget.
func buildChainToRoot(w *Widget) []*Widget {
	var reversed []*Widget
	for current := w; current != nil; current = current.Parent() {
		reversed = append(reversed, current)
	}
	chain := make([]*Widget, len(reversed))
	for i, c := range reversed {
		chain[len(reversed)-1-i] = c
	}
	return chain
}

func chainsEqual(a, b []*Widget) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
