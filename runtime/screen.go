package runtime

import "github.com/odvcencio/porthole/backend"

// Screen owns the widget tree, the render buffer, and focus traversal.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	services      Services
	focusables    []Focusable
	focusIdx      int
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:    w,
		height:   h,
		buffer:   NewBuffer(w, h),
		focusIdx: -1,
	}
}

// SetServices configures app services for bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays-out the tree.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	if s.root != nil {
		s.root.Layout(Rect{0, 0, w, h})
	}
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// SetRoot swaps the root widget. Focus is restored to the widget with
// the same ID as the previously focused one, when present in the new tree.
func (s *Screen) SetRoot(root Widget) {
	prevID := s.FocusedID()

	if s.root != nil {
		s.blurCurrent()
		UnmountTree(s.root)
		UnbindTree(s.root)
	}
	s.root = root
	s.focusables = nil
	s.focusIdx = -1

	if root == nil {
		return
	}
	BindTree(root, s.services)
	root.Layout(Rect{0, 0, s.width, s.height})
	MountTree(root)
	s.rebuildFocusables()

	if prevID != "" && s.FocusByID(prevID) {
		return
	}
	s.FocusNext()
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// Render draws the widget tree into the buffer.
func (s *Screen) Render() {
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{
		Buffer:  s.buffer,
		Focused: true,
		Bounds:  Rect{0, 0, s.width, s.height},
	})
}

// HandleMessage dispatches a message to the widget tree and processes
// focus commands locally. Remaining commands are returned to the app.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	result := s.root.HandleMessage(msg)
	remaining := result.Commands[:0]
	for _, cmd := range result.Commands {
		switch cmd.(type) {
		case FocusNext:
			s.FocusNext()
		case FocusPrev:
			s.FocusPrev()
		default:
			remaining = append(remaining, cmd)
		}
	}
	result.Commands = remaining
	return result
}

// Focused returns the currently focused widget, if any.
func (s *Screen) Focused() Focusable {
	if s.focusIdx < 0 || s.focusIdx >= len(s.focusables) {
		return nil
	}
	return s.focusables[s.focusIdx]
}

// FocusedID returns the stable ID of the focused widget, or "".
func (s *Screen) FocusedID() string {
	if ident, ok := s.Focused().(Identifiable); ok {
		return ident.WidgetID()
	}
	return ""
}

// FocusByID moves focus to the widget with the given stable ID.
func (s *Screen) FocusByID(id string) bool {
	if id == "" {
		return false
	}
	for i, f := range s.focusables {
		ident, ok := f.(Identifiable)
		if !ok || ident.WidgetID() != id {
			continue
		}
		s.blurCurrent()
		s.focusIdx = i
		f.Focus()
		return true
	}
	return false
}

// FocusNext moves focus to the next focusable widget.
func (s *Screen) FocusNext() {
	s.moveFocus(1)
}

// FocusPrev moves focus to the previous focusable widget.
func (s *Screen) FocusPrev() {
	s.moveFocus(-1)
}

func (s *Screen) moveFocus(delta int) {
	n := len(s.focusables)
	if n == 0 {
		return
	}
	s.blurCurrent()
	if s.focusIdx < 0 {
		if delta >= 0 {
			s.focusIdx = 0
		} else {
			s.focusIdx = n - 1
		}
	} else {
		s.focusIdx = ((s.focusIdx+delta)%n + n) % n
	}
	s.focusables[s.focusIdx].Focus()
}

func (s *Screen) blurCurrent() {
	if current := s.Focused(); current != nil {
		current.Blur()
	}
}

func (s *Screen) rebuildFocusables() {
	s.focusables = s.focusables[:0]
	walkTree(s.root, func(w Widget) {
		if f, ok := w.(Focusable); ok && f.CanFocus() {
			s.focusables = append(s.focusables, f)
		}
	}, nil)
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Focused bool // Is the containing tree focused?
	Bounds  Rect // Widget's allocated bounds
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Buffer:  ctx.Buffer,
		Focused: ctx.Focused,
		Bounds:  bounds,
	}
}

// Clear fills the context bounds with spaces using the provided style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(ctx.Bounds, ' ', style)
}

// SubBuffer returns a buffer view clipped to the context bounds.
func (ctx RenderContext) SubBuffer() *SubBuffer {
	return ctx.Buffer.Sub(ctx.Bounds)
}
