package widgets

import (
	"image"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
	"github.com/odvcencio/porthole/window"
)

// ScrollPolicy configures when scrollbars appear.
type ScrollPolicy int

const (
	// ScrollAuto shows a scrollbar only when content overflows.
	ScrollAuto ScrollPolicy = iota
	// ScrollAlways shows the scrollbar unconditionally.
	ScrollAlways
	// ScrollNever hides the scrollbar.
	ScrollNever
)

// ScrollView scrolls arbitrary widget content in both axes. Content is
// rendered at full size into an offscreen buffer and the visible
// window blitted through. For large lists prefer VirtualList, which
// never materializes offscreen items.
type ScrollView struct {
	Component
	content  runtime.Widget
	viewport *window.Viewport
	tracker  *window.Tracker
	glide    *window.Glide
	childBuf *runtime.Buffer

	vertical   ScrollPolicy
	horizontal ScrollPolicy
	wheelStep  int
	smooth     bool

	style      backend.Style
	trackStyle backend.Style
	thumbStyle backend.Style

	dragging bool
	dragGrab int
}

// NewScrollView creates a scroll view for content.
func NewScrollView(content runtime.Widget) *ScrollView {
	s := &ScrollView{
		content:    content,
		viewport:   window.NewViewport(),
		glide:      window.NewGlide(),
		vertical:   ScrollAuto,
		horizontal: ScrollAuto,
		wheelStep:  3,
		style:      backend.DefaultStyle(),
		trackStyle: backend.DefaultStyle(),
		thumbStyle: backend.DefaultStyle().Reverse(true),
	}
	s.tracker = window.NewTracker(func(window.Phase) {
		s.Invalidate()
	})
	s.viewport.SetOnChange(func(image.Point) {
		s.tracker.Touch()
		s.Invalidate()
	})
	return s
}

// CanFocus returns true.
func (s *ScrollView) CanFocus() bool {
	return true
}

// SetContent replaces the scrolled widget.
func (s *ScrollView) SetContent(content runtime.Widget) {
	if s == nil {
		return
	}
	s.content = content
}

// SetPolicies configures the vertical and horizontal scrollbars.
func (s *ScrollView) SetPolicies(vertical, horizontal ScrollPolicy) {
	if s == nil {
		return
	}
	s.vertical = vertical
	s.horizontal = horizontal
}

// SetSmoothScroll enables momentum on wheel input.
func (s *ScrollView) SetSmoothScroll(enabled bool) {
	if s == nil {
		return
	}
	s.smooth = enabled
}

// Viewport exposes the scroll viewport for programmatic control.
func (s *ScrollView) Viewport() *window.Viewport {
	if s == nil {
		return nil
	}
	return s.viewport
}

// Tracker returns the scroll phase tracker.
func (s *ScrollView) Tracker() *window.Tracker {
	if s == nil {
		return nil
	}
	return s.tracker
}

// ChildWidgets returns the content widget.
func (s *ScrollView) ChildWidgets() []runtime.Widget {
	if s == nil || s.content == nil {
		return nil
	}
	return []runtime.Widget{s.content}
}

// Measure sizes the view to fill its constraints. Content is measured
// during Layout, once the view's own extent is known.
func (s *ScrollView) Measure(constraints runtime.Constraints) runtime.Size {
	if s == nil {
		return constraints.MinSize()
	}
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
}

// Layout measures the content's full extent and positions it at that size.
func (s *ScrollView) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	s.viewport.SetViewSize(bounds.Width, bounds.Height)
	if s.content == nil {
		return
	}
	size := s.measureContent(bounds)
	s.viewport.SetContentSize(size.Width, size.Height)
	s.content.Layout(runtime.Rect{Width: size.Width, Height: size.Height})
}

// measureContent asks the content for its unconstrained size. Greedy
// widgets that expand to whatever maximum they are given echo the
// unbounded limit back; those are pinned to the view's extent so the
// offscreen buffer stays allocatable.
func (s *ScrollView) measureContent(bounds runtime.Rect) runtime.Size {
	cc := runtime.Unbounded()
	size := s.content.Measure(cc)
	if size.Width >= cc.MaxWidth {
		size.Width = bounds.Width
	}
	if size.Height >= cc.MaxHeight {
		size.Height = bounds.Height
	}
	if size.Width <= 0 {
		size.Width = bounds.Width
	}
	if size.Height <= 0 {
		size.Height = bounds.Height
	}
	return size
}

// Render blits the visible window of the content buffer.
func (s *ScrollView) Render(ctx runtime.RenderContext) {
	if s == nil {
		return
	}
	bounds := s.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(bounds, ' ', s.style)
	if s.content == nil {
		return
	}
	cw, ch := s.viewport.ContentSize()
	if cw <= 0 || ch <= 0 {
		return
	}
	if s.childBuf == nil {
		s.childBuf = runtime.NewBuffer(cw, ch)
	} else {
		s.childBuf.Resize(cw, ch)
	}
	s.childBuf.Clear()
	s.content.Render(runtime.RenderContext{
		Buffer:  s.childBuf,
		Focused: ctx.Focused,
		Bounds:  runtime.Rect{Width: cw, Height: ch},
	})

	offset := s.viewport.Offset()
	for y := 0; y < bounds.Height; y++ {
		srcY := y + offset.Y
		if srcY < 0 || srcY >= ch {
			continue
		}
		for x := 0; x < bounds.Width; x++ {
			srcX := x + offset.X
			if srcX < 0 || srcX >= cw {
				continue
			}
			cell := s.childBuf.Get(srcX, srcY)
			ctx.Buffer.Set(bounds.X+x, bounds.Y+y, cell.Rune, cell.Style)
		}
	}
	s.drawScrollbars(ctx)
}

// HandleMessage handles scrolling input. Content sees messages first.
func (s *ScrollView) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if s == nil {
		return runtime.Unhandled()
	}
	if s.content != nil {
		if result := s.content.HandleMessage(msg); result.Handled {
			return result
		}
	}
	switch ev := msg.(type) {
	case runtime.KeyMsg:
		if !s.focused {
			return runtime.Unhandled()
		}
		return s.handleKey(ev)
	case runtime.MouseMsg:
		return s.handleMouse(ev)
	case runtime.TickMsg:
		if s.glide.Active() {
			if delta := s.glide.Step(); delta != 0 {
				s.viewport.ScrollBy(0, delta)
			}
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (s *ScrollView) handleKey(ev runtime.KeyMsg) runtime.HandleResult {
	switch ev.Key {
	case terminal.KeyUp:
		s.viewport.ScrollBy(0, -1)
		return runtime.Handled()
	case terminal.KeyDown:
		s.viewport.ScrollBy(0, 1)
		return runtime.Handled()
	case terminal.KeyLeft:
		s.viewport.ScrollBy(-1, 0)
		return runtime.Handled()
	case terminal.KeyRight:
		s.viewport.ScrollBy(1, 0)
		return runtime.Handled()
	case terminal.KeyPageUp:
		s.viewport.ScrollBy(0, -s.pageSize())
		return runtime.Handled()
	case terminal.KeyPageDown:
		s.viewport.ScrollBy(0, s.pageSize())
		return runtime.Handled()
	case terminal.KeyHome:
		s.viewport.ScrollTo(0, 0)
		return runtime.Handled()
	case terminal.KeyEnd:
		max := s.viewport.MaxOffset()
		s.viewport.ScrollTo(max.X, max.Y)
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (s *ScrollView) handleMouse(ev runtime.MouseMsg) runtime.HandleResult {
	bounds := s.bounds
	inside := bounds.Contains(ev.X, ev.Y)

	switch {
	case ev.Button == terminal.MouseWheelUp && inside:
		s.wheel(-s.wheelStep)
		return runtime.Handled()
	case ev.Button == terminal.MouseWheelDown && inside:
		s.wheel(s.wheelStep)
		return runtime.Handled()
	case ev.Button == terminal.MouseWheelLeft && inside:
		s.viewport.ScrollBy(-s.wheelStep, 0)
		return runtime.Handled()
	case ev.Button == terminal.MouseWheelRight && inside:
		s.viewport.ScrollBy(s.wheelStep, 0)
		return runtime.Handled()
	}

	barX := bounds.X + bounds.Width - 1
	switch ev.Action {
	case terminal.MousePress:
		if ev.Button == terminal.MouseLeft && inside && ev.X == barX && s.verticalBarVisible() {
			s.grabThumb(ev.Y - bounds.Y)
			return runtime.Handled()
		}
	case terminal.MouseMove:
		if s.dragging {
			s.dragThumb(ev.Y - bounds.Y)
			return runtime.Handled()
		}
	case terminal.MouseRelease:
		if s.dragging {
			s.dragging = false
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (s *ScrollView) wheel(delta int) {
	if s.smooth {
		s.glide.Strike(float64(delta))
		s.tracker.Touch()
		s.Invalidate()
		return
	}
	s.viewport.ScrollBy(0, delta)
}

func (s *ScrollView) pageSize() int {
	if s.bounds.Height > 0 {
		return s.bounds.Height
	}
	return 1
}

func (s *ScrollView) verticalBarVisible() bool {
	if s.vertical == ScrollNever {
		return false
	}
	_, ch := s.viewport.ContentSize()
	return s.vertical == ScrollAlways || ch > s.bounds.Height
}

func (s *ScrollView) horizontalBarVisible() bool {
	if s.horizontal == ScrollNever {
		return false
	}
	cw, _ := s.viewport.ContentSize()
	return s.horizontal == ScrollAlways || cw > s.bounds.Width
}

func (s *ScrollView) drawScrollbars(ctx runtime.RenderContext) {
	if s.verticalBarVisible() {
		s.drawVerticalBar(ctx)
	}
	if s.horizontalBarVisible() {
		s.drawHorizontalBar(ctx)
	}
}

func (s *ScrollView) drawVerticalBar(ctx runtime.RenderContext) {
	bounds := s.bounds
	x := bounds.X + bounds.Width - 1
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		ctx.Buffer.Set(x, y, '│', s.trackStyle)
	}
	start, size := s.vThumbExtent()
	for i := 0; i < size; i++ {
		ctx.Buffer.Set(x, bounds.Y+start+i, '█', s.thumbStyle)
	}
}

func (s *ScrollView) drawHorizontalBar(ctx runtime.RenderContext) {
	bounds := s.bounds
	y := bounds.Y + bounds.Height - 1
	cw, _ := s.viewport.ContentSize()
	view := bounds.Width
	if cw <= 0 || view <= 0 {
		return
	}
	for x := bounds.X; x < bounds.X+bounds.Width; x++ {
		ctx.Buffer.Set(x, y, '─', s.trackStyle)
	}
	size := view * view / cw
	if size < 1 {
		size = 1
	}
	if size > view {
		size = view
	}
	start := 0
	if maxOffset := cw - view; maxOffset > 0 {
		start = s.viewport.Offset().X * (view - size) / maxOffset
	}
	for i := 0; i < size; i++ {
		ctx.Buffer.Set(bounds.X+start+i, y, '█', s.thumbStyle)
	}
}

func (s *ScrollView) vThumbExtent() (start, size int) {
	_, ch := s.viewport.ContentSize()
	view := s.bounds.Height
	if ch <= 0 || view <= 0 {
		return 0, 0
	}
	size = view * view / ch
	if size < 1 {
		size = 1
	}
	if size > view {
		size = view
	}
	if maxOffset := ch - view; maxOffset > 0 {
		start = s.viewport.Offset().Y * (view - size) / maxOffset
	}
	return start, size
}

func (s *ScrollView) grabThumb(y int) {
	start, size := s.vThumbExtent()
	s.dragging = true
	if y >= start && y < start+size {
		s.dragGrab = y - start
		return
	}
	s.dragGrab = size / 2
	s.dragThumb(y)
}

func (s *ScrollView) dragThumb(y int) {
	view := s.bounds.Height
	_, ch := s.viewport.ContentSize()
	_, size := s.vThumbExtent()
	span := view - size
	if span <= 0 || ch <= view {
		return
	}
	maxOffset := ch - view
	thumbStart := y - s.dragGrab
	if thumbStart < 0 {
		thumbStart = 0
	}
	if thumbStart > span {
		thumbStart = span
	}
	s.viewport.SetOffset(s.viewport.Offset().X, thumbStart*maxOffset/span)
}

// Unmount stops the scroll tracker.
func (s *ScrollView) Unmount() {
	if s == nil {
		return
	}
	s.tracker.Stop()
	s.glide.Halt()
}

// Mount is a no-op; it pairs with Unmount for the lifecycle interface.
func (s *ScrollView) Mount() {}

var _ runtime.Widget = (*ScrollView)(nil)
var _ runtime.ChildProvider = (*ScrollView)(nil)
var _ runtime.Lifecycle = (*ScrollView)(nil)
