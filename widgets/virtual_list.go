package widgets

import (
	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
	"github.com/odvcencio/porthole/window"
)

// VirtualList renders only the visible band of a large item list.
// Offsets are in rows; items may span multiple rows. Works with any
// ListAdapter, including adapters backed by signals or callbacks.
type VirtualList[T any] struct {
	Component
	adapter  ListAdapter[T]
	win      *window.Window
	tracker  *window.Tracker
	glide    *window.Glide
	offset   int
	selected int
	onSelect func(index int, item T)

	style         backend.Style
	selectedStyle backend.Style
	trackStyle    backend.Style
	thumbStyle    backend.Style

	wheelStep    int
	smoothScroll bool
	scrollbar    bool
	lastCount    int

	dragging bool
	dragGrab int // rows between thumb top and grab point
}

// NewVirtualList creates a virtualized list over adapter.
func NewVirtualList[T any](adapter ListAdapter[T]) *VirtualList[T] {
	l := &VirtualList[T]{
		adapter:       adapter,
		glide:         window.NewGlide(),
		style:         backend.DefaultStyle(),
		selectedStyle: backend.DefaultStyle().Reverse(true),
		trackStyle:    backend.DefaultStyle(),
		thumbStyle:    backend.DefaultStyle().Reverse(true),
		wheelStep:     3,
		scrollbar:     true,
		lastCount:     -1,
	}
	l.tracker = window.NewTracker(func(window.Phase) {
		l.Invalidate()
	})
	l.reload()
	return l
}

// CanFocus returns true.
func (l *VirtualList[T]) CanFocus() bool {
	return true
}

// OnSelect registers a selection handler fired on Enter or click.
func (l *VirtualList[T]) OnSelect(fn func(index int, item T)) {
	if l == nil {
		return
	}
	l.onSelect = fn
}

// SetOverscan sets how many extra items render on each side of the
// visible band.
func (l *VirtualList[T]) SetOverscan(n int) {
	if l == nil || l.win == nil {
		return
	}
	l.win.SetOverscan(n)
}

// SetWheelStep sets the rows scrolled per mouse wheel notch.
func (l *VirtualList[T]) SetWheelStep(rows int) {
	if l == nil || rows <= 0 {
		return
	}
	l.wheelStep = rows
}

// SetSmoothScroll enables momentum on wheel input.
func (l *VirtualList[T]) SetSmoothScroll(enabled bool) {
	if l == nil {
		return
	}
	l.smoothScroll = enabled
}

// SetShowScrollbar toggles the vertical scrollbar.
func (l *VirtualList[T]) SetShowScrollbar(show bool) {
	if l == nil {
		return
	}
	l.scrollbar = show
}

// SetStyles overrides the item and selection styles.
func (l *VirtualList[T]) SetStyles(item, selected backend.Style) {
	if l == nil {
		return
	}
	l.style = item
	l.selectedStyle = selected
}

// Tracker returns the scroll phase tracker. Adapters can consult it to
// render cheap placeholders while the list is in motion.
func (l *VirtualList[T]) Tracker() *window.Tracker {
	if l == nil {
		return nil
	}
	return l.tracker
}

// Offset returns the current scroll offset in rows.
func (l *VirtualList[T]) Offset() int {
	if l == nil {
		return 0
	}
	return l.offset
}

// SelectedIndex returns the current selection index.
func (l *VirtualList[T]) SelectedIndex() int {
	if l == nil {
		return 0
	}
	return l.selected
}

// SelectedItem returns the selected item.
func (l *VirtualList[T]) SelectedItem() (T, bool) {
	var zero T
	if l == nil || l.adapter == nil {
		return zero, false
	}
	if l.selected < 0 || l.selected >= l.adapter.Count() {
		return zero, false
	}
	return l.adapter.Item(l.selected), true
}

// Reload rebuilds the position table. Call after item sizes change;
// count changes are picked up automatically.
func (l *VirtualList[T]) Reload() {
	if l == nil {
		return
	}
	l.reload()
	l.clampState()
	l.Invalidate()
}

func (l *VirtualList[T]) reload() {
	count := 0
	if l.adapter != nil {
		count = l.adapter.Count()
	}
	sizer := window.SizerFunc(func(i int) int {
		return l.adapter.ItemHeight(i)
	})
	if l.win == nil {
		l.win = window.New(count, sizer)
	} else {
		l.win.Reset(count, sizer)
	}
	l.lastCount = count
}

// syncCount rebuilds the table when the adapter count drifted.
func (l *VirtualList[T]) syncCount() {
	count := 0
	if l.adapter != nil {
		count = l.adapter.Count()
	}
	if count != l.lastCount {
		l.reload()
		l.clampState()
	}
}

func (l *VirtualList[T]) clampState() {
	count := l.win.Count()
	if l.selected >= count {
		l.selected = count - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.offset = l.win.ClampOffset(l.offset, l.viewHeight())
}

func (l *VirtualList[T]) viewHeight() int {
	return l.bounds.Height
}

func (l *VirtualList[T]) contentWidth() int {
	w := l.bounds.Width
	if l.scrollbarVisible() {
		w--
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (l *VirtualList[T]) scrollbarVisible() bool {
	return l.scrollbar && l.win.TotalSize() > l.bounds.Height && l.bounds.Width > 1
}

// Measure returns the desired size.
func (l *VirtualList[T]) Measure(constraints runtime.Constraints) runtime.Size {
	if l == nil {
		return constraints.MinSize()
	}
	l.syncCount()
	height := min(l.win.TotalSize(), constraints.MaxHeight)
	if height <= 0 {
		height = constraints.MinHeight
	}
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: height})
}

// Layout stores bounds and re-clamps the offset against the new view.
func (l *VirtualList[T]) Layout(bounds runtime.Rect) {
	l.Base.Layout(bounds)
	l.clampState()
}

// Render draws the visible items and the scrollbar.
func (l *VirtualList[T]) Render(ctx runtime.RenderContext) {
	if l == nil || l.adapter == nil {
		return
	}
	bounds := l.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	l.syncCount()
	ctx.Buffer.Fill(bounds, ' ', l.style)

	width := l.contentWidth()
	for _, item := range l.win.Items(l.offset, l.viewHeight()) {
		y := item.Start - l.offset
		if y >= bounds.Height || y+item.Size <= 0 {
			// Overscan rows sit outside the viewport.
			continue
		}
		itemBounds := runtime.Rect{
			X:      bounds.X,
			Y:      bounds.Y + y,
			Width:  width,
			Height: item.Size,
		}
		clipped := itemBounds.Intersection(bounds)
		if clipped.IsEmpty() {
			continue
		}
		l.adapter.Render(l.adapter.Item(item.Index), item.Index, item.Index == l.selected, ctx.Sub(clipped))
	}
	l.drawScrollbar(ctx)
}

func (l *VirtualList[T]) drawScrollbar(ctx runtime.RenderContext) {
	if !l.scrollbarVisible() {
		return
	}
	bounds := l.bounds
	x := bounds.X + bounds.Width - 1
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		ctx.Buffer.Set(x, y, '│', l.trackStyle)
	}
	start, size := l.thumbExtent()
	for i := 0; i < size; i++ {
		ctx.Buffer.Set(x, bounds.Y+start+i, '█', l.thumbStyle)
	}
}

// thumbExtent returns the scrollbar thumb start row and height within
// the view.
func (l *VirtualList[T]) thumbExtent() (start, size int) {
	view := l.viewHeight()
	total := l.win.TotalSize()
	if total <= 0 || view <= 0 {
		return 0, 0
	}
	size = view * view / total
	if size < 1 {
		size = 1
	}
	if size > view {
		size = view
	}
	maxOffset := total - view
	if maxOffset > 0 {
		start = l.offset * (view - size) / maxOffset
	}
	return start, size
}

// HandleMessage handles navigation, wheel scrolling, thumb dragging,
// and momentum ticks.
func (l *VirtualList[T]) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if l == nil || l.adapter == nil {
		return runtime.Unhandled()
	}
	switch ev := msg.(type) {
	case runtime.KeyMsg:
		if !l.focused {
			return runtime.Unhandled()
		}
		return l.handleKey(ev)
	case runtime.MouseMsg:
		return l.handleMouse(ev)
	case runtime.TickMsg:
		if l.glide.Active() {
			if delta := l.glide.Step(); delta != 0 {
				l.scrollBy(delta)
			}
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (l *VirtualList[T]) handleKey(ev runtime.KeyMsg) runtime.HandleResult {
	l.syncCount()
	count := l.win.Count()
	if count == 0 {
		return runtime.Unhandled()
	}
	switch ev.Key {
	case terminal.KeyUp:
		l.Select(l.selected - 1)
		return runtime.Handled()
	case terminal.KeyDown:
		l.Select(l.selected + 1)
		return runtime.Handled()
	case terminal.KeyPageUp:
		l.pageSelect(-1)
		return runtime.Handled()
	case terminal.KeyPageDown:
		l.pageSelect(1)
		return runtime.Handled()
	case terminal.KeyHome:
		l.Select(0)
		return runtime.Handled()
	case terminal.KeyEnd:
		l.Select(count - 1)
		return runtime.Handled()
	case terminal.KeyEnter:
		if l.onSelect != nil {
			if item, ok := l.SelectedItem(); ok {
				l.onSelect(l.selected, item)
			}
		}
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (l *VirtualList[T]) handleMouse(ev runtime.MouseMsg) runtime.HandleResult {
	bounds := l.bounds
	inside := bounds.Contains(ev.X, ev.Y)

	switch {
	case ev.Button == terminal.MouseWheelUp && inside:
		l.wheel(-l.wheelStep)
		return runtime.Handled()
	case ev.Button == terminal.MouseWheelDown && inside:
		l.wheel(l.wheelStep)
		return runtime.Handled()
	}

	barX := bounds.X + bounds.Width - 1
	switch ev.Action {
	case terminal.MousePress:
		if ev.Button != terminal.MouseLeft || !inside {
			return runtime.Unhandled()
		}
		if l.scrollbarVisible() && ev.X == barX {
			l.grabThumb(ev.Y - bounds.Y)
			return runtime.Handled()
		}
		if idx, ok := l.indexAtRow(ev.Y - bounds.Y); ok {
			l.Select(idx)
			if l.onSelect != nil {
				l.onSelect(l.selected, l.adapter.Item(l.selected))
			}
			return runtime.Handled()
		}
	case terminal.MouseMove:
		if l.dragging {
			l.dragThumb(ev.Y - bounds.Y)
			return runtime.Handled()
		}
	case terminal.MouseRelease:
		if l.dragging {
			l.dragging = false
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

// grabThumb starts or jump-scrolls a scrollbar drag at view row y.
func (l *VirtualList[T]) grabThumb(y int) {
	start, size := l.thumbExtent()
	l.dragging = true
	if y >= start && y < start+size {
		l.dragGrab = y - start
		return
	}
	// Clicking the track centers the thumb on the click.
	l.dragGrab = size / 2
	l.dragThumb(y)
}

// dragThumb maps a view row back to a scroll offset.
func (l *VirtualList[T]) dragThumb(y int) {
	view := l.viewHeight()
	total := l.win.TotalSize()
	_, size := l.thumbExtent()
	span := view - size
	if span <= 0 || total <= view {
		return
	}
	maxOffset := total - view
	thumbStart := y - l.dragGrab
	if thumbStart < 0 {
		thumbStart = 0
	}
	if thumbStart > span {
		thumbStart = span
	}
	l.setOffset(thumbStart * maxOffset / span)
}

// indexAtRow resolves a view row to an item index.
func (l *VirtualList[T]) indexAtRow(row int) (int, bool) {
	if row < 0 || row >= l.viewHeight() || l.win.Count() == 0 {
		return 0, false
	}
	pos := l.offset + row
	if pos >= l.win.TotalSize() {
		return 0, false
	}
	return l.win.Positions().IndexAt(pos), true
}

func (l *VirtualList[T]) wheel(delta int) {
	if l.smoothScroll {
		l.glide.Strike(float64(delta))
		l.tracker.Touch()
		l.Invalidate()
		return
	}
	l.scrollBy(delta)
}

func (l *VirtualList[T]) scrollBy(delta int) {
	l.setOffset(l.offset + delta)
}

func (l *VirtualList[T]) setOffset(offset int) {
	l.syncCount()
	next := l.win.ClampOffset(offset, l.viewHeight())
	if next == l.offset {
		return
	}
	l.offset = next
	l.tracker.Touch()
	l.Invalidate()
}

// Select moves the selection and scrolls just enough to keep it
// visible.
func (l *VirtualList[T]) Select(index int) {
	if l == nil {
		return
	}
	l.syncCount()
	count := l.win.Count()
	if count == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}
	l.selected = index
	l.ensureVisible(index)
	l.Invalidate()
}

func (l *VirtualList[T]) pageSelect(pages int) {
	page := l.viewHeight()
	if page < 1 {
		page = 1
	}
	// Pages move by rows, not items; map the landing row to an index.
	target := l.win.Positions().Start(l.selected) + pages*page
	l.Select(l.win.Positions().IndexAt(target))
}

func (l *VirtualList[T]) ensureVisible(index int) {
	view := l.viewHeight()
	start := l.win.Positions().Start(index)
	end := l.win.Positions().End(index)
	offset := l.offset
	if start < offset {
		offset = start
	} else if end > offset+view {
		offset = end - view
	}
	l.setOffset(offset)
}

// ScrollToIndex scrolls so that item index lands at the given
// alignment within the view.
func (l *VirtualList[T]) ScrollToIndex(index int, align window.Alignment) {
	if l == nil {
		return
	}
	l.syncCount()
	l.setOffset(l.win.OffsetForIndex(index, l.viewHeight(), align))
}

// ScrollBy scrolls the view by rows without moving the selection.
func (l *VirtualList[T]) ScrollBy(rows int) {
	if l == nil {
		return
	}
	l.scrollBy(rows)
}

// Unmount stops the scroll tracker.
func (l *VirtualList[T]) Unmount() {
	if l == nil {
		return
	}
	l.tracker.Stop()
	l.glide.Halt()
}

// Mount is a no-op; it pairs with Unmount for the lifecycle interface.
func (l *VirtualList[T]) Mount() {}

var _ runtime.Widget = (*VirtualList[int])(nil)
var _ runtime.Lifecycle = (*VirtualList[int])(nil)
