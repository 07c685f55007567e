package widgets

import (
	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
	"github.com/odvcencio/porthole/window"
)

// CellRenderFunc renders one grid cell into its cell context.
type CellRenderFunc[T any] func(item T, index int, selected bool, ctx runtime.RenderContext)

// GridAdapter provides data for virtualized grid widgets.
type GridAdapter[T any] interface {
	Count() int
	Item(index int) T
	Render(item T, index int, selected bool, ctx runtime.RenderContext)
}

// SliceGridAdapter adapts a slice to a GridAdapter.
type SliceGridAdapter[T any] struct {
	items  []T
	render CellRenderFunc[T]
}

// NewSliceGridAdapter creates a slice grid adapter.
func NewSliceGridAdapter[T any](items []T, render CellRenderFunc[T]) *SliceGridAdapter[T] {
	return &SliceGridAdapter[T]{items: items, render: render}
}

// SetItems replaces the backing slice.
func (s *SliceGridAdapter[T]) SetItems(items []T) {
	if s == nil {
		return
	}
	s.items = items
}

// Count returns the item count.
func (s *SliceGridAdapter[T]) Count() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Item returns the item at index.
func (s *SliceGridAdapter[T]) Item(index int) T {
	var zero T
	if s == nil || index < 0 || index >= len(s.items) {
		return zero
	}
	return s.items[index]
}

// Render renders the item.
func (s *SliceGridAdapter[T]) Render(item T, index int, selected bool, ctx runtime.RenderContext) {
	if s == nil || s.render == nil {
		return
	}
	s.render(item, index, selected, ctx)
}

// VirtualGrid renders only the visible rows of a tile grid. Tiles are
// fixed-size and flow left to right, top to bottom; the column count
// follows the widget width.
type VirtualGrid[T any] struct {
	Component
	adapter  GridAdapter[T]
	grid     window.Grid
	tracker  *window.Tracker
	offset   int
	selected int
	overscan int
	onSelect func(index int, item T)

	style         backend.Style
	selectedStyle backend.Style
	trackStyle    backend.Style
	thumbStyle    backend.Style

	wheelStep int
	scrollbar bool
}

// NewVirtualGrid creates a virtualized grid of cellWidth x cellHeight
// tiles separated by gap.
func NewVirtualGrid[T any](adapter GridAdapter[T], cellWidth, cellHeight, gap int) *VirtualGrid[T] {
	g := &VirtualGrid[T]{
		adapter:       adapter,
		grid:          window.Grid{CellWidth: cellWidth, CellHeight: cellHeight, Gap: gap},
		overscan:      1,
		style:         backend.DefaultStyle(),
		selectedStyle: backend.DefaultStyle().Reverse(true),
		trackStyle:    backend.DefaultStyle(),
		thumbStyle:    backend.DefaultStyle().Reverse(true),
		wheelStep:     3,
		scrollbar:     true,
	}
	g.tracker = window.NewTracker(func(window.Phase) {
		g.Invalidate()
	})
	return g
}

// CanFocus returns true.
func (g *VirtualGrid[T]) CanFocus() bool {
	return true
}

// OnSelect registers a selection handler.
func (g *VirtualGrid[T]) OnSelect(fn func(index int, item T)) {
	if g == nil {
		return
	}
	g.onSelect = fn
}

// SetOverscan sets how many extra rows render on each side of the
// visible band.
func (g *VirtualGrid[T]) SetOverscan(rows int) {
	if g == nil {
		return
	}
	if rows < 0 {
		rows = 0
	}
	g.overscan = rows
}

// SetShowScrollbar toggles the vertical scrollbar.
func (g *VirtualGrid[T]) SetShowScrollbar(show bool) {
	if g == nil {
		return
	}
	g.scrollbar = show
}

// Tracker returns the scroll phase tracker.
func (g *VirtualGrid[T]) Tracker() *window.Tracker {
	if g == nil {
		return nil
	}
	return g.tracker
}

// SelectedIndex returns the current selection index.
func (g *VirtualGrid[T]) SelectedIndex() int {
	if g == nil {
		return 0
	}
	return g.selected
}

// Offset returns the vertical scroll offset in rows.
func (g *VirtualGrid[T]) Offset() int {
	if g == nil {
		return 0
	}
	return g.offset
}

// Columns returns the current column count for the laid-out width.
func (g *VirtualGrid[T]) Columns() int {
	if g == nil {
		return 1
	}
	return g.grid.Columns(g.contentWidth())
}

func (g *VirtualGrid[T]) count() int {
	if g == nil || g.adapter == nil {
		return 0
	}
	return g.adapter.Count()
}

func (g *VirtualGrid[T]) contentWidth() int {
	w := g.bounds.Width
	if g.scrollbarVisible() {
		w--
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (g *VirtualGrid[T]) totalHeight() int {
	return g.grid.TotalHeight(g.count(), g.contentWidth())
}

func (g *VirtualGrid[T]) scrollbarVisible() bool {
	if g == nil || !g.scrollbar || g.bounds.Width <= 1 {
		return false
	}
	// Compute against the full width; the bar steals one column.
	return g.grid.TotalHeight(g.count(), g.bounds.Width-1) > g.bounds.Height
}

func (g *VirtualGrid[T]) clampOffset(offset int) int {
	max := g.totalHeight() - g.bounds.Height
	if max < 0 {
		max = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// Measure returns the desired size.
func (g *VirtualGrid[T]) Measure(constraints runtime.Constraints) runtime.Size {
	if g == nil {
		return constraints.MinSize()
	}
	height := min(g.grid.TotalHeight(g.count(), constraints.MaxWidth), constraints.MaxHeight)
	if height <= 0 {
		height = constraints.MinHeight
	}
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: height})
}

// Layout stores bounds and re-clamps the offset.
func (g *VirtualGrid[T]) Layout(bounds runtime.Rect) {
	g.Base.Layout(bounds)
	g.offset = g.clampOffset(g.offset)
}

// Render draws the visible tiles and the scrollbar.
func (g *VirtualGrid[T]) Render(ctx runtime.RenderContext) {
	if g == nil || g.adapter == nil {
		return
	}
	bounds := g.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(bounds, ' ', g.style)

	width := g.contentWidth()
	for _, cell := range g.grid.VisibleCells(0, g.offset, width, bounds.Height, g.count(), width, g.overscan) {
		cellBounds := runtime.Rect{
			X:      bounds.X + cell.X,
			Y:      bounds.Y + cell.Y - g.offset,
			Width:  g.grid.CellWidth,
			Height: g.grid.CellHeight,
		}
		clipped := cellBounds.Intersection(bounds)
		if clipped.IsEmpty() {
			continue
		}
		g.adapter.Render(g.adapter.Item(cell.Index), cell.Index, cell.Index == g.selected, ctx.Sub(clipped))
	}
	g.drawScrollbar(ctx)
}

func (g *VirtualGrid[T]) drawScrollbar(ctx runtime.RenderContext) {
	if !g.scrollbarVisible() {
		return
	}
	bounds := g.bounds
	x := bounds.X + bounds.Width - 1
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		ctx.Buffer.Set(x, y, '│', g.trackStyle)
	}
	view := bounds.Height
	total := g.totalHeight()
	if total <= 0 || view <= 0 {
		return
	}
	size := view * view / total
	if size < 1 {
		size = 1
	}
	if size > view {
		size = view
	}
	start := 0
	if maxOffset := total - view; maxOffset > 0 {
		start = g.offset * (view - size) / maxOffset
	}
	for i := 0; i < size; i++ {
		ctx.Buffer.Set(x, bounds.Y+start+i, '█', g.thumbStyle)
	}
}

// HandleMessage handles arrow navigation and wheel scrolling.
func (g *VirtualGrid[T]) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if g == nil || g.adapter == nil {
		return runtime.Unhandled()
	}
	switch ev := msg.(type) {
	case runtime.KeyMsg:
		if !g.focused {
			return runtime.Unhandled()
		}
		return g.handleKey(ev)
	case runtime.MouseMsg:
		return g.handleMouse(ev)
	}
	return runtime.Unhandled()
}

func (g *VirtualGrid[T]) handleKey(ev runtime.KeyMsg) runtime.HandleResult {
	count := g.count()
	if count == 0 {
		return runtime.Unhandled()
	}
	cols := g.Columns()
	switch ev.Key {
	case terminal.KeyLeft:
		g.Select(g.selected - 1)
		return runtime.Handled()
	case terminal.KeyRight:
		g.Select(g.selected + 1)
		return runtime.Handled()
	case terminal.KeyUp:
		g.Select(g.selected - cols)
		return runtime.Handled()
	case terminal.KeyDown:
		g.Select(g.selected + cols)
		return runtime.Handled()
	case terminal.KeyHome:
		g.Select(0)
		return runtime.Handled()
	case terminal.KeyEnd:
		g.Select(count - 1)
		return runtime.Handled()
	case terminal.KeyPageUp:
		g.scrollBy(-g.bounds.Height)
		return runtime.Handled()
	case terminal.KeyPageDown:
		g.scrollBy(g.bounds.Height)
		return runtime.Handled()
	case terminal.KeyEnter:
		if g.onSelect != nil && g.selected < count {
			g.onSelect(g.selected, g.adapter.Item(g.selected))
		}
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (g *VirtualGrid[T]) handleMouse(ev runtime.MouseMsg) runtime.HandleResult {
	if !g.bounds.Contains(ev.X, ev.Y) {
		return runtime.Unhandled()
	}
	switch {
	case ev.Button == terminal.MouseWheelUp:
		g.scrollBy(-g.wheelStep)
		return runtime.Handled()
	case ev.Button == terminal.MouseWheelDown:
		g.scrollBy(g.wheelStep)
		return runtime.Handled()
	case ev.Button == terminal.MouseLeft && ev.Action == terminal.MousePress:
		if idx, ok := g.indexAtPoint(ev.X-g.bounds.X, ev.Y-g.bounds.Y); ok {
			g.Select(idx)
			if g.onSelect != nil {
				g.onSelect(g.selected, g.adapter.Item(g.selected))
			}
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

// indexAtPoint maps a view-relative point to a tile index. Points in
// gaps report no tile.
func (g *VirtualGrid[T]) indexAtPoint(x, y int) (int, bool) {
	width := g.contentWidth()
	cols := g.grid.Columns(width)
	colStride := g.grid.CellWidth + g.grid.Gap
	rowStride := g.grid.CellHeight + g.grid.Gap
	if colStride <= 0 || rowStride <= 0 {
		return 0, false
	}
	contentY := y + g.offset
	col := x / colStride
	row := contentY / rowStride
	if col >= cols || x%colStride >= g.grid.CellWidth || contentY%rowStride >= g.grid.CellHeight {
		return 0, false
	}
	index := row*cols + col
	if index < 0 || index >= g.count() {
		return 0, false
	}
	return index, true
}

func (g *VirtualGrid[T]) scrollBy(delta int) {
	next := g.clampOffset(g.offset + delta)
	if next == g.offset {
		return
	}
	g.offset = next
	g.tracker.Touch()
	g.Invalidate()
}

// Select moves the selection and scrolls its row into view.
func (g *VirtualGrid[T]) Select(index int) {
	if g == nil {
		return
	}
	count := g.count()
	if count == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}
	g.selected = index
	g.ensureVisible(index)
	g.Invalidate()
}

func (g *VirtualGrid[T]) ensureVisible(index int) {
	cols := g.Columns()
	row := index / cols
	rowStride := g.grid.CellHeight + g.grid.Gap
	top := row * rowStride
	bottom := top + g.grid.CellHeight

	offset := g.offset
	if top < offset {
		offset = top
	} else if bottom > offset+g.bounds.Height {
		offset = bottom - g.bounds.Height
	}
	next := g.clampOffset(offset)
	if next != g.offset {
		g.offset = next
		g.tracker.Touch()
	}
}

// ScrollToIndex scrolls so the row containing index lands at the given
// alignment.
func (g *VirtualGrid[T]) ScrollToIndex(index int, align window.Alignment) {
	if g == nil {
		return
	}
	count := g.count()
	if count == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}
	cols := g.Columns()
	row := index / cols
	rowStride := g.grid.CellHeight + g.grid.Gap
	top := row * rowStride

	offset := top
	switch align {
	case window.AlignCenter:
		offset = top - (g.bounds.Height-g.grid.CellHeight)/2
	case window.AlignEnd:
		offset = top - g.bounds.Height + g.grid.CellHeight
	}
	g.scrollTo(offset)
}

func (g *VirtualGrid[T]) scrollTo(offset int) {
	next := g.clampOffset(offset)
	if next == g.offset {
		return
	}
	g.offset = next
	g.tracker.Touch()
	g.Invalidate()
}

// Unmount stops the scroll tracker.
func (g *VirtualGrid[T]) Unmount() {
	if g == nil {
		return
	}
	g.tracker.Stop()
}

// Mount is a no-op; it pairs with Unmount for the lifecycle interface.
func (g *VirtualGrid[T]) Mount() {}

var _ runtime.Widget = (*VirtualGrid[int])(nil)
var _ runtime.Lifecycle = (*VirtualGrid[int])(nil)
