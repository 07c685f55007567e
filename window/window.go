package window

// DefaultOverscan is the number of extra items materialized on each side
// of the visible band. Overscan absorbs small scrolls without re-ranging.
const DefaultOverscan = 5

// Alignment controls where a targeted item lands in the viewport.
type Alignment int

const (
	// AlignStart places the item's leading edge at the viewport start.
	AlignStart Alignment = iota
	// AlignCenter centers the item in the viewport.
	AlignCenter
	// AlignEnd places the item's trailing edge at the viewport end.
	AlignEnd
)

// Item describes one materialized item: its index and its position
// along the scroll axis.
type Item struct {
	Index int
	Start int
	Size  int
}

// Window computes visible item ranges for a one-dimensional list.
// The zero value is an empty window; use New or Reset to populate it.
type Window struct {
	positions *Positions
	overscan  int
}

// New creates a window over count items measured by sizer.
func New(count int, sizer Sizer) *Window {
	return &Window{
		positions: BuildPositions(count, sizer),
		overscan:  DefaultOverscan,
	}
}

// Reset rebuilds the position table. Call after the item count or any
// item size changes.
func (w *Window) Reset(count int, sizer Sizer) {
	if w == nil {
		return
	}
	w.positions = BuildPositions(count, sizer)
}

// SetOverscan sets the number of extra items on each side of the
// visible band. Negative values clamp to zero.
func (w *Window) SetOverscan(n int) {
	if w == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	w.overscan = n
}

// Overscan returns the configured overscan.
func (w *Window) Overscan() int {
	if w == nil {
		return 0
	}
	return w.overscan
}

// Count returns the number of items.
func (w *Window) Count() int {
	if w == nil {
		return 0
	}
	return w.positions.Count()
}

// TotalSize returns the summed size of all items.
func (w *Window) TotalSize() int {
	if w == nil {
		return 0
	}
	return w.positions.TotalSize()
}

// Positions returns the underlying position table.
func (w *Window) Positions() *Positions {
	if w == nil {
		return nil
	}
	return w.positions
}

// ClampOffset clamps a scroll offset into the valid range for the
// given viewport size.
func (w *Window) ClampOffset(offset, viewport int) int {
	max := w.TotalSize() - viewport
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

// Range returns the inclusive index range to materialize for the given
// offset and viewport size, extended by the overscan on both sides.
// An empty window returns (0, -1).
func (w *Window) Range(offset, viewport int) (first, last int) {
	count := w.Count()
	if count == 0 {
		return 0, -1
	}
	offset = w.ClampOffset(offset, viewport)
	first = w.positions.IndexAt(offset)
	lastOffset := offset
	if viewport > 0 {
		lastOffset = offset + viewport - 1
	}
	last = w.positions.IndexAt(lastOffset)

	first -= w.overscan
	last += w.overscan
	if first < 0 {
		first = 0
	}
	if last > count-1 {
		last = count - 1
	}
	return first, last
}

// Items returns the materialized items for the given offset and
// viewport size, in index order.
func (w *Window) Items(offset, viewport int) []Item {
	first, last := w.Range(offset, viewport)
	if last < first {
		return nil
	}
	items := make([]Item, 0, last-first+1)
	for i := first; i <= last; i++ {
		items = append(items, Item{
			Index: i,
			Start: w.positions.Start(i),
			Size:  w.positions.Size(i),
		})
	}
	return items
}

// OffsetForIndex returns the clamped scroll offset that places item
// index in the viewport according to align.
func (w *Window) OffsetForIndex(index int, viewport int, align Alignment) int {
	count := w.Count()
	if count == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}
	start := w.positions.Start(index)
	size := w.positions.Size(index)

	offset := start
	switch align {
	case AlignCenter:
		offset = start - (viewport-size)/2
	case AlignEnd:
		offset = start - viewport + size
	}
	return w.ClampOffset(offset, viewport)
}
