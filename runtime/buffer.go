package runtime

import "github.com/odvcencio/porthole/backend"

// Cell represents a single character cell in the buffer.
type Cell = backend.Cell

// rowSpan tracks the dirty extent of one row. maxX is exclusive;
// a span with minX >= maxX is clean.
type rowSpan struct {
	minX, maxX int
}

// Buffer is a 2D grid of cells widgets render into.
// It tracks one dirty span per row so the app can flush only the
// columns that changed.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	spans     []rowSpan
	dirtyRows int
	dirtyAll  bool
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{
		cells:  newBlankCells(w * h),
		width:  w,
		height: h,
		spans:  make([]rowSpan, h),
	}
	b.resetSpans()
	return b
}

// newBlankCells allocates cells pre-filled with spaces, matching what
// Clear produces. Unwritten cells render as blanks, not NULs.
func newBlankCells(n int) []Cell {
	cells := make([]Cell, n)
	blank := Cell{Rune: ' ', Style: backend.DefaultStyle()}
	for i := range cells {
		cells[i] = blank
	}
	return cells
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions, preserving content where possible.
// The whole buffer is marked dirty afterwards.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	newCells := newBlankCells(w * h)
	minW := min(w, b.width)
	minH := min(h, b.height)
	for y := 0; y < minH; y++ {
		copy(newCells[y*w:y*w+minW], b.cells[y*b.width:y*b.width+minW])
	}
	b.cells = newCells
	b.width = w
	b.height = h
	b.spans = make([]rowSpan, h)
	b.resetSpans()
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces and default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y).
// No-op if out of bounds. Marks the cell dirty only when it changed.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	next := Cell{Rune: r, Style: s}
	if b.cells[idx] == next {
		return
	}
	b.cells[idx] = next
	b.markDirty(x, y)
}

// SetString writes a string starting at (x, y), clipped to the buffer.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) {
	if y < 0 || y >= b.height {
		return
	}
	col := x
	for _, r := range s {
		if col >= b.width {
			break
		}
		if col >= 0 {
			b.Set(col, y, r, style)
		}
		col++
	}
}

// Fill fills a rectangular region with a rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	clipped := r.Intersection(Rect{0, 0, b.width, b.height})
	if clipped.IsEmpty() {
		return
	}
	cell := Cell{Rune: ch, Style: s}
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		rowStart := y * b.width
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			if b.cells[rowStart+x] != cell {
				b.cells[rowStart+x] = cell
				b.markDirty(x, y)
			}
		}
	}
}

// DrawBox draws a border around a rect using box-drawing characters.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	b.Set(r.X, r.Y, '┌', s)
	b.Set(r.X+r.Width-1, r.Y, '┐', s)
	b.Set(r.X, r.Y+r.Height-1, '└', s)
	b.Set(r.X+r.Width-1, r.Y+r.Height-1, '┘', s)
	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, r.Y+r.Height-1, '─', s)
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(r.X+r.Width-1, y, '│', s)
	}
}

// Cells returns the underlying row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// --- dirty tracking ---

func (b *Buffer) resetSpans() {
	for i := range b.spans {
		b.spans[i] = rowSpan{minX: b.width, maxX: 0}
	}
	b.dirtyRows = 0
	b.dirtyAll = false
}

func (b *Buffer) markDirty(x, y int) {
	if b.dirtyAll {
		return
	}
	span := &b.spans[y]
	if span.minX >= span.maxX {
		b.dirtyRows++
		span.minX = x
		span.maxX = x + 1
		return
	}
	if x < span.minX {
		span.minX = x
	}
	if x >= span.maxX {
		span.maxX = x + 1
	}
}

// MarkAllDirty marks the entire buffer as dirty.
func (b *Buffer) MarkAllDirty() {
	b.dirtyAll = true
	b.dirtyRows = b.height
}

// ClearDirty resets all dirty spans.
func (b *Buffer) ClearDirty() {
	b.resetSpans()
}

// IsDirty reports whether any cell changed since the last ClearDirty.
func (b *Buffer) IsDirty() bool {
	return b.dirtyAll || b.dirtyRows > 0
}

// DirtyCount returns the number of cells covered by dirty spans.
// Spans over-approximate: unchanged cells between two changed cells
// on the same row are counted.
func (b *Buffer) DirtyCount() int {
	if b.dirtyAll {
		return b.width * b.height
	}
	count := 0
	for _, span := range b.spans {
		if span.maxX > span.minX {
			count += span.maxX - span.minX
		}
	}
	return count
}

// DirtyRect returns the bounding box of all dirty spans.
func (b *Buffer) DirtyRect() Rect {
	if b.dirtyAll {
		return Rect{0, 0, b.width, b.height}
	}
	minX, maxX := b.width, 0
	minY, maxY := b.height, 0
	for y, span := range b.spans {
		if span.maxX <= span.minX {
			continue
		}
		if y < minY {
			minY = y
		}
		maxY = y + 1
		if span.minX < minX {
			minX = span.minX
		}
		if span.maxX > maxX {
			maxX = span.maxX
		}
	}
	if maxY <= minY || maxX <= minX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ForEachDirtySpan calls fn for each row's dirty span, top to bottom.
// endX is exclusive.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	if b.dirtyAll {
		for y := 0; y < b.height; y++ {
			fn(y, 0, b.width)
		}
		return
	}
	for y, span := range b.spans {
		if span.maxX > span.minX {
			fn(y, span.minX, span.maxX)
		}
	}
}

// ForEachDirtyCell calls fn for every cell inside a dirty span.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	b.ForEachDirtySpan(func(y, startX, endX int) {
		rowStart := y * b.width
		for x := startX; x < endX; x++ {
			fn(x, y, b.cells[rowStart+x])
		}
	})
}

// SubBuffer is a translated, clipped view into a buffer region.
type SubBuffer struct {
	parent *Buffer
	bounds Rect
}

// Sub creates a SubBuffer for the given region.
func (b *Buffer) Sub(r Rect) *SubBuffer {
	return &SubBuffer{parent: b, bounds: r}
}

// Size returns the sub-buffer dimensions.
func (s *SubBuffer) Size() (w, h int) {
	return s.bounds.Width, s.bounds.Height
}

// Set writes a rune at a position relative to the sub-buffer.
func (s *SubBuffer) Set(x, y int, r rune, style backend.Style) {
	if x < 0 || x >= s.bounds.Width || y < 0 || y >= s.bounds.Height {
		return
	}
	s.parent.Set(s.bounds.X+x, s.bounds.Y+y, r, style)
}

// SetString writes a string at a position relative to the sub-buffer.
func (s *SubBuffer) SetString(x, y int, str string, style backend.Style) {
	if y < 0 || y >= s.bounds.Height {
		return
	}
	col := x
	for _, r := range str {
		if col >= s.bounds.Width {
			break
		}
		if col >= 0 {
			s.parent.Set(s.bounds.X+col, s.bounds.Y+y, r, style)
		}
		col++
	}
}

// Fill fills a region relative to the sub-buffer.
func (s *SubBuffer) Fill(r Rect, ch rune, style backend.Style) {
	clipped := r.Intersection(Rect{0, 0, s.bounds.Width, s.bounds.Height})
	if clipped.IsEmpty() {
		return
	}
	s.parent.Fill(Rect{
		X:      s.bounds.X + clipped.X,
		Y:      s.bounds.Y + clipped.Y,
		Width:  clipped.Width,
		Height: clipped.Height,
	}, ch, style)
}

// Clear fills the sub-buffer region with spaces.
func (s *SubBuffer) Clear() {
	s.Fill(Rect{0, 0, s.bounds.Width, s.bounds.Height}, ' ', backend.DefaultStyle())
}
