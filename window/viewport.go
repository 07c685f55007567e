package window

import "image"

// Viewport tracks a two-dimensional scroll offset over content larger
// than the view. Offsets are always clamped so the view never scrolls
// past the content edges.
type Viewport struct {
	offset   image.Point
	content  image.Point
	view     image.Point
	onChange func(offset image.Point)
}

// NewViewport creates an empty viewport.
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetContentSize updates the content size and clamps the offset.
func (v *Viewport) SetContentSize(w, h int) {
	if v == nil {
		return
	}
	v.content = image.Point{X: w, Y: h}
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ContentSize returns the content dimensions.
func (v *Viewport) ContentSize() (w, h int) {
	if v == nil {
		return 0, 0
	}
	return v.content.X, v.content.Y
}

// SetViewSize updates the view size and clamps the offset.
func (v *Viewport) SetViewSize(w, h int) {
	if v == nil {
		return
	}
	v.view = image.Point{X: w, Y: h}
	v.SetOffset(v.offset.X, v.offset.Y)
}

// ViewSize returns the view dimensions.
func (v *Viewport) ViewSize() (w, h int) {
	if v == nil {
		return 0, 0
	}
	return v.view.X, v.view.Y
}

// Offset returns the current scroll offset.
func (v *Viewport) Offset() image.Point {
	if v == nil {
		return image.Point{}
	}
	return v.offset
}

// SetOnChange sets a callback invoked whenever the offset changes.
func (v *Viewport) SetOnChange(fn func(offset image.Point)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetOffset sets the scroll offset, clamped to the content bounds.
// The change callback fires only when the clamped offset moved.
func (v *Viewport) SetOffset(x, y int) {
	if v == nil {
		return
	}
	max := v.MaxOffset()
	next := image.Point{X: clamp(x, 0, max.X), Y: clamp(y, 0, max.Y)}
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(v.offset)
	}
}

// ScrollBy adjusts the offset by a delta.
func (v *Viewport) ScrollBy(dx, dy int) {
	if v == nil {
		return
	}
	v.SetOffset(v.offset.X+dx, v.offset.Y+dy)
}

// ScrollTo scrolls to absolute coordinates.
func (v *Viewport) ScrollTo(x, y int) {
	v.SetOffset(x, y)
}

// MaxOffset returns the maximum scrollable offset in each axis.
func (v *Viewport) MaxOffset() image.Point {
	if v == nil {
		return image.Point{}
	}
	maxX := v.content.X - v.view.X
	maxY := v.content.Y - v.view.Y
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return image.Point{X: maxX, Y: maxY}
}

// VisibleRect returns the content rectangle currently in view.
func (v *Viewport) VisibleRect() image.Rectangle {
	if v == nil {
		return image.Rectangle{}
	}
	return image.Rect(v.offset.X, v.offset.Y, v.offset.X+v.view.X, v.offset.Y+v.view.Y)
}

// EnsureVisible scrolls the minimum distance needed to bring the
// content rectangle r into view, keeping padding cells of margin where
// the content allows.
func (v *Viewport) EnsureVisible(r image.Rectangle, padding int) {
	if v == nil {
		return
	}
	if padding < 0 {
		padding = 0
	}
	x, y := v.offset.X, v.offset.Y

	if r.Min.X-padding < x {
		x = r.Min.X - padding
	} else if r.Max.X+padding > x+v.view.X {
		x = r.Max.X + padding - v.view.X
	}
	if r.Min.Y-padding < y {
		y = r.Min.Y - padding
	} else if r.Max.Y+padding > y+v.view.Y {
		y = r.Max.Y + padding - v.view.Y
	}
	v.SetOffset(x, y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
