// Package runtime hosts the message loop, render buffer, and widget tree.
package runtime

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersection returns the overlap of two rectangles.
// Returns an empty rect when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Constraints bound a widget's measured size.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unbounded returns constraints with no maximum.
func Unbounded() Constraints {
	maxInt := int(^uint(0) >> 1)
	return Constraints{MaxWidth: maxInt, MaxHeight: maxInt}
}

// Tight returns constraints that force an exact size.
func Tight(size Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// MinSize returns the smallest size satisfying the constraints.
func (c Constraints) MinSize() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Constrain clamps size into the constraint bounds.
func (c Constraints) Constrain(size Size) Size {
	if size.Width < c.MinWidth {
		size.Width = c.MinWidth
	}
	if size.Width > c.MaxWidth {
		size.Width = c.MaxWidth
	}
	if size.Height < c.MinHeight {
		size.Height = c.MinHeight
	}
	if size.Height > c.MaxHeight {
		size.Height = c.MaxHeight
	}
	return size
}
