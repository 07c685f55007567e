// Package window implements list and grid virtualization: given a scroll
// offset and a viewport size, it computes the small band of items worth
// materializing, plus helpers for scroll targeting, grid layout, scroll
// phase tracking, and momentum.
package window

import "sort"

// Sizer reports the size of one item along the scroll axis.
type Sizer interface {
	ItemSize(index int) int
}

// FixedSizer sizes every item identically.
type FixedSizer int

// ItemSize returns the fixed size.
func (f FixedSizer) ItemSize(int) int { return int(f) }

// SizerFunc adapts a function to a Sizer.
type SizerFunc func(index int) int

// ItemSize calls the function.
func (f SizerFunc) ItemSize(index int) int { return f(index) }

// Positions is a cumulative position table for items laid end to end.
// It holds one prefix sum per item so Start(i+1) == Start(i) + Size(i)
// always holds. Building is O(n); offset lookups are O(log n).
type Positions struct {
	starts []int // len == count+1, starts[count] is the total size
}

// BuildPositions computes the position table for count items.
// Negative item sizes are treated as zero.
func BuildPositions(count int, sizer Sizer) *Positions {
	if count < 0 {
		count = 0
	}
	starts := make([]int, count+1)
	pos := 0
	for i := 0; i < count; i++ {
		starts[i] = pos
		size := 0
		if sizer != nil {
			size = sizer.ItemSize(i)
		}
		if size > 0 {
			pos += size
		}
	}
	starts[count] = pos
	return &Positions{starts: starts}
}

// Count returns the number of items in the table.
func (p *Positions) Count() int {
	if p == nil {
		return 0
	}
	return len(p.starts) - 1
}

// TotalSize returns the summed size of all items.
func (p *Positions) TotalSize() int {
	if p == nil || len(p.starts) == 0 {
		return 0
	}
	return p.starts[len(p.starts)-1]
}

// Start returns the position of item i. Out-of-range indices clamp.
func (p *Positions) Start(i int) int {
	if p == nil || len(p.starts) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i > len(p.starts)-1 {
		i = len(p.starts) - 1
	}
	return p.starts[i]
}

// Size returns the size of item i, or 0 out of range.
func (p *Positions) Size(i int) int {
	if p == nil || i < 0 || i >= p.Count() {
		return 0
	}
	return p.starts[i+1] - p.starts[i]
}

// End returns the position just past item i.
func (p *Positions) End(i int) int {
	return p.Start(i) + p.Size(i)
}

// IndexAt returns the index of the item covering offset.
// Offsets before the first item return 0; offsets at or past the end
// return the last index. Returns 0 for an empty table.
func (p *Positions) IndexAt(offset int) int {
	count := p.Count()
	if count == 0 || offset <= 0 {
		return 0
	}
	if offset >= p.TotalSize() {
		return count - 1
	}
	// First item whose end lies past the offset.
	return sort.Search(count, func(i int) bool {
		return p.starts[i+1] > offset
	})
}
