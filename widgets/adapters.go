package widgets

import (
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/state"
)

// RenderFunc renders an item into its row context.
type RenderFunc[T any] func(item T, index int, selected bool, ctx runtime.RenderContext)

// HeightFunc reports the height in rows of an item.
type HeightFunc func(index int) int

// ListAdapter provides data for virtualized list widgets.
type ListAdapter[T any] interface {
	Count() int
	Item(index int) T
	ItemHeight(index int) int
	Render(item T, index int, selected bool, ctx runtime.RenderContext)
}

// SliceAdapter adapts a slice to a ListAdapter. Items are one row tall
// unless a height function is set.
type SliceAdapter[T any] struct {
	items  []T
	render RenderFunc[T]
	height HeightFunc
}

// NewSliceAdapter creates a slice adapter.
func NewSliceAdapter[T any](items []T, render RenderFunc[T]) *SliceAdapter[T] {
	return &SliceAdapter[T]{items: items, render: render}
}

// SetHeightFunc sets per-item heights.
func (s *SliceAdapter[T]) SetHeightFunc(fn HeightFunc) {
	if s == nil {
		return
	}
	s.height = fn
}

// SetItems replaces the backing slice.
func (s *SliceAdapter[T]) SetItems(items []T) {
	if s == nil {
		return
	}
	s.items = items
}

// Count returns the item count.
func (s *SliceAdapter[T]) Count() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Item returns the item at index.
func (s *SliceAdapter[T]) Item(index int) T {
	var zero T
	if s == nil || index < 0 || index >= len(s.items) {
		return zero
	}
	return s.items[index]
}

// ItemHeight returns the height of the item at index.
func (s *SliceAdapter[T]) ItemHeight(index int) int {
	if s == nil || s.height == nil {
		return 1
	}
	return s.height(index)
}

// Render renders the item.
func (s *SliceAdapter[T]) Render(item T, index int, selected bool, ctx runtime.RenderContext) {
	if s == nil || s.render == nil {
		return
	}
	s.render(item, index, selected, ctx)
}

// SignalAdapter adapts a signal slice to a ListAdapter.
type SignalAdapter[T any] struct {
	items  *state.Signal[[]T]
	render RenderFunc[T]
	height HeightFunc
}

// NewSignalAdapter creates a signal adapter.
func NewSignalAdapter[T any](items *state.Signal[[]T], render RenderFunc[T]) *SignalAdapter[T] {
	return &SignalAdapter[T]{items: items, render: render}
}

// SetHeightFunc sets per-item heights.
func (s *SignalAdapter[T]) SetHeightFunc(fn HeightFunc) {
	if s == nil {
		return
	}
	s.height = fn
}

// Signal returns the backing signal for subscription.
func (s *SignalAdapter[T]) Signal() *state.Signal[[]T] {
	if s == nil {
		return nil
	}
	return s.items
}

// Count returns the item count.
func (s *SignalAdapter[T]) Count() int {
	if s == nil || s.items == nil {
		return 0
	}
	return len(s.items.Get())
}

// Item returns an item.
func (s *SignalAdapter[T]) Item(index int) T {
	var zero T
	if s == nil || s.items == nil {
		return zero
	}
	items := s.items.Get()
	if index < 0 || index >= len(items) {
		return zero
	}
	return items[index]
}

// ItemHeight returns the height of the item at index.
func (s *SignalAdapter[T]) ItemHeight(index int) int {
	if s == nil || s.height == nil {
		return 1
	}
	return s.height(index)
}

// Render draws an item.
func (s *SignalAdapter[T]) Render(item T, index int, selected bool, ctx runtime.RenderContext) {
	if s == nil || s.render == nil {
		return
	}
	s.render(item, index, selected, ctx)
}

// FuncAdapter adapts callbacks to a ListAdapter, for data too large or
// remote to hold in a slice.
type FuncAdapter[T any] struct {
	CountFunc  func() int
	ItemFunc   func(index int) T
	HeightFunc HeightFunc
	RenderFunc RenderFunc[T]
}

// Count returns the item count.
func (f *FuncAdapter[T]) Count() int {
	if f == nil || f.CountFunc == nil {
		return 0
	}
	return f.CountFunc()
}

// Item returns an item.
func (f *FuncAdapter[T]) Item(index int) T {
	var zero T
	if f == nil || f.ItemFunc == nil {
		return zero
	}
	return f.ItemFunc(index)
}

// ItemHeight returns the height of the item at index.
func (f *FuncAdapter[T]) ItemHeight(index int) int {
	if f == nil || f.HeightFunc == nil {
		return 1
	}
	return f.HeightFunc(index)
}

// Render draws an item.
func (f *FuncAdapter[T]) Render(item T, index int, selected bool, ctx runtime.RenderContext) {
	if f == nil || f.RenderFunc == nil {
		return
	}
	f.RenderFunc(item, index, selected, ctx)
}
