// Package backend abstracts the terminal surface widgets render to.
package backend

import "github.com/odvcencio/porthole/terminal"

// Backend is a drawable terminal surface with an input event source.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, r rune, comb []rune, style Style)
	Show()
	HideCursor()
	PollEvent() terminal.Event
}

// RowWriter is an optional optimization for bulk row updates.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}

// RectWriter is an optional optimization for bulk rectangle updates.
// The cells slice is row-major and must have width*height entries.
type RectWriter interface {
	SetRect(x, y, width, height int, cells []Cell)
}

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style Style
}
