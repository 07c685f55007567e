package widgets

import (
	"fmt"
	"testing"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
)

func newTestGrid(count int) *VirtualGrid[string] {
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf("t%d", i)
	}
	adapter := NewSliceGridAdapter(items, func(item string, index int, selected bool, ctx runtime.RenderContext) {
		style := backend.DefaultStyle()
		if selected {
			style = style.Reverse(true)
		}
		ctx.Buffer.SetString(ctx.Bounds.X, ctx.Bounds.Y, item, style)
	})
	// 4x2 tiles with a 1-cell gap.
	return NewVirtualGrid[string](adapter, 4, 2, 1)
}

func TestVirtualGridLaysOutTiles(t *testing.T) {
	grid := newTestGrid(10)
	grid.SetOverscan(0)
	grid.SetShowScrollbar(false)
	buf := renderWidget(grid, 14, 8)

	// 14 wide: 3 columns of width-4 tiles with 1 gap, (14+1)/5 = 3.
	if got := grid.Columns(); got != 3 {
		t.Fatalf("Columns() = %d", got)
	}
	if got := bufferRow(buf, 0); got != "t0   t1   t2" {
		t.Fatalf("row 0 = %q", got)
	}
	// Row stride is 3: tile row 1 starts at display row 3.
	if got := bufferRow(buf, 3); got != "t3   t4   t5" {
		t.Fatalf("row 3 = %q", got)
	}
}

func TestVirtualGridNoScrollbarWhenFits(t *testing.T) {
	grid := newTestGrid(4)
	buf := renderWidget(grid, 15, 10)

	if got := grid.Columns(); got != 3 {
		t.Fatalf("Columns() = %d, want 3 without scrollbar", got)
	}
	w, _ := buf.Size()
	for y := 0; y < 10; y++ {
		if buf.Get(w-1, y).Rune == '│' {
			t.Fatalf("scrollbar drawn for content that fits")
		}
	}
}

func TestVirtualGridZeroItems(t *testing.T) {
	grid := newTestGrid(0)
	buf := renderWidget(grid, 14, 8)
	if got := bufferRow(buf, 0); got != "" {
		t.Fatalf("row 0 for empty grid = %q", got)
	}
	grid.Focus()
	if result := grid.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRight}); result.Handled {
		t.Fatalf("empty grid handled a key")
	}
}

func TestVirtualGridArrowNavigation(t *testing.T) {
	grid := newTestGrid(20)
	grid.Layout(runtime.Rect{Width: 14, Height: 8})
	grid.Focus()

	grid.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRight})
	if got := grid.SelectedIndex(); got != 1 {
		t.Fatalf("SelectedIndex() after right = %d", got)
	}
	grid.HandleMessage(runtime.KeyMsg{Key: terminal.KeyDown})
	if got := grid.SelectedIndex(); got != 3 {
		t.Fatalf("SelectedIndex() after down = %d, want 3 (one row of 2 cols)", got)
	}
	grid.HandleMessage(runtime.KeyMsg{Key: terminal.KeyUp})
	if got := grid.SelectedIndex(); got != 1 {
		t.Fatalf("SelectedIndex() after up = %d", got)
	}
}

func TestVirtualGridSelectionScrollsIntoView(t *testing.T) {
	grid := newTestGrid(40)
	grid.Layout(runtime.Rect{Width: 14, Height: 8})
	grid.Focus()

	grid.Select(19) // row 9 of 2-col grid, stride 3: top row 27
	if got := grid.Offset(); got != 21 {
		t.Fatalf("Offset() = %d, want 21 (bottom 29 minus view 8)", got)
	}
	grid.Select(0)
	if got := grid.Offset(); got != 0 {
		t.Fatalf("Offset() after Select(0) = %d", got)
	}
}

func TestVirtualGridClickSelects(t *testing.T) {
	grid := newTestGrid(20)
	grid.Layout(runtime.Rect{Width: 14, Height: 8})

	// Tile (row 1, col 1) occupies x 5..8, y 3..4.
	result := grid.HandleMessage(runtime.MouseMsg{X: 5, Y: 3, Button: terminal.MouseLeft, Action: terminal.MousePress})
	if !result.Handled {
		t.Fatalf("click not handled")
	}
	if got := grid.SelectedIndex(); got != 3 {
		t.Fatalf("SelectedIndex() = %d, want 3", got)
	}

	// Clicks in the gap select nothing.
	before := grid.SelectedIndex()
	result = grid.HandleMessage(runtime.MouseMsg{X: 4, Y: 3, Button: terminal.MouseLeft, Action: terminal.MousePress})
	if result.Handled {
		t.Fatalf("gap click was handled")
	}
	if grid.SelectedIndex() != before {
		t.Fatalf("gap click moved selection")
	}
}

func TestVirtualGridWheelScrolls(t *testing.T) {
	grid := newTestGrid(40)
	grid.Layout(runtime.Rect{Width: 14, Height: 8})

	grid.HandleMessage(runtime.MouseMsg{X: 5, Y: 4, Button: terminal.MouseWheelDown, Action: terminal.MousePress})
	if got := grid.Offset(); got != 3 {
		t.Fatalf("Offset() after wheel = %d, want 3", got)
	}
}
