package widgets

import (
	"fmt"
	"strings"
	"testing"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
	"github.com/odvcencio/porthole/window"
)

func renderWidget(w runtime.Widget, width, height int) *runtime.Buffer {
	buf := runtime.NewBuffer(width, height)
	bounds := runtime.Rect{Width: width, Height: height}
	w.Layout(bounds)
	w.Render(runtime.RenderContext{Buffer: buf, Focused: true, Bounds: bounds})
	return buf
}

func bufferRow(buf *runtime.Buffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

func newTestList(count int) *VirtualList[string] {
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	adapter := NewSliceAdapter(items, func(item string, index int, selected bool, ctx runtime.RenderContext) {
		prefix := "  "
		if selected {
			prefix = "> "
		}
		ctx.Buffer.SetString(ctx.Bounds.X, ctx.Bounds.Y, prefix+item, backend.DefaultStyle())
	})
	return NewVirtualList[string](adapter)
}

func TestVirtualListRendersVisibleBand(t *testing.T) {
	list := newTestList(10_000)
	list.SetShowScrollbar(false)
	buf := renderWidget(list, 20, 5)

	if got := bufferRow(buf, 0); got != "> item 0" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := bufferRow(buf, 4); got != "  item 4" {
		t.Fatalf("row 4 = %q", got)
	}
}

func TestVirtualListScrollOffset(t *testing.T) {
	list := newTestList(10_000)
	list.SetShowScrollbar(false)
	list.Layout(runtime.Rect{Width: 20, Height: 5})
	list.ScrollBy(100)

	buf := runtime.NewBuffer(20, 5)
	list.Render(runtime.RenderContext{Buffer: buf, Bounds: runtime.Rect{Width: 20, Height: 5}})
	if got := bufferRow(buf, 0); got != "  item 100" {
		t.Fatalf("row 0 after scroll = %q", got)
	}
	if got := list.Offset(); got != 100 {
		t.Fatalf("Offset() = %d", got)
	}
}

func TestVirtualListSelectionFollowsKeys(t *testing.T) {
	list := newTestList(50)
	list.Layout(runtime.Rect{Width: 20, Height: 5})
	list.Focus()

	for i := 0; i < 7; i++ {
		result := list.HandleMessage(runtime.KeyMsg{Key: terminal.KeyDown})
		if !result.Handled {
			t.Fatalf("KeyDown not handled at step %d", i)
		}
	}
	if got := list.SelectedIndex(); got != 7 {
		t.Fatalf("SelectedIndex() = %d, want 7", got)
	}
	// Selection scrolled into view: rows 3..7 visible.
	if got := list.Offset(); got != 3 {
		t.Fatalf("Offset() = %d, want 3", got)
	}

	list.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnd})
	if got := list.SelectedIndex(); got != 49 {
		t.Fatalf("SelectedIndex() after End = %d", got)
	}
	if got := list.Offset(); got != 45 {
		t.Fatalf("Offset() after End = %d, want 45", got)
	}

	list.HandleMessage(runtime.KeyMsg{Key: terminal.KeyHome})
	if got := list.Offset(); got != 0 {
		t.Fatalf("Offset() after Home = %d", got)
	}
}

func TestVirtualListUnfocusedIgnoresKeys(t *testing.T) {
	list := newTestList(50)
	list.Layout(runtime.Rect{Width: 20, Height: 5})

	result := list.HandleMessage(runtime.KeyMsg{Key: terminal.KeyDown})
	if result.Handled {
		t.Fatalf("unfocused list handled a key")
	}
}

func TestVirtualListEnterFiresOnSelect(t *testing.T) {
	list := newTestList(50)
	list.Layout(runtime.Rect{Width: 20, Height: 5})
	list.Focus()

	var gotIndex int
	var gotItem string
	list.OnSelect(func(index int, item string) {
		gotIndex = index
		gotItem = item
	})
	list.Select(3)
	list.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})

	if gotIndex != 3 || gotItem != "item 3" {
		t.Fatalf("OnSelect got (%d, %q)", gotIndex, gotItem)
	}
}

func TestVirtualListWheelScrolls(t *testing.T) {
	list := newTestList(100)
	list.Layout(runtime.Rect{Width: 20, Height: 5})

	list.HandleMessage(runtime.MouseMsg{X: 5, Y: 2, Button: terminal.MouseWheelDown, Action: terminal.MousePress})
	if got := list.Offset(); got != 3 {
		t.Fatalf("Offset() after wheel = %d, want 3", got)
	}
	list.HandleMessage(runtime.MouseMsg{X: 5, Y: 2, Button: terminal.MouseWheelUp, Action: terminal.MousePress})
	if got := list.Offset(); got != 0 {
		t.Fatalf("Offset() after wheel up = %d, want 0", got)
	}

	// Wheel outside the bounds is ignored.
	list.HandleMessage(runtime.MouseMsg{X: 50, Y: 50, Button: terminal.MouseWheelDown, Action: terminal.MousePress})
	if got := list.Offset(); got != 0 {
		t.Fatalf("Offset() after outside wheel = %d, want 0", got)
	}
}

func TestVirtualListClickSelects(t *testing.T) {
	list := newTestList(100)
	list.Layout(runtime.Rect{Width: 20, Height: 5})
	list.ScrollBy(10)

	result := list.HandleMessage(runtime.MouseMsg{X: 3, Y: 2, Button: terminal.MouseLeft, Action: terminal.MousePress})
	if !result.Handled {
		t.Fatalf("click not handled")
	}
	if got := list.SelectedIndex(); got != 12 {
		t.Fatalf("SelectedIndex() after click = %d, want 12", got)
	}
}

func TestVirtualListScrollToIndex(t *testing.T) {
	list := newTestList(1000)
	list.Layout(runtime.Rect{Width: 20, Height: 10})

	list.ScrollToIndex(500, window.AlignStart)
	if got := list.Offset(); got != 500 {
		t.Fatalf("AlignStart offset = %d, want 500", got)
	}
	list.ScrollToIndex(500, window.AlignCenter)
	if got := list.Offset(); got != 496 {
		t.Fatalf("AlignCenter offset = %d, want 496", got)
	}
	list.ScrollToIndex(500, window.AlignEnd)
	if got := list.Offset(); got != 491 {
		t.Fatalf("AlignEnd offset = %d, want 491", got)
	}
}

func TestVirtualListVariableHeights(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	adapter := NewSliceAdapter(items, func(item string, index int, selected bool, ctx runtime.RenderContext) {
		ctx.Buffer.SetString(ctx.Bounds.X, ctx.Bounds.Y, item, backend.DefaultStyle())
	})
	adapter.SetHeightFunc(func(index int) int { return index + 1 })

	list := NewVirtualList[string](adapter)
	buf := renderWidget(list, 10, 10)

	// Heights 1,2,3,4: items start at rows 0,1,3,6.
	for row, want := range map[int]string{0: "a", 1: "b", 3: "c", 6: "d"} {
		if got := bufferRow(buf, row); got != want {
			t.Fatalf("row %d = %q, want %q", row, got, want)
		}
	}
}

func TestVirtualListCountChangePickedUp(t *testing.T) {
	adapter := NewSliceAdapter([]string{"a", "b"}, func(item string, index int, selected bool, ctx runtime.RenderContext) {
		ctx.Buffer.SetString(ctx.Bounds.X, ctx.Bounds.Y, item, backend.DefaultStyle())
	})
	list := NewVirtualList[string](adapter)
	list.Layout(runtime.Rect{Width: 10, Height: 5})
	list.Select(1)

	adapter.SetItems([]string{"a"})
	buf := runtime.NewBuffer(10, 5)
	list.Render(runtime.RenderContext{Buffer: buf, Bounds: runtime.Rect{Width: 10, Height: 5}})

	if got := list.SelectedIndex(); got != 0 {
		t.Fatalf("SelectedIndex() after shrink = %d, want 0", got)
	}
	if got := bufferRow(buf, 1); got != "" {
		t.Fatalf("row 1 after shrink = %q, want empty", got)
	}
}

func TestVirtualListThumbDrag(t *testing.T) {
	list := newTestList(100)
	list.Layout(runtime.Rect{X: 0, Y: 0, Width: 20, Height: 10})

	// Grab the thumb at the top and drag to the bottom row.
	list.HandleMessage(runtime.MouseMsg{X: 19, Y: 0, Button: terminal.MouseLeft, Action: terminal.MousePress})
	list.HandleMessage(runtime.MouseMsg{X: 19, Y: 9, Action: terminal.MouseMove})
	list.HandleMessage(runtime.MouseMsg{X: 19, Y: 9, Button: terminal.MouseLeft, Action: terminal.MouseRelease})

	if got := list.Offset(); got != 90 {
		t.Fatalf("Offset() after drag to bottom = %d, want 90", got)
	}
}

func TestVirtualListEmptyAdapter(t *testing.T) {
	list := newTestList(0)
	buf := renderWidget(list, 10, 5)
	if got := bufferRow(buf, 0); got != "" {
		t.Fatalf("row 0 for empty list = %q", got)
	}
	list.Focus()
	if result := list.HandleMessage(runtime.KeyMsg{Key: terminal.KeyDown}); result.Handled {
		t.Fatalf("empty list handled a key")
	}
}
