package widgets

import (
	"fmt"
	"testing"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
)

// tallWidget renders numbered lines at a fixed content size.
type tallWidget struct {
	Base
	width, height int
}

func (w *tallWidget) Measure(runtime.Constraints) runtime.Size {
	return runtime.Size{Width: w.width, Height: w.height}
}

func (w *tallWidget) Render(ctx runtime.RenderContext) {
	for y := 0; y < w.height; y++ {
		ctx.Buffer.SetString(0, y, fmt.Sprintf("line %d", y), backend.DefaultStyle())
	}
}

func newTestScrollView(contentW, contentH int) (*ScrollView, *tallWidget) {
	content := &tallWidget{width: contentW, height: contentH}
	view := NewScrollView(content)
	return view, content
}

func TestScrollViewBlitsVisibleWindow(t *testing.T) {
	view, _ := newTestScrollView(10, 100)
	view.SetPolicies(ScrollNever, ScrollNever)
	view.Measure(runtime.Unbounded())
	buf := renderWidget(view, 12, 5)

	if got := bufferRow(buf, 0); got != "line 0" {
		t.Fatalf("row 0 = %q", got)
	}

	view.Viewport().ScrollTo(0, 42)
	buf = runtime.NewBuffer(12, 5)
	view.Render(runtime.RenderContext{Buffer: buf, Bounds: runtime.Rect{Width: 12, Height: 5}})
	if got := bufferRow(buf, 0); got != "line 42" {
		t.Fatalf("row 0 after scroll = %q", got)
	}
	if got := bufferRow(buf, 4); got != "line 46" {
		t.Fatalf("row 4 after scroll = %q", got)
	}
}

func TestScrollViewPinsGreedyContentToView(t *testing.T) {
	// SourceView expands to whatever width it is offered, so the
	// recorded content width must pin to the view instead of the
	// unbounded measuring limit.
	view := NewScrollView(NewSourceView("package main\n\nfunc main() {}\n", "go"))
	view.Measure(runtime.Unbounded())
	buf := renderWidget(view, 20, 5)

	cw, _ := view.Viewport().ContentSize()
	if cw != 20 {
		t.Fatalf("content width = %d, want 20", cw)
	}
	if got := bufferRow(buf, 0); got != "package main" {
		t.Fatalf("row 0 = %q", got)
	}
}

func TestScrollViewKeysScroll(t *testing.T) {
	view, _ := newTestScrollView(10, 100)
	view.Measure(runtime.Unbounded())
	view.Layout(runtime.Rect{Width: 12, Height: 5})
	view.Focus()

	view.HandleMessage(runtime.KeyMsg{Key: terminal.KeyPageDown})
	if got := view.Viewport().Offset().Y; got != 5 {
		t.Fatalf("offset after PageDown = %d, want 5", got)
	}
	view.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnd})
	if got := view.Viewport().Offset().Y; got != 95 {
		t.Fatalf("offset after End = %d, want 95", got)
	}
	view.HandleMessage(runtime.KeyMsg{Key: terminal.KeyHome})
	if got := view.Viewport().Offset().Y; got != 0 {
		t.Fatalf("offset after Home = %d, want 0", got)
	}
}

func TestScrollViewWheel(t *testing.T) {
	view, _ := newTestScrollView(10, 100)
	view.Measure(runtime.Unbounded())
	view.Layout(runtime.Rect{Width: 12, Height: 5})

	view.HandleMessage(runtime.MouseMsg{X: 2, Y: 2, Button: terminal.MouseWheelDown, Action: terminal.MousePress})
	if got := view.Viewport().Offset().Y; got != 3 {
		t.Fatalf("offset after wheel = %d, want 3", got)
	}
}

func TestScrollViewThumbDrag(t *testing.T) {
	view, _ := newTestScrollView(10, 105)
	view.Measure(runtime.Unbounded())
	view.Layout(runtime.Rect{Width: 12, Height: 5})

	// Thumb is 1 row tall; drag it from the top to the bottom row.
	view.HandleMessage(runtime.MouseMsg{X: 11, Y: 0, Button: terminal.MouseLeft, Action: terminal.MousePress})
	view.HandleMessage(runtime.MouseMsg{X: 11, Y: 4, Action: terminal.MouseMove})
	view.HandleMessage(runtime.MouseMsg{X: 11, Y: 4, Button: terminal.MouseLeft, Action: terminal.MouseRelease})

	if got := view.Viewport().Offset().Y; got != 100 {
		t.Fatalf("offset after drag = %d, want 100", got)
	}
}

func TestScrollViewContentHandlesFirst(t *testing.T) {
	view, _ := newTestScrollView(10, 100)
	view.Measure(runtime.Unbounded())
	view.Layout(runtime.Rect{Width: 12, Height: 5})
	view.Focus()

	// tallWidget ignores everything, so the view scrolls.
	result := view.HandleMessage(runtime.KeyMsg{Key: terminal.KeyDown})
	if !result.Handled {
		t.Fatalf("KeyDown not handled")
	}
	if got := view.Viewport().Offset().Y; got != 1 {
		t.Fatalf("offset = %d, want 1", got)
	}
}
