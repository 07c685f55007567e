package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/terminal"
	"github.com/odvcencio/porthole/window"
)

// span is a run of text in one style.
type span struct {
	text  string
	style backend.Style
}

// styledLine is one display line of styled spans.
type styledLine []span

// lineView scrolls a slab of styled lines. SourceView and MarkdownView
// embed it and fill in the lines.
type lineView struct {
	Component
	lines   []styledLine
	win     *window.Window
	tracker *window.Tracker
	offset  int

	style      backend.Style
	trackStyle backend.Style
	thumbStyle backend.Style

	wheelStep int
	scrollbar bool
}

func (v *lineView) init() {
	v.win = window.New(0, window.FixedSizer(1))
	v.style = backend.DefaultStyle()
	v.trackStyle = backend.DefaultStyle()
	v.thumbStyle = backend.DefaultStyle().Reverse(true)
	v.wheelStep = 3
	v.scrollbar = true
	v.tracker = window.NewTracker(func(window.Phase) {
		v.Invalidate()
	})
}

func (v *lineView) setLines(lines []styledLine) {
	v.lines = lines
	v.win.Reset(len(lines), window.FixedSizer(1))
	v.offset = v.win.ClampOffset(v.offset, v.bounds.Height)
}

// CanFocus returns true.
func (v *lineView) CanFocus() bool {
	return true
}

// LineCount returns the number of display lines.
func (v *lineView) LineCount() int {
	if v == nil {
		return 0
	}
	return len(v.lines)
}

// Offset returns the first visible line.
func (v *lineView) Offset() int {
	if v == nil {
		return 0
	}
	return v.offset
}

// Tracker returns the scroll phase tracker.
func (v *lineView) Tracker() *window.Tracker {
	if v == nil {
		return nil
	}
	return v.tracker
}

// ScrollToLine scrolls so the line lands at the given alignment.
func (v *lineView) ScrollToLine(line int, align window.Alignment) {
	if v == nil {
		return
	}
	v.setOffset(v.win.OffsetForIndex(line, v.bounds.Height, align))
}

// ScrollBy scrolls the view by a line delta.
func (v *lineView) ScrollBy(lines int) {
	if v == nil {
		return
	}
	v.setOffset(v.offset + lines)
}

func (v *lineView) setOffset(offset int) {
	next := v.win.ClampOffset(offset, v.bounds.Height)
	if next == v.offset {
		return
	}
	v.offset = next
	v.tracker.Touch()
	v.Invalidate()
}

// Measure returns the desired size.
func (v *lineView) Measure(constraints runtime.Constraints) runtime.Size {
	if v == nil {
		return constraints.MinSize()
	}
	height := min(len(v.lines), constraints.MaxHeight)
	if height <= 0 {
		height = constraints.MinHeight
	}
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: height})
}

// Layout stores bounds and re-clamps the offset.
func (v *lineView) Layout(bounds runtime.Rect) {
	v.Base.Layout(bounds)
	v.offset = v.win.ClampOffset(v.offset, bounds.Height)
}

// Render draws the visible lines and the scrollbar.
func (v *lineView) Render(ctx runtime.RenderContext) {
	if v == nil {
		return
	}
	bounds := v.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(bounds, ' ', v.style)

	width := bounds.Width
	if v.scrollbarVisible() {
		width--
	}
	for _, item := range v.win.Items(v.offset, bounds.Height) {
		y := item.Start - v.offset
		if y < 0 || y >= bounds.Height {
			continue
		}
		v.renderLine(ctx, v.lines[item.Index], bounds.X, bounds.Y+y, width)
	}
	v.drawScrollbar(ctx)
}

func (v *lineView) renderLine(ctx runtime.RenderContext, line styledLine, x, y, width int) {
	col := 0
	for _, sp := range line {
		for _, r := range sp.text {
			if col >= width {
				return
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			ctx.Buffer.Set(x+col, y, r, sp.style)
			col += w
		}
	}
}

func (v *lineView) scrollbarVisible() bool {
	return v.scrollbar && len(v.lines) > v.bounds.Height && v.bounds.Width > 1
}

func (v *lineView) drawScrollbar(ctx runtime.RenderContext) {
	if !v.scrollbarVisible() {
		return
	}
	bounds := v.bounds
	x := bounds.X + bounds.Width - 1
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		ctx.Buffer.Set(x, y, '│', v.trackStyle)
	}
	view := bounds.Height
	total := len(v.lines)
	size := view * view / total
	if size < 1 {
		size = 1
	}
	if size > view {
		size = view
	}
	start := 0
	if maxOffset := total - view; maxOffset > 0 {
		start = v.offset * (view - size) / maxOffset
	}
	for i := 0; i < size; i++ {
		ctx.Buffer.Set(x, bounds.Y+start+i, '█', v.thumbStyle)
	}
}

// HandleMessage handles scrolling input.
func (v *lineView) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if v == nil {
		return runtime.Unhandled()
	}
	switch ev := msg.(type) {
	case runtime.KeyMsg:
		if !v.focused {
			return runtime.Unhandled()
		}
		switch ev.Key {
		case terminal.KeyUp:
			v.ScrollBy(-1)
			return runtime.Handled()
		case terminal.KeyDown:
			v.ScrollBy(1)
			return runtime.Handled()
		case terminal.KeyPageUp:
			v.ScrollBy(-max(1, v.bounds.Height))
			return runtime.Handled()
		case terminal.KeyPageDown:
			v.ScrollBy(max(1, v.bounds.Height))
			return runtime.Handled()
		case terminal.KeyHome:
			v.setOffset(0)
			return runtime.Handled()
		case terminal.KeyEnd:
			v.setOffset(len(v.lines))
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		if !v.bounds.Contains(ev.X, ev.Y) {
			return runtime.Unhandled()
		}
		switch ev.Button {
		case terminal.MouseWheelUp:
			v.ScrollBy(-v.wheelStep)
			return runtime.Handled()
		case terminal.MouseWheelDown:
			v.ScrollBy(v.wheelStep)
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

// Unmount stops the scroll tracker.
func (v *lineView) Unmount() {
	if v == nil {
		return
	}
	v.tracker.Stop()
}

// Mount is a no-op; it pairs with Unmount for the lifecycle interface.
func (v *lineView) Mount() {}
