package runtime

import "testing"

type fakeWidget struct {
	id       string
	focusOK  bool
	focused  bool
	mounted  bool
	children []Widget
	result   HandleResult
	bounds   Rect
}

func (f *fakeWidget) Measure(c Constraints) Size          { return Size{Width: 1, Height: 1} }
func (f *fakeWidget) Layout(bounds Rect)                  { f.bounds = bounds }
func (f *fakeWidget) Render(ctx RenderContext)            {}
func (f *fakeWidget) HandleMessage(Message) HandleResult  { return f.result }
func (f *fakeWidget) ChildWidgets() []Widget              { return f.children }
func (f *fakeWidget) CanFocus() bool                      { return f.focusOK }
func (f *fakeWidget) Focus()                              { f.focused = true }
func (f *fakeWidget) Blur()                               { f.focused = false }
func (f *fakeWidget) WidgetID() string                    { return f.id }
func (f *fakeWidget) Mount()                              { f.mounted = true }
func (f *fakeWidget) Unmount()                            { f.mounted = false }

func TestScreenSetRootLaysOutAndMounts(t *testing.T) {
	screen := NewScreen(40, 10)
	root := &fakeWidget{}
	screen.SetRoot(root)

	if root.bounds != (Rect{0, 0, 40, 10}) {
		t.Fatalf("root bounds = %+v", root.bounds)
	}
	if !root.mounted {
		t.Fatalf("root was not mounted")
	}

	screen.SetRoot(nil)
	if root.mounted {
		t.Fatalf("old root was not unmounted")
	}
}

func TestScreenFocusTraversal(t *testing.T) {
	first := &fakeWidget{id: "first", focusOK: true}
	second := &fakeWidget{id: "second", focusOK: true}
	skipped := &fakeWidget{id: "skipped"}
	root := &fakeWidget{children: []Widget{first, skipped, second}}

	screen := NewScreen(40, 10)
	screen.SetRoot(root)

	if !first.focused {
		t.Fatalf("first widget should be focused after SetRoot")
	}
	screen.FocusNext()
	if first.focused || !second.focused {
		t.Fatalf("focus did not advance to second widget")
	}
	screen.FocusNext()
	if !first.focused {
		t.Fatalf("focus did not wrap around to first widget")
	}
	screen.FocusPrev()
	if !second.focused {
		t.Fatalf("FocusPrev did not wrap backwards")
	}
}

func TestScreenFocusRestoreByID(t *testing.T) {
	first := &fakeWidget{id: "first", focusOK: true}
	second := &fakeWidget{id: "second", focusOK: true}
	root := &fakeWidget{children: []Widget{first, second}}

	screen := NewScreen(40, 10)
	screen.SetRoot(root)
	screen.FocusNext()
	if screen.FocusedID() != "second" {
		t.Fatalf("FocusedID() = %q, want second", screen.FocusedID())
	}

	// Rebuild the tree with the same IDs in a different order.
	newSecond := &fakeWidget{id: "second", focusOK: true}
	newFirst := &fakeWidget{id: "first", focusOK: true}
	screen.SetRoot(&fakeWidget{children: []Widget{newSecond, newFirst}})

	if !newSecond.focused {
		t.Fatalf("focus was not restored to the widget with the previous ID")
	}
	if newFirst.focused {
		t.Fatalf("stale focus on the wrong widget")
	}
}

func TestScreenHandleMessageConsumesFocusCommands(t *testing.T) {
	first := &fakeWidget{id: "a", focusOK: true}
	second := &fakeWidget{id: "b", focusOK: true}
	root := &fakeWidget{
		children: []Widget{first, second},
		result:   HandledWith(FocusNext{}, Quit{}),
	}

	screen := NewScreen(40, 10)
	screen.SetRoot(root)

	result := screen.HandleMessage(KeyMsg{Rune: 'x'})
	if !result.Handled {
		t.Fatalf("message should be handled")
	}
	if len(result.Commands) != 1 {
		t.Fatalf("commands = %v, want only Quit", result.Commands)
	}
	if _, ok := result.Commands[0].(Quit); !ok {
		t.Fatalf("remaining command = %T, want Quit", result.Commands[0])
	}
	if !second.focused {
		t.Fatalf("FocusNext command was not applied")
	}
}

func TestScreenResizeRelayout(t *testing.T) {
	root := &fakeWidget{}
	screen := NewScreen(40, 10)
	screen.SetRoot(root)

	screen.Resize(20, 5)
	if root.bounds != (Rect{0, 0, 20, 5}) {
		t.Fatalf("root bounds after resize = %+v", root.bounds)
	}
	if w, h := screen.Buffer().Size(); w != 20 || h != 5 {
		t.Fatalf("buffer size = %dx%d", w, h)
	}
}
