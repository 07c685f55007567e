package runtime

// Widget is a renderable element in the tree.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// HandleResult reports how a widget handled a message.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled marks a message as consumed.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// HandledWith marks a message as consumed and emits commands.
func HandledWith(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}

// Unhandled passes a message on.
func Unhandled() HandleResult {
	return HandleResult{}
}

// ChildProvider exposes a widget's children for tree walks.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes a widget's laid-out bounds.
type BoundsProvider interface {
	Bounds() Rect
}

// Focusable widgets participate in focus traversal.
type Focusable interface {
	CanFocus() bool
	Focus()
	Blur()
}

// Identifiable widgets carry a stable identity used to restore focus
// when the tree is rebuilt.
type Identifiable interface {
	WidgetID() string
}

// Lifecycle is implemented by widgets needing mount/unmount hooks.
type Lifecycle interface {
	Mount()
	Unmount()
}

// Bindable widgets receive app services when mounted into a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when removed.
type Unbindable interface {
	Unbind()
}

// MountTree calls Mount on widgets that implement Lifecycle, parents first.
func MountTree(root Widget) {
	walkTree(root, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Mount()
		}
	}, nil)
}

// UnmountTree calls Unmount on widgets that implement Lifecycle, children first.
func UnmountTree(root Widget) {
	walkTree(root, nil, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Unmount()
		}
	})
}

// BindTree calls Bind on widgets that implement Bindable.
func BindTree(root Widget, services Services) {
	if services.isZero() {
		return
	}
	walkTree(root, func(w Widget) {
		if b, ok := w.(Bindable); ok {
			b.Bind(services)
		}
	}, nil)
}

// UnbindTree calls Unbind on widgets that implement Unbindable.
func UnbindTree(root Widget) {
	walkTree(root, nil, func(w Widget) {
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

func walkTree(w Widget, pre, post func(Widget)) {
	if w == nil {
		return
	}
	if pre != nil {
		pre(w)
	}
	if container, ok := w.(ChildProvider); ok {
		for _, child := range container.ChildWidgets() {
			walkTree(child, pre, post)
		}
	}
	if post != nil {
		post(w)
	}
}
