package widgets

import (
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/state"
)

// Component is a base widget with a stable identity, bound services,
// and tracked subscriptions. The identity survives tree rebuilds so
// the screen can restore focus to the same widget.
type Component struct {
	Base
	Services runtime.Services
	Subs     state.Subscriptions

	id string
}

// WidgetID returns the component's stable identity, assigning one on
// first use.
func (c *Component) WidgetID() string {
	if c == nil {
		return ""
	}
	if c.id == "" {
		c.id = ulid.Make().String()
	}
	return c.id
}

// SetWidgetID overrides the generated identity. Use a fixed ID when a
// widget must keep focus across a full tree rebuild.
func (c *Component) SetWidgetID(id string) {
	if c == nil {
		return
	}
	c.id = id
}

// Bind attaches app services to the component.
func (c *Component) Bind(services runtime.Services) {
	c.Services = services
	c.Subs.SetScheduler(services.Scheduler())
}

// Unbind releases app services and subscriptions.
func (c *Component) Unbind() {
	c.Subs.Clear()
	c.Services = runtime.Services{}
}

// Invalidate requests a render pass.
func (c *Component) Invalidate() {
	c.Services.Invalidate()
}

// Observe registers a subscription using the default scheduler.
func (c *Component) Observe(sub state.Subscribable, fn func()) {
	c.Subs.Observe(sub, fn)
}

var _ runtime.Identifiable = (*Component)(nil)
var _ runtime.Bindable = (*Component)(nil)
var _ runtime.Unbindable = (*Component)(nil)
