package state

// Computed derives its value from other reactive sources.
// It recomputes when any dependency notifies.
type Computed[T any] struct {
	signal  *Signal[T]
	compute func() T
	unsubs  []func()
}

// NewComputed creates a derived value that recomputes synchronously.
func NewComputed[T any](compute func() T, deps ...Subscribable) *Computed[T] {
	return NewComputedWithScheduler(nil, compute, deps...)
}

// NewComputedWithScheduler creates a derived value whose recomputes are
// dispatched through scheduler.
func NewComputedWithScheduler[T any](scheduler Scheduler, compute func() T, deps ...Subscribable) *Computed[T] {
	if compute == nil {
		compute = func() T {
			var zero T
			return zero
		}
	}
	c := &Computed[T]{
		signal:  NewSignal(compute()),
		compute: compute,
	}
	recompute := func() {
		c.signal.Set(c.compute())
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		var unsub func()
		if scheduler != nil {
			unsub = dep.Subscribe(func() { scheduler.Schedule(recompute) })
		} else {
			unsub = dep.Subscribe(recompute)
		}
		if unsub != nil {
			c.unsubs = append(c.unsubs, unsub)
		}
	}
	return c
}

// SetEqualFunc configures the equality check used to suppress
// redundant notifications.
func (c *Computed[T]) SetEqualFunc(fn EqualFunc[T]) {
	if c == nil {
		return
	}
	c.signal.SetEqualFunc(fn)
}

// Get returns the current derived value.
func (c *Computed[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.signal.Get()
}

// Subscribe registers a listener for recomputed values.
func (c *Computed[T]) Subscribe(fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.signal.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener dispatched through scheduler.
func (c *Computed[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.signal.SubscribeWithScheduler(scheduler, fn)
}

// Close detaches the computed from its dependencies.
func (c *Computed[T]) Close() {
	if c == nil {
		return
	}
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
}

var _ Readable[int] = (*Computed[int])(nil)
