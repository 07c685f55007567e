package runtime

// Invalidator coalesces render requests into a single InvalidateMsg
// per loop iteration.
type Invalidator struct {
	waker
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post func(Message) bool) *Invalidator {
	inv := &Invalidator{}
	inv.waker = waker{post: post, msg: InvalidateMsg{}}
	return inv
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil {
		return
	}
	i.wake()
}

// Schedule runs fn and requests a render pass.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.ack()
}
