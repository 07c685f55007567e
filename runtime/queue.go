package runtime

import "github.com/odvcencio/porthole/state"

// QueueFlushPolicy configures when the app flushes state queues.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes on any message or tick.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage flushes on messages except TickMsg.
	FlushOnMessage
	// FlushOnTick flushes only on TickMsg.
	FlushOnTick
	// FlushManual flushes only on QueueFlushMsg.
	FlushManual
)

// shouldFlush reports whether msg triggers a flush under this policy.
// A QueueFlushMsg flushes under every policy.
func (p QueueFlushPolicy) shouldFlush(msg Message) bool {
	if _, ok := msg.(QueueFlushMsg); ok {
		return true
	}
	if p == FlushManual {
		return false
	}
	_, isTick := msg.(TickMsg)
	switch p {
	case FlushOnMessage:
		return !isTick
	case FlushOnTick:
		return isTick
	default:
		return true
	}
}

// WithQueue wraps update to flush the queue on ticks and explicit requests.
// If update is nil, DefaultUpdate is used.
func WithQueue(queue *state.Queue, update UpdateFunc) UpdateFunc {
	return WithQueuePolicy(queue, FlushOnTick, update)
}

// WithQueuePolicy wraps update to flush the queue based on policy.
// If update is nil, DefaultUpdate is used.
func WithQueuePolicy(queue *state.Queue, policy QueueFlushPolicy, update UpdateFunc) UpdateFunc {
	if update == nil {
		update = DefaultUpdate
	}
	return func(app *App, msg Message) bool {
		dirty := update(app, msg)
		if queue == nil {
			return dirty
		}
		if policy.shouldFlush(msg) && queue.Flush() > 0 {
			dirty = true
		}
		return dirty
	}
}
