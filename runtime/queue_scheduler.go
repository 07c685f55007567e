package runtime

import "github.com/odvcencio/porthole/state"

// QueueScheduler enqueues callbacks and wakes the app to flush them.
type QueueScheduler struct {
	queue *state.Queue
	waker
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	s := &QueueScheduler{queue: queue}
	s.waker = waker{post: post, msg: QueueFlushMsg{}}
	return s
}

// Schedule enqueues the callback and posts a flush message.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || s.queue == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	s.wake()
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.ack()
}

var _ state.Scheduler = (*QueueScheduler)(nil)
