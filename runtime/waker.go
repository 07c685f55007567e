package runtime

import "sync/atomic"

// waker posts one wake message into the app loop and swallows repeat
// requests until the loop acknowledges it. Both render invalidation
// and state-queue flushing ride on this so a burst of signal writes
// costs a single loop iteration.
type waker struct {
	post    func(Message) bool
	msg     Message
	pending atomic.Bool
}

// wake posts the message unless one is already in flight. A failed
// post clears pending so a later wake can retry.
func (w *waker) wake() {
	if w == nil || w.post == nil {
		return
	}
	if w.pending.CompareAndSwap(false, true) {
		if !w.post(w.msg) {
			w.pending.Store(false)
		}
	}
}

// ack clears the in-flight flag. The app loop calls this when it
// consumes the wake message.
func (w *waker) ack() {
	if w == nil {
		return
	}
	w.pending.Store(false)
}
