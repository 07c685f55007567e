package runtime

import (
	"time"

	"github.com/odvcencio/porthole/state"
)

// Services is the bundle of app-level hooks handed to bindable
// widgets. It carries the concrete schedulers and loop entry points
// rather than the app itself, so widgets cannot reach into the loop.
// The zero value is inert.
type Services struct {
	scheduler   *QueueScheduler
	invalidator *Invalidator
	post        func(Message) bool
	spawn       func(Effect)
}

// Services returns the service bundle for the app.
func (a *App) Services() Services {
	if a == nil {
		return Services{}
	}
	return Services{
		scheduler:   a.queueScheduler,
		invalidator: a.invalidator,
		post:        a.tryPost,
		spawn:       a.Spawn,
	}
}

func (s Services) isZero() bool {
	return s.post == nil
}

// Scheduler returns the app state scheduler.
func (s Services) Scheduler() state.Scheduler {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler
}

// InvalidateScheduler returns the app invalidation scheduler.
func (s Services) InvalidateScheduler() state.Scheduler {
	if s.invalidator == nil {
		return nil
	}
	return s.invalidator
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	s.invalidator.Invalidate()
}

// Post sends a message into the app loop.
func (s Services) Post(msg Message) bool {
	if s.post == nil {
		return false
	}
	return s.post(msg)
}

// Spawn starts an effect using the app task context.
func (s Services) Spawn(effect Effect) {
	if s.spawn == nil {
		return
	}
	s.spawn(effect)
}

// After schedules a delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	s.Spawn(After(delay, msg))
}

// Every schedules a recurring message.
func (s Services) Every(interval time.Duration, fn func(time.Time) Message) {
	s.Spawn(Every(interval, fn))
}
