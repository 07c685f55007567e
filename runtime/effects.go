package runtime

import (
	"context"
	"time"
)

// After posts a message once the delay elapses. A non-positive delay
// posts immediately.
func After(delay time.Duration, msg Message) Effect {
	return timed(delay, false, func(time.Time) Message { return msg })
}

// Every posts messages on a fixed interval until the context ends.
// Returning nil from fn skips that interval's post.
func Every(interval time.Duration, fn func(time.Time) Message) Effect {
	return timed(interval, true, fn)
}

// timed drives one-shot and repeating timers through the same loop.
func timed(interval time.Duration, repeat bool, fn func(time.Time) Message) Effect {
	return Effect{
		Run: func(ctx context.Context, post PostFunc) {
			if fn == nil || post == nil {
				return
			}
			if interval <= 0 {
				if !repeat {
					if msg := fn(time.Now()); msg != nil {
						post(msg)
					}
				}
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					if msg := fn(now); msg != nil {
						post(msg)
					}
					if !repeat {
						return
					}
				}
			}
		},
	}
}
