package window

import (
	"sync"
	"time"
)

// DefaultSettle is how long after the last scroll event the tracker
// waits before reporting idle.
const DefaultSettle = 150 * time.Millisecond

// Phase is the tracker's scroll state.
type Phase int

const (
	// Idle means no scroll event arrived within the settle window.
	Idle Phase = iota
	// Scrolling means scroll events are still arriving.
	Scrolling
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Scrolling {
		return "scrolling"
	}
	return "idle"
}

// Tracker debounces scroll events into an idle/scrolling phase.
// Each Touch restarts the settle timer; the phase flips back to idle
// only after the timer expires with no further touches. Safe for
// concurrent use.
type Tracker struct {
	mu       sync.Mutex
	settle   time.Duration
	phase    Phase
	gen      uint64
	timer    *time.Timer
	onChange func(Phase)

	// afterFunc is swappable in tests.
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewTracker creates an idle tracker. onChange fires on every phase
// transition and may be nil.
func NewTracker(onChange func(Phase)) *Tracker {
	return &Tracker{
		settle:    DefaultSettle,
		onChange:  onChange,
		afterFunc: time.AfterFunc,
	}
}

// SetSettle changes the settle duration. Non-positive durations keep
// the default.
func (t *Tracker) SetSettle(d time.Duration) {
	if t == nil || d <= 0 {
		return
	}
	t.mu.Lock()
	t.settle = d
	t.mu.Unlock()
}

// Phase returns the current phase.
func (t *Tracker) Phase() Phase {
	if t == nil {
		return Idle
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// IsScrolling reports whether the tracker is in the scrolling phase.
func (t *Tracker) IsScrolling() bool {
	return t.Phase() == Scrolling
}

// Touch records a scroll event: enters the scrolling phase if idle and
// restarts the settle timer.
func (t *Tracker) Touch() {
	if t == nil {
		return
	}
	t.mu.Lock()
	entered := t.phase != Scrolling
	t.phase = Scrolling
	t.gen++
	gen := t.gen
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = t.afterFunc(t.settle, func() { t.settleExpired(gen) })
	fn := t.onChange
	t.mu.Unlock()

	if entered && fn != nil {
		fn(Scrolling)
	}
}

// Stop cancels any pending settle timer and resets the phase to idle
// without firing the change callback. Call when tearing down the
// owning widget.
func (t *Tracker) Stop() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.phase = Idle
	t.mu.Unlock()
}

// settleExpired ends the scrolling phase, unless a later Touch re-armed
// the timer after this callback was scheduled.
func (t *Tracker) settleExpired(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.phase != Scrolling {
		t.mu.Unlock()
		return
	}
	t.phase = Idle
	t.timer = nil
	fn := t.onChange
	t.mu.Unlock()

	if fn != nil {
		fn(Idle)
	}
}
