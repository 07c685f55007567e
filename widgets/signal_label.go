package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/porthole/backend"
	"github.com/odvcencio/porthole/runtime"
	"github.com/odvcencio/porthole/state"
)

// TextAlign controls horizontal text placement.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignTextCenter
	AlignRight
)

// SignalLabel is a tiny label bound to a signal. Useful as a status
// line next to a virtualized list, updating through the app scheduler.
type SignalLabel struct {
	Base
	source    state.Readable[string]
	scheduler state.Scheduler
	subs      state.Subscriptions
	text      string
	style     backend.Style
	alignment TextAlign
	mounted   bool
}

// NewSignalLabel creates a new signal-backed label.
func NewSignalLabel(source state.Readable[string], scheduler state.Scheduler) *SignalLabel {
	label := &SignalLabel{
		source:    source,
		scheduler: scheduler,
		style:     backend.DefaultStyle(),
		alignment: AlignLeft,
	}
	label.subs.SetScheduler(scheduler)
	if source != nil {
		label.text = source.Get()
	}
	return label
}

// Text returns the current label text.
func (s *SignalLabel) Text() string {
	return s.text
}

// SetStyle sets the label style.
func (s *SignalLabel) SetStyle(style backend.Style) {
	s.style = style
}

// SetAlignment sets text alignment.
func (s *SignalLabel) SetAlignment(align TextAlign) {
	s.alignment = align
}

// Measure returns the size needed for the label.
func (s *SignalLabel) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(s.text),
		Height: 1,
	})
}

// Render draws the label.
func (s *SignalLabel) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	text := truncateString(s.text, bounds.Width)
	width := runewidth.StringWidth(text)

	x := bounds.X
	switch s.alignment {
	case AlignTextCenter:
		x = bounds.X + (bounds.Width-width)/2
	case AlignRight:
		x = bounds.X + bounds.Width - width
	}

	ctx.Buffer.SetString(x, bounds.Y, text, s.style)
}

// Mount subscribes to signal changes.
func (s *SignalLabel) Mount() {
	s.mounted = true
	s.subscribe()
}

// Unmount unsubscribes from signal changes.
func (s *SignalLabel) Unmount() {
	s.mounted = false
	s.subs.Clear()
}

func (s *SignalLabel) subscribe() {
	s.subs.Clear()
	if s.source == nil {
		s.text = ""
		return
	}
	s.text = s.source.Get()
	s.subs.Observe(s.source, s.onSignal)
}

func (s *SignalLabel) onSignal() {
	if !s.mounted || s.source == nil {
		return
	}
	s.text = s.source.Get()
}

var _ runtime.Widget = (*SignalLabel)(nil)
var _ runtime.Lifecycle = (*SignalLabel)(nil)
