package window

import "math"

// Default glide tuning. Friction is the per-step velocity multiplier;
// rest is the speed below which the glide stops.
const (
	defaultFriction = 0.92
	defaultRest     = 0.5
)

// Glide turns a flick into decaying scroll deltas. Strike it with a
// velocity, then Step once per frame tick and apply the returned delta
// until it reports zero.
type Glide struct {
	velocity float64
	friction float64
	rest     float64
	carry    float64
}

// NewGlide creates a glide with default tuning.
func NewGlide() *Glide {
	return &Glide{friction: defaultFriction, rest: defaultRest}
}

// SetFriction sets the per-step velocity multiplier, clamped to (0, 1).
func (g *Glide) SetFriction(f float64) {
	if g == nil || f <= 0 || f >= 1 {
		return
	}
	g.friction = f
}

// Strike adds velocity in cells per step. Striking against the current
// direction brakes before reversing.
func (g *Glide) Strike(velocity float64) {
	if g == nil {
		return
	}
	if g.velocity != 0 && math.Signbit(g.velocity) != math.Signbit(velocity) {
		g.velocity = velocity
		g.carry = 0
		return
	}
	g.velocity += velocity
}

// Active reports whether the glide still has velocity.
func (g *Glide) Active() bool {
	if g == nil {
		return false
	}
	return g.velocity != 0
}

// Halt stops the glide immediately.
func (g *Glide) Halt() {
	if g == nil {
		return
	}
	g.velocity = 0
	g.carry = 0
}

// Step advances one frame and returns the whole-cell delta to apply.
// Fractional remainders carry into the next step so slow glides still
// move. Returns 0 once the glide has stopped.
func (g *Glide) Step() int {
	if g == nil || g.velocity == 0 {
		return 0
	}
	g.carry += g.velocity
	g.velocity *= g.friction
	if math.Abs(g.velocity) < g.rest {
		g.velocity = 0
	}

	delta := int(g.carry)
	g.carry -= float64(delta)
	if g.velocity == 0 {
		// Flush the remainder on the final step.
		if g.carry >= 0.5 {
			delta++
		} else if g.carry <= -0.5 {
			delta--
		}
		g.carry = 0
	}
	return delta
}
