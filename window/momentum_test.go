package window

import "testing"

func TestGlideDecaysToRest(t *testing.T) {
	g := NewGlide()
	g.Strike(8)

	total := 0
	steps := 0
	for g.Active() {
		total += g.Step()
		steps++
		if steps > 1000 {
			t.Fatalf("glide never stopped")
		}
	}
	if total <= 8 {
		t.Fatalf("glide moved %d cells, want more than the initial strike", total)
	}
	if g.Step() != 0 {
		t.Fatalf("Step after stop should return 0")
	}
}

func TestGlideNegativeVelocity(t *testing.T) {
	g := NewGlide()
	g.Strike(-8)

	total := 0
	for i := 0; i < 1000 && g.Active(); i++ {
		total += g.Step()
	}
	if total >= -8 {
		t.Fatalf("glide moved %d cells, want below -8", total)
	}
}

func TestGlideSlowStrikeStillMoves(t *testing.T) {
	// Slow flicks produce sub-cell steps; the carry must still add up
	// to at least one whole cell.
	g := NewGlide()
	g.Strike(0.6)

	total := 0
	for i := 0; i < 1000 && g.Active(); i++ {
		total += g.Step()
	}
	if total < 1 {
		t.Fatalf("slow glide moved %d cells, want at least 1", total)
	}
}

func TestGlideReverseStrikeBrakes(t *testing.T) {
	g := NewGlide()
	g.Strike(8)
	g.Strike(-3)

	if got := g.velocity; got != -3 {
		t.Fatalf("velocity after reverse strike = %v, want -3", got)
	}
}

func TestGlideAccumulatesSameDirection(t *testing.T) {
	g := NewGlide()
	g.Strike(3)
	g.Strike(4)
	if got := g.velocity; got != 7 {
		t.Fatalf("velocity = %v, want 7", got)
	}
}

func TestGlideHalt(t *testing.T) {
	g := NewGlide()
	g.Strike(10)
	g.Step()
	g.Halt()

	if g.Active() {
		t.Fatalf("glide active after Halt")
	}
	if g.Step() != 0 {
		t.Fatalf("Step after Halt should return 0")
	}
}
