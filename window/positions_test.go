package window

import "testing"

func TestBuildPositionsFixed(t *testing.T) {
	p := BuildPositions(1000, FixedSizer(120))
	if got := p.Count(); got != 1000 {
		t.Fatalf("Count() = %d", got)
	}
	if got := p.TotalSize(); got != 1000*120 {
		t.Fatalf("TotalSize() = %d, want %d", got, 1000*120)
	}
	if got := p.Start(7); got != 840 {
		t.Fatalf("Start(7) = %d, want 840", got)
	}
	if got := p.Size(7); got != 120 {
		t.Fatalf("Size(7) = %d, want 120", got)
	}
}

func TestBuildPositionsVariable(t *testing.T) {
	// Sizes cycle 60, 70, 80.
	sizer := SizerFunc(func(i int) int { return 60 + 10*(i%3) })
	p := BuildPositions(9, sizer)

	if got := p.TotalSize(); got != 630 {
		t.Fatalf("TotalSize() = %d, want 630", got)
	}
	wantStarts := []int{0, 60, 130, 210, 270, 340, 420, 480, 550}
	for i, want := range wantStarts {
		if got := p.Start(i); got != want {
			t.Fatalf("Start(%d) = %d, want %d", i, got, want)
		}
	}
	// The table is exactly cumulative.
	for i := 0; i < p.Count()-1; i++ {
		if p.Start(i)+p.Size(i) != p.Start(i+1) {
			t.Fatalf("Start(%d)+Size(%d) = %d, want Start(%d) = %d",
				i, i, p.Start(i)+p.Size(i), i+1, p.Start(i+1))
		}
	}
	if got := p.End(8); got != 630 {
		t.Fatalf("End(8) = %d, want 630", got)
	}
}

func TestIndexAtBoundaries(t *testing.T) {
	sizer := SizerFunc(func(i int) int { return 60 + 10*(i%3) })
	p := BuildPositions(9, sizer)

	cases := []struct {
		offset int
		want   int
	}{
		{-50, 0},
		{0, 0},
		{59, 0},
		{60, 1},
		{129, 1},
		{130, 2},
		{269, 3},
		{270, 4},
		{629, 8},
		{630, 8},
		{10_000, 8},
	}
	for _, tc := range cases {
		if got := p.IndexAt(tc.offset); got != tc.want {
			t.Errorf("IndexAt(%d) = %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestIndexAtMonotonic(t *testing.T) {
	sizer := SizerFunc(func(i int) int { return 1 + i%7 })
	p := BuildPositions(200, sizer)

	prev := 0
	for offset := 0; offset <= p.TotalSize()+10; offset++ {
		idx := p.IndexAt(offset)
		if idx < prev {
			t.Fatalf("IndexAt(%d) = %d went backwards from %d", offset, idx, prev)
		}
		prev = idx
	}
}

func TestIndexAtAgreesWithStarts(t *testing.T) {
	sizer := SizerFunc(func(i int) int { return 3 + i%5 })
	p := BuildPositions(500, sizer)

	for i := 0; i < p.Count(); i++ {
		if got := p.IndexAt(p.Start(i)); got != i {
			t.Fatalf("IndexAt(Start(%d)) = %d", i, got)
		}
		if got := p.IndexAt(p.End(i) - 1); got != i {
			t.Fatalf("IndexAt(End(%d)-1) = %d", i, got)
		}
	}
}

func TestBuildPositionsEmptyAndNegative(t *testing.T) {
	p := BuildPositions(0, FixedSizer(10))
	if p.Count() != 0 || p.TotalSize() != 0 {
		t.Fatalf("empty table: count=%d total=%d", p.Count(), p.TotalSize())
	}
	if got := p.IndexAt(100); got != 0 {
		t.Fatalf("IndexAt on empty table = %d", got)
	}

	p = BuildPositions(-5, FixedSizer(10))
	if p.Count() != 0 {
		t.Fatalf("negative count: Count() = %d", p.Count())
	}

	// Negative item sizes are treated as zero.
	p = BuildPositions(3, SizerFunc(func(i int) int { return -10 }))
	if got := p.TotalSize(); got != 0 {
		t.Fatalf("TotalSize() with negative sizes = %d", got)
	}
}
