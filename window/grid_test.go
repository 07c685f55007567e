package window

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGridColumns(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 4, Gap: 2}

	cases := []struct {
		width int
		want  int
	}{
		{34, 3},  // 3 cells + 2 gaps = 34
		{33, 2},  // one short of three columns
		{10, 1},  // exactly one cell
		{9, 1},   // narrower than a cell still yields one column
		{0, 1},   // zero width never divides by zero
		{-20, 1}, // nor does a negative one
		{22, 2},  // 2 cells + 1 gap = 22
	}
	for _, tc := range cases {
		if got := g.Columns(tc.width); got != tc.want {
			t.Errorf("Columns(%d) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestGridColumnsDegenerateCell(t *testing.T) {
	g := Grid{CellWidth: 0, CellHeight: 4}
	if got := g.Columns(100); got != 1 {
		t.Fatalf("Columns with zero cell width = %d, want 1", got)
	}
}

func TestGridRows(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 4, Gap: 2}

	if got := g.Rows(0, 34); got != 0 {
		t.Fatalf("Rows(0) = %d, want 0", got)
	}
	if got := g.Rows(7, 34); got != 3 {
		t.Fatalf("Rows(7) at 3 cols = %d, want 3", got)
	}
	if got := g.Rows(6, 34); got != 2 {
		t.Fatalf("Rows(6) at 3 cols = %d, want 2", got)
	}
}

func TestGridTotalHeight(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 4, Gap: 2}

	if got := g.TotalHeight(0, 34); got != 0 {
		t.Fatalf("TotalHeight(0) = %d, want 0", got)
	}
	// 3 rows of height 4 with 2 gaps between them.
	if got := g.TotalHeight(7, 34); got != 16 {
		t.Fatalf("TotalHeight(7) = %d, want 16", got)
	}
}

func TestGridRowRange(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 4, Gap: 2}
	// 100 tiles, 3 columns, 34 rows, row stride 6.

	first, last := g.RowRange(0, 12, 100, 34, 0)
	if first != 0 || last != 1 {
		t.Fatalf("RowRange(0,12) = %d..%d, want 0..1", first, last)
	}

	first, last = g.RowRange(13, 12, 100, 34, 1)
	if first != 1 || last != 5 {
		t.Fatalf("RowRange(13,12) overscan 1 = %d..%d, want 1..5", first, last)
	}

	first, last = g.RowRange(0, 12, 0, 34, 2)
	if first != 0 || last != -1 {
		t.Fatalf("RowRange on empty grid = %d..%d, want 0..-1", first, last)
	}

	first, last = g.RowRange(10_000, 12, 100, 34, 0)
	if last != 33 || first > last {
		t.Fatalf("RowRange past end = %d..%d", first, last)
	}
}

func TestGridVisibleCells(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 4, Gap: 2}

	got := g.VisibleCells(0, 0, 34, 4, 5, 34, 0)
	want := []Cell{
		{Index: 0, Row: 0, Col: 0, X: 0, Y: 0},
		{Index: 1, Row: 0, Col: 1, X: 12, Y: 0},
		{Index: 2, Row: 0, Col: 2, X: 24, Y: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("VisibleCells mismatch (-want +got):\n%s", diff)
	}

	// The final row stops at the tile count.
	got = g.VisibleCells(0, 6, 34, 4, 5, 34, 0)
	want = []Cell{
		{Index: 3, Row: 1, Col: 0, X: 0, Y: 6},
		{Index: 4, Row: 1, Col: 1, X: 12, Y: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("VisibleCells last row mismatch (-want +got):\n%s", diff)
	}

	// A horizontal offset pans the column band.
	got = g.VisibleCells(13, 0, 12, 4, 9, 34, 0)
	want = []Cell{
		{Index: 1, Row: 0, Col: 1, X: 12, Y: 0},
		{Index: 2, Row: 0, Col: 2, X: 24, Y: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("VisibleCells panned mismatch (-want +got):\n%s", diff)
	}

	if cells := g.VisibleCells(0, 0, 34, 4, 0, 34, 0); cells != nil {
		t.Fatalf("VisibleCells on empty grid = %v", cells)
	}
}

func TestGridColRange(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 4, Gap: 2}
	// 3 columns at width 34, column stride 12.

	first, last := g.ColRange(0, 12, 100, 34, 0)
	if first != 0 || last != 0 {
		t.Fatalf("ColRange(0,12) = %d..%d, want 0..0", first, last)
	}

	first, last = g.ColRange(13, 12, 100, 34, 0)
	if first != 1 || last != 2 {
		t.Fatalf("ColRange(13,12) = %d..%d, want 1..2", first, last)
	}

	first, last = g.ColRange(13, 12, 100, 34, 1)
	if first != 0 || last != 2 {
		t.Fatalf("ColRange(13,12) overscan 1 = %d..%d, want 0..2", first, last)
	}

	first, last = g.ColRange(0, 12, 0, 34, 2)
	if first != 0 || last != -1 {
		t.Fatalf("ColRange on empty grid = %d..%d, want 0..-1", first, last)
	}

	first, last = g.ColRange(10_000, 12, 100, 34, 0)
	if last != 2 || first > last {
		t.Fatalf("ColRange past end = %d..%d", first, last)
	}
}
