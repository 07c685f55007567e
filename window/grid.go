package window

// Grid lays out fixed-size tiles in rows with a uniform gap between
// cells. Tiles flow left to right, top to bottom.
type Grid struct {
	CellWidth  int
	CellHeight int
	Gap        int
}

// Cell describes one materialized grid cell and its position relative
// to the content origin.
type Cell struct {
	Index int
	Row   int
	Col   int
	X     int
	Y     int
}

// Columns returns how many tiles fit across containerWidth.
// Always at least 1, so layout never divides by zero.
func (g Grid) Columns(containerWidth int) int {
	stride := g.CellWidth + g.Gap
	if stride <= 0 {
		return 1
	}
	cols := (containerWidth + g.Gap) / stride
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Rows returns the number of rows needed for count tiles.
// Zero tiles need zero rows.
func (g Grid) Rows(count, containerWidth int) int {
	if count <= 0 {
		return 0
	}
	cols := g.Columns(containerWidth)
	return (count + cols - 1) / cols
}

// TotalHeight returns the content height for count tiles.
func (g Grid) TotalHeight(count, containerWidth int) int {
	rows := g.Rows(count, containerWidth)
	if rows == 0 {
		return 0
	}
	return rows*g.CellHeight + (rows-1)*g.Gap
}

// rowStride is the vertical distance between consecutive row tops.
func (g Grid) rowStride() int {
	stride := g.CellHeight + g.Gap
	if stride <= 0 {
		return 1
	}
	return stride
}

// colStride is the horizontal distance between consecutive column lefts.
func (g Grid) colStride() int {
	stride := g.CellWidth + g.Gap
	if stride <= 0 {
		return 1
	}
	return stride
}

// RowRange returns the inclusive range of rows to materialize for the
// given vertical offset and viewport height, extended by overscan rows
// on both sides. An empty grid returns (0, -1).
func (g Grid) RowRange(offset, viewport, count, containerWidth, overscan int) (first, last int) {
	rows := g.Rows(count, containerWidth)
	if rows == 0 {
		return 0, -1
	}
	if offset < 0 {
		offset = 0
	}
	stride := g.rowStride()
	first = offset / stride
	lastOffset := offset
	if viewport > 0 {
		lastOffset = offset + viewport - 1
	}
	last = lastOffset / stride

	if overscan < 0 {
		overscan = 0
	}
	first -= overscan
	last += overscan
	if first > rows-1 {
		first = rows - 1
	}
	if first < 0 {
		first = 0
	}
	if last > rows-1 {
		last = rows - 1
	}
	return first, last
}

// ColRange returns the inclusive range of columns to materialize for
// the given horizontal offset and viewport width, extended by overscan
// columns on both sides. An empty grid returns (0, -1).
func (g Grid) ColRange(offset, viewport, count, containerWidth, overscan int) (first, last int) {
	if count <= 0 {
		return 0, -1
	}
	cols := g.Columns(containerWidth)
	if offset < 0 {
		offset = 0
	}
	stride := g.colStride()
	first = offset / stride
	lastOffset := offset
	if viewport > 0 {
		lastOffset = offset + viewport - 1
	}
	last = lastOffset / stride

	if overscan < 0 {
		overscan = 0
	}
	first -= overscan
	last += overscan
	if first > cols-1 {
		first = cols - 1
	}
	if first < 0 {
		first = 0
	}
	if last > cols-1 {
		last = cols - 1
	}
	return first, last
}

// VisibleCells returns the materialized cells for the rectangular band
// covered by the scroll offsets and viewport size, in index order.
// offsetX pans the column band; offsetY scrolls rows.
func (g Grid) VisibleCells(offsetX, offsetY, viewportW, viewportH, count, containerWidth, overscan int) []Cell {
	firstRow, lastRow := g.RowRange(offsetY, viewportH, count, containerWidth, overscan)
	if lastRow < firstRow {
		return nil
	}
	firstCol, lastCol := g.ColRange(offsetX, viewportW, count, containerWidth, overscan)
	if lastCol < firstCol {
		return nil
	}
	cols := g.Columns(containerWidth)
	colStride := g.colStride()
	rowStride := g.rowStride()

	cells := make([]Cell, 0, (lastRow-firstRow+1)*(lastCol-firstCol+1))
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			index := row*cols + col
			if index >= count {
				return cells
			}
			cells = append(cells, Cell{
				Index: index,
				Row:   row,
				Col:   col,
				X:     col * colStride,
				Y:     row * rowStride,
			})
		}
	}
	return cells
}
