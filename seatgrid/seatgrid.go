package seatgrid

import (
	"fmt"
	"math"
)

// New constructs a Grid from an availability matrix and a price matrix of
// identical, non-empty, rectangular shape. Both inputs are deep-copied so
// later mutation by the caller cannot affect the grid.
//
// Validation order: ErrEmptyGrid, ErrNonRectangular, ErrDimensionMismatch,
// ErrNegativePrice. Every one of them satisfies errors.Is(err, ErrInvalidGrid).
//
// Complexity: O(R×C) time and memory.
func New(available [][]bool, prices [][]int) (*Grid, error) {
	rows, cols, err := shapeOf(len(available), func(r int) int { return len(available[r]) })
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	prows, pcols, err := shapeOf(len(prices), func(r int) int { return len(prices[r]) })
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	if rows != prows || cols != pcols {
		return nil, fmt.Errorf("%w: availability is %dx%d, prices %dx%d",
			ErrDimensionMismatch, rows, cols, prows, pcols)
	}

	g := &Grid{
		Rows:      rows,
		Cols:      cols,
		available: make([][]bool, rows),
		prices:    make([][]int, rows),
	}
	for r := 0; r < rows; r++ {
		for c, p := range prices[r] {
			if p < 0 {
				return nil, fmt.Errorf("%w: (%d, %d) has price %d", ErrNegativePrice, r, c, p)
			}
		}
		g.available[r] = make([]bool, cols)
		copy(g.available[r], available[r])
		g.prices[r] = make([]int, cols)
		copy(g.prices[r], prices[r])
	}

	return g, nil
}

// From2D is New for integer availability flags: 0 marks a taken seat,
// any other value a free one.
func From2D(available [][]int, prices [][]int) (*Grid, error) {
	flags := make([][]bool, len(available))
	for r, row := range available {
		flags[r] = make([]bool, len(row))
		for c, v := range row {
			flags[r][c] = v != 0
		}
	}

	return New(flags, prices)
}

// shapeOf validates a rows×cols matrix given its row count and a row-length accessor.
func shapeOf(rows int, rowLen func(int) int) (int, int, error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, rowLen(r), cols)
		}
	}

	return rows, cols, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Available reports whether the seat at (row, col) is free.
// Out-of-bounds coordinates are never available.
func (g *Grid) Available(row, col int) bool {
	return g.InBounds(row, col) && g.available[row][col]
}

// Price returns the price of the seat at (row, col).
// The caller must check InBounds first.
func (g *Grid) Price(row, col int) int {
	return g.prices[row][col]
}

// CellAt returns the Cell at (row, col) with Cost taken from the price matrix.
// Returns ErrOutOfBounds (wrapped with the coordinates) for positions outside the grid.
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) not in %dx%d grid", ErrOutOfBounds, row, col, g.Rows, g.Cols)
	}

	return Cell{Row: row, Col: col, Cost: g.prices[row][col]}, nil
}

// Resolve looks up c's position in the grid and returns it with the grid's price.
// The Cost carried by c is ignored; the grid is authoritative.
func (g *Grid) Resolve(c Cell) (Cell, error) {
	return g.CellAt(c.Row, c.Col)
}

// Neighbors returns the orthogonal neighbors of c that are in bounds and
// available, in the order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(orthogonalOffsets))
	for _, d := range orthogonalOffsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if !g.Available(r, col) {
			continue
		}
		out = append(out, Cell{Row: r, Col: col, Cost: g.prices[r][col]})
	}

	return out
}

// Offsets returns a copy of the (dRow, dCol) neighbor offsets in expansion order.
func (g *Grid) Offsets() [][2]int {
	out := make([][2]int, len(orthogonalOffsets))
	copy(out, orthogonalOffsets[:])

	return out
}

// Index maps (row, col) to its row-major index.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate maps a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (int, int) {
	return idx / g.Cols, idx % g.Cols
}

// Size returns the number of cells, Rows×Cols.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// PathCost sums the grid prices along path. Every cell must be in bounds
// and each consecutive pair must be orthogonal neighbors; availability is
// not checked. An empty path costs 0. A sum past math.MaxInt64 fails
// with ErrCostOverflow.
func (g *Grid) PathCost(path []Cell) (int64, error) {
	var total int64
	for i, c := range path {
		if !g.InBounds(c.Row, c.Col) {
			return 0, fmt.Errorf("%w: path[%d] = %s", ErrOutOfBounds, i, c)
		}
		if i > 0 && !adjacent(path[i-1], c) {
			return 0, fmt.Errorf("%w: %s -> %s", ErrBrokenPath, path[i-1], c)
		}
		p := int64(g.prices[c.Row][c.Col])
		if total > math.MaxInt64-p {
			return 0, fmt.Errorf("%w: at path[%d] = %s", ErrCostOverflow, i, c)
		}
		total += p
	}

	return total, nil
}

// adjacent reports whether a and b differ by exactly one unit in exactly one coordinate.
func adjacent(a, b Cell) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)

	return dr+dc == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
