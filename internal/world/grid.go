package world

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMap is returned when a map has no rows or no columns.
	ErrEmptyMap = errors.New("map contains no cells")
	// ErrRaggedMap is returned when map rows differ in length.
	ErrRaggedMap = errors.New("map rows have different lengths")
)

// Grid is an immutable rectangular array of cell codes, indexed [y][x].
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid copies rows into a new grid. Every row must have the same length.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	cells := make([]Cell, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, y, len(row), width)
		}
		cells = append(cells, row...)
	}
	return &Grid{width: width, height: len(rows), cells: cells}, nil
}

// MustNewGrid is NewGrid for literal maps in code and tests.
func MustNewGrid(rows [][]Cell) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a stored cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at (x, y), or CellWall outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.width+x]
}

// AtPoint returns the cell containing the continuous position (x, y).
func (g *Grid) AtPoint(x, y float64) Cell {
	if x < 0 || y < 0 {
		return CellWall
	}
	return g.At(int(x), int(y))
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(x, y int, c Cell)) {
	for i, c := range g.cells {
		fn(i%g.width, i/g.width, c)
	}
}

// Count returns how many cells hold code c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}
