// Package maze holds the immutable grid the raycaster walks through.
package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/mazecaster/pkg/math2d"
)

var (
	ErrEmptyGrid  = errors.New("maze has no cells")
	ErrRaggedGrid = errors.New("maze rows differ in length")
	ErrCellSize   = errors.New("cell size must be positive")
)

// Cell is the tag stored for each grid square.
type Cell uint8

const (
	Empty Cell = iota // Walkable floor
	Wall              // Solid, stops rays and movement
)

// String returns a short name for the cell tag.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Grid is a rectangular, read-only array of cells indexed [row][col].
// World coordinates map to cells by dividing by the cell size: X selects the
// column and Y selects the row.
type Grid struct {
	cells    [][]Cell
	rows     int
	cols     int
	cellSize float64

	start    math2d.Vec2
	hasStart bool
}

// NewGrid validates rows and builds a grid. The rows are copied.
func NewGrid(rows [][]Cell, cellSize float64) (*Grid, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		return nil, fmt.Errorf("%w: %v", ErrCellSize, cellSize)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(rows[0])
	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), cols)
		}
		cells[r] = append([]Cell(nil), row...)
	}

	return &Grid{
		cells:    cells,
		rows:     len(cells),
		cols:     cols,
		cellSize: cellSize,
	}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// CellSize returns the world-space edge length of one cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Width returns the world-space width of the grid.
func (g *Grid) Width() float64 {
	return float64(g.cols) * g.cellSize
}

// Height returns the world-space height of the grid.
func (g *Grid) Height() float64 {
	return float64(g.rows) * g.cellSize
}

// InBounds checks if a row/col position is within grid bounds.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at row/col. Positions outside the grid read as Wall.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Wall
	}
	return g.cells[row][col]
}

// IsWall reports whether row/col is solid. Out-of-bounds counts as solid.
func (g *Grid) IsWall(row, col int) bool {
	return g.At(row, col) == Wall
}

// CellAt converts a world position to cell indices using floor division,
// so a coordinate lying exactly on a boundary belongs to the cell it starts.
// ok is false when the position is outside the grid or not finite.
func (g *Grid) CellAt(p math2d.Vec2) (row, col int, ok bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	fc := math.Floor(p.X / g.cellSize)
	fr := math.Floor(p.Y / g.cellSize)
	if fc < 0 || fr < 0 || fc >= float64(g.cols) || fr >= float64(g.rows) {
		return 0, 0, false
	}
	row, col = int(fr), int(fc)
	return row, col, true
}

// IsOpen reports whether p lies inside the grid on an empty cell.
func (g *Grid) IsOpen(p math2d.Vec2) bool {
	row, col, ok := g.CellAt(p)
	return ok && g.cells[row][col] == Empty
}

// CellCenter returns the world position of the center of row/col.
func (g *Grid) CellCenter(row, col int) math2d.Vec2 {
	return math2d.V2(
		(float64(col)+0.5)*g.cellSize,
		(float64(row)+0.5)*g.cellSize,
	)
}

// Start returns the player start position when the maze defined one.
func (g *Grid) Start() (math2d.Vec2, bool) {
	return g.start, g.hasStart
}

// SetStart records the player start at the center of row/col.
func (g *Grid) SetStart(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("start (%d, %d) outside %dx%d maze", row, col, g.rows, g.cols)
	}
	if g.cells[row][col] != Empty {
		return fmt.Errorf("start (%d, %d) is inside a wall", row, col)
	}
	g.start = g.CellCenter(row, col)
	g.hasStart = true
	return nil
}

// FirstOpen returns the center of the first empty cell in row-major order.
func (g *Grid) FirstOpen() (math2d.Vec2, bool) {
	for r, row := range g.cells {
		for c, cell := range row {
			if cell == Empty {
				return g.CellCenter(r, c), true
			}
		}
	}
	return math2d.Vec2{}, false
}
