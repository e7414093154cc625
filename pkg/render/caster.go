package render

import (
	"math"

	"github.com/taigrr/mazecaster/pkg/math2d"
)

// DefaultStep is the march distance between samples, in world units.
// Hit coordinates are accurate to within one step.
const DefaultStep = 10.0

// Step bounds relative to the cell size. The lower bound keeps the sample
// count per cell finite; the upper bound keeps consecutive samples from
// jumping over a whole cell.
const (
	minStepFraction = 1e-4
	maxStepFraction = 0.5
)

// Grid is the read-only view of the maze the raycaster needs.
// Any row/col outside [0, Rows) x [0, Cols) is treated as solid.
type Grid interface {
	Rows() int
	Cols() int
	IsWall(row, col int) bool
	CellSize() float64
}

// Pose is a snapshot of the viewer taken before each frame.
type Pose struct {
	Position math2d.Vec2 // World units
	Heading  float64     // Radians, 0 = +X, π/2 = +Y
	FOV      float64     // Horizontal field of view in radians
}

// Side is the wall face a ray struck.
type Side int

const (
	SideNone       Side = iota // Ray started inside a wall or left the grid
	SideVertical               // Crossed a column boundary; face runs along Y
	SideHorizontal             // Crossed a row boundary; face runs along X
)

// RayHit is the result of one cast.
type RayHit struct {
	Distance float64     // Distance marched from the pose, >= 0
	Point    math2d.Vec2 // World position of the sample that ended the march
	Row, Col int         // Cell that ended the march (outside the grid on a miss)
	Side     Side
	Miss     bool // Ray left the grid without touching a wall
}

// WallCoord returns the coordinate that runs along the struck face.
func (h RayHit) WallCoord() float64 {
	if h.Side == SideVertical {
		return h.Point.Y
	}
	return h.Point.X
}

// Cast marches from pose.Position along angle in fixed steps of size step
// until it samples a wall cell or leaves the grid. Cells are found by floor
// division of the sample position by the grid's cell size.
//
// A ray that leaves the grid reports Miss with the distance and position of
// the first sample outside. The grid boundary guarantees termination for any
// finite angle and positive step; non-positive or non-finite steps fall back
// to DefaultStep. The step is then clamped to [cellSize/10000, cellSize/2],
// so small cells are never skipped by a coarse step.
func Cast(grid Grid, pose Pose, angle, step float64) RayHit {
	if !(step > 0) || math.IsInf(step, 1) {
		step = DefaultStep
	}
	size := grid.CellSize()
	step = math.Min(math.Max(step, size*minStepFraction), size*maxStepFraction)
	dir := math2d.FromAngle(angle)
	rows, cols := grid.Rows(), grid.Cols()

	prevRow, prevCol := -1, -1
	for i := 0; ; i++ {
		// multiply rather than accumulate so long rays do not drift
		d := float64(i) * step
		p := pose.Position.Add(dir.Scale(d))

		row, col, inside := cellOf(p, size, rows, cols)
		if !inside {
			return RayHit{Distance: d, Point: p, Row: row, Col: col, Miss: true}
		}
		if grid.IsWall(row, col) {
			return RayHit{
				Distance: d,
				Point:    p,
				Row:      row,
				Col:      col,
				Side:     crossedSide(i, prevRow, prevCol, row, col, p, size),
			}
		}
		prevRow, prevCol = row, col
	}
}

// cellOf maps a world position to cell indices. inside is false for
// non-finite positions or indices outside the grid.
func cellOf(p math2d.Vec2, size float64, rows, cols int) (row, col int, inside bool) {
	if !p.IsFinite() {
		return -1, -1, false
	}
	fc := math.Floor(p.X / size)
	fr := math.Floor(p.Y / size)
	if fc < 0 || fr < 0 || fc >= float64(cols) || fr >= float64(rows) {
		return clampIndex(fr), clampIndex(fc), false
	}
	return int(fr), int(fc), true
}

// clampIndex converts an out-of-range float index without overflowing int.
func clampIndex(f float64) int {
	switch {
	case f < math.MinInt32:
		return math.MinInt32
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

// crossedSide decides which face was entered. When both the row and the column
// changed in one step, the face is the one whose boundary lies nearer to p.
func crossedSide(sample, prevRow, prevCol, row, col int, p math2d.Vec2, size float64) Side {
	if sample == 0 {
		return SideNone
	}
	colChanged := col != prevCol
	rowChanged := row != prevRow
	switch {
	case colChanged && !rowChanged:
		return SideVertical
	case rowChanged && !colChanged:
		return SideHorizontal
	}
	dx := distToBoundary(p.X, size)
	dy := distToBoundary(p.Y, size)
	if dx <= dy {
		return SideVertical
	}
	return SideHorizontal
}

func distToBoundary(v, size float64) float64 {
	f := math.Mod(v, size)
	if f < 0 {
		f += size
	}
	return math.Min(f, size-f)
}
