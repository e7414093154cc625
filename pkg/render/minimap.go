package render

import "github.com/taigrr/mazecaster/pkg/math2d"

// Minimap draws a top-down view of the grid in a corner of the frame.
type Minimap struct {
	OffsetX, OffsetY int
	Scale            float64 // Pixels per world unit
	WallColor        Color
	FloorColor       Color
	PlayerColor      Color
	HeadingColor     Color
	BorderColor      Color
}

// NewMinimap creates a minimap at (10, 10) drawn at the given scale.
func NewMinimap(scale float64) *Minimap {
	return &Minimap{
		OffsetX:      10,
		OffsetY:      10,
		Scale:        scale,
		WallColor:    ColorGray,
		FloorColor:   ColorBlack,
		PlayerColor:  ColorRed,
		HeadingColor: ColorWhite,
		BorderColor:  ColorWhite,
	}
}

// Draw paints grid, a one-pixel border around it and the pose marker into fb.
func (m *Minimap) Draw(fb *Framebuffer, grid Grid, pose Pose) {
	cellSize := grid.CellSize()
	size := int(cellSize * m.Scale)
	if size < 1 {
		size = 1
	}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			x := m.OffsetX + int(float64(col)*cellSize*m.Scale)
			y := m.OffsetY + int(float64(row)*cellSize*m.Scale)
			c := m.FloorColor
			if grid.IsWall(row, col) {
				c = m.WallColor
			}
			fb.DrawRect(x, y, size, size, c)
		}
	}

	right, bottom := m.toMap(math2d.V2(float64(grid.Cols())*cellSize, float64(grid.Rows())*cellSize))
	fb.DrawRectOutline(m.OffsetX-1, m.OffsetY-1, right-m.OffsetX+2, bottom-m.OffsetY+2, m.BorderColor)

	px, py := m.toMap(pose.Position)
	marker := max(size/2, 1)
	fb.DrawRect(px-marker/2, py-marker/2, marker, marker, m.PlayerColor)

	tip := pose.Position.Add(math2d.FromAngle(pose.Heading).Scale(cellSize))
	tx, ty := m.toMap(tip)
	fb.DrawLine(px, py, tx, ty, m.HeadingColor)
}

func (m *Minimap) toMap(p math2d.Vec2) (int, int) {
	return m.OffsetX + int(p.X*m.Scale), m.OffsetY + int(p.Y*m.Scale)
}
