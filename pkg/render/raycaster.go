package render

// Raycaster draws first-person frames of a grid into a framebuffer.
type Raycaster struct {
	grid  Grid
	fb    *Framebuffer
	Step  float64    // March step in world units; DefaultStep when zero
	Stats FrameStats // Statistics for the last Render call
}

// FrameStats tracks what happened to each column of the last frame.
type FrameStats struct {
	Columns int // Columns processed
	Drawn   int // Columns with at least one wall pixel
	Skipped int // Columns with a degenerate or off-screen slice
	Misses  int // Rays that left the grid without hitting a wall
	Pixels  int // Wall pixels written
}

// NewRaycaster creates a raycaster for grid drawing into fb.
func NewRaycaster(grid Grid, fb *Framebuffer) *Raycaster {
	return &Raycaster{
		grid: grid,
		fb:   fb,
		Step: DefaultStep,
	}
}

// Grid returns the grid being rendered.
func (r *Raycaster) Grid() Grid {
	return r.grid
}

// Framebuffer returns the current render target.
func (r *Raycaster) Framebuffer() *Framebuffer {
	return r.fb
}

// SetFramebuffer swaps the render target, e.g. after a terminal resize.
func (r *Raycaster) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
}

// ResetStats clears the frame statistics.
func (r *Raycaster) ResetStats() {
	r.Stats = FrameStats{}
}

// RayAngle returns the angle of the ray for screen column i. Rays are spread
// evenly across the field of view from left to right, starting at
// heading - fov/2.
func RayAngle(pose Pose, column, screenWidth int) float64 {
	return (pose.Heading - pose.FOV/2) + (pose.FOV/float64(screenWidth))*float64(column)
}

// Render draws the walls seen from pose. Columns are independent: each one
// casts a ray, projects the hit and samples tex into its own pixels only.
// The caller clears the framebuffer beforehand; columns whose ray misses the
// grid or whose slice is degenerate keep the background. A nil or empty
// texture draws nothing.
func (r *Raycaster) Render(pose Pose, tex *Texture) {
	r.ResetStats()
	if r.fb == nil || r.fb.Width == 0 || r.fb.Height == 0 {
		return
	}
	if tex == nil || tex.Width <= 0 || tex.Height <= 0 {
		return
	}

	cellSize := r.grid.CellSize()
	for i := 0; i < r.fb.Width; i++ {
		r.Stats.Columns++
		angle := RayAngle(pose, i, r.fb.Width)

		hit := Cast(r.grid, pose, angle, r.Step)
		if hit.Miss {
			// a ray that exits the world sees an infinitely distant wall
			r.Stats.Misses++
			r.Stats.Skipped++
			continue
		}

		slice, ok := Project(hit.Distance, angle, pose.Heading, r.fb.Height, cellSize)
		if !ok {
			r.Stats.Skipped++
			continue
		}

		texX := TextureColumn(hit.WallCoord(), cellSize, tex.Width)
		n := DrawWallSlice(r.fb, tex, i, texX, slice)
		if n > 0 {
			r.Stats.Drawn++
		} else {
			r.Stats.Skipped++
		}
		r.Stats.Pixels += n
	}
}
