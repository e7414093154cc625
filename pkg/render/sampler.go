package render

import "math"

// TextureColumn picks the texel column for a hit at coord along a wall face:
// (coord mod cellSize) * textureWidth / cellSize. The result is always in
// [0, textureWidth) for a texture with at least one column.
func TextureColumn(coord, cellSize float64, textureWidth int) int {
	if textureWidth <= 0 || !(cellSize > 0) {
		return 0
	}
	f := math.Mod(coord, cellSize)
	if f < 0 {
		f += cellSize
	}
	if math.IsNaN(f) {
		return 0
	}
	u := int(f * float64(textureWidth) / cellSize)
	return min(max(u, 0), textureWidth-1)
}

// DrawWallSlice fills column x of fb with texel column texX stretched over s
// using nearest-neighbor sampling: row y of the slice reads texel row
// floor(y * tex.Height / s.Height). Rows outside the framebuffer are skipped.
// It returns the number of pixels written.
func DrawWallSlice(fb *Framebuffer, tex *Texture, x, texX int, s Slice) int {
	if x < 0 || x >= fb.Width || s.Height <= 0 || tex.Height <= 0 {
		return 0
	}
	if s.Top >= fb.Height || s.Bottom <= 0 {
		return 0
	}

	// Only the visible part of the slice is walked; rows above 0 or below the
	// framebuffer would be discarded anyway.
	y0 := max(0, -s.Top)
	y1 := min(s.Height, fb.Height-s.Top)

	written := 0
	for y := y0; y < y1; y++ {
		ty := y * tex.Height / s.Height
		fb.Pixels[(s.Top+y)*fb.Width+x] = tex.GetPixel(texX, ty)
		written++
	}
	return written
}
