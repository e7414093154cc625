package render

import "math"

// MaxSliceHeight caps projected wall heights so pixel math stays in int range
// when the viewer stands almost against a wall.
const MaxSliceHeight = 1 << 20

// minCorrectedDistance is the smallest fisheye-corrected distance that is
// still projected. Anything nearer (or non-positive) is treated as infinitely
// far away and produces no slice.
const minCorrectedDistance = 1e-9

// Slice is the vertical span of one column's wall, in screen rows.
// Top may be negative and Bottom may exceed the screen height.
type Slice struct {
	Height int
	Top    int
	Bottom int
}

// CorrectDistance removes fisheye distortion by projecting the ray length
// onto the view direction.
func CorrectDistance(hitDistance, rayAngle, poseAngle float64) float64 {
	return hitDistance * math.Cos(poseAngle-rayAngle)
}

// Project converts a raw hit distance into a screen slice centered on the
// horizon. Height is (screenHeight * cellSize) / correctedDistance.
//
// ok is false when there is nothing to draw: the corrected distance is
// degenerate, the slice has zero height, or it lies completely above or below
// the screen. Height is never negative.
func Project(hitDistance, rayAngle, poseAngle float64, screenHeight int, cellSize float64) (s Slice, ok bool) {
	if screenHeight <= 0 {
		return Slice{}, false
	}
	corrected := CorrectDistance(hitDistance, rayAngle, poseAngle)
	if !(corrected >= minCorrectedDistance) || math.IsInf(corrected, 1) {
		return Slice{}, false
	}

	h := float64(screenHeight) * cellSize / corrected
	if !(h >= 0) {
		return Slice{}, false
	}
	height := MaxSliceHeight
	if h < MaxSliceHeight {
		height = int(h)
	}

	mid := screenHeight / 2
	s = Slice{
		Height: height,
		Top:    mid - height/2,
		Bottom: mid + height/2,
	}
	if s.Height == 0 || s.Top >= screenHeight || s.Bottom <= 0 {
		return s, false
	}
	return s, true
}
