package main

import (
	"fmt"
	"math"
	"time"

	"github.com/taigrr/mazecaster/pkg/math2d"
	"github.com/taigrr/mazecaster/pkg/player"
	"github.com/taigrr/mazecaster/pkg/render"
)

// HUD renders an overlay with frame rate, position and column stats
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, show bool, p *player.Player, stats render.FrameStats) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	// Helper to position cursor
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !show {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top right: position and heading
	pos := positionLine(p)
	posCol := max(width-len(pos)-1, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, posCol), bold, bgBlack, fgWhite, pos, reset)

	// Bottom: column statistics
	fmt.Printf("%s%s%s %s %s", moveTo(height, 1), bgBlack, fgCyan, statsLine(stats), reset)
}

func positionLine(p *player.Player) string {
	deg := math2d.NormalizeAngle(p.Heading) * 180 / math.Pi
	return fmt.Sprintf("x=%.0f y=%.0f %03.0f°", p.Position.X, p.Position.Y, deg)
}

func statsLine(s render.FrameStats) string {
	return fmt.Sprintf("%d cols: %d drawn, %d skipped, %d misses, %d px",
		s.Columns, s.Drawn, s.Skipped, s.Misses, s.Pixels)
}
