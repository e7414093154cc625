// mazecaster - Terminal First-Person Maze Walker
// Walk a text maze in your terminal, drawn with a textured raycaster.
//
// Controls:
//
//	W/S or Up/Down    - Walk forward/backward
//	A/D or Left/Right - Turn left/right
//	Q/E               - Strafe left/right
//	M                 - Toggle minimap
//	P                 - Pause/resume music
//	R                 - Return to start
//	+/-               - Music volume up/down
//	?                 - Toggle HUD overlay (FPS, position, column stats)
//	Esc               - Quit
//
// Any key skips the welcome banner.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/taigrr/mazecaster/pkg/math2d"
	"github.com/taigrr/mazecaster/pkg/maze"
	"github.com/taigrr/mazecaster/pkg/player"
	"github.com/taigrr/mazecaster/pkg/render"
)

var (
	mazePath    = flag.String("maze", "", "Path to maze text file (default: built-in maze)")
	texturePath = flag.String("texture", "", "Path to wall texture image (PNG/JPG/BMP)")
	cellSize    = flag.Float64("cell", 100, "Cell size in world units")
	stepSize    = flag.Float64("step", render.DefaultStep, "Ray march step in world units (capped at half a cell)")
	fovDeg      = flag.Float64("fov", 60, "Horizontal field of view in degrees")
	targetFPS   = flag.Int("fps", 15, "Target FPS")
	bgColor     = flag.String("bg", "173,216,230", "Background color (R,G,B)")
	floorColor  = flag.String("floor", "", "Floor color (R,G,B); when set, -bg colors only the ceiling")
	musicPath   = flag.String("music", "", "Path to WAV file to loop in the background")
	volume      = flag.Float64("volume", 0.5, "Music volume (0-1)")
	minimap     = flag.Bool("minimap", true, "Show minimap")
	intro       = flag.Bool("intro", true, "Scroll the welcome banner before play")
	snapshot    = flag.String("snapshot", "", "Render one frame to this PNG file and exit")
	snapWidth   = flag.Int("width", 500, "Snapshot width in pixels")
	snapHeight  = flag.Int("height", 300, "Snapshot height in pixels")
)

const defaultMaze = `+---+---+---+---+---+---+
|p      |           |   |
+   +   +   +---+   +   +
|   |       |   |       |
+   +---+---+   +---+   +
|       |           |   |
+---+   +   +---+   +   +
|           |           |
+---+---+---+---+---+---+
`

// maxMinimapScale is the largest minimap scale in pixels per world unit.
const maxMinimapScale = 0.1

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mazecaster - Terminal First-Person Maze Walker\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mazecaster [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Walk forward/backward\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Turn left/right\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Strafe left/right\n")
		fmt.Fprintf(os.Stderr, "  M           - Toggle minimap\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause/resume music\n")
		fmt.Fprintf(os.Stderr, "  R           - Return to start\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Music volume up/down\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scene is everything loaded once at startup.
type scene struct {
	grid    *maze.Grid
	texture *render.Texture
	start   math2d.Vec2
	bg      render.Color
	floor   render.Color
	split   bool // ceiling bg above the horizon, floor below
}

func loadScene() (*scene, error) {
	var (
		grid *maze.Grid
		err  error
	)
	if *mazePath != "" {
		grid, err = maze.Load(*mazePath, *cellSize)
	} else {
		grid, err = maze.Parse(strings.NewReader(defaultMaze), *cellSize)
	}
	if err != nil {
		return nil, fmt.Errorf("load maze: %w", err)
	}

	start, ok := grid.Start()
	if !ok {
		start, ok = grid.FirstOpen()
		if !ok {
			return nil, fmt.Errorf("maze has no open cell to start in")
		}
	}

	var texture *render.Texture
	if *texturePath != "" {
		texture, err = render.LoadTexture(*texturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load texture: %v\n", err)
		}
	}
	// Generate fallback texture if none
	if texture == nil {
		texture = render.NewBrickTexture(64, 64, 16, 8, render.RGB(150, 70, 50), render.RGB(190, 190, 180))
	}

	s := &scene{
		grid:    grid,
		texture: texture,
		start:   start,
		bg:      render.ColorSky,
	}
	if *bgColor != "" {
		if s.bg, err = parseColor(*bgColor); err != nil {
			return nil, fmt.Errorf("invalid -bg: %w", err)
		}
	}
	if *floorColor != "" {
		if s.floor, err = parseColor(*floorColor); err != nil {
			return nil, fmt.Errorf("invalid -floor: %w", err)
		}
		s.split = true
	}
	return s, nil
}

// parseColor parses an "R,G,B" triple of 0-255 components.
func parseColor(v string) (render.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(v, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("parse color %q: %w", v, err)
	}
	return render.RGB(r, g, b), nil
}

func newPlayer(s *scene) *player.Player {
	p := player.New(s.start)
	p.FOV = *fovDeg * math.Pi / 180
	// Scale movement to the maze so the default feel survives -cell changes
	p.MoveSpeed = *cellSize / 20
	return p
}

func run() error {
	s, err := loadScene()
	if err != nil {
		return err
	}
	if *snapshot != "" {
		return renderSnapshot(s, *snapshot)
	}
	return runTerminal(s)
}

// renderSnapshot draws one frame from the start position and writes it as PNG.
func renderSnapshot(s *scene, path string) error {
	if *snapWidth <= 0 || *snapHeight <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", *snapWidth, *snapHeight)
	}
	fb := render.NewFramebuffer(*snapWidth, *snapHeight)
	rc := render.NewRaycaster(s.grid, fb)
	rc.Step = *stepSize
	p := newPlayer(s)

	drawFrame(rc, s, p.Pose(), *minimap)

	if err := fb.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	fmt.Printf("Wrote %s (%dx%d, %d columns drawn, %d skipped)\n",
		path, fb.Width, fb.Height, rc.Stats.Drawn, rc.Stats.Skipped)
	return nil
}

// drawFrame clears the framebuffer and renders one complete frame for pose.
func drawFrame(rc *render.Raycaster, s *scene, pose render.Pose, showMinimap bool) {
	fb := rc.Framebuffer()
	if s.split {
		fb.ClearSplit(s.bg, s.floor)
	} else {
		fb.Clear(s.bg)
	}
	rc.Render(pose, s.texture)
	if showMinimap {
		render.NewMinimap(minimapScale(fb, s.grid)).Draw(fb, rc.Grid(), pose)
	}
}

// minimapScale keeps the minimap within a quarter of the frame width and a
// third of its height.
func minimapScale(fb *render.Framebuffer, grid *maze.Grid) float64 {
	sx := float64(fb.Width) / 4 / grid.Width()
	sy := float64(fb.Height) / 3 / grid.Height()
	return math.Min(maxMinimapScale, math.Min(sx, sy))
}
