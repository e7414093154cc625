package main

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/mazecaster/pkg/math2d"
	"github.com/taigrr/mazecaster/pkg/maze"
	"github.com/taigrr/mazecaster/pkg/player"
	"github.com/taigrr/mazecaster/pkg/render"
)

func TestLoadDefaultScene(t *testing.T) {
	s, err := loadScene()
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if s.grid.Rows() != 9 || s.grid.Cols() != 25 {
		t.Errorf("default maze is %dx%d, want 9x25", s.grid.Rows(), s.grid.Cols())
	}
	if s.start != math2d.V2(150, 150) {
		t.Errorf("start = %v, want (150, 150)", s.start)
	}
	if s.texture == nil || s.texture.Width == 0 {
		t.Error("expected fallback texture")
	}
	if s.bg != render.ColorSky {
		t.Errorf("background = %v, want sky", s.bg)
	}
}

func TestRenderSnapshot(t *testing.T) {
	s, err := loadScene()
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := renderSnapshot(s, path); err != nil {
		t.Fatalf("renderSnapshot: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != *snapWidth || cfg.Height != *snapHeight {
		t.Errorf("snapshot is %dx%d, want %dx%d", cfg.Width, cfg.Height, *snapWidth, *snapHeight)
	}
}

func TestMinimapScale(t *testing.T) {
	grid, err := maze.Parse(strings.NewReader("#####\n#   #\n#####\n"), 100)
	if err != nil {
		t.Fatal(err)
	}

	// Plenty of room: the classic 0.1 scale.
	if got := minimapScale(render.NewFramebuffer(500, 300), grid); got != maxMinimapScale {
		t.Errorf("large frame scale = %v, want %v", got, maxMinimapScale)
	}
	// 80 px wide: a quarter is 20 px for a 500-unit-wide maze.
	if got := minimapScale(render.NewFramebuffer(80, 600), grid); math.Abs(got-0.04) > 1e-12 {
		t.Errorf("narrow frame scale = %v, want 0.04", got)
	}
}

func TestApplyAction(t *testing.T) {
	s, err := loadScene()
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	p := newPlayer(s)
	ctrl := player.NewController(30)
	view := &viewState{}

	applyAction(actionToggleMinimap, p, ctrl, view, nil, s)
	applyAction(actionToggleHUD, p, ctrl, view, nil, s)
	if !view.showMinimap || !view.showHUD {
		t.Errorf("toggles not applied: %+v", view)
	}

	applyAction(actionToggleMusic, p, ctrl, view, nil, s) // no music loaded

	applyAction(actionTurnRight, p, ctrl, view, nil, s)
	if ctrl.Turn.Velocity <= 0 {
		t.Error("turn right should push a positive turn velocity")
	}
	applyAction(actionForward, p, ctrl, view, nil, s)
	if ctrl.Walk.Velocity <= 0 {
		t.Error("forward should push a positive walk velocity")
	}

	p.Position = math2d.V2(250, 150)
	applyAction(actionReset, p, ctrl, view, nil, s)
	if p.Position != s.start || ctrl.Walk.Velocity != 0 {
		t.Errorf("reset left player at %v with velocity %v", p.Position, ctrl.Walk.Velocity)
	}
}

func TestKeyActionsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if seen[k] {
				t.Errorf("key %q bound twice", k)
			}
			seen[k] = true
		}
	}
}

func TestHUDLines(t *testing.T) {
	p := player.New(math2d.V2(123.4, 56.7))
	p.Heading = -math.Pi / 2
	if got, want := positionLine(p), "x=123 y=57 270°"; got != want {
		t.Errorf("positionLine = %q, want %q", got, want)
	}

	stats := render.FrameStats{Columns: 80, Drawn: 70, Skipped: 10, Misses: 2, Pixels: 1234}
	if got, want := statsLine(stats), "80 cols: 70 drawn, 10 skipped, 2 misses, 1234 px"; got != want {
		t.Errorf("statsLine = %q, want %q", got, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Color
		wantErr bool
	}{
		{"173,216,230", render.ColorSky, false},
		{"0,0,0", render.ColorBlack, false},
		{"red", render.Color{}, true},
		{"300,0,0", render.Color{}, true},
	}
	for _, tc := range tests {
		got, err := parseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("parseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDrawFrameFloorSplit(t *testing.T) {
	old := *floorColor
	*floorColor = "40,40,40"
	t.Cleanup(func() { *floorColor = old })

	s, err := loadScene()
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if !s.split {
		t.Fatal("-floor should split the background")
	}

	fb := render.NewFramebuffer(40, 40)
	rc := render.NewRaycaster(s.grid, fb)
	// Standing in a wall leaves every column as background.
	pose := render.Pose{Position: math2d.V2(50, 50), FOV: math.Pi / 3}
	drawFrame(rc, s, pose, false)

	if got := fb.GetPixel(20, 5); got != render.ColorSky {
		t.Errorf("ceiling = %v, want sky", got)
	}
	if got := fb.GetPixel(20, 35); got != render.RGB(40, 40, 40) {
		t.Errorf("floor = %v, want (40, 40, 40)", got)
	}
}

func TestLoadSceneBadColor(t *testing.T) {
	old := *bgColor
	*bgColor = "sky"
	t.Cleanup(func() { *bgColor = old })

	if _, err := loadScene(); err == nil {
		t.Error("expected error for an unparsable -bg")
	}
}

func TestApplyActionVolume(t *testing.T) {
	s, err := loadScene()
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	p := newPlayer(s)
	ctrl := player.NewController(30)
	view := &viewState{volume: 0.5}

	applyAction(actionVolumeUp, p, ctrl, view, nil, s)
	if view.volume != 0.6 {
		t.Errorf("volume after up = %v, want 0.6", view.volume)
	}
	for range 10 {
		applyAction(actionVolumeUp, p, ctrl, view, nil, s)
	}
	if view.volume != 1 {
		t.Errorf("volume should stop at 1, got %v", view.volume)
	}
	for range 15 {
		applyAction(actionVolumeDown, p, ctrl, view, nil, s)
	}
	if view.volume != 0 {
		t.Errorf("volume should stop at 0, got %v", view.volume)
	}

	before := *p
	applyAction(actionNone, p, ctrl, view, nil, s)
	if *p != before {
		t.Error("actionNone should not touch the player")
	}
}

func TestOfferResizeKeepsLatest(t *testing.T) {
	ch := make(chan resize, 2)
	for i := 1; i <= 5; i++ {
		offerResize(ch, resize{i * 10, i})
	}

	var last resize
	for len(ch) > 0 {
		last = <-ch
	}
	if last != (resize{50, 5}) {
		t.Errorf("latest queued size = %+v, want {50 5}", last)
	}
}

func TestIntroScroll(t *testing.T) {
	xs := introOffsets(100, 30)
	if xs[0] != 100 {
		t.Errorf("first offset = %d, want 100", xs[0])
	}
	if last := xs[len(xs)-1]; last <= -30 || last-introSpeed > -30 {
		t.Errorf("last offset = %d, want the final position before the text leaves", last)
	}
	if got := introOffsets(0, 0); len(got) != 0 {
		t.Errorf("empty banner on empty frame should not scroll, got %v", got)
	}

	fb := render.NewFramebuffer(80, 48)
	scale := introScale(fb)
	if scale != 1 {
		t.Errorf("introScale(48 px) = %d, want 1", scale)
	}
	drawIntroFrame(fb, "I", 0, scale)
	// 'I' has a full-width top bar at the banner's first row.
	top := fb.Height/2 - render.GlyphSize*scale/2
	if got := fb.GetPixel(2, top); got != render.ColorWhite {
		t.Errorf("banner pixel = %v, want white", got)
	}
	if got := fb.GetPixel(79, 0); got != render.ColorBlack {
		t.Errorf("intro background = %v, want black", got)
	}
}
