package render

import (
	"math"
	"testing"
)

func TestTextureColumn(t *testing.T) {
	tests := []struct {
		name     string
		coord    float64
		cellSize float64
		width    int
		want     int
	}{
		{"cell start", 0, 100, 64, 0},
		{"mid cell", 150, 100, 64, 32},
		{"next cell start", 200, 100, 64, 0},
		{"cell end", 99.999, 100, 64, 63},
		{"negative wraps", -25, 100, 64, 48},
		{"texture wider than cell", 5, 10, 100, 50},
		{"nan", math.NaN(), 100, 64, 0},
		{"empty texture", 50, 100, 0, 0},
		{"bad cell size", 50, 0, 64, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TextureColumn(tc.coord, tc.cellSize, tc.width)
			if got != tc.want {
				t.Errorf("TextureColumn(%v, %v, %d) = %d, want %d", tc.coord, tc.cellSize, tc.width, got, tc.want)
			}
		})
	}
}

// stripeTexture returns a 2-wide texture whose row y in column 0 is
// colors[y] and whose column 1 is white.
func stripeTexture(colors ...Color) *Texture {
	tex := NewTexture(2, len(colors))
	for y, c := range colors {
		tex.SetPixel(0, y, c)
		tex.SetPixel(1, y, ColorWhite)
	}
	return tex
}

func TestDrawWallSliceNearestNeighbor(t *testing.T) {
	red, green, blue, gray := RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255), RGB(9, 9, 9)
	tex := stripeTexture(red, green, blue, gray)
	fb := NewFramebuffer(3, 12)
	fb.Clear(ColorBlack)

	n := DrawWallSlice(fb, tex, 1, 0, Slice{Height: 8, Top: 2, Bottom: 10})
	if n != 8 {
		t.Fatalf("wrote %d pixels, want 8", n)
	}

	want := []Color{
		ColorBlack, ColorBlack,
		red, red, green, green, blue, blue, gray, gray,
		ColorBlack, ColorBlack,
	}
	for y, c := range want {
		if got := fb.GetPixel(1, y); got != c {
			t.Errorf("pixel (1, %d) = %v, want %v", y, got, c)
		}
	}

	// Neighboring columns are untouched.
	for y := range fb.Height {
		if fb.GetPixel(0, y) != ColorBlack || fb.GetPixel(2, y) != ColorBlack {
			t.Fatalf("row %d: slice leaked into another column", y)
		}
	}
}

func TestDrawWallSliceClipsToScreen(t *testing.T) {
	red, green, blue, gray := RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255), RGB(9, 9, 9)
	tex := stripeTexture(red, green, blue, gray)
	fb := NewFramebuffer(1, 10)

	n := DrawWallSlice(fb, tex, 0, 0, Slice{Height: 20, Top: -5, Bottom: 15})
	if n != 10 {
		t.Fatalf("wrote %d pixels, want 10", n)
	}
	// Screen row 0 is slice row 5 -> texel row 5*4/20 = 1.
	if got := fb.GetPixel(0, 0); got != green {
		t.Errorf("top visible pixel = %v, want green", got)
	}
	// Screen row 9 is slice row 14 -> texel row 2.
	if got := fb.GetPixel(0, 9); got != blue {
		t.Errorf("bottom visible pixel = %v, want blue", got)
	}
}

func TestDrawWallSliceRejects(t *testing.T) {
	tex := stripeTexture(ColorRed)
	tests := []struct {
		name string
		x    int
		s    Slice
	}{
		{"column left of screen", -1, Slice{Height: 4, Top: 0, Bottom: 4}},
		{"column right of screen", 4, Slice{Height: 4, Top: 0, Bottom: 4}},
		{"below screen", 0, Slice{Height: 4, Top: 8, Bottom: 12}},
		{"above screen", 0, Slice{Height: 4, Top: -6, Bottom: -2}},
		{"empty slice", 0, Slice{Height: 0, Top: 2, Bottom: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(4, 8)
			if n := DrawWallSlice(fb, tex, tc.x, 0, tc.s); n != 0 {
				t.Errorf("wrote %d pixels, want 0", n)
			}
			for i, p := range fb.Pixels {
				if p != (Color{}) {
					t.Fatalf("pixel %d written", i)
				}
			}
		})
	}
}
