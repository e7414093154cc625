package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckerTexture(t *testing.T) {
	tex := NewCheckerTexture(8, 8, 4, ColorWhite, ColorBlack)
	tests := []struct {
		x, y int
		want Color
	}{
		{0, 0, ColorWhite},
		{3, 3, ColorWhite},
		{4, 0, ColorBlack},
		{0, 4, ColorBlack},
		{7, 7, ColorWhite},
	}
	for _, tc := range tests {
		if got := tex.GetPixel(tc.x, tc.y); got != tc.want {
			t.Errorf("GetPixel(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestBrickTexture(t *testing.T) {
	brick, mortar := RGB(150, 60, 40), RGB(200, 200, 200)
	tex := NewBrickTexture(16, 16, 8, 4, brick, mortar)

	if tex.GetPixel(3, 0) != mortar {
		t.Error("first texel row should be mortar")
	}
	if tex.GetPixel(0, 1) != mortar || tex.GetPixel(8, 1) != mortar {
		t.Error("even rows should have joints at multiples of the brick width")
	}
	if tex.GetPixel(4, 5) != mortar {
		t.Error("odd rows should have joints offset by half a brick")
	}
	if tex.GetPixel(2, 2) != brick {
		t.Error("brick interior should be brick colored")
	}
}

func TestTexturePixelBounds(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.SetPixel(5, 5, ColorRed)
	if got := tex.GetPixel(5, 5); got != (Color{}) {
		t.Errorf("GetPixel out of bounds = %v, want zero", got)
	}
	if got := tex.GetPixel(-1, 0); got != (Color{}) {
		t.Errorf("GetPixel(-1, 0) = %v, want zero", got)
	}
}

func TestTextureFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 23))
	img.Set(10, 20, color.RGBA{1, 2, 3, 255})
	img.Set(11, 22, color.RGBA{4, 5, 6, 255})

	tex := TextureFromImage(img)
	if tex.Width != 2 || tex.Height != 3 {
		t.Fatalf("size = %dx%d, want 2x3", tex.Width, tex.Height)
	}
	if got := tex.GetPixel(0, 0); got != RGB(1, 2, 3) {
		t.Errorf("texel (0, 0) = %v", got)
	}
	if got := tex.GetPixel(1, 2); got != RGB(4, 5, 6) {
		t.Errorf("texel (1, 2) = %v", got)
	}
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 4, 2))
		img.Set(3, 1, color.RGBA{9, 8, 7, 255})
		path := filepath.Join(dir, "wall.png")
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()

		tex, err := LoadTexture(path)
		if err != nil {
			t.Fatalf("LoadTexture: %v", err)
		}
		if tex.Width != 4 || tex.Height != 2 || tex.GetPixel(3, 1) != RGB(9, 8, 7) {
			t.Errorf("unexpected texture %dx%d texel %v", tex.Width, tex.Height, tex.GetPixel(3, 1))
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadTexture(filepath.Join(dir, "nope.png")); err == nil {
			t.Error("expected error for nonexistent file")
		}
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(dir, "junk.png")
		if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTexture(path); err == nil {
			t.Error("expected decode error")
		}
	})
}
