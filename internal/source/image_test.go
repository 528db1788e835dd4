package source

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	bgPath := filepath.Join(dir, "Playground.png")
	spritePath := filepath.Join(dir, "Football.png")
	writePNG(t, bgPath, 200, 300, color.RGBA{G: 200, A: 255})
	writePNG(t, spritePath, 20, 20, color.RGBA{R: 255, A: 255})

	scene, err := LoadScene(bgPath, spritePath)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	if scene.BackgroundSize() != image.Pt(200, 300) {
		t.Errorf("Unexpected background size %v", scene.BackgroundSize())
	}
	if scene.SpriteSize() != image.Pt(20, 20) {
		t.Errorf("Unexpected sprite size %v", scene.SpriteSize())
	}
}

func TestLoadSceneErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, 10, 10, color.White)

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("definitely not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "missing.png")

	tests := []struct {
		name       string
		background string
		sprite     string
		want       error
	}{
		{"missing sprite", good, missing, ErrMissingInput},
		{"missing background", missing, good, ErrMissingInput},
		{"directory as input", good, dir, ErrMissingInput},
		{"broken background", garbage, good, ErrDecodeFailure},
		{"broken sprite", good, garbage, ErrDecodeFailure},
		// Existence is checked for both files before anything is decoded.
		{"broken background and missing sprite", garbage, missing, ErrMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := LoadScene(tt.background, tt.sprite)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if scene != nil {
				t.Error("Expected nil scene on error")
			}
		})
	}
}
