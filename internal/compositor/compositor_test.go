package compositor

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var (
	grass = color.RGBA{R: 20, G: 160, B: 40, A: 255}
	ball  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

func solid(r image.Rectangle, c color.Color) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestComposeFrame(t *testing.T) {
	bg := solid(image.Rect(0, 0, 200, 300), grass)
	sprite := solid(image.Rect(0, 0, 20, 20), ball)
	pos := image.Pt(90, 280)

	frame := ComposeFrame(bg, sprite, pos)

	if frame.Bounds() != image.Rect(0, 0, 200, 300) {
		t.Fatalf("Frame bounds %v, expected background bounds", frame.Bounds())
	}

	tests := []struct {
		name string
		p    image.Point
		want color.RGBA
	}{
		{"sprite top-left", image.Pt(90, 280), ball},
		{"sprite bottom-right", image.Pt(109, 299), ball},
		{"left of sprite", image.Pt(89, 290), grass},
		{"above sprite", image.Pt(100, 279), grass},
		{"origin", image.Pt(0, 0), grass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frame.RGBAAt(tt.p.X, tt.p.Y); got != tt.want {
				t.Errorf("At %v: expected %v, got %v", tt.p, tt.want, got)
			}
		})
	}
}

func TestComposeFrameDoesNotMutateInputs(t *testing.T) {
	bg := solid(image.Rect(0, 0, 40, 40), grass)
	sprite := solid(image.Rect(0, 0, 8, 8), ball)
	bgPix := bytes.Clone(bg.Pix)
	spritePix := bytes.Clone(sprite.Pix)

	frame := ComposeFrame(bg, sprite, image.Pt(4, 4))
	frame.Set(0, 0, color.Black)

	if !bytes.Equal(bg.Pix, bgPix) {
		t.Error("Background was modified")
	}
	if !bytes.Equal(sprite.Pix, spritePix) {
		t.Error("Sprite was modified")
	}
}

func TestComposeFrameOffsetBackground(t *testing.T) {
	// Decoded images are not guaranteed to start at the origin.
	bg := solid(image.Rect(10, 10, 60, 50), grass)
	sprite := solid(image.Rect(5, 5, 15, 15), ball)

	frame := ComposeFrame(bg, sprite, image.Pt(0, 0))

	if frame.Bounds() != image.Rect(0, 0, 50, 40) {
		t.Fatalf("Unexpected bounds %v", frame.Bounds())
	}
	if got := frame.RGBAAt(0, 0); got != ball {
		t.Errorf("Expected sprite at origin, got %v", got)
	}
	if got := frame.RGBAAt(49, 39); got != grass {
		t.Errorf("Expected background at far corner, got %v", got)
	}
}

func TestComposeFrameTransparentSprite(t *testing.T) {
	bg := solid(image.Rect(0, 0, 20, 20), grass)
	sprite := image.NewRGBA(image.Rect(0, 0, 10, 10))
	sprite.Set(5, 5, ball)

	frame := ComposeFrame(bg, sprite, image.Pt(0, 0))

	if got := frame.RGBAAt(0, 0); got != grass {
		t.Errorf("Transparent sprite pixel replaced background: %v", got)
	}
	if got := frame.RGBAAt(5, 5); got != ball {
		t.Errorf("Opaque sprite pixel missing: %v", got)
	}
}

func TestComposeFrameIsDeterministic(t *testing.T) {
	bg := solid(image.Rect(0, 0, 64, 64), grass)
	sprite := solid(image.Rect(0, 0, 9, 9), ball)

	a := ComposeFrame(bg, sprite, image.Pt(27, 30))
	b := ComposeFrame(bg, sprite, image.Pt(27, 30))

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Two compositions of the same inputs differ")
	}
}
