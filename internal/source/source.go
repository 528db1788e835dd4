package source

import (
	"errors"
	"image"
)

var (
	// ErrMissingInput means a source image file does not exist.
	ErrMissingInput = errors.New("input image not found")
	// ErrDecodeFailure means a source file exists but is not a readable raster image.
	ErrDecodeFailure = errors.New("input image cannot be decoded")
)

// Scene holds the two decoded inputs of an animation. Both images are
// treated as read-only once loaded.
type Scene struct {
	Background image.Image
	Sprite     image.Image
}

func (s *Scene) BackgroundSize() image.Point {
	return s.Background.Bounds().Size()
}

func (s *Scene) SpriteSize() image.Point {
	return s.Sprite.Bounds().Size()
}
