package source

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadScene checks that both files exist before decoding either of them,
// so a missing sprite is reported without touching the background.
func LoadScene(backgroundPath, spritePath string) (*Scene, error) {
	for _, p := range []string{backgroundPath, spritePath} {
		if err := checkExists(p); err != nil {
			return nil, err
		}
	}

	bg, err := Decode(backgroundPath)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	sprite, err := Decode(spritePath)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}

	return &Scene{Background: bg, Sprite: sprite}, nil
}

// Decode reads any registered raster format.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}
	return img, nil
}

func checkExists(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingInput, path)
	}
	return nil
}
