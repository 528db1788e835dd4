package container

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	loopInfinite = 0
	// gif.GIF writes no NETSCAPE extension for -1, which players treat as
	// a single pass.
	loopOnce = -1
)

type GIFEncoder struct {
	Palette color.Palette
	Drawer  draw.Drawer
}

// NewGIFEncoder quantizes frames to the Plan 9 palette with error diffusion.
func NewGIFEncoder() *GIFEncoder {
	return &GIFEncoder{
		Palette: palette.Plan9,
		Drawer:  draw.FloydSteinberg,
	}
}

// Assemble decodes the frames in the order given, the first frame's loop
// setting governing the whole file, and writes the GIF through a temporary
// file so a failed write never leaves a truncated output behind.
func (e *GIFEncoder) Assemble(ctx context.Context, framePaths []string, outputPath string, loopForever bool) error {
	if len(framePaths) == 0 {
		return fmt.Errorf("%w: no frames to assemble", ErrAssembly)
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(framePaths)),
		Delay:     make([]int, 0, len(framePaths)),
		LoopCount: loopOnce,
	}
	if loopForever {
		anim.LoopCount = loopInfinite
	}

	for i, p := range framePaths {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := decodeFrame(p)
		if err != nil {
			return fmt.Errorf("%w: frame %d: %v", ErrAssembly, i, err)
		}

		anim.Image = append(anim.Image, e.quantize(img))
		// Pacing between generated frames is not part of the output.
		anim.Delay = append(anim.Delay, 0)
	}

	if err := writeAtomic(outputPath, anim); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrAssembly, outputPath, err)
	}
	return nil
}

func (e *GIFEncoder) quantize(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	pal := e.Palette
	if len(pal) == 0 {
		pal = palette.Plan9
	}
	dst := image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), pal)

	drawer := e.Drawer
	if drawer == nil {
		drawer = draw.Src
	}
	drawer.Draw(dst, dst.Bounds(), img, bounds.Min)
	return dst
}

func decodeFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func writeAtomic(outputPath string, anim *gif.GIF) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".spriteanim-*.gif")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := gif.EncodeAll(tmp, anim); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
