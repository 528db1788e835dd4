package engine

import (
	"context"
	"fmt"
	"image"

	"github.com/ivlev/spriteanim/internal/compositor"
	"github.com/ivlev/spriteanim/internal/motion"
	"github.com/ivlev/spriteanim/internal/source"
)

// FrameWriter persists one composed frame under its global index.
type FrameWriter interface {
	Put(index int, img image.Image) (string, error)
}

// Frame describes a generated frame. The pixels live only in the file at Path.
type Frame struct {
	Index       int // Global index, the storage key
	FrameNumber int // Index fed to the motion planner
	Position    image.Point
	Path        string
}

// Sequencer runs the forward pass and, with Repeat, the reverse pass.
type Sequencer struct {
	Scene       *source.Scene
	Planner     *motion.Planner
	Store       FrameWriter
	Pacer       Pacer
	TotalFrames int
	Repeat      bool
	Progress    func(done, total int)
}

// Length is the number of frames Generate produces.
func (s *Sequencer) Length() int {
	if s.Repeat {
		return 2 * s.TotalFrames
	}
	return s.TotalFrames
}

// Generate composes and stores every frame, returning them in generation
// order. The reverse pass walks frame numbers downwards but plans each one
// with the same formula as the forward pass and stores it under
// frameNumber+TotalFrames.
func (s *Sequencer) Generate(ctx context.Context) ([]Frame, error) {
	frames := make([]Frame, 0, s.Length())

	for n := 0; n < s.TotalFrames; n++ {
		f, err := s.render(ctx, n, n)
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
		s.report(len(frames))
	}

	if !s.Repeat {
		return frames, nil
	}

	for n := s.TotalFrames - 1; n >= 0; n-- {
		f, err := s.render(ctx, n, n+s.TotalFrames)
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
		s.report(len(frames))
	}

	return frames, nil
}

func (s *Sequencer) render(ctx context.Context, frameNumber, index int) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	pos := s.Planner.Position(frameNumber)
	canvas := compositor.ComposeFrame(s.Scene.Background, s.Scene.Sprite, pos)

	path, err := s.Store.Put(index, canvas)
	if err != nil {
		return Frame{}, fmt.Errorf("store frame %d: %w", index, err)
	}

	if s.Pacer != nil {
		if err := s.Pacer.Wait(ctx); err != nil {
			return Frame{}, err
		}
	}

	return Frame{Index: index, FrameNumber: frameNumber, Position: pos, Path: path}, nil
}

func (s *Sequencer) report(done int) {
	if s.Progress != nil {
		s.Progress(done, s.Length())
	}
}
