package motion

import "image"

// Planner places the sprite on every frame of a sequence.
// X is fixed for the whole sequence, Y moves linearly and is clamped.
type Planner struct {
	X                 int
	BaseY             int // Resting position: sprite sits on the bottom edge
	MaxY              int
	YMovementPerFrame int
}

// NewPlanner derives the fixed placement values from the image sizes
func NewPlanner(background, sprite image.Point, yMovementPerFrame int) *Planner {
	return &Planner{
		X:                 CenterX(background.X, sprite.X),
		BaseY:             background.Y - sprite.Y,
		MaxY:              background.Y - sprite.Y,
		YMovementPerFrame: yMovementPerFrame,
	}
}

// Position returns the sprite's top-left corner for a frame index
func (p *Planner) Position(frameIndex int) image.Point {
	return image.Point{
		X: p.X,
		Y: clamp(p.BaseY-p.YMovementPerFrame*frameIndex, p.MaxY),
	}
}

// ComputePosition returns the clamped vertical position for a frame index.
// The result is always within [0, backgroundHeight-spriteHeight], or 0 if the
// sprite is taller than the background.
func ComputePosition(frameIndex, backgroundHeight, spriteHeight, baseY, yMovementPerFrame int) int {
	return clamp(baseY-yMovementPerFrame*frameIndex, backgroundHeight-spriteHeight)
}

// CenterX centers the sprite horizontally, truncating toward zero
func CenterX(backgroundWidth, spriteWidth int) int {
	return (backgroundWidth - spriteWidth) / 2
}

func clamp(y, maxY int) int {
	return max(0, min(y, maxY))
}
