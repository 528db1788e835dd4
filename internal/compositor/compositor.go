// Package compositor draws a sprite over a background into a fresh frame.
package compositor

import (
	"image"

	"golang.org/x/image/draw"
)

// ComposeFrame returns a new canvas with the background's size, the
// background copied at the origin and the sprite blended over it at pos.
// Neither input is modified.
func ComposeFrame(background, sprite image.Image, pos image.Point) *image.RGBA {
	bgBounds := background.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bgBounds.Dx(), bgBounds.Dy()))

	draw.Draw(canvas, canvas.Bounds(), background, bgBounds.Min, draw.Src)

	spriteBounds := sprite.Bounds()
	dst := image.Rectangle{Min: pos, Max: pos.Add(spriteBounds.Size())}
	draw.Draw(canvas, dst, sprite, spriteBounds.Min, draw.Over)

	return canvas
}
