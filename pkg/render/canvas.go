// pkg/render/canvas.go
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewCanvas allocates a square RGBA canvas of the given side filled with bg.
// A zero-alpha bg leaves the canvas fully transparent.
func NewCanvas(size int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if IsTransparent(bg) {
		return img // NewRGBA уже прозрачный
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}
