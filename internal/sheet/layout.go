// internal/sheet/layout.go
package sheet

import (
	"image"
	"image/color"

	"ironlog-icons/pkg/render"

	"golang.org/x/image/draw"
)

// Layout places n square cells of side cell in one row, separated and
// framed by gap, with labelHeight pixels reserved under each cell.
// It returns the cell rectangles and the size of the whole sheet.
func Layout(n, cell, gap, labelHeight int) ([]image.Rectangle, image.Point) {
	cells := make([]image.Rectangle, n)
	for i := 0; i < n; i++ {
		x := gap + i*(cell+gap)
		cells[i] = image.Rect(x, gap, x+cell, gap+cell)
	}
	size := image.Pt(gap+n*(cell+gap), gap+cell+labelHeight+gap)
	return cells, size
}

// Checkerboard returns a w×h image of alternating squares, the usual
// backdrop for showing transparency. Dark squares are a shade of light.
func Checkerboard(w, h, square int, light color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	lightSrc := image.NewUniform(light)
	darkSrc := image.NewUniform(render.Shade(light, 0.75))
	for y := 0; y < h; y += square {
		for x := 0; x < w; x += square {
			src := lightSrc
			if (x/square+y/square)%2 == 1 {
				src = darkSrc
			}
			r := image.Rect(x, y, x+square, y+square).Intersect(img.Bounds())
			draw.Draw(img, r, src, image.Point{}, draw.Src)
		}
	}
	return img
}
