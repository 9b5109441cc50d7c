// pkg/render/color.go
package render

import "image/color"

// Shade scales the RGB channels of c by factor, keeping alpha.
func Shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// IsTransparent reports whether c has zero alpha.
func IsTransparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}
