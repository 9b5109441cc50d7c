// pkg/render/shapes.go
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the control-point distance for approximating a quarter ellipse
// with one cubic Bézier.
const kappa = 0.5522847498

// Rect is an axis-aligned rectangle in floating-point canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FillRect paints r onto dst with anti-aliased edges.
func FillRect(dst draw.Image, r Rect, c color.Color) {
	z := newRasterizer(dst)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	fill(z, dst, c)
}

// FillEllipse paints the ellipse inscribed in bounds onto dst.
func FillEllipse(dst draw.Image, bounds Rect, c color.Color) {
	z := newRasterizer(dst)
	cx, cy := bounds.Center()
	rx, ry := bounds.W/2, bounds.H/2
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(float32(cx+rx), float32(cy))
	cubeTo(z, cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	cubeTo(z, cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	cubeTo(z, cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	cubeTo(z, cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	fill(z, dst, c)
}

func cubeTo(z *vector.Rasterizer, x1, y1, x2, y2, x, y float64) {
	z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}

// newRasterizer sizes the rasterizer to dst so path coordinates are canvas
// coordinates.
func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func fill(z *vector.Rasterizer, dst draw.Image, c color.Color) {
	b := dst.Bounds()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
