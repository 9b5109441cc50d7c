// pkg/render/dumbbell.go
package render

import (
	"image/color"

	"ironlog-icons/internal/config"

	"golang.org/x/image/draw"
)

// Dumbbell is the geometry of the dumbbell glyph: a horizontal bar with a
// circular weight centered on each of its ends.
type Dumbbell struct {
	Bar         Rect
	LeftWeight  Rect
	RightWeight Rect
}

// NewDumbbell derives the glyph geometry from a center point and an overall size.
func NewDumbbell(x, y, size float64) Dumbbell {
	barW := size * config.DumbbellBarWidth
	barH := size * config.DumbbellBarHeight
	weight := size * config.DumbbellWeightSize

	bar := Rect{X: x - barW/2, Y: y - barH/2, W: barW, H: barH}
	return Dumbbell{
		Bar:         bar,
		LeftWeight:  Rect{X: bar.X - weight/2, Y: y - weight/2, W: weight, H: weight},
		RightWeight: Rect{X: bar.X + barW - weight/2, Y: y - weight/2, W: weight, H: weight},
	}
}

// Bounds returns the smallest rectangle covering the whole glyph.
func (d Dumbbell) Bounds() Rect {
	top := min(d.Bar.Y, d.LeftWeight.Y)
	bottom := max(d.Bar.Y+d.Bar.H, d.LeftWeight.Y+d.LeftWeight.H)
	left := d.LeftWeight.X
	right := d.RightWeight.X + d.RightWeight.W
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Draw paints the bar and both weights onto dst in a single color.
func (d Dumbbell) Draw(dst draw.Image, c color.Color) {
	FillRect(dst, d.Bar, c)
	FillEllipse(dst, d.LeftWeight, c)
	FillEllipse(dst, d.RightWeight, c)
}

// DrawDumbbell paints a dumbbell centered at (x, y) onto dst.
func DrawDumbbell(dst draw.Image, x, y, size float64, c color.Color) {
	NewDumbbell(x, y, size).Draw(dst, c)
}
