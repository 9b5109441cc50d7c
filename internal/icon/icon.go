// internal/icon/icon.go
package icon

import (
	"fmt"
	"image"
	"image/color"

	"ironlog-icons/internal/config"
	"ironlog-icons/pkg/render"
)

// Variant describes one generated image: where it goes, how big it is and
// how it is composed. Render and Dumbbell both read Background and Scale.
type Variant struct {
	File       string
	Size       int
	Background color.RGBA
	Scale      float64
}

// Render composes the variant onto a fresh canvas.
func (v Variant) Render() *image.RGBA {
	img := render.NewCanvas(v.Size, v.Background)
	v.Dumbbell().Draw(img, config.PrimaryColor)
	return img
}

// Dumbbell returns the glyph geometry Render draws for this variant.
func (v Variant) Dumbbell() render.Dumbbell {
	c := float64(v.Size) / 2
	return render.NewDumbbell(c, c, float64(v.Size)*v.Scale)
}

// Label is the human-readable name used in progress output, e.g. "icon.png (1024x1024)".
func (v Variant) Label() string {
	return fmt.Sprintf("%s (%dx%d)", v.File, v.Size, v.Size)
}

// Variants returns the icons to generate, in generation order.
func Variants() []Variant {
	return []Variant{
		appIcon(config.AppIconSize),
		foregroundIcon(config.ForegroundIconSize),
		splashIcon(config.SplashIconSize),
	}
}

func appIcon(size int) Variant {
	return Variant{File: config.AppIconFile, Size: size, Background: config.BackgroundColor, Scale: config.AppIconScale}
}

func foregroundIcon(size int) Variant {
	return Variant{File: config.ForegroundIconFile, Size: size, Background: config.Transparent, Scale: config.ForegroundIconScale}
}

func splashIcon(size int) Variant {
	return Variant{File: config.SplashIconFile, Size: size, Background: config.Transparent, Scale: config.SplashIconScale}
}

// CreateAppIcon renders the main launcher icon on the opaque app background.
func CreateAppIcon(size int) *image.RGBA {
	return appIcon(size).Render()
}

// CreateForegroundIcon renders the adaptive-icon foreground layer. The glyph
// is drawn larger since the launcher masks the layer's outer ring.
func CreateForegroundIcon(size int) *image.RGBA {
	return foregroundIcon(size).Render()
}

// CreateSplashIcon renders the splash-screen glyph on a transparent canvas.
func CreateSplashIcon(size int) *image.RGBA {
	return splashIcon(size).Render()
}
