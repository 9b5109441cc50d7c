// internal/sheet/sheet.go
package sheet

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"ironlog-icons/internal/config"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelPadding is the space between a cell and the top of its label.
const labelPadding = 6

// Entry is one image placed on the contact sheet.
type Entry struct {
	Label string
	Image image.Image
}

// Render draws every entry scaled into its own cell over a checkerboard,
// with its label underneath.
func Render(entries []Entry) *image.RGBA {
	cells, size := Layout(len(entries), config.SheetCellSize, config.SheetGap, config.SheetLabelHeight)
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(config.BackgroundColor), image.Point{}, draw.Src)

	checker := Checkerboard(config.SheetCellSize, config.SheetCellSize, config.CheckerSize, config.CheckerLightColor)
	face := newFace()
	defer face.Close()

	for i, e := range entries {
		cell := cells[i]
		draw.Draw(dst, cell, checker, image.Point{}, draw.Src)
		draw.CatmullRom.Scale(dst, cell, e.Image, e.Image.Bounds(), draw.Over, nil)
		drawLabel(dst, face, cell, e.Label)
	}
	return dst
}

// Write renders the sheet and saves it as a PNG at path.
func Write(path string, entries []Entry) (err error) {
	img := Render(entries)

	if err := os.MkdirAll(filepath.Dir(path), config.DirPerm); err != nil {
		return fmt.Errorf("failed to prepare sheet directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close sheet: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode sheet: %w", err)
	}
	log.Printf("Contact sheet written to %s", path)
	return nil
}

func drawLabel(dst draw.Image, face font.Face, cell image.Rectangle, label string) {
	width := font.MeasureString(face, label).Ceil()
	x := cell.Min.X + (cell.Dx()-width)/2
	y := cell.Max.Y + labelPadding + face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(config.LabelColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

// newFace builds the label face from the embedded Go Regular font, falling
// back to the fixed 7x13 bitmap face.
func newFace() font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("WARNING: failed to parse label font, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.SheetFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: failed to create label face, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return face
}
