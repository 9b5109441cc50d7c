// internal/preview/preview.go
package preview

import (
	"image"

	"ironlog-icons/internal/config"
	"ironlog-icons/internal/sheet"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer is an ebiten.Game that shows the generated icons side by side.
type Viewer struct {
	sources []image.Image
	cells   []image.Rectangle
	size    image.Point

	tiles    []*ebiten.Image
	checker  *ebiten.Image
	showGrid bool
}

// NewViewer lays out images in a single row using the contact sheet geometry.
func NewViewer(images []image.Image) *Viewer {
	cells, size := sheet.Layout(len(images), config.SheetCellSize, config.SheetGap, 0)
	return &Viewer{
		sources:  images,
		cells:    cells,
		size:     size,
		showGrid: true,
	}
}

func (v *Viewer) Update() error {
	if v.tiles == nil {
		v.load()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.showGrid = !v.showGrid // шахматка или фон приложения
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if v.tiles == nil {
		return
	}
	for i, tile := range v.tiles {
		cell := v.cells[i]
		if v.showGrid {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(cell.Min.X), float64(cell.Min.Y))
			screen.DrawImage(v.checker, op)
		}
		b := tile.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(cell.Dx())/float64(b.Dx()), float64(cell.Dy())/float64(b.Dy()))
		op.GeoM.Translate(float64(cell.Min.X), float64(cell.Min.Y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(tile, op)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.size.X, v.size.Y
}

func (v *Viewer) load() {
	v.checker = ebiten.NewImageFromImage(sheet.Checkerboard(
		config.SheetCellSize, config.SheetCellSize, config.CheckerSize, config.CheckerLightColor))
	v.tiles = make([]*ebiten.Image, len(v.sources))
	for i, src := range v.sources {
		v.tiles[i] = ebiten.NewImageFromImage(src)
	}
}

// Run opens the preview window and blocks until it is closed. Escape or Q
// closes it; Space toggles the checkerboard backdrop.
func Run(images []image.Image) error {
	v := NewViewer(images)
	ebiten.SetWindowSize(v.size.X, v.size.Y)
	ebiten.SetWindowTitle(config.AppName + " icons")
	return ebiten.RunGame(v)
}
