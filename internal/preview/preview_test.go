package preview

import (
	"image"
	"testing"

	"ironlog-icons/internal/config"
	"ironlog-icons/internal/sheet"
)

func TestViewerLayoutMatchesSheet(t *testing.T) {
	images := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 1024, 1024)),
		image.NewRGBA(image.Rect(0, 0, 512, 512)),
	}
	v := NewViewer(images)

	cells, size := sheet.Layout(2, config.SheetCellSize, config.SheetGap, 0)
	w, h := v.Layout(800, 600)
	if w != size.X || h != size.Y {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, size.X, size.Y)
	}
	for i, c := range cells {
		if v.cells[i] != c {
			t.Errorf("cell %d = %v, want %v", i, v.cells[i], c)
		}
	}
	if !v.showGrid {
		t.Error("checkerboard backdrop should be on by default")
	}
}
