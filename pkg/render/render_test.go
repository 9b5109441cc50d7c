package render

import (
	"image"
	"image/color"
	"math"
	"testing"
)

var orange = color.RGBA{255, 107, 53, 255}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearColor(got, want color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff <= tol && diff >= -tol
	}
	return d(got.R, want.R) && d(got.G, want.G) && d(got.B, want.B) && d(got.A, want.A)
}

func TestNewCanvasFill(t *testing.T) {
	tests := []struct {
		name  string
		bg    color.RGBA
		alpha uint8
	}{
		{"opaque", color.RGBA{26, 26, 26, 255}, 255},
		{"transparent", color.RGBA{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewCanvas(32, tt.bg)
			if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
				t.Fatalf("bounds = %v, want 32x32", b)
			}
			for y := 0; y < 32; y++ {
				for x := 0; x < 32; x++ {
					if got := img.RGBAAt(x, y); got != tt.bg {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, tt.bg)
					}
				}
			}
			if IsTransparent(img.At(0, 0)) != (tt.alpha == 0) {
				t.Errorf("IsTransparent mismatch for %s canvas", tt.name)
			}
		})
	}
}

func TestShade(t *testing.T) {
	got := Shade(color.RGBA{200, 100, 50, 128}, 0.5)
	want := color.RGBA{100, 50, 25, 128}
	if got != want {
		t.Errorf("Shade = %v, want %v", got, want)
	}
}

func TestNewDumbbellProportions(t *testing.T) {
	d := NewDumbbell(50, 50, 100)

	if !nearly(d.Bar.W, 60) || !nearly(d.Bar.H, 8) {
		t.Errorf("bar = %.3fx%.3f, want 60x8", d.Bar.W, d.Bar.H)
	}
	if cx, cy := d.Bar.Center(); !nearly(cx, 50) || !nearly(cy, 50) {
		t.Errorf("bar center = (%.3f,%.3f), want (50,50)", cx, cy)
	}
	for name, w := range map[string]Rect{"left": d.LeftWeight, "right": d.RightWeight} {
		if !nearly(w.W, 25) || !nearly(w.H, 25) {
			t.Errorf("%s weight = %.3fx%.3f, want 25x25 circle", name, w.W, w.H)
		}
		if _, cy := w.Center(); !nearly(cy, 50) {
			t.Errorf("%s weight center y = %.3f, want 50", name, cy)
		}
	}

	// Weights sit on the bar ends.
	if lx, _ := d.LeftWeight.Center(); !nearly(lx, d.Bar.X) {
		t.Errorf("left weight center x = %.3f, want bar start %.3f", lx, d.Bar.X)
	}
	if rx, _ := d.RightWeight.Center(); !nearly(rx, d.Bar.X+d.Bar.W) {
		t.Errorf("right weight center x = %.3f, want bar end %.3f", rx, d.Bar.X+d.Bar.W)
	}

	b := d.Bounds()
	if !nearly(b.X, 7.5) || !nearly(b.W, 85) || !nearly(b.Y, 37.5) || !nearly(b.H, 25) {
		t.Errorf("Bounds = %+v, want {7.5 37.5 85 25}", b)
	}
}

func TestDrawDumbbellCoverage(t *testing.T) {
	img := NewCanvas(200, color.RGBA{})
	DrawDumbbell(img, 100, 100, 200, orange)
	d := NewDumbbell(100, 100, 200)

	lx, _ := d.LeftWeight.Center()
	rx, _ := d.RightWeight.Center()
	inside := []image.Point{{100, 100}, {int(lx), 100}, {int(rx), 100}}
	for _, p := range inside {
		if got := img.RGBAAt(p.X, p.Y); !nearColor(got, orange, 2) {
			t.Errorf("pixel %v = %v, want %v", p, got, orange)
		}
	}

	// Between the weights, above the bar: background.
	if got := img.RGBAAt(100, 80); got.A != 0 {
		t.Errorf("pixel above bar alpha = %d, want 0", got.A)
	}
	for _, p := range []image.Point{{0, 0}, {199, 0}, {0, 199}, {199, 199}} {
		if got := img.RGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, got.A)
		}
	}
}

func TestDrawDumbbellSymmetric(t *testing.T) {
	const size = 240
	img := NewCanvas(size, color.RGBA{})
	DrawDumbbell(img, size/2, size/2, size*0.6, orange)

	for y := 0; y < size; y++ {
		for x := 0; x < size/2; x++ {
			a := int(img.RGBAAt(x, y).A)
			h := int(img.RGBAAt(size-1-x, y).A)
			v := int(img.RGBAAt(x, size-1-y).A)
			if abs(a-h) > 3 {
				t.Fatalf("horizontal mirror mismatch at (%d,%d): %d vs %d", x, y, a, h)
			}
			if abs(a-v) > 3 {
				t.Fatalf("vertical mirror mismatch at (%d,%d): %d vs %d", x, y, a, v)
			}
		}
	}
}

func TestFillRectOverOpaqueStaysOpaque(t *testing.T) {
	img := NewCanvas(16, color.RGBA{26, 26, 26, 255})
	FillRect(img, Rect{X: 3.3, Y: 4.7, W: 6.2, H: 5.1}, orange)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
