// internal/generator/generator.go

// Package generator renders the icon variants and writes them as PNG files.
//
// Images are written with image/png. A fully opaque image such as icon.png is
// stored as 8-bit RGB (colour type 2) without an alpha channel; it decodes as
// opaque RGBA. Transparent variants are stored as 8-bit RGBA.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"ironlog-icons/internal/config"
	"ironlog-icons/internal/icon"
	"ironlog-icons/pkg/render"
)

// ErrImagingUnavailable is returned when rasterizing or PNG encoding does not
// work in this build. Nothing has been written when it is returned.
var ErrImagingUnavailable = errors.New("imaging support unavailable")

// Output is one written icon.
type Output struct {
	Variant icon.Variant
	Path    string
	Image   *image.RGBA
}

// Generator renders the icon variants and writes them into Dir.
type Generator struct {
	Dir      string
	Out      io.Writer
	Variants []icon.Variant

	// Probe checks the imaging capability before any file is touched.
	Probe func() error

	encoder png.Encoder
}

// New creates a generator that writes the standard variants into dir and
// prints progress to out.
func New(dir string, out io.Writer) *Generator {
	return &Generator{
		Dir:      dir,
		Out:      out,
		Variants: icon.Variants(),
		Probe:    ProbeImaging,
		encoder:  png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// Run generates every variant in order and prints the follow-up steps.
// The first failure stops the run; files already written are left in place.
func (g *Generator) Run() ([]Output, error) {
	if err := g.Probe(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImagingUnavailable, err)
	}

	fmt.Fprintf(g.Out, "Generating %s app icons...\n", config.AppName)

	if err := os.MkdirAll(g.Dir, config.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to prepare output directory: %w", err)
	}

	outputs := make([]Output, 0, len(g.Variants))
	for _, v := range g.Variants {
		fmt.Fprintf(g.Out, "Creating %s...\n", v.Label())
		img := v.Render()
		path := filepath.Join(g.Dir, v.File)
		if err := g.save(path, img); err != nil {
			return outputs, err
		}
		outputs = append(outputs, Output{Variant: v, Path: path, Image: img})
	}

	g.printNextSteps()
	return outputs, nil
}

func (g *Generator) save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", filepath.Base(path), cerr)
		}
	}()

	if err := g.encoder.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (g *Generator) printNextSteps() {
	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, "✓ Icons generated successfully!")
	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, "Next steps:")
	for i, step := range config.NextSteps {
		fmt.Fprintf(g.Out, "%d. Run: %s\n", i+1, step)
	}
}

// ProbeImaging draws a tiny dumbbell and round-trips it through the PNG codec.
func ProbeImaging() error {
	const size = 8
	img := render.NewCanvas(size, config.Transparent)
	render.DrawDumbbell(img, size/2, size/2, size, config.PrimaryColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	cfg, format, err := image.DecodeConfig(&buf)
	if err != nil {
		return fmt.Errorf("png decode: %w", err)
	}
	if format != "png" || cfg.Width != size || cfg.Height != size {
		return fmt.Errorf("png decode: unexpected %s %dx%d", format, cfg.Width, cfg.Height)
	}
	return nil
}
