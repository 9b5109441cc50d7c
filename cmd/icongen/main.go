// cmd/icongen/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"runtime"

	"ironlog-icons/internal/generator"
	"ironlog-icons/internal/preview"
	"ironlog-icons/internal/sheet"
)

// openPreview is swapped out in tests; the real one needs a display.
var openPreview = preview.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, generator.ProbeImaging))
}

// run executes the command and returns the process exit status:
// 0 on success, 1 when imaging is unavailable or generation fails,
// 2 on bad flags.
func run(args []string, stdout io.Writer, probe func() error) int {
	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	fs.SetOutput(stdout)
	outDir := fs.String("out", "", "output directory (default: assets/icon of this module)")
	sheetPath := fs.String("sheet", "", "also write a labelled contact sheet PNG to this path")
	showPreview := fs.Bool("preview", false, "open a window with the generated icons")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_, file, _, _ := runtime.Caller(0)
	dir, err := generator.ResolveDir(*outDir, file)
	if err != nil {
		log.Printf("Failed to resolve output directory: %v", err)
		return 1
	}

	g := generator.New(dir, stdout)
	g.Probe = probe
	outputs, err := g.Run()
	if errors.Is(err, generator.ErrImagingUnavailable) {
		fmt.Fprintln(stdout, "Error: imaging library golang.org/x/image not available.")
		fmt.Fprintln(stdout, "Install it with: go get golang.org/x/image")
		return 1
	}
	if err != nil {
		log.Printf("Icon generation failed: %v", err)
		return 1
	}

	if *sheetPath != "" {
		entries := make([]sheet.Entry, len(outputs))
		for i, o := range outputs {
			entries[i] = sheet.Entry{Label: o.Variant.Label(), Image: o.Image}
		}
		if err := sheet.Write(*sheetPath, entries); err != nil {
			log.Printf("Failed to write contact sheet: %v", err)
			return 1
		}
	}

	if *showPreview {
		images := make([]image.Image, len(outputs))
		for i, o := range outputs {
			images[i] = o.Image
		}
		if err := openPreview(images); err != nil {
			log.Printf("Preview closed with error: %v", err)
		}
	}
	return 0
}
