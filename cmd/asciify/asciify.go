// Command asciify converts an image to ASCII art, written as text or
// rendered to PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output; .png renders an image "+
			"(if not specified, prints to stdout)")
	contrast := flag.Bool("contrast", false, "Enable contrast enhancement")
	negative := flag.Bool("negative", false, "Invert the image")
	sharpen := flag.Bool("sharpen", false, "Apply the sharpen kernel")
	emboss := flag.Bool("emboss", false, "Apply the emboss kernel")
	ramp := flag.String("ramp", "",
		"Glyphs from darkest to lightest (empty uses the default ramp)")
	width := flag.Int("width", 0,
		"Fit the art into this many columns (0 exports at native size)")
	height := flag.Int("height", 0,
		"Fit the art into this many rows (0 exports at native size)")
	fontPath := flag.String("font", "",
		"Font for PNG output: empty for the built-in 7x13 bitmap, "+
			"'gomono' (embedded) or path to TTF file")
	fontSize := flag.Float64("fontsize", 12, "TrueType font size in points")
	scale := flag.Int("scale", 1, "Integer scale factor for PNG output")
	interp := flag.String("interp", "nearest",
		"Scaler for -scale: nearest, linear or area")
	light := flag.Bool("light", false, "Dark glyphs on a light background for PNG output")
	verbose := flag.Bool("v", false, "Enable debug logging to stderr")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		return
	}

	scaler, err := imageutil.ParseInterpolation(*interp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *verbose {
		img2ascii.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	beginTime := time.Now()
	settings := img2ascii.FilterSettings{
		Contrast: *contrast,
		Negative: *negative,
		Sharpen:  *sharpen,
		Emboss:   *emboss,
		Ramp:     *ramp,
	}
	art, err := img2ascii.NewArt("", *inputFile, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing image: %v\n", err)
		os.Exit(1)
	}
	endComputation := time.Now()

	text := art.String()
	if *width > 0 && *height > 0 {
		text = art.Render(*width, *height)
	}
	outW, outH := art.Grid().Width, art.Grid().Height
	if *width > 0 && *height > 0 {
		outW, outH = art.RenderSize(*width, *height)
	}

	// Progress goes to stderr when the art itself goes to stdout.
	info := os.Stdout
	if *outputFile == "" {
		info = os.Stderr
	}

	switch {
	case *outputFile == "":
		fmt.Println(text)

	case strings.HasSuffix(strings.ToLower(*outputFile), ".png"):
		theme := img2ascii.DarkTheme
		if *light {
			theme = img2ascii.LightTheme
		}
		renderer, err := loadRenderer(*fontPath, *fontSize,
			img2ascii.WithTheme(theme), img2ascii.WithScale(*scale),
			img2ascii.WithInterpolation(scaler))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
			os.Exit(1)
		}
		if err := renderer.SavePNG(text, *outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		cw, ch := renderer.CellSize()
		fmt.Fprintf(info, "PNG output written to %s (%dx%d cells of %dx%d px, scale %d %s)\n",
			*outputFile, outW, outH, cw, ch, *scale, *interp)

	default:
		if *width > 0 && *height > 0 {
			err = os.WriteFile(*outputFile, []byte(text), 0644)
		} else {
			err = img2ascii.ExportText(art, *outputFile)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(info, "Output written to %s\n", *outputFile)
	}

	fmt.Fprintf(info, "Filters: %s\n", art.Settings())
	fmt.Fprintf(info, "Output size: %dx%d\n", outW, outH)
	fmt.Fprintf(info, "Computation time: %v\n", endComputation.Sub(beginTime))
	fmt.Fprintf(info, "Total time: %v\n", time.Since(beginTime))
}

func loadRenderer(fontPath string, size float64, opts ...img2ascii.GlyphRendererOption) (*img2ascii.GlyphRenderer, error) {
	switch fontPath {
	case "":
		return img2ascii.NewBasicRenderer(opts...), nil
	case "gomono":
		return img2ascii.NewTTFRenderer(gomono.TTF, size, opts...)
	default:
		return img2ascii.LoadTTFRenderer(fontPath, size, opts...)
	}
}
