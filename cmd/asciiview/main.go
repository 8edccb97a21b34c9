// Command asciiview shows images as ASCII art in the terminal.
//
// Keys: n/p or arrows switch image, c/i/s/e toggle contrast, negative,
// sharpen and emboss, r cycles the glyph ramp of every image, m renames,
// d removes and x exports the current image as text, space starts or stops
// the slideshow, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wbrown/img2ascii"
)

func main() {
	contrast := flag.Bool("contrast", false, "Enable contrast enhancement")
	negative := flag.Bool("negative", false, "Invert the image")
	sharpen := flag.Bool("sharpen", false, "Apply the sharpen kernel")
	emboss := flag.Bool("emboss", false, "Apply the emboss kernel")
	ramp := flag.String("ramp", "", "Glyphs from darkest to lightest (empty uses the default ramp)")
	interval := flag.Duration("interval", time.Second, "Slideshow interval")
	logFile := flag.String("log", "", "Write debug logs to this file")
	exportDir := flag.String("export", ".", "Directory for text exports")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] image...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *interval <= 0 {
		fmt.Fprintln(os.Stderr, "Interval must be positive")
		os.Exit(2)
	}

	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		img2ascii.SetLogger(logger)
	}

	settings := img2ascii.FilterSettings{
		Contrast: *contrast,
		Negative: *negative,
		Sharpen:  *sharpen,
		Emboss:   *emboss,
		Ramp:     *ramp,
	}

	// Add prepends, so load in reverse to keep the argument order.
	gallery := img2ascii.NewGallery()
	args := flag.Args()
	for i := len(args) - 1; i >= 0; i-- {
		art, err := img2ascii.NewArt("", args[i], settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", args[i], err)
			continue
		}
		gallery.Add(art)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	newViewer(screen, gallery, *interval, *exportDir, logger).run()
}
