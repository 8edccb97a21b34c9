package img2ascii

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
)

// Decoder loads the raw pixels of an image file.
type Decoder func(path string) (*imageutil.PixelBuffer, error)

// Art is one loaded image together with its filter settings, the glyph
// grid those settings produce, and the last rendered view.
//
// Art is not safe for concurrent use. Callers that apply settings in the
// background must not read the Art until Apply returns.
type Art struct {
	name string
	path string

	raw      *imageutil.PixelBuffer
	settings FilterSettings
	filtered *imageutil.PixelBuffer
	grid     *GlyphGrid

	// view is nil until the first Render after construction or Apply.
	view   *resampledView
	hits   int
	misses int

	decoder Decoder
	log     *slog.Logger
}

// ArtOption is a functional option for configuring an Art.
type ArtOption func(*Art)

// WithDecoder replaces the decoder used by NewArt. The default is
// imageutil.LoadPixelBuffer.
func WithDecoder(d Decoder) ArtOption {
	return func(a *Art) {
		a.decoder = d
	}
}

// WithLogger sets a logger for this Art only, overriding the package-wide
// logger installed with SetLogger.
func WithLogger(l *slog.Logger) ArtOption {
	return func(a *Art) {
		a.log = l
	}
}

// NewArt decodes the image at path once and applies settings to it. An
// empty name defaults to the file name without its extension. A decode
// failure returns the error and no Art.
func NewArt(name, path string, settings FilterSettings, opts ...ArtOption) (*Art, error) {
	a := &Art{
		name:    name,
		path:    path,
		decoder: imageutil.LoadPixelBuffer,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.name == "" {
		base := filepath.Base(path)
		a.name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	start := time.Now()
	raw, err := a.decoder(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	a.logger().Debug("img2ascii: decoded",
		"path", path,
		"width", raw.Width,
		"height", raw.Height,
		"channels", raw.Channels,
		"elapsed", time.Since(start))

	a.raw = raw
	a.Apply(settings)
	return a, nil
}

// NewArtFromBuffer wraps an already decoded buffer. The buffer is owned by
// the Art afterwards and must not be modified by the caller. WithDecoder
// has no effect here.
func NewArtFromBuffer(name string, raw *imageutil.PixelBuffer, settings FilterSettings, opts ...ArtOption) *Art {
	a := &Art{name: name, raw: raw}
	for _, opt := range opts {
		opt(a)
	}
	a.Apply(settings)
	return a
}

// Derive builds a new Art from the same raw pixels with another name and
// settings, leaving a untouched. It only reads fields that are fixed at
// construction, so it may run while a is being rendered elsewhere.
func (a *Art) Derive(name string, settings FilterSettings) *Art {
	d := &Art{
		name:    name,
		path:    a.path,
		raw:     a.raw,
		decoder: a.decoder,
		log:     a.log,
	}
	d.Apply(settings)
	return d
}

func (a *Art) logger() *slog.Logger {
	if a.log != nil {
		return a.log
	}
	return Logger()
}

// Apply replaces the filter settings, reruns the pipeline on the raw
// pixels, remaps the glyphs and drops the cached view.
func (a *Art) Apply(settings FilterSettings) {
	start := time.Now()
	a.settings = settings.Normalized()
	a.filtered = runPipeline(a.raw, a.settings, a.logger())
	a.grid = MapGlyphs(a.filtered, a.settings.Ramp)
	a.view = nil

	a.logger().Info("img2ascii: filters applied",
		"art", a.name,
		"filters", a.settings.String(),
		"glyphs", len([]rune(a.settings.Ramp)),
		"elapsed", time.Since(start))
}

// Render returns the art fitted into a width × height cell box. The last
// result is cached and reused while the fitted size does not change.
func (a *Art) Render(width, height int) string {
	w, h := FitSize(a.grid.Width, a.grid.Height, width, height)
	if a.view != nil && a.view.width == w && a.view.height == h {
		a.hits++
		a.logger().Debug("img2ascii: render cache hit", "art", a.name, "width", w, "height", h)
		return a.view.text
	}

	a.misses++
	grid := Resample(a.grid, w, h)
	a.view = &resampledView{
		width:  w,
		height: h,
		grid:   grid,
		text:   grid.String(),
	}
	a.logger().Debug("img2ascii: render cache miss", "art", a.name, "width", w, "height", h)
	return a.view.text
}

// RenderSize returns the size Render would produce for a width × height box.
func (a *Art) RenderSize(width, height int) (w, h int) {
	return FitSize(a.grid.Width, a.grid.Height, width, height)
}

// String returns the glyph grid at native resolution.
func (a *Art) String() string {
	return a.grid.String()
}

// WriteTo writes the native-resolution glyph grid to w.
func (a *Art) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

// ImageData returns a copy of the filtered single-channel buffer.
func (a *Art) ImageData() *imageutil.PixelBuffer {
	return a.filtered.Clone()
}

// Grid returns the native glyph grid. It must not be modified.
func (a *Art) Grid() *GlyphGrid {
	return a.grid
}

// CacheStats reports how many Render calls reused or rebuilt the view.
func (a *Art) CacheStats() (hits, misses int) {
	return a.hits, a.misses
}

// Settings returns the normalized settings in effect.
func (a *Art) Settings() FilterSettings { return a.settings }

// Name returns the display name.
func (a *Art) Name() string { return a.name }

// SetName changes the display name.
func (a *Art) SetName(name string) { a.name = name }

// Path returns the source file path, empty for buffer-backed arts.
func (a *Art) Path() string { return a.path }
