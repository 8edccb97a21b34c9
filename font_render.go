package img2ascii

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/img2ascii/imageutil"
)

// ErrNoFontFace is returned when a GlyphRenderer is created without a face.
var ErrNoFontFace = errors.New("no font face")

// Theme is a foreground/background color pair for rasterised text.
type Theme struct {
	FG color.Color
	BG color.Color
}

var (
	// DarkTheme draws light glyphs on a dark background.
	DarkTheme = Theme{FG: color.RGBA{0xee, 0xee, 0xee, 0xff}, BG: color.RGBA{0x1e, 0x1e, 0x1e, 0xff}}
	// LightTheme draws dark glyphs on a light background.
	LightTheme = Theme{FG: color.RGBA{0x11, 0x11, 0x11, 0xff}, BG: color.RGBA{0xfa, 0xfa, 0xfa, 0xff}}
)

// GlyphRenderer rasterises glyph text onto an image, one fixed-size cell
// per character.
type GlyphRenderer struct {
	face   font.Face
	cellW  int
	cellH  int
	ascent int

	theme  Theme
	scale  int
	interp imageutil.Interpolation
}

// GlyphRendererOption is a functional option for configuring a
// GlyphRenderer.
type GlyphRendererOption func(*GlyphRenderer)

// WithTheme sets the foreground and background colors.
func WithTheme(t Theme) GlyphRendererOption {
	return func(r *GlyphRenderer) {
		r.theme = t
	}
}

// WithScale enlarges the rendered image by an integer factor.
func WithScale(scale int) GlyphRendererOption {
	return func(r *GlyphRenderer) {
		r.scale = max(scale, 1)
	}
}

// WithInterpolation sets the scaler used by WithScale.
func WithInterpolation(interp imageutil.Interpolation) GlyphRendererOption {
	return func(r *GlyphRenderer) {
		r.interp = interp
	}
}

// NewGlyphRenderer creates a renderer for face. The cell width is the
// advance of 'M' and the cell height is the face's ascent plus descent.
// Defaults: DarkTheme, scale 1, nearest-neighbor scaling.
func NewGlyphRenderer(face font.Face, opts ...GlyphRendererOption) (*GlyphRenderer, error) {
	if face == nil {
		return nil, ErrNoFontFace
	}
	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, errors.New("face has no advance for 'M'")
	}

	r := &GlyphRenderer{
		face:   face,
		cellW:  advance.Ceil(),
		cellH:  (metrics.Ascent + metrics.Descent).Ceil(),
		ascent: metrics.Ascent.Ceil(),
		theme:  DarkTheme,
		scale:  1,
		interp: imageutil.InterpolationNearest,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cellW <= 0 || r.cellH <= 0 {
		return nil, fmt.Errorf("face has empty cell size %dx%d", r.cellW, r.cellH)
	}
	return r, nil
}

// NewBasicRenderer creates a renderer for the built-in 7x13 bitmap face.
func NewBasicRenderer(opts ...GlyphRendererOption) *GlyphRenderer {
	r, err := NewGlyphRenderer(basicfont.Face7x13, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewTTFRenderer parses TrueType data and creates a renderer at size
// points (72 DPI).
func NewTTFRenderer(ttf []byte, size float64, opts ...GlyphRendererOption) (*GlyphRenderer, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return NewGlyphRenderer(face, opts...)
}

// LoadTTFRenderer reads a TrueType font file and creates a renderer at
// size points.
func LoadTTFRenderer(path string, size float64, opts ...GlyphRendererOption) (*GlyphRenderer, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return NewTTFRenderer(ttf, size, opts...)
}

// CellSize returns the unscaled size of one character cell in pixels.
func (r *GlyphRenderer) CellSize() (w, h int) {
	return r.cellW, r.cellH
}

// RenderText draws newline-separated text. The image is as wide as the
// longest line; shorter lines are padded with background.
func (r *GlyphRenderer) RenderText(text string) *image.RGBA {
	lines := strings.Split(text, "\n")
	cols := 0
	for _, line := range lines {
		cols = max(cols, len([]rune(line)))
	}
	if text == "" {
		lines, cols = nil, 0
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*r.cellW, len(lines)*r.cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.theme.BG), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.theme.FG),
		Face: r.face,
	}
	for y, line := range lines {
		for x, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			d.Dot = fixed.P(x*r.cellW, y*r.cellH+r.ascent)
			d.DrawString(string(ch))
		}
	}

	return imageutil.Scale(img, r.scale, r.interp)
}

// RenderGrid draws a glyph grid.
func (r *GlyphRenderer) RenderGrid(g *GlyphGrid) *image.RGBA {
	return r.RenderText(g.String())
}

// SavePNG renders text and writes it to path as PNG.
func (r *GlyphRenderer) SavePNG(text, path string) error {
	return imageutil.SavePNG(r.RenderText(text), path)
}
