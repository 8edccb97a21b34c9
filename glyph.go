package img2ascii

import (
	"fmt"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// GlyphGrid is a row-major grid of glyphs, one per source pixel.
type GlyphGrid struct {
	Height int
	Width  int
	Cells  []rune
}

// At returns the glyph at column x, row y.
func (g *GlyphGrid) At(x, y int) rune {
	return g.Cells[y*g.Width+x]
}

// String joins the rows with newlines. There is no trailing newline.
func (g *GlyphGrid) String() string {
	if g.Width == 0 || g.Height == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range g.Cells[y*g.Width : (y+1)*g.Width] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// MapGlyphs quantises every sample of a single-channel buffer into ramp:
// sample v selects glyph floor(v/255 * (n-1)) of the n glyphs in ramp.
// It panics if ramp is empty or buf has more than one channel.
func MapGlyphs(buf *imageutil.PixelBuffer, ramp string) *GlyphGrid {
	glyphs := []rune(ramp)
	if len(glyphs) == 0 {
		panic("img2ascii: MapGlyphs needs a non-empty ramp")
	}
	if buf.Channels != 1 {
		panic(fmt.Sprintf("img2ascii: MapGlyphs needs a single-channel buffer, got %d channels", buf.Channels))
	}

	// One lookup per possible sample value.
	var lut [256]rune
	last := float64(len(glyphs) - 1)
	for v := range lut {
		lut[v] = glyphs[int(float64(v)/255.0*last)]
	}

	grid := &GlyphGrid{
		Height: buf.Height,
		Width:  buf.Width,
		Cells:  make([]rune, len(buf.Pix)),
	}
	for i, v := range buf.Pix {
		grid.Cells[i] = lut[v]
	}
	return grid
}
