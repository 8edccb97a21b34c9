// Package img2ascii converts raster images into ASCII art.
//
// An Art decodes its source once, runs the fixed filter Pipeline
// (negative, contrast, luminance, sharpen, emboss) and maps the result onto
// a glyph ramp. Render fits the glyph grid into a terminal-sized box and
// caches the last size it produced.
package img2ascii
