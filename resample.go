package img2ascii

// FitSize computes the largest glyph grid that fits in targetW × targetH
// cells while keeping the aspect ratio of a srcW × srcH image. Glyph cells
// are taken to be twice as tall as they are wide, so the source height is
// halved. Non-positive targets or sources yield (0, 0).
func FitSize(srcW, srcH, targetW, targetH int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || targetW <= 0 || targetH <= 0 {
		return 0, 0
	}
	halfH := float64(srcH) / 2.0

	if targetH >= targetW {
		w = int(float64(srcW) * (float64(targetH) / halfH))
		if targetW < w {
			h = int(float64(targetH) * (float64(targetW) / float64(w)))
			w = targetW
		} else {
			h = targetH
		}
		return w, h
	}

	h = int(halfH * (float64(targetW) / float64(srcW)))
	if targetH < h {
		w = int(float64(targetW) * (float64(targetH) / float64(h)))
		h = targetH
	} else {
		w = targetW
	}
	return w, h
}

// Resample picks a w × h grid out of g by nearest source index: output
// cell (x, y) reads source cell (W*x/w, H*y/h).
func Resample(g *GlyphGrid, w, h int) *GlyphGrid {
	if w <= 0 || h <= 0 {
		return &GlyphGrid{}
	}
	out := &GlyphGrid{
		Height: h,
		Width:  w,
		Cells:  make([]rune, w*h),
	}
	for y := 0; y < h; y++ {
		sy := g.Height * y / h
		row := g.Cells[sy*g.Width : (sy+1)*g.Width]
		for x := 0; x < w; x++ {
			out.Cells[y*w+x] = row[g.Width*x/w]
		}
	}
	return out
}

// resampledView is the single cached render of an Art.
type resampledView struct {
	width, height int
	grid          *GlyphGrid
	text          string
}
