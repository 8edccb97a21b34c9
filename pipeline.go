package img2ascii

import (
	"log/slog"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
)

// Stage is one step of the filter pipeline. Enabled decides from the
// settings and the current buffer whether the stage runs; Apply must not
// modify its input.
type Stage struct {
	Name    string
	Enabled func(s FilterSettings, buf *imageutil.PixelBuffer) bool
	Apply   func(buf *imageutil.PixelBuffer) *imageutil.PixelBuffer
}

// Pipeline is the fixed stage order. Grayscale reduction always precedes
// the convolution stages, which require a single channel.
var Pipeline = []Stage{
	{
		Name:    "negative",
		Enabled: func(s FilterSettings, _ *imageutil.PixelBuffer) bool { return s.Negative },
		Apply:   imageutil.Negative,
	},
	{
		Name:    "contrast",
		Enabled: func(s FilterSettings, _ *imageutil.PixelBuffer) bool { return s.Contrast },
		Apply:   imageutil.Contrast,
	},
	{
		Name:    "grayscale",
		Enabled: func(_ FilterSettings, buf *imageutil.PixelBuffer) bool { return buf.Channels > 1 },
		Apply:   imageutil.Luminance,
	},
	{
		Name:    "sharpen",
		Enabled: func(s FilterSettings, _ *imageutil.PixelBuffer) bool { return s.Sharpen },
		Apply:   convolveWith(imageutil.SharpenKernel()),
	},
	{
		Name:    "emboss",
		Enabled: func(s FilterSettings, _ *imageutil.PixelBuffer) bool { return s.Emboss },
		Apply:   convolveWith(imageutil.EmbossKernel()),
	},
}

func convolveWith(k *imageutil.Kernel) func(*imageutil.PixelBuffer) *imageutil.PixelBuffer {
	return func(buf *imageutil.PixelBuffer) *imageutil.PixelBuffer {
		return imageutil.ConvolveFFT(buf, k)
	}
}

// RunPipeline applies every enabled stage of Pipeline to src in order and
// returns the resulting buffer. The result is single-channel and src is
// left untouched. When no stage runs, a copy of src is returned.
func RunPipeline(src *imageutil.PixelBuffer, settings FilterSettings) *imageutil.PixelBuffer {
	return runPipeline(src, settings, Logger())
}

func runPipeline(src *imageutil.PixelBuffer, settings FilterSettings, log *slog.Logger) *imageutil.PixelBuffer {
	buf := src
	for _, stage := range Pipeline {
		if !stage.Enabled(settings, buf) {
			continue
		}
		start := time.Now()
		buf = stage.Apply(buf)
		log.Debug("img2ascii: stage applied",
			"stage", stage.Name,
			"width", buf.Width,
			"height", buf.Height,
			"channels", buf.Channels,
			"elapsed", time.Since(start))
	}
	if buf == src {
		buf = src.Clone()
	}
	return buf
}
