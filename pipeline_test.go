package img2ascii

import (
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestPipelineOrder(t *testing.T) {
	want := []string{"negative", "contrast", "grayscale", "sharpen", "emboss"}
	if len(Pipeline) != len(want) {
		t.Fatalf("Expected %d stages, got %d", len(want), len(Pipeline))
	}
	for i, stage := range Pipeline {
		if stage.Name != want[i] {
			t.Errorf("stage %d: expected %s, got %s", i, want[i], stage.Name)
		}
	}
}

func TestRunPipelineNoOpFilters(t *testing.T) {
	t.Parallel()

	color := imageutil.CreateNoiseImage(19, 11, 3, 3)
	got := RunPipeline(color, FilterSettings{})
	if !got.Equal(imageutil.Luminance(color)) {
		t.Error("With no filters, color input should only be converted to luminance")
	}

	gray := imageutil.CreateNoiseImage(19, 11, 1, 4)
	got = RunPipeline(gray, FilterSettings{})
	if !got.Equal(gray) {
		t.Error("With no filters, gray input should pass through unchanged")
	}
	got.Pix[0]++
	if got.Pix[0] == gray.Pix[0] {
		t.Error("RunPipeline must not return its input buffer")
	}
}

func TestRunPipelineMatchesManualOrder(t *testing.T) {
	t.Parallel()

	src := imageutil.CreateNoiseImage(24, 16, 3, 5)
	settings := FilterSettings{Contrast: true, Negative: true, Sharpen: true, Emboss: true}

	want := imageutil.Negative(src)
	want = imageutil.Contrast(want)
	want = imageutil.Luminance(want)
	want = imageutil.ConvolveFFT(want, imageutil.SharpenKernel())
	want = imageutil.ConvolveFFT(want, imageutil.EmbossKernel())

	got := RunPipeline(src, settings)
	if !got.Equal(want) {
		t.Error("Pipeline output differs from stages applied by hand in order")
	}
	if !src.Equal(imageutil.CreateNoiseImage(24, 16, 3, 5)) {
		t.Error("RunPipeline modified its input")
	}
}

func TestRunPipelineContrastBeforeGrayscale(t *testing.T) {
	t.Parallel()

	// Contrast on color channels and contrast on luminance give different
	// results for a saturated color.
	src := imageutil.CreateSolidImage(2, 2, imageutil.RGB{R: 200, G: 100, B: 20})
	got := RunPipeline(src, FilterSettings{Contrast: true})
	want := imageutil.Luminance(imageutil.Contrast(src))
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want.Pix, got.Pix)
	}
}

func TestRunPipelineRange(t *testing.T) {
	t.Parallel()

	inputs := []*imageutil.PixelBuffer{
		imageutil.CreateNoiseImage(9, 7, 1, 1),
		imageutil.CreateNoiseImage(9, 7, 2, 2),
		imageutil.CreateCheckerboardImage(12, 12, 2),
		imageutil.CreateColorBarsImage(16, 4),
	}
	for combo := 0; combo < 16; combo++ {
		settings := FilterSettings{
			Negative: combo&1 != 0,
			Contrast: combo&2 != 0,
			Sharpen:  combo&4 != 0,
			Emboss:   combo&8 != 0,
		}
		for _, src := range inputs {
			got := RunPipeline(src, settings)
			if got.Channels != 1 {
				t.Fatalf("%s: expected single-channel output, got %d", settings, got.Channels)
			}
			if got.Width != src.Width || got.Height != src.Height {
				t.Fatalf("%s: size changed from %dx%d to %dx%d",
					settings, src.Width, src.Height, got.Width, got.Height)
			}
		}
	}
}
