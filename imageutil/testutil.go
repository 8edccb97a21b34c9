package imageutil

import (
	"math"
	"math/rand"
)

// CreateGradientImage creates a horizontal gradient RGB test buffer.
func CreateGradientImage(width, height int) *PixelBuffer {
	img := mustPixelBuffer(height, width, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			img.Set(x, y, 0, v)
			img.Set(x, y, 1, v)
			img.Set(x, y, 2, v)
		}
	}
	return img
}

// CreateGrayGradientImage creates a horizontal gradient single-channel
// test buffer spanning 0..255.
func CreateGrayGradientImage(width, height int) *PixelBuffer {
	img := mustPixelBuffer(height, width, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, 0, uint8(255*x/max(width-1, 1)))
		}
	}
	return img
}

// CreateCheckerboardImage creates a checkerboard pattern for edge testing.
func CreateCheckerboardImage(width, height, squareSize int) *PixelBuffer {
	img := mustPixelBuffer(height, width, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.Set(x, y, 0, 255)
				img.Set(x, y, 1, 255)
				img.Set(x, y, 2, 255)
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *PixelBuffer {
	img := mustPixelBuffer(height, width, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, 0, c.R)
			img.Set(x, y, 1, c.G)
			img.Set(x, y, 2, c.B)
		}
	}
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *PixelBuffer {
	img := mustPixelBuffer(height, width, 3)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			c := colors[colorIdx]
			img.Set(x, y, 0, c.R)
			img.Set(x, y, 1, c.G)
			img.Set(x, y, 2, c.B)
		}
	}
	return img
}

// CreateNoiseImage creates a buffer of pseudo-random samples. The same seed
// always yields the same buffer.
func CreateNoiseImage(width, height, channels int, seed int64) *PixelBuffer {
	img := mustPixelBuffer(height, width, channels)
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

// CalculateMaxDiff returns the largest absolute sample difference between
// two buffers of the same shape, or 256 when the shapes differ.
func CalculateMaxDiff(a, b *PixelBuffer) int {
	if a.Height != b.Height || a.Width != b.Width || a.Channels != b.Channels {
		return 256
	}
	maxDiff := 0
	for i := range a.Pix {
		maxDiff = max(maxDiff, abs(int(a.Pix[i])-int(b.Pix[i])))
	}
	return maxDiff
}

// CalculateMaxDiffFloat returns the largest absolute difference between two
// equally sized float slices.
func CalculateMaxDiffFloat(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var maxDiff float64
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
