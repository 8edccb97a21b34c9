package imageutil

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Kernel represents a convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// SharpenKernel returns the 3x3 sharpening ("convolution") kernel.
func SharpenKernel() *Kernel {
	return NewKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
}

// EmbossKernel returns the 3x3 emboss kernel.
func EmbossKernel() *Kernel {
	return NewKernel([][]float64{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	})
}

// Sum returns the sum of all kernel weights.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, row := range k.Values {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// ConvolveFFT applies kernel to a single-channel buffer by multiplication
// in the frequency domain. The convolution is circular: pixels past an edge
// wrap around to the opposite edge. The real part of the result is clamped
// to [0, 255] and truncated.
func ConvolveFFT(src *PixelBuffer, kernel *Kernel) *PixelBuffer {
	out := ConvolveFFTFloat(src, kernel)
	dst := mustPixelBuffer(src.Height, src.Width, 1)
	for i, v := range out {
		dst.Pix[i] = truncUint8(v)
	}
	return dst
}

// ConvolveFFTFloat is ConvolveFFT without the final clamp, returning the
// real part of the inverse transform in row-major order.
func ConvolveFFTFloat(src *PixelBuffer, kernel *Kernel) []float64 {
	if src.Channels != 1 {
		panic(fmt.Sprintf("imageutil: convolution needs a single-channel buffer, got %d channels", src.Channels))
	}
	h, w := src.Height, src.Width

	spectrum := make([]complex128, h*w)
	for i, v := range src.Pix {
		spectrum[i] = complex(float64(v), 0)
	}
	padded := padKernel(kernel, h, w)

	plan := newFFT2(h, w)
	plan.forward(spectrum)
	plan.forward(padded)
	for i := range spectrum {
		spectrum[i] *= padded[i]
	}
	plan.inverse(spectrum)

	out := make([]float64, h*w)
	for i, v := range spectrum {
		out[i] = real(v)
	}
	return out
}

// padKernel zero-pads kernel to h × w and shifts it so that its center
// lands on index (0, 0). Without the shift the result would be offset by
// half the kernel size.
func padKernel(kernel *Kernel, h, w int) []complex128 {
	padded := make([]complex128, h*w)
	for ky, row := range kernel.Values {
		y := kernelOrigin(ky, kernel.Height, h)
		for kx, v := range row {
			x := kernelOrigin(kx, kernel.Width, w)
			padded[y*w+x] += complex(v, 0)
		}
	}
	return padded
}

// kernelOrigin maps kernel index i of a k-tap kernel onto an n-sample
// periodic axis: the kernel is centered in the zero-padded axis
// ((n-k+1)/2 samples before it), then the axis is inverse-shifted so index
// n/2 moves to 0. Axes shorter than the kernel wrap it.
func kernelOrigin(i, k, n int) int {
	if n < k {
		return mod(i-k/2, n)
	}
	p := i + (n-k+1)/2
	return mod(p-n/2, n)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// fft2 performs unnormalized forward and normalized inverse 2D DFTs in
// place over row-major h × w data using separable 1D transforms.
type fft2 struct {
	h, w      int
	rows      *fourier.CmplxFFT
	cols      *fourier.CmplxFFT
	columnBuf []complex128
}

func newFFT2(h, w int) *fft2 {
	return &fft2{
		h:         h,
		w:         w,
		rows:      fourier.NewCmplxFFT(w),
		cols:      fourier.NewCmplxFFT(h),
		columnBuf: make([]complex128, h),
	}
}

func (f *fft2) forward(data []complex128) {
	f.apply(data, false)
}

func (f *fft2) inverse(data []complex128) {
	f.apply(data, true)
	scale := complex(1/float64(f.h*f.w), 0)
	for i := range data {
		data[i] *= scale
	}
}

func (f *fft2) apply(data []complex128, inverse bool) {
	transform := func(t *fourier.CmplxFFT, dst, seq []complex128) {
		if inverse {
			t.Sequence(dst, seq)
		} else {
			t.Coefficients(dst, seq)
		}
	}

	for y := 0; y < f.h; y++ {
		row := data[y*f.w : (y+1)*f.w]
		transform(f.rows, row, row)
	}
	for x := 0; x < f.w; x++ {
		for y := 0; y < f.h; y++ {
			f.columnBuf[y] = data[y*f.w+x]
		}
		transform(f.cols, f.columnBuf, f.columnBuf)
		for y := 0; y < f.h; y++ {
			data[y*f.w+x] = f.columnBuf[y]
		}
	}
}

// ConvolveCircular is the spatial-domain reference for ConvolveFFTFloat:
// a direct periodic convolution returning unclamped values.
func ConvolveCircular(src *PixelBuffer, kernel *Kernel) []float64 {
	if src.Channels != 1 {
		panic(fmt.Sprintf("imageutil: convolution needs a single-channel buffer, got %d channels", src.Channels))
	}
	h, w := src.Height, src.Width
	out := make([]float64, h*w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky, row := range kernel.Values {
				sy := mod(y-kernelOrigin(ky, kernel.Height, h), h)
				for kx, k := range row {
					sx := mod(x-kernelOrigin(kx, kernel.Width, w), w)
					sum += float64(src.Pix[sy*w+sx]) * k
				}
			}
			out[y*w+x] = sum
		}
	}
	return out
}
