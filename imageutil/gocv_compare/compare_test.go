// Package gocv_compare contains tests that compare the pure Go pipeline
// stages against gocv (OpenCV). These tests require OpenCV to be installed.
//
// Run with: cd imageutil/gocv_compare && go test -v
package gocv_compare

import (
	"path/filepath"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
	"gocv.io/x/gocv"
)

// matToPixelBuffer converts an 8-bit gocv.Mat (gray or BGR) to a
// PixelBuffer with RGB channel order.
func matToPixelBuffer(t *testing.T, mat gocv.Mat) *imageutil.PixelBuffer {
	t.Helper()
	channels := mat.Channels()
	buf, err := imageutil.NewPixelBuffer(mat.Rows(), mat.Cols(), channels)
	if err != nil {
		t.Fatalf("unsupported mat: %v", err)
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if channels == 1 {
				buf.Set(x, y, 0, mat.GetUCharAt(y, x))
				continue
			}
			// gocv uses BGR format
			vec := mat.GetVecbAt(y, x)
			buf.Set(x, y, 0, vec[2])
			buf.Set(x, y, 1, vec[1])
			buf.Set(x, y, 2, vec[0])
		}
	}
	return buf
}

// pixelBufferToMat converts a PixelBuffer to a gocv.Mat (gray or BGR).
func pixelBufferToMat(buf *imageutil.PixelBuffer) gocv.Mat {
	matType := gocv.MatTypeCV8UC3
	if buf.Channels == 1 {
		matType = gocv.MatTypeCV8U
	}
	mat := gocv.NewMatWithSize(buf.Height, buf.Width, matType)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if buf.Channels == 1 {
				mat.SetUCharAt(y, x, buf.At(x, y, 0))
				continue
			}
			mat.SetUCharAt(y, x*3, buf.At(x, y, 2))
			mat.SetUCharAt(y, x*3+1, buf.At(x, y, 1))
			mat.SetUCharAt(y, x*3+2, buf.At(x, y, 0))
		}
	}
	return mat
}

// floatMat builds a single-channel CV_64F matrix from row-major values.
func floatMat(h, w int, at func(y, x int) float64) gocv.Mat {
	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV64F)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mat.SetDoubleAt(y, x, at(y, x))
		}
	}
	return mat
}

// convolveOpenCV performs the same periodic convolution as
// imageutil.ConvolveFFTFloat using OpenCV's DFT and spectrum product.
func convolveOpenCV(src *imageutil.PixelBuffer, kernel *imageutil.Kernel) []float64 {
	h, w := src.Height, src.Width

	image := floatMat(h, w, func(y, x int) float64 {
		return float64(src.At(x, y, 0))
	})
	defer image.Close()

	// Place each tap so that the kernel center sits at the origin.
	taps := make([]float64, h*w)
	for ky, row := range kernel.Values {
		y := ((ky-kernel.Height/2)%h + h) % h
		for kx, v := range row {
			x := ((kx-kernel.Width/2)%w + w) % w
			taps[y*w+x] += v
		}
	}
	padded := floatMat(h, w, func(y, x int) float64 { return taps[y*w+x] })
	defer padded.Close()

	imageSpec := gocv.NewMat()
	defer imageSpec.Close()
	kernelSpec := gocv.NewMat()
	defer kernelSpec.Close()
	gocv.DFT(image, &imageSpec, gocv.DftForward)
	gocv.DFT(padded, &kernelSpec, gocv.DftForward)

	product := gocv.NewMat()
	defer product.Close()
	gocv.MulSpectrums(imageSpec, kernelSpec, &product, 0)

	result := gocv.NewMat()
	defer result.Close()
	gocv.DFT(product, &result, gocv.DftInverse|gocv.DftScale|gocv.DftRealOutput)

	out := make([]float64, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = result.GetDoubleAt(y, x)
		}
	}
	return out
}

func TestCompareConvolveFFT(t *testing.T) {
	kernels := map[string]*imageutil.Kernel{
		"sharpen": imageutil.SharpenKernel(),
		"emboss":  imageutil.EmbossKernel(),
	}
	sizes := []struct{ w, h int }{{64, 48}, {33, 17}, {8, 8}}

	for _, size := range sizes {
		src := imageutil.CreateNoiseImage(size.w, size.h, 1, 1)
		for name, k := range kernels {
			ours := imageutil.ConvolveFFTFloat(src, k)
			theirs := convolveOpenCV(src, k)
			diff := imageutil.CalculateMaxDiffFloat(ours, theirs)
			t.Logf("%s %dx%d: max diff %g", name, size.w, size.h, diff)
			if diff > 1e-6 {
				t.Errorf("%s %dx%d: pure Go and OpenCV differ by %g", name, size.w, size.h, diff)
			}

			ref := imageutil.ConvolveCircular(src, k)
			if d := imageutil.CalculateMaxDiffFloat(ref, theirs); d > 1e-6 {
				t.Errorf("%s %dx%d: spatial reference and OpenCV differ by %g", name, size.w, size.h, d)
			}
		}
	}
}

func TestCompareNegative(t *testing.T) {
	src := imageutil.CreateColorBarsImage(128, 32)
	mat := pixelBufferToMat(src)
	defer mat.Close()

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(mat, &inverted)

	got := imageutil.Negative(src)
	want := matToPixelBuffer(t, inverted)
	if d := imageutil.CalculateMaxDiff(got, want); d != 0 {
		t.Errorf("Negative differs from OpenCV bitwise not: max diff %d", d)
	}
}

func TestCompareDecoder(t *testing.T) {
	tmpDir := t.TempDir()
	tests := []struct {
		name string
		src  *imageutil.PixelBuffer
		flag gocv.IMReadFlag
	}{
		{"color", imageutil.CreateColorBarsImage(80, 20), gocv.IMReadColor},
		{"gray", imageutil.CreateGrayGradientImage(64, 8), gocv.IMReadGrayScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".png")
			if err := imageutil.SavePNG(tt.src.ToImage(), path); err != nil {
				t.Fatal(err)
			}

			ours, err := imageutil.LoadPixelBuffer(path)
			if err != nil {
				t.Fatal(err)
			}
			mat := gocv.IMRead(path, tt.flag)
			if mat.Empty() {
				t.Fatalf("OpenCV could not read %s", path)
			}
			defer mat.Close()

			theirs := matToPixelBuffer(t, mat)
			if d := imageutil.CalculateMaxDiff(ours, theirs); d != 0 {
				t.Errorf("decoders disagree: max diff %d", d)
			}
		})
	}
}
