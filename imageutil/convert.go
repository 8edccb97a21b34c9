package imageutil

import "math"

// LuminanceCoefficients are the Rec. 709 weights for linear R, G and B.
var LuminanceCoefficients = [3]float64{0.2126, 0.7152, 0.0722}

// srgbToLinear maps every 8-bit sRGB sample to linear light in [0, 1].
var srgbToLinear = func() (table [256]float64) {
	for i := range table {
		v := float64(i) / 255.0
		if v <= 0.04045 {
			table[i] = v / 12.92
		} else {
			table[i] = math.Pow((v+0.055)/1.055, 2.4)
		}
	}
	return table
}()

// LinearValue returns the gamma-decoded linear intensity of an 8-bit sRGB
// sample.
func LinearValue(v uint8) float64 {
	return srgbToLinear[v]
}

// Luminance converts a multi-channel buffer to a single-channel one using
// perceptual, gamma-aware luminance: samples are decoded from sRGB to
// linear light, weighted by LuminanceCoefficients and scaled back to
// [0, 255] with truncation.
//
// Channel order is assumed to be R, G, B. A two-channel buffer is treated
// as gray plus alpha: the gray channel is decoded and rescaled the same way
// and alpha is dropped. Single-channel input is returned as a copy.
func Luminance(src *PixelBuffer) *PixelBuffer {
	dst := mustPixelBuffer(src.Height, src.Width, 1)

	switch src.Channels {
	case 1:
		copy(dst.Pix, src.Pix)
	case 2:
		for i := range dst.Pix {
			dst.Pix[i] = uint8(srgbToLinear[src.Pix[i*2]] * 255)
		}
	default:
		c := LuminanceCoefficients
		for i := range dst.Pix {
			p := src.Pix[i*3 : i*3+3]
			lum := srgbToLinear[p[0]]*c[0] + srgbToLinear[p[1]]*c[1] + srgbToLinear[p[2]]*c[2]
			dst.Pix[i] = uint8(lum * 255)
		}
	}
	return dst
}
