package imageutil

// ContrastLevel is the fixed contrast intensity applied by Contrast.
const ContrastLevel = 255.0

// contrastFactor is 259·(L+255) / (255·(259−L)); 129.5 at L = 255.
var contrastFactor = (259.0 * (ContrastLevel + 255.0)) / (255.0 * (259.0 - ContrastLevel))

// Negative inverts every sample: 255 − v.
func Negative(src *PixelBuffer) *PixelBuffer {
	dst := src.Clone()
	for i, v := range dst.Pix {
		dst.Pix[i] = 255 - v
	}
	return dst
}

// Contrast stretches every sample around mid-gray by the fixed contrast
// factor, clamping and truncating the result back to 8 bits.
func Contrast(src *PixelBuffer) *PixelBuffer {
	dst := src.Clone()
	for i, v := range dst.Pix {
		dst.Pix[i] = truncUint8((float64(v)-128)*contrastFactor + 128)
	}
	return dst
}

// truncUint8 clamps a float64 to [0, 255] and truncates toward zero.
func truncUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
