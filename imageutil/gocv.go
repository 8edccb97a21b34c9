//go:build gocv

package imageutil

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadPixelBufferCV decodes the image at path with OpenCV. It reads 8-bit
// gray or color data as stored (alpha is discarded by OpenCV) and reorders
// OpenCV's BGR samples to RGB.
func LoadPixelBufferCV(path string) (*PixelBuffer, error) {
	mat := gocv.IMRead(path, gocv.IMReadAnyColor)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	defer mat.Close()

	return PixelBufferFromMat(mat)
}

// PixelBufferFromMat copies an 8-bit gocv.Mat (gray or BGR) into a
// PixelBuffer.
func PixelBufferFromMat(mat gocv.Mat) (*PixelBuffer, error) {
	channels := mat.Channels()
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	buf, err := NewPixelBuffer(mat.Rows(), mat.Cols(), channels)
	if err != nil {
		return nil, err
	}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if channels == 1 {
				buf.Set(x, y, 0, mat.GetUCharAt(y, x))
				continue
			}
			vec := mat.GetVecbAt(y, x)
			buf.Set(x, y, 0, vec[2])
			buf.Set(x, y, 1, vec[1])
			buf.Set(x, y, 2, vec[0])
		}
	}
	return buf, nil
}
