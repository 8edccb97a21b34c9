package imageutil

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor interpolation. Glyph
	// rasters keep their hard edges with it, so it is the default.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea
)

// ParseInterpolation maps "nearest", "linear" or "area" to an
// Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	switch name {
	case "nearest":
		return InterpolationNearest, nil
	case "linear":
		return InterpolationLinear, nil
	case "area":
		return InterpolationArea, nil
	}
	return InterpolationNearest, fmt.Errorf("unknown interpolation %q", name)
}

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationArea:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resize resizes an image to the specified dimensions using the given
// interpolation method.
func Resize(img image.Image, width, height int, interp Interpolation) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	interp.scaler().Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Scale enlarges an image by an integer factor. Factors below 2 return the
// image unchanged.
func Scale(img *image.RGBA, factor int, interp Interpolation) *image.RGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return Resize(img, b.Dx()*factor, b.Dy()*factor, interp)
}
