// Package imageutil provides the pixel-level half of img2ascii: decoding
// into a raw sample buffer and the pure filters applied to it before glyph
// mapping.
package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// MaxChannels is the largest channel count a PixelBuffer holds. Sources with
// more channels (RGBA) are truncated; alpha is dropped, never composited.
const MaxChannels = 3

var (
	// ErrEmptyImage is returned when a source has zero width or height.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrChannels is returned for channel counts outside 1..MaxChannels.
	ErrChannels = errors.New("unsupported channel count")
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// PixelBuffer is a height × width × channels array of 8-bit samples stored
// row-major with interleaved channels.
type PixelBuffer struct {
	Height   int
	Width    int
	Channels int
	Pix      []uint8
}

// NewPixelBuffer allocates a zeroed buffer.
func NewPixelBuffer(height, width, channels int) (*PixelBuffer, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyImage
	}
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	return &PixelBuffer{
		Height:   height,
		Width:    width,
		Channels: channels,
		Pix:      make([]uint8, height*width*channels),
	}, nil
}

// mustPixelBuffer is NewPixelBuffer for shapes already known to be valid.
func mustPixelBuffer(height, width, channels int) *PixelBuffer {
	buf, err := NewPixelBuffer(height, width, channels)
	if err != nil {
		panic(err)
	}
	return buf
}

// PixelBufferFromSamples builds a buffer from interleaved samples laid out
// as height × width × channels. Channels beyond MaxChannels are dropped.
// The samples are copied.
func PixelBufferFromSamples(height, width, channels int, samples []uint8) (*PixelBuffer, error) {
	if len(samples) != height*width*channels {
		return nil, fmt.Errorf("expected %d samples for %dx%dx%d, got %d",
			height*width*channels, height, width, channels, len(samples))
	}
	kept := min(channels, MaxChannels)
	buf, err := NewPixelBuffer(height, width, kept)
	if err != nil {
		return nil, err
	}
	if kept == channels {
		copy(buf.Pix, samples)
		return buf, nil
	}
	for i := 0; i < height*width; i++ {
		copy(buf.Pix[i*kept:(i+1)*kept], samples[i*channels:i*channels+kept])
	}
	return buf, nil
}

// PixelBufferFromImage converts a decoded image into a PixelBuffer. Gray
// sources become single-channel buffers; everything else becomes
// non-premultiplied RGB with the alpha channel discarded.
func PixelBufferFromImage(img image.Image, gray bool) (*PixelBuffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		gray = true
	}

	channels := 3
	if gray {
		channels = 1
	}
	buf, err := NewPixelBuffer(height, width, channels)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			i := (y*width + x) * channels
			if gray {
				buf.Pix[i] = color.GrayModel.Convert(c).(color.Gray).Y
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			buf.Pix[i] = n.R
			buf.Pix[i+1] = n.G
			buf.Pix[i+2] = n.B
		}
	}
	return buf, nil
}

// At returns sample c of pixel (x, y).
func (b *PixelBuffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// Set stores sample c of pixel (x, y).
func (b *PixelBuffer) Set(x, y, c int, v uint8) {
	b.Pix[(y*b.Width+x)*b.Channels+c] = v
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Clone creates a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	clone := &PixelBuffer{
		Height:   b.Height,
		Width:    b.Width,
		Channels: b.Channels,
		Pix:      make([]uint8, len(b.Pix)),
	}
	copy(clone.Pix, b.Pix)
	return clone
}

// Equal reports whether both buffers have the same shape and samples.
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	if b.Height != o.Height || b.Width != o.Width || b.Channels != o.Channels {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// ToImage converts the buffer to a standard library image for previews.
// Single-channel buffers become *image.Gray; two-channel buffers use the
// first channel as gray.
func (b *PixelBuffer) ToImage() image.Image {
	if b.Channels < 3 {
		gray := image.NewGray(b.Bounds())
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				gray.Pix[y*gray.Stride+x] = b.At(x, y, 0)
			}
		}
		return gray
	}
	rgba := image.NewRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			rgba.SetRGBA(x, y, RGB{R: b.At(x, y, 0), G: b.At(x, y, 1), B: b.At(x, y, 2)}.ToColor())
		}
	}
	return rgba
}
