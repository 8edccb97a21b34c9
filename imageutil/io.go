package imageutil

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"
	"os"

	_ "github.com/spakin/netpbm" // Register PBM/PGM/PPM/PAM decoders
	_ "golang.org/x/image/bmp"   // Register BMP decoder
	_ "golang.org/x/image/tiff"  // Register TIFF decoder
	_ "golang.org/x/image/webp"  // Register WebP decoder
)

// grayFormats are registered format names whose pixels carry one channel.
var grayFormats = map[string]bool{
	"pbm": true,
	"pgm": true,
}

// LoadPixelBuffer decodes the image at path into a PixelBuffer.
// Supports PNG, JPEG, GIF, BMP, TIFF, WebP and the Netpbm family.
func LoadPixelBuffer(path string) (*PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return DecodePixelBuffer(f)
}

// DecodePixelBuffer decodes an image stream into a PixelBuffer.
func DecodePixelBuffer(r io.Reader) (*PixelBuffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	buf, err := PixelBufferFromImage(img, grayFormats[format])
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s image: %w", format, err)
	}
	return buf, nil
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
