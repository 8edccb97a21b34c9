package imageutil

import "testing"

func TestNegativeIsInvolution(t *testing.T) {
	t.Parallel()
	for _, channels := range []int{1, 2, 3} {
		src := CreateNoiseImage(23, 11, channels, int64(channels))
		twice := Negative(Negative(src))
		if !twice.Equal(src) {
			t.Errorf("%d channels: negative applied twice should restore the input", channels)
		}
	}
}

func TestNegativeValues(t *testing.T) {
	t.Parallel()
	src, _ := PixelBufferFromSamples(1, 3, 1, []uint8{0, 100, 255})
	got := Negative(src)
	want := []uint8{255, 155, 0}
	for i := range want {
		if got.Pix[i] != want[i] {
			t.Errorf("sample %d: expected %d, got %d", i, want[i], got.Pix[i])
		}
	}
	if src.Pix[0] != 0 {
		t.Error("Negative must not modify its input")
	}
}

func TestContrastValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want uint8
	}{
		{0, 0},
		{127, 0},
		{128, 128},
		{129, 255},
		{255, 255},
	}
	for _, tt := range tests {
		src, _ := PixelBufferFromSamples(1, 1, 1, []uint8{tt.in})
		if got := Contrast(src).Pix[0]; got != tt.want {
			t.Errorf("Contrast(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestContrastFactor(t *testing.T) {
	if contrastFactor != 129.5 {
		t.Errorf("Expected factor 129.5, got %v", contrastFactor)
	}
}

func TestContrastKeepsShape(t *testing.T) {
	t.Parallel()
	src := CreateColorBarsImage(40, 5)
	got := Contrast(src)
	if got.Width != 40 || got.Height != 5 || got.Channels != 3 {
		t.Fatalf("Expected 40x5x3, got %dx%dx%d", got.Width, got.Height, got.Channels)
	}
	for i, v := range got.Pix {
		if v != 0 && v != 128 && v != 255 {
			t.Fatalf("sample %d: unexpected value %d after contrast", i, v)
		}
	}
}

func TestTruncUint8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-300, 0},
		{-0.5, 0},
		{0.99, 0},
		{54.9, 54},
		{254.999, 254},
		{255, 255},
		{1e9, 255},
	}
	for _, tt := range tests {
		if got := truncUint8(tt.in); got != tt.want {
			t.Errorf("truncUint8(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
