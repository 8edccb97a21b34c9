package img2ascii

import "testing"

func TestFitSize(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, tgtW, tgtH int
		wantW, wantH           int
	}{
		{"square into wide box", 512, 512, 378, 189, 378, 189},
		{"square into tall box", 100, 100, 40, 80, 40, 20},
		{"wide image into tall box", 200, 50, 30, 60, 30, 3},
		{"tall image into wide box", 50, 200, 80, 40, 20, 40},
		{"exact fit", 80, 48, 80, 24, 80, 24},
		{"zero width", 10, 10, 0, 10, 0, 0},
		{"negative height", 10, 10, 10, -1, 0, 0},
		{"empty source", 0, 10, 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.srcW, tt.srcH, tt.tgtW, tt.tgtH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestFitSizeStaysInBox(t *testing.T) {
	t.Parallel()
	sources := [][2]int{{512, 512}, {640, 480}, {1, 1000}, {1000, 1}, {3, 7}}
	for _, src := range sources {
		for tw := 1; tw <= 120; tw += 7 {
			for th := 1; th <= 120; th += 5 {
				w, h := FitSize(src[0], src[1], tw, th)
				if w < 0 || h < 0 || w > tw || h > th {
					t.Fatalf("src %v into %dx%d: got %dx%d", src, tw, th, w, h)
				}
			}
		}
	}
}

func TestResampleNearestIndex(t *testing.T) {
	t.Parallel()
	g := &GlyphGrid{Height: 4, Width: 4, Cells: []rune("abcdefghijklmnop")}

	half := Resample(g, 2, 2)
	if got := half.String(); got != "ac\nik" {
		t.Errorf("Expected %q, got %q", "ac\nik", got)
	}

	same := Resample(g, 4, 4)
	if same.String() != g.String() {
		t.Error("Resampling to the native size should be the identity")
	}

	up := Resample(g, 8, 1)
	if got := up.String(); got != "aabbccdd" {
		t.Errorf("Expected %q, got %q", "aabbccdd", got)
	}

	if got := Resample(g, 0, 3).String(); got != "" {
		t.Errorf("Zero-width resample should be empty, got %q", got)
	}
}
