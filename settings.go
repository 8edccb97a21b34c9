package img2ascii

import "strings"

// DefaultRamp is the built-in glyph ramp, ordered from darkest to lightest.
const DefaultRamp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/|()1{}[]?-_+~<>i!lI;:,^`'."

// FilterSettings selects the optional pipeline stages and the glyph ramp
// for one Art. The order in which enabled stages run is fixed by Pipeline
// and is not configurable.
type FilterSettings struct {
	Contrast bool
	Negative bool
	Sharpen  bool
	Emboss   bool

	// Ramp lists glyphs from darkest to lightest. Surrounding whitespace
	// is ignored, and an empty ramp means DefaultRamp.
	Ramp string
}

// Normalized returns a copy of s with the ramp trimmed and defaulted.
func (s FilterSettings) Normalized() FilterSettings {
	s.Ramp = strings.TrimSpace(s.Ramp)
	if s.Ramp == "" {
		s.Ramp = DefaultRamp
	}
	return s
}

// String summarises the enabled filters in pipeline order, e.g.
// "contrast+sharpen", or "none".
func (s FilterSettings) String() string {
	var names []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"negative", s.Negative},
		{"contrast", s.Contrast},
		{"sharpen", s.Sharpen},
		{"emboss", s.Emboss},
	} {
		if f.on {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
