package img2ascii

import (
	"bufio"
	"fmt"
	"os"
)

// ExportText writes the native-resolution text of art to path, replacing
// any existing file.
func ExportText(art *Art, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := art.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
