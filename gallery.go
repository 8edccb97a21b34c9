package img2ascii

import (
	"errors"
	"fmt"
	"iter"
	"sync"
)

// ErrIndexOutOfRange is returned for Gallery indices outside [0, Len()).
var ErrIndexOutOfRange = errors.New("gallery index out of range")

// Gallery is an ordered list of loaded arts, newest first. The list itself
// is safe for concurrent use; the arts it holds are not.
type Gallery struct {
	arts []*Art
	mu   sync.RWMutex
}

// NewGallery creates an empty Gallery.
func NewGallery() *Gallery {
	return &Gallery{
		arts: make([]*Art, 0),
	}
}

// Add inserts art at the front of the gallery.
func (g *Gallery) Add(art *Art) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.arts = append([]*Art{art}, g.arts...)
}

// Get retrieves the art at index i.
func (g *Gallery) Get(i int) (*Art, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.arts) {
		return nil, false
	}
	return g.arts[i], true
}

// Set replaces the art at index i.
func (g *Gallery) Set(i int, art *Art) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i < 0 || i >= len(g.arts) {
		return fmt.Errorf("set %d of %d: %w", i, len(g.arts), ErrIndexOutOfRange)
	}
	g.arts[i] = art
	return nil
}

// Delete removes the art at index i, shifting later arts down by one.
func (g *Gallery) Delete(i int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i < 0 || i >= len(g.arts) {
		return fmt.Errorf("delete %d of %d: %w", i, len(g.arts), ErrIndexOutOfRange)
	}
	g.arts = append(g.arts[:i], g.arts[i+1:]...)
	return nil
}

// Contains reports whether index i holds an art.
func (g *Gallery) Contains(i int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return i >= 0 && i < len(g.arts)
}

// Len returns the number of arts.
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arts)
}

// All iterates over a snapshot of the gallery in order. The gallery may be
// modified while iterating.
func (g *Gallery) All() iter.Seq2[int, *Art] {
	g.mu.RLock()
	snapshot := append([]*Art(nil), g.arts...)
	g.mu.RUnlock()

	return func(yield func(int, *Art) bool) {
		for i, art := range snapshot {
			if !yield(i, art) {
				return
			}
		}
	}
}

// Names returns the display names in order.
func (g *Gallery) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, len(g.arts))
	for i, art := range g.arts {
		names[i] = art.Name()
	}
	return names
}
