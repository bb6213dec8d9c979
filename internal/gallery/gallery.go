// Package gallery tracks the ordered image set of the open directory and the
// cursor into it. Navigation clamps at both ends, matching the disabled
// prev/next buttons in the view.
package gallery

import "sync"

// Gallery holds an immutable ordered image set and a cursor. The set is only
// replaced wholesale by SetImages; the watcher goroutine may do so while the
// UI reads, hence the lock.
type Gallery struct {
	mu     sync.RWMutex
	paths  []string
	cursor int
}

// New returns an empty gallery
func New() *Gallery {
	return &Gallery{}
}

// SetImages replaces the image set and resets the cursor to the first image.
func (g *Gallery) SetImages(paths []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paths = make([]string, len(paths))
	copy(g.paths, paths)
	g.cursor = 0
}

// Len returns the number of images in the set
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.paths)
}

// Paths returns a copy of the image set
func (g *Gallery) Paths() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.paths))
	copy(out, g.paths)
	return out
}

// Current returns the path under the cursor. ok is false when the set is
// empty, which is the explicit "no current image" state.
func (g *Gallery) Current() (path string, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.paths) == 0 {
		return "", false
	}
	return g.paths[g.cursor], true
}

// Cursor returns the current index, or -1 when the set is empty
func (g *Gallery) Cursor() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.paths) == 0 {
		return -1
	}
	return g.cursor
}

// Next advances the cursor by one, clamping at the last image.
// It reports whether the cursor moved.
func (g *Gallery) Next() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursor+1 >= len(g.paths) {
		return false
	}
	g.cursor++
	return true
}

// Previous retreats the cursor by one, clamping at the first image.
// It reports whether the cursor moved.
func (g *Gallery) Previous() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.paths) == 0 || g.cursor == 0 {
		return false
	}
	g.cursor--
	return true
}

// JumpTo sets the cursor directly, used by list and grid selection.
// Out-of-range indices are rejected.
func (g *Gallery) JumpTo(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.paths) {
		return false
	}
	g.cursor = i
	return true
}

// First moves the cursor to the first image
func (g *Gallery) First() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cursor = 0
}

// Last moves the cursor to the last image
func (g *Gallery) Last() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.paths) > 0 {
		g.cursor = len(g.paths) - 1
	}
}

// AtStart reports whether the cursor sits on the first image (or the set is
// empty); the view disables the Previous button on it.
func (g *Gallery) AtStart() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cursor == 0
}

// AtEnd reports whether the cursor sits on the last image (or the set is
// empty); the view disables the Next button on it.
func (g *Gallery) AtEnd() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cursor >= len(g.paths)-1
}
